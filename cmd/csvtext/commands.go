package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/muurk/csvtext/internal/compose"
	"github.com/muurk/csvtext/internal/config"
	"github.com/muurk/csvtext/internal/dataset"
	"github.com/muurk/csvtext/internal/session"
	"github.com/muurk/csvtext/internal/template"
	"github.com/muurk/csvtext/internal/ui"
	"github.com/muurk/csvtext/internal/wizard/tui"
)

// Shared data and template flags
var (
	templateText string
	templateFile string
	phoneColumn  string
	mappings     []string
	noHeader     bool
	delimiter    string
	sheetName    string
	platformName string
	outputFormat string
	initConfig   bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&templateText, "template", "", "Message template with {{variable}} placeholders")
	flags.StringVar(&templateFile, "template-file", "", "Read the message template from a file")
	flags.StringVar(&phoneColumn, "phone", "", "Column holding phone numbers")
	flags.StringArrayVar(&mappings, "map", nil, "Bind a variable to a column (var=column, repeatable)")
	flags.BoolVar(&noHeader, "no-header", false, "First row is data, not column names")
	flags.StringVar(&delimiter, "delimiter", "", "CSV field delimiter (single character)")
	flags.StringVar(&sheetName, "sheet", "", "Worksheet to read from XLSX files (default: first)")
	flags.StringVar(&platformName, "platform", "", "sms: link dialect (auto, apple, other)")

	previewCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, json)")
	configCmd.Flags().BoolVar(&initConfig, "init", false, "Write a default preferences file if none exists")

	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(varsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(configCmd)
}

// wizardCmd launches the interactive TUI wizard
var wizardCmd = &cobra.Command{
	Use:   "wizard [file]",
	Short: "Launch the interactive wizard",
	Long: `Launch the interactive wizard.

The wizard walks through loading a contacts file, writing the message,
mapping variables to columns and stepping through each row. Screens whose
input was given on the command line are skipped.`,
	Example: `  # Start from scratch
  csvtext

  # Jump straight to mapping
  csvtext contacts.csv --template "Hi {{first_name}}, see you {{day}}!"

  # Fully prepared: lands on the mapping screen, press enter to start
  csvtext wizard contacts.xlsx --sheet Guests \
    --template-file invite.txt --map first_name=Name --phone Mobile`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal(os.Stdout) || !ui.IsTerminal(os.Stdin) {
		return errors.New("the wizard needs an interactive terminal; use 'csvtext preview' for scripted output")
	}

	platform, err := resolvePlatform()
	if err != nil {
		return err
	}
	tpl, err := resolveTemplate()
	if err != nil {
		return err
	}
	binds, err := parseMappings(mappings)
	if err != nil {
		return err
	}
	dataOpts, err := datasetOptions()
	if err != nil {
		return err
	}

	opts := tui.Options{
		DataOptions: dataOpts,
		Template:    tpl,
		Mappings:    binds,
		PhoneColumn: phoneColumn,
		AutoBind:    prefs.AutoBind,
		Launcher:    compose.NewSystemLauncher(platform),
		Clipboard:   compose.SystemClipboard{},
	}
	if len(args) == 1 {
		opts.Path = args[0]
		ds, err := dataset.Load(args[0], dataOpts)
		if err != nil {
			return err
		}
		opts.Data = ds
	}

	app, err := tui.NewAppModel(opts)
	if err != nil {
		return err
	}

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}

// varsCmd lists the variables a template uses
var varsCmd = &cobra.Command{
	Use:   "vars [template]",
	Short: "List the variables in a template",
	Long: `Print each {{variable}} found in a template, once, in order of first
appearance. The template is taken from the argument, --template or
--template-file.`,
	Example: `  csvtext vars "Hi {{name}}, your code is {{ code }}"
  csvtext vars --template-file invite.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, err := resolveTemplate()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			tpl = args[0]
		}
		for _, v := range template.Extract(tpl) {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	},
}

// previewCmd renders every message without sending anything
var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Render every message to stdout",
	Long: `Render the message for every row of a contacts file and print it with
the sanitized phone number and sms: link. Nothing is sent or copied.

Variables are bound with --map, or automatically to columns of the same
name when auto_bind is enabled in preferences.`,
	Example: `  csvtext preview contacts.csv --template "Hi {{name}}" --phone phone

  # Machine-readable output
  csvtext preview contacts.tsv --template-file msg.txt --phone Mobile --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

// previewRow is one entry of the json output
type previewRow struct {
	Row     int    `json:"row"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	URI     string `json:"uri,omitempty"`
}

func runPreview(cmd *cobra.Command, args []string) error {
	if outputFormat != "detailed" && outputFormat != "json" {
		return fmt.Errorf("unknown format %q (use detailed or json)", outputFormat)
	}

	platform, err := resolvePlatform()
	if err != nil {
		return err
	}
	sess, err := prepareSession(args[0])
	if err != nil {
		return err
	}
	if err := sess.Start(); err != nil {
		return fmt.Errorf("cannot render: %s", session.UserMessage(err))
	}

	var rows []previewRow
	for {
		p, err := sess.Preview()
		if err != nil {
			return err
		}
		r := previewRow{Row: p.RowNumber(), Phone: p.Phone, Message: p.Message}
		if p.Phone != "" {
			r.URI = compose.URI(p.Phone, p.Message, platform)
		}
		rows = append(rows, r)
		if p.AtLast() {
			break
		}
		sess.Next()
	}

	if outputFormat == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	ds := sess.Dataset()
	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Preview", "csvtext preview "+args[0], []ui.Field{
		{Key: "Source", Value: ds.Source},
		{Key: "Rows", Value: fmt.Sprint(ds.Len())},
		{Key: "Variables", Value: strings.Join(sess.Variables(), ", ")},
		{Key: "Mappings", Value: mappingSummary(sess)},
		{Key: "Platform", Value: string(platform)},
	})
	total := len(rows)
	empty := 0
	for _, r := range rows {
		if r.Phone == "" {
			empty++
		}
		p.PrintCard(ui.Card{
			Title:   fmt.Sprintf("Row %d / %d", r.Row, total),
			Phone:   r.Phone,
			Message: r.Message,
		})
	}

	if len(ds.Warnings) > 0 {
		items := make([]string, 0, len(ds.Warnings))
		for _, w := range ds.Warnings {
			items = append(items, w.String())
		}
		p.PrintWarning(fmt.Sprintf("%d parse warnings", len(ds.Warnings)), items)
	}
	p.PrintSuccess(fmt.Sprintf("%d messages rendered", total), []ui.Field{
		{Key: "Ready", Value: fmt.Sprint(total - empty)},
		{Key: "Empty phone", Value: fmt.Sprint(empty)},
	})
	return nil
}

// configCmd shows the resolved preferences
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show preferences and where they are stored",
	Long: `Show the resolved preferences and the path of the preferences file.

Only tool defaults are stored there; contact data, templates and mappings
never are.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		p := ui.NewPrinter(cmd.OutOrStdout())
		if initConfig {
			if _, statErr := os.Stat(path); statErr == nil {
				p.PrintWarning("Preferences file already exists", []string{path})
			} else {
				if err := config.NewPreferences().Save(); err != nil {
					p.PrintError("Could not write preferences", err, []string{"Check permissions on " + path})
					return err
				}
				p.PrintSuccess("Preferences file created", []ui.Field{{Key: "Path", Value: path}})
			}
		}

		logFile := logPath()
		if logFile == "" {
			logFile = "stderr"
		}
		level := prefs.Log.Level
		if level == "" {
			level = "off"
		}
		delim := prefs.Delimiter
		if delim == "" {
			delim = ","
		}

		p.PrintHeader("Preferences", "csvtext config", []ui.Field{
			{Key: "Path", Value: path},
			{Key: "Header row", Value: fmt.Sprint(prefs.HasHeader)},
			{Key: "Delimiter", Value: delim},
			{Key: "Platform", Value: prefs.Platform},
			{Key: "Auto-map", Value: fmt.Sprint(prefs.AutoBind)},
			{Key: "Log level", Value: level},
			{Key: "Log file", Value: logFile},
		})
		return nil
	},
}

// prepareSession loads path and applies template and binding flags
func prepareSession(path string) (*session.Session, error) {
	dataOpts, err := datasetOptions()
	if err != nil {
		return nil, err
	}
	tpl, err := resolveTemplate()
	if err != nil {
		return nil, err
	}
	if tpl == "" {
		return nil, errors.New("a template is required (--template or --template-file)")
	}
	binds, err := parseMappings(mappings)
	if err != nil {
		return nil, err
	}

	ds, err := dataset.Load(path, dataOpts)
	if err != nil {
		return nil, err
	}
	for _, w := range ds.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	sess := session.New()
	sess.Load(ds)
	sess.SetTemplate(tpl)
	for variable, column := range binds {
		if err := sess.Bind(variable, column); err != nil {
			return nil, fmt.Errorf("--map %s=%s: %s", variable, column, session.UserMessage(err))
		}
	}
	if phoneColumn != "" {
		if err := sess.BindPhone(phoneColumn); err != nil {
			return nil, fmt.Errorf("--phone %s: %s", phoneColumn, session.UserMessage(err))
		}
	}
	if prefs.AutoBind {
		sess.AutoBind()
	}
	return sess, nil
}

// datasetOptions merges flags over preferences
func datasetOptions() (dataset.Options, error) {
	opts := dataset.Options{
		HasHeader: prefs.HasHeader && !noHeader,
		Comma:     prefs.DelimiterRune(),
		Sheet:     sheetName,
	}
	if delimiter != "" {
		if utf8.RuneCountInString(delimiter) != 1 {
			return opts, fmt.Errorf("--delimiter must be a single character, got %q", delimiter)
		}
		opts.Comma, _ = utf8.DecodeRuneInString(delimiter)
	}
	return opts, nil
}

// resolveTemplate reads --template-file or falls back to --template
func resolveTemplate() (string, error) {
	if templateFile == "" {
		return templateText, nil
	}
	if templateText != "" {
		return "", errors.New("use either --template or --template-file, not both")
	}
	data, err := os.ReadFile(templateFile)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// resolvePlatform applies --platform over preferences and resolves auto
func resolvePlatform() (compose.Platform, error) {
	name := platformName
	if name == "" {
		name = prefs.Platform
	}
	p, err := compose.ParsePlatform(name)
	if err != nil {
		return "", err
	}
	return compose.HostPlatform(p), nil
}

// parseMappings turns "var=column" pairs into a map
func parseMappings(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		variable, column, ok := strings.Cut(pair, "=")
		variable = strings.TrimSpace(variable)
		if !ok || variable == "" {
			return nil, fmt.Errorf("invalid --map %q (expected var=column)", pair)
		}
		out[variable] = strings.TrimSpace(column)
	}
	return out, nil
}

// mappingSummary lists the bindings as var=column in template order,
// followed by the phone column.
func mappingSummary(sess *session.Session) string {
	snap := sess.Bindings().Snapshot()
	parts := make([]string, 0, len(snap)+1)
	for _, v := range sess.Variables() {
		if col, ok := snap[v]; ok {
			parts = append(parts, v+"="+col)
		}
	}
	if col, ok := sess.Bindings().Phone(); ok {
		parts = append(parts, "phone:"+col)
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, ", ")
}
