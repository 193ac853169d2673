// Csvtext sends personalised text messages from a contacts spreadsheet.
//
// It loads a CSV, TSV or XLSX file, fills a {{variable}} template from each
// row and hands every message to the system SMS app (via an sms: link) or
// the clipboard, one confirmed row at a time. Nothing is sent automatically
// and no contact data is stored.
//
// Usage:
//
//	csvtext [file] [flags]
//
// Running without a subcommand launches the interactive wizard.
// See 'csvtext --help' for available commands.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/muurk/csvtext/internal/config"
	"github.com/muurk/csvtext/internal/logging"
	"github.com/muurk/csvtext/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// prefs is loaded once before any command runs
var prefs = config.NewPreferences()

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "csvtext [file]",
	Short: "Send personalised texts from a contacts spreadsheet",
	Long: `Load a contacts spreadsheet, write a message with {{variable}}
placeholders, map each variable to a column, then step through the rows
handing each message to your SMS app or the clipboard.

If no command is specified, the interactive wizard will launch automatically.`,
	Version:           version.Full(),
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runWizard,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); logs go to the log file")

	rootCmd.AddCommand(versionCmd)
}

// setup loads preferences and starts logging
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	} else {
		prefs = loaded
	}

	level := logLevel
	if level == "" {
		level = prefs.Log.Level
	}
	if level == "" {
		level = os.Getenv(logging.LogLevelEnvVar)
	}
	if level == "" {
		// Logging is off; leave the filesystem alone
		return logging.Initialize("", "")
	}

	path := logPath()
	if env := os.Getenv(logging.LogFileEnvVar); env != "" {
		path = env
	}
	if path != "" && path != "stderr" && path != "stdout" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	return logging.Initialize(level, path)
}

// logPath picks the log file. The wizard owns the terminal, so the default
// is a file in the config directory rather than stderr. It does not touch
// the filesystem.
func logPath() string {
	if prefs.Log.File != "" {
		return prefs.Log.File
	}
	path, err := config.DefaultLogPath()
	if err != nil {
		return ""
	}
	return path
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "csvtext %s\n", version.Full())
	},
}
