package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muurk/csvtext/internal/compose"
	"github.com/muurk/csvtext/internal/config"
	"github.com/muurk/csvtext/internal/logging"
)

func TestParseMappings(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    map[string]string
		wantErr bool
	}{
		{"Empty", nil, map[string]string{}, false},
		{"Simple", []string{"name=First Name"}, map[string]string{"name": "First Name"}, false},
		{"Trims spaces", []string{" day = Day "}, map[string]string{"day": "Day"}, false},
		{"Column with equals", []string{"x=a=b"}, map[string]string{"x": "a=b"}, false},
		{"Missing equals", []string{"name"}, nil, true},
		{"Missing variable", []string{"=col"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMappings(tt.pairs)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseMappings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseMappings() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("parseMappings()[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestDatasetOptions(t *testing.T) {
	defer func() { prefs, delimiter, noHeader = config.NewPreferences(), "", false }()

	prefs = config.NewPreferences()
	prefs.Delimiter = ";"
	opts, err := datasetOptions()
	if err != nil {
		t.Fatalf("datasetOptions() error = %v", err)
	}
	if opts.Comma != ';' || !opts.HasHeader {
		t.Errorf("preferences not applied: %+v", opts)
	}

	delimiter, noHeader = "|", true
	opts, err = datasetOptions()
	if err != nil {
		t.Fatalf("datasetOptions() error = %v", err)
	}
	if opts.Comma != '|' || opts.HasHeader {
		t.Errorf("flags should override preferences: %+v", opts)
	}

	delimiter = "||"
	if _, err := datasetOptions(); err == nil {
		t.Error("multi-character delimiter should be rejected")
	}
}

func TestResolveTemplate(t *testing.T) {
	defer func() { templateText, templateFile = "", "" }()

	templateText = "Hi {{name}}"
	if got, _ := resolveTemplate(); got != "Hi {{name}}" {
		t.Errorf("resolveTemplate() = %q", got)
	}

	path := filepath.Join(t.TempDir(), "msg.txt")
	if err := os.WriteFile(path, []byte("See you {{day}}\n"), 0600); err != nil {
		t.Fatal(err)
	}
	templateFile = path
	if _, err := resolveTemplate(); err == nil {
		t.Error("both flags set should be an error")
	}

	templateText = ""
	got, err := resolveTemplate()
	if err != nil {
		t.Fatalf("resolveTemplate() error = %v", err)
	}
	if got != "See you {{day}}" {
		t.Errorf("resolveTemplate() = %q, want trailing newline trimmed", got)
	}
}

func TestResolvePlatform(t *testing.T) {
	defer func() { platformName, prefs = "", config.NewPreferences() }()

	platformName = "apple"
	if p, err := resolvePlatform(); err != nil || p != compose.PlatformApple {
		t.Errorf("resolvePlatform() = %v, %v", p, err)
	}

	platformName = "android"
	if _, err := resolvePlatform(); err == nil {
		t.Error("unknown platform should be rejected")
	}

	platformName = ""
	prefs = config.NewPreferences()
	p, err := resolvePlatform()
	if err != nil {
		t.Fatalf("resolvePlatform() error = %v", err)
	}
	if p == compose.PlatformAuto {
		t.Error("auto should resolve to a concrete platform")
	}
}

func resetFlags() {
	templateText, templateFile, phoneColumn = "", "", ""
	mappings, noHeader, delimiter, sheetName = nil, false, "", ""
	platformName, outputFormat = "", "detailed"
	prefs = config.NewPreferences()
}

func TestPreviewJSON(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CSVTEXT_LOG_LEVEL", "")
	t.Cleanup(resetFlags)

	path := filepath.Join(t.TempDir(), "people.csv")
	csv := "name,phone\nAna,+1 555 0100\n\nBen,\n"
	if err := os.WriteFile(path, []byte(csv), 0600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"preview", path,
		"--template", "Hi {{name}}!",
		"--phone", "phone",
		"--platform", "other",
		"--format", "json",
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var rows []previewRow
	if err := json.Unmarshal(out.Bytes(), &rows); err != nil {
		t.Fatalf("invalid json %q: %v", out.String(), err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (blank line skipped)", len(rows))
	}
	if rows[0].Message != "Hi Ana!" || rows[0].Phone != "+15550100" {
		t.Errorf("row 1 = %+v", rows[0])
	}
	if rows[0].URI != "sms:%2B15550100?body=Hi%20Ana!" {
		t.Errorf("row 1 uri = %q", rows[0].URI)
	}
	if rows[1].Row != 2 || rows[1].Phone != "" || rows[1].URI != "" {
		t.Errorf("row 2 = %+v", rows[1])
	}
}

func TestPreviewDetailedShowsMappings(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CSVTEXT_LOG_LEVEL", "")
	t.Cleanup(resetFlags)

	path := filepath.Join(t.TempDir(), "people.csv")
	if err := os.WriteFile(path, []byte("First,Mobile\nAna,555\n"), 0600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"preview", path,
		"--template", "Hi {{name}}!",
		"--map", "name=First",
		"--phone", "Mobile",
		"--platform", "other",
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := out.String(); !strings.Contains(got, "name=First, phone:Mobile") {
		t.Errorf("header missing mappings:\n%s", got)
	}
}

func TestPreviewRequiresMapping(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CSVTEXT_LOG_LEVEL", "")
	t.Cleanup(resetFlags)

	path := filepath.Join(t.TempDir(), "people.csv")
	if err := os.WriteFile(path, []byte("name,mobile\nAna,1\n"), 0600); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"preview", path, "--template", "Hi {{first}}", "--format", "json"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("unbound variable should fail the preview")
	}
}

func TestSetupLeavesConfigDirAloneWhenLoggingOff(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("CSVTEXT_LOG_LEVEL", "")
	t.Setenv("CSVTEXT_LOG_FILE", "")
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, dir := range []string{filepath.Join(home, "csvtext"), filepath.Join(home, ".config", "csvtext")} {
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Errorf("%s should not exist with logging off (stat err = %v)", dir, err)
		}
	}
}

func TestSetupCreatesLogDirWhenLoggingOn(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", "csvtext.log")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CSVTEXT_LOG_LEVEL", "debug")
	t.Setenv("CSVTEXT_LOG_FILE", logFile)
	t.Cleanup(func() {
		resetFlags()
		_ = logging.Initialize("", "")
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, err := os.Stat(filepath.Dir(logFile)); err != nil {
		t.Errorf("log directory not created: %v", err)
	}
}
