package config

// CurrentVersion is the schema version written by this build.
const CurrentVersion = 1

// Preferences is the entire preferences file.
type Preferences struct {
	Version   int       `yaml:"version"`
	HasHeader bool      `yaml:"has_header"`          // First row holds column names
	Delimiter string    `yaml:"delimiter,omitempty"` // Single character CSV delimiter; empty means ','
	Platform  string    `yaml:"platform"`            // sms: dialect: auto, apple or other
	AutoBind  bool      `yaml:"auto_bind"`           // Pre-map variables to same-named columns
	Log       *LogPrefs `yaml:"log,omitempty"`
}

// LogPrefs controls diagnostic logging.
type LogPrefs struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error; empty disables
	File  string `yaml:"file,omitempty"`  // Destination; empty means <config dir>/csvtext.log
}

// NewPreferences returns the defaults used when no file exists.
func NewPreferences() *Preferences {
	return &Preferences{
		Version:   CurrentVersion,
		HasHeader: true,
		Platform:  "auto",
		AutoBind:  true,
		Log:       &LogPrefs{},
	}
}

// DelimiterRune returns the configured delimiter, or 0 for the default.
func (p *Preferences) DelimiterRune() rune {
	for _, r := range p.Delimiter {
		return r
	}
	return 0
}

// applyDefaults fills fields a hand-edited file may have left out.
func (p *Preferences) applyDefaults() {
	if p.Platform == "" {
		p.Platform = "auto"
	}
	if p.Log == nil {
		p.Log = &LogPrefs{}
	}
}
