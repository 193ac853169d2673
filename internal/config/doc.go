// Package config manages csvtext's preferences file.
//
// Preferences are stored as YAML in a platform-appropriate location:
//   - Linux: $XDG_CONFIG_HOME/csvtext/config.yaml or $HOME/.config/csvtext/config.yaml
//   - macOS: $HOME/.config/csvtext/config.yaml
//   - Windows: %LOCALAPPDATA%\csvtext\config.yaml
//
// # Privacy
//
// IMPORTANT: This package NEVER stores contact data, templates or column
// mappings. Those live only for the duration of a session. The file holds
// tool defaults such as the header flag and the sms: link dialect.
//
// # Usage Example
//
//	prefs, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	prefs.Platform = "apple"
//	if err := prefs.Save(); err != nil {
//	    return err
//	}
package config
