// Package settings manages persistent user settings for the netreg CLI.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables honored by FromEnv. A .env file in the working
// directory is folded into the environment first.
const (
	EnvURL   = "NETREG_URL"
	EnvToken = "NETREG_TOKEN"
)

// Settings holds persistent user preferences
type Settings struct {
	// URL is the registry API root, e.g. https://netbox.example.net/api
	URL string `json:"url,omitempty"`

	// Token authenticates against the registry. May be empty for
	// registries that allow anonymous reads.
	Token string `json:"token,omitempty"`

	// LogLevel overrides the default log level (warn)
	LogLevel string `json:"log_level,omitempty"`
}

// DefaultSettingsPath returns the default path for the settings file
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "netreg_settings.json"
	}
	return filepath.Join(home, ".netreg", "settings.json")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path. A missing file yields
// empty settings, not an error.
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path. The token lands on disk, so
// the file is written owner-read/write only.
func (s *Settings) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// FromEnv overlays environment values onto s. Values already set in s are
// only replaced when the corresponding variable is non-empty, so the
// precedence is: explicit flag > environment > settings file.
func (s *Settings) FromEnv() {
	// .env is a convenience for lab checkouts; absence is fine.
	_ = godotenv.Load()

	if v := os.Getenv(EnvURL); v != "" {
		s.URL = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		s.Token = v
	}
}

// Clear resets all settings to defaults
func (s *Settings) Clear() {
	*s = Settings{}
}
