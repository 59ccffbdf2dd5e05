package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Preferences holds the user's saved defaults.
type Preferences struct {
	Appearance AppearancePreferences `toml:"appearance"`
	Output     OutputPreferences     `toml:"output"`
}

// AppearancePreferences holds theme settings.
type AppearancePreferences struct {
	Theme string `toml:"theme"`
}

// OutputPreferences holds report defaults.
type OutputPreferences struct {
	DefaultFormat string `toml:"default_format"`
	Directory     string `toml:"directory,omitempty"`
}

// DefaultPreferences returns the built-in preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		Appearance: AppearancePreferences{
			Theme: "ocean",
		},
		Output: OutputPreferences{
			DefaultFormat: "console",
			Directory:     ".",
		},
	}
}

// PreferencesDir returns the XDG-compliant config directory.
func PreferencesDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lifetracker")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "lifetracker")
}

// PreferencesPath returns the full path to the preferences file.
func PreferencesPath() string {
	return filepath.Join(PreferencesDir(), "config.toml")
}

// LoadPreferences reads the preferences file, returning defaults if it doesn't exist.
func LoadPreferences() (Preferences, error) {
	prefs := DefaultPreferences()

	data, err := os.ReadFile(PreferencesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("reading preferences: %w", err)
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("parsing preferences: %w", err)
	}

	return prefs, nil
}

// SavePreferences writes the preferences to disk.
func SavePreferences(prefs Preferences) error {
	if err := os.MkdirAll(PreferencesDir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(PreferencesPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating preferences file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(prefs)
}

// PreferencesExist returns true if a preferences file exists on disk.
func PreferencesExist() bool {
	_, err := os.Stat(PreferencesPath())
	return err == nil
}
