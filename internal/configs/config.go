package configs

import (
	"fmt"
	"os"

	"github.com/tovesk/envseal/internal/secrets"
)

// SettingsFile is the optional per-directory settings file consulted by the
// CLI. Command-line arguments override anything set here.
const SettingsFile = ".envseal.toml"

// Settings holds the CLI defaults for a directory.
type Settings struct {
	// Source is the plaintext dotenv file to encrypt.
	Source string `toml:"source"`

	// Output is the encrypted container path.
	Output string `toml:"output"`

	// KeyVar names the environment variable holding the passphrase.
	KeyVar string `toml:"key_var"`

	// AuditLog, when set, enables JSONL audit logging to this path. The
	// path is validated against the working directory like any other.
	AuditLog string `toml:"audit_log,omitempty"`
}

// DefaultSettings returns the built-in defaults used when no settings file
// is present.
func DefaultSettings() *Settings {
	return &Settings{
		Source: ".env",
		Output: ".env.encrypted",
		KeyVar: secrets.DefaultKeyVar,
	}
}

// LoadSettings reads the settings file from the working directory if it
// exists, filling unset fields with the built-in defaults.
func LoadSettings() (*Settings, error) {
	settings := DefaultSettings()

	if _, err := os.Stat(SettingsFile); os.IsNotExist(err) {
		return settings, nil
	}

	if err := LoadTOML(SettingsFile, settings); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", SettingsFile, err)
	}

	// An explicitly empty field in the file falls back to the default.
	defaults := DefaultSettings()
	if settings.Source == "" {
		settings.Source = defaults.Source
	}
	if settings.Output == "" {
		settings.Output = defaults.Output
	}
	if settings.KeyVar == "" {
		settings.KeyVar = defaults.KeyVar
	}

	return settings, nil
}

// SaveSettings writes the settings file to the working directory.
func SaveSettings(settings *Settings) error {
	if err := SaveTOML(SettingsFile, settings); err != nil {
		return fmt.Errorf("failed to save %s: %w", SettingsFile, err)
	}
	return nil
}
