package config

import (
	"path/filepath"
	"time"
)

const (
	// DirName is the per-user directory holding config, preferences and logs.
	DirName = ".spacedeck"

	DefaultPageSize  = 10
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// Config is the application configuration, read once at startup.
type Config struct {
	BackendURL      string        `yaml:"backend_url" validate:"required,backend_url"`
	Timeout         time.Duration `yaml:"timeout" validate:"gte=0"`
	LogLevel        string        `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat       string        `yaml:"log_format" validate:"oneof=console json"`
	LogPath         string        `yaml:"log_path"`
	PreferencesPath string        `yaml:"preferences_path"`
	PageSize        int           `yaml:"page_size" validate:"min=1,max=100"`
}

// Defaults returns the configuration used before any source is applied.
// home is the user's home directory.
func Defaults(home string) Config {
	dir := filepath.Join(home, DirName)
	return Config{
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
		LogPath:         filepath.Join(dir, "spacedeck.log"),
		PreferencesPath: filepath.Join(dir, "preferences.json"),
		PageSize:        DefaultPageSize,
	}
}

// DefaultPath returns the config file consulted when --config is not given.
func DefaultPath(home string) string {
	return filepath.Join(home, DirName, "config.yaml")
}
