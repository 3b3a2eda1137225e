// Package config provides configuration management for the numguess CLI.
//
// Settings are layered with koanf: built-in defaults, an optional YAML file,
// NUMGUESS_* environment variables and finally explicitly set flags. None of
// the settings affect the secret's range; they only tune presentation,
// logging and reproducibility.
package config

// Config holds all CLI configuration options.
type Config struct {
	Verbose     bool   `koanf:"verbose" yaml:"verbose"`
	LogFormat   string `koanf:"log_format" yaml:"log_format"`
	Color       string `koanf:"color" yaml:"color"`
	Hint        bool   `koanf:"hint" yaml:"hint"`
	Summary     bool   `koanf:"summary" yaml:"summary"`
	HistoryFile string `koanf:"history_file" yaml:"history_file,omitempty"`
	Seed        uint64 `koanf:"seed" yaml:"seed,omitempty"`

	// File is the config file that was read, if any.
	File string `koanf:"-" yaml:"-"`
}

// Default configuration values.
const (
	DefaultLogFormat = "text"
	DefaultColor     = "auto"
	EnvPrefix        = "NUMGUESS_"
)

// ConfigFileNames are looked up in the working directory, in order.
var ConfigFileNames = []string{"numguess.yaml", "numguess.yml"}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogFormat: DefaultLogFormat,
		Color:     DefaultColor,
	}
}
