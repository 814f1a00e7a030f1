package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// InputPath is a CMakeLists.txt / *.cmake file or a directory searched
	// recursively for them.
	InputPath string
	// SettingsPath is an optional HCL settings file.
	SettingsPath string
	// OutputPath is the file the encoded trees are written to; empty means
	// standard output.
	OutputPath string

	// OutputFormat and Pretty override the settings file when set.
	OutputFormat string
	Pretty       bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
