package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type envOverrides struct {
	ConfigPath string `env:"ELECTIONS_CONFIG"`
	LogLevel   string `env:"ELECTIONS_LOG_LEVEL"`
	LogFormat  string `env:"ELECTIONS_LOG_FORMAT"`
}

// resolvePath falls back to ELECTIONS_CONFIG when no explicit path was
// given. An explicit path (the --config flag) always wins.
func resolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return "", fmt.Errorf("parse env: %w", err)
	}
	return overrides.ConfigPath, nil
}

// applyEnv overlays environment variables on top of the loaded configuration.
// Unset variables leave the file/default values untouched.
func (c *Config) applyEnv() error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if overrides.LogLevel != "" {
		c.Logging.Level = overrides.LogLevel
	}
	if overrides.LogFormat != "" {
		c.Logging.Format = overrides.LogFormat
	}
	return nil
}
