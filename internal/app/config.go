package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Day        int
	Part       int
	InputPath  string
	ConfigPath string // optional HCL settings file

	LogFormat string
	LogLevel  string
	Workers   int // overrides the settings file when > 0
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.Day < 1 {
		return nil, fmt.Errorf("invalid day %d: must be positive", cfg.Day)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("invalid workers %d: must not be negative", cfg.Workers)
	}
	return &cfg, nil
}
