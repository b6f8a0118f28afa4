package main

import (
	"fmt"
	"os"

	"github.com/aheui/avis-sub000/logger"
	"github.com/pelletier/go-toml/v2"
)

// Config is read from a TOML file. Flags given on the command line win over
// the file.
type Config struct {
	Fill      string `toml:"fill"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

func DefaultConfig() Config {
	return Config{
		Fill:      " ",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// LoadConfig reads path on top of DefaultConfig. An empty path or a missing
// file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Logger builds the logger described by the config.
func (c Config) Logger() (logger.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	typ, err := logger.ParseType(c.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(logger.Options{
		Buffer: os.Stderr,
		Level:  level,
		Type:   typ,
	}), nil
}
