// Package config reads the optional routeguided.ini configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// ErrConfig indicates an unreadable or malformed configuration file
var ErrConfig = errors.New("configuration load failed")

// ServerSection holds the [server] settings.
type ServerSection struct {
	Port     int    `ini:"port"`
	DBPath   string `ini:"db_path"`
	LogLevel string `ini:"log_level"`
	LogJSON  bool   `ini:"log_json"`
}

// Config is the full file contents with defaults applied for absent keys.
type Config struct {
	Server ServerSection `ini:"server"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Server: ServerSection{
			Port:     50051,
			LogLevel: "info",
		},
	}
}

// Load reads path and maps it onto a Config. A missing file is not an
// error: the defaults are returned so the server can run on flags alone.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	if err := file.Section("server").MapTo(&cfg.Server); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	return cfg, nil
}
