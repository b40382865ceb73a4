// Package config handles workspace configuration for uiauto.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the workspace configuration (uiauto.yaml).
type Config struct {
	// Server connection: either a forwarded TCP port or a unix socket.
	Port   int    `yaml:"port"`
	Socket string `yaml:"socket"`

	// Logging
	LogFile string `yaml:"logFile"` // Global log path; empty disables file logging

	// Defaults for wait-style operations
	WaitTimeoutMs int `yaml:"waitTimeoutMs"`
}

// WaitTimeout returns the configured default wait bound, or zero when unset.
func (c *Config) WaitTimeout() time.Duration {
	return time.Duration(c.WaitTimeoutMs) * time.Millisecond
}

// Validate checks that the connection settings are usable.
func (c *Config) Validate() error {
	if c.Port != 0 && c.Socket != "" {
		return fmt.Errorf("config: port and socket are mutually exclusive")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Port)
	}
	return nil
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromDir looks for uiauto.yaml or uiauto.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	for _, name := range []string{"uiauto.yaml", "uiauto.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	// No config file found, return empty config
	return &Config{}, nil
}
