// Package config handles configuration for headline.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// DefaultEndpoint is the fixed message endpoint. It is set at build time:
//
//	go build -ldflags "-X github.com/diogo/headline/internal/config.DefaultEndpoint=http://localhost:9000"
var DefaultEndpoint = "http://localhost:8000"

// Config represents the user configuration
type Config struct {
	// TUITheme selects the color scheme of the interactive view.
	TUITheme string `json:"tui_theme,omitempty"`
	// HeadingStyle is the glamour style used when printing the heading
	// outside the interactive view.
	HeadingStyle string `json:"heading_style,omitempty"`
	// CopyToClipboard copies a fetched message to the clipboard in print mode.
	CopyToClipboard bool `json:"copy_to_clipboard"`
	// Verbose enables V(1) entries on the diagnostic channel.
	Verbose bool `json:"verbose"`
	// LogFile is where the interactive view writes diagnostics.
	LogFile string `json:"log_file,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	homeDir, _ := os.UserHomeDir()
	return Config{
		TUITheme:        "tokyonight",
		HeadingStyle:    "dark",
		CopyToClipboard: false,
		Verbose:         false,
		LogFile:         filepath.Join(homeDir, ".headline", "headline.log"),
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".headline"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// GetLogFile returns the log file from config, falling back to the default location
func GetLogFile(cfg Config) (string, error) {
	if cfg.LogFile != "" {
		return cfg.LogFile, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "headline.log"), nil
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if config doesn't exist
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setters maps config keys (as they appear in config.json) to field updates
var setters = map[string]func(*Config, string) error{
	"tui_theme": func(c *Config, v string) error {
		c.TUITheme = v
		return nil
	},
	"heading_style": func(c *Config, v string) error {
		c.HeadingStyle = v
		return nil
	},
	"copy_to_clipboard": func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("copy_to_clipboard: %w", err)
		}
		c.CopyToClipboard = b
		return nil
	},
	"verbose": func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("verbose: %w", err)
		}
		c.Verbose = b
		return nil
	},
	"log_file": func(c *Config, v string) error {
		c.LogFile = v
		return nil
	},
}

// Set updates the field named key with value
func (c *Config) Set(key, value string) error {
	set, ok := setters[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (available: %v)", key, Keys())
	}
	return set(c, value)
}

// Keys returns the settable config keys in sorted order
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
