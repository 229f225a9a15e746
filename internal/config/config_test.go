package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// setupTestHome points HOME at a temporary directory for the test
func setupTestHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TUITheme != "tokyonight" {
		t.Errorf("Expected default TUI theme to be 'tokyonight', got '%s'", cfg.TUITheme)
	}

	if cfg.HeadingStyle != "dark" {
		t.Errorf("Expected default heading style to be 'dark', got '%s'", cfg.HeadingStyle)
	}

	if cfg.Verbose != false {
		t.Errorf("Expected Verbose to be false, got %v", cfg.Verbose)
	}

	if filepath.Base(cfg.LogFile) != "headline.log" {
		t.Errorf("Expected default log file to be headline.log, got '%s'", cfg.LogFile)
	}
}

func TestDefaultEndpoint(t *testing.T) {
	if DefaultEndpoint != "http://localhost:8000" {
		t.Errorf("DefaultEndpoint = %s, want http://localhost:8000", DefaultEndpoint)
	}
}

func TestGetConfigDir(t *testing.T) {
	home := setupTestHome(t)

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() returned error: %v", err)
	}
	if dir != filepath.Join(home, ".headline") {
		t.Errorf("GetConfigDir() = %s, want %s", dir, filepath.Join(home, ".headline"))
	}
}

func TestEnsureConfigDir(t *testing.T) {
	setupTestHome(t)

	dir, err := EnsureConfigDir()
	if err != nil {
		t.Fatalf("EnsureConfigDir() returned error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("config dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("config dir is not a directory")
	}
	if info.Mode().Perm() != 0o700 {
		t.Errorf("config dir mode = %o, want 700", info.Mode().Perm())
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	setupTestHome(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if cfg.TUITheme != DefaultConfig().TUITheme {
		t.Errorf("Expected defaults, got TUITheme %s", cfg.TUITheme)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	home := setupTestHome(t)
	dir := filepath.Join(home, ".headline")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err == nil {
		t.Error("Expected parse error for invalid JSON")
	}
	if cfg.TUITheme != DefaultConfig().TUITheme {
		t.Errorf("Expected defaults on parse error, got TUITheme %s", cfg.TUITheme)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	home := setupTestHome(t)
	dir := filepath.Join(home, ".headline")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"verbose": true}`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if !cfg.Verbose {
		t.Error("Expected Verbose to be loaded from file")
	}
	if cfg.HeadingStyle != "dark" {
		t.Errorf("Expected HeadingStyle default to survive, got %s", cfg.HeadingStyle)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	home := setupTestHome(t)

	cfg := DefaultConfig()
	cfg.TUITheme = "nord"
	cfg.CopyToClipboard = true
	cfg.LogFile = filepath.Join(home, "custom.log")

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() returned error: %v", err)
	}

	path, _ := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("config file is not JSON: %v", err)
	}
	if raw["tui_theme"] != "nord" {
		t.Errorf("tui_theme = %v, want nord", raw["tui_theme"])
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("LoadConfig() = %+v, want %+v", loaded, cfg)
	}
}

func TestGetLogFile(t *testing.T) {
	home := setupTestHome(t)

	got, err := GetLogFile(Config{LogFile: "/tmp/x.log"})
	if err != nil {
		t.Fatalf("GetLogFile() returned error: %v", err)
	}
	if got != "/tmp/x.log" {
		t.Errorf("GetLogFile() = %s, want /tmp/x.log", got)
	}

	got, err = GetLogFile(Config{})
	if err != nil {
		t.Fatalf("GetLogFile() returned error: %v", err)
	}
	want := filepath.Join(home, ".headline", "headline.log")
	if got != want {
		t.Errorf("GetLogFile() = %s, want %s", got, want)
	}
}

func TestConfigSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		check   func(Config) bool
		wantErr bool
	}{
		{"theme", "tui_theme", "dracula", func(c Config) bool { return c.TUITheme == "dracula" }, false},
		{"heading style", "heading_style", "light", func(c Config) bool { return c.HeadingStyle == "light" }, false},
		{"clipboard", "copy_to_clipboard", "true", func(c Config) bool { return c.CopyToClipboard }, false},
		{"verbose", "verbose", "1", func(c Config) bool { return c.Verbose }, false},
		{"log file", "log_file", "/var/log/h.log", func(c Config) bool { return c.LogFile == "/var/log/h.log" }, false},
		{"bad bool", "verbose", "maybe", nil, true},
		{"unknown key", "endpoint", "http://x", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.Set(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && !tt.check(cfg) {
				t.Errorf("Set(%s, %s) did not update config: %+v", tt.key, tt.value, cfg)
			}
		})
	}
}

func TestKeys(t *testing.T) {
	want := []string{"copy_to_clipboard", "heading_style", "log_file", "tui_theme", "verbose"}
	if got := Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}
