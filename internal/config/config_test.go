package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keyrelay.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if !cfg.Delegates.Channel.Enabled {
		t.Error("Delegates.Channel.Enabled = false, want true")
	}
	if cfg.Delegates.Script.QueueSize != 128 {
		t.Errorf("Delegates.Script.QueueSize = %d, want 128", cfg.Delegates.Script.QueueSize)
	}
	if !cfg.Console.Loopback {
		t.Error("Console.Loopback = false, want true")
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"
file = "/tmp/keyrelay.log"

[delegates.channel]
enabled = false

[delegates.script]
path = "filters/quit.lua"
queue_size = 16

[console]
loopback = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.File != "/tmp/keyrelay.log" {
		t.Errorf("Logging.File = %q, want %q", cfg.Logging.File, "/tmp/keyrelay.log")
	}
	if cfg.Delegates.Channel.Enabled {
		t.Error("Delegates.Channel.Enabled = true, want false")
	}
	if cfg.Delegates.Script.Path != "filters/quit.lua" {
		t.Errorf("Delegates.Script.Path = %q, want %q", cfg.Delegates.Script.Path, "filters/quit.lua")
	}
	if cfg.Delegates.Script.QueueSize != 16 {
		t.Errorf("Delegates.Script.QueueSize = %d, want 16", cfg.Delegates.Script.QueueSize)
	}
	if cfg.Console.Loopback {
		t.Error("Console.Loopback = true, want false")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "warn"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
	if cfg.Delegates.Script.QueueSize != 128 {
		t.Errorf("Delegates.Script.QueueSize = %d, want default 128", cfg.Delegates.Script.QueueSize)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load() accepted a missing file")
	}

	bad := writeConfig(t, `logging = not toml`)
	if _, err := Load(bad); err == nil {
		t.Error("Load() accepted unparseable TOML")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"LOG_LEVEL", "error")
	t.Setenv(EnvPrefix+"SCRIPT", "override.lua")
	t.Setenv(EnvPrefix+"SCRIPT_QUEUE", "32")
	t.Setenv(EnvPrefix+"LOOPBACK", "false")

	path := writeConfig(t, `
[logging]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want env override %q", cfg.Logging.Level, "error")
	}
	if cfg.Delegates.Script.Path != "override.lua" {
		t.Errorf("Delegates.Script.Path = %q, want %q", cfg.Delegates.Script.Path, "override.lua")
	}
	if cfg.Delegates.Script.QueueSize != 32 {
		t.Errorf("Delegates.Script.QueueSize = %d, want 32", cfg.Delegates.Script.QueueSize)
	}
	if cfg.Console.Loopback {
		t.Error("Console.Loopback = true, want env override false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"zero queue", func(c *Config) { c.Delegates.Script.QueueSize = 0 }, true},
		{"negative queue", func(c *Config) { c.Delegates.Script.QueueSize = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, want ErrInvalid", err)
			}
		})
	}
}
