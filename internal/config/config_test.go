package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Directory != "." {
		t.Errorf("Output.Directory = %q, want %q", cfg.Output.Directory, ".")
	}
	if cfg.Daemon.Schedule != "0 6 * * *" {
		t.Errorf("Daemon.Schedule = %q, want %q", cfg.Daemon.Schedule, "0 6 * * *")
	}
	if cfg.Daemon.LogLevel != "info" {
		t.Errorf("Daemon.LogLevel = %q, want %q", cfg.Daemon.LogLevel, "info")
	}
}

func TestLoad_File(t *testing.T) {
	content := `
output:
  directory: /tmp/calendars
daemon:
  schedule: "30 5 * * *"
  log_level: debug
  system_tray: true
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Directory != "/tmp/calendars" {
		t.Errorf("Output.Directory = %q, want %q", cfg.Output.Directory, "/tmp/calendars")
	}
	if cfg.Daemon.Schedule != "30 5 * * *" {
		t.Errorf("Daemon.Schedule = %q, want %q", cfg.Daemon.Schedule, "30 5 * * *")
	}
	if !cfg.Daemon.SystemTray {
		t.Error("Daemon.SystemTray = false, want true")
	}
}

func TestLoad_InvalidSchedule(t *testing.T) {
	content := `
daemon:
  schedule: "not a cron expression"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for invalid schedule, got nil")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() expected error for missing explicit config file, got nil")
	}
}
