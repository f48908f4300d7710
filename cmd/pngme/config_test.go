package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "log_level: debug\nlog_format: json\nserver_address: 127.0.0.1:9999\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := loadConfigFrom(path)
	if cfg.LogLevel != "debug" {
		t.Fatalf("log_level: got %q want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("log_format: got %q want %q", cfg.LogFormat, "json")
	}
	if cfg.ServerAddress != "127.0.0.1:9999" {
		t.Fatalf("server_address: got %q want %q", cfg.ServerAddress, "127.0.0.1:9999")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	cfg := loadConfigFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if cfg != (Config{}) {
		t.Fatalf("expected zero config for missing file, got %+v", cfg)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: [unterminated"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg := loadConfigFrom(path)
	if cfg != (Config{}) {
		t.Fatalf("expected zero config for malformed file, got %+v", cfg)
	}
}
