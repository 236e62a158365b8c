package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDumpConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
mode = "lenient"
group = 3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadDumpConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Mode != "lenient" {
		t.Fatalf("unexpected mode: %q", cfg.Mode)
	}
	if cfg.Group != 3 {
		t.Fatalf("unexpected group: %d", cfg.Group)
	}
}

func TestLoadDumpConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadDumpConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Mode != "strict" {
		t.Fatalf("unexpected mode: %q", cfg.Mode)
	}
	if cfg.Group != -1 {
		t.Fatalf("unexpected group: %d", cfg.Group)
	}
}

func TestLoadDumpConfigBadMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
mode = "casual"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := loadDumpConfig(path); err == nil {
		t.Fatalf("expected mode error")
	}
}

func TestLoadDumpConfigBadGroup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
group = 16
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := loadDumpConfig(path); err == nil {
		t.Fatalf("expected group error")
	}
}
