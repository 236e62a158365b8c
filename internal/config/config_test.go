package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/umpwire/internal/testutil/testlog"
)

func TestLoadMonitorConfigDefaults(t *testing.T) {
	testlog.Start(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadMonitorConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Name != "umpmon" || cfg.Addr != ":9300" || cfg.Mode != "strict" || cfg.Group != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadMonitorConfigOverrides(t *testing.T) {
	testlog.Start(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
name = "studio-mon"
addr = ":9400"
mode = "lenient"
group = 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadMonitorConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Name != "studio-mon" || cfg.Addr != ":9400" || cfg.Mode != "lenient" || cfg.Group != 5 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadMonitorConfigBadMode(t *testing.T) {
	testlog.Start(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`mode = "casual"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadMonitorConfig(path); err == nil {
		t.Fatalf("expected mode error")
	}
}

func TestLoadMonitorConfigBadGroup(t *testing.T) {
	testlog.Start(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`group = 16`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadMonitorConfig(path); err == nil {
		t.Fatalf("expected group error")
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	testlog.Start(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := WriteTemplate(path, "monitor", false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if _, err := LoadMonitorConfig(path); err != nil {
		t.Fatalf("template must validate: %v", err)
	}
	if err := WriteTemplate(path, "monitor", false); err == nil {
		t.Fatalf("expected overwrite refusal")
	}
	if _, err := Template("ghost"); err == nil {
		t.Fatalf("expected unknown kind error")
	}
}
