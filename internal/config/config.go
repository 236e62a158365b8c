package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/danmuck/umpwire/codec"
)

type MonitorConfig struct {
	Name  string `toml:"name"`
	Addr  string `toml:"addr"`
	Mode  string `toml:"mode"`
	Group int    `toml:"group"`
}

func LoadMonitorConfig(path string) (MonitorConfig, error) {
	var cfg MonitorConfig
	if err := loadToml(path, &cfg); err != nil {
		return MonitorConfig{}, err
	}
	applyMonitorDefaults(&cfg)
	if err := ValidateMonitorConfig(cfg); err != nil {
		return MonitorConfig{}, err
	}
	return cfg, nil
}

func DefaultMonitorConfig() MonitorConfig {
	var cfg MonitorConfig
	applyMonitorDefaults(&cfg)
	return cfg
}

func applyMonitorDefaults(cfg *MonitorConfig) {
	if cfg.Name == "" {
		cfg.Name = "umpmon"
	}
	if cfg.Addr == "" {
		cfg.Addr = ":9300"
	}
	if cfg.Mode == "" {
		cfg.Mode = "strict"
	}
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateMonitorConfig(cfg MonitorConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("monitor config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("monitor config missing addr")
	}
	if _, err := codec.ParseMode(cfg.Mode); err != nil {
		return fmt.Errorf("monitor config invalid mode: %w", err)
	}
	if cfg.Group < 0 || cfg.Group > 15 {
		return fmt.Errorf("monitor config group %d out of range", cfg.Group)
	}
	return nil
}
