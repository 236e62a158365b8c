package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/umpwire/codec"
)

type dumpConfig struct {
	Mode  string `toml:"mode"`
	Group int    `toml:"group"`
}

func defaultDumpConfig() dumpConfig {
	return dumpConfig{Mode: "strict", Group: -1}
}

func loadDumpConfig(path string) (dumpConfig, error) {
	cfg := defaultDumpConfig()

	var raw dumpConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return dumpConfig{}, fmt.Errorf("load umpdump config: %w", err)
	}

	if meta.IsDefined("mode") {
		mode := strings.TrimSpace(raw.Mode)
		if _, err := codec.ParseMode(mode); err != nil {
			return dumpConfig{}, err
		}
		cfg.Mode = mode
	}

	if meta.IsDefined("group") {
		if raw.Group < 0 || raw.Group > 15 {
			return dumpConfig{}, fmt.Errorf("umpdump config group %d out of range", raw.Group)
		}
		cfg.Group = raw.Group
	}

	return cfg, nil
}
