package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/fastahdr/internal/config"
)

// fastahdrctl scan.toml key mapping onto ScanConfig.
type fileConfig struct {
	Inputs   []string `toml:"inputs"`
	Output   string   `toml:"output"`
	Variant  string   `toml:"variant"`
	FailFast bool     `toml:"fail_fast"`
	LogLevel string   `toml:"log_level"`
}

// loadScanConfig overlays file values onto the defaults; keys absent from the
// file keep their default.
func loadScanConfig(path string) (config.ScanConfig, error) {
	cfg := config.DefaultScanConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config.ScanConfig{}, fmt.Errorf("load scan config: %w", err)
	}

	if meta.IsDefined("inputs") {
		cfg.Inputs = raw.Inputs
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.TrimSpace(raw.Output)
	}
	if meta.IsDefined("variant") {
		cfg.Variant = strings.TrimSpace(raw.Variant)
	}
	if meta.IsDefined("fail_fast") {
		cfg.FailFast = raw.FailFast
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if err := config.ValidateScanConfig(cfg); err != nil {
		return config.ScanConfig{}, fmt.Errorf("load scan config: %w", err)
	}
	return cfg, nil
}
