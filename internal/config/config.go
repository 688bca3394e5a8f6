package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Variant names accepted anywhere a header grammar is selected.
const (
	VariantAuto      = "auto"
	VariantCanonical = "canonical"
	VariantIsoform   = "isoform"
)

// ServerConfig configures the headerd HTTP service.
type ServerConfig struct {
	Addr        string   `toml:"addr"`
	CorsOrigins []string `toml:"cors_origins"`
	LogLevel    string   `toml:"log_level"`
}

// ScanConfig configures a fastahdrctl batch run.
type ScanConfig struct {
	Inputs   []string `toml:"inputs"`
	Output   string   `toml:"output"`
	Variant  string   `toml:"variant"`
	FailFast bool     `toml:"fail_fast"`
	LogLevel string   `toml:"log_level"`
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:     ":9000",
		LogLevel: "info",
	}
}

func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		Output:   "-",
		Variant:  VariantAuto,
		LogLevel: "info",
	}
}

func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()
	if err := loadToml(path, &cfg); err != nil {
		return ServerConfig{}, err
	}
	if err := ValidateServerConfig(cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

func LoadScanConfig(path string) (ScanConfig, error) {
	cfg := DefaultScanConfig()
	if err := loadToml(path, &cfg); err != nil {
		return ScanConfig{}, err
	}
	if err := ValidateScanConfig(cfg); err != nil {
		return ScanConfig{}, err
	}
	return cfg, nil
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

func ValidateServerConfig(cfg ServerConfig) error {
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("server config missing addr")
	}
	return nil
}

func ValidateScanConfig(cfg ScanConfig) error {
	if err := ValidateVariant(cfg.Variant); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.Output) == "" {
		return fmt.Errorf("scan config missing output")
	}
	return nil
}

func ValidateVariant(variant string) error {
	switch strings.ToLower(strings.TrimSpace(variant)) {
	case VariantAuto, VariantCanonical, VariantIsoform:
		return nil
	default:
		return fmt.Errorf("unknown variant %q (expected auto, canonical or isoform)", variant)
	}
}
