package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/danmuck/fastahdr/internal/config"
	"github.com/danmuck/fastahdr/internal/fasta"
	"github.com/danmuck/fastahdr/internal/header"
	"github.com/danmuck/fastahdr/internal/observability"
)

// outputRecord is one JSON line of fastahdrctl output.
type outputRecord struct {
	File      string            `json:"file,omitempty"`
	Line      int               `json:"line"`
	Variant   string            `json:"variant"`
	Canonical *header.Canonical `json:"canonical,omitempty"`
	Isoform   *header.Isoform   `json:"isoform,omitempty"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fastahdrctl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		cfgPath    string
		output     string
		variant    string
		failFast   bool
		logLevel   string
		initConfig string
	)
	flag.StringVar(&cfgPath, "config", "", "path to TOML scan config")
	flag.StringVar(&output, "out", "", `output path ("-" for stdout)`)
	flag.StringVar(&variant, "variant", "", "header variant: auto, canonical or isoform")
	flag.BoolVar(&failFast, "fail-fast", false, "stop at the first malformed header")
	flag.StringVar(&logLevel, "log-level", "", "log level")
	flag.StringVar(&initConfig, "init-config", "", "write a scan config template to the given path and exit")
	flag.Parse()

	if initConfig != "" {
		return config.WriteTemplate(initConfig, "scan", false)
	}

	cfg := config.DefaultScanConfig()
	if cfgPath != "" {
		loaded, err := loadScanConfig(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags win over file values; positional args are input paths.
	if output != "" {
		cfg.Output = output
	}
	if variant != "" {
		cfg.Variant = variant
	}
	if failFast {
		cfg.FailFast = true
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if args := flag.Args(); len(args) > 0 {
		cfg.Inputs = args
	}
	if len(cfg.Inputs) == 0 {
		cfg.Inputs = []string{"-"}
	}
	if err := config.ValidateScanConfig(cfg); err != nil {
		return err
	}

	logger := observability.InitLogger("fastahdrctl", cfg.LogLevel)

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	enc := json.NewEncoder(out)
	var parsed, failed int
	for _, path := range cfg.Inputs {
		if err := scanFile(path, cfg, enc, logger, &parsed, &failed); err != nil {
			return err
		}
	}
	logger.Info().Int("parsed", parsed).Int("failed", failed).Msg("scan complete")
	return nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open output %s: %w", path, err)
	}
	return f, f.Close, nil
}

func scanFile(path string, cfg config.ScanConfig, enc *json.Encoder, logger zerolog.Logger, parsed, failed *int) error {
	rc, err := fasta.Open(path)
	if err != nil {
		return fmt.Errorf("open input %s: %w", path, err)
	}
	defer rc.Close()

	s := fasta.NewScanner(rc)
	for {
		line, n, err := s.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		rec, perr := parseLine(line, cfg.Variant)
		if perr != nil {
			*failed++
			logger.Warn().
				Str("file", path).
				Int("line", n).
				Str("kind", observability.FailureKind(perr)).
				Err(perr).
				Msg("malformed header")
			if cfg.FailFast {
				return fmt.Errorf("parse %s:%d: %w", path, n, perr)
			}
			continue
		}
		*parsed++
		rec.File = displayPath(path)
		rec.Line = n
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
}

func parseLine(line []byte, variant string) (outputRecord, error) {
	switch variant {
	case config.VariantCanonical:
		can, err := header.ParseCanonical(line)
		if err != nil {
			return outputRecord{}, err
		}
		return outputRecord{Variant: config.VariantCanonical, Canonical: &can}, nil
	case config.VariantIsoform:
		iso, err := header.ParseIsoform(line)
		if err != nil {
			return outputRecord{}, err
		}
		return outputRecord{Variant: config.VariantIsoform, Isoform: &iso}, nil
	default:
		can, iso, err := fasta.Parse(line)
		if err != nil {
			return outputRecord{}, err
		}
		if can != nil {
			return outputRecord{Variant: config.VariantCanonical, Canonical: can}, nil
		}
		return outputRecord{Variant: config.VariantIsoform, Isoform: iso}, nil
	}
}

func displayPath(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}
