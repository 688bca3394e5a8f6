package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "server":
		return serverTemplate, nil
	case "scan":
		return scanTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const serverTemplate = `addr = ":9000"
cors_origins = ["http://localhost:3000"]
log_level = "info"
`

const scanTemplate = `# Files to parse; "-" reads FASTA from stdin.
inputs = ["-"]

# Where JSON lines go; "-" writes to stdout.
output = "-"

# auto tries the canonical grammar first, then the isoform grammar.
variant = "auto"

# Stop at the first malformed header instead of skipping it.
fail_fast = false

log_level = "info"
`
