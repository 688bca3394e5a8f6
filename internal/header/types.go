package header

import (
	"encoding/json"
	"fmt"
)

// Database identifies which UniProtKB section a header came from.
type Database int

const (
	// SwissProt is the reviewed section, tagged "sp" on the wire.
	SwissProt Database = iota + 1
	// TrEMBL is the unreviewed section, tagged "tr" on the wire.
	TrEMBL
)

func (d Database) String() string {
	switch d {
	case SwissProt:
		return "sp"
	case TrEMBL:
		return "tr"
	default:
		return fmt.Sprintf("Database(%d)", int(d))
	}
}

// MarshalJSON encodes the database as its wire tag.
func (d Database) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Database) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "sp":
		*d = SwissProt
	case "tr":
		*d = TrEMBL
	default:
		return fmt.Errorf("header: unknown database %q", s)
	}
	return nil
}

// ProteinExistence is the UniProt confidence classification for how an
// entry's existence was established (the PE= field, 1..5).
type ProteinExistence int

const (
	ExperimentalEvidenceProtein ProteinExistence = iota + 1
	ExperimentalEvidenceTranscript
	InferredHomology
	Predicted
	Uncertain
)

func (p ProteinExistence) String() string {
	switch p {
	case ExperimentalEvidenceProtein:
		return "experimental evidence at protein level"
	case ExperimentalEvidenceTranscript:
		return "experimental evidence at transcript level"
	case InferredHomology:
		return "protein inferred from homology"
	case Predicted:
		return "protein predicted"
	case Uncertain:
		return "protein uncertain"
	default:
		return fmt.Sprintf("ProteinExistence(%d)", int(p))
	}
}
