package header

import "strings"

// Canonical is one parsed canonical UniProtKB FASTA header.
//
// Format:
//
//	>db|UniqueIdentifier|EntryName ProteinName OS=OrganismName OX=OrganismIdentifier [GN=GeneName ]PE=ProteinExistence SV=SequenceVersion
type Canonical struct {
	Database           Database         `json:"database"`
	Identifier         string           `json:"identifier"`
	EntryName          string           `json:"entry_name"`
	ProteinName        string           `json:"protein_name"`
	OrganismName       string           `json:"organism_name"`
	OrganismIdentifier string           `json:"organism_identifier"`
	GeneName           *string          `json:"gene_name,omitempty"`
	ProteinExistence   ProteinExistence `json:"protein_existence"`
	SequenceVersion    string           `json:"sequence_version"`
}

// ParseCanonical parses one canonical header line, leading '>' included.
// Bytes left over after the sequence version are unconsumed, not an error.
func ParseCanonical(in []byte) (Canonical, error) {
	if len(in) == 0 {
		return Canonical{}, ErrIncomplete
	}

	rest, err := tag(in, ">")
	if err != nil {
		return Canonical{}, err
	}
	rest, db, err := database(rest)
	if err != nil {
		return Canonical{}, err
	}
	rest, err = tag(rest, "|")
	if err != nil {
		return Canonical{}, err
	}
	rest, id, err := identifier(rest)
	if err != nil {
		return Canonical{}, err
	}
	rest, err = tag(rest, "|")
	if err != nil {
		return Canonical{}, err
	}
	rest, entry, err := entryName(rest)
	if err != nil {
		return Canonical{}, err
	}
	rest, err = space(rest)
	if err != nil {
		return Canonical{}, err
	}
	rest, protein, err := proteinName(rest)
	if err != nil {
		return Canonical{}, err
	}
	rest, err = space(rest)
	if err != nil {
		return Canonical{}, err
	}
	rest, organism, err := organismName(rest)
	if err != nil {
		return Canonical{}, err
	}
	rest, err = space(rest)
	if err != nil {
		return Canonical{}, err
	}
	rest, taxid, err := organismID(rest)
	if err != nil {
		return Canonical{}, err
	}
	rest, err = space(rest)
	if err != nil {
		return Canonical{}, err
	}
	rest, gene := optionalGeneName(rest)
	rest, pe, err := existence(rest)
	if err != nil {
		return Canonical{}, err
	}
	rest, err = space(rest)
	if err != nil {
		return Canonical{}, err
	}
	_, ver, err := version(rest)
	if err != nil {
		return Canonical{}, err
	}

	return Canonical{
		Database:           db,
		Identifier:         strings.TrimSpace(lossy(id)),
		EntryName:          string(entry),
		ProteinName:        strings.TrimSpace(lossy(protein)),
		OrganismName:       strings.TrimSpace(lossy(organism)),
		OrganismIdentifier: strings.TrimSpace(lossy(taxid)),
		GeneName:           geneString(gene),
		ProteinExistence:   pe,
		SequenceVersion:    strings.TrimSpace(lossy(ver)),
	}, nil
}

func geneString(b []byte) *string {
	if b == nil {
		return nil
	}
	s := strings.TrimSpace(lossy(b))
	return &s
}
