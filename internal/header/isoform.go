package header

import "strings"

// Isoform is one parsed isoform-variant UniProtKB FASTA header. The grammar
// shares the canonical prefix but splits the identifier into accession plus
// isoform number and ends after the optional gene name.
//
// Format:
//
//	>db|IsoID|EntryName ProteinName OS=OrganismName OX=OrganismIdentifier[ GN=GeneName]
type Isoform struct {
	Database           Database `json:"database"`
	Identifier         string   `json:"identifier"`
	Isoform            string   `json:"isoform"`
	EntryName          string   `json:"entry_name"`
	ProteinName        string   `json:"protein_name"`
	OrganismName       string   `json:"organism_name"`
	OrganismIdentifier string   `json:"organism_identifier"`
	GeneName           *string  `json:"gene_name,omitempty"`
}

// ParseIsoform parses one isoform header line, leading '>' included.
// Bytes left over after the gene name are unconsumed, not an error.
func ParseIsoform(in []byte) (Isoform, error) {
	if len(in) == 0 {
		return Isoform{}, ErrIncomplete
	}

	rest, err := tag(in, ">")
	if err != nil {
		return Isoform{}, err
	}
	rest, db, err := database(rest)
	if err != nil {
		return Isoform{}, err
	}
	rest, err = tag(rest, "|")
	if err != nil {
		return Isoform{}, err
	}
	rest, id, iso, err := isoformIdentifier(rest)
	if err != nil {
		return Isoform{}, err
	}
	rest, err = tag(rest, "|")
	if err != nil {
		return Isoform{}, err
	}
	rest, entry, err := entryName(rest)
	if err != nil {
		return Isoform{}, err
	}
	rest, err = space(rest)
	if err != nil {
		return Isoform{}, err
	}
	rest, protein, err := proteinName(rest)
	if err != nil {
		return Isoform{}, err
	}
	rest, err = space(rest)
	if err != nil {
		return Isoform{}, err
	}
	rest, organism, err := organismName(rest)
	if err != nil {
		return Isoform{}, err
	}
	rest, err = space(rest)
	if err != nil {
		return Isoform{}, err
	}
	rest, taxid, err := organismID(rest)
	if err != nil {
		return Isoform{}, err
	}
	rest, err = space(rest)
	if err != nil {
		return Isoform{}, err
	}
	_, gene := optionalGeneName(rest)

	return Isoform{
		Database:           db,
		Identifier:         strings.TrimSpace(lossy(id)),
		Isoform:            strings.TrimSpace(lossy(iso)),
		EntryName:          string(entry),
		ProteinName:        strings.TrimSpace(lossy(protein)),
		OrganismName:       strings.TrimSpace(lossy(organism)),
		OrganismIdentifier: strings.TrimSpace(lossy(taxid)),
		GeneName:           geneString(gene),
	}, nil
}
