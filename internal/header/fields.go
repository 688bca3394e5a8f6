package header

// database maps the sp/tr tag onto its Database value.
func database(in []byte) ([]byte, Database, error) {
	if rest, err := tag(in, "sp"); err == nil {
		return rest, SwissProt, nil
	}
	if rest, err := tag(in, "tr"); err == nil {
		return rest, TrEMBL, nil
	}
	return in, 0, syntaxErr(KindTag, in)
}

// identifier is the unanchored accession scan.
func identifier(in []byte) (rest, id []byte, err error) {
	return accession(in)
}

// isoformIdentifier splits an isoform id into the accession and the numeric
// suffix after the dash.
func isoformIdentifier(in []byte) (rest, id, iso []byte, err error) {
	rest, id, err = accession(in)
	if err != nil {
		return nil, nil, nil, err
	}
	rest, err = tag(rest, "-")
	if err != nil {
		return nil, nil, nil, err
	}
	rest, iso, err = takeWhile1(rest, isDigit)
	if err != nil {
		return nil, nil, nil, err
	}
	return rest, id, iso, nil
}

// entryName parses <2-12 alnum>_<2-5 alnum>. The left run is taken greedily,
// so an overlong left mnemonic surfaces as a tag mismatch on the divider.
func entryName(in []byte) (rest, name []byte, err error) {
	rest, left, err := takeWhileMN(in, 2, 12, isAlnum)
	if err != nil {
		return nil, nil, err
	}
	rest, err = tag(rest, "_")
	if err != nil {
		return nil, nil, err
	}
	rest, right, err := takeWhileMN(rest, 2, 5, isAlnum)
	if err != nil {
		return nil, nil, err
	}
	return rest, in[:len(left)+1+len(right)], nil
}

// proteinName is everything before the " OS=" sentinel.
func proteinName(in []byte) (rest, name []byte, err error) {
	return takeUntil(in, " OS=")
}

// organismName sits between OS= and the " OX=" sentinel. It is not always a
// binomial species name; viruses and strain annotations make it free text.
func organismName(in []byte) (rest, name []byte, err error) {
	rest, err = tag(in, "OS=")
	if err != nil {
		return nil, nil, err
	}
	return takeUntil(rest, " OX=")
}

// organismID is the 1-7 digit NCBI taxonomy id after OX=.
func organismID(in []byte) (rest, id []byte, err error) {
	rest, err = tag(in, "OX=")
	if err != nil {
		return nil, nil, err
	}
	return takeDigits(rest, 1, 7)
}

// geneName parses GN= followed by either free text up to " PE=" or, when the
// header carries no existence field, a bare token of alnum/-/_/. bytes. Gene
// names on UniProtKB can be nearly anything, spaces and digits included.
func geneName(in []byte) (rest, name []byte, err error) {
	rest, err = tag(in, "GN=")
	if err != nil {
		return nil, nil, err
	}
	if r, span, uerr := takeUntil(rest, " PE="); uerr == nil {
		return r, span, nil
	}
	return takeWhile1(rest, func(c byte) bool {
		return isAlnum(c) || c == '-' || c == '_' || c == '.'
	})
}

// optionalGeneName accepts a missing GN= field, plus any trailing whitespace
// after it. On failure the cursor backtracks to the start of the field and
// name is nil.
func optionalGeneName(in []byte) (rest, name []byte) {
	rest, name, err := geneName(in)
	if err != nil {
		rest, name = in, nil
	}
	if r, serr := space(rest); serr == nil {
		rest = r
	}
	return rest, name
}

// existence maps PE=1..5 onto ProteinExistence. A digit run outside that
// range is a grammar violation, reported with its own kind.
func existence(in []byte) (rest []byte, pe ProteinExistence, err error) {
	rest, err = tag(in, "PE=")
	if err != nil {
		return nil, 0, err
	}
	rest, span, err := takeWhile1(rest, isDigit)
	if err != nil {
		return nil, 0, err
	}
	switch string(span) {
	case "1":
		pe = ExperimentalEvidenceProtein
	case "2":
		pe = ExperimentalEvidenceTranscript
	case "3":
		pe = InferredHomology
	case "4":
		pe = Predicted
	case "5":
		pe = Uncertain
	default:
		return nil, 0, syntaxErr(KindExistence, in)
	}
	return rest, pe, nil
}

// version takes the single byte after SV= verbatim.
func version(in []byte) (rest, v []byte, err error) {
	rest, err = tag(in, "SV=")
	if err != nil {
		return nil, nil, err
	}
	return take(rest, 1)
}
