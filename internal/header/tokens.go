package header

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
)

// The two accepted accession shapes, per the UniProt accession number format.
const accessionPattern = `[OPQ][0-9][A-Z0-9]{3}[0-9]|[A-NR-Z][0-9]([A-Z][A-Z0-9]{2}[0-9]){1,2}`

// Compiled once on first use, read-only afterwards; concurrent parses share it.
var accessionRE = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(accessionPattern)
})

// tag consumes the exact literal prefix lit.
func tag(in []byte, lit string) ([]byte, error) {
	if !bytes.HasPrefix(in, []byte(lit)) {
		return in, syntaxErr(KindTag, in)
	}
	return in[len(lit):], nil
}

// space consumes one or more space or tab bytes.
func space(in []byte) ([]byte, error) {
	n := 0
	for n < len(in) && (in[n] == ' ' || in[n] == '\t') {
		n++
	}
	if n == 0 {
		return in, syntaxErr(KindBounds, in)
	}
	return in[n:], nil
}

// takeWhileMN consumes a run of bytes satisfying pred, at least min and at
// most max long. The run stops at max; bytes past it are left for the next
// parser rather than failing the run.
func takeWhileMN(in []byte, min, max int, pred func(byte) bool) (rest, span []byte, err error) {
	n := 0
	for n < len(in) && n < max && pred(in[n]) {
		n++
	}
	if n < min {
		return in, nil, syntaxErr(KindBounds, in)
	}
	return in[n:], in[:n], nil
}

// takeWhile1 consumes one or more bytes satisfying pred, unbounded above.
func takeWhile1(in []byte, pred func(byte) bool) (rest, span []byte, err error) {
	return takeWhileMN(in, 1, len(in), pred)
}

// takeDigits is takeWhileMN over ASCII digits.
func takeDigits(in []byte, min, max int) (rest, span []byte, err error) {
	return takeWhileMN(in, min, max, isDigit)
}

// take consumes exactly n bytes verbatim.
func take(in []byte, n int) (rest, span []byte, err error) {
	if len(in) < n {
		return in, nil, syntaxErr(KindBounds, in)
	}
	return in[n:], in[:n], nil
}

// takeUntil consumes everything before the first occurrence of sentinel,
// which itself is left unconsumed.
func takeUntil(in []byte, sentinel string) (rest, span []byte, err error) {
	i := bytes.Index(in, []byte(sentinel))
	if i < 0 {
		return in, nil, syntaxErr(KindSentinel, in)
	}
	return in[i:], in[:i], nil
}

// accession returns the leftmost accession match anywhere in the remaining
// input and advances past its end. The scan is deliberately unanchored:
// upstream parsers may have left stray bytes before the identifier, and
// anchoring would change the set of accepted headers.
func accession(in []byte) (rest, span []byte, err error) {
	loc := accessionRE().FindIndex(in)
	if loc == nil {
		return in, nil, syntaxErr(KindAccession, in)
	}
	return in[loc[1]:], in[loc[0]:loc[1]], nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

// lossy decodes bytes as UTF-8, substituting U+FFFD for invalid sequences.
func lossy(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
