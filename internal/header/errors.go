package header

import (
	"errors"
	"fmt"
)

// Kind identifies which class of sub-parser rejected the input.
type Kind string

const (
	KindTag       Kind = "tag"       // literal tag mismatch
	KindAccession Kind = "accession" // no accession pattern anywhere in the input
	KindBounds    Kind = "bounds"    // bounded run shorter than its minimum
	KindSentinel  Kind = "sentinel"  // sentinel substring never appears
	KindExistence Kind = "existence" // PE digit outside 1..5
)

var (
	ErrMalformed  = errors.New("header: malformed input")
	ErrIncomplete = errors.New("header: incomplete input")
)

// SyntaxError reports where and why a parse failed. Remaining holds the
// unconsumed input at the failure point so callers can build diagnostics
// without re-parsing.
type SyntaxError struct {
	Kind      Kind
	Remaining []byte
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("header: malformed input (%s) at %q", e.Kind, preview(e.Remaining))
}

// Unwrap lets callers match with errors.Is(err, ErrMalformed).
func (e *SyntaxError) Unwrap() error { return ErrMalformed }

func syntaxErr(kind Kind, remaining []byte) error {
	return &SyntaxError{Kind: kind, Remaining: remaining}
}

// preview keeps error messages bounded; input bytes may not be valid UTF-8.
func preview(b []byte) string {
	const max = 48
	if len(b) > max {
		return lossy(b[:max]) + "..."
	}
	return lossy(b)
}
