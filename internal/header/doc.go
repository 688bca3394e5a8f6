// Package header owns the UniProtKB FASTA header grammar and its parsing
// primitives.
//
// Ownership boundary:
// - token primitives (literal tags, bounded runs, sentinel scans)
// - field parsers composed from them
// - the canonical and isoform record assemblers
// - the parse error taxonomy
package header
