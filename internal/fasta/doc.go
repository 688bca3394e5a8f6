// Package fasta walks FASTA streams and hands header lines to the parser.
//
// Ownership boundary:
// - file/stdin opening with transparent gzip sniffing
// - header-line iteration (sequence lines are skipped)
// - canonical/isoform variant auto-detection
package fasta
