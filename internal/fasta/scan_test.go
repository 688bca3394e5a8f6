package fasta

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/fastahdr/internal/header"
)

const sampleFasta = `>sp|P02668|CASK_BOVIN Kappa-casein OS=Bos taurus OX=9913 GN=CSN3 PE=1 SV=1
MMKSFFLVVTILALTLPFLGAQEQNQEQPIRCEKDERFFSDKIAKYIPIQYVLSRYPSYGLNYYQQKPVALINNQFLPYPYYAKPAAVRSPAQILQ
>sp|Q4R572-2|1433B_MACFA Isoform Short of 14-3-3 protein beta/alpha OS=Macaca fascicularis OX=9541 GN=YWHAB
MTMDKSELVQKAKLAEQAERYDDMAAAMKAVTEQGHELSNEERNLLSVAYKNVVGARRSS
`

func TestScannerYieldsOnlyHeaderLines(t *testing.T) {
	s := NewScanner(strings.NewReader(sampleFasta))

	line, n, err := s.Next()
	if err != nil {
		t.Fatalf("first header: %v", err)
	}
	if n != 1 || !bytes.HasPrefix(line, []byte(">sp|P02668")) {
		t.Fatalf("unexpected first header at line %d: %q", n, line)
	}

	line, n, err = s.Next()
	if err != nil {
		t.Fatalf("second header: %v", err)
	}
	if n != 3 || !bytes.HasPrefix(line, []byte(">sp|Q4R572-2")) {
		t.Fatalf("unexpected second header at line %d: %q", n, line)
	}

	if _, _, err = s.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestParseAutoDetectsVariant(t *testing.T) {
	can, iso, err := Parse([]byte(">sp|P02668|CASK_BOVIN Kappa-casein OS=Bos taurus OX=9913 GN=CSN3 PE=1 SV=1"))
	if err != nil {
		t.Fatalf("canonical parse: %v", err)
	}
	if can == nil || iso != nil {
		t.Fatalf("expected canonical record, got can=%v iso=%v", can, iso)
	}
	if can.Identifier != "P02668" {
		t.Fatalf("unexpected identifier: %q", can.Identifier)
	}

	can, iso, err = Parse([]byte(">sp|Q4R572-2|1433B_MACFA Isoform Short of 14-3-3 protein beta/alpha OS=Macaca fascicularis OX=9541 GN=YWHAB"))
	if err != nil {
		t.Fatalf("isoform parse: %v", err)
	}
	if iso == nil || can != nil {
		t.Fatalf("expected isoform record, got can=%v iso=%v", can, iso)
	}
	if iso.Identifier != "Q4R572" || iso.Isoform != "2" {
		t.Fatalf("unexpected isoform split: %q %q", iso.Identifier, iso.Isoform)
	}
}

func TestParseMalformedKeepsClassification(t *testing.T) {
	_, _, err := Parse([]byte(">xx|nothing here"))
	var syn *header.SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
	if syn.Kind != header.KindTag {
		t.Fatalf("unexpected kind: %s", syn.Kind)
	}
}

func TestOpenPlainAndGzip(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "sample.fasta")
	if err := os.WriteFile(plain, []byte(sampleFasta), 0o644); err != nil {
		t.Fatalf("write plain: %v", err)
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(sampleFasta)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	zipped := filepath.Join(dir, "sample.fasta.gz")
	if err := os.WriteFile(zipped, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write gzip: %v", err)
	}

	for _, path := range []string{plain, zipped} {
		rc, err := Open(path)
		if err != nil {
			t.Fatalf("open %s: %v", path, err)
		}
		got, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if err := rc.Close(); err != nil {
			t.Fatalf("close %s: %v", path, err)
		}
		if string(got) != sampleFasta {
			t.Fatalf("content mismatch for %s", path)
		}
	}
}
