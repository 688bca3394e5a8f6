package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"

	"github.com/danmuck/fastahdr/internal/header"
)

// maxLineBytes bounds a single header line; UniProt headers are far shorter.
const maxLineBytes = 1024 * 1024

// multiReadCloser closes every wrapped closer when Close is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens path ("-" for stdin) and transparently decompresses gzip input,
// sniffing the two magic bytes.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return wrapGzip(io.NopCloser(os.Stdin))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return wrapGzip(f)
}

func wrapGzip(rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	if magic, _ := br.Peek(2); len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			rc.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gz, closers: []io.Closer{gz, rc}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{rc}}, nil
}

// Scanner yields the header lines of a FASTA stream.
type Scanner struct {
	s    *bufio.Scanner
	line int
}

func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Scanner{s: s}
}

// Next returns the next header line and its 1-based line number. The returned
// slice is a copy and stays valid across calls. io.EOF signals a clean end.
func (s *Scanner) Next() ([]byte, int, error) {
	for s.s.Scan() {
		s.line++
		line := s.s.Bytes()
		if len(line) > 0 && line[0] == '>' {
			out := make([]byte, len(line))
			copy(out, line)
			return out, s.line, nil
		}
	}
	if err := s.s.Err(); err != nil {
		return nil, s.line, err
	}
	return nil, s.line, io.EOF
}

// Parse classifies one header line, trying the canonical grammar first and
// falling back to the isoform grammar. Exactly one of the returned records is
// non-nil on success. When both grammars reject the line, the canonical
// failure is returned: it carries the classification for the common case.
func Parse(line []byte) (*header.Canonical, *header.Isoform, error) {
	can, err := header.ParseCanonical(line)
	if err == nil {
		return &can, nil, nil
	}
	iso, isoErr := header.ParseIsoform(line)
	if isoErr == nil {
		return nil, &iso, nil
	}
	return nil, nil, err
}
