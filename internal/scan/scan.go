// Package scan reads PAF documents line by line and parses every line with
// its 1-based line number, so failures are numbered diagnostics.
package scan

import (
	"bufio"
	"errors"
	"io"

	paf "github.com/darcyabjones/paf"
)

// Scanner parses one record per call to Scan. Parse failures do not stop
// the scan; they are reported per line through Err.
type Scanner struct {
	r     *bufio.Reader
	line  int
	rec   paf.Record
	err   error
	ioErr error
	done  bool
}

// New returns a Scanner reading from r.
func New(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Scan advances to the next line. It returns false at end of input or on
// a read error (see IOErr). A final line without a newline is scanned.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	b, err := s.r.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		s.ioErr = err
		s.done = true
		return false
	}
	if errors.Is(err, io.EOF) {
		s.done = true
		if len(b) == 0 {
			return false
		}
	}
	s.line++
	b = trimEOL(b)
	s.rec, s.err = paf.ParseRecordBytes(b, paf.ParseOpt{Line: s.line})
	return true
}

func trimEOL(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
	}
	if n := len(b); n > 0 && b[n-1] == '\r' {
		b = b[:n-1]
	}
	return b
}

// Record returns the record of the current line. It is the zero Record
// when Err is non-nil.
func (s *Scanner) Record() paf.Record { return s.rec }

// Err returns the parse failure of the current line: a *paf.ParseError or,
// for blank lines, a *paf.EmptyInputError.
func (s *Scanner) Err() error { return s.err }

// Line returns the 1-based number of the current line.
func (s *Scanner) Line() int { return s.line }

// IOErr returns the first non-EOF read error.
func (s *Scanner) IOErr() error { return s.ioErr }
