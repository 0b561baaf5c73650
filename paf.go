package paf

import (
	"strconv"
	"strings"
)

// Strand is the relative orientation of the query and target.
type Strand uint8

const (
	Forward Strand = iota // '+'
	Reverse               // '-'
)

// ParseStrand decodes '+' or '-'. Any other character is a
// *CharMismatchError.
func ParseStrand(r rune) (Strand, error) {
	switch r {
	case '+':
		return Forward, nil
	case '-':
		return Reverse, nil
	default:
		return Forward, &CharMismatchError{Got: r, Expected: "+-"}
	}
}

// Rune returns the PAF character for s.
func (s Strand) Rune() rune {
	if s == Reverse {
		return '-'
	}
	return '+'
}

func (s Strand) String() string { return string(s.Rune()) }

// Locus is the aligned region on one sequence.
type Locus struct {
	Name   string
	Length uint64
	Start  uint64
	End    uint64
}

// String renders the four tab-separated PAF columns of the locus.
func (l Locus) String() string {
	b := &strings.Builder{}
	l.write(b)
	return b.String()
}

func (l Locus) write(b *strings.Builder) {
	b.WriteString(l.Name)
	b.WriteByte('\t')
	b.WriteString(strconv.FormatUint(l.Length, 10))
	b.WriteByte('\t')
	b.WriteString(strconv.FormatUint(l.Start, 10))
	b.WriteByte('\t')
	b.WriteString(strconv.FormatUint(l.End, 10))
}

// Record is one PAF line.
type Record struct {
	Query           Locus
	Strand          Strand
	Target          Locus
	NumMatches      uint64
	AlignmentLength uint64
	MappingQuality  uint8
	// OptionalFields holds the trailing SAM-style tags verbatim, in order.
	OptionalFields []string
}

// String renders the record as a PAF line without a trailing newline.
// Optional fields are appended whenever there is at least one. A lone
// empty optional field renders as a trailing tab, which parses back as no
// optional fields.
func (r Record) String() string {
	b := &strings.Builder{}
	r.Query.write(b)
	b.WriteByte('\t')
	b.WriteRune(r.Strand.Rune())
	b.WriteByte('\t')
	r.Target.write(b)
	b.WriteByte('\t')
	b.WriteString(strconv.FormatUint(r.NumMatches, 10))
	b.WriteByte('\t')
	b.WriteString(strconv.FormatUint(r.AlignmentLength, 10))
	b.WriteByte('\t')
	b.WriteString(strconv.FormatUint(uint64(r.MappingQuality), 10))
	for _, f := range r.OptionalFields {
		b.WriteByte('\t')
		b.WriteString(f)
	}
	return b.String()
}
