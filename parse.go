package paf

import g "github.com/darcyabjones/paf/internal/grammar"

// ParseRecord decodes a single PAF line. A single trailing newline is
// allowed; anything else left over is an error. Failures are *ParseError
// or *EmptyInputError values ready to print. Detail labels use the
// language selected with i18n.SetLanguage at the time of the call.
func ParseRecord(s string, opts ...ParseOpt) (Record, error) {
	_, r, f := g.Run(recordText, s)
	if f != nil {
		return Record{}, localize(s, f, lastOpt(opts), wantRecord)
	}
	return r, nil
}

// ParseRecordBytes is ParseRecord for raw bytes. Text fields must be valid
// UTF-8.
func ParseRecordBytes(b []byte, opts ...ParseOpt) (Record, error) {
	_, r, f := g.Run(recordBytes, b)
	if f != nil {
		return Record{}, localize(string(b), f, lastOpt(opts), wantRecord)
	}
	return r, nil
}

// ParseLocus decodes the four tab-separated locus columns
// (name, length, start, end) making up the whole of s.
func ParseLocus(s string, opts ...ParseOpt) (Locus, error) {
	_, l, f := g.Run(locusText, s)
	if f != nil {
		return Locus{}, localize(s, f, lastOpt(opts), wantLocus)
	}
	return l, nil
}

// ParseLocusBytes is ParseLocus for raw bytes.
func ParseLocusBytes(b []byte, opts ...ParseOpt) (Locus, error) {
	_, l, f := g.Run(locusBytes, b)
	if f != nil {
		return Locus{}, localize(string(b), f, lastOpt(opts), wantLocus)
	}
	return l, nil
}
