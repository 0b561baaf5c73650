package paf

import (
	"unicode/utf8"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Wire shapes for JSON and YAML. Field sets mirror Locus and Record so the
// types convert directly.
type locusWire struct {
	Name   string `json:"name" yaml:"name"`
	Length uint64 `json:"length" yaml:"length"`
	Start  uint64 `json:"start" yaml:"start"`
	End    uint64 `json:"end" yaml:"end"`
}

type recordWire struct {
	Query           Locus    `json:"query" yaml:"query"`
	Strand          Strand   `json:"strand" yaml:"strand"`
	Target          Locus    `json:"target" yaml:"target"`
	NumMatches      uint64   `json:"num_matches" yaml:"num_matches"`
	AlignmentLength uint64   `json:"alignment_length" yaml:"alignment_length"`
	MappingQuality  uint8    `json:"mapping_quality" yaml:"mapping_quality"`
	OptionalFields  []string `json:"optional_fields" yaml:"optional_fields"`
}

// MarshalText encodes the strand as "+" or "-".
func (s Strand) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes "+" or "-".
func (s *Strand) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		return &CharMismatchError{EOF: true, Expected: "+-"}
	}
	r, n := utf8.DecodeRune(b)
	// A strand is exactly one character; report the first extra one.
	if n != len(b) {
		r2, _ := utf8.DecodeRune(b[n:])
		return &CharMismatchError{Got: r2, Expected: "+-"}
	}
	v, err := ParseStrand(r)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText renders the locus columns.
func (l Locus) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText parses the locus columns with ParseLocusBytes.
func (l *Locus) UnmarshalText(b []byte) error {
	v, err := ParseLocusBytes(b)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// MarshalJSON encodes the locus as an object.
func (l Locus) MarshalJSON() ([]byte, error) { return json.Marshal(locusWire(l)) }

// UnmarshalJSON decodes the object form written by MarshalJSON.
func (l *Locus) UnmarshalJSON(b []byte) error {
	var w locusWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*l = Locus(w)
	return nil
}

// MarshalYAML encodes the locus as a mapping.
func (l Locus) MarshalYAML() (interface{}, error) { return locusWire(l), nil }

// UnmarshalYAML decodes the mapping form written by MarshalYAML.
func (l *Locus) UnmarshalYAML(node *yaml.Node) error {
	var w locusWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	*l = Locus(w)
	return nil
}

// MarshalText renders the record as a PAF line.
func (r Record) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText parses a PAF line with ParseRecordBytes.
func (r *Record) UnmarshalText(b []byte) error {
	v, err := ParseRecordBytes(b)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalJSON encodes the record as an object. Optional fields are always
// present as an array.
func (r Record) MarshalJSON() ([]byte, error) {
	w := recordWire(r)
	if w.OptionalFields == nil {
		w.OptionalFields = []string{}
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the object form written by MarshalJSON.
func (r *Record) UnmarshalJSON(b []byte) error {
	var w recordWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if w.OptionalFields == nil {
		w.OptionalFields = []string{}
	}
	*r = Record(w)
	return nil
}

// MarshalYAML encodes the record as a mapping.
func (r Record) MarshalYAML() (interface{}, error) {
	w := recordWire(r)
	if w.OptionalFields == nil {
		w.OptionalFields = []string{}
	}
	return w, nil
}

// UnmarshalYAML decodes the mapping form written by MarshalYAML.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	var w recordWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	if w.OptionalFields == nil {
		w.OptionalFields = []string{}
	}
	*r = Record(w)
	return nil
}
