package paf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeCharMismatch = "char_mismatch"
	CodeParseLine    = "parse_line"  // parse failure without line-number context
	CodeParse        = "parse"       // parse failure attributed to a line number
	CodeEmptyInput   = "empty_input" // empty input without line-number context
	CodeEmptyLine    = "empty_line"  // empty input attributed to a line number
	CodeOverflow     = "overflow"
)

// ErrEmptyInput matches every *EmptyInputError via errors.Is.
var ErrEmptyInput = errors.New("paf: empty input")

// ErrInvalidUTF8 is the cause of failures on text fields that are not
// valid UTF-8.
var ErrInvalidUTF8 = errors.New("paf: invalid utf-8")

// CharMismatchError reports a character that is not one of Expected.
type CharMismatchError struct {
	Got      rune
	EOF      bool // input ended where a character was expected
	Expected string
}

func (e *CharMismatchError) Error() string {
	got := "end of input"
	if !e.EOF {
		got = strconv.QuoteRune(e.Got)
	}
	return fmt.Sprintf("error while parsing character: expected any of %q but got %s", e.Expected, got)
}

// Code returns CodeCharMismatch.
func (e *CharMismatchError) Code() string { return CodeCharMismatch }

// OverflowError reports a digit run that does not fit the column width.
type OverflowError struct {
	Bits   int
	Digits string
	Err    error
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s does not fit in an unsigned %d-bit integer", e.Digits, e.Bits)
}

// Code returns CodeOverflow.
func (e *OverflowError) Code() string { return CodeOverflow }

func (e *OverflowError) Unwrap() error { return e.Err }

// ParseError is a located parse failure. Line is the 1-based line number
// supplied by the caller through ParseOpt, or 0 when none was given.
type ParseError struct {
	Line int `json:"line,omitempty"`
	// Text is the offending input line.
	Text string `json:"text"`
	// Offset is the byte offset of the failure within the whole input.
	Offset int `json:"offset"`
	// Column is the 0-based character column within Text.
	Column int `json:"column"`
	// DisplayColumn is Column with every preceding tab counted as TabWidth.
	DisplayColumn int      `json:"display_column"`
	Details       []string `json:"details"`
	// Err is the innermost cause: *CharMismatchError, *OverflowError,
	// ErrInvalidUTF8 or nil.
	Err error `json:"-"`
}

// Code returns CodeParse for numbered failures and CodeParseLine otherwise.
func (e *ParseError) Code() string {
	if e.Line > 0 {
		return CodeParse
	}
	return CodeParseLine
}

func (e *ParseError) Error() string {
	b := &strings.Builder{}
	if e.Line > 0 {
		fmt.Fprintf(b, "error while parsing line %d:\n", e.Line)
	} else {
		b.WriteString("error while parsing line:\n")
	}
	b.WriteString(expandTabs(e.Text))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", e.DisplayColumn))
	b.WriteString("^ ")
	b.WriteString(strings.Join(e.Details, " "))
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// EmptyInputError reports that a record or locus was expected but the
// input was empty.
type EmptyInputError struct {
	Line int    `json:"line,omitempty"`
	Want string `json:"want"`
}

// Code returns CodeEmptyLine for numbered failures and CodeEmptyInput otherwise.
func (e *EmptyInputError) Code() string {
	if e.Line > 0 {
		return CodeEmptyLine
	}
	return CodeEmptyInput
}

func (e *EmptyInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("error while parsing line %d: expected %s but got empty input", e.Line, e.Want)
	}
	return fmt.Sprintf("error while parsing line: expected %s but got empty input", e.Want)
}

// Is makes errors.Is(err, ErrEmptyInput) hold.
func (e *EmptyInputError) Is(target error) bool { return target == ErrEmptyInput }

// AsParseError extracts a *ParseError from an error using errors.As internally.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// AsEmptyInput extracts an *EmptyInputError from an error.
func AsEmptyInput(err error) (*EmptyInputError, bool) {
	var ee *EmptyInputError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}

// Code returns the diagnostic code of err, or "" when err carries none.
func Code(err error) string {
	var c interface{ Code() string }
	if errors.As(err, &c) {
		return c.Code()
	}
	return ""
}
