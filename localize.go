package paf

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/darcyabjones/paf/i18n"
	g "github.com/darcyabjones/paf/internal/grammar"
)

// What the caller expected, used in empty-input diagnostics.
const (
	wantRecord = "paf line"
	wantLocus  = "locus"
)

// localize converts a grammar failure on input into a diagnostic error.
func localize(input string, f *g.Failure, opt ParseOpt, want string) error {
	if input == "" {
		return &EmptyInputError{Line: opt.Line, Want: want}
	}

	lines := strings.Split(input, "\n")
	idx, col := locate(lines, f.Pos())
	text := strings.TrimSuffix(lines[idx], "\r")
	if col > len(text) {
		col = len(text)
	}

	line := 0
	if opt.Line > 0 {
		line = opt.Line + idx
	}
	return &ParseError{
		Line:          line,
		Text:          text,
		Offset:        f.Pos(),
		Column:        utf8.RuneCountInString(text[:col]),
		DisplayColumn: displayColumn(text, col),
		Details:       details(f),
		Err:           cause(input, f.Innermost()),
	}
}

// locate maps a byte offset to a line index and a byte column. An offset
// equal to a line's length stays on that line; the next one is column 0 of
// the following line.
func locate(lines []string, offset int) (int, int) {
	for i, l := range lines {
		if offset <= len(l) {
			return i, offset
		}
		offset -= len(l) + 1
	}
	last := len(lines) - 1
	return last, len(lines[last])
}

// displayColumn is the caret column for byte column col of line once tabs
// are expanded to TabWidth spaces.
func displayColumn(line string, col int) int {
	prefix := line[:col]
	tabs := strings.Count(prefix, "\t")
	return utf8.RuneCountInString(prefix) - tabs + tabs*TabWidth
}

func expandTabs(line string) string {
	return strings.ReplaceAll(line, "\t", strings.Repeat(" ", TabWidth))
}

// details renders the labelled frames in propagation order. Internal
// frames are dropped unless nothing else is left.
func details(f *g.Failure) []string {
	out := make([]string, 0, len(f.Frames))
	for _, fr := range f.Frames {
		switch fr.Kind {
		case g.KindChar:
			out = append(out, i18n.T("char", map[string]string{"char": quoteChar(fr.Expected)}))
		case g.KindContext:
			out = append(out, i18n.T(fr.Code, map[string]string{"column": fr.Arg}))
		}
	}
	if len(out) == 0 {
		out = append(out, i18n.T("parse_error", nil))
	}
	return out
}

// quoteChar escapes control characters so the label stays on one line.
func quoteChar(s string) string {
	q := strconv.Quote(s)
	return q[1 : len(q)-1]
}

func cause(input string, fr g.Frame) error {
	switch fr.Kind {
	case g.KindChar, g.KindOneOf:
		e := &CharMismatchError{Expected: fr.Expected}
		if fr.Pos >= len(input) {
			e.EOF = true
		} else {
			e.Got, _ = utf8.DecodeRuneInString(input[fr.Pos:])
		}
		return e
	case g.KindOverflow:
		return &OverflowError{Bits: fr.Bits, Digits: fr.Text, Err: fr.Err}
	case g.KindUTF8:
		return ErrInvalidUTF8
	default:
		return nil
	}
}
