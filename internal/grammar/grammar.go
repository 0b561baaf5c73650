package grammar

import (
	"fmt"
	"strings"
)

// Text is the set of input representations a rule can run over.
type Text interface {
	~string | ~[]byte
}

// Cursor is an immutable view of the input: the full source and the offset
// of the first unconsumed byte. Advancing returns a new Cursor.
type Cursor[T Text] struct {
	src T
	pos int
}

// Start returns a cursor positioned at the beginning of src.
func Start[T Text](src T) Cursor[T] { return Cursor[T]{src: src} }

// Pos returns the absolute byte offset of the cursor.
func (c Cursor[T]) Pos() int { return c.pos }

// Rest returns the unconsumed remainder.
func (c Cursor[T]) Rest() T { return c.src[c.pos:] }

// Len returns the number of unconsumed bytes.
func (c Cursor[T]) Len() int { return len(c.src) - c.pos }

// AtEnd reports whether the whole input has been consumed.
func (c Cursor[T]) AtEnd() bool { return c.pos >= len(c.src) }

// Peek returns the next byte without consuming it.
func (c Cursor[T]) Peek() (byte, bool) {
	if c.AtEnd() {
		return 0, false
	}
	return c.src[c.pos], true
}

// Take returns the next n bytes and a cursor advanced past them.
func (c Cursor[T]) Take(n int) (Cursor[T], T) {
	return Cursor[T]{src: c.src, pos: c.pos + n}, c.src[c.pos : c.pos+n]
}

// Span counts the leading bytes of the remainder that satisfy keep.
func (c Cursor[T]) Span(keep func(byte) bool) int {
	n := 0
	for i := c.pos; i < len(c.src) && keep(c.src[i]); i++ {
		n++
	}
	return n
}

// Kind classifies a failure frame.
type Kind uint8

const (
	KindChar     Kind = iota // a specific byte was expected
	KindOneOf                // a byte from a set was expected
	KindContext              // human label attached by Context
	KindDigit                // no digits where a number was expected
	KindOverflow             // digit run does not fit the target width
	KindUTF8                 // consumed bytes are not valid UTF-8
	KindEOF                  // input remained after an all-consuming rule
)

func (k Kind) String() string {
	switch k {
	case KindChar:
		return "char"
	case KindOneOf:
		return "one_of"
	case KindContext:
		return "context"
	case KindDigit:
		return "digit"
	case KindOverflow:
		return "overflow"
	case KindUTF8:
		return "utf8"
	case KindEOF:
		return "eof"
	default:
		return "unknown"
	}
}

// Internal reports whether frames of this kind carry no human label.
func (k Kind) Internal() bool { return k != KindChar && k != KindContext }

// Label names a context. Code selects the message, Arg fills it in
// (for example the column name).
type Label struct {
	Code string
	Arg  string
}

// Frame is one entry of a failure trace.
type Frame struct {
	Pos  int
	Kind Kind
	Label
	// Expected holds the byte (KindChar) or byte set (KindOneOf).
	Expected string
	// Bits is the integer width for KindOverflow.
	Bits int
	// Text is the offending token for KindOverflow and KindUTF8.
	Text string
	Err  error
}

// Failure is the structured result of a failed rule. Frames are ordered
// innermost first; each enclosing Context appends one.
type Failure struct {
	Frames []Frame
	// Cut marks a committed failure that Opt and SeparatedList must not
	// backtrack over.
	Cut bool
}

func fail(f Frame) *Failure { return &Failure{Frames: []Frame{f}} }

// Pos returns the offset of the deepest failure point.
func (f *Failure) Pos() int {
	if len(f.Frames) == 0 {
		return 0
	}
	return f.Frames[0].Pos
}

// Innermost returns the first frame of the trace.
func (f *Failure) Innermost() Frame {
	if len(f.Frames) == 0 {
		return Frame{}
	}
	return f.Frames[0]
}

func (f *Failure) push(fr Frame) *Failure {
	f.Frames = append(f.Frames, fr)
	return f
}

// Error renders the raw trace; user-facing rendering happens elsewhere.
func (f *Failure) Error() string {
	b := &strings.Builder{}
	for i, fr := range f.Frames {
		if i > 0 {
			b.WriteString("; ")
		}
		switch fr.Kind {
		case KindContext:
			fmt.Fprintf(b, "%s(%s) at %d", fr.Code, fr.Arg, fr.Pos)
		case KindChar, KindOneOf:
			fmt.Fprintf(b, "%s %q at %d", fr.Kind, fr.Expected, fr.Pos)
		default:
			fmt.Fprintf(b, "%s at %d", fr.Kind, fr.Pos)
		}
	}
	return b.String()
}

// Parser consumes a prefix of its input. On success it returns the advanced
// cursor and the decoded value; on failure it returns the input cursor
// unchanged and a non-nil Failure.
type Parser[T Text, O any] func(in Cursor[T]) (Cursor[T], O, *Failure)

// Run applies p to the whole of src.
func Run[T Text, O any](p Parser[T, O], src T) (T, O, *Failure) {
	out, v, f := p(Start(src))
	if f != nil {
		var zero O
		return src, zero, f
	}
	return out.Rest(), v, nil
}
