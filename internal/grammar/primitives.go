package grammar

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Char consumes exactly the byte c.
func Char[T Text](c byte) Parser[T, byte] {
	return func(in Cursor[T]) (Cursor[T], byte, *Failure) {
		if b, ok := in.Peek(); ok && b == c {
			out, _ := in.Take(1)
			return out, b, nil
		}
		return in, 0, fail(Frame{Pos: in.Pos(), Kind: KindChar, Expected: string(c)})
	}
}

// OneOf consumes a single byte contained in set.
func OneOf[T Text](set string) Parser[T, byte] {
	return func(in Cursor[T]) (Cursor[T], byte, *Failure) {
		if b, ok := in.Peek(); ok && strings.IndexByte(set, b) >= 0 {
			out, _ := in.Take(1)
			return out, b, nil
		}
		return in, 0, fail(Frame{Pos: in.Pos(), Kind: KindOneOf, Expected: set})
	}
}

// TakeTill consumes the longest run of bytes not contained in stop. An
// empty run is a success.
func TakeTill[T Text](stop string) Parser[T, T] {
	keep := func(b byte) bool { return strings.IndexByte(stop, b) < 0 }
	return func(in Cursor[T]) (Cursor[T], T, *Failure) {
		out, v := in.Take(in.Span(keep))
		return out, v, nil
	}
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// Digits consumes one or more ASCII decimal digits.
func Digits[T Text]() Parser[T, T] {
	return func(in Cursor[T]) (Cursor[T], T, *Failure) {
		n := in.Span(isDigit)
		if n == 0 {
			var zero T
			return in, zero, fail(Frame{Pos: in.Pos(), Kind: KindDigit})
		}
		out, v := in.Take(n)
		return out, v, nil
	}
}

// Uint consumes a digit run and decodes it as an unsigned integer of the
// given bit width. A run that does not fit fails at its first digit.
func Uint[T Text](bits int) Parser[T, uint64] {
	digits := Digits[T]()
	return func(in Cursor[T]) (Cursor[T], uint64, *Failure) {
		out, d, f := digits(in)
		if f != nil {
			return in, 0, f
		}
		n, err := strconv.ParseUint(string(d), 10, bits)
		if err != nil {
			return in, 0, fail(Frame{Pos: in.Pos(), Kind: KindOverflow, Bits: bits, Text: string(d), Err: err})
		}
		return out, n, nil
	}
}

// String turns the bytes matched by p into an owned, valid UTF-8 string.
func String[T Text](p Parser[T, T]) Parser[T, string] {
	return func(in Cursor[T]) (Cursor[T], string, *Failure) {
		out, v, f := p(in)
		if f != nil {
			return in, "", f
		}
		s := owned(v)
		if !utf8.ValidString(s) {
			return in, "", fail(Frame{Pos: in.Pos(), Kind: KindUTF8, Text: s})
		}
		return out, s, nil
	}
}

// owned copies v so the result never aliases the caller's buffer.
func owned[T Text](v T) string {
	if s, ok := any(v).(string); ok {
		return strings.Clone(s)
	}
	return string(v)
}
