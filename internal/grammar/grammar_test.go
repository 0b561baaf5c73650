package grammar

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
)

func TestChar_BothInputs(t *testing.T) {
	tab := Char[string]('\t')
	rest, v, f := Run(tab, "\tremaining")
	if f != nil || v != '\t' || rest != "remaining" {
		t.Fatalf("unexpected result: rest=%q v=%q f=%v", rest, v, f)
	}
	if _, _, f := Run(tab, `\tShould fail`); f == nil || f.Innermost().Kind != KindChar || f.Pos() != 0 {
		t.Fatalf("expected char failure at 0, got %v", f)
	}

	tabb := Char[[]byte]('\t')
	restb, vb, f := Run(tabb, []byte("\t"))
	if f != nil || vb != '\t' || len(restb) != 0 {
		t.Fatalf("unexpected result: rest=%q v=%q f=%v", restb, vb, f)
	}
	if _, _, f := Run(tabb, []byte("Should fail")); f == nil || f.Innermost().Expected != "\t" {
		t.Fatalf("expected char failure, got %v", f)
	}
}

func TestOneOf(t *testing.T) {
	p := OneOf[string]("+-")
	for _, in := range []string{"+\tone", "-\tone"} {
		rest, v, f := Run(p, in)
		if f != nil || v != in[0] || rest != "\tone" {
			t.Fatalf("%q: rest=%q v=%q f=%v", in, rest, v, f)
		}
	}
	_, _, f := Run(p, "?\tone")
	if f == nil || f.Innermost().Kind != KindOneOf || f.Innermost().Expected != "+-" {
		t.Fatalf("expected one_of failure, got %v", f)
	}
}

func TestTakeTill_AcceptsEmptyRun(t *testing.T) {
	p := TakeTill[string]("\t\r\n")
	cases := []struct{ in, v, rest string }{
		{"Hello\tone", "Hello", "\tone"},
		{"Hello", "Hello", ""},
		{"\tone", "", "\tone"},
		{"a b\r\n", "a b", "\r\n"},
		{"", "", ""},
	}
	for _, c := range cases {
		rest, v, f := Run(p, c.in)
		if f != nil || v != c.v || rest != c.rest {
			t.Fatalf("%q: got v=%q rest=%q f=%v", c.in, v, rest, f)
		}
	}
}

func TestUint_DigitsAndOverflow(t *testing.T) {
	u64 := Uint[string](64)
	rest, n, f := Run(u64, "123\tone")
	if f != nil || n != 123 || rest != "\tone" {
		t.Fatalf("rest=%q n=%d f=%v", rest, n, f)
	}
	if _, _, f := Run(u64, "one\t123"); f == nil || f.Innermost().Kind != KindDigit || f.Pos() != 0 {
		t.Fatalf("expected digit failure at 0, got %v", f)
	}
	if _, n, f := Run(u64, "18446744073709551615"); f != nil || n != 18446744073709551615 {
		t.Fatalf("max uint64: n=%d f=%v", n, f)
	}

	u8 := Uint[[]byte](8)
	_, _, f = Run(u8, []byte("123456\tone"))
	if f == nil {
		t.Fatalf("expected overflow failure")
	}
	fr := f.Innermost()
	if fr.Kind != KindOverflow || fr.Pos != 0 || fr.Bits != 8 || fr.Text != "123456" {
		t.Fatalf("unexpected overflow frame: %+v", fr)
	}
	if !errors.Is(fr.Err, strconv.ErrRange) {
		t.Fatalf("expected strconv.ErrRange, got %v", fr.Err)
	}
	if _, n, f := Run(u8, []byte("255")); f != nil || n != 255 {
		t.Fatalf("255: n=%d f=%v", n, f)
	}
}

func TestString_OwnsAndValidates(t *testing.T) {
	p := String(TakeTill[[]byte]("\t"))
	buf := []byte("abc\tdef")
	_, s, f := Run(p, buf)
	if f != nil || s != "abc" {
		t.Fatalf("s=%q f=%v", s, f)
	}
	buf[0] = 'X'
	if s != "abc" {
		t.Fatalf("string aliases input buffer: %q", s)
	}

	_, _, f = Run(p, []byte{'o', 'k', 0xff, '\t'})
	if f == nil || f.Innermost().Kind != KindUTF8 || f.Pos() != 0 {
		t.Fatalf("expected utf8 failure at 0, got %v", f)
	}
}

func TestContext_AppendsOuterLabels(t *testing.T) {
	inner := Context(Label{Code: "uint64"}, Uint[string](64))
	p := Preceded(Char[string]('x'), Context(Label{Code: "column", Arg: "length"}, Terminated(inner, Char[string]('\t'))))

	_, _, f := Run(p, "xabc")
	if f == nil {
		t.Fatalf("expected failure")
	}
	kinds := []Kind{}
	for _, fr := range f.Frames {
		kinds = append(kinds, fr.Kind)
	}
	want := []Kind{KindDigit, KindContext, KindContext}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	if f.Frames[1].Code != "uint64" || f.Frames[2].Arg != "length" {
		t.Fatalf("unexpected labels: %+v", f.Frames)
	}
	if f.Pos() != 1 {
		t.Fatalf("deepest offset = %d, want 1", f.Pos())
	}

	// Missing terminator: deepest point is after the digits.
	_, _, f = Run(p, "x12")
	if f == nil || f.Pos() != 3 || f.Innermost().Kind != KindChar {
		t.Fatalf("expected char failure at 3, got %v", f)
	}
}

func TestSeparatedList(t *testing.T) {
	p := SeparatedList(Char[string]('\t'), String(TakeTill[string]("\t\n")))
	cases := []struct {
		in   string
		want []string
		rest string
	}{
		{"Hey\tDarcy", []string{"Hey", "Darcy"}, ""},
		{"Hey\tDarcy\t", []string{"Hey", "Darcy", ""}, ""},
		{"a\t\tb\n", []string{"a", "", "b"}, "\n"},
		{"", []string{""}, ""},
	}
	for _, c := range cases {
		rest, got, f := Run(p, c.in)
		if f != nil || !reflect.DeepEqual(got, c.want) || rest != c.rest {
			t.Fatalf("%q: got %q rest=%q f=%v", c.in, got, rest, f)
		}
	}

	digits := SeparatedList(Char[string](','), Uint[string](64))
	rest, got, f := Run(digits, "x")
	if f != nil || len(got) != 0 || rest != "x" {
		t.Fatalf("empty list: got %v rest=%q f=%v", got, rest, f)
	}
	if _, _, f := Run(digits, "1,2,x"); f == nil || f.Pos() != 4 {
		t.Fatalf("expected failure after separator at 4, got %v", f)
	}
}

func TestOpt_RespectsCut(t *testing.T) {
	plain := Opt(Char[string]('\t'))
	rest, o, f := Run(plain, "x")
	if f != nil || o.OK || rest != "x" {
		t.Fatalf("plain opt: o=%+v rest=%q f=%v", o, rest, f)
	}
	rest, o, f = Run(plain, "\tx")
	if f != nil || !o.OK || rest != "x" {
		t.Fatalf("present opt: o=%+v rest=%q f=%v", o, rest, f)
	}

	committed := Opt(Preceded(Char[string]('a'), Cut(Char[string]('b'))))
	if _, _, f := Run(committed, "ac"); f == nil || !f.Cut || f.Pos() != 1 {
		t.Fatalf("expected cut failure to propagate, got %v", f)
	}
	if _, o, f := Run(committed, "zz"); f != nil || o.OK {
		t.Fatalf("expected backtrack before cut, got o=%+v f=%v", o, f)
	}
}

func TestAllConsuming(t *testing.T) {
	p := AllConsuming(Label{Code: "end_of_input"}, Uint[string](64))
	if _, n, f := Run(p, "42"); f != nil || n != 42 {
		t.Fatalf("n=%d f=%v", n, f)
	}
	_, _, f := Run(p, "42x")
	if f == nil || f.Pos() != 2 || !f.Cut {
		t.Fatalf("expected cut failure at 2, got %v", f)
	}
	if len(f.Frames) != 2 || f.Frames[0].Kind != KindEOF || f.Frames[1].Code != "end_of_input" {
		t.Fatalf("unexpected frames: %+v", f.Frames)
	}
}

func TestFailure_ErrorTrace(t *testing.T) {
	p := Context(Label{Code: "column", Arg: "end"}, Char[string]('\t'))
	_, _, f := Run(p, "x")
	if got, want := f.Error(), `char "\t" at 0; column(end) at 0`; got != want {
		t.Fatalf("trace = %q, want %q", got, want)
	}
}
