package grammar

// Map transforms the value produced by p.
func Map[T Text, A, B any](p Parser[T, A], fn func(A) B) Parser[T, B] {
	return func(in Cursor[T]) (Cursor[T], B, *Failure) {
		out, a, f := p(in)
		if f != nil {
			var zero B
			return in, zero, f
		}
		return out, fn(a), nil
	}
}

// Context appends l to any failure of p, anchored where p started.
func Context[T Text, O any](l Label, p Parser[T, O]) Parser[T, O] {
	return func(in Cursor[T]) (Cursor[T], O, *Failure) {
		out, v, f := p(in)
		if f != nil {
			return in, v, f.push(Frame{Pos: in.Pos(), Kind: KindContext, Label: l})
		}
		return out, v, nil
	}
}

// Terminated runs p then end, keeping the value of p.
func Terminated[T Text, O, X any](p Parser[T, O], end Parser[T, X]) Parser[T, O] {
	return func(in Cursor[T]) (Cursor[T], O, *Failure) {
		s := NewSeq(in)
		v := Step(s, p)
		Step(s, end)
		out, f := s.Done()
		return out, v, f
	}
}

// Preceded runs first then p, keeping the value of p.
func Preceded[T Text, X, O any](first Parser[T, X], p Parser[T, O]) Parser[T, O] {
	return func(in Cursor[T]) (Cursor[T], O, *Failure) {
		s := NewSeq(in)
		Step(s, first)
		v := Step(s, p)
		out, f := s.Done()
		return out, v, f
	}
}

// Optional is the result of Opt.
type Optional[O any] struct {
	Value O
	OK    bool
}

// Opt makes p optional. A recoverable failure yields an empty Optional
// and consumes nothing; a cut failure propagates.
func Opt[T Text, O any](p Parser[T, O]) Parser[T, Optional[O]] {
	return func(in Cursor[T]) (Cursor[T], Optional[O], *Failure) {
		out, v, f := p(in)
		if f != nil {
			if f.Cut {
				return in, Optional[O]{}, f
			}
			return in, Optional[O]{}, nil
		}
		return out, Optional[O]{Value: v, OK: true}, nil
	}
}

// SeparatedList parses zero or more elem separated by sep. The list ends
// when elem fails up front or sep fails; an elem failure after a consumed
// separator is reported.
func SeparatedList[T Text, X, O any](sep Parser[T, X], elem Parser[T, O]) Parser[T, []O] {
	return func(in Cursor[T]) (Cursor[T], []O, *Failure) {
		items := []O{}
		cur, v, f := elem(in)
		if f != nil {
			if f.Cut {
				return in, nil, f
			}
			return in, items, nil
		}
		items = append(items, v)
		for {
			next, _, f := sep(cur)
			if f != nil {
				if f.Cut {
					return in, nil, f
				}
				return cur, items, nil
			}
			next, v, f = elem(next)
			if f != nil {
				return in, nil, f
			}
			items = append(items, v)
			cur = next
		}
	}
}

// Cut commits to p: its failures can no longer be backtracked over.
func Cut[T Text, O any](p Parser[T, O]) Parser[T, O] {
	return func(in Cursor[T]) (Cursor[T], O, *Failure) {
		out, v, f := p(in)
		if f != nil {
			f.Cut = true
			return in, v, f
		}
		return out, v, nil
	}
}

// AllConsuming requires p to consume the whole input. Leftover input fails
// with an EOF frame followed by the l context.
func AllConsuming[T Text, O any](l Label, p Parser[T, O]) Parser[T, O] {
	return func(in Cursor[T]) (Cursor[T], O, *Failure) {
		out, v, f := p(in)
		if f != nil {
			return in, v, f
		}
		if !out.AtEnd() {
			var zero O
			f := fail(Frame{Pos: out.Pos(), Kind: KindEOF})
			f.push(Frame{Pos: out.Pos(), Kind: KindContext, Label: l})
			f.Cut = true
			return in, zero, f
		}
		return out, v, nil
	}
}

// Seq threads a cursor through a sequence of rules, stopping at the first
// failure. It plays the role of a tuple combinator.
type Seq[T Text] struct {
	start Cursor[T]
	cur   Cursor[T]
	fail  *Failure
}

// NewSeq starts a sequence at in.
func NewSeq[T Text](in Cursor[T]) *Seq[T] { return &Seq[T]{start: in, cur: in} }

// Step runs p if no earlier step failed and returns its value.
func Step[T Text, O any](s *Seq[T], p Parser[T, O]) O {
	var zero O
	if s.fail != nil {
		return zero
	}
	out, v, f := p(s.cur)
	if f != nil {
		s.fail = f
		return zero
	}
	s.cur = out
	return v
}

// Done returns the final cursor, or the starting cursor and the failure.
func (s *Seq[T]) Done() (Cursor[T], *Failure) {
	if s.fail != nil {
		return s.start, s.fail
	}
	return s.cur, nil
}
