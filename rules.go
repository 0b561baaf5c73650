package paf

import g "github.com/darcyabjones/paf/internal/grammar"

// Label codes resolved through the i18n package when rendering.
const (
	labelStrand     = "strand"
	labelUTF8       = "utf8_string"
	labelUint64     = "uint64"
	labelUint8      = "uint8"
	labelColumn     = "column"
	labelEndOfInput = "end_of_input"
)

// separators never occur inside a field.
const separators = "\t\r\n"

func column(name string) g.Label { return g.Label{Code: labelColumn, Arg: name} }

func tab[T g.Text]() g.Parser[T, byte] { return g.Char[T]('\t') }

func strandRule[T g.Text]() g.Parser[T, Strand] {
	return g.Context(g.Label{Code: labelStrand}, g.Map(g.OneOf[T]("+-"), func(b byte) Strand {
		s, _ := ParseStrand(rune(b))
		return s
	}))
}

func textRule[T g.Text]() g.Parser[T, string] {
	return g.Context(g.Label{Code: labelUTF8}, g.String(g.TakeTill[T](separators)))
}

func uint64Rule[T g.Text]() g.Parser[T, uint64] {
	return g.Context(g.Label{Code: labelUint64}, g.Uint[T](64))
}

func uint8Rule[T g.Text]() g.Parser[T, uint8] {
	return g.Context(g.Label{Code: labelUint8}, g.Map(g.Uint[T](8), func(n uint64) uint8 { return uint8(n) }))
}

// locusColumns names the four locus columns in diagnostics.
type locusColumns struct{ name, length, start, end string }

var (
	bareLocus   = locusColumns{"seqid", "length", "start", "end"}
	queryLocus  = locusColumns{"query seqid", "query length", "query start", "query end"}
	targetLocus = locusColumns{"target seqid", "target length", "target start", "target end"}
)

// locusRule parses name, length, start and end. The end column is not
// followed by a tab; the caller decides what comes next.
func locusRule[T g.Text](cols locusColumns) g.Parser[T, Locus] {
	name := g.Context(column(cols.name), g.Terminated(textRule[T](), tab[T]()))
	length := g.Context(column(cols.length), g.Terminated(uint64Rule[T](), tab[T]()))
	start := g.Context(column(cols.start), g.Terminated(uint64Rule[T](), tab[T]()))
	end := g.Context(column(cols.end), uint64Rule[T]())
	return func(in g.Cursor[T]) (g.Cursor[T], Locus, *g.Failure) {
		s := g.NewSeq(in)
		var l Locus
		l.Name = g.Step(s, name)
		l.Length = g.Step(s, length)
		l.Start = g.Step(s, start)
		l.End = g.Step(s, end)
		out, f := s.Done()
		if f != nil {
			return in, Locus{}, f
		}
		return out, l, nil
	}
}

// optionalFieldsRule parses tab-separated free text. Nothing left (or only
// the line terminator) is the empty list.
func optionalFieldsRule[T g.Text]() g.Parser[T, []string] {
	list := g.SeparatedList(tab[T](), textRule[T]())
	return func(in g.Cursor[T]) (g.Cursor[T], []string, *g.Failure) {
		if b, ok := in.Peek(); !ok || b == '\n' {
			return in, []string{}, nil
		}
		return list(in)
	}
}

// optionalTailRule parses the optional fields that follow a tab after the
// mapping quality. Without that tab there are none.
func optionalTailRule[T g.Text]() g.Parser[T, []string] {
	lead := g.Opt(tab[T]())
	body := optionalFieldsRule[T]()
	return func(in g.Cursor[T]) (g.Cursor[T], []string, *g.Failure) {
		next, t, _ := lead(in)
		if !t.OK {
			return in, []string{}, nil
		}
		out, fields, f := body(next)
		if f != nil {
			return in, nil, f
		}
		return out, fields, nil
	}
}

// recordRule parses one PAF line, optionally terminated by a newline.
// Everything after the query name is committed.
func recordRule[T g.Text]() g.Parser[T, Record] {
	query := g.Context(column(queryLocus.name), g.Terminated(textRule[T](), tab[T]()))
	rest := g.Cut(recordTailRule[T]())
	return func(in g.Cursor[T]) (g.Cursor[T], Record, *g.Failure) {
		s := g.NewSeq(in)
		name := g.Step(s, query)
		r := g.Step(s, rest)
		out, f := s.Done()
		if f != nil {
			return in, Record{}, f
		}
		r.Query.Name = name
		return out, r, nil
	}
}

func recordTailRule[T g.Text]() g.Parser[T, Record] {
	col := func(name string, p g.Parser[T, uint64]) g.Parser[T, uint64] {
		return g.Context(column(name), g.Terminated(p, tab[T]()))
	}
	qlen := col(queryLocus.length, uint64Rule[T]())
	qstart := col(queryLocus.start, uint64Rule[T]())
	qend := col(queryLocus.end, uint64Rule[T]())
	strand := g.Context(column("strand"), g.Terminated(strandRule[T](), tab[T]()))
	target := g.Terminated(locusRule[T](targetLocus), g.Context(column(targetLocus.end), tab[T]()))
	nmatch := col("number matches", uint64Rule[T]())
	alnlen := col("alignment length", uint64Rule[T]())
	mapq := g.Context(column("mapping quality"), uint8Rule[T]())
	fields := g.Context(column("optional fields"), optionalTailRule[T]())
	newline := g.Opt(g.Char[T]('\n'))

	return func(in g.Cursor[T]) (g.Cursor[T], Record, *g.Failure) {
		s := g.NewSeq(in)
		var r Record
		r.Query.Length = g.Step(s, qlen)
		r.Query.Start = g.Step(s, qstart)
		r.Query.End = g.Step(s, qend)
		r.Strand = g.Step(s, strand)
		r.Target = g.Step(s, target)
		r.NumMatches = g.Step(s, nmatch)
		r.AlignmentLength = g.Step(s, alnlen)
		r.MappingQuality = g.Step(s, mapq)
		r.OptionalFields = g.Step(s, fields)
		g.Step(s, newline)
		out, f := s.Done()
		if f != nil {
			return in, Record{}, f
		}
		return out, r, nil
	}
}

// Rule instances for each input representation. They hold no state and
// are safe for concurrent use.
var (
	locusText   = g.AllConsuming(g.Label{Code: labelEndOfInput}, g.Cut(locusRule[string](bareLocus)))
	locusBytes  = g.AllConsuming(g.Label{Code: labelEndOfInput}, g.Cut(locusRule[[]byte](bareLocus)))
	recordText  = g.AllConsuming(g.Label{Code: labelEndOfInput}, g.Cut(recordRule[string]()))
	recordBytes = g.AllConsuming(g.Label{Code: labelEndOfInput}, g.Cut(recordRule[[]byte]()))
)
