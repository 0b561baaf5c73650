package scan

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	paf "github.com/darcyabjones/paf"
)

const line = "seqid\t10\t0\t10\t+\tseqid2\t10\t0\t10\t1\t1\t1"

type result struct {
	line int
	name string
	code string
}

func scanAll(t *testing.T, in string) []result {
	t.Helper()
	s := New(strings.NewReader(in))
	var out []result
	for s.Scan() {
		r := result{line: s.Line()}
		if err := s.Err(); err != nil {
			r.code = paf.Code(err)
		} else {
			r.name = s.Record().Query.Name
		}
		out = append(out, r)
	}
	if err := s.IOErr(); err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	return out
}

func TestScanner(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []result
	}{
		{"empty document", "", nil},
		{"single line no newline", line, []result{{1, "seqid", ""}}},
		{"single line", line + "\n", []result{{1, "seqid", ""}}},
		{"crlf", line + "\r\n" + line + "\r\n", []result{{1, "seqid", ""}, {2, "seqid", ""}}},
		{
			name: "blank and bad lines are numbered",
			in:   line + "\n\n" + "bad\n" + line,
			want: []result{
				{1, "seqid", ""},
				{2, "", paf.CodeEmptyLine},
				{3, "", paf.CodeParse},
				{4, "seqid", ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanAll(t, tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %+v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d: got %+v, want %+v", i+1, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScanner_DiagnosticLine(t *testing.T) {
	s := New(strings.NewReader(line + "\n" + line + "\n" + "q\t1\t0\t1\t*\tt\t1\t0\t1\t1\t1\t1\n"))
	for s.Scan() {
		if s.Err() == nil {
			continue
		}
		pe, ok := paf.AsParseError(s.Err())
		if !ok {
			t.Fatalf("expected *paf.ParseError, got %v", s.Err())
		}
		if pe.Line != 3 || !strings.HasPrefix(pe.Error(), "error while parsing line 3:\n") {
			t.Fatalf("unexpected diagnostic: %v", pe)
		}
		return
	}
	t.Fatalf("expected a failing line")
}

func TestScanner_ReadError(t *testing.T) {
	boom := errors.New("boom")
	s := New(iotest.ErrReader(boom))
	if s.Scan() {
		t.Fatalf("Scan() = true on a failing reader")
	}
	if !errors.Is(s.IOErr(), boom) {
		t.Fatalf("IOErr() = %v", s.IOErr())
	}
	if s.Scan() {
		t.Fatalf("Scan() must stay false after an error")
	}
}
