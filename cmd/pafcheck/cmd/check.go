package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	paf "github.com/darcyabjones/paf"
	"github.com/darcyabjones/paf/internal/config"
	"github.com/darcyabjones/paf/internal/scan"
)

// diagnostic is one invalid line as reported by check.
type diagnostic struct {
	File    string   `json:"file" yaml:"file"`
	Line    int      `json:"line" yaml:"line"`
	Code    string   `json:"code" yaml:"code"`
	Column  int      `json:"column" yaml:"column"`
	Details []string `json:"details,omitempty" yaml:"details,omitempty"`
	Message string   `json:"message" yaml:"message"`
}

func newDiagnostic(file string, line int, err error) diagnostic {
	d := diagnostic{File: file, Line: line, Code: paf.Code(err), Message: err.Error()}
	if pe, ok := paf.AsParseError(err); ok {
		d.Column = pe.Column
		d.Details = pe.Details
	}
	return d
}

func (d diagnostic) String() string { return d.File + ": " + d.Message }

// errInvalid is returned by check when at least one line failed.
type errInvalid struct{ n int }

func (e errInvalid) Error() string { return fmt.Sprintf("%d invalid line(s)", e.n) }

func (a *app) checkCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "check [files...]",
		Short: "Validate PAF input",
		Long: `Validate every line of the given PAF files (stdin when none or "-").
Diagnostics are printed to stderr, or to stdout as json/yaml documents
when --format selects a structured format. Exits non-zero if any line
is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ins, err := openInputs(cmd, args)
			if err != nil {
				return err
			}
			return a.check(cmd.OutOrStdout(), cmd.ErrOrStderr(), ins)
		},
	}
	c.Flags().Int("max-errors", 0, "stop after this many invalid lines (0: no limit)")
	return c
}

func (a *app) check(stdout, stderr io.Writer, ins []input) (err error) {
	defer func() {
		for _, in := range ins {
			in.r.Close()
		}
	}()

	// Plain diagnostics are human output; structured ones are data.
	out := stderr
	if a.cfg.Format != config.FormatPAF {
		out = stdout
	}
	em := newEmitter(a.cfg.Format, out)
	defer func() {
		if cerr := em.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to flush diagnostics: %w", cerr))
		}
	}()

	lines, invalid := 0, 0
	for _, in := range ins {
		s := scan.New(in.r)
		for s.Scan() {
			lines++
			if s.Err() == nil {
				continue
			}
			invalid++
			if err := em.emit(newDiagnostic(in.name, s.Line(), s.Err())); err != nil {
				return fmt.Errorf("failed to write diagnostic: %w", err)
			}
			if a.cfg.MaxErrors > 0 && invalid >= a.cfg.MaxErrors {
				a.log.Printf("stopping after %d invalid line(s)", invalid)
				return errInvalid{invalid}
			}
		}
		if err := s.IOErr(); err != nil {
			return fmt.Errorf("failed to read %s: %w", in.name, err)
		}
		a.log.Printf("%s: %d line(s) read", in.name, s.Line())
	}

	a.log.Printf("checked %d line(s), %d invalid", lines, invalid)
	if invalid > 0 {
		return errInvalid{invalid}
	}
	return nil
}
