package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/darcyabjones/paf/internal/scan"
)

func (a *app) convertCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "convert [files...]",
		Short: "Re-emit PAF records as paf, json or yaml",
		Long: `Parse the given PAF files (stdin when none or "-") and write every record
in the format chosen by --format. The first invalid line stops the
conversion unless --skip-invalid is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ins, err := openInputs(cmd, args)
			if err != nil {
				return err
			}
			return a.convert(cmd.OutOrStdout(), ins)
		},
	}
	c.Flags().Bool("skip-invalid", false, "drop invalid lines instead of failing")
	return c
}

func (a *app) convert(stdout io.Writer, ins []input) (err error) {
	defer func() {
		for _, in := range ins {
			in.r.Close()
		}
	}()

	em := newEmitter(a.cfg.Format, stdout)
	defer func() {
		if cerr := em.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to flush output: %w", cerr))
		}
	}()

	written, skipped := 0, 0
	for _, in := range ins {
		s := scan.New(in.r)
		for s.Scan() {
			if err := s.Err(); err != nil {
				if !a.cfg.SkipInvalid {
					return fmt.Errorf("%s: %w", in.name, err)
				}
				skipped++
				a.log.Printf("%s: skipping line %d", in.name, s.Line())
				continue
			}
			if err := em.emit(s.Record()); err != nil {
				return fmt.Errorf("failed to write record: %w", err)
			}
			written++
		}
		if err := s.IOErr(); err != nil {
			return fmt.Errorf("failed to read %s: %w", in.name, err)
		}
	}
	a.log.Printf("wrote %d record(s) as %s, skipped %d", written, a.cfg.Format, skipped)
	return nil
}
