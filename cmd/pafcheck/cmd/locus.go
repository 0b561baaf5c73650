package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	paf "github.com/darcyabjones/paf"
)

func (a *app) locusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "locus <name> <length> <start> <end>",
		Short:   "Parse a single locus",
		Example: "  pafcheck locus chr1 248956422 1000 2000 --format json",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := paf.ParseLocus(strings.Join(args, "\t"))
			if err != nil {
				return err
			}
			em := newEmitter(a.cfg.Format, cmd.OutOrStdout())
			if err := em.emit(l); err != nil {
				return fmt.Errorf("failed to write locus: %w", err)
			}
			return em.Close()
		},
	}
}
