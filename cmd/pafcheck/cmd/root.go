package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/darcyabjones/paf/i18n"
	"github.com/darcyabjones/paf/internal/config"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	lang    string
	format  string

	cfg *config.Config
	log *log.Logger
}

// NewRootCmd builds the pafcheck command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: log.New(io.Discard, "pafcheck: ", 0)}

	root := &cobra.Command{
		Use:   "pafcheck",
		Short: "Validate and convert PAF alignment files",
		Long: `pafcheck reads PAF (Pairwise mApping Format) files and reports every
line that does not parse, with a caret under the offending column.

Commands:
  check    - validate PAF input
  convert  - re-emit records as paf, json or yaml
  locus    - parse a single locus`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&a.lang, "lang", "", "diagnostic language (en, ja)")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", "output format (paf, json, yaml)")

	root.AddCommand(a.checkCmd(), a.convertCmd(), a.locusCmd(), versionCmd())
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

// setup loads the config file and lets explicitly set flags override it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		loaded, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}
	if flags.Changed("lang") {
		cfg.Language = a.lang
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("max-errors") {
		cfg.MaxErrors, _ = flags.GetInt("max-errors")
	}
	if flags.Changed("skip-invalid") {
		cfg.SkipInvalid, _ = flags.GetBool("skip-invalid")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	if cfg.Verbose {
		a.log.SetOutput(cmd.ErrOrStderr())
	}
	i18n.SetLanguage(cfg.Language)
	if a.cfgFile != "" {
		a.log.Printf("loaded config %s", a.cfgFile)
	}
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

// openInputs returns the named files, or stdin when names is empty or "-".
func openInputs(cmd *cobra.Command, names []string) ([]input, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}
	ins := make([]input, 0, len(names))
	for _, n := range names {
		if n == "-" {
			ins = append(ins, input{name: "<stdin>", r: io.NopCloser(cmd.InOrStdin())})
			continue
		}
		f, err := os.Open(n)
		if err != nil {
			for _, in := range ins {
				in.r.Close()
			}
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		ins = append(ins, input{name: n, r: f})
	}
	return ins, nil
}

type input struct {
	name string
	r    io.ReadCloser
}
