package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"layoutsyn/internal/config"
	"layoutsyn/internal/errors"
	"layoutsyn/internal/layout"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Execute runs the root command and handles top-level error reporting.
// Every failure is printed once as "Error: ..." on stderr and exits with
// status 1; an interrupt cancels a running scan.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.Describe(err))
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "layoutsyn -f <layout> -t <layout> -d <dictionary>",
		Short: "Find words that type as other words under a different keyboard layout",
		Long: `layoutsyn finds keyboard-layout synonyms: dictionary words that, when every
character is moved from its key on one layout to the same physical key on
another layout, turn into a different word from the same dictionary.

Each synonym is printed as "word,translated". Known layouts: ` + fmt.Sprint(layout.Names()) + `.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.VarP((*layoutFlag)(&cfg.From), config.FlagFrom, "f", "The configured keyboard layout")
	flags.VarP((*layoutFlag)(&cfg.To), config.FlagTo, "t", "The keyboard layout in which is typed")
	flags.StringVarP(&cfg.Dictionary, config.FlagDictionary, "d", "", "Path to dictionary to use (one word per line)")
	flags.IntVarP(&cfg.MinLength, config.FlagMinLength, "l", config.DefaultMinLength, "Minimum length of synonym to output")
	flags.StringSliceVar(&cfg.Include, config.FlagInclude, []string{}, "Only scan words matching these glob patterns (repeatable)")
	flags.StringSliceVar(&cfg.Exclude, config.FlagExclude, []string{}, "Skip words matching these glob patterns (repeatable)")
	flags.IntVarP(&cfg.Workers, config.FlagWorkers, "w", 0, "Number of scan workers (0: one per CPU, at most 8)")
	flags.BoolVar(&cfg.Sort, config.FlagSort, true, "Sort output by word (--sort=false prints pairs as they are found)")
	flags.BoolVar(&cfg.Distinct, config.FlagDistinct, false, "Skip words that translate to themselves")
	flags.BoolVar(&cfg.CaseSensitive, config.FlagCaseSensitive, false, "Do not lowercase words before translating")
	flags.BoolVar(&cfg.ReportInvalid, config.FlagReportInvalid, false, "Print \"<word> was invalid\" on stderr for untranslatable words")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose mode")
	flags.BoolVar(&cfg.Debug, "debug", false, "Debug mode")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Quiet mode")
	flags.StringVar(&cfg.LogFile, config.FlagLog, "", "Write a run report to this file")
	flags.Var((*logFormatFlag)(&cfg.LogFormat), config.FlagLogFormat, "Run report format (json, csv)")
	flags.StringVar(&cfg.ConfigFile, "config", "", "Read default options from a .toml, .yaml or .json file")

	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	cmd.MarkFlagsMutuallyExclusive("debug", "quiet")

	cmd.AddCommand(newTranslateCmd())
	cmd.AddCommand(newLayoutsCmd())

	return cmd
}

func runSearch(cmd *cobra.Command, cfg *config.Config) error {
	if cfg.ConfigFile != "" {
		file, err := config.LoadFile(cfg.ConfigFile)
		if err != nil {
			return err
		}
		cfg.Apply(file, func(name string) bool {
			return cmd.Flags().Changed(name)
		})
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Past validation, failures are about the run itself, not its usage.
	cmd.SilenceUsage = true

	return executeSearch(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

var (
	_ pflag.Value = (*layoutFlag)(nil)
	_ pflag.Value = (*logFormatFlag)(nil)
)

type layoutFlag string

func (f *layoutFlag) String() string {
	return string(*f)
}

func (f *layoutFlag) Set(v string) error {
	if !layout.Has(v) {
		return errors.NewConfigError(fmt.Sprintf("must be one of %v", layout.Names()), nil)
	}
	*f = layoutFlag(v)
	return nil
}

func (f *layoutFlag) Type() string {
	return "layout"
}

type logFormatFlag config.LogFormat

func (f *logFormatFlag) String() string {
	return string(*f)
}

func (f *logFormatFlag) Set(v string) error {
	switch v {
	case "json", "csv":
		*f = logFormatFlag(v)
		return nil
	default:
		return fmt.Errorf("must be 'json' or 'csv'")
	}
}

func (f *logFormatFlag) Type() string {
	return "string"
}
