package cmd

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"layoutsyn/internal/config"
	"layoutsyn/internal/layout"
	"layoutsyn/internal/translator"

	"github.com/spf13/cobra"
)

func newTranslateCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "translate -f <layout> -t <layout> <word>...",
		Short: "Show what words become when typed on another layout",
		Long: `translate maps each word argument from the source layout to the target layout
without consulting a dictionary. Each word is printed as "word,translated", or
"word was invalid" when it contains a character missing from the source layout.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.ValidateLayouts(); err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return executeTranslate(cfg, args, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.VarP((*layoutFlag)(&cfg.From), config.FlagFrom, "f", "The configured keyboard layout")
	flags.VarP((*layoutFlag)(&cfg.To), config.FlagTo, "t", "The keyboard layout in which is typed")
	flags.BoolVar(&cfg.CaseSensitive, config.FlagCaseSensitive, false, "Do not lowercase words before translating")

	return cmd
}

func executeTranslate(cfg *config.Config, words []string, out io.Writer) error {
	from, err := layout.Get(cfg.From)
	if err != nil {
		return err
	}
	to, err := layout.Get(cfg.To)
	if err != nil {
		return err
	}

	tr, err := translator.New(from, to)
	if err != nil {
		return err
	}

	caser := cases.Lower(language.Und)
	invalid := 0
	for _, word := range words {
		normalized := word
		if !cfg.CaseSensitive {
			normalized = caser.String(word)
		}

		translated, ok := tr.Translate(normalized)
		if !ok {
			invalid++
			fmt.Fprintf(out, "%s was invalid\n", word)
			continue
		}
		fmt.Fprintf(out, "%s,%s\n", word, translated)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d words could not be translated from %s to %s", invalid, len(words), cfg.From, cfg.To)
	}
	return nil
}
