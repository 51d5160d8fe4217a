package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alvinbaena/pwd-toolkit/pkg/generator"
	"github.com/spf13/cobra"
)

var (
	passphraseCmd = &cobra.Command{
		Use:   "passphrase",
		Short: "Generate multi word passphrases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return passphraseCommand(cmd.OutOrStdout())
		},
	}
)

func init() {
	passphraseCmd.Flags().IntVarP(&words, "words", "w", generator.DefaultWords, "Number of words, between 3 and 8")
	passphraseCmd.Flags().StringVar(&separator, "separator", generator.DefaultSeparator, "Separator between words")
	passphraseCmd.Flags().BoolVar(&noCasing, "no-casing", false, "Keep every word in lowercase")
	passphraseCmd.Flags().BoolVar(&noNumbers, "no-numbers", false, "Never append numbers to words")
	passphraseCmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "Never append symbols to words")
	passphraseCmd.Flags().IntVarP(&count, "count", "c", 1, "Number of passphrases to generate")
	passphraseCmd.Flags().StringVar(&source, "source", "", "Random source: crypto, system, mixed or pseudo. Defaults to RANDOM_SOURCE or crypto")

	rootCmd.AddCommand(passphraseCmd)
}

func passphraseCommand(out io.Writer) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	src, err := sourceFor(cfg)
	if err != nil {
		return err
	}
	warnInsecure(src)

	opts := generator.PassphraseOptions{
		WordCount: words,
		Casing:    !noCasing,
		Numbers:   !noNumbers,
		Symbols:   !noSymbols,
		Separator: separator,
		Source:    src,
	}

	phrases, err := generator.Passphrases(max(count, 1), opts)
	if err != nil {
		return err
	}

	for _, p := range phrases {
		est := generator.EstimatePassphrase(p)
		fmt.Fprintf(out, "%s\t%d\t%s\n", p, est.Score, est.Label)
		if verbose {
			if tips := generator.SuggestPassphraseImprovements(p); len(tips) > 0 {
				fmt.Fprintf(out, "  %s\n", strings.Join(tips, "\n  "))
			}
		}
	}
	return nil
}
