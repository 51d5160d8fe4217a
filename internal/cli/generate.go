package cli

import (
	"fmt"
	"io"

	"github.com/alvinbaena/pwd-toolkit/pkg/entropy"
	"github.com/alvinbaena/pwd-toolkit/pkg/generator"
	"github.com/alvinbaena/pwd-toolkit/pkg/random"
	"github.com/jfcg/sorty/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate random, memorable or recipe based passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateCommand(cmd.OutOrStdout())
		},
	}
)

func init() {
	generateCmd.Flags().StringVarP(&mode, "mode", "m", string(generator.Random), "Generation mode: random, memorable or recipe")
	generateCmd.Flags().IntVarP(&length, "length", "l", generator.DefaultLength, "Password length for random mode, between 4 and 96")
	generateCmd.Flags().BoolVar(&noUpper, "no-upper", false, "Leave uppercase letters out of random passwords")
	generateCmd.Flags().BoolVar(&noLower, "no-lower", false, "Leave lowercase letters out of random passwords")
	generateCmd.Flags().BoolVar(&noNumbers, "no-numbers", false, "Leave numbers out of random passwords")
	generateCmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "Leave symbols out of random passwords")
	generateCmd.Flags().BoolVar(&excludeAmbiguous, "exclude-ambiguous", false, "Leave out characters that are easy to confuse (I, l, 1, O, 0)")
	generateCmd.Flags().StringVarP(&recipe, "recipe", "r", generator.DefaultRecipe,
		"Recipe for recipe mode. Tokens: A a (letters), 0 (digit), # (symbol), W w (words), C c (colors), Y (year), M (month), D (day). Anything else is literal")
	generateCmd.Flags().IntVarP(&count, "count", "c", 1, "Number of passwords to generate")
	generateCmd.Flags().BoolVar(&sortByEntropy, "sort", false, "Print the passwords from the highest to the lowest estimated entropy")
	generateCmd.Flags().StringVar(&source, "source", "", "Random source: crypto, system, mixed or pseudo. Defaults to RANDOM_SOURCE or crypto")

	rootCmd.AddCommand(generateCmd)
}

func generateCommand(out io.Writer) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	src, err := sourceFor(cfg)
	if err != nil {
		return err
	}
	warnInsecure(src)

	m, err := generator.ParseMode(mode)
	if err != nil {
		return err
	}

	opts := generator.DefaultOptions()
	opts.Mode = m
	opts.Length = length
	opts.Uppercase = !noUpper
	opts.Lowercase = !noLower
	opts.Numbers = !noNumbers
	opts.Symbols = !noSymbols
	opts.ExcludeAmbiguous = excludeAmbiguous
	opts.Recipe = recipe
	opts.Source = src

	passwords, err := generator.Passwords(max(count, 1), opts)
	if err != nil {
		return err
	}

	bits := make([]float64, len(passwords))
	for i, p := range passwords {
		bits[i] = entropy.Estimate(p).Entropy
	}
	if sortByEntropy {
		sortByBits(passwords, bits)
	}

	for i, p := range passwords {
		if count > 1 || verbose {
			fmt.Fprintf(out, "%s\t%.1f bits\t%s\n", p, bits[i], entropy.LabelFor(bits[i]))
		} else {
			fmt.Fprintln(out, p)
		}
	}
	return nil
}

// sortByBits orders both slices by descending entropy.
func sortByBits(passwords []string, bits []float64) {
	lsw := func(i, k, r, s int) bool {
		if bits[i] > bits[k] {
			if r != s {
				bits[r], bits[s] = bits[s], bits[r]
				passwords[r], passwords[s] = passwords[s], passwords[r]
			}
			return true
		}
		return false
	}
	sorty.Sort(len(bits), lsw)
}

func warnInsecure(src random.Source) {
	if !src.Secure() {
		log.Warn().Msgf("random source %s is not cryptographically secure, do not use the result as a real password", src)
	}
}
