package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alvinbaena/pwd-toolkit/internal/util"
	"github.com/alvinbaena/pwd-toolkit/pkg/hibp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	breachCmd = &cobra.Command{
		Use:   "breach <password...>",
		Short: "Check passwords against the Pwned Passwords range API",
		Long: "Check one or more passwords against the Pwned Passwords range API. Only the first 5 characters " +
			"of the SHA1 hash are sent. Lookups that fail are reported as unverified, never as breached.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return breachCommand(ctx, cmd.OutOrStdout(), args)
		},
	}
)

func init() {
	breachCmd.Flags().BoolVarP(&hashed, "hashed", "s", false, "If the supplied passwords are Hexadecimal SHA1 hashes or plain text strings.")
	breachCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of concurrent lookups. Defaults to the number of logical processors.")

	rootCmd.AddCommand(breachCmd)
}

func breachCommand(ctx context.Context, out io.Writer, inputs []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	s := util.Stats()
	defer s()

	checker, err := newChecker(cfg)
	if err != nil {
		return err
	}
	defer checker.Close()

	var results []hibp.Result
	if hashed {
		for _, h := range inputs {
			if !hibp.ValidHash(h) {
				return fmt.Errorf("%q: %w", h, hibp.ErrInvalidHash)
			}
		}
		results, err = checker.CheckAllHashes(ctx, inputs, threads)
	} else {
		results, err = checker.CheckAll(ctx, inputs, threads)
	}
	if err != nil {
		return err
	}
	checker.LogStats()

	for i, res := range results {
		label := breachLabel(i, inputs[i], hashed)

		switch {
		case !res.Verified:
			fmt.Fprintf(out, "%s\tunverified\n", label)
		case res.Breached:
			fmt.Fprintf(out, "%s\tbreached\t%s\n", label, printer.Sprintf("%d", res.Occurrences))
		default:
			fmt.Fprintf(out, "%s\tnot found\n", label)
		}
	}

	if st := checker.Stats(); st.Failures > 0 {
		log.Warn().Msgf("%d lookups could not be verified", st.Failures)
	}
	return nil
}

// breachLabel names an input by its position and the hash prefix sent to the API,
// plain text passwords never reach the output.
func breachLabel(i int, input string, hashed bool) string {
	if hashed {
		return input
	}
	prefix, _ := hibp.HashPassword(input)
	return fmt.Sprintf("#%d %s", i+1, prefix)
}
