package cli

import (
	"context"
	"errors"
	"io"

	"github.com/alvinbaena/pwd-toolkit/pkg/hibp"
	"github.com/alvinbaena/pwd-toolkit/pkg/strength"
	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	analyzeCmd = &cobra.Command{
		Use:   "analyze [password]",
		Short: "Analyze the strength of a password and check it against known breaches",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive {
				if err := cobra.ExactArgs(1)(cmd, args); err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return analyzeInteractive(cmd.OutOrStdout())
			}
			return analyzeCommand(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
)

func init() {
	analyzeCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode. The breach check runs while typing.")
	analyzeCmd.Flags().BoolVar(&noBreach, "no-breach", false, "Skip the breach lookup, no network calls are made.")

	rootCmd.AddCommand(analyzeCmd)
}

func analyzeCommand(ctx context.Context, out io.Writer, password string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	var breach *hibp.Result
	if !noBreach {
		checker, err := newChecker(cfg)
		if err != nil {
			return err
		}
		defer checker.Close()

		if ctx == nil {
			ctx = context.Background()
		}
		res := checker.Check(ctx, password)
		breach = &res
		checker.LogStats()
	}

	writeReport(out, strength.Analyze(password), breach)
	return nil
}

func analyzeInteractive(out io.Writer) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	var watcher *hibp.Watcher
	var checker *hibp.Checker
	if !noBreach {
		checker, err = newChecker(cfg)
		if err != nil {
			return err
		}
		defer checker.Close()

		watcher = hibp.NewWatcher(checker, cfg.BreachDebounce, func(o hibp.Observation) {
			log.Debug().Msgf("breach check finished, verified: %t", o.Result.Verified)
		})
		defer watcher.Close()
	}

	prompt := promptui.Prompt{
		Label: "Password",
		Mask:  '*',
		// Called on every keystroke, which is what drives the debounced lookup.
		Validate: func(input string) error {
			if watcher != nil {
				watcher.Update(input)
			}
			if len(input) == 0 {
				return errors.New("please enter a password")
			}
			return nil
		},
	}

	log.Info().Msgf("Running interactive session. ^C to exit")
	for {
		password, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				log.Info().Msgf("Goodbye")
			} else {
				log.Error().Err(err).Msgf("Error during interactive session")
			}
			// No return to avoid the default cobra error message
			return nil
		}

		writeReport(out, strength.Analyze(password), latestFor(watcher, checker, password))
	}
}

// latestFor returns the watcher result for password. When the lookup for that
// exact input has not finished yet it is made here.
func latestFor(w *hibp.Watcher, checker hibp.PasswordChecker, password string) *hibp.Result {
	if w == nil || checker == nil {
		return nil
	}
	if o, ok := w.Latest(); ok && o.Input == password {
		return &o.Result
	}

	res := checker.Check(context.Background(), password)
	return &res
}
