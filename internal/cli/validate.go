package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alvinbaena/pwd-toolkit/internal/util"
	"github.com/alvinbaena/pwd-toolkit/pkg/strength"
	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	validateCmd = &cobra.Command{
		Use:   "validate [password...]",
		Short: "Validate passwords against the password policy",
		Long: "Validate passwords against the password policy: minimum length, character classes, " +
			"minimum strength score and reuse of a recent password. Accepted passwords are kept in an " +
			"in-memory history for the rest of the session, the history is never written anywhere.",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive {
				return cobra.MinimumNArgs(1)(cmd, args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p := strength.DefaultPolicy()
			p.MinLength = minLength
			p.MinScore = minScore

			if interactive {
				return validateInteractive(cmd.OutOrStdout(), p)
			}
			return validateCommand(cmd.OutOrStdout(), p, args)
		},
	}
)

func init() {
	validateCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode. Accepted passwords are remembered until exit.")
	validateCmd.Flags().IntVar(&minLength, "min-length", strength.DefaultMinLength, "Minimum password length")
	validateCmd.Flags().IntVar(&minScore, "min-score", strength.DefaultMinScore, "Minimum strength score, between 0 and 4")

	rootCmd.AddCommand(validateCmd)
}

// validateCommand checks the passwords in order, each accepted one joins the history
// the next ones are compared with.
func validateCommand(out io.Writer, p *strength.Policy, passwords []string) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	rejected := 0
	for i, password := range passwords {
		res := p.Accept(password)
		if !res.Valid {
			rejected++
		}
		writePolicyResult(out, fmt.Sprintf("#%d", i+1), res)
	}

	if rejected > 0 {
		log.Warn().Msgf("%d of %d passwords rejected", rejected, len(passwords))
	}
	return nil
}

func validateInteractive(out io.Writer, p *strength.Policy) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	prompt := promptui.Prompt{
		Label: "Password",
		Mask:  '*',
		Validate: func(input string) error {
			if len(input) == 0 {
				return errors.New("please enter a password")
			}
			return nil
		},
	}

	log.Info().Msgf("Running interactive session. ^C to exit")
	for i := 1; ; i++ {
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

		writePolicyResult(out, fmt.Sprintf("#%d", i), p.Accept(password))
	}
}

func writePolicyResult(w io.Writer, label string, res strength.PolicyResult) {
	status := "rejected"
	if res.Valid {
		status = "accepted"
	}
	fmt.Fprintf(w, "%s\t%s\t%s\n", label, status, res.Strength.Label)

	for _, e := range res.Errors {
		fmt.Fprintf(w, "  error: %s\n", e)
	}
	if len(res.Errors) == 0 && !res.Valid {
		fmt.Fprintf(w, "  error: Strength score %d is below the required minimum\n", res.Strength.Score)
	}
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warn)
	}
}
