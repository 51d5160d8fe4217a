package cli

import (
	"fmt"
	"io"

	"github.com/alvinbaena/pwd-toolkit/internal/util"
	"github.com/alvinbaena/pwd-toolkit/pkg/similarity"
	"github.com/spf13/cobra"
)

var (
	compareCmd = &cobra.Command{
		Use:   "compare <first> <second>",
		Short: "Score how similar two passwords are",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return compareCommand(cmd.OutOrStdout(), args[0], args[1])
		},
	}
)

func init() {
	rootCmd.AddCommand(compareCmd)
}

func compareCommand(out io.Writer, first, second string) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	score := similarity.Compare(first, second)
	verdict := similarity.Verdict(score)
	if verdict == "" {
		verdict = "different enough"
	}

	fmt.Fprintf(out, "Similarity: %.0f%% (%s)\n", score*100, verdict)
	return nil
}
