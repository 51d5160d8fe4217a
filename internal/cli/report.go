package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alvinbaena/pwd-toolkit/pkg/entropy"
	"github.com/alvinbaena/pwd-toolkit/pkg/hibp"
	"github.com/alvinbaena/pwd-toolkit/pkg/strength"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// writeReport prints a strength report. breach may be nil when no lookup was made.
func writeReport(w io.Writer, s strength.Result, breach *hibp.Result) {
	fmt.Fprintf(w, "Strength:      %s (score %d/4)\n", s.Label, s.Score)
	fmt.Fprintf(w, "Entropy:       %.1f bits (zxcvbn), %.1f bits estimated, %s\n", s.Entropy, s.Estimate.Entropy, s.EstimateLabel)
	fmt.Fprintf(w, "Crack time:    %s\n", s.CrackTimeDisplay)
	fmt.Fprintf(w, "Characters:    %d lowercase, %d uppercase, %d numbers, %d symbols\n",
		s.CharTypes.Lowercase, s.CharTypes.Uppercase, s.CharTypes.Numbers, s.CharTypes.Symbols)

	if len(s.Patterns) > 0 {
		fmt.Fprintf(w, "Patterns:      %s\n", strings.Join(s.Patterns, ", "))
	}

	for _, ct := range entropy.CrackTimes(s.Estimate.Entropy) {
		fmt.Fprintf(w, "  %-18s %s\n", ct.Rate.Name, ct.Display)
	}

	if breach != nil {
		switch {
		case !breach.Verified:
			fmt.Fprintln(w, "Breach:        could not verify")
		case breach.Breached:
			fmt.Fprintf(w, "Breach:        FOUND %s times in known breaches\n", printer.Sprintf("%d", breach.Occurrences))
		default:
			fmt.Fprintln(w, "Breach:        not found in known breaches")
		}
	}

	if s.Feedback.Warning != "" {
		fmt.Fprintf(w, "Warning:       %s\n", s.Feedback.Warning)
	}
	for _, sug := range s.Feedback.Suggestions {
		fmt.Fprintf(w, "  - %s\n", sug)
	}
}
