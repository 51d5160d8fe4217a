package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alvinbaena/pwd-toolkit/pkg/hibp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args after resetting the flags of cmds, the
// flag variables are package level and survive between executions.
func run(t *testing.T, args []string, cmds ...*cobra.Command) string {
	t.Helper()
	for _, c := range append(cmds, rootCmd) {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func TestGenerateCommand(t *testing.T) {
	out := run(t, []string{"generate", "-l", "24", "-c", "5", "--sort", "--no-symbols"}, generateCmd)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)

	prev := 1e9
	for _, line := range lines {
		var pw string
		var bits float64
		_, err := fmt.Sscanf(line, "%s\t%f bits", &pw, &bits)
		require.NoError(t, err, line)
		assert.Len(t, pw, 24)
		assert.Regexp(t, `^[A-Za-z0-9]+$`, pw)
		assert.LessOrEqual(t, bits, prev, "sorted by descending entropy")
		prev = bits
	}
}

func TestGenerateCommand_Recipe(t *testing.T) {
	out := run(t, []string{"generate", "-m", "recipe", "-r", "x-0"}, generateCmd)
	assert.Regexp(t, `^x-\d\n$`, out)
}

func TestGenerateCommand_BadMode(t *testing.T) {
	rootCmd.SetArgs([]string{"generate", "-m", "nope"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	assert.Error(t, rootCmd.Execute())
	mode = "random"
}

func TestPassphraseCommand(t *testing.T) {
	out := run(t, []string{"passphrase", "-w", "5", "--separator", ".", "--no-numbers", "--no-symbols", "-c", "2"}, passphraseCmd)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		phrase := strings.Split(line, "\t")[0]
		assert.Len(t, strings.Split(phrase, "."), 5)
	}
}

func TestCompareCommand(t *testing.T) {
	out := run(t, []string{"compare", "password1", "password2"}, compareCmd)
	assert.Contains(t, out, "too similar")

	out = run(t, []string{"compare", "abc12345", "xyz99999"}, compareCmd)
	assert.Contains(t, out, "different enough")
}

func TestAnalyzeCommand_NoBreach(t *testing.T) {
	out := run(t, []string{"analyze", "--no-breach", "password"}, analyzeCmd)
	assert.Contains(t, out, "Very Weak")
	assert.Contains(t, out, "Common password pattern")
	assert.NotContains(t, out, "Breach:")
}

func TestBreachCommand(t *testing.T) {
	_, suffix := hibp.HashPassword("password")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, "%s:1234\r\n", suffix)
	}))
	defer srv.Close()
	t.Setenv("HIBP_URL", srv.URL)
	t.Setenv("HIBP_RETRIES", "0")

	out := run(t, []string{"breach", "password", "unlisted-password"}, breachCmd)
	assert.Contains(t, out, "#1 5BAA6\tbreached\t1,234")
	assert.Contains(t, out, "#2 ")
	assert.Contains(t, out, "not found")
	assert.NotContains(t, out, "password")
	assert.NotContains(t, out, "p******d")

	out = run(t, []string{"breach", "-s", "5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8"}, breachCmd)
	assert.Contains(t, out, "5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8\tbreached")

	// Analyze runs the same lookup.
	out = run(t, []string{"analyze", "password"}, analyzeCmd)
	assert.Contains(t, out, "FOUND 1,234 times")
}

func TestValidateCommand(t *testing.T) {
	out := run(t, []string{"validate", "v8#Kq2!zLm9@Xw", "short", "v8#Kq2!zLm9@Xw"}, validateCmd)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "#1\taccepted"), lines[0])
	assert.Contains(t, out, "#2\trejected")
	assert.Contains(t, out, "error: Password must be at least 12 characters long")
	assert.Contains(t, out, "#3\trejected")
	assert.Contains(t, out, "error: Password has been used recently")
	assert.NotContains(t, out, "v8#Kq2")
}

func TestValidateCommand_MinLength(t *testing.T) {
	out := run(t, []string{"validate", "--min-length", "20", "v8#Kq2!zLm9@Xw"}, validateCmd)
	assert.Contains(t, out, "#1\trejected")
	assert.Contains(t, out, "at least 20 characters")
}

func TestSortByBits(t *testing.T) {
	pws := []string{"a", "b", "c", "d"}
	bits := []float64{10, 40, 20, 30}
	sortByBits(pws, bits)

	assert.Equal(t, []string{"b", "d", "c", "a"}, pws)
	assert.Equal(t, []float64{40, 30, 20, 10}, bits)
}
