package strength

import (
	"slices"
	"testing"

	"github.com/alvinbaena/pwd-toolkit/pkg/entropy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_Empty(t *testing.T) {
	res := Analyze("")
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, "Very Weak", res.Label)
	assert.Zero(t, res.Entropy)
	assert.Empty(t, res.Patterns)
	assert.False(t, res.Keyboard.HasPattern)
}

func TestAnalyze_CommonPassword(t *testing.T) {
	res := Analyze("password")
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, []string{"Very Weak", "Weak"}, res.Label)
	assert.Less(t, res.Entropy, 30.0)
	assert.Contains(t, res.Patterns, PatternCommon)
	assert.Contains(t, res.Patterns, PatternLetters)
	assert.NotEmpty(t, res.Feedback.Warning)
	assert.NotEmpty(t, res.Feedback.Suggestions)
}

func TestAnalyze_StrongPassword(t *testing.T) {
	res := Analyze("Tr0ub4dor&3xQ9")
	assert.Contains(t, []entropy.Label{entropy.Strong, entropy.VeryStrong}, res.EstimateLabel)
	assert.False(t, res.Keyboard.HasPattern)
	assert.NotContains(t, res.Patterns, PatternCommon)
	assert.NotContains(t, res.Patterns, PatternRepeated)
	assert.Equal(t, CharTypes{Lowercase: 7, Uppercase: 2, Numbers: 4, Symbols: 1}, res.CharTypes)
}

func TestAnalyze_Patterns(t *testing.T) {
	cases := []struct {
		password string
		want     string
	}{
		{"aaab", PatternRepeated},
		{"abcdefgh", PatternLetters},
		{"98765432", PatternNumbers},
		{"myQWERTYpass", PatternCommon},
		{"zxcv9!", PatternKeyboard},
		{"hello123!", PatternSequential},
	}

	for _, tc := range cases {
		assert.Contains(t, Analyze(tc.password).Patterns, tc.want, tc.password)
	}

	assert.NotContains(t, Analyze("aAa").Patterns, PatternRepeated)
}

func TestCommonBase(t *testing.T) {
	cases := []struct {
		password string
		want     string
	}{
		{"Welcome2024!", "welcome"},
		{"Dr@gonMaster", "dragon"},
		{"P@ssw0rd!", "password"},
		{"l3tm3in", "letmein"},
		{"xxADMINxx", "admin"},
		{"Football99", "football"},
		{"abc123", "abc123"},
		{"my123456", "12345"},
		{"Tr0ub4dor&3xQ9", ""},
		{"v8#Kq2!zLm9@Xw", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := CommonBase(tc.password); got != tc.want {
			t.Errorf("CommonBase(%q): %q, want: %q", tc.password, got, tc.want)
		}
	}
}

func TestAnalyze_CommonBaseAndSubstitution(t *testing.T) {
	cases := []struct {
		password     string
		common       bool
		substitution bool
	}{
		{"Welcome2024!", true, false},
		{"Dr@gonMaster", true, false},
		{"b@$$Line77", false, true},
		{"zo0o-Keeper9", false, true},
		{"Tr0ub4dor&3xQ9", false, false},
	}

	for _, tc := range cases {
		res := Analyze(tc.password)
		assert.Equal(t, tc.common, slices.Contains(res.Patterns, PatternCommon), tc.password)
		assert.Equal(t, tc.substitution, slices.Contains(res.Patterns, PatternSubstitute), tc.password)
	}

	res := Analyze("Welcome2024!")
	assert.NotEmpty(t, res.Feedback.Warning)
	assert.Contains(t, res.Feedback.Suggestions, "Avoid common words and passwords like welcome")

	res = Analyze("b@$$Line77")
	assert.Contains(t, res.Feedback.Suggestions, "Predictable substitutions like @ for a or 0 for o don't help much")
}

func TestAnalyze_LongInput(t *testing.T) {
	long := ""
	for i := 0; i < 20; i++ {
		long += "Kx9!mQ2@"
	}
	res := Analyze(long)
	assert.InDelta(t, 160.0, res.Estimate.EffectiveLength, 1e-9)
	assert.GreaterOrEqual(t, res.Score, 0)
	assert.LessOrEqual(t, res.Score, 4)
}

func TestLabelFor(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{-1, "Very Weak"},
		{0, "Very Weak"},
		{1, "Weak"},
		{2, "Fair"},
		{3, "Strong"},
		{4, "Very Strong"},
		{5, "Very Strong"},
	}
	for _, tc := range cases {
		if got := LabelFor(tc.score); got != tc.want {
			t.Errorf("LabelFor(%d): %s, want: %s", tc.score, got, tc.want)
		}
	}
}

func TestCountCharTypes(t *testing.T) {
	got := CountCharTypes("aB3$ é")
	require.Equal(t, CharTypes{Lowercase: 1, Uppercase: 1, Numbers: 1, Symbols: 3}, got)
}
