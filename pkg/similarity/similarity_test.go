package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare_Identical(t *testing.T) {
	for _, p := range []string{"", "a", "Tr0ub4dor&3xQ9", "!!!", "correct-horse"} {
		assert.InDelta(t, 1.0, Compare(p, p), 1e-9, "identical strings: %q", p)
	}
}

func TestCompare_Disjoint(t *testing.T) {
	score := Compare("abc12345", "xyz99999")
	assert.Less(t, score, 0.5)
	assert.Equal(t, "", Verdict(score))
}

func TestCompare_Symmetric(t *testing.T) {
	cases := [][2]string{
		{"password1", "password2"},
		{"Summer2023!", "Winter2024?"},
		{"abc", "abcdef"},
		{"", "x"},
	}
	for _, tc := range cases {
		assert.InDelta(t, Compare(tc[0], tc[1]), Compare(tc[1], tc[0]), 1e-9, "%q vs %q", tc[0], tc[1])
	}
}

func TestCompare_Bounds(t *testing.T) {
	cases := [][2]string{
		{"", "x"},
		{"a", "Zzzzzzzzzzzzzzzzzzzzz"},
		{"12", "!!!!!!!!"},
		{"Tr0ub4dor&3", "tr0ub4dor&3"},
	}
	for _, tc := range cases {
		s := Compare(tc[0], tc[1])
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestCompare_NearDuplicate(t *testing.T) {
	score := Compare("password1", "password2")
	assert.Greater(t, score, 0.7)
	assert.Equal(t, TooSimilar, Verdict(score))
}

func TestVerdict(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.95, TooSimilar},
		{0.71, TooSimilar},
		{0.7, SharedPattern},
		{0.51, SharedPattern},
		{0.5, ""},
		{0, ""},
	}

	for _, tc := range cases {
		if got := Verdict(tc.score); got != tc.want {
			t.Errorf("Verdict(%f): %q, want: %q", tc.score, got, tc.want)
		}
	}
}

func TestLongestCommonSubstring(t *testing.T) {
	assert.Equal(t, 4, longestCommonSubstring([]rune("xxabcdyy"), []rune("abcd")))
	assert.Equal(t, 0, longestCommonSubstring([]rune("abc"), []rune("xyz")))
	assert.Equal(t, 0, longestCommonSubstring(nil, []rune("xyz")))
}
