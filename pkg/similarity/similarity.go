// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package similarity

import (
	"math"
	"regexp"
	"strings"
)

const (
	lengthWeight    = 0.2
	profileWeight   = 0.3
	substringWeight = 0.3
	runWeight       = 0.2
)

const (
	TooSimilar    = "too similar"
	SharedPattern = "some shared patterns"
)

var (
	digitRun = regexp.MustCompile(`\d{2,}`)
	alphaRun = regexp.MustCompile(`[a-zA-Z]{2,}`)
)

// Compare scores how close two passwords are, from 0 (unrelated) to 1 (identical).
// The character class term is weighted by the share of distinct characters both
// passwords use, so two unrelated passwords with the same classes stay low.
func Compare(a, b string) float64 {
	if a == b {
		return 1
	}

	ra, rb := []rune(a), []rune(b)
	longest := math.Max(float64(len(ra)), float64(len(rb)))

	lengthScore := 1 - math.Abs(float64(len(ra)-len(rb)))/longest
	profileScore := profile(a, b, longest) * overlap(ra, rb)
	substringScore := float64(longestCommonSubstring(ra, rb)) / longest

	runScore := 0.0
	if sharesRun(runs(a), runs(b)) {
		runScore = 1
	}

	return lengthWeight*lengthScore +
		profileWeight*profileScore +
		substringWeight*substringScore +
		runWeight*runScore
}

// Verdict describes a similarity score, or returns an empty string when the
// passwords are far enough apart.
func Verdict(score float64) string {
	switch {
	case score > 0.7:
		return TooSimilar
	case score > 0.5:
		return SharedPattern
	default:
		return ""
	}
}

type classCounts [4]int

func countClasses(s string) classCounts {
	var c classCounts
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			c[0]++
		case r >= 'A' && r <= 'Z':
			c[1]++
		case r >= '0' && r <= '9':
			c[2]++
		default:
			c[3]++
		}
	}
	return c
}

// profile compares the per-class character counts.
func profile(a, b string, longest float64) float64 {
	ca, cb := countClasses(a), countClasses(b)
	diff := 0
	for i := range ca {
		d := ca[i] - cb[i]
		if d < 0 {
			d = -d
		}
		diff += d
	}
	return math.Max(0, 1-float64(diff)/longest)
}

// overlap is the Jaccard index of the distinct characters of both strings. It keeps
// two passwords with the same shape but no characters in common from scoring as alike.
func overlap(a, b []rune) float64 {
	sa := make(map[rune]struct{}, len(a))
	for _, r := range a {
		sa[r] = struct{}{}
	}
	sb := make(map[rune]struct{}, len(b))
	for _, r := range b {
		sb[r] = struct{}{}
	}

	inter := 0
	for r := range sa {
		if _, ok := sb[r]; ok {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	if union == 0 {
		return 1
	}
	return float64(inter) / float64(union)
}

func longestCommonSubstring(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	best := 0
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > best {
					best = cur[j]
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return best
}

func runs(s string) []string {
	return append(digitRun.FindAllString(s, -1), alphaRun.FindAllString(s, -1)...)
}

func sharesRun(x, y []string) bool {
	for _, a := range x {
		for _, b := range y {
			if strings.Contains(a, b) || strings.Contains(b, a) {
				return true
			}
		}
	}
	return false
}
