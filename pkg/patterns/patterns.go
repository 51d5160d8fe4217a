// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package patterns

import (
	"strings"
)

const sequence = "abcdefghijklmnopqrstuvwxyz0123456789"

var reversed = reverse(sequence)

type Types struct {
	Horizontal bool `json:"horizontal"`
	Diagonal   bool `json:"diagonal"`
	Repeated   bool `json:"repeated"`
	Sequential bool `json:"sequential"`
}

// Analysis is the result of scanning a password for keyboard and character patterns.
// Patterns holds every matched substring in detection order, duplicates included.
type Analysis struct {
	HasPattern bool     `json:"hasPattern"`
	Patterns   []string `json:"patterns"`
	Types      Types    `json:"types"`
}

// Analyze scans every 3-character window of the lowercased password.
func Analyze(password string) Analysis {
	rs := []rune(strings.ToLower(password))
	a := Analysis{Patterns: []string{}}

	// Same keyboard row.
	for i := 0; i+2 < len(rs); i++ {
		k1, k2, k3, ok := keys(rs[i : i+3])
		if ok && k1.row == k2.row && k2.row == k3.row {
			a.Patterns = append(a.Patterns, string(rs[i:i+3]))
			a.Types.Horizontal = true
		}
	}

	// Row changes by one on each step.
	for i := 0; i+2 < len(rs); i++ {
		k1, k2, k3, ok := keys(rs[i : i+3])
		if ok && abs(k1.row-k2.row) == 1 && abs(k2.row-k3.row) == 1 {
			a.Patterns = append(a.Patterns, string(rs[i:i+3]))
			a.Types.Diagonal = true
		}
	}

	if run := firstRepeat(rs); run != "" {
		a.Patterns = append(a.Patterns, run)
		a.Types.Repeated = true
	}

	for i := 0; i+2 < len(rs); i++ {
		w := string(rs[i : i+3])
		if strings.Contains(sequence, w) || strings.Contains(reversed, w) {
			a.Patterns = append(a.Patterns, w)
			a.Types.Sequential = true
		}
	}

	a.HasPattern = a.Types.Horizontal || a.Types.Diagonal || a.Types.Repeated || a.Types.Sequential
	return a
}

// Feedback turns the detected pattern types into suggestions for the user.
func Feedback(a Analysis) []string {
	var feedback []string
	if a.Types.Horizontal {
		feedback = append(feedback, "Avoid using keyboard row patterns (e.g., 'qwerty', 'asdf')")
	}
	if a.Types.Diagonal {
		feedback = append(feedback, "Avoid diagonal keyboard patterns (e.g., 'qaz', 'zxc')")
	}
	if a.Types.Repeated {
		feedback = append(feedback, "Avoid repeating characters more than twice")
	}
	if a.Types.Sequential {
		feedback = append(feedback, "Avoid sequential characters (e.g., 'abc', '123')")
	}
	return feedback
}

func keys(w []rune) (key, key, key, bool) {
	k1, ok1 := qwerty[w[0]]
	k2, ok2 := qwerty[w[1]]
	k3, ok3 := qwerty[w[2]]
	return k1, k2, k3, ok1 && ok2 && ok3
}

// firstRepeat returns the first run of three or more identical characters.
func firstRepeat(rs []rune) string {
	for i := 0; i+2 < len(rs); i++ {
		if rs[i] != rs[i+1] || rs[i+1] != rs[i+2] {
			continue
		}
		j := i + 3
		for j < len(rs) && rs[j] == rs[i] {
			j++
		}
		return string(rs[i:j])
	}
	return ""
}

func reverse(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
