// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/alvinbaena/pwd-toolkit/pkg/entropy"
	"github.com/alvinbaena/pwd-toolkit/pkg/patterns"
	"github.com/nbutton23/zxcvbn-go"
	"github.com/nbutton23/zxcvbn-go/match"
)

// zxcvbn gets slow on long inputs, only the first characters are scored.
const maxCheckedLen = 50

var labels = [...]string{"Very Weak", "Weak", "Fair", "Strong", "Very Strong"}

// commonBases are the words most leaked passwords are built on.
var commonBases = []string{
	"password", "letmein", "admin", "welcome", "monkey", "dragon",
	"master", "football", "baseball", "qwerty", "12345", "abc123",
}

// leet undoes the usual character substitutions before looking for a common base.
var leet = strings.NewReplacer("@", "a", "4", "a", "$", "s", "5", "s", "0", "o", "3", "e", "1", "i", "!", "i", "7", "t")

var substitutionRe = regexp.MustCompile(`(?i)[a@][s$][s$]|[o0]{3}`)

const (
	PatternRepeated   = "Repeated characters"
	PatternLetters    = "Only letters"
	PatternNumbers    = "Only numbers"
	PatternCommon     = "Common password pattern"
	PatternSubstitute = "Predictable character substitution"
	PatternKeyboard   = "Keyboard row pattern"
	PatternDiagonal   = "Diagonal keyboard pattern"
	PatternSequential = "Sequential characters"
)

type Feedback struct {
	Warning     string   `json:"warning"`
	Suggestions []string `json:"suggestions"`
}

type CharTypes struct {
	Lowercase int `json:"lowercase"`
	Uppercase int `json:"uppercase"`
	Numbers   int `json:"numbers"`
	Symbols   int `json:"symbols"`
}

type Result struct {
	Score            int               `json:"score"`
	Entropy          float64           `json:"entropy"`
	Label            string            `json:"label"`
	CrackTime        float64           `json:"crackTime"`
	CrackTimeDisplay string            `json:"crackTimeDisplay"`
	Feedback         Feedback          `json:"feedback"`
	CharTypes        CharTypes         `json:"charTypes"`
	Patterns         []string          `json:"patterns"`
	Estimate         entropy.Detail    `json:"estimate"`
	EstimateLabel    entropy.Label     `json:"estimateLabel"`
	Keyboard         patterns.Analysis `json:"keyboard"`
}

// LabelFor maps a 0-4 score to its label.
func LabelFor(score int) string {
	if score < 0 {
		score = 0
	}
	if score >= len(labels) {
		score = len(labels) - 1
	}
	return labels[score]
}

// Analyze scores the password with zxcvbn and the local estimators. userInputs are
// words the password should not be built from, such as the user name.
func Analyze(password string, userInputs ...string) Result {
	if password == "" {
		return Result{
			Label:         LabelFor(0),
			Patterns:      []string{},
			Feedback:      Feedback{Suggestions: []string{}},
			EstimateLabel: entropy.LabelFor(0),
			Keyboard:      patterns.Analyze(""),
		}
	}

	checked := password
	if rs := []rune(password); len(rs) > maxCheckedLen {
		checked = string(rs[:maxCheckedLen])
	}
	z := zxcvbn.PasswordStrength(checked, userInputs)

	detail := entropy.Estimate(password)
	keyboard := patterns.Analyze(password)
	found := detectPatterns(password, keyboard)

	return Result{
		Score:            z.Score,
		Entropy:          z.Entropy,
		Label:            LabelFor(z.Score),
		CrackTime:        z.CrackTime,
		CrackTimeDisplay: z.CrackTimeDisplay,
		Feedback:         feedback(z.Score, z.MatchSequence, keyboard, password, found),
		CharTypes:        CountCharTypes(password),
		Patterns:         found,
		Estimate:         detail,
		EstimateLabel:    entropy.LabelFor(detail.Entropy),
		Keyboard:         keyboard,
	}
}

func CountCharTypes(password string) CharTypes {
	var c CharTypes
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.Lowercase++
		case r >= 'A' && r <= 'Z':
			c.Uppercase++
		case r >= '0' && r <= '9':
			c.Numbers++
		default:
			c.Symbols++
		}
	}
	return c
}

func detectPatterns(password string, keyboard patterns.Analysis) []string {
	found := []string{}
	if hasRun(password, 3) {
		found = append(found, PatternRepeated)
	}

	c := CountCharTypes(password)
	switch {
	case c.Numbers == 0 && c.Symbols == 0:
		found = append(found, PatternLetters)
	case c.Lowercase == 0 && c.Uppercase == 0 && c.Symbols == 0:
		found = append(found, PatternNumbers)
	}

	if CommonBase(password) != "" {
		found = append(found, PatternCommon)
	}
	if substitutionRe.MatchString(password) {
		found = append(found, PatternSubstitute)
	}
	if keyboard.Types.Horizontal {
		found = append(found, PatternKeyboard)
	}
	if keyboard.Types.Diagonal {
		found = append(found, PatternDiagonal)
	}
	if keyboard.Types.Sequential {
		found = append(found, PatternSequential)
	}
	return found
}

// CommonBase returns the common password word the password contains, as typed or
// once substitutions like @ for a are undone. Empty when there is none.
func CommonBase(password string) string {
	lower := strings.ToLower(password)
	plain := leet.Replace(lower)
	for _, base := range commonBases {
		if strings.Contains(lower, base) || strings.Contains(plain, base) {
			return base
		}
	}
	return ""
}

// hasRun reports a run of at least n identical characters, case sensitive.
func hasRun(s string, n int) bool {
	var prev rune
	run := 0
	for i, r := range s {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
	}
	return false
}

func feedback(score int, seq []match.Match, keyboard patterns.Analysis, password string, found []string) Feedback {
	fb := Feedback{Warning: warningFor(seq), Suggestions: []string{}}
	base := CommonBase(password)
	substituted := slices.Contains(found, PatternSubstitute)
	if fb.Warning == "" && base != "" {
		fb.Warning = fmt.Sprintf("Contains the common password base %q", base)
	}
	if fb.Warning == "" && substituted {
		fb.Warning = "Predictable substitutions like @ for a are easy to guess"
	}
	if fb.Warning == "" && score <= 1 {
		fb.Warning = "This password is easy to guess"
	}
	if score >= 3 && fb.Warning == "" {
		return fb
	}

	fb.Suggestions = append(fb.Suggestions, "Add another word or two. Uncommon words are better.")
	if base != "" {
		fb.Suggestions = append(fb.Suggestions, "Avoid common words and passwords like "+base)
	}
	if substituted {
		fb.Suggestions = append(fb.Suggestions, "Predictable substitutions like @ for a or 0 for o don't help much")
	}
	fb.Suggestions = append(fb.Suggestions, patterns.Feedback(keyboard)...)

	c := CountCharTypes(password)
	if c.Uppercase == 0 || c.Lowercase == 0 {
		fb.Suggestions = append(fb.Suggestions, "Mix uppercase and lowercase letters")
	}
	if c.Numbers == 0 {
		fb.Suggestions = append(fb.Suggestions, "Include at least one number")
	}
	if c.Symbols == 0 {
		fb.Suggestions = append(fb.Suggestions, "Include at least one symbol")
	}
	return fb
}

// warningFor describes the weakest kind of match zxcvbn found.
func warningFor(seq []match.Match) string {
	for _, m := range seq {
		switch m.Pattern {
		case "dictionary":
			if strings.EqualFold(m.DictionaryName, "passwords") {
				return "This is similar to a commonly used password"
			}
			if len(seq) == 1 {
				return "A word by itself is easy to guess"
			}
		case "spatial":
			return "Straight rows of keys are easy to guess"
		case "repeat":
			return "Repeats like \"aaa\" are easy to guess"
		case "sequence":
			return "Sequences like abc or 6543 are easy to guess"
		case "date":
			return "Dates are often easy to guess"
		}
	}
	return ""
}
