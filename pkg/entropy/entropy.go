// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package entropy

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Bits contributed by one distinct character of each class.
var (
	bitsUppercase = math.Log2(26)
	bitsLowercase = math.Log2(26)
	bitsNumbers   = math.Log2(10)
	bitsSymbols   = math.Log2(33)
)

// Penalties are flags, each one applies once no matter how often the pattern occurs.
const (
	KeyboardPenalty   = 8.0
	SequentialPenalty = 6.0
	RepeatedPenalty   = 4.0
)

var keyboardRuns = []string{"qwert", "asdf", "zxcv"}

// Detail breaks the estimate down into its contributions. Entropy is always
// max(0, BaseEntropy + LengthBonus + UniquenessBonus - PatternPenalty).
type Detail struct {
	Entropy         float64 `json:"entropy"`
	BaseEntropy     float64 `json:"baseEntropy"`
	LengthBonus     float64 `json:"lengthBonus"`
	UniquenessBonus float64 `json:"uniquenessBonus"`
	PatternPenalty  float64 `json:"patternPenalty"`
	EffectiveLength float64 `json:"effectiveLength"`
	BitsPerChar     float64 `json:"bitsPerChar"`
	ComplexityScore float64 `json:"complexityScore"`
}

// Classes counts the distinct characters of each class in a password.
type Classes struct {
	Uppercase int
	Lowercase int
	Numbers   int
	Symbols   int
}

// Present is the number of classes with at least one character.
func (c Classes) Present() int {
	n := 0
	for _, v := range []int{c.Uppercase, c.Lowercase, c.Numbers, c.Symbols} {
		if v > 0 {
			n++
		}
	}
	return n
}

// DistinctClasses counts the distinct characters per class. Anything that is not an
// ASCII letter or digit is a symbol.
func DistinctClasses(password string) Classes {
	seen := make(map[rune]struct{})
	var c Classes
	for _, r := range password {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}

		switch {
		case r >= 'A' && r <= 'Z':
			c.Uppercase++
		case r >= 'a' && r <= 'z':
			c.Lowercase++
		case r >= '0' && r <= '9':
			c.Numbers++
		default:
			c.Symbols++
		}
	}
	return c
}

// Estimate computes the entropy of a password. The empty password has a zero Detail.
func Estimate(password string) Detail {
	length := utf8.RuneCountInString(password)
	if length == 0 {
		return Detail{}
	}
	n := float64(length)

	classes := DistinctClasses(password)
	base := float64(classes.Uppercase)*bitsUppercase +
		float64(classes.Lowercase)*bitsLowercase +
		float64(classes.Numbers)*bitsNumbers +
		float64(classes.Symbols)*bitsSymbols

	lengthBonus := 24 + (n - 12)
	if length <= 12 {
		lengthBonus = n * 2
	}

	distinct := classes.Uppercase + classes.Lowercase + classes.Numbers + classes.Symbols
	uniqueness := float64(distinct) / n * 10

	penalty := Penalty(password)
	total := math.Max(0, base+lengthBonus+uniqueness-penalty)

	return Detail{
		Entropy:         total,
		BaseEntropy:     base,
		LengthBonus:     lengthBonus,
		UniquenessBonus: uniqueness,
		PatternPenalty:  penalty,
		EffectiveLength: math.Max(n*(1-penalty/(base+lengthBonus)), n*0.5),
		BitsPerChar:     total / n,
		ComplexityScore: float64(classes.Present()) / 4 * 100,
	}
}

// Penalty adds up the pattern flags found in the password.
func Penalty(password string) float64 {
	penalty := 0.0
	if HasKeyboardRun(password) {
		penalty += KeyboardPenalty
	}
	if HasSequentialRun(password) {
		penalty += SequentialPenalty
	}
	if HasRepeatedRun(password) {
		penalty += RepeatedPenalty
	}
	return penalty
}

func HasKeyboardRun(password string) bool {
	lower := strings.ToLower(password)
	for _, run := range keyboardRuns {
		if strings.Contains(lower, run) {
			return true
		}
	}
	return false
}

// HasSequentialRun reports three ascending consecutive letters or digits, like abc or 123.
func HasSequentialRun(password string) bool {
	rs := []rune(strings.ToLower(password))
	for i := 0; i+2 < len(rs); i++ {
		a, b, c := rs[i], rs[i+1], rs[i+2]
		if b != a+1 || c != b+1 {
			continue
		}
		if (a >= 'a' && c <= 'z') || (a >= '0' && c <= '9') {
			return true
		}
	}
	return false
}

// HasRepeatedRun reports three or more identical characters in a row.
func HasRepeatedRun(password string) bool {
	rs := []rune(password)
	for i := 0; i+2 < len(rs); i++ {
		if rs[i] == rs[i+1] && rs[i+1] == rs[i+2] {
			return true
		}
	}
	return false
}
