// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/alvinbaena/pwd-toolkit/pkg/pools"
	"github.com/alvinbaena/pwd-toolkit/pkg/random"
)

const (
	MinWords         = 3
	MaxWords         = 8
	DefaultWords     = 4
	DefaultSeparator = "-"

	// A duplicate word is accepted after this many draws.
	maxWordAttempts = 10
	// Draws above this threshold add a number or a symbol, roughly 30% of words.
	decorationThreshold = 0.7
)

type PassphraseOptions struct {
	WordCount int
	Casing    bool
	Numbers   bool
	Symbols   bool
	Separator string
	Source    random.Source
}

func DefaultPassphraseOptions() PassphraseOptions {
	return PassphraseOptions{
		WordCount: DefaultWords,
		Casing:    true,
		Numbers:   true,
		Symbols:   true,
		Separator: DefaultSeparator,
		Source:    random.Crypto,
	}
}

// Passphrase builds a passphrase cycling through adjective, noun and verb pools.
func Passphrase(opts PassphraseOptions) (string, error) {
	count := opts.WordCount
	if count < MinWords {
		count = MinWords
	}
	if count > MaxWords {
		count = MaxWords
	}

	used := make(map[string]struct{}, count)
	words := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pattern := i % 3
		pool := pools.Adjectives
		switch pattern {
		case 1:
			pool = pools.Nouns
		case 2:
			pool = pools.Verbs
		}

		var word string
		for attempt := 0; attempt < maxWordAttempts; attempt++ {
			w, err := random.Choice(pool, opts.Source)
			if err != nil {
				return "", err
			}
			word = w
			if _, dup := used[word]; !dup {
				break
			}
		}
		used[word] = struct{}{}

		if opts.Casing && (pattern == 1 || random.Uniform(opts.Source) > 0.5) {
			word = capitalize(word)
		}

		if opts.Numbers && random.Uniform(opts.Source) > decorationThreshold {
			word += fmt.Sprintf("%02d", random.Intn(1000, opts.Source))
		}

		if opts.Symbols && random.Uniform(opts.Source) > decorationThreshold {
			sym, err := random.Choice(pools.PassphraseSymbols, opts.Source)
			if err != nil {
				return "", err
			}
			word += sym
		}

		words = append(words, word)
	}

	return strings.Join(words, opts.Separator), nil
}

// Passphrases builds count independent passphrases with the same options.
func Passphrases(count int, opts PassphraseOptions) ([]string, error) {
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		p, err := Passphrase(opts)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

type PassphraseLabel string

const (
	Weak       PassphraseLabel = "weak"
	Moderate   PassphraseLabel = "moderate"
	Strong     PassphraseLabel = "strong"
	VeryStrong PassphraseLabel = "very-strong"
)

type PassphraseStrength struct {
	Score int             `json:"score"`
	Label PassphraseLabel `json:"label"`
}

var (
	wordSplit = regexp.MustCompile(`[-_\s]`)
	upperRe   = regexp.MustCompile(`[A-Z]`)
	digitRe   = regexp.MustCompile(`\d`)
	symbolRe  = regexp.MustCompile(`[^A-Za-z0-9\s\-_]`)
)

// EstimatePassphrase scores a passphrase on length, word count and the character
// classes it uses.
func EstimatePassphrase(passphrase string) PassphraseStrength {
	score := utf8.RuneCountInString(passphrase) * 4
	if score > 40 {
		score = 40
	}
	score += len(wordSplit.Split(passphrase, -1)) * 10
	if upperRe.MatchString(passphrase) {
		score += 10
	}
	if digitRe.MatchString(passphrase) {
		score += 10
	}
	if symbolRe.MatchString(passphrase) {
		score += 10
	}

	label := VeryStrong
	switch {
	case score < 50:
		label = Weak
	case score < 70:
		label = Moderate
	case score < 90:
		label = Strong
	}

	return PassphraseStrength{Score: score, Label: label}
}

// SuggestPassphraseImprovements returns hints for weak and moderate passphrases.
func SuggestPassphraseImprovements(passphrase string) []string {
	var suggestions []string
	strength := EstimatePassphrase(passphrase)
	if strength.Label != Weak && strength.Label != Moderate {
		return suggestions
	}

	if !wordSplit.MatchString(passphrase) {
		suggestions = append(suggestions, "Add separators between words (e.g., use hyphens)")
	}
	if !digitRe.MatchString(passphrase) {
		suggestions = append(suggestions, "Add numbers to increase complexity")
	}
	if !symbolRe.MatchString(passphrase) {
		suggestions = append(suggestions, "Include special characters")
	}
	if len(wordSplit.Split(passphrase, -1)) < 4 {
		suggestions = append(suggestions, "Use at least 4 words for better security")
	}

	return suggestions
}
