// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"
	"strings"

	"github.com/alvinbaena/pwd-toolkit/pkg/pools"
	"github.com/alvinbaena/pwd-toolkit/pkg/random"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	MinLength     = 4
	MaxLength     = 96
	DefaultLength = 16
	DefaultRecipe = "Ww00##"
)

type Mode string

const (
	Random    Mode = "random"
	Memorable Mode = "memorable"
	Recipe    Mode = "recipe"
)

// ParseMode resolves a mode name, empty means Random.
func ParseMode(name string) (Mode, error) {
	switch Mode(strings.ToLower(name)) {
	case "", Random:
		return Random, nil
	case Memorable:
		return Memorable, nil
	case Recipe:
		return Recipe, nil
	}
	return Random, fmt.Errorf("unknown password mode %q", name)
}

type Options struct {
	Mode             Mode
	Length           int
	Uppercase        bool
	Lowercase        bool
	Numbers          bool
	Symbols          bool
	ExcludeAmbiguous bool
	Recipe           string
	Source           random.Source
}

// DefaultOptions are the settings the generator starts with: 16 random characters from
// every class, drawn from the crypto source.
func DefaultOptions() Options {
	return Options{
		Mode:      Random,
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
		Recipe:    DefaultRecipe,
		Source:    random.Crypto,
	}
}

// Password builds a password according to the options.
func Password(opts Options) (string, error) {
	switch opts.Mode {
	case Memorable:
		return memorablePassword(opts.Source)
	case Recipe:
		return recipePassword(opts.Recipe, opts.Source)
	default:
		return randomPassword(opts)
	}
}

// Passwords builds count independent passwords with the same options.
func Passwords(count int, opts Options) ([]string, error) {
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pwd, err := Password(opts)
		if err != nil {
			return nil, err
		}
		out = append(out, pwd)
	}
	return out, nil
}

// CharacterPool is the set random mode draws from. With every class disabled it falls
// back to lowercase letters.
func CharacterPool(opts Options) []string {
	var sb strings.Builder
	if opts.Uppercase {
		sb.WriteString(pools.Uppercase)
	}
	if opts.Lowercase {
		sb.WriteString(pools.Lowercase)
	}
	if opts.Numbers {
		sb.WriteString(pools.Digits)
	}
	if opts.Symbols {
		sb.WriteString(pools.Symbols)
	}

	chars := sb.String()
	if chars == "" {
		chars = pools.Lowercase
	}

	if opts.ExcludeAmbiguous {
		chars = strings.Map(func(r rune) rune {
			if strings.ContainsRune(pools.Ambiguous, r) {
				return -1
			}
			return r
		}, chars)
	}

	return pools.Split(chars)
}

func clampLength(length int) int {
	if length < MinLength {
		return MinLength
	}
	if length > MaxLength {
		return MaxLength
	}
	return length
}

func randomPassword(opts Options) (string, error) {
	length := clampLength(opts.Length)
	chars := CharacterPool(opts)

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		c, err := random.Choice(chars, opts.Source)
		if err != nil {
			return "", err
		}
		sb.WriteString(c)
	}
	return sb.String(), nil
}

func memorablePassword(source random.Source) (string, error) {
	parts := make([]string, 0, 4)
	for _, pool := range [][]string{
		pools.MemorableAdjectives,
		pools.MemorableNouns,
		pools.MemorableNumbers,
		pools.MemorableSymbols,
	} {
		part, err := random.Choice(pool, source)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}

	parts[0] = capitalize(parts[0])
	parts[1] = capitalize(parts[1])
	return strings.Join(parts, ""), nil
}

// recipePassword resolves every token of the recipe left to right. Characters that are
// not tokens are copied as they are.
func recipePassword(recipe string, source random.Source) (string, error) {
	var sb strings.Builder
	for _, r := range recipe {
		pool, ok := pools.RecipeTokens[r]
		if !ok {
			sb.WriteRune(r)
			continue
		}

		tok, err := random.Choice(pool, source)
		if err != nil {
			return "", err
		}
		sb.WriteString(tok)
	}
	return sb.String(), nil
}

func capitalize(word string) string {
	return cases.Title(language.English).String(word)
}
