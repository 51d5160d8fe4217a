// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package pools holds the static character sets and word lists used by the generators.
// Nothing here is mutated after package initialization.
package pools

import "strings"

const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	// Symbols are the 32 printable ASCII punctuation characters.
	Symbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	// Ambiguous characters are easy to confuse when read or typed by hand.
	Ambiguous = "Il1O0"
)

// Memorable password parts.
var (
	MemorableAdjectives = []string{"happy", "brave", "swift", "quiet", "wise", "bold", "calm", "kind"}
	MemorableNouns      = []string{"tiger", "river", "cloud", "star", "eagle", "moon", "tree", "wave"}
	MemorableNumbers    = []string{"123", "456", "789", "234", "567", "890", "345", "678"}
	MemorableSymbols    = []string{"!@#", "@#$", "#$%", "$%^", "%^&", "^&*", "&*(", "*()"}
)

// Passphrase word lists.
var (
	Adjectives = []string{
		"happy", "brave", "bright", "calm", "clever", "eager", "fair", "gentle", "kind", "lively", "proud", "wise",
		"swift", "bold", "quick", "sharp", "strong", "warm", "wild", "young", "free", "pure", "rich", "safe",
		"deep", "dark", "light", "soft", "loud", "quiet", "sweet", "tall", "tiny", "vast", "cool", "keen",
	}

	Nouns = []string{
		"tiger", "river", "mountain", "forest", "ocean", "desert", "island", "garden", "castle", "valley", "eagle", "dragon",
		"crystal", "diamond", "emerald", "falcon", "harbor", "jungle", "knight", "lotus", "meteor", "nebula", "oasis", "pearl",
		"phoenix", "rainbow", "shadow", "thunder", "unicorn", "volcano", "warrior", "wizard", "zenith", "horizon", "storm", "star",
	}

	Verbs = []string{
		"jumps", "flows", "glows", "flies", "grows", "leads", "runs", "sings", "walks", "swims", "dances", "shines",
		"soars", "races", "leaps", "rides", "glides", "floats", "climbs", "dives", "dreams", "guards", "rules", "seeks",
		"sparks", "waves", "burns", "calls", "falls", "rises", "spins", "turns", "moves", "plays", "stays", "wins",
	}

	PassphraseSymbols = []string{"!", "@", "#", "$", "%", "&", "*", "?", "+", "="}
)

// RecipeTokens maps a recipe character to the pool it is replaced with. Character pools
// are single characters, word pools are whole tokens.
var RecipeTokens = map[rune][]string{
	'A': split(Uppercase),
	'a': split(Lowercase),
	'0': split(Digits),
	'#': split("!@#$%^&*"),
	'W': words("HAPPY|BRAVE|SWIFT|QUIET|WISE|BOLD|CALM|KIND|QUICK|BRIGHT|STRONG|FREE|PURE|NOBLE"),
	'w': words("tiger|river|cloud|star|eagle|moon|tree|wave|mountain|ocean|forest|storm|crystal|phoenix"),
	'C': words("RED|BLUE|GREEN|GOLD|SILVER|BLACK|WHITE|PURPLE"),
	'c': words("red|blue|green|gold|silver|black|white|purple"),
	'Y': words("2024|2025|2026|2027|2028"),
	'M': words("01|02|03|04|05|06|07|08|09|10|11|12"),
	'D': words("01|02|03|04|05|06|07|08|09|10|15|20|25|30"),
}

// Split returns every character of set as its own string.
func Split(set string) []string {
	return split(set)
}

func split(set string) []string {
	return strings.Split(set, "")
}

func words(list string) []string {
	return strings.Split(list, "|")
}
