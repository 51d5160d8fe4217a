// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

var (
	// root
	verbose bool
	// root
	profile bool
	// root
	pprofPort uint16
	// analyze, validate
	interactive bool
	// analyze
	noBreach bool
	// generate
	mode string
	// generate
	length int
	// generate
	noUpper bool
	// generate, passphrase
	noNumbers bool
	// generate, passphrase
	noSymbols bool
	// generate
	noLower bool
	// generate
	excludeAmbiguous bool
	// generate
	recipe string
	// generate
	sortByEntropy bool
	// generate, passphrase
	count int
	// generate, passphrase
	source string
	// passphrase
	words int
	// passphrase
	separator string
	// passphrase
	noCasing bool
	// validate
	minLength int
	// validate
	minScore int
	// breach
	hashed bool
	// breach
	threads int
	// serve
	selfTLS bool
	// serve
	tlsCert string
	// serve
	tlsKey string
	// serve
	port uint16
	// serve
	origins []string
)
