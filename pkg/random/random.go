// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package random

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	mrand "math/rand"
	"strings"
)

// ErrEmptyPool is returned by Choice when there is nothing to choose from.
var ErrEmptyPool = errors.New("cannot choose from an empty pool")

// Source selects the entropy backend used by Uniform.
type Source int

const (
	// Crypto draws 32 bits from the operating system CSPRNG. This is the default.
	Crypto Source = iota
	// System mixes operating system counters into a Crypto draw.
	System
	// Mixed mixes timing jitter into a Crypto draw.
	Mixed
	// Pseudo uses math/rand. Not suitable for secrets.
	Pseudo
)

// 2^32
const uint32Range = float64(1 << 32)

var sourceNames = map[Source]string{
	Crypto: "crypto",
	System: "system",
	Mixed:  "mixed",
	Pseudo: "pseudo",
}

// Accepted names, aliases such as browser-random included.
var sourceAliases = map[string]Source{
	"crypto":         Crypto,
	"web-crypto":     Crypto,
	"system":         System,
	"system-random":  System,
	"mixed":          Mixed,
	"browser-random": Mixed,
	"pseudo":         Pseudo,
	"math":           Pseudo,
}

// Sources lists every backend in the order a selector should offer them.
func Sources() []Source {
	return []Source{Crypto, System, Mixed, Pseudo}
}

// ParseSource resolves a source name. An empty name is the default source.
func ParseSource(name string) (Source, error) {
	if name == "" {
		return Crypto, nil
	}

	if s, ok := sourceAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}

	return Crypto, fmt.Errorf("unknown random source %q", name)
}

func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("source(%d)", int(s))
}

// Secure reports if the source can be used for generating secrets.
func (s Source) Secure() bool {
	return s != Pseudo
}

// Recommended is true only for the default cryptographic source.
func (s Source) Recommended() bool {
	return s == Crypto
}

func (s Source) Description() string {
	switch s {
	case Crypto:
		return "Operating system CSPRNG (crypto/rand). Recommended"
	case System:
		return "Operating system memory and CPU counters mixed into a CSPRNG draw"
	case Mixed:
		return "Timing jitter mixed into a CSPRNG draw"
	case Pseudo:
		return "Non-cryptographic PRNG (math/rand). Not suitable for passwords"
	default:
		return "Unknown source"
	}
}

// Uniform returns a float in [0,1) drawn from the given source. Unknown sources use Crypto.
func Uniform(s Source) float64 {
	switch s {
	case Pseudo:
		return mrand.Float64()
	case Mixed:
		return whiten(timingJitter())
	case System:
		return whiten(systemNoise())
	default:
		return float64(cryptoUint32()) / uint32Range
	}
}

// Choice picks one element of items uniformly.
func Choice[T any](items []T, s Source) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyPool
	}

	i := int(Uniform(s) * float64(len(items)))
	// Float rounding on very large pools.
	if i >= len(items) {
		i = len(items) - 1
	}
	return items[i], nil
}

// Intn returns an int in [0,n). n must be positive.
func Intn(n int, s Source) int {
	if n <= 0 {
		return 0
	}

	i := int(Uniform(s) * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

func cryptoBytes(n int) []byte {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// The OS CSPRNG failing leaves nothing safe to fall back to.
		panic(fmt.Sprintf("crypto/rand failure: %s", err))
	}
	return buf
}

func cryptoUint32() uint32 {
	return binary.BigEndian.Uint32(cryptoBytes(4))
}
