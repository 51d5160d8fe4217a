package entropy

import (
	"fmt"
	"math"
)

type Label string

const (
	VeryWeak   Label = "Very Weak"
	Weak       Label = "Weak"
	Moderate   Label = "Moderate"
	Strong     Label = "Strong"
	VeryStrong Label = "Very Strong"
)

// LabelFor maps total entropy bits to a strength label.
func LabelFor(bits float64) Label {
	switch {
	case bits < 28:
		return VeryWeak
	case bits < 36:
		return Weak
	case bits < 60:
		return Moderate
	case bits < 128:
		return Strong
	default:
		return VeryStrong
	}
}

// GuessRate is an attacker capability in guesses per second.
type GuessRate struct {
	Name      string  `json:"name"`
	PerSecond float64 `json:"perSecond"`
}

var (
	OnlineThrottled = GuessRate{"online-throttled", 1e2}
	OnlineFast      = GuessRate{"online-fast", 1e3}
	OfflineSlowHash = GuessRate{"offline-slow-hash", 1e6}
	OfflineFastHash = GuessRate{"offline-fast-hash", 1e8}
	Quantum         = GuessRate{"quantum", 1e12}
)

// GuessRates lists the tiers from the slowest attacker to the fastest.
func GuessRates() []GuessRate {
	return []GuessRate{OnlineThrottled, OnlineFast, OfflineSlowHash, OfflineFastHash, Quantum}
}

// CrackSeconds is the average time to find the password: half of the search space.
// The result saturates at math.MaxFloat64 so it always encodes as JSON.
func CrackSeconds(bits float64, rate GuessRate) float64 {
	s := math.Pow(2, bits) / (rate.PerSecond * 2)
	if math.IsInf(s, 1) || math.IsNaN(s) {
		return math.MaxFloat64
	}
	return s
}

type CrackTime struct {
	Rate    GuessRate `json:"rate"`
	Seconds float64   `json:"seconds"`
	Display string    `json:"display"`
}

// CrackTimes estimates the crack time for every guess rate tier.
func CrackTimes(bits float64) []CrackTime {
	rates := GuessRates()
	out := make([]CrackTime, 0, len(rates))
	for _, rate := range rates {
		s := CrackSeconds(bits, rate)
		out = append(out, CrackTime{Rate: rate, Seconds: s, Display: FormatDuration(s)})
	}
	return out
}

const (
	minute = 60
	hour   = 3600
	day    = 86400
	month  = 2592000
	year   = 31536000
	decade = 315360000
)

// FormatDuration renders seconds in the largest unit that keeps the value readable.
func FormatDuration(seconds float64) string {
	unit := func(v float64, name string) string {
		return fmt.Sprintf("%d %s", int64(math.Round(v)), name)
	}

	switch {
	case seconds < 1:
		return "instant"
	case seconds < minute:
		return unit(seconds, "seconds")
	case seconds < hour:
		return unit(seconds/minute, "minutes")
	case seconds < day:
		return unit(seconds/hour, "hours")
	case seconds < month:
		return unit(seconds/day, "days")
	case seconds < year:
		return unit(seconds/month, "months")
	case seconds < decade:
		return unit(seconds/year, "years")
	default:
		return "centuries"
	}
}
