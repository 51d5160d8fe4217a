package strength

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/alvinbaena/pwd-toolkit/pkg/similarity"
)

const (
	DefaultMinLength = 12
	DefaultMinScore  = 3
	HistorySize      = 5
)

var specialRe = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)

// History keeps the last accepted passwords in memory. It is safe for concurrent use.
type History struct {
	mu      sync.Mutex
	size    int
	entries []string
}

func NewHistory(size int) *History {
	if size <= 0 {
		size = HistorySize
	}
	return &History{size: size}
}

func (h *History) Add(password string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, password)
	if len(h.entries) > h.size {
		h.entries = h.entries[len(h.entries)-h.size:]
	}
}

func (h *History) Contains(password string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, e := range h.entries {
		if e == password {
			return true
		}
	}
	return false
}

// Entries returns a copy, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.entries...)
}

type Policy struct {
	MinLength int
	MinScore  int
	History   *History
}

type PolicyResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Strength Result   `json:"strength"`
}

func DefaultPolicy() *Policy {
	return &Policy{
		MinLength: DefaultMinLength,
		MinScore:  DefaultMinScore,
		History:   NewHistory(HistorySize),
	}
}

// Validate checks the composition rules and the recent history. Empty input is
// never valid and carries no errors.
func (p *Policy) Validate(password string) PolicyResult {
	res := PolicyResult{Errors: []string{}, Warnings: []string{}}
	if password == "" {
		res.Strength = Analyze("")
		return res
	}
	res.Strength = Analyze(password)

	if n := len([]rune(password)); n < p.MinLength {
		res.Errors = append(res.Errors, fmt.Sprintf("Password must be at least %d characters long", p.MinLength))
	}

	c := CountCharTypes(password)
	if c.Uppercase == 0 {
		res.Errors = append(res.Errors, "Password must contain at least one uppercase letter")
	}
	if c.Lowercase == 0 {
		res.Errors = append(res.Errors, "Password must contain at least one lowercase letter")
	}
	if c.Numbers == 0 {
		res.Errors = append(res.Errors, "Password must contain at least one number")
	}
	if !specialRe.MatchString(password) {
		res.Errors = append(res.Errors, "Password must contain at least one special character")
	}

	if p.History != nil {
		if p.History.Contains(password) {
			res.Errors = append(res.Errors, "Password has been used recently")
		} else {
			res.Warnings = append(res.Warnings, p.similarityWarnings(password)...)
		}
	}

	res.Valid = len(res.Errors) == 0 && res.Strength.Score >= p.MinScore
	return res
}

// Accept validates the password and records it in the history when valid.
func (p *Policy) Accept(password string) PolicyResult {
	res := p.Validate(password)
	if res.Valid && p.History != nil {
		p.History.Add(password)
	}
	return res
}

func (p *Policy) similarityWarnings(password string) []string {
	var warnings []string
	for _, prev := range p.History.Entries() {
		score := similarity.Compare(password, prev)
		switch similarity.Verdict(score) {
		case similarity.TooSimilar:
			warnings = append(warnings, fmt.Sprintf("Password is too similar to a recent password (%.0f%% match)", score*100))
		case similarity.SharedPattern:
			warnings = append(warnings, fmt.Sprintf("Password shares patterns with a recent password (%.0f%% match)", score*100))
		}
	}
	return warnings
}
