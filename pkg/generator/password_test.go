package generator

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alvinbaena/pwd-toolkit/pkg/pools"
	"github.com/alvinbaena/pwd-toolkit/pkg/random"
)

func TestPassword_Random(t *testing.T) {
	cases := []struct {
		name    string
		opts    Options
		allowed string
	}{
		{"all", Options{Length: 16, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true},
			pools.Uppercase + pools.Lowercase + pools.Digits + pools.Symbols},
		{"upper", Options{Length: 4, Uppercase: true}, pools.Uppercase},
		{"digits", Options{Length: 96, Numbers: true}, pools.Digits},
		{"symbols", Options{Length: 32, Symbols: true, Source: random.Mixed}, pools.Symbols},
		{"none falls back to lowercase", Options{Length: 20}, pools.Lowercase},
	}

	for _, tc := range cases {
		for i := 0; i < 20; i++ {
			pwd, err := Password(tc.opts)
			if err != nil {
				t.Fatalf("%s: Should not fail: %s", tc.name, err)
			}

			if len(pwd) != tc.opts.Length {
				t.Errorf("%s: length %d, want %d", tc.name, len(pwd), tc.opts.Length)
			}

			for _, c := range pwd {
				if !strings.ContainsRune(tc.allowed, c) {
					t.Errorf("%s: character %q is not in an enabled class", tc.name, c)
				}
			}
		}
	}
}

func TestPassword_ClampsLength(t *testing.T) {
	pwd, _ := Password(Options{Length: 1, Lowercase: true})
	if len(pwd) != MinLength {
		t.Errorf("length %d, want %d", len(pwd), MinLength)
	}

	pwd, _ = Password(Options{Length: 500, Lowercase: true})
	if len(pwd) != MaxLength {
		t.Errorf("length %d, want %d", len(pwd), MaxLength)
	}
}

func TestPassword_ExcludeAmbiguous(t *testing.T) {
	opts := DefaultOptions()
	opts.ExcludeAmbiguous = true
	opts.Length = MaxLength

	for i := 0; i < 20; i++ {
		pwd, err := Password(opts)
		if err != nil {
			t.Fatalf("Should not fail: %s", err)
		}
		if strings.ContainsAny(pwd, pools.Ambiguous) {
			t.Errorf("%q contains an ambiguous character", pwd)
		}
	}
}

func TestPassword_Memorable(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z][a-z]+[A-Z][a-z]+\d{3}[!@#$%^&*()]{3}$`)
	for i := 0; i < 20; i++ {
		pwd, err := Password(Options{Mode: Memorable})
		if err != nil {
			t.Fatalf("Should not fail: %s", err)
		}
		if !re.MatchString(pwd) {
			t.Errorf("memorable password %q does not match the adjective/noun/number/symbol layout", pwd)
		}
	}
}

func TestPassword_Recipe(t *testing.T) {
	cases := []struct {
		recipe string
		want   *regexp.Regexp
	}{
		{"", regexp.MustCompile(`^$`)},
		{"Aa0#", regexp.MustCompile(`^[A-Z][a-z][0-9][!@#$%^&*]$`)},
		{"W-w", regexp.MustCompile(`^[A-Z]+-[a-z]+$`)},
		{"Cc", regexp.MustCompile(`^[A-Z]+[a-z]+$`)},
		{"Y/M/D", regexp.MustCompile(`^20\d\d/\d\d/\d\d$`)},
		{"xyz!", regexp.MustCompile(`^xyz!$`)},
	}

	for _, tc := range cases {
		pwd, err := Password(Options{Mode: Recipe, Recipe: tc.recipe})
		if err != nil {
			t.Fatalf("Should not fail: %s", err)
		}
		if !tc.want.MatchString(pwd) {
			t.Errorf("recipe %q produced %q", tc.recipe, pwd)
		}
	}
}

func TestPasswords(t *testing.T) {
	out, err := Passwords(5, DefaultOptions())
	if err != nil {
		t.Fatalf("Should not fail: %s", err)
	}
	if len(out) != 5 {
		t.Errorf("got %d passwords, want 5", len(out))
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("MEMORABLE"); err != nil || m != Memorable {
		t.Errorf("ParseMode(MEMORABLE): %s, %v", m, err)
	}
	if _, err := ParseMode("random-ish"); err == nil {
		t.Errorf("ParseMode should fail on unknown modes")
	}
}
