package util

import (
	"testing"
)

func TestToScreamingSnakeCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Port", "PORT"},
		{"TLSCert", "TLS_CERT"},
		{"SelfTLS", "SELF_TLS"},
		{"HibpURL", "HIBP_URL"},
		{"BreachCacheTTL", "BREACH_CACHE_TTL"},
		{"TLSCert TLSKey", "TLS_CERT TLS_KEY"},
		{"HIBP_URL", "HIBP_URL"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := ToScreamingSnakeCase(tc.in); got != tc.want {
			t.Errorf("ToScreamingSnakeCase(%q): %q, want: %q", tc.in, got, tc.want)
		}
	}
}
