package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alvinbaena/pwd-toolkit/pkg/hibp"
	"github.com/alvinbaena/pwd-toolkit/pkg/random"
	"github.com/alvinbaena/pwd-toolkit/pkg/strength"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChecker reports "password" as breached and everything else as clean.
type stubChecker struct {
	calls int
}

func (s *stubChecker) Check(_ context.Context, password string) hibp.Result {
	s.calls++
	if password == "password" {
		return hibp.Result{Breached: true, Occurrences: 42, Verified: true}
	}
	return hibp.Result{Verified: true}
}

func (s *stubChecker) CheckHash(ctx context.Context, hash string) (hibp.Result, error) {
	if !hibp.ValidHash(hash) {
		return hibp.Result{}, hibp.ErrInvalidHash
	}
	if strings.EqualFold(hash, "5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8") {
		return s.Check(ctx, "password"), nil
	}
	return s.Check(ctx, ""), nil
}

func newTestRouter(t *testing.T) (http.Handler, *stubChecker) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	checker := &stubChecker{}
	return NewRouter(RouterOptions{Checker: checker, Source: random.Crypto}), checker
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestCheckPassword(t *testing.T) {
	h, _ := newTestRouter(t)

	w := do(t, h, http.MethodPost, "/v1/check/password", gin.H{"password": "password"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[queryResponse](t, w)
	assert.True(t, resp.Pwned)
	assert.Equal(t, 42, resp.Occurrences)
	require.NotNil(t, resp.Strength)
	assert.Equal(t, "Very Weak", resp.Strength.Label)
}

func TestCheckPassword_BadRequest(t *testing.T) {
	h, _ := newTestRouter(t)
	w := do(t, h, http.MethodPost, "/v1/check/password", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckHash(t *testing.T) {
	h, _ := newTestRouter(t)

	w := do(t, h, http.MethodPost, "/v1/check/hash", gin.H{"hash": "5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[queryResponse](t, w)
	assert.True(t, resp.Pwned)
	assert.Nil(t, resp.Strength)

	w = do(t, h, http.MethodPost, "/v1/check/hash", gin.H{"hash": "xyz"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyze(t *testing.T) {
	h, checker := newTestRouter(t)

	w := do(t, h, http.MethodPost, "/v1/analyze", gin.H{"password": "Tr0ub4dor&3xQ9"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[analyzeResponse](t, w)
	assert.Nil(t, resp.Breach)
	assert.Equal(t, 0, checker.calls)
	assert.False(t, resp.Strength.Keyboard.HasPattern)
	assert.Len(t, resp.CrackTimes, 5)

	w = do(t, h, http.MethodPost, "/v1/analyze", gin.H{"password": "password", "checkBreach": true})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[analyzeResponse](t, w)
	require.NotNil(t, resp.Breach)
	assert.True(t, resp.Breach.Breached)
	assert.Contains(t, resp.Strength.Patterns, "Common password pattern")
}

func TestAnalyze_VeryLongPassword(t *testing.T) {
	h, _ := newTestRouter(t)

	w := do(t, h, http.MethodPost, "/v1/analyze", gin.H{"password": strings.Repeat("aB3!", 300)})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[analyzeResponse](t, w)
	require.Len(t, resp.CrackTimes, 5)
	for _, ct := range resp.CrackTimes {
		assert.Equal(t, "centuries", ct.Display)
		assert.Greater(t, ct.Seconds, 0.0)
	}
	assert.Greater(t, resp.Strength.Estimate.Entropy, 1024.0)
}

func TestPolicy(t *testing.T) {
	h, _ := newTestRouter(t)

	w := do(t, h, http.MethodPost, "/v1/policy", gin.H{"password": "v8#Kq2!zLm9@Xw"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[strength.PolicyResult](t, w)
	assert.True(t, resp.Valid, resp.Errors)
	assert.Empty(t, resp.Errors)

	w = do(t, h, http.MethodPost, "/v1/policy", gin.H{"password": "short"})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[strength.PolicyResult](t, w)
	assert.False(t, resp.Valid)
	assert.Contains(t, resp.Errors, "Password must be at least 12 characters long")

	w = do(t, h, http.MethodPost, "/v1/policy", gin.H{"password": "v8#Kq2!zLm9@Xw", "history": []string{"v8#Kq2!zLm9@Xw"}})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[strength.PolicyResult](t, w)
	assert.False(t, resp.Valid)
	assert.Contains(t, resp.Errors, "Password has been used recently")

	w = do(t, h, http.MethodPost, "/v1/policy", gin.H{"password": "x", "history": []string{"1", "2", "3", "4", "5", "6"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeneratePassword(t *testing.T) {
	h, _ := newTestRouter(t)

	w := do(t, h, http.MethodPost, "/v1/generate/password", gin.H{"length": 20, "symbols": false, "count": 3})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[generateResponse[candidate]](t, w)
	assert.True(t, resp.Secure)
	assert.Empty(t, resp.Warning)
	require.Len(t, resp.Passwords, 3)
	for _, p := range resp.Passwords {
		assert.Len(t, p.Value, 20)
		assert.Regexp(t, `^[A-Za-z0-9]+$`, p.Value)
		assert.Greater(t, p.Entropy, 0.0)
	}
}

func TestGeneratePassword_Invalid(t *testing.T) {
	h, _ := newTestRouter(t)

	cases := []gin.H{
		{"length": 200},
		{"mode": "pronounceable"},
		{"source": "dice"},
		{"count": 500},
	}
	for _, body := range cases {
		w := do(t, h, http.MethodPost, "/v1/generate/password", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%v", body)
	}
}

func TestGeneratePassword_PseudoWarning(t *testing.T) {
	h, _ := newTestRouter(t)

	w := do(t, h, http.MethodPost, "/v1/generate/password", gin.H{"mode": "memorable", "source": "math"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[generateResponse[candidate]](t, w)
	assert.False(t, resp.Secure)
	assert.NotEmpty(t, resp.Warning)
	assert.Equal(t, "pseudo", resp.Source)
}

func TestGeneratePassphrase(t *testing.T) {
	h, _ := newTestRouter(t)

	w := do(t, h, http.MethodPost, "/v1/generate/passphrase", gin.H{"words": 5, "separator": "_", "numbers": false, "symbols": false})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[generateResponse[passphraseCandidate]](t, w)
	require.Len(t, resp.Passwords, 1)
	assert.Len(t, strings.Split(resp.Passwords[0].Value, "_"), 5)
	assert.NotEmpty(t, resp.Passwords[0].Strength.Label)
}

func TestCompare(t *testing.T) {
	h, _ := newTestRouter(t)

	w := do(t, h, http.MethodPost, "/v1/compare", gin.H{"first": "password1", "second": "password2"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[compareResponse](t, w)
	assert.Greater(t, resp.Score, 0.7)
	assert.Equal(t, "too similar", resp.Verdict)
}

func TestSources(t *testing.T) {
	h, _ := newTestRouter(t)

	w := do(t, h, http.MethodGet, "/v1/sources", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[[]sourceResponse](t, w)
	require.Len(t, resp, 4)
	assert.Equal(t, "crypto", resp[0].Name)
	assert.True(t, resp[0].Recommended)
}

func TestCors(t *testing.T) {
	h, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/analyze", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
