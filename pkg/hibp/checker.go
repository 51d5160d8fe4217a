// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package hibp

import (
	"context"
	"crypto/sha1"
	"crypto/tls"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
)

const (
	DefaultURL      = "https://api.pwnedpasswords.com"
	DefaultRetries  = 3
	DefaultCacheTTL = 10 * time.Minute
	userAgent       = "pwd-toolkit-hibp/1.0"
)

var (
	ErrInvalidHash = errors.New("input is not a valid SHA1 hexadecimal hash")
	hashRe         = regexp.MustCompile(`^[a-fA-F\d]{40}$`)
)

// Result of a breach lookup. Verified is false when the lookup could not be
// completed, in which case Breached is always false and says nothing about the password.
type Result struct {
	Breached    bool `json:"breached"`
	Occurrences int  `json:"occurrences"`
	Verified    bool `json:"verified"`
}

// Checker queries the k-anonymity range API. Only the first 5 characters of the
// SHA1 hash are sent over the network.
type Checker struct {
	baseURL  string
	retries  int
	cacheTTL time.Duration
	http     *retryablehttp.Client
	cache    *ristretto.Cache
	stat     *status
}

type Option func(*Checker)

func WithBaseURL(url string) Option {
	return func(c *Checker) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

func WithRetries(retries int) Option {
	return func(c *Checker) {
		c.retries = retries
	}
}

// WithCacheTTL sets how long a downloaded range is kept in memory. Zero disables the cache.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Checker) {
		c.cacheTTL = ttl
	}
}

// WithHTTPClient replaces the transport used under the retrying client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Checker) {
		c.http.HTTPClient = client
	}
}

func NewChecker(opts ...Option) (*Checker, error) {
	c := &Checker{
		baseURL:  DefaultURL,
		retries:  DefaultRetries,
		cacheTTL: DefaultCacheTTL,
		http:     initHttpClient(),
		stat:     newStatus(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http.RetryMax = c.retries

	if c.cacheTTL > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: 1e4,
			MaxCost:     64 << 20,
			BufferItems: 64,
		})
		if err != nil {
			return nil, fmt.Errorf("creating range cache: %w", err)
		}
		c.cache = cache
	}

	return c, nil
}

func initHttpClient() *retryablehttp.Client {
	client := retryablehttp.NewClient()
	// The retrying client logs every attempt, zerolog covers what matters.
	client.Logger = nil
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second

	client.HTTPClient = &http.Client{
		Timeout: 15 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       30 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			ForceAttemptHTTP2:     true,
			MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
		},
	}

	return client
}

// HashPassword returns the uppercase SHA1 hex digest split into the 5 character
// prefix and the 35 character suffix.
func HashPassword(password string) (prefix, suffix string) {
	sum := sha1.Sum([]byte(password))
	return SplitHash(hex.EncodeToString(sum[:]))
}

func SplitHash(hash string) (prefix, suffix string) {
	hash = strings.ToUpper(hash)
	return hash[:5], hash[5:]
}

func ValidHash(hash string) bool {
	return hashRe.MatchString(hash)
}

// Check looks the password up and fails open: any error is logged and reported
// as an unverified, not breached result.
func (c *Checker) Check(ctx context.Context, password string) Result {
	prefix, suffix := HashPassword(password)
	return c.check(ctx, prefix, suffix)
}

// CheckHash is Check for a caller that already holds the SHA1 hex digest.
func (c *Checker) CheckHash(ctx context.Context, hash string) (Result, error) {
	if !ValidHash(hash) {
		return Result{}, ErrInvalidHash
	}
	prefix, suffix := SplitHash(hash)
	return c.check(ctx, prefix, suffix), nil
}

func (c *Checker) check(ctx context.Context, prefix, suffix string) Result {
	res, err := c.Lookup(ctx, prefix, suffix)
	if err != nil {
		c.stat.Failure()
		log.Warn().Err(err).Msgf("could not verify range %s, assuming not breached", prefix)
		return Result{}
	}
	return res
}

// Lookup is the strict form of Check: errors are returned to the caller.
func (c *Checker) Lookup(ctx context.Context, prefix, suffix string) (Result, error) {
	body, err := c.fetchRange(ctx, strings.ToUpper(prefix))
	if err != nil {
		return Result{}, err
	}

	count, err := ParseRange(body, suffix)
	if err != nil {
		return Result{}, err
	}

	return Result{Breached: count > 0, Occurrences: count, Verified: true}, nil
}

func (c *Checker) fetchRange(ctx context.Context, prefix string) ([]byte, error) {
	if c.cache != nil {
		if v, ok := c.cache.Get(prefix); ok {
			c.stat.LocalHit()
			return v.([]byte), nil
		}
	}

	timer := time.Now()
	req, err := c.rangeHttpRequest(ctx, prefix)
	if err != nil {
		return nil, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			log.Warn().Err(err).Msgf("error closing body for range %s", prefix)
		}
	}(res.Body)

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("range request [%s] failed with status [%d] %s", prefix, res.StatusCode, res.Status)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading range %s: %w", prefix, err)
	}
	c.stat.RequestComplete(res, time.Since(timer).Milliseconds())

	if c.cache != nil {
		c.cache.SetWithTTL(prefix, body, int64(len(body)), c.cacheTTL)
		c.cache.Wait()
	}
	return body, nil
}

func (c *Checker) rangeHttpRequest(ctx context.Context, prefix string) (*retryablehttp.Request, error) {
	req, err := retryablehttp.NewRequestWithContext(
		ctx,
		http.MethodGet,
		fmt.Sprintf("%s/range/%s", c.baseURL, prefix),
		nil,
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	// Every response gets padded with fake zero count entries.
	req.Header.Set("Add-Padding", "true")
	return req, nil
}

// Stats returns the request counters collected so far.
func (c *Checker) Stats() Stats {
	return c.stat.Snapshot()
}

// LogStats writes the request counters at debug level.
func (c *Checker) LogStats() {
	c.stat.Log()
}

func (c *Checker) Close() {
	if c.cache != nil {
		c.cache.Close()
	}
}
