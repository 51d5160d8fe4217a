package hibp

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type status struct {
	requests         uint64
	localHits        uint64
	cloudflareHits   uint64
	cloudflareMisses uint64
	failures         uint64
	requestTimeTotal uint64
	start            time.Time
}

// Stats is a point in time copy of the checker counters.
type Stats struct {
	Requests         uint64  `json:"requests"`
	LocalHits        uint64  `json:"localHits"`
	CloudflareHits   uint64  `json:"cloudflareHits"`
	CloudflareMisses uint64  `json:"cloudflareMisses"`
	Failures         uint64  `json:"failures"`
	AverageMillis    float64 `json:"averageMillis"`
}

func newStatus() *status {
	return &status{start: time.Now()}
}

func (s *status) LocalHit() {
	atomic.AddUint64(&s.localHits, 1)
}

func (s *status) Failure() {
	atomic.AddUint64(&s.failures, 1)
}

func (s *status) RequestComplete(res *http.Response, millis int64) {
	atomic.AddUint64(&s.requestTimeTotal, uint64(millis))
	atomic.AddUint64(&s.requests, 1)

	if cacheHit := res.Header.Get("CF-Cache-Status"); cacheHit == "HIT" {
		atomic.AddUint64(&s.cloudflareHits, 1)
	} else {
		atomic.AddUint64(&s.cloudflareMisses, 1)
	}
}

func (s *status) Snapshot() Stats {
	st := Stats{
		Requests:         atomic.LoadUint64(&s.requests),
		LocalHits:        atomic.LoadUint64(&s.localHits),
		CloudflareHits:   atomic.LoadUint64(&s.cloudflareHits),
		CloudflareMisses: atomic.LoadUint64(&s.cloudflareMisses),
		Failures:         atomic.LoadUint64(&s.failures),
	}
	if st.Requests > 0 {
		st.AverageMillis = float64(atomic.LoadUint64(&s.requestTimeTotal)) / float64(st.Requests)
	}
	return st
}

func (s *status) Log() {
	st := s.Snapshot()
	p := message.NewPrinter(language.English)

	log.Debug().Msgf("made %s range requests in %v. Average response time %.2f ms",
		p.Sprintf("%d", st.Requests), time.Since(s.start).Round(time.Millisecond), st.AverageMillis)
	log.Debug().Msgf("cloudflare cache hits: %s, misses: %s, local cache hits: %s, failures: %s",
		p.Sprintf("%d", st.CloudflareHits), p.Sprintf("%d", st.CloudflareMisses),
		p.Sprintf("%d", st.LocalHits), p.Sprintf("%d", st.Failures))
}
