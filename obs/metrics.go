package obs

import (
	"sync/atomic"
)

// Metrics tracks application metrics using atomic counters. Dropped-unpriced
// is the merge-inconsistency count: hotels excluded from a listing for lack
// of a matching price are a metric, never an error.
type Metrics struct {
	requests           atomic.Int64
	pollAttempts       atomic.Int64
	cacheHits          atomic.Int64
	upstreamErrors     atomic.Int64
	droppedUnpriced    atomic.Int64
	enrichmentFailures atomic.Int64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncRequests increments the total request counter.
func (m *Metrics) IncRequests() {
	m.requests.Add(1)
}

// AddPollAttempts adds to the price-poll attempt counter.
func (m *Metrics) AddPollAttempts(n int64) {
	m.pollAttempts.Add(n)
}

// IncCacheHits increments the destination-cache hit counter.
func (m *Metrics) IncCacheHits() {
	m.cacheHits.Add(1)
}

// IncUpstreamErrors increments the upstream error counter.
func (m *Metrics) IncUpstreamErrors() {
	m.upstreamErrors.Add(1)
}

// AddDroppedUnpriced adds to the hotels-dropped-without-price counter.
func (m *Metrics) AddDroppedUnpriced(n int64) {
	m.droppedUnpriced.Add(n)
}

// IncEnrichmentFailures increments the soft-failed detail enrichment counter.
func (m *Metrics) IncEnrichmentFailures() {
	m.enrichmentFailures.Add(1)
}

// Snapshot returns current metric values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Requests:           m.requests.Load(),
		PollAttempts:       m.pollAttempts.Load(),
		CacheHits:          m.cacheHits.Load(),
		UpstreamErrors:     m.upstreamErrors.Load(),
		DroppedUnpriced:    m.droppedUnpriced.Load(),
		EnrichmentFailures: m.enrichmentFailures.Load(),
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics.
type MetricsSnapshot struct {
	Requests           int64 `json:"requests"`
	PollAttempts       int64 `json:"poll_attempts"`
	CacheHits          int64 `json:"cache_hits"`
	UpstreamErrors     int64 `json:"upstream_errors"`
	DroppedUnpriced    int64 `json:"dropped_unpriced"`
	EnrichmentFailures int64 `json:"enrichment_failures"`
}
