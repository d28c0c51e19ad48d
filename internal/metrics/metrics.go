package metrics

import (
	"sync"
	"time"
)

// ProviderSnapshot is a copy of the call counters for one data provider.
type ProviderSnapshot struct {
	Calls          int           `json:"calls"`
	Errors         int           `json:"errors"`
	RateLimitHits  int           `json:"rateLimitHits"`
	LastRetryAfter time.Duration `json:"lastRetryAfterNs"`
	LastLatency    time.Duration `json:"lastLatencyNs"`
}

type runStats struct {
	runs              int
	errors            int
	byAction          map[string]int
	publishes         map[string]int
	promotionFailures int
	lastDuration      time.Duration
	sidebar           map[string]int
}

// Recorder keeps in-memory counters for provider calls, bot runs and
// publishes, mirroring them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]ProviderSnapshot
	runs      runStats
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]ProviderSnapshot),
		runs: runStats{
			byAction:  make(map[string]int),
			publishes: make(map[string]int),
			sidebar:   make(map[string]int),
		},
		otel: otel,
	}
}

// RecordProviderAttempt counts one data provider call and keeps its latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.updateProvider(provider, func(p *ProviderSnapshot) {
		p.Calls++
		p.LastLatency = duration
		if err != nil {
			p.Errors++
		}
	})
	r.otel.recordProviderAttempt(provider, duration, err)
}

// RecordRateLimit counts a 429 from a provider. A zero retryAfter keeps the
// previous hint.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.updateProvider(provider, func(p *ProviderSnapshot) {
		p.RateLimitHits++
		if retryAfter > 0 {
			p.LastRetryAfter = retryAfter
		}
	})
	r.otel.recordRateLimit(provider, retryAfter)
}

func (r *Recorder) updateProvider(provider string, apply func(*ProviderSnapshot)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := r.providers[provider]
	apply(&snap)
	r.providers[provider] = snap
}

// RecordRun counts one bot invocation by the action it resolved to.
func (r *Recorder) RecordRun(action string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.runs.runs++
	r.runs.byAction[action]++
	r.runs.lastDuration = duration
	if err != nil {
		r.runs.errors++
	}
	r.mu.Unlock()

	r.otel.recordRun(action, duration, err)
}

// RecordPublish counts a publish outcome for a thread kind.
func (r *Recorder) RecordPublish(kind, outcome string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.runs.publishes[outcome]++
	r.mu.Unlock()

	r.otel.recordPublish(kind, outcome)
}

// RecordPromotionFailure counts a created thread whose promotion failed.
func (r *Recorder) RecordPromotionFailure(kind string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.runs.promotionFailures++
	r.mu.Unlock()

	r.otel.recordPromotionFailure(kind)
}

// RecordSidebar counts one sidebar refresh by outcome.
func (r *Recorder) RecordSidebar(outcome string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.runs.sidebar[outcome]++
	r.mu.Unlock()

	r.otel.recordSidebar(outcome, duration)
}

// RecordHTTPRequest only feeds OpenTelemetry; nothing is kept in memory.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Provider returns the counters for one provider, zero if it was never called.
func (r *Recorder) Provider(name string) ProviderSnapshot {
	if r == nil {
		return ProviderSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.providers[name]
}

// Providers returns a copy of every provider's counters keyed by name.
func (r *Recorder) Providers() map[string]ProviderSnapshot {
	out := make(map[string]ProviderSnapshot)
	if r == nil {
		return out
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, snap := range r.providers {
		out[name] = snap
	}
	return out
}

// RunSnapshot is a copy of the run and publish counters.
type RunSnapshot struct {
	Runs              int            `json:"runs"`
	Errors            int            `json:"errors"`
	ByAction          map[string]int `json:"byAction"`
	Publishes         map[string]int `json:"publishes"`
	PromotionFailures int            `json:"promotionFailures"`
	LastDuration      time.Duration  `json:"lastDurationNs"`
	Sidebar           map[string]int `json:"sidebar"`
}

// Runs returns a copy of the run counters.
func (r *Recorder) Runs() RunSnapshot {
	if r == nil {
		return RunSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := RunSnapshot{
		Runs:              r.runs.runs,
		Errors:            r.runs.errors,
		ByAction:          make(map[string]int, len(r.runs.byAction)),
		Publishes:         make(map[string]int, len(r.runs.publishes)),
		PromotionFailures: r.runs.promotionFailures,
		LastDuration:      r.runs.lastDuration,
		Sidebar:           make(map[string]int, len(r.runs.sidebar)),
	}
	for k, v := range r.runs.byAction {
		snap.ByAction[k] = v
	}
	for k, v := range r.runs.publishes {
		snap.Publishes[k] = v
	}
	for k, v := range r.runs.sidebar {
		snap.Sidebar[k] = v
	}
	return snap
}
