// SPDX-License-Identifier: MIT

package monitor

import (
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/upword/search"
	"github.com/katalvlaran/upword/word"
)

// RecentLimit is the number of results kept for the /results endpoint.
const RecentLimit = 1000

// Snapshot is the JSON view of a run.
type Snapshot struct {
	RunID        string    `json:"run_id"`
	Alphabet     string    `json:"alphabet"`
	WindowLength int       `json:"window_length"`
	TargetLength int       `json:"target_length"`
	Depth        int       `json:"depth"`
	CacheSize    int       `json:"cache_size"`
	Longest      int       `json:"longest"`
	Results      int       `json:"results"`
	Visited      int       `json:"visited"`
	Leaves       int       `json:"leaves"`
	Done         bool      `json:"done"`
	Error        string    `json:"error,omitempty"`
	StartedAt    time.Time `json:"started_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type metrics struct {
	depth     prometheus.Gauge
	cacheSize prometheus.Gauge
	longest   prometheus.Gauge
	visits    prometheus.Counter
	leaves    prometheus.Counter
	results   prometheus.Counter
}

func newMetrics(reg prometheus.Registerer, runID string) *metrics {
	f := promauto.With(reg)
	labels := prometheus.Labels{"run_id": runID}

	return &metrics{
		depth: f.NewGauge(prometheus.GaugeOpts{
			Name:        "upword_frontier_depth",
			Help:        "Number of pending words on the search frontier",
			ConstLabels: labels,
		}),
		cacheSize: f.NewGauge(prometheus.GaugeOpts{
			Name:        "upword_cache_entries",
			Help:        "Number of entries in the coverage cache",
			ConstLabels: labels,
		}),
		longest: f.NewGauge(prometheus.GaugeOpts{
			Name:        "upword_longest_word",
			Help:        "Length of the longest word expanded so far",
			ConstLabels: labels,
		}),
		visits: f.NewCounter(prometheus.CounterOpts{
			Name:        "upword_visits_total",
			Help:        "Words popped from the frontier",
			ConstLabels: labels,
		}),
		leaves: f.NewCounter(prometheus.CounterOpts{
			Name:        "upword_leaves_total",
			Help:        "Dead ends reached",
			ConstLabels: labels,
		}),
		results: f.NewCounter(prometheus.CounterOpts{
			Name:        "upword_results_total",
			Help:        "Universal partial words found",
			ConstLabels: labels,
		}),
	}
}

// Reporter turns search hook events into logs, metrics and a Snapshot.
type Reporter struct {
	log *slog.Logger
	m   *metrics
	now func() time.Time

	mu     sync.Mutex
	snap   Snapshot
	recent []word.Word
}

// NewReporter registers the run's collectors on reg and returns a Reporter.
// Registering two reporters with the same runID on one registry panics.
func NewReporter(log *slog.Logger, reg prometheus.Registerer, runID string, p word.Params) *Reporter {
	now := time.Now().UTC()

	return &Reporter{
		log: log.With(slog.String("run_id", runID)),
		m:   newMetrics(reg, runID),
		now: func() time.Time { return time.Now().UTC() },
		snap: Snapshot{
			RunID:        runID,
			Alphabet:     p.Alphabet().String(),
			WindowLength: p.WindowLength(),
			TargetLength: p.TargetLength(),
			Longest:      p.Seed().Len(),
			StartedAt:    now,
			UpdatedAt:    now,
		},
	}
}

// Options returns the search hooks wired to r.
func (r *Reporter) Options() []search.Option {
	return []search.Option{
		search.WithOnVisit(r.OnVisit),
		search.WithOnLeaf(r.OnLeaf),
		search.WithOnResult(r.OnResult),
	}
}

// Start logs the run parameters.
func (r *Reporter) Start() {
	r.mu.Lock()
	s := r.snap
	r.mu.Unlock()

	r.log.Info("searching for universal partial words",
		slog.String("alphabet", s.Alphabet),
		slog.Int("window_length", s.WindowLength),
		slog.Int("target_length", s.TargetLength))
}

// OnVisit records a popped word. It logs only when the longest word grows.
func (r *Reporter) OnVisit(p search.Progress) error {
	r.m.visits.Inc()
	r.m.depth.Set(float64(p.Depth))
	r.m.cacheSize.Set(float64(p.CacheSize))
	r.m.longest.Set(float64(p.Longest))

	grew := r.update(p)
	if grew {
		r.log.Info("longest word grew",
			slog.Int("depth", p.Depth),
			slog.Int("cache_size", p.CacheSize),
			slog.Int("longest", p.Longest))
	}

	return nil
}

// OnLeaf records a dead end and the cache size left after eviction.
func (r *Reporter) OnLeaf(p search.Progress) error {
	r.m.leaves.Inc()
	r.m.depth.Set(float64(p.Depth))
	r.m.cacheSize.Set(float64(p.CacheSize))
	r.update(p)

	r.log.Debug("leaf",
		slog.Int("depth", p.Depth),
		slog.Int("cache_size", p.CacheSize),
		slog.Int("leaves", p.Leaves))

	return nil
}

// OnResult records a discovered word. p.Results is its 1-based ordinal.
func (r *Reporter) OnResult(w word.Word, p search.Progress) error {
	r.m.results.Inc()

	r.mu.Lock()
	r.recent = append(r.recent, w)
	if len(r.recent) > RecentLimit {
		r.recent = r.recent[len(r.recent)-RecentLimit:]
	}
	r.mu.Unlock()
	r.update(p)

	r.log.Info("found upword",
		slog.Int("ordinal", p.Results),
		slog.String("word", string(w)))

	return nil
}

// Finish marks the run done and logs the summary. err is the search error,
// if any; search.ErrExhausted is not passed here.
func (r *Reporter) Finish(st search.Stats, err error) {
	r.mu.Lock()
	r.apply(st.Progress)
	r.snap.Done = true
	if err != nil {
		r.snap.Error = err.Error()
	}
	r.mu.Unlock()

	attrs := []any{
		slog.Int("results", st.Results),
		slog.Int("visited", st.Visited),
		slog.Int("leaves", st.Leaves),
		slog.Int("peak_depth", st.PeakDepth),
		slog.Int("cache_evicted", st.Cache.Evicted),
	}
	if err != nil {
		r.log.Error("search aborted", append(attrs, slog.String("error", err.Error()))...)
		return
	}
	r.log.Info("search finished", attrs...)
}

// Snapshot returns a copy of the current state.
func (r *Reporter) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snap
}

// Recent returns up to RecentLimit of the latest results, oldest first.
func (r *Reporter) Recent() []word.Word {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]word.Word, len(r.recent))
	copy(out, r.recent)

	return out
}

// update stores p and reports whether the longest word grew.
func (r *Reporter) update(p search.Progress) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	grew := p.Longest > r.snap.Longest
	r.apply(p)

	return grew
}

// apply copies p into the snapshot. Callers hold mu.
func (r *Reporter) apply(p search.Progress) {
	r.snap.Depth = p.Depth
	r.snap.CacheSize = p.CacheSize
	r.snap.Longest = p.Longest
	r.snap.Results = p.Results
	r.snap.Visited = p.Visited
	r.snap.Leaves = p.Leaves
	r.snap.UpdatedAt = r.now()
}
