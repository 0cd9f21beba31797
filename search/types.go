// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"errors"

	"github.com/katalvlaran/upword/coverage"
	"github.com/katalvlaran/upword/word"
)

var (
	// ErrExhausted marks the end of the result sequence: the frontier is
	// empty or the result limit was reached.
	ErrExhausted = errors.New("search: exhausted")

	// ErrInvalidParams is returned by New for zero-value word.Params.
	ErrInvalidParams = errors.New("search: params not initialized")
)

// Option configures an Engine. Use with New(params, opts...).
type Option func(*Options)

// Options holds the knobs of a search run.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Randomized shuffles the alphabet symbols tried at each step.
	// Order changes which results come first, never which exist.
	Randomized bool

	// Seed feeds the shuffle RNG. 0 selects a fixed default seed.
	Seed int64

	// CacheCapacity is the coverage cache eviction threshold.
	CacheCapacity int

	// MaxResults stops the search after that many results; 0 = unlimited.
	MaxResults int

	// OnVisit, if non-nil, runs for every popped word.
	// Returning an error aborts the search.
	OnVisit func(p Progress) error

	// OnLeaf, if non-nil, runs after a dead end has triggered eviction.
	OnLeaf func(p Progress) error

	// OnResult, if non-nil, runs for each result in discovery order.
	// The Progress already counts the result.
	OnResult func(w word.Word, p Progress) error
}

// DefaultOptions returns Options with:
//   - Background context
//   - Deterministic traversal
//   - coverage.DefaultCapacity
//   - No result limit and no hooks
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Randomized:    false,
		Seed:          0,
		CacheCapacity: coverage.DefaultCapacity,
		MaxResults:    0,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRandomized enables shuffled traversal seeded by seed.
func WithRandomized(seed int64) Option {
	return func(o *Options) {
		o.Randomized = true
		o.Seed = seed
	}
}

// WithCacheCapacity sets the coverage cache eviction threshold.
// Values below 1 make New fail with coverage.ErrInvalidCapacity.
func WithCacheCapacity(n int) Option {
	return func(o *Options) {
		o.CacheCapacity = n
	}
}

// WithMaxResults stops the search after k results. k <= 0 means no limit.
func WithMaxResults(k int) Option {
	return func(o *Options) {
		if k < 0 {
			k = 0
		}
		o.MaxResults = k
	}
}

// WithOnVisit installs fn as the per-pop hook.
func WithOnVisit(fn func(p Progress) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnLeaf installs fn as the dead-end hook.
func WithOnLeaf(fn func(p Progress) error) Option {
	return func(o *Options) {
		o.OnLeaf = fn
	}
}

// WithOnResult installs fn as the result hook (persistence, reporting).
func WithOnResult(fn func(w word.Word, p Progress) error) Option {
	return func(o *Options) {
		o.OnResult = fn
	}
}

// Progress is the diagnostic snapshot handed to hooks.
type Progress struct {
	// Depth is the number of pending frontier words.
	Depth int

	// CacheSize is the number of coverage cache entries.
	CacheSize int

	// Longest is the length of the longest word popped so far.
	Longest int

	// Results is the number of results found so far.
	Results int

	// Visited counts popped words.
	Visited int

	// Leaves counts dead ends.
	Leaves int
}

// Stats summarizes a run.
type Stats struct {
	Progress

	// PeakDepth is the largest frontier size observed.
	PeakDepth int

	// Cache is the coverage cache activity.
	Cache coverage.Stats
}

// Result collects the outcome of Run.
type Result struct {
	// Words lists every result in discovery order.
	Words []word.Word

	// TargetLength is the length shared by every result.
	TargetLength int

	// Stats reports traversal and cache counters.
	Stats Stats
}
