// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"
	"iter"
	"math/rand"

	"github.com/katalvlaran/upword/coverage"
	"github.com/katalvlaran/upword/word"
)

// Engine is a resumable upword search. It is single-goroutine: Next, Words
// and Run must not be called concurrently.
type Engine struct {
	params word.Params
	opts   Options
	cache  *coverage.Cache

	n        int
	target   int
	alphabet word.Alphabet
	rng      *rand.Rand

	stack   frontier
	wild    []word.Symbol // the only candidate at window-closing positions
	order   []word.Symbol // per-step symbol order when randomized
	results []word.Word
	pending []word.Word // results found but not yet returned by Next

	longest int
	visited int
	leaves  int

	started bool
	err     error // sticky: ErrExhausted or the abort cause
}

// New prepares a search over p. Nothing is explored until the first Next.
func New(p word.Params, opts ...Option) (*Engine, error) {
	// 1. Validate parameters.
	if !p.Valid() {
		return nil, ErrInvalidParams
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Build the coverage cache.
	cache, err := coverage.New(p, coverage.WithCapacity(o.CacheCapacity))
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	e := &Engine{
		params:   p,
		opts:     o,
		cache:    cache,
		n:        p.WindowLength(),
		target:   p.TargetLength(),
		alphabet: p.Alphabet(),
		wild:     []word.Symbol{word.Wildcard},
	}
	if o.Randomized {
		e.rng = rngFromSeed(o.Seed)
		e.order = make([]word.Symbol, len(e.alphabet))
	}

	return e, nil
}

// Next runs the search until the next result and returns it.
// After the last result it returns ErrExhausted, and keeps doing so.
// Cancellation and hook errors are returned wrapped and are also sticky.
func (e *Engine) Next() (word.Word, error) {
	if !e.started {
		e.started = true
		if err := e.start(); err != nil {
			e.err = err
		}
	}

	for {
		// 1. Hand out results already found.
		if len(e.pending) > 0 {
			w := e.pending[0]
			e.pending = e.pending[1:]
			return w, nil
		}

		// 2. Sticky end state.
		if e.err != nil {
			return "", e.err
		}
		if e.limitReached() || e.stack.len() == 0 {
			e.err = ErrExhausted
			continue
		}

		// 3. Cancellation check.
		select {
		case <-e.opts.Ctx.Done():
			e.err = fmt.Errorf("search: %w", e.opts.Ctx.Err())
			continue
		default:
		}

		// 4. Expand one word.
		if err := e.step(); err != nil {
			e.err = err
		}
	}
}

// Words returns the remaining results as a finite, single-use sequence.
// Iteration stops after ErrExhausted; any other error is yielded once.
func (e *Engine) Words() iter.Seq2[word.Word, error] {
	return func(yield func(word.Word, error) bool) {
		for {
			w, err := e.Next()
			if errors.Is(err, ErrExhausted) {
				return
			}
			if !yield(w, err) || err != nil {
				return
			}
		}
	}
}

// Run drains the search and returns every result. On error the partial
// result is returned along with it.
func (e *Engine) Run() (*Result, error) {
	res := &Result{TargetLength: e.target}
	for w, err := range e.Words() {
		if err != nil {
			res.Stats = e.Stats()
			return res, err
		}
		res.Words = append(res.Words, w)
	}
	res.Stats = e.Stats()

	return res, nil
}

// Search builds an Engine for p and runs it to completion.
func Search(p word.Params, opts ...Option) (*Result, error) {
	e, err := New(p, opts...)
	if err != nil {
		return nil, err
	}

	return e.Run()
}

// Progress returns the current diagnostic snapshot.
func (e *Engine) Progress() Progress {
	return Progress{
		Depth:     e.stack.len(),
		CacheSize: e.cache.Size(),
		Longest:   e.longest,
		Results:   len(e.results),
		Visited:   e.visited,
		Leaves:    e.leaves,
	}
}

// Stats returns the run counters so far.
func (e *Engine) Stats() Stats {
	return Stats{
		Progress:  e.Progress(),
		PeakDepth: e.stack.peak,
		Cache:     e.cache.Stats(),
	}
}

// Results returns a copy of the results found so far.
func (e *Engine) Results() []word.Word {
	out := make([]word.Word, len(e.results))
	copy(out, e.results)

	return out
}

// TargetLength returns the length every result has.
func (e *Engine) TargetLength() int { return e.target }

// Cache exposes the coverage cache, mainly for diagnostics.
func (e *Engine) Cache() *coverage.Cache { return e.cache }

// start seeds the frontier. A seed that already has target length is a
// result in its own right and is never expanded.
func (e *Engine) start() error {
	seed := e.params.Seed()
	e.longest = seed.Len()
	if seed.Len() == e.target {
		return e.record(seed)
	}
	e.stack.push(seed)

	return nil
}

// step pops one word and expands it.
func (e *Engine) step() error {
	// 1. Pop and account.
	w := e.stack.pop()
	e.visited++
	if w.Len() >= e.longest {
		e.longest = w.Len()
	}
	if e.opts.OnVisit != nil {
		if err := e.opts.OnVisit(e.Progress()); err != nil {
			return fmt.Errorf("search: OnVisit hook for %q: %w", w, err)
		}
	}

	// 2. Try every candidate symbol.
	leaf := true
	var candidate word.Word
	for _, c := range e.nextSymbols(w) {
		candidate = w.Append(c)
		if e.cache.HasRepeatedWindow(candidate) {
			continue
		}
		leaf = false

		if candidate.Len() == e.target {
			if err := e.record(candidate); err != nil {
				return err
			}
			continue
		}
		e.stack.push(candidate)
	}

	// 3. Dead end: prune the cache against what is still pending.
	if leaf {
		e.leaves++
		e.cache.Evict(e.stack.words())
		if e.opts.OnLeaf != nil {
			if err := e.opts.OnLeaf(e.Progress()); err != nil {
				return fmt.Errorf("search: OnLeaf hook for %q: %w", w, err)
			}
		}
	}

	return nil
}

// nextSymbols returns the symbols that may follow w: the wildcard alone
// when the next position closes a window, otherwise the alphabet.
func (e *Engine) nextSymbols(w word.Word) []word.Symbol {
	if w.Len()%e.n == e.n-1 {
		return e.wild
	}
	if !e.opts.Randomized {
		return e.alphabet
	}
	copy(e.order, e.alphabet)
	shuffleSymbols(e.order, e.rng)

	return e.order
}

// record appends a result unless the limit is already reached. A result
// whose hook fails is counted but not handed out by Next.
func (e *Engine) record(w word.Word) error {
	if e.limitReached() {
		return nil
	}
	e.results = append(e.results, w)
	if e.opts.OnResult != nil {
		if err := e.opts.OnResult(w, e.Progress()); err != nil {
			return fmt.Errorf("search: OnResult hook for %q: %w", w, err)
		}
	}
	e.pending = append(e.pending, w)

	return nil
}

func (e *Engine) limitReached() bool {
	return e.opts.MaxResults > 0 && len(e.results) >= e.opts.MaxResults
}
