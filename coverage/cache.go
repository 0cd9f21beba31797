// SPDX-License-Identifier: MIT

package coverage

import (
	"fmt"

	"github.com/katalvlaran/upword/word"
)

// Cache memoizes the coverage set of every word prefix the search asks
// about, keyed by the word itself.
type Cache struct {
	alphabet word.Alphabet // expansion symbols, in alphabet order
	n        int           // window length

	entries  map[word.Word]Set
	capacity int
	stats    Stats
}

// New builds an empty Cache for p.
//
// Errors: ErrInvalidParams for zero-value params, ErrInvalidCapacity when
// WithCapacity was given a value below 1.
func New(p word.Params, opts ...Option) (*Cache, error) {
	if !p.Valid() {
		return nil, ErrInvalidParams
	}

	c := &Cache{
		alphabet: p.Alphabet(),
		n:        p.WindowLength(),
		entries:  make(map[word.Word]Set),
		capacity: DefaultCapacity,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.capacity < 1 {
		return nil, fmt.Errorf("coverage: New(capacity=%d): %w", c.capacity, ErrInvalidCapacity)
	}

	return c, nil
}

// Covered returns the set of concrete windows produced by w.
// Words shorter than the window length cover nothing and are not stored.
// Every uncached prefix between the longest cached one and w is computed
// and stored on the way, exactly as the recursive definition would.
func (c *Cache) Covered(w word.Word) Set {
	// 1. Nothing to cover yet.
	if w.Len() < c.n {
		return Set{}
	}

	// 2. Memo hit.
	if s, ok := c.entries[w]; ok {
		c.stats.Hits++
		return s
	}

	// 3. Walk back to the longest stored prefix; below n the set is empty.
	var (
		base  Set
		start int
		found bool
	)
	for start = w.Len() - 1; start >= c.n; start-- {
		if base, found = c.entries[w.Prefix(start)]; found {
			break
		}
	}
	if !found {
		start = c.n - 1
		base = Set{}
	}

	// 4. Fold forward one symbol at a time, storing each prefix.
	var (
		end    int
		prefix word.Word
	)
	for end = start + 1; end <= w.Len(); end++ {
		prefix = w.Prefix(end)
		base = base.with(word.Expand(prefix.LastWindow(c.n), c.alphabet))
		c.entries[prefix] = base
		c.stats.Computed++
	}

	return base
}

// HasRepeatedWindow reports whether the final window of candidate, expanded
// over the alphabet, produces a window already covered by candidate minus
// its last symbol. It stops at the first conflict.
func (c *Cache) HasRepeatedWindow(candidate word.Word) bool {
	if candidate.Len() < c.n {
		return false
	}

	seen := c.Covered(candidate.Parent())
	for _, a := range c.alphabet {
		if seen.Has(word.ExpandLast(candidate, c.n, a)) {
			return true
		}
	}

	return false
}

// Size returns the number of stored entries.
func (c *Cache) Size() int { return len(c.entries) }

// Capacity returns the eviction threshold.
func (c *Cache) Capacity() int { return c.capacity }

// SetCapacity changes the eviction threshold. Any positive value is accepted.
func (c *Cache) SetCapacity(n int) error {
	if n < 1 {
		return fmt.Errorf("coverage: SetCapacity(%d): %w", n, ErrInvalidCapacity)
	}
	c.capacity = n

	return nil
}

// Evict prunes the cache once it has reached capacity, keeping only the
// entries keyed by a frontier word minus its last symbol. It returns the
// number of entries removed; below capacity it does nothing.
func (c *Cache) Evict(frontier []word.Word) int {
	if len(c.entries) < c.capacity {
		return 0
	}

	// 1. Keys one step above a pending candidate survive.
	keep := make(map[word.Word]struct{}, len(frontier))
	for _, f := range frontier {
		keep[f.Parent()] = struct{}{}
	}

	// 2. Drop everything else.
	removed := 0
	for k := range c.entries {
		if _, ok := keep[k]; !ok {
			delete(c.entries, k)
			removed++
		}
	}

	c.stats.Sweeps++
	c.stats.Evicted += removed

	return removed
}

// Contains reports whether w is currently stored.
func (c *Cache) Contains(w word.Word) bool {
	_, ok := c.entries[w]

	return ok
}

// Stats returns a copy of the activity counters.
func (c *Cache) Stats() Stats { return c.stats }
