// SPDX-License-Identifier: MIT

package coverage

import (
	"errors"
	"sort"

	"github.com/katalvlaran/upword/word"
)

// DefaultCapacity is the eviction threshold used when no capacity is given.
// Roughly a gigabyte of entries for the binary n=8 search.
const DefaultCapacity = 9000

var (
	// ErrInvalidCapacity indicates a capacity below 1.
	ErrInvalidCapacity = errors.New("coverage: capacity must be positive")

	// ErrInvalidParams indicates zero-value word.Params.
	ErrInvalidParams = errors.New("coverage: params not initialized")
)

// Option configures a Cache at construction.
type Option func(*Cache)

// WithCapacity sets the eviction threshold. Values below 1 are rejected by New.
func WithCapacity(n int) Option {
	return func(c *Cache) {
		c.capacity = n
	}
}

// Stats reports cache activity since construction.
type Stats struct {
	// Hits counts Covered calls answered from a stored entry.
	Hits int

	// Computed counts entries inserted by the coverage fold.
	Computed int

	// Sweeps counts Evict calls that actually pruned.
	Sweeps int

	// Evicted counts entries removed across all sweeps.
	Evicted int
}

// Set is a read-only set of concrete windows. Sets handed out by a Cache
// are never modified afterwards, so they may be retained freely.
type Set struct {
	m map[word.Word]struct{}
}

// Has reports whether window is in s.
func (s Set) Has(window word.Word) bool {
	_, ok := s.m[window]

	return ok
}

// Len returns the number of windows in s.
func (s Set) Len() int { return len(s.m) }

// Windows returns the members of s in lexical order.
func (s Set) Windows() []word.Word {
	out := make([]word.Word, 0, len(s.m))
	for w := range s.m {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Equal reports whether s and o hold the same windows.
func (s Set) Equal(o Set) bool {
	if len(s.m) != len(o.m) {
		return false
	}
	for w := range s.m {
		if _, ok := o.m[w]; !ok {
			return false
		}
	}

	return true
}

// with returns a new Set holding s plus windows; s is left untouched.
func (s Set) with(windows []word.Word) Set {
	m := make(map[word.Word]struct{}, len(s.m)+len(windows))
	for w := range s.m {
		m[w] = struct{}{}
	}
	for _, w := range windows {
		m[w] = struct{}{}
	}

	return Set{m: m}
}
