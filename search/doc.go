// SPDX-License-Identifier: MIT

// Package search implements the explicit-stack depth-first search for
// universal partial words (upwords).
//
// What:
//
//   - The frontier starts with the single-symbol word made of the first
//     alphabet symbol. Each step pops one word and extends it by one symbol:
//     the Wildcard when the next position closes a window (position
//     n-1 mod n), otherwise every alphabet symbol.
//   - coverage.Cache.HasRepeatedWindow prunes every extension whose final
//     window re-produces an already covered window.
//   - Safe extensions of target length are results; shorter ones are pushed.
//   - A popped word with no safe extension is a leaf; leaves trigger
//     coverage.Cache.Evict with the current frontier.
//
// Results come out lazily through Engine.Next / Engine.Words, in discovery
// order. Run and Search drain the whole sequence.
//
// Seed word: when the target length equals 1 (window length 1) the seed
// already has target length and is recorded as the first result before
// the loop starts.
//
// Determinism: without WithRandomized the visiting order depends only on
// the alphabet order and the LIFO frontier. With WithRandomized(seed) the
// same seed reproduces the same run.
//
// Options:
//
//   - WithContext(ctx)        cancellation, checked once per step
//   - WithRandomized(seed)    shuffle alphabet symbols per step
//   - WithCacheCapacity(n)    eviction threshold of the coverage cache
//   - WithMaxResults(k)       stop after k results (0 = unlimited)
//   - WithOnVisit(fn)         called for every popped word
//   - WithOnLeaf(fn)          called after every leaf eviction
//   - WithOnResult(fn)        called for every result, before Next returns it
//
// Errors:
//
//   - ErrExhausted            the frontier is empty (end of sequence)
//   - ErrInvalidParams        zero-value word.Params
//   - coverage.ErrInvalidCapacity
//   - context.Canceled / context.DeadlineExceeded, wrapped
//   - hook errors, wrapped
//
// Complexity: exponential in the window length; the cache bounds memory to
// roughly Capacity entries plus whatever one subtree adds before its first
// leaf.
package search
