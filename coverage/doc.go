// SPDX-License-Identifier: MIT

// Package coverage implements the memoized coverage cache that prunes the
// upword search.
//
// What:
//
//   - Covered(w): the set of concrete windows produced by every window
//     position of w once wildcards are expanded. Defined by the recurrence
//
//     Cov(w) = Cov(w[:-1]) ∪ Expand(lastWindow(w))   if |w| >= n
//     Cov(w) = ∅                                       if |w| <  n
//
//     and computed as an iterative fold from the longest cached prefix, so
//     the call depth never depends on |w|.
//   - HasRepeatedWindow(c): whether the final window of c re-produces a
//     window already covered by c's parent.
//   - Evict(frontier): once Size() reaches Capacity(), drop every entry
//     except the parents of pending frontier words.
//
// Why:
//
//   - Without memoization every candidate recomputes its full coverage.
//   - Without eviction the memo grows with every prefix the search ever
//     visited. Evicting only at dead ends amortizes the cost of the sweep
//     against the subtree that was just exhausted.
//
// Eviction never changes a result: a missing entry is recomputed from the
// recurrence on next demand.
//
// Complexity:
//
//   - Covered (hit):   O(1)
//   - Covered (miss):  O(k · |Cov|) for k uncached prefixes
//   - HasRepeated:     O(|A| · n) after Covered
//   - Evict:           O(Size + |frontier|)
//
// A Cache is owned by a single search and is not safe for concurrent use.
package coverage
