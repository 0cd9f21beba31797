// SPDX-License-Identifier: MIT

package word

import "sort"

// Expand returns the concrete windows represented by window over alphabet,
// substituting every alphabet symbol for each Wildcard position.
// A window without wildcards represents itself only; one wildcard yields
// |A| windows in alphabet order; k wildcards yield |A|^k windows.
func Expand(window Word, alphabet Alphabet) []Word {
	// 1. Fast path: nothing to substitute.
	if !window.HasWildcard() {
		return []Word{window}
	}

	// 2. Grow the product one position at a time.
	out := []Word{""}
	var (
		i    int
		s    Symbol
		next []Word
	)
	for i = 0; i < len(window); i++ {
		s = window.At(i)
		if s != Wildcard {
			for j := range out {
				out[j] = out[j].Append(s)
			}
			continue
		}
		next = make([]Word, 0, len(out)*len(alphabet))
		for _, prefix := range out {
			for _, a := range alphabet {
				next = append(next, prefix.Append(a))
			}
		}
		out = next
	}

	return out
}

// ExpandLast returns the final n-symbol window of w with every wildcard
// replaced by a. Calling it once per alphabet symbol yields the expansion of
// a single-wildcard window without materializing the whole set.
func ExpandLast(w Word, n int, a Symbol) Word {
	last := []byte(w.LastWindow(n))
	for i := range last {
		if Symbol(last[i]) == Wildcard {
			last[i] = byte(a)
		}
	}

	return Word(last)
}

// ConcreteWindows enumerates, position by position, every concrete window
// produced by w (with multiplicity). Words shorter than n produce none.
func ConcreteWindows(w Word, alphabet Alphabet, n int) []Word {
	if n < 1 || len(w) < n {
		return nil
	}

	out := make([]Word, 0, (len(w)-n+1)*len(alphabet))
	for end := n; end <= len(w); end++ {
		out = append(out, Expand(w[end-n:end], alphabet)...)
	}

	return out
}

// RepeatedWindows returns, sorted, the concrete windows that w produces
// more than once. An empty result means w satisfies the no-repeated-window
// invariant.
func RepeatedWindows(w Word, alphabet Alphabet, n int) []Word {
	counts := make(map[Word]int)
	for _, c := range ConcreteWindows(w, alphabet, n) {
		counts[c]++
	}

	var dup []Word
	for c, k := range counts {
		if k > 1 {
			dup = append(dup, c)
		}
	}
	sort.Slice(dup, func(i, j int) bool { return dup[i] < dup[j] })

	return dup
}

// Universal reports whether w covers every one of the |A|^n concrete
// windows exactly once. It is a diagnostic helper; the search itself only
// enforces the no-repeated-window invariant.
func Universal(w Word, alphabet Alphabet, n int) bool {
	windows := ConcreteWindows(w, alphabet, n)
	if len(RepeatedWindows(w, alphabet, n)) > 0 {
		return false
	}

	total := 1
	for i := 0; i < n; i++ {
		total *= len(alphabet)
	}

	return len(windows) == total
}
