// SPDX-License-Identifier: MIT

package search

import "github.com/katalvlaran/upword/word"

// frontier is the LIFO stack of pending words.
type frontier struct {
	items []word.Word
	peak  int
}

func (f *frontier) push(w word.Word) {
	f.items = append(f.items, w)
	if len(f.items) > f.peak {
		f.peak = len(f.items)
	}
}

// pop removes and returns the top word. The caller checks len first.
func (f *frontier) pop() word.Word {
	last := len(f.items) - 1
	w := f.items[last]
	f.items[last] = ""
	f.items = f.items[:last]

	return w
}

func (f *frontier) len() int { return len(f.items) }

// words exposes the pending words for eviction. Read only.
func (f *frontier) words() []word.Word { return f.items }
