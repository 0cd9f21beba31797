// SPDX-License-Identifier: MIT

package search

import (
	"math/rand"

	"github.com/katalvlaran/upword/word"
)

// defaultRNGSeed is used when WithRandomized is given seed 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffleSymbols performs an in-place Fisher–Yates shuffle of a.
//
// Complexity: O(len(a)).
func shuffleSymbols(a []word.Symbol, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
