package coverage_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/upword/coverage"
	"github.com/katalvlaran/upword/word"
)

// naiveCovered builds the coverage set straight from the window enumeration.
func naiveCovered(w word.Word, p word.Params) map[word.Word]bool {
	out := make(map[word.Word]bool)
	for _, c := range word.ConcreteWindows(w, p.Alphabet(), p.WindowLength()) {
		out[c] = true
	}

	return out
}

func asMap(s coverage.Set) map[word.Word]bool {
	out := make(map[word.Word]bool)
	for _, w := range s.Windows() {
		out[w] = true
	}

	return out
}

// randomWord draws a word using the search's placement rule: the wildcard
// sits on the last position of every window.
func randomWord(rng *rand.Rand, p word.Params, length int) word.Word {
	w := word.Word("")
	n := p.WindowLength()
	for i := 0; i < length; i++ {
		if i%n == n-1 {
			w = w.Append(word.Wildcard)
			continue
		}
		w = w.Append(p.Symbol(rng.Intn(p.Size())))
	}

	return w
}

func newCache(t *testing.T, p word.Params, opts ...coverage.Option) *coverage.Cache {
	t.Helper()
	c, err := coverage.New(p, opts...)
	require.NoError(t, err)

	return c
}

func TestNew_Errors(t *testing.T) {
	_, err := coverage.New(word.Params{})
	assert.ErrorIs(t, err, coverage.ErrInvalidParams)

	_, err = coverage.New(word.MustParams("01", 2), coverage.WithCapacity(0))
	assert.ErrorIs(t, err, coverage.ErrInvalidCapacity)

	c, err := coverage.New(word.MustParams("01", 2))
	require.NoError(t, err)
	assert.Equal(t, coverage.DefaultCapacity, c.Capacity())
	assert.Equal(t, 0, c.Size())
}

func TestCovered_ShortWordsAreEmptyAndUncached(t *testing.T) {
	p := word.MustParams("01", 3)
	c := newCache(t, p)

	for _, w := range []word.Word{"", "0", "0*"} {
		assert.Equal(t, 0, c.Covered(w).Len(), "word %q", w)
	}
	assert.Equal(t, 0, c.Size())
}

func TestCovered_StoresEveryPrefix(t *testing.T) {
	p := word.MustParams("01", 2)
	c := newCache(t, p)

	s := c.Covered("0*1*")
	assert.Equal(t, []word.Word{"00", "01", "10", "11"}, s.Windows())

	// Prefixes of length >= n are stored, shorter ones are not.
	assert.True(t, c.Contains("0*"))
	assert.True(t, c.Contains("0*1"))
	assert.True(t, c.Contains("0*1*"))
	assert.False(t, c.Contains("0"))
	assert.Equal(t, 3, c.Size())
	assert.Equal(t, 3, c.Stats().Computed)

	// A second call is a pure hit.
	again := c.Covered("0*1*")
	assert.True(t, s.Equal(again))
	assert.Equal(t, 1, c.Stats().Hits)
	assert.Equal(t, 3, c.Stats().Computed)
}

func TestCovered_ResumesFromLongestCachedPrefix(t *testing.T) {
	p := word.MustParams("01", 2)
	c := newCache(t, p)

	c.Covered("0*1")
	before := c.Stats().Computed
	c.Covered("0*1*0")
	assert.Equal(t, before+2, c.Stats().Computed)
}

func TestCovered_Recurrence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, p := range []word.Params{
		word.MustParams("01", 2),
		word.MustParams("01", 3),
		word.MustParams("012", 3),
		word.MustParams("01", 1),
	} {
		c := newCache(t, p)
		n := p.WindowLength()
		for trial := 0; trial < 50; trial++ {
			w := randomWord(rng, p, rng.Intn(3*n+4))
			got := asMap(c.Covered(w))
			assert.Equal(t, naiveCovered(w, p), got, "word %q", w)

			if w.Len() < n {
				assert.Empty(t, got)
				continue
			}
			want := asMap(c.Covered(w.Parent()))
			for _, e := range word.Expand(w.LastWindow(n), p.Alphabet()) {
				want[e] = true
			}
			assert.Equal(t, want, got, "recurrence for %q", w)
		}
	}
}

func TestHasRepeatedWindow(t *testing.T) {
	p := word.MustParams("01", 2)
	c := newCache(t, p)

	// Both length-3 extensions of the seed repeat a window.
	assert.True(t, c.HasRepeatedWindow("0*0"))
	assert.True(t, c.HasRepeatedWindow("0*1"))

	// Shorter than a window: nothing to repeat.
	assert.False(t, c.HasRepeatedWindow("0"))
	assert.False(t, c.HasRepeatedWindow("0*"))

	q := word.MustParams("01", 3)
	d := newCache(t, q)
	assert.True(t, d.HasRepeatedWindow("00*0"))
	assert.True(t, d.HasRepeatedWindow("00*1"))
	assert.False(t, d.HasRepeatedWindow("01*0"))
}

func TestSetCapacity(t *testing.T) {
	c := newCache(t, word.MustParams("01", 2))
	assert.ErrorIs(t, c.SetCapacity(0), coverage.ErrInvalidCapacity)
	assert.ErrorIs(t, c.SetCapacity(-3), coverage.ErrInvalidCapacity)
	require.NoError(t, c.SetCapacity(1))
	assert.Equal(t, 1, c.Capacity())
	require.NoError(t, c.SetCapacity(1<<30))
	assert.Equal(t, 1<<30, c.Capacity())
}

func TestEvict_BelowCapacityIsNoop(t *testing.T) {
	c := newCache(t, word.MustParams("01", 2), coverage.WithCapacity(10))
	c.Covered("0*1*")
	assert.Equal(t, 0, c.Evict(nil))
	assert.Equal(t, 3, c.Size())
	assert.Equal(t, 0, c.Stats().Sweeps)
}

func TestEvict_KeepsFrontierParents(t *testing.T) {
	c := newCache(t, word.MustParams("01", 2), coverage.WithCapacity(2))
	c.Covered("0*1*")
	c.Covered("0*0")

	removed := c.Evict([]word.Word{"0*1*0"})
	assert.Equal(t, 3, removed)
	assert.Equal(t, 1, c.Size())
	assert.True(t, c.Contains("0*1*"))
	assert.Equal(t, coverage.Stats{Hits: 0, Computed: 4, Sweeps: 1, Evicted: 3}, c.Stats())
}

func TestEvict_CapacityOneBound(t *testing.T) {
	p := word.MustParams("012", 3)
	c := newCache(t, p, coverage.WithCapacity(1))
	rng := rand.New(rand.NewSource(11))

	for round := 0; round < 20; round++ {
		k := 1 + rng.Intn(4)
		frontier := make([]word.Word, 0, k)
		for i := 0; i < k; i++ {
			w := randomWord(rng, p, 3+rng.Intn(8))
			c.Covered(w)
			frontier = append(frontier, w)
		}
		c.Evict(frontier)
		assert.LessOrEqual(t, c.Size(), len(frontier))
	}
}

func TestEvict_DoesNotChangeResults(t *testing.T) {
	p := word.MustParams("01", 3)
	rng := rand.New(rand.NewSource(3))
	words := make([]word.Word, 40)
	for i := range words {
		words[i] = randomWord(rng, p, 3+rng.Intn(10))
	}

	reference := newCache(t, p)
	evicting := newCache(t, p, coverage.WithCapacity(1))
	for i, w := range words {
		want := reference.Covered(w)
		if i%3 == 0 {
			evicting.Evict(words[i:])
		}
		got := evicting.Covered(w)
		assert.True(t, want.Equal(got), "word %q", w)
		assert.Equal(t, reference.HasRepeatedWindow(w), evicting.HasRepeatedWindow(w))
	}
}
