// SPDX-License-Identifier: MIT

package word

import "strings"

// NewAlphabet builds an Alphabet from symbols, one byte per symbol,
// preserving order.
//
// Errors: ErrEmptyAlphabet, ErrDuplicateSymbol, ErrInvalidSymbol
// (each also matching ErrInvalidParameter).
func NewAlphabet(symbols string) (Alphabet, error) {
	if len(symbols) == 0 {
		return nil, invalidf(ErrEmptyAlphabet, "%q", symbols)
	}

	var (
		seen [256]bool
		a    = make(Alphabet, 0, len(symbols))
		i    int
		s    Symbol
	)
	for i = 0; i < len(symbols); i++ {
		s = Symbol(symbols[i])
		if s == Wildcard || s <= ' ' || s > '~' {
			return nil, invalidf(ErrInvalidSymbol, "%q at position %d", symbols[i], i)
		}
		if seen[s] {
			return nil, invalidf(ErrDuplicateSymbol, "%q", s.String())
		}
		seen[s] = true
		a = append(a, s)
	}

	return a, nil
}

// String joins the alphabet back into its symbol string.
func (a Alphabet) String() string {
	var b strings.Builder
	b.Grow(len(a))
	for _, s := range a {
		b.WriteByte(byte(s))
	}

	return b.String()
}

// Contains reports whether s is a member of a.
func (a Alphabet) Contains(s Symbol) bool {
	for _, x := range a {
		if x == s {
			return true
		}
	}

	return false
}

// Clone returns an independent copy of a.
func (a Alphabet) Clone() Alphabet {
	out := make(Alphabet, len(a))
	copy(out, a)

	return out
}

// Len returns the number of symbols in w.
func (w Word) Len() int { return len(w) }

// At returns the symbol at position i.
func (w Word) At(i int) Symbol { return Symbol(w[i]) }

// Append returns w extended by s. The receiver is left untouched.
func (w Word) Append(s Symbol) Word { return w + Word(rune(s)) }

// Parent returns w without its last symbol; the empty word is its own parent.
func (w Word) Parent() Word {
	if len(w) == 0 {
		return w
	}

	return w[:len(w)-1]
}

// Prefix returns the first n symbols of w.
func (w Word) Prefix(n int) Word { return w[:n] }

// LastWindow returns the final n symbols of w, or all of w when it is
// shorter than n.
func (w Word) LastWindow(n int) Word {
	if len(w) <= n {
		return w
	}

	return w[len(w)-n:]
}

// HasWildcard reports whether w contains at least one Wildcard.
func (w Word) HasWildcard() bool {
	return strings.IndexByte(string(w), byte(Wildcard)) >= 0
}

// String implements fmt.Stringer.
func (w Word) String() string { return string(w) }

// NewParams validates alphabet and windowLength and derives the target length.
//
// Errors: ErrEmptyAlphabet, ErrInvalidWindowLength, ErrWindowTooLong
// (each also matching ErrInvalidParameter).
func NewParams(alphabet Alphabet, windowLength int) (Params, error) {
	// 1. Re-validate the alphabet; callers may have built it by hand.
	if _, err := NewAlphabet(alphabet.String()); err != nil {
		return Params{}, err
	}

	// 2. Window length must be positive.
	if windowLength < 1 {
		return Params{}, invalidf(ErrInvalidWindowLength, "%d", windowLength)
	}

	// 3. Derive and bound the target length.
	target, err := TargetLength(len(alphabet), windowLength)
	if err != nil {
		return Params{}, err
	}

	return Params{
		alphabet:     alphabet.Clone(),
		windowLength: windowLength,
		targetLength: target,
	}, nil
}

// MustParams is NewParams for package-level fixtures; it panics on error.
func MustParams(symbols string, windowLength int) Params {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	p, err := NewParams(a, windowLength)
	if err != nil {
		panic(err)
	}

	return p
}

// Alphabet returns a copy of the search alphabet.
func (p Params) Alphabet() Alphabet { return p.alphabet.Clone() }

// Size returns |A|.
func (p Params) Size() int { return len(p.alphabet) }

// Symbol returns the i-th alphabet symbol.
func (p Params) Symbol(i int) Symbol { return p.alphabet[i] }

// WindowLength returns n.
func (p Params) WindowLength() int { return p.windowLength }

// TargetLength returns |A|^(n-1) + (n-1).
func (p Params) TargetLength() int { return p.targetLength }

// Seed returns the single-symbol word every search starts from.
func (p Params) Seed() Word { return Word("").Append(p.alphabet[0]) }

// Valid reports whether p was produced by NewParams.
func (p Params) Valid() bool { return p.windowLength > 0 && len(p.alphabet) > 0 }

// TargetLength computes size^(windowLength-1) + (windowLength-1) with
// overflow checking against MaxTargetLength.
func TargetLength(size, windowLength int) (int, error) {
	if size < 1 {
		return 0, invalidf(ErrEmptyAlphabet, "size %d", size)
	}
	if windowLength < 1 {
		return 0, invalidf(ErrInvalidWindowLength, "%d", windowLength)
	}

	var (
		exp    = windowLength - 1
		result = 1
		i      int
	)
	for i = 0; i < exp; i++ {
		if result > MaxTargetLength/size {
			return 0, invalidf(ErrWindowTooLong, "%d^%d exceeds %d", size, exp, MaxTargetLength)
		}
		result *= size
	}
	if result > MaxTargetLength-exp {
		return 0, invalidf(ErrWindowTooLong, "target %d+%d exceeds %d", result, exp, MaxTargetLength)
	}

	return result + exp, nil
}
