// SPDX-License-Identifier: MIT

package word

import (
	"errors"
	"fmt"
)

// Wildcard is the "hole" symbol; when a window is evaluated it stands for
// every alphabet symbol at once.
const Wildcard Symbol = '*'

// MaxTargetLength bounds the length of the words a search may build.
// Parameters whose target length exceeds it are rejected up front.
const MaxTargetLength = 1 << 24

var (
	// ErrInvalidParameter classifies every parameter validation failure.
	// Validation errors wrap it together with one of the specific
	// sentinels below, so errors.Is works for both.
	ErrInvalidParameter = errors.New("word: invalid parameter")

	// ErrEmptyAlphabet indicates an alphabet without symbols.
	ErrEmptyAlphabet = errors.New("empty alphabet")

	// ErrDuplicateSymbol indicates an alphabet listing the same symbol twice.
	ErrDuplicateSymbol = errors.New("duplicate symbol")

	// ErrInvalidSymbol indicates the wildcard, a space, or a non-printable
	// byte used as an alphabet symbol.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrInvalidWindowLength indicates a window length below 1.
	ErrInvalidWindowLength = errors.New("window length must be positive")

	// ErrWindowTooLong indicates a window length whose target length is
	// beyond MaxTargetLength.
	ErrWindowTooLong = errors.New("window length too long")
)

// invalidf attaches the parameter class and a specific sentinel to a
// formatted detail message.
func invalidf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: "+format, append([]any{ErrInvalidParameter, sentinel}, args...)...)
}

// Symbol is a single letter of a Word.
type Symbol byte

// String renders s as a one-character string.
func (s Symbol) String() string { return string(rune(s)) }

// Alphabet is an ordered set of distinct symbols. The order is significant:
// the first symbol seeds the search and deterministic traversal visits
// symbols in this order.
type Alphabet []Symbol

// Word is a partial word over an Alphabet plus the Wildcard.
// It is a value type: Append returns a new Word and never touches the
// receiver, so any Word may be kept as a map key indefinitely.
type Word string

// Params is the validated, immutable configuration of a search.
// The zero value is not usable; build one with NewParams.
type Params struct {
	alphabet     Alphabet
	windowLength int
	targetLength int
}
