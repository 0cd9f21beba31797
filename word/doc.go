// SPDX-License-Identifier: MIT

// Package word defines the data model shared by the upword search: symbols,
// alphabets, partial words, windows and the validated search parameters.
//
// What:
//
//   - Symbol: one alphabet letter, or the distinguished Wildcard ('*').
//   - Alphabet: ordered set of distinct printable symbols (never the wildcard).
//   - Word: immutable, comparable partial word; grows only through Append,
//     which returns a new value. Words are used directly as map keys.
//   - Params: the immutable (alphabet, window length) pair handed to every
//     component at construction, with the derived TargetLength.
//   - Expand / ConcreteWindows / RepeatedWindows: wildcard expansion of a
//     window and enumeration of every concrete window a word produces.
//
// Target length:
//
//	TargetLength = |A|^(n-1) + (n-1)
//
// Errors:
//
//   - ErrInvalidParameter       class of every validation failure below
//   - ErrEmptyAlphabet          alphabet has no symbols
//   - ErrDuplicateSymbol        alphabet repeats a symbol
//   - ErrInvalidSymbol          wildcard, space or non-printable byte in alphabet
//   - ErrInvalidWindowLength    window length < 1
//   - ErrWindowTooLong          target length overflows MaxTargetLength
//
// Complexity:
//
//   - Expand:          O(|A|^k · n) for a window with k wildcards
//   - ConcreteWindows: O(|w| · |A| · n) for single-wildcard windows
package word
