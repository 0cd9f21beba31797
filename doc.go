// SPDX-License-Identifier: MIT

// Package upword enumerates universal partial words: words over an alphabet
// plus a wildcard '*' whose length-n windows, once every wildcard is
// expanded, cover every word of length n exactly once.
//
// What is in the box?
//
//	A pruned, exhaustive depth-first search with memoized window coverage:
//		• Words and windows: alphabets, params, wildcard expansion
//		• Coverage cache: prefix-shared coverage sets with coarse eviction
//		• Search engine: explicit-stack DFS yielding results lazily
//		• Sinks: text file, SQLite run log, in-memory
//		• Monitor: slog logging, Prometheus metrics, HTTP progress endpoints
//
// Everything is organized under these subpackages:
//
//	word/       Symbol, Alphabet, Word, Params and window expansion
//	coverage/   Cache of covered-window sets keyed by prefix
//	search/     Engine, hooks and functional options
//	config/     YAML configuration
//	sink/       result storage
//	monitor/    logging, metrics and the HTTP monitor
//	cmd/upword  the command-line front end
//
// Quick example, alphabet "01" and window length 4 (target length 11):
//
//	p := word.MustParams("01", 4)
//	res, _ := search.Search(p)
//	// res.Words == [011*100*011 001*110*001]
//
// Each wildcard sits at a position i with i%n == n-1, so every window holds
// exactly one '*'.
//
//	go install github.com/katalvlaran/upword/cmd/upword@latest
package upword
