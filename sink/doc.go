// SPDX-License-Identifier: MIT

// Package sink persists discovered upwords.
//
// Implementations:
//
//   - Text:   one word per line, flushed after every word so an interrupted
//     run keeps everything found so far.
//   - SQLite: a run table keyed by a UUID plus one row per word, in
//     discovery order (github.com/mattn/go-sqlite3).
//   - Memory: in-process slice, for tests and embedding.
//   - Multi:  fan-out to several sinks.
//
// Sinks are driven from a single goroutine; only Memory is safe for
// concurrent use.
package sink
