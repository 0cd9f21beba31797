// SPDX-License-Identifier: MIT

package sink

import (
	"context"
	"errors"
	"sync"

	"github.com/katalvlaran/upword/word"
)

// ErrClosed is returned by Put after Close.
var ErrClosed = errors.New("sink: closed")

// Sink receives every discovered word in discovery order.
type Sink interface {
	Put(ctx context.Context, w word.Word) error
	Close() error
}

// Multi fans every word out to all sinks.
type Multi []Sink

// Put forwards w to every sink and joins their errors.
func (m Multi) Put(ctx context.Context, w word.Word) error {
	var errs []error
	for _, s := range m {
		if err := s.Put(ctx, w); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Close closes every sink and joins their errors.
func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Memory keeps words in memory.
type Memory struct {
	mu     sync.Mutex
	words  []word.Word
	closed bool
}

// Put appends w.
func (m *Memory) Put(_ context.Context, w word.Word) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.words = append(m.words, w)

	return nil
}

// Close marks the sink closed; words stay readable.
func (m *Memory) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	return nil
}

// Words returns a copy of the stored words.
func (m *Memory) Words() []word.Word {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]word.Word, len(m.words))
	copy(out, m.words)

	return out
}
