// SPDX-License-Identifier: MIT

package sink

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/upword/word"
)

// Text writes one word per line.
type Text struct {
	w      *bufio.Writer
	c      io.Closer // nil when the underlying writer is not owned
	closed bool
}

// NewTextFile creates (or truncates) path.
func NewTextFile(path string) (*Text, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("sink: create %s: %w", path, err)
	}

	return &Text{w: bufio.NewWriter(f), c: f}, nil
}

// NewText writes to w without taking ownership of it.
func NewText(w io.Writer) *Text {
	return &Text{w: bufio.NewWriter(w)}
}

// Put writes w and a newline, then flushes.
func (t *Text) Put(_ context.Context, w word.Word) error {
	if t.closed {
		return ErrClosed
	}
	if _, err := t.w.WriteString(string(w) + "\n"); err != nil {
		return fmt.Errorf("sink: write %q: %w", w, err)
	}
	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("sink: flush: %w", err)
	}

	return nil
}

// Close flushes and closes the file, if owned. Closing twice is a no-op.
func (t *Text) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("sink: flush: %w", err)
	}
	if t.c != nil {
		return t.c.Close()
	}

	return nil
}
