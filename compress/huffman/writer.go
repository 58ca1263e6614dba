// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"
	"errors"
	"io"
)

// ErrClosed is returned by writes to a closed Writer.
var ErrClosed = errors.New("huffman: writer is closed")

// Writer compresses everything written to it into one self-describing
// stream. The code depends on the whole input, so data is kept in memory
// and nothing reaches the underlying writer before Close.
type Writer struct {
	err error        // Last error encountered, ErrClosed after Close
	w   io.Writer    // Underlying writer
	buf bytes.Buffer // Accumulated input
}

// NewWriter creates a new Writer compressing into w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write accumulates data for compression.
func (w *Writer) Write(data []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	return w.buf.Write(data)
}

// Reset discards any state and makes w write to under.
// This allows reusing the same Writer instance for multiple compression tasks.
func (w *Writer) Reset(under io.Writer) {
	w.err = nil
	w.w = under
	w.buf.Reset()
}

// Close compresses the accumulated input and writes it out.
// Closing a closed Writer does nothing.
func (w *Writer) Close() error {
	if w.err == ErrClosed {
		return nil
	}
	if w.err != nil {
		return w.err
	}
	out, err := Compress(w.buf.Bytes())
	if err != nil {
		w.err = err
		return err
	}
	if _, err = w.w.Write(out); err != nil {
		w.err = err
		return err
	}
	w.err = ErrClosed
	w.buf.Reset()
	return nil
}
