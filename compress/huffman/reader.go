// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"
	"io"
)

// Resetter resets a ReadCloser returned by NewReader to read from a new
// underlying reader.
type Resetter interface {
	Reset(r io.Reader) error
}

// NewReader returns a ReadCloser decompressing a stream written by Writer
// or Compress. The whole stream is read on the first call to Read.
func NewReader(r io.Reader) io.ReadCloser {
	return NewReaderStrategy(r, TreeStrategy)
}

// NewReaderStrategy is like NewReader but decodes with s.
func NewReaderStrategy(r io.Reader, s Strategy) io.ReadCloser {
	return &decompressor{r: r, strategy: s}
}

type decompressor struct {
	r        io.Reader
	strategy Strategy
	out      bytes.Reader
	done     bool
	err      error
}

func (d *decompressor) Read(p []byte) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	if !d.done {
		src, err := io.ReadAll(d.r)
		if err != nil {
			d.err = err
			return 0, err
		}
		data, err := DecompressStrategy(src, d.strategy)
		if err != nil {
			d.err = err
			return 0, err
		}
		d.out.Reset(data)
		d.done = true
	}
	return d.out.Read(p)
}

func (d *decompressor) Reset(r io.Reader) error {
	d.r = r
	d.out.Reset(nil)
	d.done = false
	d.err = nil
	return nil
}

func (d *decompressor) Close() error {
	return nil
}
