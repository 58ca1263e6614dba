// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package bitpack packs Huffman codes into a byte-aligned buffer and
// unpacks them again.
//
// A packed buffer is laid out as
//
//	| padding length, 1..8 | code bits, MSB first | padding zero bits |
//
// The padding length is 8 rather than 0 when the code bits already end on
// a byte boundary, so the header byte is never 0.
package bitpack

import (
	"bytes"

	"github.com/icza/bitio"

	"github.com/nrakshitha1611/Huffman-Algorithm/compress/huffman/internal/tree"
)

// Padding returns the number of zero bits appended after n code bits.
func Padding(n uint64) uint8 {
	return uint8(8 - n%8)
}

// Encode packs the code of every byte of data. Nothing is returned when a
// byte has no code in t.
func Encode(data []byte, t *tree.Table) ([]byte, error) {
	if t == nil || t.Len() == 0 {
		return nil, tree.ErrEmptyInput
	}
	var n uint64
	for _, b := range data {
		c, ok := t.Code(b)
		if !ok {
			return nil, UnknownSymbolError(b)
		}
		n += uint64(c.Len)
	}
	extra := Padding(n)

	buf := bytes.NewBuffer(make([]byte, 0, 1+(n+uint64(extra))/8))
	w := bitio.NewWriter(buf)
	w.TryWriteBits(uint64(extra), 8)
	for _, b := range data {
		c, _ := t.Code(b)
		w.TryWriteBits(c.Bits, c.Len)
	}
	w.TryWriteBits(0, extra)
	if w.TryError != nil {
		return nil, w.TryError
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
