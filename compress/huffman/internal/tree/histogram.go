// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

// Histogram is used to count the frequency of byte occurrences.
// A zero entry means the symbol does not occur.
type Histogram [256]uint64

// Count scans data once and returns its histogram.
func Count(data []byte) (h Histogram) {
	for j := 0; j < len(data); j++ {
		h[data[j]]++
	}
	return h
}

// Len returns the number of distinct symbols.
func (h *Histogram) Len() (n int) {
	for _, v := range h {
		if v != 0 {
			n++
		}
	}
	return n
}

// Total returns the number of counted bytes.
func (h *Histogram) Total() (n uint64) {
	for _, v := range h {
		n += v
	}
	return n
}

// Symbols returns the present symbols in ascending order.
func (h *Histogram) Symbols() []byte {
	syms := make([]byte, 0, 256)
	for s, v := range h {
		if v != 0 {
			syms = append(syms, byte(s))
		}
	}
	return syms
}
