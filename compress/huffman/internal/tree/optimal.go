// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import "golang.org/x/exp/slices"

type symCount struct {
	sym   byte
	count uint64
}

// OptimalLengths returns minimum-redundancy code lengths for h, computed
// without building a tree by the in-place method of Moffat and Katajainen.
// Check http://hjemmesider.diku.dk/~jyrki/Paper/WADS95.pdf .
// Absent symbols get length 0; a lone symbol gets length 1.
func OptimalLengths(h *Histogram) (lengths [256]uint32) {
	counts := make([]symCount, 0, len(h))
	for s, v := range h {
		if v != 0 {
			counts = append(counts, symCount{sym: byte(s), count: v})
		}
	}
	// the method expects non-increasing weights
	slices.SortStableFunc(counts, func(a, b symCount) int {
		switch {
		case a.count > b.count:
			return -1
		case a.count < b.count:
			return 1
		}
		return 0
	})
	w := make([]uint64, len(counts))
	for i, v := range counts {
		w[i] = v.count
	}
	minRedundancyLens(w)
	for i, v := range w {
		lengths[counts[i].sym] = uint32(v)
	}
	return lengths
}

// Cost returns the weighted path length sum(h[s] * lengths[s]).
func Cost(h *Histogram, lengths [256]uint32) (cost uint64) {
	for s, v := range h {
		cost += v * uint64(lengths[s])
	}
	return cost
}

// minRedundancyLens replaces the non-increasing weights in w by their code
// lengths and returns the longest one.
func minRedundancyLens(w []uint64) uint64 {
	n := len(w)
	if n == 0 {
		return 0
	}
	if n == 1 {
		w[0] = 1
		return 1
	}
	// phase 1: build the tree, internal nodes keep their parent index
	leaf := n - 1
	root := n - 1
	for next := n - 1; next >= 1; next-- {
		// first child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			w[next] = w[root]
			w[root] = uint64(next)
			root--
		} else {
			w[next] = w[leaf]
			leaf--
		}
		// second child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			w[next] += w[root]
			w[root] = uint64(next)
			root--
		} else {
			w[next] += w[leaf]
			leaf--
		}
	}
	// phase 2: internal node depths
	w[1] = 0
	for next := 2; next <= n-1; next++ {
		w[next] = w[w[next]] + 1
	}
	// phase 3: leaf depths
	avail := 1
	used := 0
	depth := uint64(0)
	root = 1
	next := 0
	for avail > 0 {
		for ; root < n && w[root] == depth; root++ {
			used++
		}
		for ; avail > used; avail-- {
			w[next] = depth
			next++
		}
		avail = 2 * used
		depth++
		used = 0
	}
	return w[n-1]
}
