// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import "golang.org/x/exp/slices"

// KraftSum evaluates the Kraft-McMillan sum, sum(2^-length), of the given
// code lengths. Zero lengths are ignored.
// https://en.wikipedia.org/wiki/Kraft%E2%80%93McMillan_inequality
//
// The sum is returned as its integer part and whether a fractional part is
// left over: a prefix code has whole == 0, or whole == 1 with no fraction,
// and a complete code has exactly whole == 1 with no fraction.
func KraftSum(lengths []uint32) (whole int, fraction bool) {
	if len(lengths) == 0 {
		return 0, false
	}
	maxLen := slices.Max(lengths)
	lenCounts := make([]int, maxLen+1)
	for _, l := range lengths {
		lenCounts[l]++
	}
	// -> sum(lenCounts[l] * 2^-l)
	// fold the deepest level into its parent level, halving the units,
	// until only units of 2^0 are left
	units := 0
	for l := int(maxLen); l > 0; l-- {
		units += lenCounts[l]
		if units%2 != 0 {
			fraction = true
		}
		units /= 2
	}
	return units, fraction
}

// KraftOK reports whether the code lengths of t satisfy Kraft's inequality.
func (t *Table) KraftOK() bool {
	lengths := t.Lengths()
	whole, fraction := KraftSum(lengths[:])
	return whole == 0 || whole == 1 && !fraction
}

// Complete reports whether the Kraft sum of t is exactly 1, i.e. every
// bit sequence starts with some code of t.
func (t *Table) Complete() bool {
	lengths := t.Lengths()
	whole, fraction := KraftSum(lengths[:])
	return whole == 1 && !fraction
}
