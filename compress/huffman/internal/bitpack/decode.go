// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package bitpack

import (
	"bytes"

	"github.com/icza/bitio"

	"github.com/nrakshitha1611/Huffman-Algorithm/compress/huffman/internal/tree"
)

// payload checks the padding header of src and returns a reader positioned
// on the first code bit together with the number of code bits.
func payload(src []byte) (*bitio.Reader, int64, error) {
	if len(src) == 0 {
		return nil, 0, CorruptPaddingError(-1)
	}
	extra := int64(src[0])
	bits := 8 * int64(len(src)-1)
	if extra < 1 || extra > 8 || extra > bits {
		return nil, 0, CorruptPaddingError(src[0])
	}
	return bitio.NewReader(bytes.NewReader(src[1:])), bits - extra, nil
}

// DecodeTable unpacks src by matching a growing prefix against the
// inverse mapping of t. Padding bits are not inspected.
func DecodeTable(src []byte, t *tree.Table) ([]byte, error) {
	if t == nil || t.Len() == 0 {
		return nil, tree.ErrEmptyInput
	}
	r, n, err := payload(src)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 2*len(src))
	maxLen := t.MaxLen()
	var cur tree.Code
	for i := int64(0); i < n; i++ {
		bit, err := r.ReadBits(1)
		if err != nil {
			return nil, err
		}
		cur = cur.Extend(bit)
		if s, ok := t.Symbol(cur); ok {
			out = append(out, s)
			cur = tree.Code{}
			continue
		}
		if int(cur.Len) >= maxLen {
			return nil, InvalidCodeError(i)
		}
	}
	if cur.Len != 0 {
		return nil, InvalidCodeError(n)
	}
	return out, nil
}

// DecodeTree unpacks src by walking root: 0 goes left, 1 goes right and
// every leaf emits its symbol. A lone leaf root decodes each 0 bit to its
// symbol. Padding bits are not inspected.
func DecodeTree(src []byte, root *tree.Node) ([]byte, error) {
	if root == nil {
		return nil, tree.ErrEmptyInput
	}
	r, n, err := payload(src)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 2*len(src))
	if root.IsLeaf() {
		for i := int64(0); i < n; i++ {
			one, err := r.ReadBool()
			if err != nil {
				return nil, err
			}
			if one {
				return nil, InvalidCodeError(i)
			}
			out = append(out, root.Symbol)
		}
		return out, nil
	}

	node := root
	for i := int64(0); i < n; i++ {
		one, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		if one {
			node = node.Right
		} else {
			node = node.Left
		}
		if node == nil {
			return nil, InvalidCodeError(i)
		}
		if node.IsLeaf() {
			out = append(out, node.Symbol)
			node = root
		}
	}
	if node != root {
		return nil, InvalidCodeError(n)
	}
	return out, nil
}
