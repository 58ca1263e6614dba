// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package header serializes the shape of a Huffman tree so that a
// compressed stream can carry its own decoding tree.
//
// Nodes are written in pre-order, one flag bit each:
//
//	0: internal node, followed by its left and right subtrees
//	1: leaf, followed by its 8 bit symbol
//
// and the last byte is filled with zero bits.
package header

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	bitstream "github.com/dgryski/go-bitstream"

	"github.com/nrakshitha1611/Huffman-Algorithm/compress/huffman/internal/tree"
)

var ErrInvalidHeader = errors.New("huffman: invalid tree header")

// Write serializes the tree rooted at root to w.
func Write(w io.Writer, root *tree.Node) error {
	if root == nil {
		return tree.ErrEmptyInput
	}
	bw := bitstream.NewWriter(w)
	stack := []*tree.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			return fmt.Errorf("%w: internal node with one child", tree.ErrInvalidTable)
		}
		if n.IsLeaf() {
			if err := bw.WriteBit(bitstream.One); err != nil {
				return err
			}
			if err := bw.WriteByte(n.Symbol); err != nil {
				return err
			}
			continue
		}
		if err := bw.WriteBit(bitstream.Zero); err != nil {
			return err
		}
		stack = append(stack, n.Right, n.Left)
	}
	return bw.Flush(bitstream.Zero)
}

// Marshal returns the serialized tree.
func Marshal(root *tree.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses a tree written by Write. src must hold exactly one
// tree; the rebuilt nodes carry no weights.
func Unmarshal(src []byte) (*tree.Node, error) {
	p := parser{r: bitstream.NewReader(bytes.NewReader(src))}
	root, err := p.node()
	if err != nil {
		return nil, err
	}
	if want := (p.bits + 7) / 8; want != len(src) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidHeader, len(src)-want)
	}
	if rest := (8 - p.bits%8) % 8; rest != 0 {
		pad, err := p.r.ReadBits(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
		}
		if pad != 0 {
			return nil, fmt.Errorf("%w: non-zero padding", ErrInvalidHeader)
		}
	}
	return root, nil
}

type parser struct {
	r        *bitstream.BitReader
	bits     int
	internal int
	seen     [256]bool
}

func (p *parser) node() (*tree.Node, error) {
	bit, err := p.r.ReadBit()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	p.bits++
	if bit == bitstream.One {
		s, err := p.r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
		}
		p.bits += 8
		if p.seen[s] {
			return nil, fmt.Errorf("%w: symbol %#02x appears twice", ErrInvalidHeader, s)
		}
		p.seen[s] = true
		return &tree.Node{Symbol: s}, nil
	}
	// a full binary tree over at most 256 leaves has at most 255 internal nodes
	p.internal++
	if p.internal > 255 {
		return nil, fmt.Errorf("%w: too many internal nodes", ErrInvalidHeader)
	}
	left, err := p.node()
	if err != nil {
		return nil, err
	}
	right, err := p.node()
	if err != nil {
		return nil, err
	}
	return &tree.Node{Left: left, Right: right}, nil
}
