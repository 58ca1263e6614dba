// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// MaxCodeLen is the longest code a Table can hold.
const MaxCodeLen = 64

var (
	ErrCodeTooLong  = errors.New("huffman: code longer than 64 bits")
	ErrInvalidTable = errors.New("huffman: invalid code table")
)

// Code is a prefix code word: the low Len bits of Bits, most significant first.
type Code struct {
	Bits uint64
	Len  uint8
}

// Extend returns c with bit appended.
func (c Code) Extend(bit uint64) Code {
	return Code{Bits: c.Bits<<1 | bit&1, Len: c.Len + 1}
}

// String renders the code as a string of '0' and '1'.
func (c Code) String() string {
	buf := make([]byte, c.Len)
	for i := range buf {
		buf[i] = '0' + byte(c.Bits>>(c.Len-1-uint8(i))&1)
	}
	return string(buf)
}

// ParseCode parses a non-empty string of '0' and '1'.
func ParseCode(s string) (c Code, err error) {
	if len(s) == 0 || len(s) > MaxCodeLen {
		return c, fmt.Errorf("%w: code %q has length %d", ErrInvalidTable, s, len(s))
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			c = c.Extend(0)
		case '1':
			c = c.Extend(1)
		default:
			return Code{}, fmt.Errorf("%w: code %q is not binary", ErrInvalidTable, s)
		}
	}
	return c, nil
}

// Table maps symbols to codes and back. It is read-only once built.
type Table struct {
	codes   [256]Code // Len 0 marks an absent symbol
	symbols map[Code]byte
	maxLen  int
}

// NewTable walks root depth first, appending 0 for every left and 1 for
// every right branch. A tree made of a single leaf gets the code "0".
func NewTable(root *Node) (*Table, error) {
	if root == nil {
		return nil, ErrEmptyInput
	}
	t := &Table{symbols: make(map[Code]byte)}
	if root.IsLeaf() {
		return t, t.add(root.Symbol, Code{Len: 1})
	}

	type frame struct {
		n *Node
		c Code
	}
	stack := []frame{{n: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n == nil {
			return nil, fmt.Errorf("%w: internal node with one child", ErrInvalidTable)
		}
		if f.n.IsLeaf() {
			if err := t.add(f.n.Symbol, f.c); err != nil {
				return nil, err
			}
			continue
		}
		if f.c.Len == MaxCodeLen {
			return nil, ErrCodeTooLong
		}
		// push right first, left is visited first
		stack = append(stack, frame{f.n.Right, f.c.Extend(1)}, frame{f.n.Left, f.c.Extend(0)})
	}
	return t, nil
}

// NewTableFromCodes builds a table from bit strings supplied by the caller,
// typically one persisted next to data produced by Encode. The codes must
// form a prefix code.
func NewTableFromCodes(codes map[byte]string) (*Table, error) {
	if len(codes) == 0 {
		return nil, ErrEmptyInput
	}
	t := &Table{symbols: make(map[Code]byte, len(codes))}
	words := make([]string, 0, len(codes))
	for s, str := range codes {
		c, err := ParseCode(str)
		if err != nil {
			return nil, err
		}
		if err := t.add(s, c); err != nil {
			return nil, err
		}
		words = append(words, str)
	}
	// in sorted order a prefix is always followed by one of its extensions
	slices.Sort(words)
	for i := 1; i < len(words); i++ {
		if strings.HasPrefix(words[i], words[i-1]) {
			return nil, fmt.Errorf("%w: %q is a prefix of %q", ErrInvalidTable, words[i-1], words[i])
		}
	}
	return t, nil
}

func (t *Table) add(s byte, c Code) error {
	if t.codes[s].Len != 0 {
		return fmt.Errorf("%w: symbol %#02x appears twice", ErrInvalidTable, s)
	}
	if _, ok := t.symbols[c]; ok {
		return fmt.Errorf("%w: code %s assigned twice", ErrInvalidTable, c)
	}
	t.codes[s] = c
	t.symbols[c] = s
	if int(c.Len) > t.maxLen {
		t.maxLen = int(c.Len)
	}
	return nil
}

// Code returns the code of s.
func (t *Table) Code(s byte) (Code, bool) {
	c := t.codes[s]
	return c, c.Len != 0
}

// Symbol returns the symbol whose code is exactly c.
func (t *Table) Symbol(c Code) (byte, bool) {
	s, ok := t.symbols[c]
	return s, ok
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int { return len(t.symbols) }

// MaxLen returns the length of the longest code.
func (t *Table) MaxLen() int { return t.maxLen }

// Lengths returns the code length of every symbol, 0 for absent ones.
func (t *Table) Lengths() (lengths [256]uint32) {
	for s, c := range t.codes {
		lengths[s] = uint32(c.Len)
	}
	return lengths
}

// Codes returns the forward mapping as bit strings.
func (t *Table) Codes() map[byte]string {
	m := make(map[byte]string, len(t.symbols))
	for c, s := range t.symbols {
		m[s] = c.String()
	}
	return m
}

// Tree rebuilds a decoding tree from t. The rebuilt tree carries no weights.
// A single symbol must have the code "0" and becomes a lone leaf; any other
// table must be complete, so that every internal node has two children.
func (t *Table) Tree() (*Node, error) {
	if t.Len() == 0 {
		return nil, ErrEmptyInput
	}
	if t.Len() == 1 {
		for c, s := range t.symbols {
			if c != (Code{Len: 1}) {
				return nil, fmt.Errorf("%w: lone symbol must have code 0, got %s", ErrInvalidTable, c)
			}
			return &Node{Symbol: s}, nil
		}
	}
	if !t.Complete() {
		return nil, fmt.Errorf("%w: code is not complete", ErrInvalidTable)
	}
	root := &Node{}
	for c, s := range t.symbols {
		n := root
		for i := int(c.Len) - 1; i >= 0; i-- {
			next := &n.Left
			if c.Bits>>uint(i)&1 == 1 {
				next = &n.Right
			}
			if *next == nil {
				*next = &Node{}
			}
			n = *next
		}
		n.Symbol = s
	}
	return root, nil
}
