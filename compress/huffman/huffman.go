// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman implements a lossless Huffman prefix codec for in-memory
// byte sequences.
//
// Compress produces a self-describing stream
//
//	| uvarint n | n bytes: tree | padding length, 1..8 | code bits | padding |
//
// that Decompress reverses without any other input. Encode, DecodeTable and
// DecodeTree work on the bare packed form and leave it to the caller to keep
// the code table or tree next to the data.
package huffman

import (
	"encoding/binary"
	"fmt"

	"github.com/nrakshitha1611/Huffman-Algorithm/compress/huffman/internal/bitpack"
	"github.com/nrakshitha1611/Huffman-Algorithm/compress/huffman/internal/header"
	"github.com/nrakshitha1611/Huffman-Algorithm/compress/huffman/internal/tree"
)

type (
	Histogram           = tree.Histogram
	Node                = tree.Node
	Table               = tree.Table
	Code                = tree.Code
	UnknownSymbolError  = bitpack.UnknownSymbolError
	CorruptPaddingError = bitpack.CorruptPaddingError
	InvalidCodeError    = bitpack.InvalidCodeError
)

var (
	ErrEmptyInput    = tree.ErrEmptyInput
	ErrInvalidTable  = tree.ErrInvalidTable
	ErrCodeTooLong   = tree.ErrCodeTooLong
	ErrInvalidHeader = header.ErrInvalidHeader
)

var (
	Count             = tree.Count
	BuildTree         = tree.Build
	NewTable          = tree.NewTable
	NewTableFromCodes = tree.NewTableFromCodes
)

// Strategy selects how packed bits are turned back into symbols.
type Strategy int

const (
	// TreeStrategy walks the Huffman tree bit by bit.
	TreeStrategy Strategy = iota
	// TableStrategy matches a growing prefix against the inverse code table.
	TableStrategy
)

func (s Strategy) String() string {
	switch s {
	case TreeStrategy:
		return "tree"
	case TableStrategy:
		return "table"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy parses "tree" or "table".
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "tree":
		return TreeStrategy, nil
	case "table":
		return TableStrategy, nil
	}
	return 0, fmt.Errorf("huffman: unknown strategy %q", name)
}

// BuildTable counts data and returns its Huffman tree and code table.
func BuildTable(data []byte) (*Node, *Table, error) {
	h := tree.Count(data)
	root, err := tree.Build(&h)
	if err != nil {
		return nil, nil, err
	}
	t, err := tree.NewTable(root)
	if err != nil {
		return nil, nil, err
	}
	return root, t, nil
}

// Encode packs data with t. The result starts with the padding length byte.
func Encode(data []byte, t *Table) ([]byte, error) {
	return bitpack.Encode(data, t)
}

// DecodeTable unpacks src produced by Encode using the code table.
func DecodeTable(src []byte, t *Table) ([]byte, error) {
	return bitpack.DecodeTable(src, t)
}

// DecodeTree unpacks src produced by Encode by walking the tree.
func DecodeTree(src []byte, root *Node) ([]byte, error) {
	return bitpack.DecodeTree(src, root)
}

// Compress returns the self-describing encoding of data.
// Empty data compresses to empty output.
func Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}
	root, t, err := BuildTable(data)
	if err != nil {
		return nil, err
	}
	hdr, err := header.Marshal(root)
	if err != nil {
		return nil, err
	}
	payload, err := bitpack.Encode(data, t)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, binary.MaxVarintLen64+len(hdr)+len(payload))
	out = binary.AppendUvarint(out, uint64(len(hdr)))
	out = append(out, hdr...)
	return append(out, payload...), nil
}

// Decompress reverses Compress, decoding with the tree strategy.
func Decompress(src []byte) ([]byte, error) {
	return DecompressStrategy(src, TreeStrategy)
}

// DecompressStrategy reverses Compress, decoding with s.
func DecompressStrategy(src []byte, s Strategy) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}
	n, k := binary.Uvarint(src)
	if k <= 0 || n > uint64(len(src)-k) {
		return nil, fmt.Errorf("%w: bad length prefix", ErrInvalidHeader)
	}
	root, err := header.Unmarshal(src[k : k+int(n)])
	if err != nil {
		return nil, err
	}
	body := src[k+int(n):]
	switch s {
	case TreeStrategy:
		return bitpack.DecodeTree(body, root)
	case TableStrategy:
		t, err := tree.NewTable(root)
		if err != nil {
			return nil, err
		}
		return bitpack.DecodeTable(body, t)
	}
	return nil, fmt.Errorf("huffman: unknown strategy %v", s)
}
