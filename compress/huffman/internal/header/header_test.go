// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package header

import (
	"bytes"
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/nrakshitha1611/Huffman-Algorithm/compress/huffman/internal/tree"
)

func codes(t testing.TB, root *tree.Node) map[byte]string {
	tab, err := tree.NewTable(root)
	if err != nil {
		t.Fatal(err)
	}
	return tab.Codes()
}

func TestSingleLeaf(t *testing.T) {
	src, err := Marshal(&tree.Node{Symbol: 'a'})
	if err != nil {
		t.Fatal(err)
	}
	// 1 01100001 + 7 padding bits
	if expected := []byte{0xb0, 0x80}; !bytes.Equal(src, expected) {
		t.Fatalf("expected %x got %x", expected, src)
	}
	root, err := Unmarshal(src)
	if err != nil {
		t.Fatal(err)
	}
	if !root.IsLeaf() || root.Symbol != 'a' {
		t.Fatalf("expected a lone leaf, got %+v", root)
	}
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		data := make([]byte, 1+r.Intn(4096))
		alphabet := 1 + r.Intn(256)
		for j := range data {
			data[j] = byte(r.Intn(1 + r.Intn(alphabet)))
		}
		h := tree.Count(data)
		root, err := tree.Build(&h)
		if err != nil {
			t.Fatal(err)
		}
		src, err := Marshal(root)
		if err != nil {
			t.Fatal(err)
		}
		// 1 bit per node, 8 bits per leaf
		if want := (2*h.Len() - 1 + 8*h.Len() + 7) / 8; len(src) != want {
			t.Fatalf("expected %d header bytes for %d symbols, got %d", want, h.Len(), len(src))
		}
		parsed, err := Unmarshal(src)
		if err != nil {
			t.Fatal(err)
		}
		if expected, got := codes(t, root), codes(t, parsed); !reflect.DeepEqual(expected, got) {
			t.Fatalf("expected %v got %v", expected, got)
		}
	}
}

func TestInvalid(t *testing.T) {
	valid, err := Marshal(&tree.Node{
		Left:  &tree.Node{Symbol: 'a'},
		Right: &tree.Node{Symbol: 'b'},
	})
	if err != nil {
		t.Fatal(err)
	}
	// 0 1 01100001 1 01100010 + 5 padding bits
	if expected := []byte{0x58, 0x6c, 0x40}; !bytes.Equal(valid, expected) {
		t.Fatalf("expected %x got %x", expected, valid)
	}

	cases := map[string][]byte{
		"empty":            nil,
		"truncated":        valid[:2],
		"trailing byte":    append(append([]byte(nil), valid...), 0),
		"non-zero padding": {0x58, 0x6c, 0x41},
		"duplicate symbol": {0x58, 0x6c, 0x20}, // 0 1 'a' 1 'a'
		"internal only":    bytes.Repeat([]byte{0}, 64),
	}
	for name, src := range cases {
		if _, err := Unmarshal(src); !errors.Is(err, ErrInvalidHeader) {
			t.Fatalf("%s: expected ErrInvalidHeader, got %v", name, err)
		}
	}
}

func TestWriteIncompleteTree(t *testing.T) {
	_, err := Marshal(&tree.Node{Left: &tree.Node{Symbol: 'a'}})
	if !errors.Is(err, tree.ErrInvalidTable) {
		t.Fatalf("expected ErrInvalidTable, got %v", err)
	}
	if _, err := Marshal(nil); !errors.Is(err, tree.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}
