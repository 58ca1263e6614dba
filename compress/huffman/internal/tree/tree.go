// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package tree builds Huffman trees from byte histograms and derives
// the prefix code tables used by the bit packer.
package tree

import (
	"container/heap"
	"errors"
)

// ErrEmptyInput is returned when there is nothing to build a code for.
var ErrEmptyInput = errors.New("huffman: empty input")

// Node is a Huffman tree node. A node without children is a leaf
// carrying Symbol; an internal node always has both children.
type Node struct {
	Left, Right *Node
	Weight      uint64
	Symbol      byte
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// entry is a queued node. seq orders equal weights by insertion.
type entry struct {
	n   *Node
	seq int
}

type nodeQueue []entry

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].n.Weight != q[j].n.Weight {
		return q[i].n.Weight < q[j].n.Weight
	}
	return q[i].seq < q[j].seq
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) {
	*q = append(*q, x.(entry))
}

func (q *nodeQueue) Pop() any {
	old := *q
	e := old[len(old)-1]
	*q = old[:len(old)-1]
	return e
}

// Build returns the root of a Huffman tree for h.
//
// Leaves are queued in ascending symbol order. On equal weights the node
// queued earlier is taken first, and of every merged pair the node taken
// first becomes the left child, so the result only depends on h.
// A histogram with one symbol yields a single leaf.
func Build(h *Histogram) (*Node, error) {
	q := make(nodeQueue, 0, len(h))
	seq := 0
	for s, w := range h {
		if w == 0 {
			continue
		}
		q = append(q, entry{n: &Node{Symbol: byte(s), Weight: w}, seq: seq})
		seq++
	}
	if len(q) == 0 {
		return nil, ErrEmptyInput
	}
	heap.Init(&q)
	for q.Len() > 1 {
		left := heap.Pop(&q).(entry)
		right := heap.Pop(&q).(entry)
		heap.Push(&q, entry{
			n: &Node{
				Weight: left.n.Weight + right.n.Weight,
				Left:   left.n,
				Right:  right.n,
			},
			seq: seq,
		})
		seq++
	}
	return q[0].n, nil
}
