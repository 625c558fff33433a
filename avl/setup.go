// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"unsafe"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// Comparator - three-way ordering of two elements
//
// returns negative if a < b, zero if a == b and positive if a > b,
// must be a consistent total order
type Comparator[T any] func(a T, b T) int

// Stats - counts of single rotations performed since creation, a
// double rotation counts once in each direction
type Stats struct {
	LeftRotations  uint64
	RightRotations uint64
}

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root    *Node[T]
	count   int
	compare Comparator[T]
	limiter Limiter
	log     *logger.L
	stats   Stats

	// reclaimed nodes linked through left
	pool *Node[T]
	free int
}

// New - create an initially empty tree
//
// fails if the comparator is missing or if T occupies no storage
func New[T any](compare Comparator[T]) (*Tree[T], error) {
	if nil == compare {
		return nil, fault.ErrInvalidArgument
	}
	var zero T
	if 0 == unsafe.Sizeof(zero) {
		return nil, fault.ErrInvalidArgument
	}
	return &Tree[T]{
		root:    nil,
		count:   0,
		compare: compare,
	}, nil
}

// Destroy - release every node
//
// a nil tree is ignored, any later operation on the tree fails
// with an invalid argument error
func (tree *Tree[T]) Destroy() {
	if nil == tree {
		return
	}
	if nil != tree.log {
		tree.log.Debugf("destroy: %d nodes", tree.count)
	}
	tree.destroy(tree.root)
	tree.root = nil
	tree.count = 0
	tree.pool = nil
	tree.free = 0
	tree.compare = nil
}

// internal: post-order release of a subtree
func (tree *Tree[T]) destroy(p *Node[T]) {
	if nil == p {
		return
	}
	tree.destroy(p.left)
	tree.destroy(p.right)

	var zero T
	p.left = nil
	p.right = nil
	p.data = zero
	if nil != tree.limiter {
		tree.limiter.Release()
	}
}

// SetLimiter - control node creation, nil removes any limit
//
// must be set while the tree is empty so that every acquired node is
// released to the same limiter
func (tree *Tree[T]) SetLimiter(limiter Limiter) error {
	if !tree.valid() || 0 != tree.count {
		return fault.ErrInvalidArgument
	}
	tree.limiter = limiter
	return nil
}

// SetLogger - trace rotations and deletions to a logger channel,
// nil disables tracing
func (tree *Tree[T]) SetLogger(log *logger.L) {
	if nil == tree {
		return
	}
	tree.log = log
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree || nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	if nil == tree {
		return 0
	}
	return tree.count
}

// Height - height of the root, -1 for an empty tree
func (tree *Tree[T]) Height() int {
	if nil == tree {
		return -1
	}
	return height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	if nil == tree {
		return nil
	}
	return tree.root
}

// Stats - rotation counters
func (tree *Tree[T]) Stats() Stats {
	if nil == tree {
		return Stats{}
	}
	return tree.stats
}

// a tree can be used until destroyed
func (tree *Tree[T]) valid() bool {
	return nil != tree && nil != tree.compare
}

// Data - reference to the element held by a node
func (p *Node[T]) Data() *T {
	return &p.data
}

// Left - left subtree, nil if empty
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - right subtree, nil if empty
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Height - cached height of a node, -1 for nil
func (p *Node[T]) Height() int {
	return height(p)
}

// Balance - height of left subtree minus height of right subtree
func (p *Node[T]) Balance() int {
	return balanceFactor(p)
}

// ChildrenAtDepth - returns all nodes at a specific depth below a node
func (p *Node[T]) ChildrenAtDepth(depth uint) []*Node[T] {
	if nil == p {
		return nil
	}
	if 0 == depth {
		return []*Node[T]{p}
	}
	nodes := []*Node[T]{}
	nodes = append(nodes, p.left.ChildrenAtDepth(depth-1)...)
	nodes = append(nodes, p.right.ChildrenAtDepth(depth-1)...)
	return nodes
}
