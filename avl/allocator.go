// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// most reclaimed nodes kept by one tree
const poolLimit = 1024

// Node - a node in the tree
type Node[T any] struct {
	left   *Node[T] // left sub-tree
	right  *Node[T] // right sub-tree
	data   T        // copy of the element
	height int      // longest path to a leaf: leaf = 0
}

// allocate a new leaf, reuses reclaimed nodes if any are available
//
// the limiter is consulted first so a refusal leaves the tree and
// the pool untouched
func (tree *Tree[T]) newNode(element T) (*Node[T], error) {
	if nil != tree.limiter && !tree.limiter.Acquire() {
		return nil, fault.ErrAllocationFailure
	}

	p := tree.pool
	if nil == p {
		if 0 != tree.free {
			fault.Panicf("avl: pool corrupt: %d free nodes but empty list", tree.free)
		}
		return &Node[T]{
			data:   element,
			height: 0,
		}, nil
	}

	tree.pool = p.left
	tree.free -= 1

	p.left = nil // ensure freelist pointer is cleared
	p.right = nil
	p.data = element
	p.height = 0
	return p, nil
}

// reclaim a node and keep it in the pool
func (tree *Tree[T]) freeNode(p *Node[T]) {
	if nil != tree.limiter {
		tree.limiter.Release()
	}

	var zero T
	p.right = nil
	p.data = zero
	p.height = 0

	if tree.free >= poolLimit {
		p.left = nil
		return
	}
	p.left = tree.pool // use as free list pointer
	tree.pool = p
	tree.free += 1
}
