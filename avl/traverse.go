// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Visitor - called once for each element during a traversal
//
// the element may be modified in place, but not in a way that
// changes its ordering
type Visitor[T any] func(element *T)

// Order - the sequence in which a traversal visits nodes
type Order int

// traversal orders
const (
	PreOrder  Order = iota // node, left, right
	InOrder   Order = iota // left, node, right
	PostOrder Order = iota // left, right, node
)

// String - name of an order
func (order Order) String() string {
	switch order {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	default:
		return "unknown"
	}
}

// TraversePreorder - visit node, then left, then right
func (tree *Tree[T]) TraversePreorder(visit Visitor[T]) error {
	return tree.Traverse(PreOrder, visit)
}

// TraverseInorder - visit every element in ascending order
func (tree *Tree[T]) TraverseInorder(visit Visitor[T]) error {
	return tree.Traverse(InOrder, visit)
}

// TraversePostorder - visit left, then right, then node
func (tree *Tree[T]) TraversePostorder(visit Visitor[T]) error {
	return tree.Traverse(PostOrder, visit)
}

// Traverse - visit every element in the given order
func (tree *Tree[T]) Traverse(order Order, visit Visitor[T]) error {
	if !tree.valid() || nil == visit {
		return fault.ErrInvalidArgument
	}
	switch order {
	case PreOrder, InOrder, PostOrder:
	default:
		return fault.ErrInvalidArgument
	}
	forEach(tree.root, order, visit)
	return nil
}

// single recursive walk for all three orders
func forEach[T any](p *Node[T], order Order, visit Visitor[T]) {
	if nil == p {
		return
	}
	if PreOrder == order {
		visit(&p.data)
	}
	forEach(p.left, order, visit)
	if InOrder == order {
		visit(&p.data)
	}
	forEach(p.right, order, visit)
	if PostOrder == order {
		visit(&p.data)
	}
}
