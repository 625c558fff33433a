// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a copy of an element into the tree
//
// an element that compares equal to one already present is rejected
// with a duplicate key error and the tree is not changed
func (tree *Tree[T]) Insert(element T) error {
	if !tree.valid() {
		return fault.ErrInvalidArgument
	}
	root, err := tree.insert(element, tree.root)
	if nil != err {
		return err
	}
	tree.root = root
	tree.count += 1
	return nil
}

// internal routine for insert, returns the possibly new subtree root
func (tree *Tree[T]) insert(element T, p *Node[T]) (*Node[T], error) {
	if nil == p { // insert new node
		return tree.newNode(element)
	}

	var err error
	switch c := tree.compare(element, p.data); {
	case c < 0:
		p.left, err = tree.insert(element, p.left)
	case c > 0:
		p.right, err = tree.insert(element, p.right)
	default:
		return p, fault.ErrDuplicateKey
	}
	if nil != err {
		// nothing below was changed
		return p, err
	}

	updateHeight(p)
	bf := balanceFactor(p)

	// the side of the heavy child holding the new key selects the case
	switch {
	case bf > 1 && tree.compare(element, p.left.data) < 0: // LL
		return tree.turnRight(p), nil

	case bf < -1 && tree.compare(element, p.right.data) > 0: // RR
		return tree.turnLeft(p), nil

	case bf > 1 && tree.compare(element, p.left.data) > 0: // LR
		p.left = tree.turnLeft(p.left)
		return tree.turnRight(p), nil

	case bf < -1 && tree.compare(element, p.right.data) < 0: // RL
		p.right = tree.turnRight(p.right)
		return tree.turnLeft(p), nil
	}
	return p, nil
}
