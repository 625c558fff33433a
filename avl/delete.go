// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes a specific item from the tree
func (tree *Tree[T]) Delete(key T) error {
	if !tree.valid() {
		return fault.ErrInvalidArgument
	}
	root, err := tree.delete(key, tree.root)
	if nil != err {
		return err
	}
	tree.root = root
	tree.count -= 1
	return nil
}

// internal delete routine, returns the possibly new subtree root
func (tree *Tree[T]) delete(key T, p *Node[T]) (*Node[T], error) {
	if nil == p { // key not in tree
		return nil, fault.ErrKeyNotFound
	}

	var err error
	switch c := tree.compare(key, p.data); {
	case c < 0:
		p.left, err = tree.delete(key, p.left)
	case c > 0:
		p.right, err = tree.delete(key, p.right)
	default: // found: delete p
		if nil == p.left || nil == p.right {
			child := p.left
			if nil == child {
				child = p.right
			}
			if nil != tree.log {
				tree.log.Debugf("delete: %v  height: %d", p.data, p.height)
			}
			tree.freeNode(p)
			return child, nil
		}

		// two children: take over the in-order successor's element
		// then remove the successor from the right subtree
		successor := p.right.first()
		if nil != tree.log {
			tree.log.Debugf("delete: %v  replaced by successor: %v", p.data, successor.data)
		}
		p.data = successor.data
		p.right, err = tree.delete(p.data, p.right)
	}
	if nil != err {
		return p, err
	}
	return tree.rebalance(p), nil
}

// delete: tree balancer
//
// the deleted key is gone so the shape of the heavy child decides
// between a single and a double rotation
func (tree *Tree[T]) rebalance(p *Node[T]) *Node[T] {
	updateHeight(p)
	bf := balanceFactor(p)

	switch {
	case bf > 1 && balanceFactor(p.left) >= 0: // LL
		return tree.turnRight(p)

	case bf > 1: // LR
		p.left = tree.turnLeft(p.left)
		return tree.turnRight(p)

	case bf < -1 && balanceFactor(p.right) <= 0: // RR
		return tree.turnLeft(p)

	case bf < -1: // RL
		p.right = tree.turnRight(p.right)
		return tree.turnLeft(p)
	}
	return p
}
