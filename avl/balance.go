// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a subtree: empty = -1, leaf = 0
func height[T any](p *Node[T]) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute the cached height from the children
func updateHeight[T any](p *Node[T]) {
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
}

// left height - right height, zero for an empty subtree
func balanceFactor[T any](p *Node[T]) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// single right rotation, returns the new subtree root
//
//	     p          l
//	    / \        / \
//	   l   c  ->  a   p
//	  / \            / \
//	 a   b          b   c
func rotateRight[T any](p *Node[T]) *Node[T] {
	l := p.left
	p.left = l.right
	l.right = p

	updateHeight(p)
	updateHeight(l)
	return l
}

// single left rotation, returns the new subtree root
//
//	   p              r
//	  / \            / \
//	 a   r    ->    p   c
//	    / \        / \
//	   b   c      a   b
func rotateLeft[T any](p *Node[T]) *Node[T] {
	r := p.right
	p.right = r.left
	r.left = p

	updateHeight(p)
	updateHeight(r)
	return r
}

// right rotation with statistics and tracing
func (tree *Tree[T]) turnRight(p *Node[T]) *Node[T] {
	tree.stats.RightRotations += 1
	if nil != tree.log {
		tree.log.Debugf("rotate right at: %v  balance: %+d", p.data, balanceFactor(p))
	}
	return rotateRight(p)
}

// left rotation with statistics and tracing
func (tree *Tree[T]) turnLeft(p *Node[T]) *Node[T] {
	tree.stats.LeftRotations += 1
	if nil != tree.log {
		tree.log.Debugf("rotate left at: %v  balance: %+d", p.data, balanceFactor(p))
	}
	return rotateLeft(p)
}
