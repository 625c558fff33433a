// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the element with the lowest key value
func (tree *Tree[T]) First() *T {
	if !tree.valid() || nil == tree.root {
		return nil
	}
	return &tree.root.first().data
}

// internal: lowest node in a sub-tree
func (p *Node[T]) first() *Node[T] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the element with the highest key value
func (tree *Tree[T]) Last() *T {
	if !tree.valid() || nil == tree.root {
		return nil
	}
	return &tree.root.last().data
}

// internal: highest node in a sub-tree
func (p *Node[T]) last() *Node[T] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}
