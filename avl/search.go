// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
//
// returns a reference to the stored element, or nil if the key is
// not present
func (tree *Tree[T]) Search(key T) *T {
	if !tree.valid() {
		return nil
	}
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.data); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return &p.data
		}
	}
	return nil
}

// Contains - true if the key is present
func (tree *Tree[T]) Contains(key T) bool {
	return nil != tree.Search(key)
}
