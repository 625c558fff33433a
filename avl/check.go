// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the cached heights, balance, ordering and count
func (tree *Tree[T]) Check() error {
	if !tree.valid() {
		return fault.ErrInvalidArgument
	}
	n, _, err := tree.check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker
//
// every key in the subtree must lie strictly between low and high
// (nil means unbounded), returns node count and actual height
func (tree *Tree[T]) check(p *Node[T], low *T, high *T) (int, int, error) {
	if nil == p {
		return 0, -1, nil
	}
	if nil != low && tree.compare(*low, p.data) >= 0 {
		return 0, 0, fault.ErrOrdering
	}
	if nil != high && tree.compare(p.data, *high) >= 0 {
		return 0, 0, fault.ErrOrdering
	}

	ln, lh, err := tree.check(p.left, low, &p.data)
	if nil != err {
		return 0, 0, err
	}
	rn, rh, err := tree.check(p.right, &p.data, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if h != p.height {
		return 0, 0, fault.ErrHeightMismatch
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, 0, fault.ErrUnbalanced
	}
	return 1 + ln + rn, h, nil
}
