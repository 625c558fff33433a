// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// the right subtree is drawn above its parent and the left below,
// each node shows its element, height and balance factor
// returns the number of levels drawn
func (tree *Tree[T]) Print(w io.Writer) int {
	if nil == tree {
		return 0
	}
	return printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the tree
func printTree[T any](w io.Writer, p *Node[T], prefix string, br branch) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v h:%d b:%+d\n", p.data, p.height, balanceFactor(p))
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
