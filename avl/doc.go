// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a generic AVL balanced tree
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Elements of any type are held by value and ordered by a three-way
// comparator supplied when the tree is created.  Every node caches
// the height of its subtree (an empty subtree is -1 and a leaf is 0)
// and after each completed insert or delete the heights of the left
// and right subtrees of every node differ by at most one.
//
// Mutations are a single recursive descent; the recursive call
// returns the new root of the subtree, which the caller stores back
// into its own child link, so nodes need no parent pointers.
// Insertion chooses the rotation from the position of the new key,
// deletion chooses it from the shape of the heavier child and may
// rotate at several ancestors on the way back to the root.
//
// A duplicate key is rejected, it does not overwrite the stored
// element.  References returned by Search, First, Last and passed to
// visitors point into the tree and are only valid until the next
// Insert, Delete or Destroy.
package avl
