// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// logger channel given to the tree for rotation tracing
const treeLogTag = "avl"

// create an empty tree of integers with an optional node limit
func newTree(maxNodes uint64) (*avl.Tree[int], error) {
	tree, err := avl.New[int](cmp.Compare[int])
	if nil != err {
		return nil, err
	}
	tree.SetLogger(logger.New(treeLogTag))

	if maxNodes > 0 {
		if err := tree.SetLimiter(avl.NewNodeLimit(maxNodes)); nil != err {
			tree.Destroy()
			return nil, err
		}
	}
	return tree, nil
}

// apply the configured operations to a new tree and report on it
//
// per-key failures (duplicate, missing, over the node limit) are
// reported and processing continues; any other error stops the run
func runScript(w io.Writer, log *logger.L, options *Configuration, extra []int) error {

	tree, err := newTree(options.MaxNodes)
	if nil != err {
		return err
	}
	defer tree.Destroy()

	keys := make([]int, 0, len(options.Insert)+len(extra))
	keys = append(keys, options.Insert...)
	keys = append(keys, extra...)

	log.Infof("insert: %d keys  max nodes: %d", len(keys), options.MaxNodes)
	for _, k := range keys {
		err := tree.Insert(k)
		switch {
		case nil == err:
			fmt.Fprintf(w, "insert: %d\n", k)
		case fault.IsErrExists(err), fault.ErrAllocationFailure == err:
			log.Warnf("insert: %d  error: %s", k, err)
			fmt.Fprintf(w, "insert: %d: %s\n", k, err)
		default:
			return err
		}
	}

	log.Infof("delete: %d keys", len(options.Delete))
	for _, k := range options.Delete {
		err := tree.Delete(k)
		switch {
		case nil == err:
			fmt.Fprintf(w, "delete: %d\n", k)
		case fault.IsErrNotFound(err):
			log.Warnf("delete: %d  error: %s", k, err)
			fmt.Fprintf(w, "delete: %d: %s\n", k, err)
		default:
			return err
		}
	}

	for _, k := range options.Search {
		if nil == tree.Search(k) {
			fmt.Fprintf(w, "search: %d: not found\n", k)
		} else {
			fmt.Fprintf(w, "search: %d: found\n", k)
		}
	}

	if err := report(w, tree, options.Print); nil != err {
		return err
	}

	if err := tree.Check(); nil != err {
		log.Criticalf("tree check failed: %s", err)
		return err
	}
	log.Infof("tree check passed: %d nodes", tree.Count())
	return nil
}

// summary, the three traversals and optionally the drawing
func report(w io.Writer, tree *avl.Tree[int], draw bool) error {
	stats := tree.Stats()
	fmt.Fprintf(w, "count: %d  height: %d  rotations: left=%d right=%d\n",
		tree.Count(), tree.Height(), stats.LeftRotations, stats.RightRotations)

	for _, order := range []avl.Order{avl.PreOrder, avl.InOrder, avl.PostOrder} {
		s, err := listing(tree, order)
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "%s: %s\n", order, s)
	}

	if draw && !tree.IsEmpty() {
		tree.Print(w)
	}
	return nil
}

// space separated keys in traversal order
func listing(tree *avl.Tree[int], order avl.Order) (string, error) {
	keys := make([]string, 0, tree.Count())
	err := tree.Traverse(order, func(k *int) {
		keys = append(keys, fmt.Sprintf("%d", *k))
	})
	if nil != err {
		return "", err
	}
	return strings.Join(keys, " "), nil
}
