// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"cmp"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

func newIntTree(t *testing.T) *avl.Tree[int] {
	tree, err := avl.New[int](cmp.Compare[int])
	require.Nil(t, err, "new tree")
	require.NotNil(t, tree, "new tree")
	return tree
}

func walk(t *testing.T, tree *avl.Tree[int], order avl.Order) []int {
	list := []int{}
	err := tree.Traverse(order, func(n *int) {
		list = append(list, *n)
	})
	require.Nil(t, err, "traverse %s", order)
	return list
}

func insertAll(t *testing.T, tree *avl.Tree[int], keys ...int) {
	for _, k := range keys {
		require.Nil(t, tree.Insert(k), "insert %d", k)
	}
}

func deleteAll(t *testing.T, tree *avl.Tree[int], keys ...int) {
	for _, k := range keys {
		require.Nil(t, tree.Delete(k), "delete %d", k)
	}
}

func TestRotationScenario(t *testing.T) {
	tree := newIntTree(t)
	tree.SetLogger(logger.New(logCategory))

	steps := []struct {
		insert   []int
		delete   []int
		inOrder  []int
		preOrder []int
		stats    avl.Stats
	}{
		{ // RR: single left rotation at 10
			insert:   []int{10, 20, 30},
			inOrder:  []int{10, 20, 30},
			preOrder: []int{20, 10, 30},
			stats:    avl.Stats{LeftRotations: 1, RightRotations: 0},
		},
		{ // LL: single right rotation at 10
			insert:   []int{5, 3},
			inOrder:  []int{3, 5, 10, 20, 30},
			preOrder: []int{20, 5, 3, 10, 30},
			stats:    avl.Stats{LeftRotations: 1, RightRotations: 1},
		},
		{
			insert:   []int{28, 25},
			inOrder:  []int{3, 5, 10, 20, 25, 28, 30},
			preOrder: []int{20, 5, 3, 10, 28, 25, 30},
			stats:    avl.Stats{LeftRotations: 1, RightRotations: 2},
		},
		{
			insert:   []int{8, 6},
			inOrder:  []int{3, 5, 6, 8, 10, 20, 25, 28, 30},
			preOrder: []int{20, 5, 3, 8, 6, 10, 28, 25, 30},
			stats:    avl.Stats{LeftRotations: 1, RightRotations: 3},
		},
		{ // leaf, then a left rotation at 5
			delete:   []int{3},
			inOrder:  []int{5, 6, 8, 10, 20, 25, 28, 30},
			preOrder: []int{20, 8, 5, 6, 10, 28, 25, 30},
			stats:    avl.Stats{LeftRotations: 2, RightRotations: 3},
		},
		{
			delete:   []int{30},
			inOrder:  []int{5, 6, 8, 10, 20, 25, 28},
			preOrder: []int{20, 8, 5, 6, 10, 28, 25},
			stats:    avl.Stats{LeftRotations: 2, RightRotations: 3},
		},
		{ // left-right rotation at 8
			delete:   []int{10},
			inOrder:  []int{5, 6, 8, 20, 25, 28},
			preOrder: []int{20, 6, 5, 8, 28, 25},
			stats:    avl.Stats{LeftRotations: 3, RightRotations: 4},
		},
	}

	for i, s := range steps {
		insertAll(t, tree, s.insert...)
		deleteAll(t, tree, s.delete...)

		assert.Equal(t, s.inOrder, walk(t, tree, avl.InOrder), "%d: in-order", i)
		assert.Equal(t, s.preOrder, walk(t, tree, avl.PreOrder), "%d: pre-order", i)
		assert.Equal(t, s.stats, tree.Stats(), "%d: rotations", i)
		assert.Equal(t, len(s.inOrder), tree.Count(), "%d: count", i)
		assert.Nil(t, tree.Check(), "%d: check", i)
	}

	assert.Equal(t, []int{5, 8, 6, 25, 28, 20}, walk(t, tree, avl.PostOrder), "post-order")
	assert.Equal(t, 2, tree.Height(), "height")

	found := tree.Search(25)
	require.NotNil(t, found, "search 25")
	assert.Equal(t, 25, *found, "search 25")
	assert.Nil(t, tree.Search(999), "search 999")
}

func TestInsertRightLeft(t *testing.T) {
	tree := newIntTree(t)
	insertAll(t, tree, 10, 30, 20)

	assert.Equal(t, []int{20, 10, 30}, walk(t, tree, avl.PreOrder), "pre-order")
	assert.Equal(t, avl.Stats{LeftRotations: 1, RightRotations: 1}, tree.Stats(), "rotations")
	assert.Equal(t, 1, tree.Height(), "height")
}

func TestInsertLeftRight(t *testing.T) {
	tree := newIntTree(t)
	insertAll(t, tree, 30, 10, 20)

	assert.Equal(t, []int{20, 10, 30}, walk(t, tree, avl.PreOrder), "pre-order")
	assert.Equal(t, avl.Stats{LeftRotations: 1, RightRotations: 1}, tree.Stats(), "rotations")
}

func TestDeleteTwoChildren(t *testing.T) {
	tree := newIntTree(t)
	insertAll(t, tree, 20, 10, 30, 25)

	root := tree.Root()
	deleteAll(t, tree, 20)

	// payload replaced in place by the successor
	assert.True(t, root == tree.Root(), "root node moved")
	assert.Equal(t, 25, *tree.Root().Data(), "root data")
	assert.Equal(t, []int{25, 10, 30}, walk(t, tree, avl.PreOrder), "pre-order")
	assert.Nil(t, tree.Check(), "check")
}

func TestDeleteOneChild(t *testing.T) {
	tree := newIntTree(t)
	insertAll(t, tree, 20, 10, 30, 35)
	deleteAll(t, tree, 30)

	assert.Equal(t, []int{20, 10, 35}, walk(t, tree, avl.PreOrder), "pre-order")
	assert.Nil(t, tree.Check(), "check")
}

// a deletion that needs a rotation below the root and then a double
// rotation at the root
func TestDeleteCascade(t *testing.T) {
	tree := newIntTree(t)
	insertAll(t, tree, 5, 3, 10, 2, 4, 8, 11, 1, 7, 9, 12, 6)

	require.Equal(t, avl.Stats{}, tree.Stats(), "no rotations while building")
	require.Equal(t, 4, tree.Height(), "height")
	require.Equal(t, -1, tree.Root().Balance(), "root balance")

	deleteAll(t, tree, 4)

	assert.Equal(t, []int{8, 5, 2, 1, 3, 7, 6, 10, 9, 11, 12}, walk(t, tree, avl.PreOrder), "pre-order")
	assert.Equal(t, avl.Stats{LeftRotations: 1, RightRotations: 2}, tree.Stats(), "rotations")
	assert.Equal(t, 3, tree.Height(), "height")
	assert.Nil(t, tree.Check(), "check")
}

func TestDuplicateKey(t *testing.T) {
	tree := newIntTree(t)
	insertAll(t, tree, 10, 20, 30, 40, 50)

	before := walk(t, tree, avl.PreOrder)
	stats := tree.Stats()

	err := tree.Insert(30)
	assert.Equal(t, fault.ErrDuplicateKey, err, "duplicate insert")
	assert.True(t, fault.IsErrExists(err), "duplicate class")

	assert.Equal(t, 5, tree.Count(), "count")
	assert.Equal(t, before, walk(t, tree, avl.PreOrder), "structure changed")
	assert.Equal(t, stats, tree.Stats(), "rotations")
}

func TestDeleteMissingKey(t *testing.T) {
	tree := newIntTree(t)

	err := tree.Delete(1)
	assert.Equal(t, fault.ErrKeyNotFound, err, "delete from empty tree")

	insertAll(t, tree, 10, 20, 30)
	before := walk(t, tree, avl.PreOrder)

	err = tree.Delete(15)
	assert.Equal(t, fault.ErrKeyNotFound, err, "delete missing key")
	assert.True(t, fault.IsErrNotFound(err), "not found class")
	assert.Equal(t, before, walk(t, tree, avl.PreOrder), "structure changed")
	assert.Equal(t, 3, tree.Count(), "count")
}

func TestRoundTrip(t *testing.T) {
	const n = 200
	tree := newIntTree(t)

	// multiplicative permutation of 0..n-1
	for i := 0; i < n; i += 1 {
		insertAll(t, tree, (i*37)%n)
	}
	require.Equal(t, n, tree.Count(), "count")
	require.Nil(t, tree.Check(), "check")

	for i := 0; i < n; i += 1 {
		k := (i * 91) % n
		deleteAll(t, tree, k)
		require.Nil(t, tree.Check(), "check after delete %d", k)
	}

	assert.True(t, tree.IsEmpty(), "not empty")
	assert.Equal(t, -1, tree.Height(), "height")
	for i := 0; i < n; i += 1 {
		assert.Nil(t, tree.Search(i), "search %d", i)
	}
}

func TestSearchReference(t *testing.T) {
	type record struct {
		id    int
		count int
	}
	tree, err := avl.New[record](func(a record, b record) int {
		return cmp.Compare(a.id, b.id)
	})
	require.Nil(t, err, "new tree")

	for i := 1; i <= 10; i += 1 {
		require.Nil(t, tree.Insert(record{id: i}), "insert %d", i)
	}

	r := tree.Search(record{id: 7})
	require.NotNil(t, r, "search 7")
	r.count = 99

	assert.Equal(t, 99, tree.Search(record{id: 7}).count, "update through reference")

	// visitors may update non-key fields too
	err = tree.TraversePostorder(func(r *record) {
		r.count += 1
	})
	require.Nil(t, err, "traverse")
	assert.Equal(t, 100, tree.Search(record{id: 7}).count, "update through visitor")
	assert.Equal(t, 1, tree.First().count, "first")
	assert.Equal(t, 10, tree.Last().id, "last")
}

func TestInvalidArguments(t *testing.T) {
	tree, err := avl.New[int](nil)
	assert.Nil(t, tree, "tree without comparator")
	assert.Equal(t, fault.ErrInvalidArgument, err, "nil comparator")

	empty, err := avl.New[struct{}](func(a struct{}, b struct{}) int { return 0 })
	assert.Nil(t, empty, "zero sized element")
	assert.True(t, fault.IsErrInvalid(err), "zero sized element")

	var none *avl.Tree[int]
	assert.Equal(t, fault.ErrInvalidArgument, none.Insert(1), "insert into nil")
	assert.Equal(t, fault.ErrInvalidArgument, none.Delete(1), "delete from nil")
	assert.Nil(t, none.Search(1), "search nil")
	assert.Equal(t, fault.ErrInvalidArgument, none.TraverseInorder(func(*int) {}), "traverse nil")
	assert.Equal(t, 0, none.Count(), "count nil")
	assert.True(t, none.IsEmpty(), "empty nil")
	none.Destroy()

	tree = newIntTree(t)
	assert.Equal(t, fault.ErrInvalidArgument, tree.TraversePreorder(nil), "nil visitor")
	assert.Equal(t, fault.ErrInvalidArgument, tree.Traverse(avl.Order(99), func(*int) {}), "bad order")
	assert.Equal(t, "unknown", avl.Order(99).String(), "order name")
}

func TestTraverseEmpty(t *testing.T) {
	tree := newIntTree(t)
	calls := 0
	for _, order := range []avl.Order{avl.PreOrder, avl.InOrder, avl.PostOrder} {
		assert.Nil(t, tree.Traverse(order, func(*int) { calls += 1 }), "traverse %s", order)
	}
	assert.Equal(t, 0, calls, "visitor called")
	assert.Nil(t, tree.First(), "first")
	assert.Nil(t, tree.Last(), "last")
}

func TestDestroy(t *testing.T) {
	tree := newIntTree(t)
	insertAll(t, tree, 1, 2, 3, 4, 5)

	tree.Destroy()

	assert.True(t, tree.IsEmpty(), "not empty")
	assert.Equal(t, 0, tree.Count(), "count")
	assert.Equal(t, fault.ErrInvalidArgument, tree.Insert(6), "insert after destroy")
	assert.Equal(t, fault.ErrInvalidArgument, tree.Delete(1), "delete after destroy")
	assert.Nil(t, tree.Search(1), "search after destroy")
	assert.Equal(t, fault.ErrInvalidArgument, tree.Check(), "check after destroy")
}
