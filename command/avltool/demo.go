// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
)

// one step of a demonstration
type demoStep struct {
	title  string
	insert []int
	delete []int
}

// a demonstration runs its steps against a single fresh tree
type demoScenario struct {
	title string
	steps []demoStep
}

var demoScenarios = []demoScenario{
	{
		title: "rotations",
		steps: []demoStep{
			{title: "right-right: single left rotation", insert: []int{10, 20, 30}},
			{title: "left-left: single right rotation", insert: []int{5, 3}},
			{title: "rebalance right subtree", insert: []int{28, 25}},
			{title: "rebalance left subtree", insert: []int{8, 6}},
			{title: "delete a leaf", delete: []int{3}},
			{title: "delete a leaf without rotation", delete: []int{30}},
			{title: "delete with rebalancing", delete: []int{10}},
		},
	},
	{
		title: "double rotations",
		steps: []demoStep{
			{title: "right-left: rotate child right then node left", insert: []int{10, 30, 20}},
			{title: "left-right: rotate child left then node right", insert: []int{5, 8}},
		},
	},
	{
		title: "cascading delete",
		steps: []demoStep{
			{title: "build", insert: []int{5, 3, 10, 2, 4, 8, 11, 1, 7, 9, 12, 6}},
			{title: "delete 4: rotations at two levels", delete: []int{4}},
		},
	},
}

// replay all of the scenarios showing the tree after each step
func runDemo(w io.Writer) error {
	for _, scenario := range demoScenarios {
		if err := runScenario(w, scenario); nil != err {
			return err
		}
	}
	return nil
}

func runScenario(w io.Writer, scenario demoScenario) error {
	tree, err := newTree(0)
	if nil != err {
		return err
	}
	defer tree.Destroy()

	fmt.Fprintf(w, "=== %s\n", scenario.title)

	for i, step := range scenario.steps {
		fmt.Fprintf(w, "\n--- step %d: %s\n", i+1, step.title)
		for _, k := range step.insert {
			if err := tree.Insert(k); nil != err {
				return err
			}
			fmt.Fprintf(w, "insert: %d\n", k)
		}
		for _, k := range step.delete {
			if err := tree.Delete(k); nil != err {
				return err
			}
			fmt.Fprintf(w, "delete: %d\n", k)
		}
		if err := report(w, tree, true); nil != err {
			return err
		}
		if err := tree.Check(); nil != err {
			return err
		}
	}
	fmt.Fprintf(w, "\n")
	return nil
}
