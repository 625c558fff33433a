// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync/atomic"

	"github.com/bitmark-inc/avltree/fault"
)

// Limiter - grants storage for new nodes
//
// Acquire is called before a node is created and a false result
// fails the insert with an allocation failure.  Release is called
// once for every node that is removed or destroyed.
type Limiter interface {
	Acquire() bool
	Release()
}

// NodeLimit - a limiter that allows a fixed number of live nodes
//
// may be shared by several trees in different go routines
type NodeLimit struct {
	maximum uint64
	used    uint64
}

// NewNodeLimit - create a limit of n live nodes
func NewNodeLimit(n uint64) *NodeLimit {
	return &NodeLimit{
		maximum: n,
		used:    0,
	}
}

// Acquire - reserve one node if below the maximum
func (l *NodeLimit) Acquire() bool {
	for {
		n := atomic.LoadUint64(&l.used)
		if n >= l.maximum {
			return false
		}
		if atomic.CompareAndSwapUint64(&l.used, n, n+1) {
			return true
		}
	}
}

// Release - return one node
func (l *NodeLimit) Release() {
	for {
		n := atomic.LoadUint64(&l.used)
		if 0 == n {
			fault.Panic("avl: node limit released more than acquired")
		}
		if atomic.CompareAndSwapUint64(&l.used, n, n-1) {
			return
		}
	}
}

// InUse - number of nodes currently reserved
func (l *NodeLimit) InUse() uint64 {
	return atomic.LoadUint64(&l.used)
}

// Maximum - the configured limit
func (l *NodeLimit) Maximum() uint64 {
	return l.maximum
}
