// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of each error so that callers can
// compare directly or test the class of an error without having to
// resort to partial string matches.  The class of an error tells the
// caller whether the tree was handed something malformed, whether a
// key was already present or missing, or whether processing failed.
package fault
