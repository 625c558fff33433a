// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrAllocationFailure        = ProcessError("node allocation failed")
	ErrConfigurationFileMissing = NotFoundError("configuration file is missing")
	ErrCountMismatch            = ProcessError("node count does not match tree")
	ErrDuplicateKey             = ExistsError("duplicate key")
	ErrHeightMismatch           = ProcessError("cached height does not match subtrees")
	ErrInvalidArgument          = InvalidError("invalid argument")
	ErrInvalidConfiguration     = InvalidError("configuration result is not a table")
	ErrInvalidKey               = InvalidError("key is not an integer")
	ErrInvalidLoggerChannel     = InvalidError("invalid logger channel")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrKeyNotFound              = NotFoundError("key not found")
	ErrOrdering                 = ProcessError("keys are out of order")
	ErrUnbalanced               = ProcessError("balance factor out of range")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
