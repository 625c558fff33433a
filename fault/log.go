// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// channel name used for last-gasp messages
const panicTag = "PANIC"

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
//
// the logger package must already be initialised
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New(panicTag)
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and release the channel
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Critical - log a simple string with the caller's location
func Critical(message string) {
	if _, file, line, ok := runtime.Caller(1); ok {
		internalCriticalf("(%q:%d) "+message, file, line)
	} else {
		internalCriticalf("%s", message)
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	f, a := withCaller(format, arguments...)
	internalCriticalf(f, a...)
}

// Panicf - panic with a formatted message after logging it
func Panicf(format string, arguments ...interface{}) {
	f, a := withCaller(format, arguments...)
	internalCriticalf(f, a...)
	Panic("abort, see last messages in log file")
}

// Panic - final panic
func Panic(message string) {
	internalCriticalf("%s", message)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(message)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	internalCriticalf("%s", s)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(s)
}

// prefix a format with the location of the caller's caller
func withCaller(format string, arguments ...interface{}) (string, []interface{}) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return format, arguments
	}
	a := make([]interface{}, 2, 2+len(arguments))
	a[0] = file
	a[1] = line
	a = append(a, arguments...)
	return "(%q:%d) " + format, a
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
