/*
 * SPDX-License-Identifier: Apache-2.0
 */

package x

// This file contains helpers for error handling in commands and tools, where
// the only sensible reaction to a failure is to report it and exit. Library
// packages return errors instead; these helpers are for the outermost layer.
// Common use cases are:
// (1) You receive an error from an external lib and would like to check/log
//     fatal. For this, use x.Check, x.Checkf. If you want to check for a
//     boolean being true, use x.AssertTrue, x.AssertTruef.
// (2) You receive an error and would like to pass it on with some stack trace
//     information. In this case, use x.Wrapf or errors.Wrapf.

import (
	"log"

	"github.com/pkg/errors"
)

// Check logs fatal if err != nil.
func Check(err error) {
	if err != nil {
		err = errors.Wrap(err, "")
		log.Fatalf("%+v", err)
	}
}

// Checkf is Check with extra info.
func Checkf(err error, format string, args ...interface{}) {
	if err != nil {
		err = errors.Wrapf(err, format, args...)
		log.Fatalf("%+v", err)
	}
}

// Check2 acts as convenience wrapper around Check, using the 2nd argument as error.
func Check2(_ interface{}, err error) {
	Check(err)
}

// Wrapf is errors.Wrapf. It keeps call sites uniform with the other helpers
// in this package.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// Ignore function is used to ignore errors deliberately, while keeping the
// linter happy.
func Ignore(_ error) {
	// Do nothing.
}

// AssertTrue asserts that b is true. Otherwise, it would log fatal.
func AssertTrue(b bool) {
	if !b {
		log.Fatalf("%+v", errors.Errorf("Assert failed"))
	}
}

// AssertTruef is AssertTrue with extra info.
func AssertTruef(b bool, format string, args ...interface{}) {
	if !b {
		log.Fatalf("%+v", errors.Errorf(format, args...))
	}
}

// Fatalf logs fatal.
func Fatalf(format string, args ...interface{}) {
	log.Fatalf("%+v", errors.Errorf(format, args...))
}
