/*
 * SPDX-License-Identifier: Apache-2.0
 */

// Package precision provides floating-point comparisons that treat values
// within a configured tolerance as equivalent. Geometric constructions pass a
// Context around so that every classification in one computation agrees on
// what "equal" means.
package precision

import (
	"fmt"
	"math"
)

// Context compares float64 values using an absolute epsilon. Two values are
// equivalent when they differ by no more than the epsilon. The zero value
// performs exact comparisons.
type Context struct {
	eps float64
}

// OfEpsilon returns a Context with the given absolute tolerance. It panics if
// eps is negative or NaN since that is always a programming error.
func OfEpsilon(eps float64) Context {
	if math.IsNaN(eps) || eps < 0 {
		panic(fmt.Sprintf("invalid precision epsilon: %v", eps))
	}
	return Context{eps: eps}
}

// Eps returns the absolute tolerance used by this context.
func (c Context) Eps() float64 {
	return c.eps
}

// Eq reports whether a and b are equivalent within the tolerance.
func (c Context) Eq(a, b float64) bool {
	return math.Abs(a-b) <= c.eps
}

// EqZero reports whether a is equivalent to zero.
func (c Context) EqZero(a float64) bool {
	return math.Abs(a) <= c.eps
}

// Lt reports whether a is strictly less than b after applying the tolerance.
func (c Context) Lt(a, b float64) bool {
	return a < b && !c.Eq(a, b)
}

// Lte reports whether a is less than or equivalent to b.
func (c Context) Lte(a, b float64) bool {
	return a <= b || c.Eq(a, b)
}

// Gt reports whether a is strictly greater than b after applying the
// tolerance.
func (c Context) Gt(a, b float64) bool {
	return a > b && !c.Eq(a, b)
}

// Gte reports whether a is greater than or equivalent to b.
func (c Context) Gte(a, b float64) bool {
	return a >= b || c.Eq(a, b)
}

// Sign returns 0 when a is equivalent to zero, -1 when negative and +1 when
// positive.
func (c Context) Sign(a float64) int {
	if c.EqZero(a) {
		return 0
	}
	if a < 0 {
		return -1
	}
	return 1
}

// Compare returns -1, 0 or +1 as a is less than, equivalent to, or greater
// than b.
func (c Context) Compare(a, b float64) int {
	if c.Eq(a, b) {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

func (c Context) String() string {
	return fmt.Sprintf("precision.Context[eps=%v]", c.eps)
}
