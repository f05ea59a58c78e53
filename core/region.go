/*
 * SPDX-License-Identifier: Apache-2.0
 */

// Package core holds the small shared vocabulary of the geometry packages:
// where a point lies relative to a region, and the outcome of cutting a
// region with a hyperplane.
package core

// RegionLocation describes where a point lies relative to a region.
type RegionLocation byte

const (
	// RegionInside means the point lies in the region interior.
	RegionInside RegionLocation = iota
	// RegionBoundary means the point lies on the region boundary within the
	// tolerance in effect.
	RegionBoundary
	// RegionOutside means the point lies outside the region.
	RegionOutside
)

func (l RegionLocation) String() string {
	switch l {
	case RegionInside:
		return "INSIDE"
	case RegionBoundary:
		return "BOUNDARY"
	case RegionOutside:
		return "OUTSIDE"
	}
	return "UNKNOWN"
}

// SplitLocation describes how a region or subset relates to a splitting
// hyperplane.
type SplitLocation byte

const (
	// SplitNeither means the split produced nothing on either side, e.g. when
	// the input lies on the splitter itself.
	SplitNeither SplitLocation = iota
	// SplitMinus means the input lies entirely on the minus side.
	SplitMinus
	// SplitPlus means the input lies entirely on the plus side.
	SplitPlus
	// SplitBoth means the splitter cut the input into two pieces.
	SplitBoth
)

func (l SplitLocation) String() string {
	switch l {
	case SplitNeither:
		return "NEITHER"
	case SplitMinus:
		return "MINUS"
	case SplitPlus:
		return "PLUS"
	case SplitBoth:
		return "BOTH"
	}
	return "UNKNOWN"
}

// Split is the result of cutting something with a hyperplane. Minus and Plus
// hold the pieces on each side; either may be the zero value when Location
// says that side is empty.
type Split[T any] struct {
	Minus    T
	Plus     T
	Location SplitLocation
}
