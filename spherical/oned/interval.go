/*
 * SPDX-License-Identifier: Apache-2.0
 */

package oned

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/singhbaljit/commons-geometry/core"
	"github.com/singhbaljit/commons-geometry/precision"
)

// AngularInterval is a closed connected subset of the 1-sphere: the set of
// azimuths from min to min+size, traversed counter-clockwise. The size never
// exceeds 2π; an interval whose endpoints are equivalent represents the full
// circle.
type AngularInterval struct {
	min  float64 // normalized into [0, 2π)
	size float64 // (0, 2π]
	full bool
}

// FullAngularInterval returns the interval covering the entire circle.
func FullAngularInterval() AngularInterval {
	return AngularInterval{min: 0, size: 2 * math.Pi, full: true}
}

// IntervalOf returns the interval from a to b, wrapping b counter-clockwise
// above a. Equivalent endpoints produce the full circle.
func IntervalOf(a, b Point1S, prec precision.Context) AngularInterval {
	if a.Eq(b, prec) {
		return FullAngularInterval()
	}
	size := NormalizeAzimuth(b.NormalizedAzimuth() - a.NormalizedAzimuth())
	if size == 0 {
		return FullAngularInterval()
	}
	return AngularInterval{min: a.NormalizedAzimuth(), size: size}
}

// ConvexIntervalOf is IntervalOf restricted to convex intervals: the angular
// size must not exceed π within the precision. Oversized input returns
// core.ErrDegenerateGeometry.
func ConvexIntervalOf(a, b Point1S, prec precision.Context) (AngularInterval, error) {
	iv := IntervalOf(a, b, prec)
	if !iv.full && prec.Gt(iv.size, math.Pi) {
		return AngularInterval{}, errors.Wrapf(core.ErrDegenerateGeometry,
			"interval from %v to %v is not convex: size %v exceeds pi", a, b, iv.size)
	}
	return iv, nil
}

// IsFull reports whether the interval covers the whole circle.
func (iv AngularInterval) IsFull() bool {
	return iv.full
}

// Size returns the angular size of the interval in radians.
func (iv AngularInterval) Size() float64 {
	return iv.size
}

// Min returns the start point of the interval.
func (iv AngularInterval) Min() Point1S {
	return NewPoint1S(iv.min)
}

// Max returns the end point of the interval. Its raw azimuth is min+size and
// may exceed 2π; the normalized form wraps.
func (iv AngularInterval) Max() Point1S {
	return NewPoint1S(iv.min + iv.size)
}

// Midpoint returns the point halfway along the interval.
func (iv AngularInterval) Midpoint() Point1S {
	return NewPoint1S(iv.min + iv.size/2)
}

// ClassifyAzimuth locates an azimuth relative to the interval. Full intervals
// classify every azimuth as inside.
func (iv AngularInterval) ClassifyAzimuth(az float64, prec precision.Context) core.RegionLocation {
	if iv.full {
		return core.RegionInside
	}
	t := NormalizeAzimuth(az - iv.min)
	if prec.EqZero(t) || prec.EqZero(2*math.Pi-t) || prec.Eq(t, iv.size) {
		return core.RegionBoundary
	}
	if t < iv.size {
		return core.RegionInside
	}
	return core.RegionOutside
}

// ContainsAzimuth reports whether the azimuth lies inside or on the boundary
// of the interval.
func (iv AngularInterval) ContainsAzimuth(az float64, prec precision.Context) bool {
	return iv.ClassifyAzimuth(az, prec) != core.RegionOutside
}

// Negate returns the image of the interval under azimuth negation. The start
// of the result is the negated end of the input, so the interval still runs
// counter-clockwise.
func (iv AngularInterval) Negate() AngularInterval {
	if iv.full {
		return iv
	}
	return AngularInterval{min: NormalizeAzimuth(-(iv.min + iv.size)), size: iv.size}
}

// Eq reports whether the intervals are equivalent within the precision.
func (iv AngularInterval) Eq(o AngularInterval, prec precision.Context) bool {
	if iv.full || o.full {
		return iv.full == o.full
	}
	return iv.Min().Eq(o.Min(), prec) && prec.Eq(iv.size, o.size)
}

// SplitDiameter splits the interval by the diameter whose positive half ends
// at center+π/2. The minus piece is the part of the interval within the open
// half-circle (center-π/2, center+π/2), the plus piece the rest. Pieces
// thinner than the tolerance collapse onto the adjacent side.
//
// The receiver must be convex (size at most π) or full; those are the only
// interval shapes great arcs produce, and they guarantee each side of the
// split stays connected.
func (iv AngularInterval) SplitDiameter(center float64, prec precision.Context) core.Split[AngularInterval] {
	w1 := center - math.Pi/2 // start of the minus window

	if iv.full {
		minus := AngularInterval{min: NormalizeAzimuth(w1), size: math.Pi}
		plus := AngularInterval{min: NormalizeAzimuth(w1 + math.Pi), size: math.Pi}
		return core.Split[AngularInterval]{Minus: minus, Plus: plus, Location: core.SplitBoth}
	}

	// Work in t-space measured from w1: the minus window is (0, π) mod 2π.
	a := NormalizeAzimuth(iv.min - w1)
	b := a + iv.size

	cut := math.NaN()
	for _, c := range []float64{math.Pi, 2 * math.Pi, 3 * math.Pi} {
		if prec.Gt(c, a) && prec.Lt(c, b) {
			cut = c
			break
		}
	}

	if math.IsNaN(cut) {
		// no interior crossing; the whole interval lies on one side
		mid := NormalizeAzimuth((a + b) / 2)
		if mid < math.Pi {
			return core.Split[AngularInterval]{Minus: iv, Location: core.SplitMinus}
		}
		return core.Split[AngularInterval]{Plus: iv, Location: core.SplitPlus}
	}

	first := AngularInterval{min: iv.min, size: cut - a}
	second := AngularInterval{min: NormalizeAzimuth(iv.min + (cut - a)), size: b - cut}

	m1 := math.Mod((a+cut)/2, 2*math.Pi)
	if m1 < math.Pi {
		return core.Split[AngularInterval]{Minus: first, Plus: second, Location: core.SplitBoth}
	}
	return core.Split[AngularInterval]{Minus: second, Plus: first, Location: core.SplitBoth}
}

func (iv AngularInterval) String() string {
	if iv.full {
		return "AngularInterval[full]"
	}
	return fmt.Sprintf("AngularInterval[min= %v, max= %v]", iv.min, iv.min+iv.size)
}
