/*
 * SPDX-License-Identifier: Apache-2.0
 */

// Package oned models points and intervals on the 1-sphere, the circle of
// azimuth angles. Great arcs on the 2-sphere use these types to describe
// their extent within the reference frame of their great circle.
package oned

import (
	"fmt"
	"math"

	"github.com/singhbaljit/commons-geometry/precision"
)

// Point1S is a point on the 1-sphere, identified by an azimuth angle in
// radians. The raw azimuth given at construction is preserved; the normalized
// form in [0, 2π) is computed once and cached.
type Point1S struct {
	azimuth           float64
	normalizedAzimuth float64
}

// NewPoint1S returns the point at the given azimuth in radians.
func NewPoint1S(azimuth float64) Point1S {
	return Point1S{
		azimuth:           azimuth,
		normalizedAzimuth: NormalizeAzimuth(azimuth),
	}
}

// Azimuth returns the azimuth given at construction, without normalization.
func (p Point1S) Azimuth() float64 {
	return p.azimuth
}

// NormalizedAzimuth returns the azimuth normalized into [0, 2π).
func (p Point1S) NormalizedAzimuth() float64 {
	return p.normalizedAzimuth
}

// Antipodal returns the point on the opposite side of the circle.
func (p Point1S) Antipodal() Point1S {
	return NewPoint1S(p.normalizedAzimuth + math.Pi)
}

// Distance returns the shortest angular separation between p and o, in the
// range [0, π].
func (p Point1S) Distance(o Point1S) float64 {
	d := math.Abs(p.normalizedAzimuth - o.normalizedAzimuth)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// Eq reports whether the two points are equivalent within the precision,
// comparing their separation along the circle.
func (p Point1S) Eq(o Point1S, prec precision.Context) bool {
	return prec.EqZero(p.Distance(o))
}

// IsNaN reports whether the azimuth is NaN.
func (p Point1S) IsNaN() bool {
	return math.IsNaN(p.azimuth)
}

func (p Point1S) String() string {
	return fmt.Sprintf("(%v)", p.azimuth)
}

// NormalizeAzimuth wraps an angle in radians into [0, 2π).
func NormalizeAzimuth(az float64) float64 {
	r := math.Mod(az, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	// guard against -1e-20 rounding up to exactly 2π
	if r >= 2*math.Pi {
		r = 0
	}
	return r
}
