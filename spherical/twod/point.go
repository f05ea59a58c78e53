/*
 * SPDX-License-Identifier: Apache-2.0
 */

// Package twod models points, great circles, great arcs and convex regions
// on the 2-sphere. Directions are unit vectors; locations are addressed by
// azimuth (angle from +I around +K, in [0, 2π)) and polar angle (angle from
// +K, in [0, π]).
package twod

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/singhbaljit/commons-geometry/precision"
	"github.com/singhbaljit/commons-geometry/spherical/oned"
)

// Point2S is a point on the 2-sphere. The zero value is not a valid point;
// use the constructors or the axis constants.
type Point2S struct {
	vec     r3.Vector
	azimuth float64
	polar   float64
}

// Axis reference points.
var (
	PlusI  = NewPoint2S(0, math.Pi/2)
	MinusI = NewPoint2S(math.Pi, math.Pi/2)
	PlusJ  = NewPoint2S(math.Pi/2, math.Pi/2)
	MinusJ = NewPoint2S(1.5*math.Pi, math.Pi/2)
	PlusK  = NewPoint2S(0, 0)
	MinusK = NewPoint2S(0, math.Pi)
)

// NewPoint2S returns the point at the given azimuth and polar angles in
// radians. The angles are normalized: polar is folded into [0, π], shifting
// the azimuth by π when the fold reflects the direction, and azimuth is
// wrapped into [0, 2π).
func NewPoint2S(azimuth, polar float64) Point2S {
	az := azimuth
	p := oned.NormalizeAzimuth(polar)
	if p > math.Pi {
		p = 2*math.Pi - p
		az += math.Pi
	}
	az = oned.NormalizeAzimuth(az)

	vec := s2.PointFromLatLng(s2.LatLng{Lat: s1.Angle(math.Pi/2 - p), Lng: s1.Angle(az)})
	return Point2S{vec: vec.Vector, azimuth: az, polar: p}
}

// Point2SFromVector returns the point in the direction of v. The vector does
// not need to be normalized. A zero vector produces a NaN point.
func Point2SFromVector(v r3.Vector) Point2S {
	if v == (r3.Vector{}) {
		nan := math.NaN()
		return Point2S{vec: r3.Vector{X: nan, Y: nan, Z: nan}, azimuth: nan, polar: nan}
	}
	n := v.Normalize()
	ll := s2.LatLngFromPoint(s2.Point{Vector: n})
	return Point2S{
		vec:     n,
		azimuth: oned.NormalizeAzimuth(ll.Lng.Radians()),
		polar:   math.Pi/2 - ll.Lat.Radians(),
	}
}

// Point2SFromS2 converts an s2 point.
func Point2SFromS2(p s2.Point) Point2S {
	return Point2SFromVector(p.Vector)
}

// S2 returns the point as an s2 point.
func (p Point2S) S2() s2.Point {
	return s2.Point{Vector: p.vec}
}

// Vector returns the unit vector of the point.
func (p Point2S) Vector() r3.Vector {
	return p.vec
}

// Azimuth returns the azimuth angle in [0, 2π).
func (p Point2S) Azimuth() float64 {
	return p.azimuth
}

// Polar returns the polar angle in [0, π].
func (p Point2S) Polar() float64 {
	return p.polar
}

// Distance returns the angular separation between the points.
func (p Point2S) Distance(o Point2S) s1.Angle {
	return p.vec.Angle(o.vec)
}

// Slerp interpolates along the great circle between p and o. t=0 yields p,
// t=1 yields o; values outside [0, 1] extrapolate along the circle.
func (p Point2S) Slerp(o Point2S, t float64) Point2S {
	r := s2.Interpolate(t, p.S2(), o.S2())
	return Point2SFromS2(r)
}

// Antipodal returns the point diametrically opposite p.
func (p Point2S) Antipodal() Point2S {
	return Point2SFromVector(p.vec.Mul(-1))
}

// Eq reports whether the points are equivalent within the precision,
// comparing their angular separation.
func (p Point2S) Eq(o Point2S, prec precision.Context) bool {
	return prec.EqZero(p.Distance(o).Radians())
}

// IsNaN reports whether any coordinate of the point is NaN.
func (p Point2S) IsNaN() bool {
	return math.IsNaN(p.azimuth) || math.IsNaN(p.polar)
}

// IsFinite reports whether all coordinates are finite.
func (p Point2S) IsFinite() bool {
	return !p.IsNaN() && !math.IsInf(p.azimuth, 0) && !math.IsInf(p.polar, 0)
}

func (p Point2S) String() string {
	return fmt.Sprintf("(%v, %v)", p.azimuth, p.polar)
}

// ComparePolarAzimuth orders points by polar angle and then by azimuth, both
// ascending. It gives boundary paths a canonical starting vertex.
func ComparePolarAzimuth(a, b Point2S) int {
	if a.polar < b.polar {
		return -1
	}
	if a.polar > b.polar {
		return 1
	}
	if a.azimuth < b.azimuth {
		return -1
	}
	if a.azimuth > b.azimuth {
		return 1
	}
	return 0
}
