/*
 * SPDX-License-Identifier: Apache-2.0
 */

package twod

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/pkg/errors"

	"github.com/singhbaljit/commons-geometry/core"
	"github.com/singhbaljit/commons-geometry/precision"
	"github.com/singhbaljit/commons-geometry/spherical/oned"
)

// GreatCircle is an oriented great circle: the intersection of the sphere
// with a plane through the origin. The pole is the plane's unit normal; the
// minus side of the circle is the hemisphere the pole points into. The u and
// v axes span the circle's plane, with u marking azimuth zero and
// v = pole × u marking azimuth π/2.
type GreatCircle struct {
	pole r3.Vector
	u    r3.Vector
	v    r3.Vector
	prec precision.Context
}

// GreatCircleFromPole returns the great circle with the given pole. The pole
// does not need to be normalized. A pole with zero norm within the precision
// returns ErrDegenerateGeometry.
func GreatCircleFromPole(pole r3.Vector, prec precision.Context) (GreatCircle, error) {
	if prec.EqZero(pole.Norm()) {
		return GreatCircle{}, errors.Wrapf(core.ErrDegenerateGeometry,
			"cannot create great circle from pole %v", pole)
	}
	p := pole.Normalize()
	u := p.Ortho()
	return GreatCircle{pole: p, u: u, v: p.Cross(u), prec: prec}, nil
}

// GreatCircleFromPoints returns the great circle through a and b, oriented so
// that the circle runs from a toward b in the azimuth-increasing direction,
// with a at azimuth zero. The points must not be equivalent or antipodal
// within the precision.
func GreatCircleFromPoints(a, b Point2S, prec precision.Context) (GreatCircle, error) {
	if a.Eq(b, prec) {
		return GreatCircle{}, errors.Wrapf(core.ErrDegenerateGeometry,
			"cannot create great circle from equivalent points %v and %v", a, b)
	}
	if a.Antipodal().Eq(b, prec) {
		return GreatCircle{}, errors.Wrapf(core.ErrDegenerateGeometry,
			"cannot create great circle from antipodal points %v and %v", a, b)
	}
	u := a.Vector()
	pole := u.Cross(b.Vector()).Normalize()
	return GreatCircle{pole: pole, u: u, v: pole.Cross(u), prec: prec}, nil
}

// Pole returns the unit normal of the circle's plane.
func (c GreatCircle) Pole() r3.Vector {
	return c.pole
}

// U returns the unit vector at azimuth zero.
func (c GreatCircle) U() r3.Vector {
	return c.u
}

// V returns the unit vector at azimuth π/2.
func (c GreatCircle) V() r3.Vector {
	return c.v
}

// PolePoint returns the pole as a point on the sphere. It is the centroid of
// the hemisphere on the minus side of the circle.
func (c GreatCircle) PolePoint() Point2S {
	return Point2SFromVector(c.pole)
}

// Precision returns the precision context the circle was created with.
func (c GreatCircle) Precision() precision.Context {
	return c.prec
}

// Offset returns the signed angular distance of the point from the circle.
// Points on the minus side have negative offsets, points on the plus side
// positive offsets; the magnitude ranges up to π/2 at the poles.
func (c GreatCircle) Offset(pt Point2S) float64 {
	return c.offsetVector(pt.Vector())
}

// OffsetAngle returns Offset as an s1.Angle.
func (c GreatCircle) OffsetAngle(pt Point2S) s1.Angle {
	return s1.Angle(c.Offset(pt))
}

func (c GreatCircle) offsetVector(v r3.Vector) float64 {
	return c.pole.Angle(v).Radians() - math.Pi/2
}

// Classify returns the side of the circle the point lies on, treating points
// within the precision of the circle as on it.
func (c GreatCircle) Classify(pt Point2S) core.Side {
	offset := c.Offset(pt)
	switch c.prec.Sign(offset) {
	case 0:
		return core.SideOn
	case -1:
		return core.SideMinus
	default:
		return core.SidePlus
	}
}

// Contains reports whether the point lies on the circle within the precision.
func (c GreatCircle) Contains(pt Point2S) bool {
	return c.Classify(pt) == core.SideOn
}

// SimilarOrientation reports whether the circles' poles point into the same
// hemisphere.
func (c GreatCircle) SimilarOrientation(o GreatCircle) bool {
	return c.pole.Dot(o.pole) > 0
}

// Project returns the closest point on the circle to the given point. The
// projections of the two poles are ambiguous; the point at azimuth zero is
// returned for them.
func (c GreatCircle) Project(pt Point2S) Point2S {
	v := pt.Vector()
	rejected := v.Sub(c.pole.Mul(v.Dot(c.pole)))
	if rejected == (r3.Vector{}) {
		return Point2SFromVector(c.u)
	}
	return Point2SFromVector(rejected)
}

// AzimuthOf returns the azimuth of the point's projection onto the circle, in
// [0, 2π).
func (c GreatCircle) AzimuthOf(pt Point2S) float64 {
	v := pt.Vector()
	return oned.NormalizeAzimuth(math.Atan2(v.Dot(c.v), v.Dot(c.u)))
}

// VectorAt returns the unit vector on the circle at the given azimuth.
func (c GreatCircle) VectorAt(az float64) r3.Vector {
	return c.u.Mul(math.Cos(az)).Add(c.v.Mul(math.Sin(az)))
}

// PointAt returns the point on the circle at the given azimuth.
func (c GreatCircle) PointAt(az float64) Point2S {
	return Point2SFromVector(c.VectorAt(az))
}

// Reverse returns the same circle with the opposite orientation. The u axis
// is retained, so azimuths measure from the same point in the opposite
// direction.
func (c GreatCircle) Reverse() GreatCircle {
	return GreatCircle{pole: c.pole.Mul(-1), u: c.u, v: c.v.Mul(-1), prec: c.prec}
}

// Transform returns the circle mapped through the transform. The pole and u
// axis are transformed and v is recomputed, keeping the minus side of the
// result the image of the minus side of the input.
func (c GreatCircle) Transform(t Transform2S) GreatCircle {
	pole := t.ApplyVector(c.pole)
	u := t.ApplyVector(c.u)
	return GreatCircle{pole: pole, u: u, v: pole.Cross(u), prec: c.prec}
}

// AngleBetween returns the angle between the poles of the circles. It equals
// the exterior angle at the circles' intersections.
func (c GreatCircle) AngleBetween(o GreatCircle) s1.Angle {
	return c.pole.Angle(o.pole)
}

// AngleAt returns the angle between the circles, signed by orientation at the
// reference point: negative when the rotation from this circle's pole to the
// other's is clockwise as seen from ref.
func (c GreatCircle) AngleAt(o GreatCircle, ref Point2S) float64 {
	angle := c.AngleBetween(o).Radians()
	if ref.Vector().Dot(c.pole.Cross(o.pole)) < 0 {
		return -angle
	}
	return angle
}

// Intersection returns one of the two antipodal points where the circles
// cross. The returned point is in the direction pole × other pole; the other
// intersection is its antipode. ok is false when the circles coincide within
// this circle's precision, in either orientation.
func (c GreatCircle) Intersection(o GreatCircle) (Point2S, bool) {
	cross := c.pole.Cross(o.pole)
	if c.prec.EqZero(cross.Norm()) {
		return Point2S{}, false
	}
	return Point2SFromVector(cross), true
}

// Span returns the full circle as an arc.
func (c GreatCircle) Span() GreatArc {
	return GreatArc{circle: c, interval: oned.FullAngularInterval()}
}

// ArcBetween returns the arc from a to b, both assumed to lie on the circle.
// Equivalent points produce the full circle. The arc from a to b must be
// convex: if the azimuth span from a to b exceeds π within the circle's
// precision, ErrDegenerateGeometry is returned.
func (c GreatCircle) ArcBetween(a, b Point2S) (GreatArc, error) {
	iv, err := oned.ConvexIntervalOf(
		oned.NewPoint1S(c.AzimuthOf(a)),
		oned.NewPoint1S(c.AzimuthOf(b)),
		c.prec)
	if err != nil {
		return GreatArc{}, err
	}
	return GreatArc{circle: c, interval: iv}, nil
}

// ArcFromAzimuths returns the arc between the given azimuths, wrapping the
// second above the first. The azimuth span must not exceed π within the
// circle's precision.
func (c GreatCircle) ArcFromAzimuths(start, end float64) (GreatArc, error) {
	iv, err := oned.ConvexIntervalOf(oned.NewPoint1S(start), oned.NewPoint1S(end), c.prec)
	if err != nil {
		return GreatArc{}, err
	}
	return GreatArc{circle: c, interval: iv}, nil
}

// ArcFromInterval returns the arc covering the given interval of the circle.
// The interval must be convex or full.
func (c GreatCircle) ArcFromInterval(iv oned.AngularInterval) (GreatArc, error) {
	if !iv.IsFull() && c.prec.Gt(iv.Size(), math.Pi) {
		return GreatArc{}, errors.Wrapf(core.ErrDegenerateGeometry,
			"cannot create arc from non-convex interval %v", iv)
	}
	return GreatArc{circle: c, interval: iv}, nil
}

// Eq reports whether the circles are equivalent within the precision: same
// pole and same azimuth reference direction.
func (c GreatCircle) Eq(o GreatCircle, prec precision.Context) bool {
	return prec.EqZero(c.pole.Angle(o.pole).Radians()) &&
		prec.EqZero(c.u.Angle(o.u).Radians())
}

func (c GreatCircle) String() string {
	return fmt.Sprintf("GreatCircle[pole= %v, u= %v, v= %v]", c.pole, c.u, c.v)
}
