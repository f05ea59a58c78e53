/*
 * SPDX-License-Identifier: Apache-2.0
 */

package twod

import (
	"fmt"
	"math"

	"github.com/singhbaljit/commons-geometry/core"
	"github.com/singhbaljit/commons-geometry/precision"
	"github.com/singhbaljit/commons-geometry/spherical/oned"
)

// GreatArc is a convex subset of a great circle: a connected piece spanning
// at most π radians, or the full circle. Arcs are directed; they run from
// their start point toward increasing azimuths on their circle.
type GreatArc struct {
	circle   GreatCircle
	interval oned.AngularInterval
}

// GreatArcFromPoints returns the arc from a to b, traveling the shorter way
// around the sphere. The points must not be equivalent or antipodal within
// the precision.
func GreatArcFromPoints(a, b Point2S, prec precision.Context) (GreatArc, error) {
	c, err := GreatCircleFromPoints(a, b, prec)
	if err != nil {
		return GreatArc{}, err
	}
	// a sits at azimuth zero on its own circle and b below π
	return c.ArcFromAzimuths(0, c.AzimuthOf(b))
}

// Circle returns the great circle the arc lies on.
func (a GreatArc) Circle() GreatCircle {
	return a.circle
}

// Interval returns the azimuth interval of the arc within its circle's
// reference frame.
func (a GreatArc) Interval() oned.AngularInterval {
	return a.interval
}

// Precision returns the precision context of the arc's circle.
func (a GreatArc) Precision() precision.Context {
	return a.circle.prec
}

// IsFull reports whether the arc covers its entire circle.
func (a GreatArc) IsFull() bool {
	return a.interval.IsFull()
}

// Size returns the length of the arc in radians.
func (a GreatArc) Size() float64 {
	return a.interval.Size()
}

// StartPoint returns the start of the arc. A full arc has no distinguished
// endpoints; its start and end are both the point at azimuth zero.
func (a GreatArc) StartPoint() Point2S {
	if a.IsFull() {
		return Point2SFromVector(a.circle.u)
	}
	return a.circle.PointAt(a.interval.Min().Azimuth())
}

// EndPoint returns the end of the arc.
func (a GreatArc) EndPoint() Point2S {
	if a.IsFull() {
		return Point2SFromVector(a.circle.u)
	}
	return a.circle.PointAt(a.interval.Max().Azimuth())
}

// Midpoint returns the point halfway along the arc.
func (a GreatArc) Midpoint() Point2S {
	return a.circle.PointAt(a.interval.Midpoint().Azimuth())
}

// Classify locates the point relative to the arc, treated as a region of its
// circle. Points off the circle are outside.
func (a GreatArc) Classify(pt Point2S) core.RegionLocation {
	if !a.circle.Contains(pt) {
		return core.RegionOutside
	}
	return a.interval.ClassifyAzimuth(a.circle.AzimuthOf(pt), a.circle.prec)
}

// Contains reports whether the point lies on the arc, endpoints included.
func (a GreatArc) Contains(pt Point2S) bool {
	return a.Classify(pt) != core.RegionOutside
}

// ClosestPoint returns the point of the arc closest to the given point: the
// projection onto the circle when that falls within the arc, otherwise the
// nearer endpoint.
func (a GreatArc) ClosestPoint(pt Point2S) Point2S {
	projected := a.circle.Project(pt)
	if a.IsFull() || a.interval.ContainsAzimuth(a.circle.AzimuthOf(projected), a.circle.prec) {
		return projected
	}
	start := a.StartPoint()
	end := a.EndPoint()
	if pt.Distance(start) <= pt.Distance(end) {
		return start
	}
	return end
}

// Reverse returns the arc traversed in the opposite direction, on the
// reversed circle.
func (a GreatArc) Reverse() GreatArc {
	return GreatArc{circle: a.circle.Reverse(), interval: a.interval.Negate()}
}

// Transform returns the arc mapped through the transform. Reflections
// reverse the direction of travel along the image circle.
func (a GreatArc) Transform(t Transform2S) GreatArc {
	c := a.circle.Transform(t)
	iv := a.interval
	if !t.PreservesOrientation() {
		iv = iv.Negate()
	}
	return GreatArc{circle: c, interval: iv}
}

// Split cuts the arc with a great circle. When the splitter coincides with
// the arc's circle in either orientation the result is SplitNeither.
// Otherwise the splitter crosses the arc's circle at two antipodal azimuths
// and the arc is divided there; pieces smaller than the splitter's tolerance
// collapse onto the adjacent side. The splitter's precision decides all
// classifications.
func (a GreatArc) Split(splitter GreatCircle) core.Split[*GreatArc] {
	cross := splitter.pole.Cross(a.circle.pole)
	if splitter.prec.EqZero(cross.Norm()) {
		return core.Split[*GreatArc]{Location: core.SplitNeither}
	}

	// azimuth on this circle of the center of the splitter's minus window
	center := math.Atan2(splitter.pole.Dot(a.circle.v), splitter.pole.Dot(a.circle.u))
	s := a.interval.SplitDiameter(center, splitter.prec)

	result := core.Split[*GreatArc]{Location: s.Location}
	switch s.Location {
	case core.SplitMinus:
		result.Minus = &GreatArc{circle: a.circle, interval: s.Minus}
	case core.SplitPlus:
		result.Plus = &GreatArc{circle: a.circle, interval: s.Plus}
	case core.SplitBoth:
		result.Minus = &GreatArc{circle: a.circle, interval: s.Minus}
		result.Plus = &GreatArc{circle: a.circle, interval: s.Plus}
	}
	return result
}

// Eq reports whether the arcs are equivalent within the precision.
func (a GreatArc) Eq(o GreatArc, prec precision.Context) bool {
	return a.circle.Eq(o.circle, prec) && a.interval.Eq(o.interval, prec)
}

func (a GreatArc) String() string {
	if a.IsFull() {
		return fmt.Sprintf("GreatArc[full= true, circle= %v]", a.circle)
	}
	return fmt.Sprintf("GreatArc[start= %v, end= %v]", a.StartPoint(), a.EndPoint())
}
