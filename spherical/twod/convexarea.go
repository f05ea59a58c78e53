/*
 * SPDX-License-Identifier: Apache-2.0
 */

package twod

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/pkg/errors"

	"github.com/singhbaljit/commons-geometry/core"
	"github.com/singhbaljit/commons-geometry/precision"
)

// ConvexArea2S is a convex region of the 2-sphere: the intersection of the
// minus sides of zero or more great circles. With no bounding circles the
// region is the full sphere. Convex spherical regions are never empty.
//
// Instances are immutable. Factory functions returning a region with no
// boundaries always return the same full-sphere instance.
type ConvexArea2S struct {
	boundaries []GreatArc
}

var fullArea = &ConvexArea2S{}

// FullConvexArea2S returns the region covering the entire sphere.
func FullConvexArea2S() *ConvexArea2S {
	return fullArea
}

// ConvexArea2SFromBounds returns the intersection of the minus sides of the
// given circles. Equivalent circles with the same orientation collapse to the
// first occurrence; a pair with opposite orientations produces a thin region
// with zero area. The result is undefined when the minus sides have an empty
// intersection. With no arguments the full sphere is returned.
func ConvexArea2SFromBounds(bounds ...GreatCircle) (*ConvexArea2S, error) {
	if len(bounds) == 0 {
		return fullArea, nil
	}
	boundaries := make([]GreatArc, 0, len(bounds))
	for i, c := range bounds {
		trimmed := c.Span()
		alive := true
		for j, o := range bounds {
			if i == j {
				continue
			}
			s := trimmed.Split(o)
			if s.Location == core.SplitNeither {
				// same circle; keep the first occurrence of duplicates and
				// keep both members of an opposite-orientation pair
				if o.SimilarOrientation(c) && i > j {
					alive = false
					break
				}
			} else {
				if s.Minus == nil {
					alive = false
					break
				}
				trimmed = *s.Minus
			}
		}
		if alive {
			boundaries = append(boundaries, trimmed)
		}
	}
	if len(boundaries) == 0 {
		return nil, errors.Wrap(ErrInvalidBoundary,
			"bounding circles do not produce a convex region")
	}
	return &ConvexArea2S{boundaries: boundaries}, nil
}

// ConvexArea2SFromPath returns the region bounded by the arcs of the path.
// The path is taken as a consistent convex boundary; an empty path produces
// the full sphere.
func ConvexArea2SFromPath(path *GreatArcPath) *ConvexArea2S {
	arcs := path.Arcs()
	if len(arcs) == 0 {
		return fullArea
	}
	return &ConvexArea2S{boundaries: arcs}
}

// ConvexArea2SFromVertices returns the region bounded by the open chain of
// edges connecting consecutive points. When skipDegenerate is set, adjacent
// equivalent points are silently skipped; otherwise they are an error.
// Adjacent antipodal points are always an error, since they do not determine
// a unique edge. Errors are reported as ErrInvalidBoundary.
func ConvexArea2SFromVertices(pts []Point2S, skipDegenerate bool, prec precision.Context) (*ConvexArea2S, error) {
	return areaFromVertexChain(pts, false, skipDegenerate, prec)
}

// ConvexArea2SFromVertexLoop returns the region bounded by the closed loop
// through the given points, connecting the last point back to the first.
// Degenerate edges between equivalent points are skipped.
func ConvexArea2SFromVertexLoop(pts []Point2S, prec precision.Context) (*ConvexArea2S, error) {
	return areaFromVertexChain(pts, true, true, prec)
}

func areaFromVertexChain(pts []Point2S, closeLoop, skipDegenerate bool, prec precision.Context) (*ConvexArea2S, error) {
	if len(pts) == 0 {
		return fullArea, nil
	}
	var bounds []GreatCircle
	addEdge := func(a, b Point2S) error {
		if skipDegenerate && a.Eq(b, prec) {
			return nil
		}
		c, err := GreatCircleFromPoints(a, b, prec)
		if err != nil {
			return errors.Wrapf(ErrInvalidBoundary, "invalid boundary edge: %s", err)
		}
		bounds = append(bounds, c)
		return nil
	}
	for i := 1; i < len(pts); i++ {
		if err := addEdge(pts[i-1], pts[i]); err != nil {
			return nil, err
		}
	}
	if closeLoop {
		if err := addEdge(pts[len(pts)-1], pts[0]); err != nil {
			return nil, err
		}
	}
	if len(bounds) == 0 {
		return nil, errors.Wrapf(ErrInvalidBoundary,
			"vertex sequence %v does not define any boundaries", pts)
	}
	return ConvexArea2SFromBounds(bounds...)
}

// IsFull reports whether the region covers the entire sphere.
func (a *ConvexArea2S) IsFull() bool {
	return len(a.boundaries) == 0
}

// IsEmpty always reports false: the intersection of hemispheres containing
// their bounding circles is never empty.
func (a *ConvexArea2S) IsEmpty() bool {
	return false
}

// Boundaries returns the boundary arcs of the region.
func (a *ConvexArea2S) Boundaries() []GreatArc {
	out := make([]GreatArc, len(a.boundaries))
	copy(out, a.boundaries)
	return out
}

// BoundarySize returns the total length of the boundary arcs in radians.
func (a *ConvexArea2S) BoundarySize() float64 {
	var sum float64
	for _, b := range a.boundaries {
		sum += b.Size()
	}
	return sum
}

// BoundaryPath returns the boundary arcs connected into a path, starting at
// the vertex that is minimal in polar-azimuth order. The full sphere has an
// empty boundary path.
func (a *ConvexArea2S) BoundaryPath() *GreatArcPath {
	paths := connectArcs(a.boundaries)
	if len(paths) == 0 {
		return EmptyArcPath()
	}
	return paths[0]
}

// InteriorAngles returns the angle of the region at each boundary-path
// corner, in path order starting at the corner that ends the first path arc.
// Regions without corners, such as hemispheres and thin regions bounded by
// full circles, return nil.
func (a *ConvexArea2S) InteriorAngles() []float64 {
	arcs := a.BoundaryPath().arcs
	if len(arcs) < 2 {
		return nil
	}
	angles := make([]float64, len(arcs))
	for i, cur := range arcs {
		next := arcs[(i+1)%len(arcs)]
		angles[i] = math.Pi - cur.Circle().AngleAt(next.Circle(), cur.EndPoint())
	}
	return angles
}

// Size returns the area of the region on the unit sphere, computed from the
// angular excess of its boundary path.
func (a *ConvexArea2S) Size() float64 {
	switch len(a.boundaries) {
	case 0:
		return 4 * math.Pi
	case 1:
		return 2 * math.Pi
	default:
		angles := a.InteriorAngles()
		if len(angles) == 0 {
			return 0 // thin region between opposite orientations of one circle
		}
		sum := 0.0
		for _, ang := range angles {
			sum += ang
		}
		return sum - float64(len(angles)-2)*math.Pi
	}
}

// Classify locates a point relative to the region. A point is on the
// boundary when it lies on at least one bounding circle and outside none.
func (a *ConvexArea2S) Classify(pt Point2S) core.RegionLocation {
	isOn := false
	for _, b := range a.boundaries {
		switch b.circle.Classify(pt) {
		case core.SidePlus:
			return core.RegionOutside
		case core.SideOn:
			isOn = true
		}
	}
	if isOn {
		return core.RegionBoundary
	}
	return core.RegionInside
}

// Contains reports whether the point lies inside the region or on its
// boundary.
func (a *ConvexArea2S) Contains(pt Point2S) bool {
	return a.Classify(pt) != core.RegionOutside
}

// Project returns the closest boundary point to the given point. The full
// sphere has no boundary, so ok is false.
func (a *ConvexArea2S) Project(pt Point2S) (Point2S, bool) {
	if a.IsFull() {
		return Point2S{}, false
	}
	var best Point2S
	bestDist := math.Inf(1)
	for _, b := range a.boundaries {
		p := b.ClosestPoint(pt)
		if d := pt.Distance(p).Radians(); d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best, true
}

// WeightedCentroidVector returns the centroid direction of the region scaled
// by its size: the integral of the position vector over the region, doubled.
// The vectors of the pieces of a split sum to the vector of the whole, which
// lets centroids of decompositions recombine exactly.
func (a *ConvexArea2S) WeightedCentroidVector() r3.Vector {
	switch len(a.boundaries) {
	case 0:
		return r3.Vector{}
	case 1:
		return a.boundaries[0].circle.pole.Mul(2 * math.Pi)
	default:
		return a.fanCentroidVector()
	}
}

// fanCentroidVector integrates the position vector over the region by fanning
// triangles from a central apex to the boundary-path vertices. Arcs longer
// than π/2 are subdivided so every triangle stays well conditioned; the
// triangle sums then remain accurate even for regions a few ulps wide.
func (a *ConvexArea2S) fanCentroidVector() r3.Vector {
	pts := a.fanPoints()
	if len(pts) < 3 {
		return r3.Vector{}
	}

	sum := r3.Vector{}
	for _, p := range pts {
		sum = sum.Add(p)
	}
	apexVec := pts[0]
	if sum != (r3.Vector{}) {
		apexVec = sum.Normalize()
	}
	apex := s2.Point{Vector: apexVec}

	var w r3.Vector
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		tc := s2.TrueCentroid(apex, s2.Point{Vector: p}, s2.Point{Vector: q})
		w = w.Add(tc.Mul(2))
	}
	return w
}

// fanPoints returns the boundary-path vertices with long arcs subdivided,
// traversing the region boundary once. Thin regions bounded by full circles
// have no vertices and return nil.
func (a *ConvexArea2S) fanPoints() []r3.Vector {
	path := a.BoundaryPath()
	var pts []r3.Vector
	for _, arc := range path.arcs {
		if arc.IsFull() {
			return nil
		}
		n := int(math.Ceil(arc.Size() / (math.Pi / 2)))
		if n < 1 {
			n = 1
		}
		start := arc.Interval().Min().Azimuth()
		step := arc.Size() / float64(n)
		for k := 0; k < n; k++ {
			pts = append(pts, arc.Circle().VectorAt(start+float64(k)*step))
		}
	}
	return pts
}

// Centroid returns the centroid of the region: the point its mass balances
// around. The full sphere and thin zero-area regions have no centroid.
func (a *ConvexArea2S) Centroid() (Point2S, bool) {
	w := a.WeightedCentroidVector()
	if w == (r3.Vector{}) {
		return Point2S{}, false
	}
	return Point2SFromVector(w), true
}

// Trim returns the subset of the arc contained in the region, or ok=false
// when no part of the arc lies inside.
func (a *ConvexArea2S) Trim(arc GreatArc) (GreatArc, bool) {
	cur := arc
	for _, b := range a.boundaries {
		s := cur.Split(b.circle)
		if s.Minus == nil {
			return GreatArc{}, false
		}
		cur = *s.Minus
	}
	return cur, true
}

// Split cuts the region with a great circle. When the circle passes through
// the interior, both pieces are new regions sharing the trimmed splitter as
// a boundary; otherwise the region itself is returned on the side it lies
// on. Splitting the full sphere produces the two hemispheres of the
// splitter.
func (a *ConvexArea2S) Split(splitter GreatCircle) core.Split[*ConvexArea2S] {
	if a.IsFull() {
		minus := &ConvexArea2S{boundaries: []GreatArc{splitter.Span()}}
		plus := &ConvexArea2S{boundaries: []GreatArc{splitter.Reverse().Span()}}
		return core.Split[*ConvexArea2S]{Minus: minus, Plus: plus, Location: core.SplitBoth}
	}

	trimmed, ok := a.Trim(splitter.Span())
	if !ok {
		// the splitter misses the interior; the whole region lies on one side
		switch a.boundaries[0].Split(splitter).Location {
		case core.SplitNeither:
			if splitter.SimilarOrientation(a.boundaries[0].circle) {
				return core.Split[*ConvexArea2S]{Minus: a, Location: core.SplitMinus}
			}
			return core.Split[*ConvexArea2S]{Plus: a, Location: core.SplitPlus}
		case core.SplitPlus:
			return core.Split[*ConvexArea2S]{Plus: a, Location: core.SplitPlus}
		default:
			return core.Split[*ConvexArea2S]{Minus: a, Location: core.SplitMinus}
		}
	}

	minusBnds := make([]GreatArc, 0, len(a.boundaries)+1)
	plusBnds := make([]GreatArc, 0, len(a.boundaries)+1)
	for _, b := range a.boundaries {
		s := b.Split(splitter)
		if s.Location == core.SplitNeither {
			if splitter.SimilarOrientation(b.circle) {
				minusBnds = append(minusBnds, b)
			} else {
				plusBnds = append(plusBnds, b)
			}
			continue
		}
		if s.Minus != nil {
			minusBnds = append(minusBnds, *s.Minus)
		}
		if s.Plus != nil {
			plusBnds = append(plusBnds, *s.Plus)
		}
	}
	minusBnds = append(minusBnds, trimmed)
	plusBnds = append(plusBnds, trimmed.Reverse())

	return core.Split[*ConvexArea2S]{
		Minus:    &ConvexArea2S{boundaries: minusBnds},
		Plus:     &ConvexArea2S{boundaries: plusBnds},
		Location: core.SplitBoth,
	}
}

// Transform returns the image of the region under the transform. The full
// sphere maps to itself.
func (a *ConvexArea2S) Transform(t Transform2S) *ConvexArea2S {
	if a.IsFull() {
		return a
	}
	arcs := make([]GreatArc, len(a.boundaries))
	for i, b := range a.boundaries {
		arcs[i] = b.Transform(t)
	}
	return &ConvexArea2S{boundaries: arcs}
}

// ToBoundaryList returns the boundary arcs as a boundary list.
func (a *ConvexArea2S) ToBoundaryList() *BoundaryList2S {
	return NewBoundaryList2S(a.Boundaries())
}

// ToTree returns a BSP tree representation of the region.
func (a *ConvexArea2S) ToTree() *RegionBSPTree2S {
	tree := NewRegionBSPTree2S(true)
	for _, b := range a.boundaries {
		tree.Insert(b)
	}
	return tree
}

func (a *ConvexArea2S) String() string {
	if a.IsFull() {
		return "ConvexArea2S[full]"
	}
	return fmt.Sprintf("ConvexArea2S[boundaries= %v]", a.boundaries)
}
