/*
 * SPDX-License-Identifier: Apache-2.0
 */

package twod

import (
	"github.com/golang/geo/r3"

	"github.com/singhbaljit/commons-geometry/core"
)

// RegionBSPTree2S represents a region of the sphere as a binary space
// partitioning tree of great circles. Inserting the boundary arcs of a
// region, with the region on each arc's minus side, carves the tree into
// that region.
type RegionBSPTree2S struct {
	root *bspNode
}

type bspNode struct {
	// cut is nil for leaves. Interior nodes hold the arc that cut them and
	// their two children.
	cut    *GreatArc
	minus  *bspNode
	plus   *bspNode
	inside bool
}

// NewRegionBSPTree2S returns a tree covering the full sphere when full is
// set, and the empty region otherwise.
func NewRegionBSPTree2S(full bool) *RegionBSPTree2S {
	return &RegionBSPTree2S{root: &bspNode{inside: full}}
}

// Insert cuts the tree with the arc's circle, restricted to the arc. The
// minus side of the cut becomes inside, the plus side outside.
func (t *RegionBSPTree2S) Insert(arc GreatArc) {
	t.root.insert(arc)
}

func (n *bspNode) insert(arc GreatArc) {
	if n.cut == nil {
		n.cut = &arc
		n.minus = &bspNode{inside: true}
		n.plus = &bspNode{inside: false}
		return
	}
	s := arc.Split(n.cut.circle)
	switch s.Location {
	case core.SplitMinus:
		n.minus.insert(arc)
	case core.SplitPlus:
		n.plus.insert(arc)
	case core.SplitBoth:
		n.minus.insert(*s.Minus)
		n.plus.insert(*s.Plus)
	}
	// SplitNeither: the arc lies on an existing cut and adds nothing
}

// Classify locates a point relative to the region. Points on a cut take the
// classification shared by both children, or the boundary when the children
// disagree.
func (t *RegionBSPTree2S) Classify(pt Point2S) core.RegionLocation {
	return t.root.classify(pt)
}

func (n *bspNode) classify(pt Point2S) core.RegionLocation {
	if n.cut == nil {
		if n.inside {
			return core.RegionInside
		}
		return core.RegionOutside
	}
	switch n.cut.circle.Classify(pt) {
	case core.SideMinus:
		return n.minus.classify(pt)
	case core.SidePlus:
		return n.plus.classify(pt)
	default:
		minusLoc := n.minus.classify(pt)
		plusLoc := n.plus.classify(pt)
		if minusLoc == plusLoc {
			return minusLoc
		}
		return core.RegionBoundary
	}
}

// Contains reports whether the point lies inside the region or on its
// boundary.
func (t *RegionBSPTree2S) Contains(pt Point2S) bool {
	return t.Classify(pt) != core.RegionOutside
}

// IsFull reports whether every leaf of the tree is inside.
func (t *RegionBSPTree2S) IsFull() bool {
	full := true
	t.root.visitLeaves(func(n *bspNode) {
		if !n.inside {
			full = false
		}
	})
	return full
}

// IsEmpty reports whether every leaf of the tree is outside.
func (t *RegionBSPTree2S) IsEmpty() bool {
	empty := true
	t.root.visitLeaves(func(n *bspNode) {
		if n.inside {
			empty = false
		}
	})
	return empty
}

func (n *bspNode) visitLeaves(fn func(*bspNode)) {
	if n.cut == nil {
		fn(n)
		return
	}
	n.minus.visitLeaves(fn)
	n.plus.visitLeaves(fn)
}

// ToConvex returns the convex regions of the inside leaves. Their union is
// the region represented by the tree.
func (t *RegionBSPTree2S) ToConvex() []*ConvexArea2S {
	var areas []*ConvexArea2S
	t.root.collectConvex(nil, &areas)
	return areas
}

func (n *bspNode) collectConvex(bounds []GreatCircle, areas *[]*ConvexArea2S) {
	if n.cut == nil {
		if !n.inside {
			return
		}
		// contradictory cut constraints cannot occur on a path to an inside
		// leaf, so construction cannot fail
		area, err := ConvexArea2SFromBounds(bounds...)
		if err == nil {
			*areas = append(*areas, area)
		}
		return
	}
	n.minus.collectConvex(append(bounds[:len(bounds):len(bounds)], n.cut.circle), areas)
	n.plus.collectConvex(append(bounds[:len(bounds):len(bounds)], n.cut.circle.Reverse()), areas)
}

// Size returns the area of the region, aggregated over the convex regions of
// the inside leaves.
func (t *RegionBSPTree2S) Size() float64 {
	var sum float64
	for _, a := range t.ToConvex() {
		sum += a.Size()
	}
	return sum
}

// BoundarySize returns the total length of the inserted boundary arcs.
func (t *RegionBSPTree2S) BoundarySize() float64 {
	var sum float64
	t.root.visitCuts(func(arc *GreatArc) {
		sum += arc.Size()
	})
	return sum
}

func (n *bspNode) visitCuts(fn func(*GreatArc)) {
	if n.cut == nil {
		return
	}
	fn(n.cut)
	n.minus.visitCuts(fn)
	n.plus.visitCuts(fn)
}

// WeightedCentroidVector returns the sum of the weighted centroid vectors of
// the inside leaves.
func (t *RegionBSPTree2S) WeightedCentroidVector() r3.Vector {
	var sum r3.Vector
	for _, a := range t.ToConvex() {
		sum = sum.Add(a.WeightedCentroidVector())
	}
	return sum
}

// Centroid returns the centroid of the region, or ok=false when the region
// has none, e.g. for the full sphere and the empty region.
func (t *RegionBSPTree2S) Centroid() (Point2S, bool) {
	w := t.WeightedCentroidVector()
	if w == (r3.Vector{}) {
		return Point2S{}, false
	}
	return Point2SFromVector(w), true
}
