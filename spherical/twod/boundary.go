/*
 * SPDX-License-Identifier: Apache-2.0
 */

package twod

import (
	"fmt"
	"slices"
)

// BoundaryList2S is an immutable list of great arcs treated as region
// boundaries, with the region on the minus side of each arc's circle.
type BoundaryList2S struct {
	arcs []GreatArc
}

// NewBoundaryList2S returns a boundary list holding the given arcs.
func NewBoundaryList2S(arcs []GreatArc) *BoundaryList2S {
	return &BoundaryList2S{arcs: slices.Clone(arcs)}
}

// Count returns the number of boundary arcs.
func (l *BoundaryList2S) Count() int {
	return len(l.arcs)
}

// Boundaries returns the boundary arcs.
func (l *BoundaryList2S) Boundaries() []GreatArc {
	return slices.Clone(l.arcs)
}

// BoundarySize returns the total length of the boundary arcs in radians.
func (l *BoundaryList2S) BoundarySize() float64 {
	var sum float64
	for _, a := range l.arcs {
		sum += a.Size()
	}
	return sum
}

// ToTree returns a BSP tree of the region enclosed by the boundaries.
func (l *BoundaryList2S) ToTree() *RegionBSPTree2S {
	tree := NewRegionBSPTree2S(true)
	for _, a := range l.arcs {
		tree.Insert(a)
	}
	return tree
}

func (l *BoundaryList2S) String() string {
	return fmt.Sprintf("BoundaryList2S[count= %d]", len(l.arcs))
}
