/*
 * SPDX-License-Identifier: Apache-2.0
 */

package twod

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/singhbaljit/commons-geometry/precision"
)

// GreatArcPath is a connected sequence of great arcs, each starting where the
// previous one ends. A closed path returns to its starting vertex. Paths
// containing a full arc consist of that single arc and have no vertices.
type GreatArcPath struct {
	arcs []GreatArc
}

var emptyPath = &GreatArcPath{}

// EmptyArcPath returns the shared empty path.
func EmptyArcPath() *GreatArcPath {
	return emptyPath
}

// ArcPathFromArcs returns the path formed by the given arcs. The arcs must
// connect: each arc must start at the end point of the arc before it, within
// the precision of its circle. Disconnected input returns ErrInvalidBoundary.
func ArcPathFromArcs(arcs ...GreatArc) (*GreatArcPath, error) {
	if len(arcs) == 0 {
		return emptyPath, nil
	}
	for i := 1; i < len(arcs); i++ {
		if arcs[i].IsFull() || arcs[i-1].IsFull() ||
			!arcs[i].StartPoint().Eq(arcs[i-1].EndPoint(), arcs[i].Precision()) {
			return nil, errors.Wrapf(ErrInvalidBoundary,
				"arc %d does not start at the end of the previous arc", i)
		}
	}
	return &GreatArcPath{arcs: slices.Clone(arcs)}, nil
}

// ArcPathFromVertices returns the path visiting the given points in order.
// When closeLoop is set, a final arc connects the last point back to the
// first. Adjacent equivalent or antipodal points return ErrInvalidBoundary.
func ArcPathFromVertices(pts []Point2S, closeLoop bool, prec precision.Context) (*GreatArcPath, error) {
	if len(pts) == 0 {
		return emptyPath, nil
	}
	if len(pts) == 1 {
		return nil, errors.Wrapf(ErrInvalidBoundary, "cannot create path from single point %v", pts[0])
	}

	var arcs []GreatArc
	for i := 1; i < len(pts); i++ {
		arc, err := GreatArcFromPoints(pts[i-1], pts[i], prec)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidBoundary, "invalid path edge: %s", err)
		}
		arcs = append(arcs, arc)
	}
	if closeLoop {
		arc, err := GreatArcFromPoints(pts[len(pts)-1], pts[0], prec)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidBoundary, "invalid path closing edge: %s", err)
		}
		arcs = append(arcs, arc)
	}
	return &GreatArcPath{arcs: arcs}, nil
}

// Arcs returns the arcs of the path in traversal order.
func (p *GreatArcPath) Arcs() []GreatArc {
	return slices.Clone(p.arcs)
}

// NumArcs returns the number of arcs in the path.
func (p *GreatArcPath) NumArcs() int {
	return len(p.arcs)
}

// IsEmpty reports whether the path contains no arcs.
func (p *GreatArcPath) IsEmpty() bool {
	return len(p.arcs) == 0
}

// StartArc returns the first arc of the path.
func (p *GreatArcPath) StartArc() (GreatArc, bool) {
	if p.IsEmpty() {
		return GreatArc{}, false
	}
	return p.arcs[0], true
}

// EndArc returns the last arc of the path.
func (p *GreatArcPath) EndArc() (GreatArc, bool) {
	if p.IsEmpty() {
		return GreatArc{}, false
	}
	return p.arcs[len(p.arcs)-1], true
}

// StartVertex returns the first vertex of the path. Paths without vertices,
// i.e. empty paths and full-circle paths, return false.
func (p *GreatArcPath) StartVertex() (Point2S, bool) {
	if p.IsEmpty() || p.arcs[0].IsFull() {
		return Point2S{}, false
	}
	return p.arcs[0].StartPoint(), true
}

// EndVertex returns the last vertex of the path.
func (p *GreatArcPath) EndVertex() (Point2S, bool) {
	if p.IsEmpty() || p.arcs[len(p.arcs)-1].IsFull() {
		return Point2S{}, false
	}
	return p.arcs[len(p.arcs)-1].EndPoint(), true
}

// IsClosed reports whether the path ends where it starts. A single full arc
// forms a closed path.
func (p *GreatArcPath) IsClosed() bool {
	if p.IsEmpty() {
		return false
	}
	last := p.arcs[len(p.arcs)-1]
	if last.IsFull() {
		return true
	}
	return last.EndPoint().Eq(p.arcs[0].StartPoint(), last.Precision())
}

// Vertices returns the vertices of the path in traversal order: the start
// point of each arc, then the end point of the last arc. A closed path
// repeats its first vertex at the end. Full-circle paths have no vertices.
func (p *GreatArcPath) Vertices() []Point2S {
	if p.IsEmpty() || p.arcs[0].IsFull() {
		return nil
	}
	pts := make([]Point2S, 0, len(p.arcs)+1)
	for _, a := range p.arcs {
		pts = append(pts, a.StartPoint())
	}
	pts = append(pts, p.arcs[len(p.arcs)-1].EndPoint())
	return pts
}

// BoundarySize returns the total length of the path in radians.
func (p *GreatArcPath) BoundarySize() float64 {
	var sum float64
	for _, a := range p.arcs {
		sum += a.Size()
	}
	return sum
}

// Transform returns the path mapped through the transform. For reflections
// the arcs reverse direction, so the traversal order of the path reverses to
// keep consecutive arcs connected.
func (p *GreatArcPath) Transform(t Transform2S) *GreatArcPath {
	if p.IsEmpty() {
		return emptyPath
	}
	arcs := make([]GreatArc, len(p.arcs))
	if t.PreservesOrientation() {
		for i, a := range p.arcs {
			arcs[i] = a.Transform(t)
		}
	} else {
		for i, a := range p.arcs {
			arcs[len(arcs)-1-i] = a.Transform(t)
		}
	}
	return &GreatArcPath{arcs: arcs}
}

// Reverse returns the path traversed in the opposite direction.
func (p *GreatArcPath) Reverse() *GreatArcPath {
	if p.IsEmpty() {
		return emptyPath
	}
	arcs := make([]GreatArc, len(p.arcs))
	for i, a := range p.arcs {
		arcs[len(arcs)-1-i] = a.Reverse()
	}
	return &GreatArcPath{arcs: arcs}
}

func (p *GreatArcPath) String() string {
	if p.IsEmpty() {
		return "GreatArcPath[empty]"
	}
	if p.arcs[0].IsFull() {
		return fmt.Sprintf("GreatArcPath[full, circle= %v]", p.arcs[0].Circle())
	}
	var sb strings.Builder
	sb.WriteString("GreatArcPath[vertices= [")
	for i, v := range p.Vertices() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteString("]]")
	return sb.String()
}

// connectArcs assembles arcs into connected paths. Arcs are chained end to
// start by point equivalence; each chain starts at the arc whose start point
// is minimal in polar-azimuth order among the arcs not yet placed, which
// gives closed loops a canonical starting vertex. Full arcs each form their
// own path. Arcs that connect to nothing become single-arc paths.
func connectArcs(arcs []GreatArc) []*GreatArcPath {
	var paths []*GreatArcPath
	var open []GreatArc
	for _, a := range arcs {
		if a.IsFull() {
			paths = append(paths, &GreatArcPath{arcs: []GreatArc{a}})
		} else {
			open = append(open, a)
		}
	}

	slices.SortFunc(open, func(a, b GreatArc) int {
		return ComparePolarAzimuth(a.StartPoint(), b.StartPoint())
	})

	used := make([]bool, len(open))
	for i := range open {
		if used[i] {
			continue
		}
		used[i] = true
		chain := []GreatArc{open[i]}
		first := open[i].StartPoint()

		for {
			cur := chain[len(chain)-1]
			if cur.EndPoint().Eq(first, cur.Precision()) {
				break // chain closed
			}
			next := -1
			for j := range open {
				if !used[j] && open[j].StartPoint().Eq(cur.EndPoint(), open[j].Precision()) {
					next = j
					break
				}
			}
			if next < 0 {
				break
			}
			used[next] = true
			chain = append(chain, open[next])
		}
		paths = append(paths, &GreatArcPath{arcs: chain})
	}
	return paths
}
