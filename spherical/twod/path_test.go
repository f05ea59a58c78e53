/*
 * SPDX-License-Identifier: Apache-2.0
 */

package twod

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArcPathEmpty(t *testing.T) {
	p := EmptyArcPath()

	require.Same(t, EmptyArcPath(), p)
	require.True(t, p.IsEmpty())
	require.False(t, p.IsClosed())
	require.Zero(t, p.NumArcs())
	require.Empty(t, p.Arcs())
	require.Nil(t, p.Vertices())
	require.Zero(t, p.BoundarySize())

	_, ok := p.StartArc()
	require.False(t, ok)
	_, ok = p.EndArc()
	require.False(t, ok)
	_, ok = p.StartVertex()
	require.False(t, ok)
	_, ok = p.EndVertex()
	require.False(t, ok)

	require.Equal(t, "GreatArcPath[empty]", p.String())
}

func TestArcPathFromVerticesOpen(t *testing.T) {
	p, err := ArcPathFromVertices([]Point2S{PlusI, PlusJ, PlusK}, false, testPrec)
	require.NoError(t, err)

	require.False(t, p.IsEmpty())
	require.False(t, p.IsClosed())
	require.Equal(t, 2, p.NumArcs())
	require.InDelta(t, math.Pi, p.BoundarySize(), testEps)
	assertPath(t, p, PlusI, PlusJ, PlusK)

	start, ok := p.StartArc()
	require.True(t, ok)
	checkArc(t, start, PlusI, PlusJ)

	end, ok := p.EndArc()
	require.True(t, ok)
	checkArc(t, end, PlusJ, PlusK)

	v, ok := p.StartVertex()
	require.True(t, ok)
	assertPointsEq(t, PlusI, v)

	v, ok = p.EndVertex()
	require.True(t, ok)
	assertPointsEq(t, PlusK, v)
}

func TestArcPathFromVerticesClosed(t *testing.T) {
	p, err := ArcPathFromVertices([]Point2S{PlusI, PlusJ, PlusK}, true, testPrec)
	require.NoError(t, err)

	require.True(t, p.IsClosed())
	require.Equal(t, 3, p.NumArcs())
	require.InDelta(t, 1.5*math.Pi, p.BoundarySize(), testEps)
	assertPath(t, p, PlusI, PlusJ, PlusK, PlusI)
}

func TestArcPathFromVerticesInvalid(t *testing.T) {
	_, err := ArcPathFromVertices([]Point2S{PlusI}, false, testPrec)
	require.ErrorIs(t, err, ErrInvalidBoundary)

	// equivalent adjacent points
	_, err = ArcPathFromVertices([]Point2S{PlusI, NewPoint2S(1e-12, math.Pi/2)}, false, testPrec)
	require.ErrorIs(t, err, ErrInvalidBoundary)

	// antipodal adjacent points
	_, err = ArcPathFromVertices([]Point2S{PlusI, MinusI}, false, testPrec)
	require.ErrorIs(t, err, ErrInvalidBoundary)

	// antipodal closing edge
	_, err = ArcPathFromVertices([]Point2S{PlusI, PlusJ, MinusI}, true, testPrec)
	require.ErrorIs(t, err, ErrInvalidBoundary)
}

func TestArcPathFromArcs(t *testing.T) {
	a1, err := GreatArcFromPoints(PlusI, PlusJ, testPrec)
	require.NoError(t, err)
	a2, err := GreatArcFromPoints(PlusJ, PlusK, testPrec)
	require.NoError(t, err)

	p, err := ArcPathFromArcs(a1, a2)
	require.NoError(t, err)
	require.Equal(t, 2, p.NumArcs())
	assertPath(t, p, PlusI, PlusJ, PlusK)
}

func TestArcPathFromArcsDisconnected(t *testing.T) {
	a1, err := GreatArcFromPoints(PlusI, PlusJ, testPrec)
	require.NoError(t, err)
	a2, err := GreatArcFromPoints(PlusK, MinusI, testPrec)
	require.NoError(t, err)

	_, err = ArcPathFromArcs(a1, a2)
	require.ErrorIs(t, err, ErrInvalidBoundary)
}

func TestArcPathFromFullArc(t *testing.T) {
	equator, err := GreatCircleFromPoints(PlusI, PlusJ, testPrec)
	require.NoError(t, err)

	p, err := ArcPathFromArcs(equator.Span())
	require.NoError(t, err)
	require.Equal(t, 1, p.NumArcs())
	require.True(t, p.IsClosed())
	require.Nil(t, p.Vertices())
	require.InDelta(t, 2*math.Pi, p.BoundarySize(), testEps)

	_, ok := p.StartVertex()
	require.False(t, ok)

	// a full arc cannot be chained with others
	arc, err := GreatArcFromPoints(PlusI, PlusJ, testPrec)
	require.NoError(t, err)
	_, err = ArcPathFromArcs(arc, equator.Span())
	require.ErrorIs(t, err, ErrInvalidBoundary)
}

func TestArcPathTransform(t *testing.T) {
	p, err := ArcPathFromVertices([]Point2S{PlusI, PlusJ, PlusK}, true, testPrec)
	require.NoError(t, err)

	rotated := p.Transform(NewRotation(PlusK, math.Pi/2))
	assertPath(t, rotated, PlusJ, MinusI, PlusK, PlusJ)
	require.True(t, rotated.IsClosed())

	// reflections reverse the traversal order
	reflected := p.Transform(NewReflection(PlusJ))
	assertPath(t, reflected, PlusI, PlusK, MinusJ, PlusI)
	require.True(t, reflected.IsClosed())
	require.InDelta(t, p.BoundarySize(), reflected.BoundarySize(), testEps)
}

func TestArcPathReverse(t *testing.T) {
	p, err := ArcPathFromVertices([]Point2S{PlusI, PlusJ, PlusK}, true, testPrec)
	require.NoError(t, err)

	rev := p.Reverse()
	assertPath(t, rev, PlusI, PlusK, PlusJ, PlusI)
	require.True(t, rev.IsClosed())
	require.InDelta(t, p.BoundarySize(), rev.BoundarySize(), testEps)

	require.Same(t, EmptyArcPath(), EmptyArcPath().Reverse())
}
