/*
 * SPDX-License-Identifier: Apache-2.0
 */

package twod

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"

	"github.com/singhbaljit/commons-geometry/core"
)

func TestGreatArcFromPoints(t *testing.T) {
	arc, err := GreatArcFromPoints(PlusI, PlusJ, testPrec)
	require.NoError(t, err)

	require.False(t, arc.IsFull())
	require.InDelta(t, math.Pi/2, arc.Size(), testEps)
	checkArc(t, arc, PlusI, PlusJ)
	assertPointsEq(t, NewPoint2S(0.25*math.Pi, math.Pi/2), arc.Midpoint())
	assertVectorsEq(t, r3.Vector{Z: 1}, arc.Circle().Pole())

	_, err = GreatArcFromPoints(PlusI, PlusI, testPrec)
	require.ErrorIs(t, err, ErrDegenerateGeometry)

	_, err = GreatArcFromPoints(PlusI, MinusI, testPrec)
	require.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestGreatArcFull(t *testing.T) {
	c, err := GreatCircleFromPoints(PlusI, PlusJ, testPrec)
	require.NoError(t, err)

	arc := c.Span()
	require.True(t, arc.IsFull())
	require.InDelta(t, 2*math.Pi, arc.Size(), testEps)

	// a full arc starts and ends at the azimuth zero point
	assertPointsEq(t, PlusI, arc.StartPoint())
	assertPointsEq(t, PlusI, arc.EndPoint())
	assertPointsEq(t, MinusI, arc.Midpoint())
}

func TestGreatArcClassify(t *testing.T) {
	arc, err := GreatArcFromPoints(PlusI, PlusJ, testPrec)
	require.NoError(t, err)

	require.Equal(t, core.RegionInside, arc.Classify(NewPoint2S(0.25*math.Pi, math.Pi/2)))
	require.Equal(t, core.RegionBoundary, arc.Classify(PlusI))
	require.Equal(t, core.RegionBoundary, arc.Classify(PlusJ))

	// on the circle but outside the arc
	require.Equal(t, core.RegionOutside, arc.Classify(MinusI))
	require.Equal(t, core.RegionOutside, arc.Classify(NewPoint2S(0.75*math.Pi, math.Pi/2)))

	// off the circle entirely
	require.Equal(t, core.RegionOutside, arc.Classify(PlusK))
	require.Equal(t, core.RegionOutside, arc.Classify(NewPoint2S(0.25*math.Pi, 0.3)))

	require.True(t, arc.Contains(NewPoint2S(0.25*math.Pi, math.Pi/2)))
	require.True(t, arc.Contains(PlusI))
	require.False(t, arc.Contains(MinusI))
}

func TestGreatArcClosestPoint(t *testing.T) {
	arc, err := GreatArcFromPoints(PlusI, PlusJ, testPrec)
	require.NoError(t, err)

	// projection falls within the arc
	assertPointsEq(t, NewPoint2S(0.25*math.Pi, math.Pi/2), arc.ClosestPoint(NewPoint2S(0.25*math.Pi, 0.3)))
	assertPointsEq(t, PlusJ, arc.ClosestPoint(PlusJ))

	// projection falls outside the arc; the nearer endpoint wins
	assertPointsEq(t, PlusJ, arc.ClosestPoint(MinusI))
	assertPointsEq(t, PlusI, arc.ClosestPoint(NewPoint2S(-0.2, math.Pi/2)))
}

func TestGreatArcReverse(t *testing.T) {
	arc, err := GreatArcFromPoints(PlusI, PlusJ, testPrec)
	require.NoError(t, err)

	rev := arc.Reverse()
	checkArc(t, rev, PlusJ, PlusI)
	require.InDelta(t, math.Pi/2, rev.Size(), testEps)
	assertVectorsEq(t, r3.Vector{Z: -1}, rev.Circle().Pole())
	require.Equal(t, core.RegionInside, rev.Classify(NewPoint2S(0.25*math.Pi, math.Pi/2)))
}

func TestGreatArcTransform(t *testing.T) {
	arc, err := GreatArcFromPoints(PlusI, PlusJ, testPrec)
	require.NoError(t, err)

	rotated := arc.Transform(NewRotation(PlusK, math.Pi/2))
	checkArc(t, rotated, PlusJ, MinusI)
	require.InDelta(t, math.Pi/2, rotated.Size(), testEps)

	// reflections reverse the direction of travel
	reflected := arc.Transform(NewReflection(PlusJ))
	checkArc(t, reflected, MinusJ, PlusI)
	require.InDelta(t, math.Pi/2, reflected.Size(), testEps)
}

func TestGreatArcSplitNeither(t *testing.T) {
	arc, err := GreatArcFromPoints(PlusI, PlusJ, testPrec)
	require.NoError(t, err)

	split := arc.Split(arc.Circle())
	require.Equal(t, core.SplitNeither, split.Location)
	require.Nil(t, split.Minus)
	require.Nil(t, split.Plus)

	split = arc.Split(arc.Circle().Reverse())
	require.Equal(t, core.SplitNeither, split.Location)
}

func TestGreatArcSplitBoth(t *testing.T) {
	arc, err := GreatArcFromPoints(PlusI, PlusJ, testPrec)
	require.NoError(t, err)

	cut := NewPoint2S(0.25*math.Pi, math.Pi/2)
	splitter, err := GreatCircleFromPoints(cut, PlusK, testPrec)
	require.NoError(t, err)

	split := arc.Split(splitter)
	require.Equal(t, core.SplitBoth, split.Location)
	checkArc(t, *split.Minus, PlusI, cut)
	checkArc(t, *split.Plus, cut, PlusJ)
	require.InDelta(t, arc.Size(), split.Minus.Size()+split.Plus.Size(), testEps)
}

func TestGreatArcSplitOneSide(t *testing.T) {
	arc, err := GreatArcFromPoints(PlusI, PlusJ, testPrec)
	require.NoError(t, err)

	minusSide, err := GreatCircleFromPole(r3.Vector{X: 1, Y: 1}, testPrec)
	require.NoError(t, err)
	split := arc.Split(minusSide)
	require.Equal(t, core.SplitMinus, split.Location)
	checkArc(t, *split.Minus, PlusI, PlusJ)
	require.Nil(t, split.Plus)

	plusSide, err := GreatCircleFromPole(r3.Vector{X: -1, Y: -1}, testPrec)
	require.NoError(t, err)
	split = arc.Split(plusSide)
	require.Equal(t, core.SplitPlus, split.Location)
	require.Nil(t, split.Minus)
	checkArc(t, *split.Plus, PlusI, PlusJ)
}

func TestGreatArcSplitFull(t *testing.T) {
	equator, err := GreatCircleFromPoints(PlusI, PlusJ, testPrec)
	require.NoError(t, err)
	splitter, err := GreatCircleFromPole(r3.Vector{X: 1}, testPrec)
	require.NoError(t, err)

	split := equator.Span().Split(splitter)
	require.Equal(t, core.SplitBoth, split.Location)
	checkArc(t, *split.Minus, MinusJ, PlusJ)
	checkArc(t, *split.Plus, PlusJ, MinusJ)
	require.InDelta(t, math.Pi, split.Minus.Size(), testEps)
	require.InDelta(t, math.Pi, split.Plus.Size(), testEps)
	require.True(t, split.Minus.Contains(PlusI))
	require.True(t, split.Plus.Contains(MinusI))
}

func TestGreatArcEq(t *testing.T) {
	a, err := GreatArcFromPoints(PlusI, PlusJ, testPrec)
	require.NoError(t, err)
	b, err := GreatArcFromPoints(PlusI, PlusJ, testPrec)
	require.NoError(t, err)
	c, err := GreatArcFromPoints(PlusI, NewPoint2S(0.25*math.Pi, math.Pi/2), testPrec)
	require.NoError(t, err)
	d, err := GreatArcFromPoints(PlusJ, PlusK, testPrec)
	require.NoError(t, err)

	require.True(t, a.Eq(b, testPrec))
	require.False(t, a.Eq(c, testPrec))
	require.False(t, a.Eq(d, testPrec))
	require.False(t, a.Eq(a.Circle().Span(), testPrec))
}
