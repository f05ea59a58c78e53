/*
 * SPDX-License-Identifier: Apache-2.0
 */

package twod

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"

	"github.com/singhbaljit/commons-geometry/precision"
)

func TestPointAxisDirections(t *testing.T) {
	assertVectorsEq(t, r3.Vector{X: 1}, PlusI.Vector())
	assertVectorsEq(t, r3.Vector{X: -1}, MinusI.Vector())
	assertVectorsEq(t, r3.Vector{Y: 1}, PlusJ.Vector())
	assertVectorsEq(t, r3.Vector{Y: -1}, MinusJ.Vector())
	assertVectorsEq(t, r3.Vector{Z: 1}, PlusK.Vector())
	assertVectorsEq(t, r3.Vector{Z: -1}, MinusK.Vector())
}

func TestNewPoint2S(t *testing.T) {
	p := NewPoint2S(1, 0.5)
	require.InDelta(t, 1, p.Azimuth(), testEps)
	require.InDelta(t, 0.5, p.Polar(), testEps)
	require.InDelta(t, 1, p.Vector().Norm(), testEps)

	// azimuth wraps into [0, 2pi)
	p = NewPoint2S(2*math.Pi+1, 0.5)
	require.InDelta(t, 1, p.Azimuth(), testEps)

	p = NewPoint2S(-0.5, 0.25*math.Pi)
	require.InDelta(t, 2*math.Pi-0.5, p.Azimuth(), testEps)

	// negative polar angles fold back over the pole, shifting the azimuth
	p = NewPoint2S(0, -math.Pi/2)
	assertPointsEq(t, MinusI, p)
	require.InDelta(t, math.Pi, p.Azimuth(), testEps)
	require.InDelta(t, math.Pi/2, p.Polar(), testEps)

	// every azimuth maps to the same point at the poles
	assertPointsEq(t, PlusK, NewPoint2S(1.5, 0))
	assertPointsEq(t, MinusK, NewPoint2S(-2.4, math.Pi))
}

func TestPointFromVector(t *testing.T) {
	p := Point2SFromVector(r3.Vector{X: 2})
	assertPointsEq(t, PlusI, p)
	require.InDelta(t, 1, p.Vector().Norm(), testEps)

	p = Point2SFromVector(r3.Vector{X: 1, Y: 1, Z: math.Sqrt2})
	require.InDelta(t, 0.25*math.Pi, p.Azimuth(), testEps)
	require.InDelta(t, 0.25*math.Pi, p.Polar(), testEps)

	p = Point2SFromVector(r3.Vector{})
	require.True(t, p.IsNaN())
	require.False(t, p.IsFinite())
}

func TestPointS2RoundTrip(t *testing.T) {
	p := NewPoint2S(0.3, 1.1)
	back := Point2SFromS2(p.S2())
	assertPointsEq(t, p, back)
	assertVectorsEq(t, p.Vector(), back.Vector())
}

func TestPointDistance(t *testing.T) {
	require.InDelta(t, 0, PlusI.Distance(PlusI).Radians(), testEps)
	require.InDelta(t, math.Pi/2, PlusI.Distance(PlusJ).Radians(), testEps)
	require.InDelta(t, math.Pi/2, PlusI.Distance(PlusK).Radians(), testEps)
	require.InDelta(t, math.Pi, PlusI.Distance(MinusI).Radians(), testEps)

	a := NewPoint2S(0, 0.25*math.Pi)
	b := NewPoint2S(math.Pi, 0.25*math.Pi)
	require.InDelta(t, math.Pi/2, a.Distance(b).Radians(), testEps)
}

func TestPointSlerp(t *testing.T) {
	assertPointsEq(t, PlusI, PlusI.Slerp(PlusJ, 0))
	assertPointsEq(t, PlusJ, PlusI.Slerp(PlusJ, 1))
	assertPointsEq(t, NewPoint2S(0.25*math.Pi, math.Pi/2), PlusI.Slerp(PlusJ, 0.5))
	assertPointsEq(t, NewPoint2S(0.125*math.Pi, math.Pi/2), PlusI.Slerp(PlusJ, 0.25))
}

func TestPointAntipodal(t *testing.T) {
	assertPointsEq(t, MinusI, PlusI.Antipodal())
	assertPointsEq(t, PlusK, MinusK.Antipodal())

	p := NewPoint2S(0.3, 0.4)
	assertPointsEq(t, NewPoint2S(0.3+math.Pi, math.Pi-0.4), p.Antipodal())
	require.InDelta(t, math.Pi, p.Distance(p.Antipodal()).Radians(), testEps)
}

func TestPointEq(t *testing.T) {
	p := NewPoint2S(1, 1)

	require.True(t, p.Eq(NewPoint2S(1, 1), testPrec))
	require.True(t, p.Eq(NewPoint2S(1+1e-12, 1), testPrec))
	require.True(t, p.Eq(NewPoint2S(1, 1-1e-12), testPrec))

	require.False(t, p.Eq(NewPoint2S(1+1e-8, 1), testPrec))
	require.False(t, p.Eq(NewPoint2S(1, 1+1e-8), testPrec))

	// azimuths of pole points are irrelevant
	require.True(t, NewPoint2S(0, 0).Eq(NewPoint2S(2, 0), testPrec))

	loose := precision.OfEpsilon(1e-2)
	require.True(t, p.Eq(NewPoint2S(1.005, 1), loose))
}

func TestComparePolarAzimuth(t *testing.T) {
	require.Equal(t, -1, ComparePolarAzimuth(NewPoint2S(1, 0.5), NewPoint2S(1, 0.6)))
	require.Equal(t, 1, ComparePolarAzimuth(NewPoint2S(1, 0.6), NewPoint2S(1, 0.5)))

	// equal polar angles fall back to azimuth order
	require.Equal(t, -1, ComparePolarAzimuth(NewPoint2S(0.1, 0.5), NewPoint2S(0.2, 0.5)))
	require.Equal(t, 1, ComparePolarAzimuth(NewPoint2S(0.2, 0.5), NewPoint2S(0.1, 0.5)))

	require.Equal(t, 0, ComparePolarAzimuth(NewPoint2S(0.1, 0.5), NewPoint2S(0.1, 0.5)))

	// polar dominates azimuth
	require.Equal(t, -1, ComparePolarAzimuth(NewPoint2S(5, 0.5), NewPoint2S(0.1, 0.6)))
}
