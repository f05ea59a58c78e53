/*
 * SPDX-License-Identifier: Apache-2.0
 */

package oned

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/singhbaljit/commons-geometry/precision"
)

var testPrec = precision.OfEpsilon(1e-10)

func TestNewPoint1S(t *testing.T) {
	p := NewPoint1S(math.Pi / 4)
	require.Equal(t, math.Pi/4, p.Azimuth())
	require.Equal(t, math.Pi/4, p.NormalizedAzimuth())

	p = NewPoint1S(-math.Pi / 2)
	require.Equal(t, -math.Pi/2, p.Azimuth())
	require.InDelta(t, 1.5*math.Pi, p.NormalizedAzimuth(), 1e-15)

	p = NewPoint1S(4 * math.Pi)
	require.InDelta(t, 0, p.NormalizedAzimuth(), 1e-15)
}

func TestNormalizeAzimuthRange(t *testing.T) {
	for _, az := range []float64{-1e-20, -4 * math.Pi, 7 * math.Pi, 1e300, -1e300, 0} {
		n := NormalizeAzimuth(az)
		require.GreaterOrEqual(t, n, 0.0, "azimuth %v", az)
		require.Less(t, n, 2*math.Pi, "azimuth %v", az)
	}
}

func TestPoint1SDistance(t *testing.T) {
	a := NewPoint1S(0)
	b := NewPoint1S(math.Pi / 2)
	require.InDelta(t, math.Pi/2, a.Distance(b), 1e-15)
	require.InDelta(t, math.Pi/2, b.Distance(a), 1e-15)

	// wraparound: shortest way across zero
	c := NewPoint1S(0.1)
	d := NewPoint1S(2*math.Pi - 0.1)
	require.InDelta(t, 0.2, c.Distance(d), 1e-15)
}

func TestPoint1SAntipodal(t *testing.T) {
	p := NewPoint1S(math.Pi / 4)
	require.InDelta(t, 1.25*math.Pi, p.Antipodal().NormalizedAzimuth(), 1e-15)
	require.True(t, p.Antipodal().Antipodal().Eq(p, testPrec))
}

func TestPoint1SEq(t *testing.T) {
	p := NewPoint1S(1.0)
	require.True(t, p.Eq(NewPoint1S(1.0+1e-11), testPrec))
	require.True(t, p.Eq(NewPoint1S(1.0+2*math.Pi), testPrec))
	require.False(t, p.Eq(NewPoint1S(1.1), testPrec))
}

func TestPoint1SIsNaN(t *testing.T) {
	require.True(t, NewPoint1S(math.NaN()).IsNaN())
	require.False(t, NewPoint1S(1).IsNaN())
}
