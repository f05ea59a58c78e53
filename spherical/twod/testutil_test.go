/*
 * SPDX-License-Identifier: Apache-2.0
 */

package twod

import (
	"math"
	"slices"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"

	"github.com/singhbaljit/commons-geometry/core"
	"github.com/singhbaljit/commons-geometry/precision"
)

const testEps = 1e-10

var testPrec = precision.OfEpsilon(testEps)

type pointClassifier interface {
	Classify(Point2S) core.RegionLocation
}

func checkClassify(t *testing.T, r pointClassifier, want core.RegionLocation, pts ...Point2S) {
	t.Helper()
	for _, p := range pts {
		require.Equalf(t, want, r.Classify(p), "unexpected location for point %v", p)
	}
}

func assertPointsEq(t *testing.T, want, got Point2S) {
	t.Helper()
	require.Truef(t, want.Eq(got, testPrec), "expected point %v but was %v", want, got)
}

func assertVectorsEq(t *testing.T, want, got r3.Vector) {
	t.Helper()
	require.Truef(t, want.Sub(got).Norm() <= testEps, "expected vector %v but was %v", want, got)
}

func checkArc(t *testing.T, arc GreatArc, start, end Point2S) {
	t.Helper()
	assertPointsEq(t, start, arc.StartPoint())
	assertPointsEq(t, end, arc.EndPoint())
}

func assertPath(t *testing.T, path *GreatArcPath, want ...Point2S) {
	t.Helper()
	got := path.Vertices()
	require.Lenf(t, got, len(want), "expected path vertices %v but was %v", want, got)
	for i := range want {
		require.Truef(t, want[i].Eq(got[i], testPrec),
			"unexpected point at index %d: expected path vertices %v but was %v", i, want, got)
	}
}

func sortArcs(arcs []GreatArc) []GreatArc {
	out := slices.Clone(arcs)
	slices.SortFunc(out, func(a, b GreatArc) int {
		return ComparePolarAzimuth(a.StartPoint(), b.StartPoint())
	})
	return out
}

// triangleCentroid computes the expected centroid of a spherical triangle as
// the sum of the edge plane normals scaled by the edge lengths.
func triangleCentroid(p1, p2, p3 Point2S) Point2S {
	v1 := p1.Vector()
	v2 := p2.Vector()
	v3 := p3.Vector()

	var sum r3.Vector
	sum = sum.Add(v1.Cross(v2).Normalize().Mul(v1.Angle(v2).Radians()))
	sum = sum.Add(v2.Cross(v3).Normalize().Mul(v2.Angle(v3).Radians()))
	sum = sum.Add(v3.Cross(v1).Normalize().Mul(v3.Angle(v1).Radians()))

	return Point2SFromVector(sum)
}

// checkCentroidConsistency splits the area through its centroid in a fan of
// directions and checks that the piece sizes and weighted centroid vectors
// recombine into those of the whole.
func checkCentroidConsistency(t *testing.T, area *ConvexArea2S) {
	t.Helper()

	centroid, ok := area.Centroid()
	require.True(t, ok)
	size := area.Size()

	checkClassify(t, area, core.RegionInside, centroid)

	circle, err := GreatCircleFromPole(centroid.Vector(), testPrec)
	require.NoError(t, err)
	for az := 0.0; az <= 2*math.Pi; az += 0.2 {
		pt := circle.PointAt(az)
		splitter, err := GreatCircleFromPoints(centroid, pt, testPrec)
		require.NoError(t, err)

		split := area.Split(splitter)
		require.Equal(t, core.SplitBoth, split.Location)

		minus := split.Minus
		plus := split.Plus

		computed := Point2SFromVector(
			minus.WeightedCentroidVector().Add(plus.WeightedCentroidVector()))

		require.InDelta(t, size, minus.Size()+plus.Size(), testEps)
		assertPointsEq(t, centroid, computed)
	}
}
