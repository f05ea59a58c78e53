/*
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/singhbaljit/commons-geometry/core"
	"github.com/singhbaljit/commons-geometry/spherical/twod"
)

func TestBatchClassifier(t *testing.T) {
	area := octantArea(t)
	bc := NewBatchClassifier(area)

	pts := []twod.Point2S{
		twod.NewPoint2S(0.25*math.Pi, 0.25*math.Pi), // interior
		twod.PlusI,                      // vertex
		twod.NewPoint2S(0.25*math.Pi, math.Pi/2), // edge midpoint
		twod.MinusK,
		twod.NewPoint2S(1.25*math.Pi, math.Pi/2),
	}

	got := bc.ClassifyAll(pts)
	require.Equal(t, []core.RegionLocation{
		core.RegionInside,
		core.RegionBoundary,
		core.RegionBoundary,
		core.RegionOutside,
		core.RegionOutside,
	}, got)

	require.Equal(t, 3, bc.CountInside(pts))
	require.Nil(t, bc.ClassifyAll(nil))
}

func TestBatchClassifierMatchesRegion(t *testing.T) {
	area := octantArea(t)
	bc := NewBatchClassifier(area)

	var pts []twod.Point2S
	for az := 0.0; az < 2*math.Pi; az += 0.37 {
		for polar := 0.21; polar < math.Pi; polar += 0.29 {
			pts = append(pts, twod.NewPoint2S(az, polar))
		}
	}

	got := bc.ClassifyAll(pts)
	require.Len(t, got, len(pts))
	for i, pt := range pts {
		require.Equal(t, area.Classify(pt), got[i], "point %v", pt)
	}
}

func TestBatchClassifierFull(t *testing.T) {
	bc := NewBatchClassifier(twod.FullConvexArea2S())

	pts := []twod.Point2S{twod.PlusI, twod.MinusJ, twod.PlusK}
	for _, loc := range bc.ClassifyAll(pts) {
		require.Equal(t, core.RegionInside, loc)
	}
	require.Equal(t, len(pts), bc.CountInside(pts))
}
