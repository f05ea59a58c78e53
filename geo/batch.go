/*
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/glog"
	"github.com/viterin/vek"

	"github.com/singhbaljit/commons-geometry/core"
	"github.com/singhbaljit/commons-geometry/spherical/twod"
)

// BatchClassifier classifies many points against one convex region using
// vectorized slice math. Points are laid out in columns and the dot product
// with each bounding circle pole is computed per column, so the cost is one
// pass per bound instead of one pass per point.
type BatchClassifier struct {
	poles []r3.Vector
	// tol is the region tolerance mapped into dot-product space. A point at
	// angular offset eps from a bounding circle has pole dot product sin(eps),
	// so thresholding dots at sin(eps) classifies exactly like the region.
	tol float64
}

// NewBatchClassifier returns a classifier for the given region.
func NewBatchClassifier(a *twod.ConvexArea2S) *BatchClassifier {
	bounds := a.Boundaries()
	bc := &BatchClassifier{poles: make([]r3.Vector, len(bounds))}
	for i, b := range bounds {
		bc.poles[i] = b.Circle().Pole()
	}
	if len(bounds) > 0 {
		bc.tol = math.Sin(bounds[0].Precision().Eps())
	}
	return bc
}

// ClassifyAll locates every point relative to the region. The result has one
// entry per input point, in order.
func (bc *BatchClassifier) ClassifyAll(pts []twod.Point2S) []core.RegionLocation {
	n := len(pts)
	if n == 0 {
		return nil
	}
	out := make([]core.RegionLocation, n)
	if len(bc.poles) == 0 {
		// the full sphere contains everything
		return out
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)
	for i, pt := range pts {
		v := pt.Vector()
		xs[i] = v.X
		ys[i] = v.Y
		zs[i] = v.Z
	}

	// minimum pole dot product per point across all bounds
	var mins []float64
	for _, p := range bc.poles {
		dots := vek.MulNumber(xs, p.X)
		vek.Add_Inplace(dots, vek.MulNumber(ys, p.Y))
		vek.Add_Inplace(dots, vek.MulNumber(zs, p.Z))
		if mins == nil {
			mins = dots
		} else {
			vek.Minimum_Inplace(mins, dots)
		}
	}

	for i, d := range mins {
		switch {
		case d < -bc.tol:
			out[i] = core.RegionOutside
		case d <= bc.tol:
			out[i] = core.RegionBoundary
		default:
			out[i] = core.RegionInside
		}
	}
	glog.V(2).Infof("classified %d points against %d bounds", n, len(bc.poles))
	return out
}

// CountInside returns the number of points inside the region or on its
// boundary.
func (bc *BatchClassifier) CountInside(pts []twod.Point2S) int {
	var count int
	for _, loc := range bc.ClassifyAll(pts) {
		if loc != core.RegionOutside {
			count++
		}
	}
	return count
}
