/*
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"io"

	"github.com/golang/glog"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"

	"github.com/singhbaljit/commons-geometry/precision"
	"github.com/singhbaljit/commons-geometry/spherical/twod"
)

// Feature is a named convex region read from a geojson feature collection.
type Feature struct {
	Name string
	Area *twod.ConvexArea2S
}

// ReadFeatures reads a geojson FeatureCollection and converts its polygon
// features to convex regions. Features with other geometry types are skipped.
// The feature name comes from the "name" property when present.
func ReadFeatures(r io.Reader, prec precision.Context) ([]Feature, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read feature collection")
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot decode feature collection")
	}

	var features []Feature
	for i, f := range fc.Features {
		if f.Geometry == nil || !f.Geometry.IsPolygon() {
			glog.V(2).Infof("skipping feature %d with geometry type %q", i, geometryType(f))
			continue
		}
		area, err := areaFromRings(f.Geometry.Polygon, prec)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot convert feature %d", i)
		}
		features = append(features, Feature{
			Name: f.PropertyMustString("name", ""),
			Area: area,
		})
	}
	return features, nil
}

func geometryType(f *geojson.Feature) string {
	if f.Geometry == nil {
		return "none"
	}
	return string(f.Geometry.Type)
}

// areaFromRings converts geojson polygon coordinates. Only the outer ring is
// used; holes cannot appear in a convex region.
func areaFromRings(rings [][][]float64, prec precision.Context) (*twod.ConvexArea2S, error) {
	if len(rings) == 0 {
		return nil, errors.Wrap(twod.ErrInvalidBoundary, "polygon has no rings")
	}
	ring := rings[0]
	if len(ring) < 4 {
		return nil, errors.Wrapf(twod.ErrInvalidBoundary, "cannot convert ring with %d points", len(ring))
	}
	pts := make([]twod.Point2S, len(ring))
	for i, c := range ring {
		if len(c) < 2 {
			return nil, errors.Wrapf(twod.ErrInvalidBoundary, "ring coordinate %d has %d values", i, len(c))
		}
		pts[i] = PointFromDegrees(c[0], c[1])
	}
	return areaFromLoop(pts, prec)
}
