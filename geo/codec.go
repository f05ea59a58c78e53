/*
 * SPDX-License-Identifier: Apache-2.0
 */

// Package geo converts between spherical regions and the geographic
// interchange formats, treating the unit sphere as a spherical earth model.
// Coordinates follow the geojson convention of [longitude, latitude] in
// degrees.
package geo

import (
	"encoding/binary"
	"math"
	"slices"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"

	"github.com/singhbaljit/commons-geometry/core"
	"github.com/singhbaljit/commons-geometry/precision"
	"github.com/singhbaljit/commons-geometry/spherical/twod"
)

// ToGeomPolygon converts the region to a polygon in lon/lat degree
// coordinates. Boundary arcs are subdivided so that no edge of the polygon
// spans more than maxEdge along its great circle. The full sphere has no
// boundary and cannot be converted.
func ToGeomPolygon(a *twod.ConvexArea2S, maxEdge s1.Angle) (*geom.Polygon, error) {
	if a.IsFull() {
		return nil, errors.New("cannot convert the full sphere to a polygon")
	}
	if maxEdge.Radians() <= 0 {
		return nil, errors.Errorf("invalid max edge length %v", maxEdge)
	}

	var ring []geom.Coord
	for _, arc := range a.BoundaryPath().Arcs() {
		c := arc.Circle()
		start := arc.Interval().Min().Azimuth()
		n := int(math.Ceil(arc.Size() / maxEdge.Radians()))
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			az := start + arc.Size()*float64(i)/float64(n)
			ring = append(ring, coordOf(c.PointAt(az)))
		}
	}
	if len(ring) < 3 {
		return nil, errors.Errorf("max edge length %v leaves too few ring points", maxEdge)
	}
	ring = append(ring, ring[0])

	poly, err := geom.NewPolygon(geom.XY).SetCoords([][]geom.Coord{ring})
	if err != nil {
		return nil, errors.Wrapf(err, "cannot build polygon ring")
	}
	return poly, nil
}

// FromGeomPolygon converts the outer ring of the polygon to a convex region.
// Interior rings are ignored. Neither geojson nor WKB restricts ring
// orientation, so the ring is assumed to enclose less than a hemisphere and
// is reversed when the given orientation turns it inside out. Rings that are
// not convex on the sphere return ErrInvalidBoundary.
func FromGeomPolygon(p *geom.Polygon, prec precision.Context) (*twod.ConvexArea2S, error) {
	if p.NumLinearRings() == 0 {
		return nil, errors.Wrap(twod.ErrInvalidBoundary, "polygon has no rings")
	}
	r := p.LinearRing(0)
	n := r.NumCoords()
	if n < 4 {
		return nil, errors.Wrapf(twod.ErrInvalidBoundary, "cannot convert ring with %d points", n)
	}
	pts := make([]twod.Point2S, n)
	for i := 0; i < n; i++ {
		c := r.Coord(i)
		pts[i] = PointFromDegrees(c.X(), c.Y())
	}
	return areaFromLoop(pts, prec)
}

// ToGeoJSON encodes the region as a geojson polygon, subdividing boundary
// arcs at maxEdge.
func ToGeoJSON(a *twod.ConvexArea2S, maxEdge s1.Angle) ([]byte, error) {
	p, err := ToGeomPolygon(a, maxEdge)
	if err != nil {
		return nil, err
	}
	return geojson.Marshal(p)
}

// FromGeoJSON decodes a geojson polygon into a convex region.
func FromGeoJSON(data []byte, prec precision.Context) (*twod.ConvexArea2S, error) {
	var g geom.T
	if err := geojson.Unmarshal(data, &g); err != nil {
		return nil, errors.Wrapf(err, "cannot decode geojson")
	}
	p, ok := g.(*geom.Polygon)
	if !ok {
		return nil, errors.Errorf("cannot convert geometry of type %T", g)
	}
	return FromGeomPolygon(p, prec)
}

// ToWKB encodes the region as a little-endian WKB polygon, subdividing
// boundary arcs at maxEdge.
func ToWKB(a *twod.ConvexArea2S, maxEdge s1.Angle) ([]byte, error) {
	p, err := ToGeomPolygon(a, maxEdge)
	if err != nil {
		return nil, err
	}
	return wkb.Marshal(p, binary.LittleEndian)
}

// FromWKB decodes a WKB polygon into a convex region.
func FromWKB(data []byte, prec precision.Context) (*twod.ConvexArea2S, error) {
	g, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot decode wkb")
	}
	p, ok := g.(*geom.Polygon)
	if !ok {
		return nil, errors.Errorf("cannot convert geometry of type %T", g)
	}
	return FromGeomPolygon(p, prec)
}

// PointFromDegrees returns the spherical point at the given longitude and
// latitude in degrees.
func PointFromDegrees(lon, lat float64) twod.Point2S {
	return twod.Point2SFromS2(s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon)))
}

// DegreesOf returns the longitude and latitude of the point in degrees.
func DegreesOf(pt twod.Point2S) (lon, lat float64) {
	ll := s2.LatLngFromPoint(pt.S2())
	return ll.Lng.Degrees(), ll.Lat.Degrees()
}

func coordOf(pt twod.Point2S) geom.Coord {
	lon, lat := DegreesOf(pt)
	return geom.Coord{lon, lat}
}

// areaFromLoop builds a convex region from a closed ring of points. The
// repeated closing point is dropped. When the loop orientation puts the
// vertices outside the resulting region, the loop ran clockwise and is
// retried reversed.
func areaFromLoop(pts []twod.Point2S, prec precision.Context) (*twod.ConvexArea2S, error) {
	if len(pts) > 1 && pts[0].Eq(pts[len(pts)-1], prec) {
		pts = pts[:len(pts)-1]
	}

	area, err := twod.ConvexArea2SFromVertexLoop(pts, prec)
	if err != nil || !containsAll(area, pts) {
		rev := slices.Clone(pts)
		slices.Reverse(rev)
		area, err = twod.ConvexArea2SFromVertexLoop(rev, prec)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot convert ring")
		}
		if !containsAll(area, rev) {
			return nil, errors.Wrap(twod.ErrInvalidBoundary, "ring is not convex on the sphere")
		}
	}
	return area, nil
}

func containsAll(a *twod.ConvexArea2S, pts []twod.Point2S) bool {
	for _, pt := range pts {
		if a.Classify(pt) == core.RegionOutside {
			return false
		}
	}
	return true
}
