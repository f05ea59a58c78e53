/*
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"fmt"

	"github.com/golang/geo/s1"

	"github.com/singhbaljit/commons-geometry/spherical/twod"
)

// EarthRadiusMeters is the radius of the earth in meters (in a spherical
// earth model).
const EarthRadiusMeters = 1000 * 6371

// Length denotes a length on earth in meters.
type Length float64

// Area denotes an area on earth in square meters.
type Area float64

// EarthDistance converts an angle to a distance on earth.
func EarthDistance(angle s1.Angle) Length {
	return Length(angle.Radians() * EarthRadiusMeters)
}

// EarthAngle converts a distance on earth in meters to an angle.
func EarthAngle(dist float64) s1.Angle {
	return s1.Angle(dist / EarthRadiusMeters)
}

// EarthArea returns the area of the region on earth.
func EarthArea(a *twod.ConvexArea2S) Area {
	return Area(a.Size() * EarthRadiusMeters * EarthRadiusMeters)
}

// EarthBoundaryLength returns the length of the region's boundary on earth.
func EarthBoundaryLength(a *twod.ConvexArea2S) Length {
	return Length(a.BoundarySize() * EarthRadiusMeters)
}

// String converts the length to human readable units.
func (l Length) String() string {
	switch {
	case l > 1000:
		return fmt.Sprintf("%.3f km", l/1000)
	case l < 1:
		return fmt.Sprintf("%.3f cm", l*100)
	default:
		return fmt.Sprintf("%.3f m", l)
	}
}

const (
	km2 = 1000 * 1000
	cm2 = 100 * 100
)

// String converts the area to human readable units.
func (a Area) String() string {
	switch {
	case a > km2:
		return fmt.Sprintf("%.3f km^2", a/km2)
	case a < 1:
		return fmt.Sprintf("%.3f cm^2", a*cm2)
	default:
		return fmt.Sprintf("%.3f m^2", a)
	}
}
