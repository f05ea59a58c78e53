/*
 * SPDX-License-Identifier: Apache-2.0
 */

package twod

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/singhbaljit/commons-geometry/precision"
)

// Transform2S is a rigid transform of the sphere: an orthogonal linear map of
// the underlying space, either a rotation or a rotoreflection. The zero value
// is not usable; construct through the factory functions.
type Transform2S struct {
	rows [3]r3.Vector
}

// IdentityTransform2S returns the identity transform.
func IdentityTransform2S() Transform2S {
	return Transform2S{rows: [3]r3.Vector{
		{X: 1}, {Y: 1}, {Z: 1},
	}}
}

// NewRotation returns the rotation about the axis through the given point by
// the given angle in radians, following the right-hand rule.
func NewRotation(axis Point2S, angle float64) Transform2S {
	a := axis.S2()
	ex := s2.Rotate(s2.Point{Vector: r3.Vector{X: 1}}, a, s1.Angle(angle))
	ey := s2.Rotate(s2.Point{Vector: r3.Vector{Y: 1}}, a, s1.Angle(angle))
	ez := s2.Rotate(s2.Point{Vector: r3.Vector{Z: 1}}, a, s1.Angle(angle))
	return fromColumns(ex.Vector, ey.Vector, ez.Vector)
}

// NewReflection returns the reflection through the plane orthogonal to the
// given point. The point itself maps to its antipode; points on the plane are
// fixed.
func NewReflection(pt Point2S) Transform2S {
	p := pt.Vector()
	return Transform2S{rows: [3]r3.Vector{
		{X: 1 - 2*p.X*p.X, Y: -2 * p.X * p.Y, Z: -2 * p.X * p.Z},
		{X: -2 * p.Y * p.X, Y: 1 - 2*p.Y*p.Y, Z: -2 * p.Y * p.Z},
		{X: -2 * p.Z * p.X, Y: -2 * p.Z * p.Y, Z: 1 - 2*p.Z*p.Z},
	}}
}

func fromColumns(cx, cy, cz r3.Vector) Transform2S {
	return Transform2S{rows: [3]r3.Vector{
		{X: cx.X, Y: cy.X, Z: cz.X},
		{X: cx.Y, Y: cy.Y, Z: cz.Y},
		{X: cx.Z, Y: cy.Z, Z: cz.Z},
	}}
}

// ApplyVector applies the transform to a vector.
func (t Transform2S) ApplyVector(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: t.rows[0].Dot(v),
		Y: t.rows[1].Dot(v),
		Z: t.rows[2].Dot(v),
	}
}

// Apply applies the transform to a point.
func (t Transform2S) Apply(pt Point2S) Point2S {
	return Point2SFromVector(t.ApplyVector(pt.Vector()))
}

// Compose returns the transform that applies o first and then t.
func (t Transform2S) Compose(o Transform2S) Transform2S {
	ocx := r3.Vector{X: o.rows[0].X, Y: o.rows[1].X, Z: o.rows[2].X}
	ocy := r3.Vector{X: o.rows[0].Y, Y: o.rows[1].Y, Z: o.rows[2].Y}
	ocz := r3.Vector{X: o.rows[0].Z, Y: o.rows[1].Z, Z: o.rows[2].Z}
	return fromColumns(t.ApplyVector(ocx), t.ApplyVector(ocy), t.ApplyVector(ocz))
}

// Inverse returns the inverse transform. Since the transform is orthogonal,
// this is the transpose.
func (t Transform2S) Inverse() Transform2S {
	return fromColumns(t.rows[0], t.rows[1], t.rows[2])
}

// PreservesOrientation reports whether the transform is a rotation rather
// than a rotoreflection.
func (t Transform2S) PreservesOrientation() bool {
	return t.rows[0].Dot(t.rows[1].Cross(t.rows[2])) > 0
}

// Eq reports whether the transforms are equivalent within the precision,
// comparing entries of the matrices.
func (t Transform2S) Eq(o Transform2S, prec precision.Context) bool {
	for i := range t.rows {
		if !prec.Eq(t.rows[i].X, o.rows[i].X) ||
			!prec.Eq(t.rows[i].Y, o.rows[i].Y) ||
			!prec.Eq(t.rows[i].Z, o.rows[i].Z) {
			return false
		}
	}
	return true
}

func (t Transform2S) String() string {
	return fmt.Sprintf("Transform2S%v", t.rows)
}
