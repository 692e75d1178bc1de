// Copyright (c) 2026, raster2d. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom2d

import (
	"fmt"
	"math"
)

// Transform2D is a 2x3 affine matrix represented as three Vector2
// columns: the x basis, the y basis, and the origin (translation).
//
//	[ X.X  Y.X  Origin.X ]
//	[ X.Y  Y.Y  Origin.Y ]
type Transform2D struct {
	X      Vector2
	Y      Vector2
	Origin Vector2
}

// Identity2D is the identity transform.
var Identity2D = Transform2D{X: Vector2{1, 0}, Y: Vector2{0, 1}}

// BasisTransform2D builds a Transform2D from its three basis vectors.
func BasisTransform2D(x, y, origin Vector2) Transform2D {
	return Transform2D{X: x, Y: y, Origin: origin}
}

// RotatedTransform2D builds a transform that rotates by angle radians about
// the origin, with no translation: x=(cos,sin), y=(-sin,cos).
func RotatedTransform2D(angle float64) Transform2D {
	s, c := math.Sincos(angle)
	return Transform2D{X: Vector2{c, s}, Y: Vector2{-s, c}}
}

// TranslatedTransform2D builds a pure-translation transform with the
// given origin and identity basis.
func TranslatedTransform2D(origin Vector2) Transform2D {
	return Transform2D{X: Vector2{1, 0}, Y: Vector2{0, 1}, Origin: origin}
}

// ScaledTransform2D builds a pure-scale transform with the given scale
// factors and identity origin.
func ScaledTransform2D(sx, sy float64) Transform2D {
	return Transform2D{X: Vector2{sx, 0}, Y: Vector2{0, sy}}
}

// RotationOriginTransform2D builds a transform with the given rotation
// (radians) and origin, matching the teacher's (rotation, origin)
// constructor convention.
func RotationOriginTransform2D(angle float64, origin Vector2) Transform2D {
	t := RotatedTransform2D(angle)
	t.Origin = origin
	return t
}

// Xform applies the transform to a point: x_basis*v.X + y_basis*v.Y + origin.
func (t Transform2D) Xform(v Vector2) Vector2 {
	return Vector2{
		X: t.X.X*v.X + t.Y.X*v.Y + t.Origin.X,
		Y: t.X.Y*v.X + t.Y.Y*v.Y + t.Origin.Y,
	}
}

// XformVector applies only the linear (basis) part of the transform,
// ignoring translation — useful for transforming direction vectors.
func (t Transform2D) XformVector(v Vector2) Vector2 {
	return Vector2{
		X: t.X.X*v.X + t.Y.X*v.Y,
		Y: t.X.Y*v.X + t.Y.Y*v.Y,
	}
}

// Mul returns the composition t * o, i.e. apply o first, then t. Matrix
// multiplication of the augmented 3x3 forms.
func (t Transform2D) Mul(o Transform2D) Transform2D {
	return Transform2D{
		X:      t.XformVector(o.X),
		Y:      t.XformVector(o.Y),
		Origin: t.Xform(o.Origin),
	}
}

// Det returns the determinant of the 2x2 linear part of t.
func (t Transform2D) Det() float64 {
	return t.X.X*t.Y.Y - t.X.Y*t.Y.X
}

// Inverse returns the affine inverse of t. Returns a SingularMatrix error
// if det == 0, per spec.
func (t Transform2D) Inverse() (Transform2D, error) {
	det := t.Det()
	if det == 0 {
		return Transform2D{}, fmt.Errorf("geom2d: singular transform, determinant is zero")
	}
	invDet := 1 / det

	// Inverse of the 2x2 basis block.
	ix := Vector2{t.Y.Y * invDet, -t.X.Y * invDet}
	iy := Vector2{-t.Y.X * invDet, t.X.X * invDet}

	inv := Transform2D{X: ix, Y: iy}
	inv.Origin = inv.XformVector(t.Origin).Neg()
	return inv, nil
}

// Translated returns a copy of t with offset applied in t's local
// coordinate system: t.Mul(TranslatedTransform2D(offset)).
func (t Transform2D) Translated(offset Vector2) Transform2D {
	return t.Mul(TranslatedTransform2D(offset))
}

// Scaled returns a copy of t with its basis vectors scaled.
func (t Transform2D) Scaled(sx, sy float64) Transform2D {
	t.X = t.X.MulScalar(sx)
	t.Y = t.Y.MulScalar(sy)
	return t
}

// Rotated returns a copy of t rotated by angle radians, applied before t
// (t.Mul(Rotate)).
func (t Transform2D) Rotated(angle float64) Transform2D {
	return t.Mul(RotatedTransform2D(angle))
}

// GetRotation returns the rotation angle, in radians, encoded in t's
// x basis: atan2(x.y, x.x).
func (t Transform2D) GetRotation() float64 {
	return math.Atan2(t.X.Y, t.X.X)
}

// GetScale returns the length of each basis vector: (|x|, |y|).
func (t Transform2D) GetScale() Vector2 {
	return Vector2{t.X.Length(), t.Y.Length()}
}
