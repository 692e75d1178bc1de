// Copyright (c) 2026, raster2d. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package homography fits and applies a 3x3 projective transform from
// four source points to four destination points, solved via Gauss-Jordan
// elimination with partial pivoting.
//
// Grounded on the teacher's math32 matrix inversion style (Mat4.Inverse
// in mat_test.go exercises a similarly dense linear solve) generalized
// to an 8x8 augmented system, since the teacher's own Matrix2/Mat4 types
// only invert their own fixed small forms and have no general linear
// solver to adapt directly.
package homography

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/rifa-456/raster2d/geom2d"
)

// Matrix is a row-major 3x3 matrix.
type Matrix [3][3]float64

// Identity is the 3x3 identity matrix.
var Identity = Matrix{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// pivotEpsilon is the near-singular-pivot threshold below which the
// solver reports a recoverable failure instead of dividing by a tiny
// number.
const pivotEpsilon = 1e-9

// Compute solves for the 3x3 homography mapping each src[i] to dst[i],
// for exactly 4 point pairs. It builds the 8x8 linear system
//
//	[x y 1 0 0 0 -xu -yu][h] = u
//	[0 0 0 x y 1 -xv -yv][h] = v
//
// and solves it by Gauss-Jordan elimination with partial pivoting,
// normalizing so h[2][2] == 1.
//
// src and dst are fixed-size arrays, so the point count is always 4 and
// Compute has no error return. If the solve hits a near-singular pivot
// (recoverable per spec), Compute logs at Error level and returns the
// identity matrix — this soft-fail path is part of the documented
// contract and must not be turned into a hard error.
func Compute(src, dst [4]geom2d.Vector2) Matrix {
	var a [8][8]float64
	var b [8]float64

	for i := 0; i < 4; i++ {
		x, y := src[i].X, src[i].Y
		u, v := dst[i].X, dst[i].Y

		a[2*i] = [8]float64{x, y, 1, 0, 0, 0, -x * u, -y * u}
		b[2*i] = u

		a[2*i+1] = [8]float64{0, 0, 0, x, y, 1, -x * v, -y * v}
		b[2*i+1] = v
	}

	h, ok := gaussJordan(a, b)
	if !ok {
		slog.Default().Error("homography: near-singular pivot, falling back to identity")
		return Identity
	}

	m := Matrix{
		{h[0], h[1], h[2]},
		{h[3], h[4], h[5]},
		{h[6], h[7], 1},
	}
	return m
}

// gaussJordan solves a*x = b for the 8x8 system using Gauss-Jordan
// elimination with partial pivoting (pivot row = argmax |a[r][col]| for
// r in [col,n)). Returns ok=false if any pivot's magnitude falls below
// pivotEpsilon.
func gaussJordan(a [8][8]float64, b [8]float64) (x [8]float64, ok bool) {
	const n = 8

	for col := 0; col < n; col++ {
		pivotRow := col
		best := math.Abs(a[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(a[r][col]); v > best {
				best = v
				pivotRow = r
			}
		}
		if best < pivotEpsilon {
			return x, false
		}
		if pivotRow != col {
			a[col], a[pivotRow] = a[pivotRow], a[col]
			b[col], b[pivotRow] = b[pivotRow], b[col]
		}

		pivot := a[col][col]
		for c := col; c < n; c++ {
			a[col][c] /= pivot
		}
		b[col] /= pivot

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := a[r][col]
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				a[r][c] -= factor * a[col][c]
			}
			b[r] -= factor * b[col]
		}
	}

	return b, true
}

// denomEpsilon is the near-zero-denominator threshold below which Apply
// returns the input point unchanged rather than dividing.
const denomEpsilon = 1e-9

// Apply maps (x, y) through the homography m via the standard projective
// divide. If the homogeneous denominator's magnitude is below
// denomEpsilon, the input point is returned unchanged.
func Apply(m Matrix, x, y float64) (float64, float64) {
	denom := m[2][0]*x + m[2][1]*y + m[2][2]
	if math.Abs(denom) < denomEpsilon {
		return x, y
	}
	xp := (m[0][0]*x + m[0][1]*y + m[0][2]) / denom
	yp := (m[1][0]*x + m[1][1]*y + m[1][2]) / denom
	return xp, yp
}

// ApplyBatch maps every point in points through m, writing results into
// out. Caller allocates out; len(out) must equal len(points), otherwise
// ApplyBatch returns an InvalidArgument error and leaves out untouched.
func ApplyBatch(m Matrix, points []geom2d.Vector2, out []geom2d.Vector2) error {
	if len(points) != len(out) {
		return fmt.Errorf("homography: mismatched shapes, len(points)=%d len(out)=%d", len(points), len(out))
	}
	for i, p := range points {
		x, y := Apply(m, p.X, p.Y)
		out[i] = geom2d.Vector2{X: x, Y: y}
	}
	return nil
}
