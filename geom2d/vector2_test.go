// Copyright (c) 2026, raster2d. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector2Basics(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{3, 7}, Vec2(1, 2).Add(Vec2(2, 5)))
	assert.Equal(t, Vector2{-1, -3}, Vec2(1, 2).Sub(Vec2(2, 5)))
	assert.Equal(t, Vector2{-1, -2}, Vec2(1, 2).Neg())
	assert.Equal(t, Vector2{2, 4}, Vec2(1, 2).MulScalar(2))
	assert.Equal(t, Vector2{3, 8}, Vec2(1, 2).Mul(Vec2(3, 4)))
}

func TestVector2DivByZero(t *testing.T) {
	_, err := Vec2(1, 2).DivScalar(0)
	require.Error(t, err)

	_, err = Vec2(1, 2).Div(Vec2(0, 1))
	require.Error(t, err)

	v, err := Vec2(4, 8).DivScalar(2)
	require.NoError(t, err)
	assert.Equal(t, Vector2{2, 4}, v)
}

func TestVector2DotCross(t *testing.T) {
	assert.Equal(t, 11.0, Vec2(1, 2).Dot(Vec2(3, 4)))
	assert.Equal(t, -2.0, Vec2(1, 2).Cross(Vec2(3, 4)))
}

func TestVector2LengthAndNormalized(t *testing.T) {
	assert.Equal(t, 25.0, Vec2(3, 4).LengthSquared())
	assert.Equal(t, 5.0, Vec2(3, 4).Length())
	assert.Equal(t, Vector2{}, Zero.Normalized())

	n := Vec2(3, 4).Normalized()
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
}

func TestVector2Rotated(t *testing.T) {
	got := Vec2(1, 0).Rotated(math.Pi / 2)
	assert.InDelta(t, 0.0, got.X, 1e-9)
	assert.InDelta(t, 1.0, got.Y, 1e-9)
}

func TestVector2Orthogonal(t *testing.T) {
	assert.Equal(t, Vector2{2, -1}, Vec2(1, 2).Orthogonal())
}

func TestVector2Lerp(t *testing.T) {
	assert.Equal(t, Vector2{5, 5}, Vec2(0, 0).Lerp(Vec2(10, 10), 0.5))
}

func TestVector2DistanceAndDirection(t *testing.T) {
	assert.Equal(t, 5.0, Vec2(0, 0).DistanceTo(Vec2(3, 4)))
	assert.Equal(t, 25.0, Vec2(0, 0).DistanceSquaredTo(Vec2(3, 4)))

	d := Vec2(0, 0).DirectionTo(Vec2(10, 0))
	assert.Equal(t, Vector2{1, 0}, d)
}

func TestVector2IsEqualApprox(t *testing.T) {
	a := Vec2(1, 1)
	b := Vec2(1+4e-6, 1-4e-6)
	assert.True(t, a.IsEqualApprox(b))

	c := Vec2(1.1, 1)
	assert.False(t, a.IsEqualApprox(c))

	assert.True(t, a.Equal(Vec2(1, 1)))
	assert.False(t, a.Equal(b))
}
