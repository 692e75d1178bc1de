// Copyright (c) 2026, raster2d. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rifa-456/raster2d/buffer"
	"github.com/rifa-456/raster2d/geom2d"
	"github.com/rifa-456/raster2d/pixel"
)

func uvSquare() []geom2d.Vector2 {
	return []geom2d.Vector2{
		geom2d.Vec2(0, 0),
		geom2d.Vec2(1, 0),
		geom2d.Vec2(1, 1),
		geom2d.Vec2(0, 1),
	}
}

func square(x, y, w, h float64) []geom2d.Vector2 {
	return []geom2d.Vector2{
		geom2d.Vec2(x, y),
		geom2d.Vec2(x+w, y),
		geom2d.Vec2(x+w, y+h),
		geom2d.Vec2(x, y+h),
	}
}

func TestDrawPolygonFilledSquare(t *testing.T) {
	fb := buffer.NewFramebuffer(6, 6)
	DrawPolygonFilled(fb, square(1, 1, 3, 3), pixel.Pack(255, 0, 0, 255))

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			inside := x >= 1 && x < 4 && y >= 1 && y < 4
			if inside {
				assert.Equal(t, pixel.Pack(255, 0, 0, 255), fb.At(x, y), "(%d,%d)", x, y)
			} else {
				assert.Equal(t, pixel.RGBA(0), fb.At(x, y), "(%d,%d)", x, y)
			}
		}
	}
}

func TestDrawPolygonFilledTriangleShape(t *testing.T) {
	fb := buffer.NewFramebuffer(10, 10)
	verts := []geom2d.Vector2{
		geom2d.Vec2(5, 1),
		geom2d.Vec2(1, 8),
		geom2d.Vec2(9, 8),
	}
	DrawPolygonFilled(fb, verts, pixel.Pack(0, 255, 0, 255))

	// Centroid must be lit.
	assert.Equal(t, pixel.Pack(0, 255, 0, 255), fb.At(5, 5))
	// Corners far outside the triangle remain empty.
	assert.Equal(t, pixel.RGBA(0), fb.At(0, 0))
	assert.Equal(t, pixel.RGBA(0), fb.At(9, 0))
}

func TestDrawPolygonDegenerateTooFewVertsIsNoop(t *testing.T) {
	fb := buffer.NewFramebuffer(4, 4)
	DrawPolygonFilled(fb, []geom2d.Vector2{geom2d.Vec2(1, 1), geom2d.Vec2(2, 2)}, pixel.Pack(1, 2, 3, 255))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, pixel.RGBA(0), fb.At(x, y))
		}
	}
}

func TestDrawPolygonTexturedSamplesByUV(t *testing.T) {
	fb := buffer.NewFramebuffer(4, 4)
	src := flatSource{color: pixel.Pack(7, 8, 9, 255), w: 1, h: 1}

	DrawPolygonTextured(fb, square(0, 0, 4, 4), uvSquare(), src, pixel.Opaque)

	assert.Equal(t, pixel.Pack(7, 8, 9, 255), fb.At(1, 1))
}

func TestDrawPolygonOutlineIsSubsetOfFill(t *testing.T) {
	verts := square(1, 1, 4, 4)

	filled := buffer.NewFramebuffer(8, 8)
	DrawPolygonFilled(filled, verts, pixel.Pack(255, 255, 255, 255))

	outline := buffer.NewFramebuffer(8, 8)
	DrawPolygonOutline(outline, verts, pixel.Pack(255, 255, 255, 255))

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if outline.At(x, y) != 0 {
				assert.NotEqual(t, pixel.RGBA(0), filled.At(x, y), "outline-only pixel at (%d,%d)", x, y)
			}
		}
	}
}
