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

// flatSource is a texture.Source that returns the same color everywhere,
// for tests that only care whether a pixel was drawn at all.
type flatSource struct {
	color pixel.RGBA
	w, h  int
}

func (f flatSource) At(x, y int) pixel.RGBA { return f.color }
func (f flatSource) Width() int             { return f.w }
func (f flatSource) Height() int            { return f.h }

func TestDrawTriangleTexturedFillsInterior(t *testing.T) {
	fb := buffer.NewFramebuffer(10, 10)
	src := flatSource{color: pixel.Pack(10, 20, 30, 255), w: 1, h: 1}

	vertices := [3]geom2d.Vector2{geom2d.Vec2(5, 1), geom2d.Vec2(1, 8), geom2d.Vec2(9, 8)}
	uvs := [3]geom2d.Vector2{geom2d.Vec2(0, 0), geom2d.Vec2(0, 0), geom2d.Vec2(0, 0)}

	DrawTriangleTextured(fb, vertices, uvs, src, false, pixel.Opaque)

	assert.Equal(t, pixel.Pack(10, 20, 30, 255), fb.At(5, 6))
	assert.Equal(t, pixel.RGBA(0), fb.At(0, 0))
}

func TestDrawTriangleTexturedDegenerateZeroHeightIsNoop(t *testing.T) {
	fb := buffer.NewFramebuffer(5, 5)
	src := flatSource{color: pixel.Pack(1, 2, 3, 255), w: 1, h: 1}

	vertices := [3]geom2d.Vector2{geom2d.Vec2(0, 2), geom2d.Vec2(4, 2), geom2d.Vec2(2, 2)}
	uvs := [3]geom2d.Vector2{geom2d.Vec2(0, 0), geom2d.Vec2(0, 0), geom2d.Vec2(0, 0)}

	DrawTriangleTextured(fb, vertices, uvs, src, false, pixel.Opaque)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, pixel.RGBA(0), fb.At(x, y))
		}
	}
}

func TestDrawTriangleTexturedModulateTints(t *testing.T) {
	texel := pixel.Pack(255, 255, 255, 200)
	modulate := pixel.Pack(255, 0, 0, 255)

	plain := buffer.NewFramebuffer(10, 10)
	tinted := buffer.NewFramebuffer(10, 10)
	src := flatSource{color: texel, w: 1, h: 1}

	vertices := [3]geom2d.Vector2{geom2d.Vec2(5, 1), geom2d.Vec2(1, 8), geom2d.Vec2(9, 8)}
	uvs := [3]geom2d.Vector2{geom2d.Vec2(0, 0), geom2d.Vec2(0, 0), geom2d.Vec2(0, 0)}

	DrawTriangleTextured(plain, vertices, uvs, src, false, pixel.Opaque)
	DrawTriangleTextured(tinted, vertices, uvs, src, false, modulate)

	assert.NotEqual(t, plain.At(5, 6), tinted.At(5, 6), "modulate color should change the composited pixel")
	assert.Equal(t, pixel.Blend(pixel.Modulate(texel, modulate), 0), tinted.At(5, 6))
}
