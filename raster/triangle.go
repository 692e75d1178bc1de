// Copyright (c) 2026, raster2d. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"github.com/rifa-456/raster2d/buffer"
	"github.com/rifa-456/raster2d/geom2d"
	"github.com/rifa-456/raster2d/pixel"
	"github.com/rifa-456/raster2d/texture"
)

// triVertex is a triangle vertex carrying position and texture
// coordinates together so they can be sorted and interpolated as a
// unit.
type triVertex struct {
	pos geom2d.Vector2
	uv  geom2d.Vector2
}

// DrawTriangleTextured rasterizes a textured triangle: vertices and uvs
// are sorted by y, split into an upper and lower sub-triangle at the
// middle vertex, and scanned edge-to-edge with per-pixel UV
// interpolation. useBilinear selects the bilinear sampler; otherwise
// nearest is used.
func DrawTriangleTextured(fb *buffer.Framebuffer, vertices [3]geom2d.Vector2, uvs [3]geom2d.Vector2, src texture.Source, useBilinear bool, modulate pixel.RGBA) {
	v := [3]triVertex{
		{vertices[0], uvs[0]},
		{vertices[1], uvs[1]},
		{vertices[2], uvs[2]},
	}

	if v[0].pos.Y > v[1].pos.Y {
		v[0], v[1] = v[1], v[0]
	}
	if v[1].pos.Y > v[2].pos.Y {
		v[1], v[2] = v[2], v[1]
	}
	if v[0].pos.Y > v[1].pos.Y {
		v[0], v[1] = v[1], v[0]
	}

	mode := texture.ModeNearest
	if useBilinear {
		mode = texture.ModeBilinear
	}

	totalHeight := v[2].pos.Y - v[0].pos.Y
	if totalHeight <= 0 {
		return
	}

	scanTriangleHalf(fb, v[0], v[1], v[0], v[2], src, mode, modulate)
	scanTriangleHalf(fb, v[1], v[2], v[0], v[2], src, mode, modulate)
}

// scanTriangleHalf scans the sub-triangle whose short edge runs from
// shortA to shortB and whose long edge (shared across both halves) runs
// from longA to longB, filling every row the short edge spans.
func scanTriangleHalf(fb *buffer.Framebuffer, shortA, shortB, longA, longB triVertex, src texture.Source, mode texture.Mode, modulate pixel.RGBA) {
	segHeight := shortB.pos.Y - shortA.pos.Y
	totalHeight := longB.pos.Y - longA.pos.Y
	if segHeight <= 0 || totalHeight <= 0 {
		return
	}

	y0 := int(shortA.pos.Y)
	y1 := int(shortB.pos.Y)

	for y := y0; y < y1; y++ {
		alpha := (float64(y) - longA.pos.Y) / totalHeight
		beta := (float64(y) - shortA.pos.Y) / segHeight

		a := lerpTriVertex(longA, longB, alpha)
		b := lerpTriVertex(shortA, shortB, beta)

		if a.pos.X > b.pos.X {
			a, b = b, a
		}

		span := b.pos.X - a.pos.X
		xStart, xEnd := int(a.pos.X), int(b.pos.X)
		for x := xStart; x < xEnd; x++ {
			var t float64
			if span > 0 {
				t = (float64(x) - a.pos.X) / span
			}
			u := a.uv.X + (b.uv.X-a.uv.X)*t
			vv := a.uv.Y + (b.uv.Y-a.uv.Y)*t

			texel := texture.Sample(src, u, vv, mode)
			if modulate != pixel.Opaque {
				texel = pixel.Modulate(texel, modulate)
			}
			fb.Blend(x, y, texel)
		}
	}
}

// lerpTriVertex interpolates position and UV together by t.
func lerpTriVertex(a, b triVertex, t float64) triVertex {
	return triVertex{
		pos: a.pos.Lerp(b.pos, t),
		uv:  a.uv.Lerp(b.uv, t),
	}
}
