// Copyright (c) 2026, raster2d. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"github.com/rifa-456/raster2d/buffer"
	"github.com/rifa-456/raster2d/pixel"
)

// DrawCircleOutline rasterizes the 1-pixel outline of a circle centered
// at (cx, cy) with the given radius, using the midpoint circle algorithm:
// it walks one octant with decision variable d starting at 3-2r and
// mirrors each step into all eight octants.
func DrawCircleOutline(fb *buffer.Framebuffer, cx, cy, radius int, color pixel.RGBA) {
	if radius < 0 {
		return
	}
	if radius == 0 {
		fb.Blend(cx, cy, color)
		return
	}

	x, y := radius, 0
	d := 3 - 2*radius

	for x >= y {
		plotOctants(fb, cx, cy, x, y, color)
		y++
		if d > 0 {
			x--
			d += 4*(y-x) + 10
		} else {
			d += 4*y + 6
		}
	}
}

// plotOctants blends color at the eight points symmetric to (x, y)
// around center (cx, cy).
func plotOctants(fb *buffer.Framebuffer, cx, cy, x, y int, color pixel.RGBA) {
	fb.Blend(cx+x, cy+y, color)
	fb.Blend(cx-x, cy+y, color)
	fb.Blend(cx+x, cy-y, color)
	fb.Blend(cx-x, cy-y, color)
	fb.Blend(cx+y, cy+x, color)
	fb.Blend(cx-y, cy+x, color)
	fb.Blend(cx+y, cy-x, color)
	fb.Blend(cx-y, cy-x, color)
}

// DrawCircleFilled rasterizes a filled disc centered at (cx, cy) with the
// given radius, using the same midpoint decision variable as
// DrawCircleOutline but emitting a horizontal span per octant step
// instead of a single pixel, so every outline pixel DrawCircleOutline
// would plot is also covered by the fill.
func DrawCircleFilled(fb *buffer.Framebuffer, cx, cy, radius int, color pixel.RGBA) {
	if radius < 0 {
		return
	}
	if radius == 0 {
		fb.Blend(cx, cy, color)
		return
	}

	x, y := radius, 0
	d := 3 - 2*radius

	for x >= y {
		hspan(fb, cx-x, cx+x, cy+y, color)
		hspan(fb, cx-x, cx+x, cy-y, color)
		hspan(fb, cx-y, cx+y, cy+x, color)
		hspan(fb, cx-y, cx+y, cy-x, color)

		y++
		if d > 0 {
			x--
			d += 4*(y-x) + 10
		} else {
			d += 4*y + 6
		}
	}
}

// hspan blends color across the horizontal span [x0, x1] at row y.
func hspan(fb *buffer.Framebuffer, x0, x1, y int, color pixel.RGBA) {
	for x := x0; x <= x1; x++ {
		fb.Blend(x, y, color)
	}
}
