// Copyright (c) 2026, raster2d. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"github.com/rifa-456/raster2d/buffer"
	"github.com/rifa-456/raster2d/pixel"
)

// DrawLine rasterizes the segment (x0,y0)-(x1,y1) with Bresenham's
// integer DDA, stepping one pixel per iteration along the major axis
// (whichever of dx, dy has the larger magnitude) and accumulating error
// in the minor axis. Every plotted pixel is bounds-checked and blended.
// A zero-length segment degenerates to a single point.
func DrawLine(fb *buffer.Framebuffer, x0, y0, x1, y1 int, color pixel.RGBA) {
	dx, dy := x1-x0, y1-y0
	adx, ady := abs(dx), abs(dy)
	sx, sy := sign(dx), sign(dy)

	if adx >= ady {
		d := 2*ady - adx
		y := y0
		for x, i := x0, 0; i <= adx; i++ {
			fb.Blend(x, y, color)
			if d > 0 {
				y += sy
				d -= 2 * adx
			}
			d += 2 * ady
			x += sx
		}
		return
	}

	d := 2*adx - ady
	x := x0
	for y, i := y0, 0; i <= ady; i++ {
		fb.Blend(x, y, color)
		if d > 0 {
			x += sx
			d -= 2 * ady
		}
		d += 2 * adx
		y += sy
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
