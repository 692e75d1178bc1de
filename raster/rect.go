// Copyright (c) 2026, raster2d. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"github.com/rifa-456/raster2d/buffer"
	"github.com/rifa-456/raster2d/geom2d"
	"github.com/rifa-456/raster2d/pixel"
)

// FillRect fills the rectangle (x,y,w,h) with color, clipped to the
// framebuffer. If color's alpha is 255 every covered pixel is overwritten
// raw; if alpha is in (0,255) every pixel is blended; alpha 0 is a no-op.
func FillRect(fb *buffer.Framebuffer, x, y, w, h int, color pixel.RGBA) {
	if color.A() == 0 {
		return
	}

	r := geom2d.R2(float64(x), float64(y), float64(w), float64(h))
	x0, y0, rw, rh, ok := r.ClampToInt(fb.Width(), fb.Height())
	if !ok {
		return
	}

	opaque := color.A() == 255
	for py := y0; py < y0+rh; py++ {
		for px := x0; px < x0+rw; px++ {
			if opaque {
				fb.Set(px, py, color)
			} else {
				fb.Blend(px, py, color)
			}
		}
	}
}

// DrawRectOutline draws a w x h rectangle outline at (x,y) with the given
// thickness, as four filled strips: top (x,y,w,t), bottom
// (x,y+h-t,w,t), left (x,y+t,t,h-2t), right (x+w-t,y+t,t,h-2t). When
// thickness >= min(w,h)/2 the strips overlap and simply redraw each
// other; callers are responsible for that, per spec.
func DrawRectOutline(fb *buffer.Framebuffer, x, y, w, h, thickness int, color pixel.RGBA) {
	if w <= 0 || h <= 0 || thickness <= 0 {
		return
	}

	FillRect(fb, x, y, w, thickness, color)
	FillRect(fb, x, y+h-thickness, w, thickness, color)
	FillRect(fb, x, y+thickness, thickness, h-2*thickness, color)
	FillRect(fb, x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}
