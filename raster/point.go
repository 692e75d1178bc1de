// Copyright (c) 2026, raster2d. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster implements the primitive rasterizers: point, line,
// rect, circle, polygon (fill/outline/textured), and textured triangle.
// Every entry point writes into a caller-owned *buffer.Framebuffer via
// source-over blending and silently drops out-of-bounds writes, per
// spec.
package raster

import (
	"github.com/rifa-456/raster2d/buffer"
	"github.com/rifa-456/raster2d/geom2d"
	"github.com/rifa-456/raster2d/pixel"
)

// DrawPoint blends color into fb at (x, y). Out-of-bounds is a no-op.
func DrawPoint(fb *buffer.Framebuffer, x, y int, color pixel.RGBA) {
	fb.Blend(x, y, color)
}

// DrawPoints blends color into fb at every point in points.
func DrawPoints(fb *buffer.Framebuffer, points []geom2d.Vector2, color pixel.RGBA) {
	for _, p := range points {
		fb.Blend(int(p.X), int(p.Y), color)
	}
}
