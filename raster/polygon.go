// Copyright (c) 2026, raster2d. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"sort"

	"github.com/rifa-456/raster2d/buffer"
	"github.com/rifa-456/raster2d/geom2d"
	"github.com/rifa-456/raster2d/pixel"
	"github.com/rifa-456/raster2d/texture"
)

// polyEdge is one Global/Active Edge Table entry: an edge oriented so y
// is increasing, tracking the current x (and, for textured fills, the
// current u/v) plus the per-row deltas used to advance it scanline by
// scanline.
type polyEdge struct {
	yMax   int
	x, dx  float64
	u, v   float64
	du, dv float64
}

// buildEdgeTable constructs the per-row Global Edge Table (GET) for the
// polygon verts (with optional per-vertex uvs, nil for untextured
// fills), clamped to rows [0,h). Edges entirely outside [0,h), or whose
// two endpoints round to the same row, are skipped.
func buildEdgeTable(verts []geom2d.Vector2, uvs []geom2d.Vector2, h int) [][]*polyEdge {
	n := len(verts)
	get := make([][]*polyEdge, h)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		p1, p2 := verts[i], verts[j]

		if int(p1.Y) == int(p2.Y) {
			continue
		}

		var u1, v1, u2, v2 float64
		if uvs != nil {
			u1, v1 = uvs[i].X, uvs[i].Y
			u2, v2 = uvs[j].X, uvs[j].Y
		}

		if p2.Y < p1.Y {
			p1, p2 = p2, p1
			u1, v1, u2, v2 = u2, v2, u1, v1
		}

		yStart, yEnd := int(p1.Y), int(p2.Y)
		if yEnd <= 0 || yStart >= h {
			continue
		}

		dx := (p2.X - p1.X) / (p2.Y - p1.Y)
		var du, dv float64
		if uvs != nil {
			du = (u2 - u1) / (p2.Y - p1.Y)
			dv = (v2 - v1) / (p2.Y - p1.Y)
		}

		e := &polyEdge{yMax: yEnd, x: p1.X, dx: dx, u: u1, v: v1, du: du, dv: dv}

		row := yStart
		if row < 0 {
			steps := float64(-row)
			e.x += dx * steps
			e.u += du * steps
			e.v += dv * steps
			row = 0
		}
		if row >= h {
			continue
		}
		get[row] = append(get[row], e)
	}
	return get
}

// scanFill runs the even-odd scanline fill over verts (with optional
// uvs), invoking emit once per active span per row with the row, pixel
// range [x0,x1), and the span's interpolated UV endpoints.
func scanFill(verts []geom2d.Vector2, uvs []geom2d.Vector2, w, h int, emit func(y, x0, x1 int, u0, v0, u1, v1 float64)) {
	if len(verts) < 3 {
		return
	}

	get := buildEdgeTable(verts, uvs, h)
	var aet []*polyEdge

	for y := 0; y < h; y++ {
		aet = append(aet, get[y]...)
		get[y] = nil

		kept := aet[:0]
		for _, e := range aet {
			if e.yMax > y {
				kept = append(kept, e)
			}
		}
		aet = kept

		sort.Slice(aet, func(i, j int) bool { return aet[i].x < aet[j].x })

		for k := 0; k+1 < len(aet); k += 2 {
			left, right := aet[k], aet[k+1]
			x0f, x1f := left.x, right.x
			if x1f <= x0f {
				advanceEdges(left, right)
				continue
			}

			xStart, xEnd := int(x0f), int(x1f)
			if xStart < 0 {
				xStart = 0
			}
			if xEnd > w {
				xEnd = w
			}
			if xStart < xEnd {
				duDx := (right.u - left.u) / (x1f - x0f)
				dvDx := (right.v - left.v) / (x1f - x0f)
				u0 := left.u + duDx*(float64(xStart)-x0f)
				v0 := left.v + dvDx*(float64(xStart)-x0f)
				u1 := left.u + duDx*(float64(xEnd)-x0f)
				v1 := left.v + dvDx*(float64(xEnd)-x0f)
				emit(y, xStart, xEnd, u0, v0, u1, v1)
			}

			advanceEdges(left, right)
		}
	}
}

func advanceEdges(edges ...*polyEdge) {
	for _, e := range edges {
		e.x += e.dx
		e.u += e.du
		e.v += e.dv
	}
}

// DrawPolygonFilled fills verts (a simple polygon, any winding) with
// color using even-odd scanline fill.
func DrawPolygonFilled(fb *buffer.Framebuffer, verts []geom2d.Vector2, color pixel.RGBA) {
	scanFill(verts, nil, fb.Width(), fb.Height(), func(y, x0, x1 int, _, _, _, _ float64) {
		for x := x0; x < x1; x++ {
			fb.Blend(x, y, color)
		}
	})
}

// DrawPolygonOutline draws verts as a closed polyline, one DrawLine call
// per edge.
func DrawPolygonOutline(fb *buffer.Framebuffer, verts []geom2d.Vector2, color pixel.RGBA) {
	n := len(verts)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		p1, p2 := verts[i], verts[j]
		DrawLine(fb, int(p1.X), int(p1.Y), int(p2.X), int(p2.Y), color)
	}
}

// DrawPolygonTextured fills verts with texels sampled (nearest) from src
// at the per-vertex uvs, optionally tinted by modulate (an Opaque
// modulate is a no-op, per spec).
func DrawPolygonTextured(fb *buffer.Framebuffer, verts []geom2d.Vector2, uvs []geom2d.Vector2, src texture.Source, modulate pixel.RGBA) {
	scanFill(verts, uvs, fb.Width(), fb.Height(), func(y, x0, x1 int, u0, v0, u1, v1 float64) {
		span := float64(x1 - x0)
		for x := x0; x < x1; x++ {
			t := float64(x-x0) / span
			u := u0 + (u1-u0)*t
			v := v0 + (v1-v0)*t

			texel := texture.Nearest(src, u, v)
			if modulate != pixel.Opaque {
				texel = pixel.Modulate(texel, modulate)
			}
			fb.Blend(x, y, texel)
		}
	})
}
