// Copyright (c) 2026, raster2d. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clip implements the two clipping families the rasterizer
// pipeline needs: Cohen-Sutherland segment clipping and
// Sutherland-Hodgman polygon clipping with UV carry.
//
// Grounded on the teacher's Box2 (ContainsPoint / IntersectsBox region
// tests in math32/box2.go) for the bounding-window representation, with
// the outcode and edge-walk machinery built fresh per spec since the
// teacher has no segment/polygon clipper of its own.
package clip

// Outcode region bits for Cohen-Sutherland clipping.
const (
	inside = 0
	left   = 1 << 0
	right  = 1 << 1
	bottom = 1 << 2
	top    = 1 << 3
)

// Window is the clip rectangle [MinX,MaxX] x [MinY,MaxY], inclusive on
// both ends (the clip boundary itself is kept).
type Window struct {
	MinX, MinY, MaxX, MaxY float64
}

func (w Window) outcode(x, y float64) int {
	code := inside
	switch {
	case x < w.MinX:
		code |= left
	case x > w.MaxX:
		code |= right
	}
	switch {
	case y < w.MinY:
		code |= bottom
	case y > w.MaxY:
		code |= top
	}
	return code
}

// Segment is an (x1,y1)-(x2,y2) line segment.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// ClipLine clips seg against w using Cohen-Sutherland. It returns the
// clipped segment and ok=true if any part of it survives, or ok=false if
// the segment lies entirely outside w.
func ClipLine(seg Segment, w Window) (Segment, bool) {
	x1, y1, x2, y2 := seg.X1, seg.Y1, seg.X2, seg.Y2
	c1 := w.outcode(x1, y1)
	c2 := w.outcode(x2, y2)

	for {
		if c1 == inside && c2 == inside {
			return Segment{x1, y1, x2, y2}, true
		}
		if c1&c2 != 0 {
			return Segment{}, false
		}

		var x, y float64
		outside := c1
		if outside == inside {
			outside = c2
		}

		switch {
		case outside&top != 0:
			x = x1 + (x2-x1)*(w.MaxY-y1)/(y2-y1)
			y = w.MaxY
		case outside&bottom != 0:
			x = x1 + (x2-x1)*(w.MinY-y1)/(y2-y1)
			y = w.MinY
		case outside&right != 0:
			y = y1 + (y2-y1)*(w.MaxX-x1)/(x2-x1)
			x = w.MaxX
		case outside&left != 0:
			y = y1 + (y2-y1)*(w.MinX-x1)/(x2-x1)
			x = w.MinX
		}

		if outside == c1 {
			x1, y1 = x, y
			c1 = w.outcode(x1, y1)
		} else {
			x2, y2 = x, y
			c2 = w.outcode(x2, y2)
		}
	}
}

// Vertex is a polygon vertex carrying texture coordinates through
// clipping, per spec's Clipper Vertex record.
type Vertex struct {
	X, Y, U, V float64
}

// ClipPolygon clips the polygon verts (with matching per-vertex uvs)
// against w using Sutherland-Hodgman: four sequential axis clips against
// MinX, MaxX, MinY, MaxY. If fewer than 3 vertices survive, the returned
// slice is nil.
func ClipPolygon(verts []Vertex, w Window) []Vertex {
	poly := verts
	poly = clipEdge(poly, func(v Vertex) bool { return v.X >= w.MinX }, func(a, b Vertex) Vertex { return intersectAxis(a, b, w.MinX, axisX) })
	poly = clipEdge(poly, func(v Vertex) bool { return v.X <= w.MaxX }, func(a, b Vertex) Vertex { return intersectAxis(a, b, w.MaxX, axisX) })
	poly = clipEdge(poly, func(v Vertex) bool { return v.Y >= w.MinY }, func(a, b Vertex) Vertex { return intersectAxis(a, b, w.MinY, axisY) })
	poly = clipEdge(poly, func(v Vertex) bool { return v.Y <= w.MaxY }, func(a, b Vertex) Vertex { return intersectAxis(a, b, w.MaxY, axisY) })

	if len(poly) < 3 {
		return nil
	}
	return poly
}

type axis int

const (
	axisX axis = iota
	axisY
)

// intersectAxis computes the intersection of edge (p1,p2) with the
// boundary line axis==boundary, linearly interpolating x, y, u, v by t =
// (boundary - p1.axis) / (p2.axis - p1.axis). Degenerate edges
// (p2.axis == p1.axis) intersect as p1.
func intersectAxis(p1, p2 Vertex, boundary float64, ax axis) Vertex {
	var a1, a2 float64
	if ax == axisX {
		a1, a2 = p1.X, p2.X
	} else {
		a1, a2 = p1.Y, p2.Y
	}

	if a2 == a1 {
		return p1
	}

	t := (boundary - a1) / (a2 - a1)
	return Vertex{
		X: p1.X + (p2.X-p1.X)*t,
		Y: p1.Y + (p2.Y-p1.Y)*t,
		U: p1.U + (p2.U-p1.U)*t,
		V: p1.V + (p2.V-p1.V)*t,
	}
}

// clipEdge runs one Sutherland-Hodgman axis clip: walk the edges of
// input, emitting 0-2 vertices per edge depending on the in/in, in/out,
// out/in, out/out case.
func clipEdge(input []Vertex, inside func(Vertex) bool, intersect func(a, b Vertex) Vertex) []Vertex {
	n := len(input)
	if n == 0 {
		return nil
	}

	out := make([]Vertex, 0, n*2+16)
	prev := input[n-1]
	prevIn := inside(prev)

	for _, cur := range input {
		curIn := inside(cur)
		switch {
		case curIn && prevIn:
			out = append(out, cur)
		case curIn && !prevIn:
			out = append(out, intersect(prev, cur), cur)
		case !curIn && prevIn:
			out = append(out, intersect(prev, cur))
		}
		prev, prevIn = cur, curIn
	}
	return out
}
