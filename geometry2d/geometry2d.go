// Copyright (c) 2026, raster2d. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geometry2d implements point-in-polygon testing, segment-segment
// intersection, and polygon offsetting.
//
// Grounded on the teacher's Line2 (ClosestPointToPoint's parametric
// line-segment math in math32/line2.go) and Triangle.ContainsPoint
// (barycentric point-containment in math32/triangle.go), generalized from
// a single segment/triangle to arbitrary polygons per spec.
package geometry2d

import "math"

// degenerateEpsilon bounds "parallel" detection for polygon offsetting,
// per spec.
const degenerateEpsilon = 1e-9

// zeroLengthEpsilon bounds zero-length edge detection for polygon
// offsetting, per spec.
const zeroLengthEpsilon = 1e-6

// Point2 is a plain 2D point, kept independent of geom2d.Vector2 so this
// package does not import the rasterizer's vector algebra package; a
// geom2d.Vector2 converts to a Point2 with Point2(v), since the two
// structs have identical fields.
type Point2 struct {
	X, Y float64
}

// PointInPolygon reports whether p lies inside the polygon described by
// verts, using the ray-casting edge-crossing parity test along +x.
// Boundary behavior follows the exact predicate below, per spec; points
// exactly on an edge may test as inside or outside depending on which
// edge direction they cross.
func PointInPolygon(p Point2, verts []Point2) bool {
	inside := false
	n := len(verts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := verts[i], verts[j]
		if ((pi.Y > p.Y) != (pj.Y > p.Y)) &&
			(p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X) {
			inside = !inside
		}
	}
	return inside
}

// SegmentIntersection solves the 2x2 parametric system for the segments
// (p1,p2) and (p3,p4). It returns the intersection point and ok=true iff
// both parameters lie in [0,1]; parallel (or non-intersecting) segments
// return ok=false.
func SegmentIntersection(p1, p2, p3, p4 Point2) (Point2, bool) {
	d1 := Point2{p2.X - p1.X, p2.Y - p1.Y}
	d2 := Point2{p4.X - p3.X, p4.Y - p3.Y}

	denom := d1.X*d2.Y - d1.Y*d2.X
	if denom == 0 {
		return Point2{}, false
	}

	diff := Point2{p3.X - p1.X, p3.Y - p1.Y}
	t := (diff.X*d2.Y - diff.Y*d2.X) / denom
	u := (diff.X*d1.Y - diff.Y*d1.X) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point2{}, false
	}

	return Point2{p1.X + t*d1.X, p1.Y + t*d1.Y}, true
}

// OffsetPolygon returns a new polygon in which each vertex of verts is
// moved so that it lies margin away from both of its adjacent edges (for
// a right-angle corner that is a move of margin*sqrt(2) along the
// corner's bisector).
//
// For each vertex, the two adjacent edge directions are used to compute
// normals (-dy, dx). Each normal lies to the left of its edge's
// direction, so with y pointing up it points outward for a clockwise
// vertex order and inward for a counterclockwise one. Each neighboring
// edge is offset by margin
// along its own normal, and the new vertex is the intersection of the two
// offset lines. Near-parallel adjacent edges (within degenerateEpsilon)
// fall back to a straight normal offset; zero-length edges (shorter than
// zeroLengthEpsilon) leave the original vertex unchanged.
func OffsetPolygon(verts []Point2, margin float64) []Point2 {
	n := len(verts)
	if n < 3 {
		out := make([]Point2, n)
		copy(out, verts)
		return out
	}

	out := make([]Point2, n)
	for i := 0; i < n; i++ {
		prev := verts[(i-1+n)%n]
		cur := verts[i]
		next := verts[(i+1)%n]

		ePrev := Point2{cur.X - prev.X, cur.Y - prev.Y}
		eNext := Point2{next.X - cur.X, next.Y - cur.Y}

		lenPrev := math.Hypot(ePrev.X, ePrev.Y)
		lenNext := math.Hypot(eNext.X, eNext.Y)

		if lenPrev < zeroLengthEpsilon || lenNext < zeroLengthEpsilon {
			out[i] = cur
			continue
		}

		nPrev := Point2{-ePrev.Y / lenPrev, ePrev.X / lenPrev}
		nNext := Point2{-eNext.Y / lenNext, eNext.X / lenNext}

		// Offset line through prev->cur along nPrev, and cur->next along
		// nNext, by margin.
		a1 := Point2{prev.X + nPrev.X*margin, prev.Y + nPrev.Y*margin}
		a2 := Point2{cur.X + nPrev.X*margin, cur.Y + nPrev.Y*margin}
		b1 := Point2{cur.X + nNext.X*margin, cur.Y + nNext.Y*margin}
		b2 := Point2{next.X + nNext.X*margin, next.Y + nNext.Y*margin}

		if pt, ok := lineIntersection(a1, a2, b1, b2); ok {
			out[i] = pt
			continue
		}

		// Degenerate (parallel) adjacent edges: straight normal offset
		// using the normalized average of the two edge normals.
		avg := Point2{(nPrev.X + nNext.X) / 2, (nPrev.Y + nNext.Y) / 2}
		avgLen := math.Hypot(avg.X, avg.Y)
		if avgLen > 0 {
			avg.X /= avgLen
			avg.Y /= avgLen
		}
		out[i] = Point2{cur.X + avg.X*margin, cur.Y + avg.Y*margin}
	}
	return out
}

// lineIntersection intersects the infinite lines through (a1,a2) and
// (b1,b2), unlike SegmentIntersection which restricts to the segment
// span — polygon offsetting needs the full line intersection, not just
// the segment-bounded one.
func lineIntersection(a1, a2, b1, b2 Point2) (Point2, bool) {
	d1 := Point2{a2.X - a1.X, a2.Y - a1.Y}
	d2 := Point2{b2.X - b1.X, b2.Y - b1.Y}

	denom := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(denom) < degenerateEpsilon {
		return Point2{}, false
	}

	diff := Point2{b1.X - a1.X, b1.Y - a1.Y}
	t := (diff.X*d2.Y - diff.Y*d2.X) / denom

	return Point2{a1.X + t*d1.X, a1.Y + t*d1.Y}, true
}
