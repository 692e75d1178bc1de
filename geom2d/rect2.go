// Copyright (c) 2026, raster2d. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom2d

import "math"

// Rect2 is an axis-aligned rectangle defined by a position and a size.
// It is a semi-open interval: a point p is inside iff
// pos.X <= p.X < pos.X+size.X and likewise for Y.
//
// Grounded on the teacher's Box2 (min/max corners); Rect2 instead follows
// the spec's position+size representation, as used by the rasterizer's
// rect primitives.
type Rect2 struct {
	Position Vector2
	Size     Vector2
}

// R2 returns a new Rect2 from position and size components.
func R2(x, y, w, h float64) Rect2 {
	return Rect2{Position: Vector2{x, y}, Size: Vector2{w, h}}
}

// End returns Position + Size, the exclusive far corner.
func (r Rect2) End() Vector2 {
	return r.Position.Add(r.Size)
}

// Contains reports whether p lies within the semi-open rectangle.
func (r Rect2) Contains(p Vector2) bool {
	end := r.End()
	return p.X >= r.Position.X && p.X < end.X && p.Y >= r.Position.Y && p.Y < end.Y
}

// Intersection returns the overlapping rectangle between r and o. If the
// rectangles do not overlap the returned rectangle has zero or negative
// size; check IsEmpty before using it.
func (r Rect2) Intersection(o Rect2) Rect2 {
	re, oe := r.End(), o.End()
	minX := math.Max(r.Position.X, o.Position.X)
	minY := math.Max(r.Position.Y, o.Position.Y)
	maxX := math.Min(re.X, oe.X)
	maxY := math.Min(re.Y, oe.Y)
	return Rect2{Position: Vector2{minX, minY}, Size: Vector2{maxX - minX, maxY - minY}}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect2) Union(o Rect2) Rect2 {
	re, oe := r.End(), o.End()
	minX := math.Min(r.Position.X, o.Position.X)
	minY := math.Min(r.Position.Y, o.Position.Y)
	maxX := math.Max(re.X, oe.X)
	maxY := math.Max(re.Y, oe.Y)
	return Rect2{Position: Vector2{minX, minY}, Size: Vector2{maxX - minX, maxY - minY}}
}

// Grow returns r expanded by amount on all four sides.
func (r Rect2) Grow(amount float64) Rect2 {
	return Rect2{
		Position: Vector2{r.Position.X - amount, r.Position.Y - amount},
		Size:     Vector2{r.Size.X + 2*amount, r.Size.Y + 2*amount},
	}
}

// IsEmpty reports whether r has non-positive width or height.
func (r Rect2) IsEmpty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// ClampToInt clips r to integer bounds [0,w) x [0,h) — the framebuffer
// extent — returning the integer position and size to scan, plus ok=false
// if the result is empty. This is the bounds-clip used by fill_rect; the
// polygon and triangle rasterizers do not use it.
func (r Rect2) ClampToInt(w, h int) (x, y, rw, rh int, ok bool) {
	x0 := int(math.Floor(r.Position.X))
	y0 := int(math.Floor(r.Position.Y))
	x1 := int(math.Ceil(r.Position.X + r.Size.X))
	y1 := int(math.Ceil(r.Position.Y + r.Size.Y))

	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > w {
		x1 = w
	}
	if y1 > h {
		y1 = h
	}
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1 - x0, y1 - y0, true
}
