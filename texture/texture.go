// Copyright (c) 2026, raster2d. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture implements nearest and bilinear texture sampling with
// repeat-mode UV wrapping, over any pixel source satisfying the Source
// interface.
//
// Grounded on the teacher's Box2.ProjectX/ProjectY (normalized-coordinate
// to box-space projection in math32/box2.go), generalized here from a 1D
// linear projection to a full 2D texel lookup with wrap and bilinear
// blend.
package texture

import "github.com/rifa-456/raster2d/pixel"

// Source is the minimal pixel-grid contract a sampler needs: a texel
// getter plus the declared nominal extent. The underlying storage may be
// larger than (Width, Height); samplers must respect the declared extent,
// per spec.
type Source interface {
	At(x, y int) pixel.RGBA
	Width() int
	Height() int
}

// wrap brings a UV coordinate into [0,1) using repeat mode: u - floor(u).
func wrap(u float64) float64 {
	return u - floorFloat64(u)
}

func floorFloat64(x float64) float64 {
	i := int64(x)
	if x < 0 && float64(i) != x {
		i--
	}
	return float64(i)
}

// wrapIndex brings an integer index into [0, m) using true modulo
// (((v % m) + m) % m), as opposed to Go's truncating %.
func wrapIndex(v, m int) int {
	if m <= 0 {
		return 0
	}
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Nearest samples src at (u, v) using nearest-neighbor lookup after
// wrapping the UV into [0,1): x = clamp(int(u*w), 0, w-1), same for y.
func Nearest(src Source, u, v float64) pixel.RGBA {
	w, h := src.Width(), src.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	u, v = wrap(u), wrap(v)

	x := clampInt(int(u*float64(w)), 0, w-1)
	y := clampInt(int(v*float64(h)), 0, h-1)
	return src.At(x, y)
}

// Bilinear samples src at (u, v) with bilinear interpolation across the
// four nearest texels, wrapping texel indices with repeat mode. Output
// alpha is interpolated, not premultiplied; each channel is truncated to
// a byte after the weighted sum.
func Bilinear(src Source, u, v float64) pixel.RGBA {
	w, h := src.Width(), src.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	u, v = wrap(u), wrap(v)

	px := u*float64(w) - 0.5
	py := v*float64(h) - 0.5

	x0 := int(floorFloat64(px))
	y0 := int(floorFloat64(py))
	x1 := x0 + 1
	y1 := y0 + 1

	wx := px - float64(x0)
	wy := py - float64(y0)

	x0, x1 = wrapIndex(x0, w), wrapIndex(x1, w)
	y0, y1 = wrapIndex(y0, h), wrapIndex(y1, h)

	c00 := src.At(x0, y0)
	c10 := src.At(x1, y0)
	c01 := src.At(x0, y1)
	c11 := src.At(x1, y1)

	r00, g00, b00, a00 := c00.Unpack()
	r10, g10, b10, a10 := c10.Unpack()
	r01, g01, b01, a01 := c01.Unpack()
	r11, g11, b11, a11 := c11.Unpack()

	lerpChan := func(v00, v10, v01, v11 uint8) uint8 {
		top := float64(v00)*(1-wx) + float64(v10)*wx
		bot := float64(v01)*(1-wx) + float64(v11)*wx
		return uint8(top*(1-wy) + bot*wy)
	}

	r := lerpChan(r00, r10, r01, r11)
	g := lerpChan(g00, g10, g01, g11)
	b := lerpChan(b00, b10, b01, b11)
	a := lerpChan(a00, a10, a01, a11)

	return pixel.Pack(r, g, b, a)
}

// Mode selects which sampler a textured rasterizer call should use.
type Mode int

const (
	// ModeNearest selects Nearest.
	ModeNearest Mode = iota
	// ModeBilinear selects Bilinear.
	ModeBilinear
)

// Sample dispatches to Nearest or Bilinear per mode.
func Sample(src Source, u, v float64, mode Mode) pixel.RGBA {
	if mode == ModeBilinear {
		return Bilinear(src, u, v)
	}
	return Nearest(src, u, v)
}
