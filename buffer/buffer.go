// Copyright (c) 2026, raster2d. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package buffer implements the caller-owned pixel grids the rasterizer
// core reads and writes: Framebuffer (mutable, written by every
// primitive) and Texture (read-only source for the texture samplers).
// Both use x-major addressing, buffer[x,y], per spec.
//
// Both types also implement image.Image (Framebuffer additionally
// implements draw.Image) so a caller already working with
// golang.org/x/image decoders, golang.org/x/image/draw scalers, or the
// standard image/png encoder can hand decoded images straight to the
// rasterizer, and so rasterizer output can be encoded or scaled with the
// same ecosystem tooling — grounded on the teacher's Box2.ToRect /
// B2FromRect interop with image.Rectangle (math32/box2.go), generalized
// here from bounding boxes to full pixel storage.
package buffer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"io"

	"golang.org/x/image/bmp"

	"github.com/rifa-456/raster2d/pixel"
)

// Framebuffer is a mutable W x H grid of packed RGBA32 pixels, addressed
// buffer[x,y] with x in [0,W) and y in [0,H).
type Framebuffer struct {
	w, h int
	pix  []pixel.RGBA
}

// NewFramebuffer allocates a zeroed (fully transparent black) framebuffer
// of the given size.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{w: w, h: h, pix: make([]pixel.RGBA, w*h)}
}

// Width returns the framebuffer's width.
func (f *Framebuffer) Width() int { return f.w }

// Height returns the framebuffer's height.
func (f *Framebuffer) Height() int { return f.h }

// InBounds reports whether (x, y) is within [0,W) x [0,H).
func (f *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && x < f.w && y >= 0 && y < f.h
}

// At returns the pixel at (x, y). Out-of-bounds reads return 0.
func (f *Framebuffer) At(x, y int) pixel.RGBA {
	if !f.InBounds(x, y) {
		return 0
	}
	return f.pix[y*f.w+x]
}

// Set writes p at (x, y), raw (unblended) overwrite. Out-of-bounds writes
// are silently dropped, never wrapped or grown, per spec.
func (f *Framebuffer) Set(x, y int, p pixel.RGBA) {
	if !f.InBounds(x, y) {
		return
	}
	f.pix[y*f.w+x] = p
}

// Blend blends src over the destination pixel at (x, y) using
// source-over compositing. Out-of-bounds writes are silently dropped.
func (f *Framebuffer) Blend(x, y int, src pixel.RGBA) {
	if !f.InBounds(x, y) {
		return
	}
	i := y*f.w + x
	f.pix[i] = pixel.Blend(src, f.pix[i])
}

// Clear fills the entire framebuffer with p.
func (f *Framebuffer) Clear(p pixel.RGBA) {
	for i := range f.pix {
		f.pix[i] = p
	}
}

// Texture is a read-only W x H pixel source with a declared nominal
// extent that may be smaller than its underlying storage, per spec.
type Texture struct {
	w, h   int
	stride int
	pix    []pixel.RGBA
}

// NewTexture allocates a zeroed texture of the given size.
func NewTexture(w, h int) *Texture {
	return &Texture{w: w, h: h, stride: w, pix: make([]pixel.RGBA, w*h)}
}

// Width returns the texture's declared nominal width.
func (t *Texture) Width() int { return t.w }

// Height returns the texture's declared nominal height.
func (t *Texture) Height() int { return t.h }

// At returns the texel at (x, y), clamped into the declared extent so a
// sampler that already wrapped its coordinates never reads outside the
// nominal size even if the backing storage is larger.
func (t *Texture) At(x, y int) pixel.RGBA {
	if x < 0 {
		x = 0
	}
	if x >= t.w {
		x = t.w - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= t.h {
		y = t.h - 1
	}
	return t.pix[y*t.stride+x]
}

// Set writes p at (x, y) in the texture's own storage.
func (t *Texture) Set(x, y int, p pixel.RGBA) {
	if x < 0 || x >= t.w || y < 0 || y >= t.h {
		return
	}
	t.pix[y*t.stride+x] = p
}

// SubTexture returns a Texture view over the same backing storage as t,
// with a nominal extent of (w, h) starting at t's origin — used when the
// underlying storage is larger than the declared extent, per spec.
func (t *Texture) SubTexture(w, h int) *Texture {
	return &Texture{w: w, h: h, stride: t.stride, pix: t.pix}
}

// LoadTexture decodes r (PNG or BMP, detected by content) into a new
// Texture sized to the decoded image's bounds.
func LoadTexture(r io.Reader) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("buffer: decode texture: %w", err)
	}
	return FromImage(img), nil
}

// LoadTextureBMP decodes r as a BMP image specifically, using
// golang.org/x/image/bmp — BMP's uncompressed, stride-explicit format
// makes it a natural fit for texture fixtures checked into a test suite.
func LoadTextureBMP(r io.Reader) (*Texture, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("buffer: decode bmp texture: %w", err)
	}
	return FromImage(img), nil
}

// FromImage copies img into a new Texture sized to img's bounds.
func FromImage(img image.Image) *Texture {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	tex := NewTexture(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			tex.Set(x, y, pixel.Pack(uint8(r>>8), uint8(g>>8), uint8(bl>>8), uint8(a>>8)))
		}
	}
	return tex
}

// Framebuffer and Texture expose their pixels through pixel.RGBA-typed
// At/Set methods for the rasterizer's own hot path. Interop with
// image.Image (golang.org/x/image decoders/encoders, the standard
// image/png encoder) goes through the small adapters below instead of
// overloading At/Set, since Go methods can't be overloaded by return
// type.

// AsImage returns an image.Image view over f, for use with PNG encoding,
// golang.org/x/image/draw scaling, or any other stdlib/ecosystem image
// consumer.
func (f *Framebuffer) AsImage() image.Image { return imageView{w: f.w, h: f.h, at: f.At} }

// AsDrawImage returns a draw.Image view over f that blends (rather than
// overwrites) on Set, so golang.org/x/image/draw operations compose with
// the rasterizer's source-over compositing contract instead of bypassing
// it.
func (f *Framebuffer) AsDrawImage() draw.Image {
	return drawImageView{imageView: imageView{w: f.w, h: f.h, at: f.At}, blend: f.Blend}
}

// AsImage returns an image.Image view over t.
func (t *Texture) AsImage() image.Image { return imageView{w: t.w, h: t.h, at: t.At} }

// imageView adapts a pixel.RGBA-typed accessor to image.Image.
type imageView struct {
	w, h int
	at   func(x, y int) pixel.RGBA
}

func (v imageView) ColorModel() color.Model { return color.NRGBAModel }
func (v imageView) Bounds() image.Rectangle { return image.Rect(0, 0, v.w, v.h) }
func (v imageView) At(x, y int) color.Color { return toColor(v.at(x, y)) }

// drawImageView adapts imageView to draw.Image by blending on Set.
type drawImageView struct {
	imageView
	blend func(x, y int, src pixel.RGBA)
}

func (v drawImageView) Set(x, y int, c color.Color) {
	r, g, b, a := c.RGBA()
	v.blend(x, y, pixel.Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)))
}

func toColor(p pixel.RGBA) color.Color {
	r, g, b, a := p.Unpack()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
