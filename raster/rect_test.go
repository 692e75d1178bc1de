// Copyright (c) 2026, raster2d. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rifa-456/raster2d/buffer"
	"github.com/rifa-456/raster2d/pixel"
)

func TestFillRectOpaqueOverwrites(t *testing.T) {
	fb := buffer.NewFramebuffer(5, 5)
	FillRect(fb, 1, 1, 2, 2, pixel.Pack(255, 0, 0, 255))

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			inside := x >= 1 && x < 3 && y >= 1 && y < 3
			if inside {
				assert.Equal(t, pixel.Pack(255, 0, 0, 255), fb.At(x, y))
			} else {
				assert.Equal(t, pixel.RGBA(0), fb.At(x, y))
			}
		}
	}
}

func TestFillRectZeroAlphaIsNoop(t *testing.T) {
	fb := buffer.NewFramebuffer(3, 3)
	fb.Clear(pixel.Pack(10, 20, 30, 255))
	FillRect(fb, 0, 0, 3, 3, pixel.Pack(255, 0, 0, 0))

	assert.Equal(t, pixel.Pack(10, 20, 30, 255), fb.At(1, 1))
}

func TestFillRectBlendsTranslucent(t *testing.T) {
	fb := buffer.NewFramebuffer(1, 1)
	fb.Set(0, 0, pixel.Pack(0, 0, 255, 255))
	FillRect(fb, 0, 0, 1, 1, pixel.Pack(255, 0, 0, 128))

	assert.Equal(t, pixel.Blend(pixel.Pack(255, 0, 0, 128), pixel.Pack(0, 0, 255, 255)), fb.At(0, 0))
}

func TestFillRectClipsNegativePositionAndOverrun(t *testing.T) {
	fb := buffer.NewFramebuffer(4, 4)
	FillRect(fb, -2, -2, 4, 4, pixel.Pack(1, 2, 3, 255))

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, pixel.Pack(1, 2, 3, 255), fb.At(x, y))
		}
	}
	assert.Equal(t, pixel.RGBA(0), fb.At(2, 2))
}

func TestFillRectFullOverrunIsNoop(t *testing.T) {
	fb := buffer.NewFramebuffer(4, 4)
	FillRect(fb, 10, 10, 2, 2, pixel.Pack(1, 2, 3, 255))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, pixel.RGBA(0), fb.At(x, y))
		}
	}
}

func TestDrawRectOutlineProducesHollowRing(t *testing.T) {
	fb := buffer.NewFramebuffer(6, 6)
	color := pixel.Pack(255, 255, 0, 255)
	DrawRectOutline(fb, 1, 1, 4, 4, 1, color)

	for y := 1; y < 5; y++ {
		for x := 1; x < 5; x++ {
			onRing := x == 1 || x == 4 || y == 1 || y == 4
			if onRing {
				assert.Equal(t, color, fb.At(x, y), "expected ring pixel at (%d,%d)", x, y)
			} else {
				assert.Equal(t, pixel.RGBA(0), fb.At(x, y), "expected hollow interior at (%d,%d)", x, y)
			}
		}
	}
}

func TestDrawRectOutlineThickBorder(t *testing.T) {
	fb := buffer.NewFramebuffer(10, 10)
	color := pixel.Pack(0, 255, 0, 255)
	DrawRectOutline(fb, 0, 0, 10, 10, 2, color)

	// Top-left 2x2 corner is covered by the top strip.
	assert.Equal(t, color, fb.At(0, 0))
	assert.Equal(t, color, fb.At(1, 1))
	// Interior stays untouched.
	assert.Equal(t, pixel.RGBA(0), fb.At(5, 5))
	// Bottom-right strip.
	assert.Equal(t, color, fb.At(9, 9))
}
