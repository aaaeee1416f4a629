// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipt

import (
	"image/color"
	"testing"

	"github.com/chromapack/chromapack/base/tolassert"
	"github.com/chromapack/chromapack/packed"
	"github.com/stretchr/testify/assert"
)

func TestFromSRGB(t *testing.T) {
	i, p, tt := FromSRGB(1, 0, 0)
	tolassert.Equal(t, 0.1897962, i)
	tolassert.Equal(t, 0.6696855, p)
	tolassert.Equal(t, 0.2864363, tt)

	i, p, tt = FromSRGB(0x40/float32(255), 0x80/float32(255), 0xC0/float32(255))
	tolassert.Equal(t, 0.5128604, i)
	tolassert.Equal(t, -0.1507359, p)
	tolassert.Equal(t, -0.3084036, tt)
}

func TestSRGBRoundTrip(t *testing.T) {
	for _, rgb := range [][3]float32{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}, {0, 0, 0},
		{0.25, 0.5, 0.75}, {0.9, 0.4, 0.1},
	} {
		r, g, b := ToSRGB(FromSRGB(rgb[0], rgb[1], rgb[2]))
		tolassert.EqualTol(t, rgb[0], r, 1e-4, "r of %v", rgb)
		tolassert.EqualTol(t, rgb[1], g, 1e-4, "g of %v", rgb)
		tolassert.EqualTol(t, rgb[2], b, 1e-4, "b of %v", rgb)
	}
}

func TestRGBA8888RoundTrip(t *testing.T) {
	// the chromatic primaries come back exactly
	for _, u := range []uint32{0xFF0000FF, 0x00FF00FF, 0x0000FFFF} {
		assert.Equal(t, u, ToRGBA8888(FromRGBA8888(u)), "%08X", u)
	}
	// white and black have no exact encoding in this space: near the gray
	// axis the chroma lattice cannot place all three reconstructed
	// channels within half a step, so one lands a single step in
	assert.Equal(t, uint32(0xFFFEFFFF), ToRGBA8888(FromRGBA8888(0xFFFFFFFF)))
	assert.Equal(t, uint32(0x000100FF), ToRGBA8888(FromRGBA8888(0x000000FF)))

	p := FromRGBA8888(0x808080FF)
	assert.Equal(t, packed.Color(0xFE7F8080), p)
	assert.Equal(t, uint32(0x817F81FF), ToRGBA8888(p))
}

func TestNeutralGray(t *testing.T) {
	p := FromRGBA8888(0x808080FF)
	tolassert.EqualTol(t, 0.5, Intensity(p), 1.0/255)
	tolassert.EqualTol(t, 0, Protan(p), 2.0/255)
	tolassert.EqualTol(t, 0, Tritan(p), 2.0/255)
}

func TestStoredMidpoint(t *testing.T) {
	// channel midpoints reconstruct to neutral gray within matrix rounding
	p := packed.Pack(0.5, 0.5, 0.5, 1)
	assert.Equal(t, packed.Color(0xFE7F7F7F), p)
	u := ToRGBA8888(p)
	for shift := uint(8); shift <= 24; shift += 8 {
		ch := int(u >> shift & 0xFF)
		assert.InDelta(t, 0x80, ch, 2, "channel at shift %d of %08X", shift, u)
	}
}

func TestGamut(t *testing.T) {
	c := Limit(0.2, -1, 1, 1)
	assert.Equal(t, packed.Color(0xFEB7485E), c)
	assert.True(t, InGamut(c))
	assert.Equal(t, c, ToGamut(c))

	// in-gamut colors pass through ToGamut untouched
	p := FromRGBA8888(0x4080C0FF)
	assert.True(t, InGamut(p))
	assert.Equal(t, p, ToGamut(p))
}

func TestFromColor(t *testing.T) {
	p := FromColor(color.NRGBA{0xFF, 0, 0, 0xFF})
	assert.Equal(t, uint32(0xFF0000FF), ToRGBA8888(p))

	// zero alpha must not divide by zero
	p = FromColor(color.NRGBA{0x80, 0x80, 0x80, 0})
	assert.Equal(t, float32(0), p.Alpha())

	rgba := AsRGBA(FromRGBA(1, 0, 0, 0.5))
	assert.InDelta(t, 0x80, int(rgba.R), 1)
	assert.Equal(t, uint8(0), rgba.G)
	assert.InDelta(t, 0x80, int(rgba.A), 1)
}

func TestDerivedHSL(t *testing.T) {
	h, s, l := HSL(FromRGBA(1, 0, 0, 1))
	tolassert.EqualTol(t, 0, h, 0.01)
	tolassert.EqualTol(t, 1, s, 0.01)
	tolassert.EqualTol(t, 0.5, l, 0.01)
	assert.Equal(t, h, Hue(FromRGBA(1, 0, 0, 1)))
	assert.Equal(t, s, Saturation(FromRGBA(1, 0, 0, 1)))
	assert.Equal(t, l, Lightness(FromRGBA(1, 0, 0, 1)))
}

func TestFromHSL(t *testing.T) {
	p := FromHSL(0, 1, 0.5, 1)
	assert.Equal(t, uint32(0xFF0000FF), ToRGBA8888(p))
	p = FromHSL(2.0/3.0, 1, 0.5, 1)
	assert.Equal(t, uint32(0x0000FFFF), ToRGBA8888(p))
}
