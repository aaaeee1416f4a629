// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cielab

import (
	"testing"

	"github.com/chromapack/chromapack/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestFromSRGB(t *testing.T) {
	l, a, b := FromSRGB(1, 0, 0)
	tolassert.EqualTol(t, 0.5323288, l, 1e-4)
	tolassert.EqualTol(t, 0.6281619, a, 1e-4)
	tolassert.EqualTol(t, 0.5270651, b, 1e-4)

	l, a, b = FromSRGB(0x40/float32(255), 0x80/float32(255), 0xC0/float32(255))
	tolassert.EqualTol(t, 0.5221288, l, 1e-4)
	tolassert.EqualTol(t, 0.0008618, a, 1e-4)
	tolassert.EqualTol(t, -0.3096917, b, 1e-4)
}

func TestSRGBRoundTrip(t *testing.T) {
	for _, rgb := range [][3]float32{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}, {0, 0, 0},
		{0.25, 0.5, 0.75}, {0.9, 0.4, 0.1},
	} {
		r, g, b := ToSRGB(FromSRGB(rgb[0], rgb[1], rgb[2]))
		tolassert.EqualTol(t, rgb[0], r, 1e-3, "r of %v", rgb)
		tolassert.EqualTol(t, rgb[1], g, 1e-3, "g of %v", rgb)
		tolassert.EqualTol(t, rgb[2], b, 1e-3, "b of %v", rgb)
	}
}

func TestRGBA8888RoundTrip(t *testing.T) {
	// the primaries and both extremes come back exactly
	for _, u := range []uint32{
		0xFF0000FF, 0x00FF00FF, 0x0000FFFF, 0xFFFFFFFF, 0x000000FF,
	} {
		assert.Equal(t, u, ToRGBA8888(FromRGBA8888(u)), "%08X", u)
	}
	// mixed colors drift at most two steps per channel
	for _, u := range []uint32{0x808080FF, 0x123456FF} {
		o := ToRGBA8888(FromRGBA8888(u))
		for shift := uint(0); shift < 32; shift += 8 {
			assert.InDelta(t, int(u>>shift&0xFF), int(o>>shift&0xFF), 2,
				"channel at shift %d of %08X", shift, u)
		}
	}
}

func TestNeutralGray(t *testing.T) {
	// L* of 50% sRGB gray is 53.7, not 50; only the chroma axes sit at
	// their neutral midpoint
	p := FromRGBA8888(0x808080FF)
	tolassert.EqualTol(t, 0.537255, LStar(p), 1e-3)
	tolassert.EqualTol(t, 0, AStar(p), 2.0/255)
	tolassert.EqualTol(t, 0, BStar(p), 2.0/255)
}

func TestGamut(t *testing.T) {
	c := Limit(0.9, 1, -1, 1)
	assert.True(t, InGamut(c))
	assert.Equal(t, c, ToGamut(c))

	p := FromRGBA8888(0x123456FF)
	assert.True(t, InGamut(p))
	assert.Equal(t, p, ToGamut(p))

	// a saturated green near the gamut boundary encodes with enough
	// quantization shift that a half-byte slack would reject it; repair
	// must still be a no-op
	p = FromRGBA8888(0x00952CFF)
	assert.True(t, InGamut(p))
	assert.Equal(t, p, ToGamut(p))
}

func TestChannelScaling(t *testing.T) {
	// one chroma byte step is one unit of a*/b*
	l, a, b := FromSRGB(0, 1, 0)
	tolassert.EqualTol(t, 87.7, l*100, 0.2)
	tolassert.EqualTol(t, -86.2, a*127.5, 0.5)
	tolassert.EqualTol(t, 83.2, b*127.5, 0.5)
}
