// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklab

import (
	"testing"

	"github.com/chromapack/chromapack/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestFromSRGB(t *testing.T) {
	// doubled-axis values; halving recovers Ottosson's published Oklab
	// of pure red (0.628, 0.225, 0.126)
	l, a, b := FromSRGB(1, 0, 0)
	tolassert.EqualTol(t, 0.6279554, l, 1e-4)
	tolassert.EqualTol(t, 0.4497259, a, 1e-4)
	tolassert.EqualTol(t, 0.2516926, b, 1e-4)

	l, a, b = FromSRGB(0x40/float32(255), 0x80/float32(255), 0xC0/float32(255))
	tolassert.EqualTol(t, 0.5872086, l, 1e-4)
	tolassert.EqualTol(t, -0.0790745, a, 1e-4)
	tolassert.EqualTol(t, -0.2237212, b, 1e-4)
}

func TestWhitePoint(t *testing.T) {
	l, a, b := FromSRGB(1, 1, 1)
	tolassert.EqualTol(t, 1, l, 1e-3)
	tolassert.EqualTol(t, 0, a, 1e-3)
	tolassert.EqualTol(t, 0, b, 1e-3)
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
	// Oklab lightness of 50% sRGB gray is 0.6, not 0.5; only the chroma
	// axes sit at their neutral midpoint
	p := FromRGBA8888(0x808080FF)
	tolassert.EqualTol(t, 0.6, ChannelL(p), 1e-3)
	tolassert.EqualTol(t, 0, ChannelA(p), 2.0/255)
	tolassert.EqualTol(t, 0, ChannelB(p), 2.0/255)
}

func TestGamut(t *testing.T) {
	c := Limit(0.8, 0.9, 0.9, 1)
	assert.True(t, InGamut(c))
	assert.Equal(t, c, ToGamut(c))

	p := FromRGBA8888(0x123456FF)
	assert.True(t, InGamut(p))
	assert.Equal(t, p, ToGamut(p))
}

func TestDerivedHSL(t *testing.T) {
	p := FromRGBA8888(0x4080C0FF)
	h, s, l := HSL(p)
	tolassert.EqualTol(t, 0.581739, h, 1e-3)
	tolassert.EqualTol(t, 0.509724, s, 1e-3)
	tolassert.EqualTol(t, 0.499575, l, 1e-3)
}
