// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gamut quantizes and repairs perceptual colors against the sRGB
// cube. Every packed color space can represent colors whose reconstruction
// leaves the unit range ("imaginary colors"); the limiter walks such a
// color back toward mid-gray until the reconstruction fits, using the
// space's own inverse transform. All checks run on decoded byte values, so
// a color accepted here is still in gamut after the 8-bit round trip.
package gamut

import (
	"github.com/chewxy/math32"
	"github.com/chromapack/chromapack/packed"
)

// Inverse reconstructs a perceptual triple (channel 1 in 0-1, chroma
// channels signed in -1 to 1) as RGB components, without clamping.
type Inverse func(c1, c2, c3 float32) (r, g, b float32)

// Slack is the baseline tolerance allowed on each reconstructed component
// when deciding whether a color is in gamut: one part in 256, half a byte
// step on either side of the unit range.
const Slack = 0x1p-8

// InRange reports whether all three components are within the unit range,
// allowing [Slack] on either side.
func InRange(r, g, b float32) bool {
	return InRangeTol(r, g, b, Slack)
}

// InRangeTol reports whether all three components are within the unit
// range, allowing tol on either side.
func InRangeTol(r, g, b, tol float32) bool {
	return r >= -tol && r <= 1+tol &&
		g >= -tol && g <= 1+tol &&
		b >= -tol && b <= 1+tol
}

// A Limiter pairs a space's inverse transform with the tolerance its 8-bit
// encoding needs. Spaces whose reconstruction ends in a companding curve
// pass the inverse that stops at linear light: near black the curve has a
// slope of 12.92, and a tolerance measured after it would have to absorb
// that amplification.
type Limiter struct {
	Inv Inverse
	// Tol is the slack allowed on each reconstructed component. It must
	// cover the largest reconstruction shift that encoding a valid color
	// to bytes can cause, so that freshly encoded colors are never judged
	// out of gamut.
	Tol float32
}

// InGamut reports whether the packed color reconstructs inside the unit
// range, within the limiter's tolerance.
func (lm Limiter) InGamut(c packed.Color) bool {
	r, g, b := lm.Inv(c.Channel1(), c.Channel2(), c.Channel3())
	return InRangeTol(r, g, b, lm.Tol)
}

// Limit returns an in-gamut packed color for the given perceptual triple
// and opacity. Alpha and channel 1 are clamped to 0-1 outright; the triple
// is interpolated toward the neutral point (channel 1 toward 0.5, chroma
// toward 0) in a fixed 32-step search, keeping the most saturated step
// that is still in gamut. Every candidate is packed before the check, so
// the accepted color cannot drift back out through byte quantization. The
// all-neutral encoding decodes strictly inside every gamut, which makes
// the final step a guaranteed exit.
func (lm Limiter) Limit(c1, c2, c3, a float32) packed.Color {
	a = clamp01(a)
	c1 = clamp01(c1)
	c := packed.PackRounded(c1, c2*0.5+0.5, c3*0.5+0.5, a)
	if lm.InGamut(c) {
		return c
	}
	for attempt := 31; attempt >= 0; attempt-- {
		progress := float32(attempt) / 32
		l := 0.5 + (c1-0.5)*progress
		x := c2 * progress
		y := c3 * progress
		c = packed.PackRounded(l, x*0.5+0.5, y*0.5+0.5, a)
		if lm.InGamut(c) {
			return c
		}
	}
	return packed.PackRounded(0.5, 0.5, 0.5, a)
}

// ToGamut returns the color unchanged if it is in gamut, and otherwise a
// desaturated in-gamut replacement with the same alpha.
func (lm Limiter) ToGamut(c packed.Color) packed.Color {
	if lm.InGamut(c) {
		return c
	}
	return lm.Limit(c.Channel1(), c.Channel2(), c.Channel3(), c.Alpha())
}

// fitOffsets orders the candidate bytes for PackFit: the rounded byte
// first, so it wins ties.
var fitOffsets = [3]int{0, -1, 1}

// PackFit packs a perceptual triple, choosing among the adjacent byte
// encodings the one whose clamped reconstruction is nearest the sRGB color
// being encoded. Rounding each byte independently can land every channel a
// half step off in the same direction, which is enough to shift a
// reconstructed primary; the one-step search around the rounded encoding
// recovers the exact bytes wherever the quantized lattice can reach them.
func PackFit(inv Inverse, r, g, b, c1, c2, c3, a float32) packed.Color {
	base := packed.PackRounded(c1, c2*0.5+0.5, c3*0.5+0.5, a)
	alphaBits := base.Bits() & 0xFF000000
	b1, b2, b3 := int(base.Byte(0)), int(base.Byte(1)), int(base.Byte(2))
	best := base
	bestErr := math32.Inf(1)
	for _, d1 := range fitOffsets {
		n1 := clampByte(b1 + d1)
		for _, d2 := range fitOffsets {
			n2 := clampByte(b2 + d2)
			for _, d3 := range fitOffsets {
				n3 := clampByte(b3 + d3)
				cand := packed.Color(alphaBits | n3<<16 | n2<<8 | n1)
				rr, gg, bb := inv(cand.Channel1(), cand.Channel2(), cand.Channel3())
				e := fitErr(rr, r) + fitErr(gg, g) + fitErr(bb, b)
				if e < bestErr {
					bestErr, best = e, cand
				}
			}
		}
	}
	return best
}

// fitErr is the squared reconstruction error of one channel. The
// reconstruction is clamped to the unit range first: overshooting a face
// of the cube costs nothing, because the displayed value saturates either
// way. Without the clamp the search would avoid the exact encodings of
// colors on the gamut boundary, which often sit just outside the cube.
func fitErr(got, want float32) float32 {
	d := clamp01(got) - want
	return d * d
}

func clampByte(v int) uint32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint32(v)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
