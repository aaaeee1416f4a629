// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl computes hue, saturation and lightness from gamma-corrected
// sRGB using the hexagonal min/max decomposition, and reconstructs sRGB
// from HSL. All components are in 0-1, hue included (a full turn is 1,
// not 360).
package hsl

import "github.com/chewxy/math32"

// eps keeps the saturation and hue divisions finite on pure black, pure
// white and achromatic grays, so those cases need no special branch.
const eps = 1e-10

// FromRGB converts gamma-corrected sRGB to hue, saturation and lightness,
// all in 0-1. Achromatic input yields hue 0 and saturation 0. Ties between
// equal components resolve in the conventional sector order, comparing
// green against blue first and then red against the running maximum.
func FromRGB(r, g, b float32) (h, s, l float32) {
	var px, py, pz, pw float32
	if g < b {
		px, py, pz, pw = b, g, -1, 2.0/3.0
	} else {
		px, py, pz, pw = g, b, 0, -1.0/3.0
	}
	var qx, qy, qz, qw float32
	if r < px {
		qx, qy, qz, qw = px, py, pw, r
	} else {
		qx, qy, qz, qw = r, py, pz, px
	}
	d := qx - math32.Min(qw, qy)
	l = qx - d*0.5
	h = math32.Abs(qz + (qw-qy)/(d*6+eps))
	s = (qx - l) / (math32.Min(l, 1-l) + eps)
	return
}

// ToRGB converts hue, saturation and lightness (all 0-1) to
// gamma-corrected sRGB. Hue wraps modulo 1, so out-of-range hues are
// accepted; saturation and lightness outside 0-1 produce out-of-range
// components that callers clamp as needed.
func ToRGB(h, s, l float32) (r, g, b float32) {
	c := (1 - math32.Abs(l*2-1)) * s
	return (triangle(h)-0.5)*c + l,
		(triangle(h+2.0/3.0)-0.5)*c + l,
		(triangle(h+1.0/3.0)-0.5)*c + l
}

// triangle is the periodic ramp shared by the three channel offsets: 1 at
// the channel's own hue, 0 across the opposing third of the wheel.
func triangle(h float32) float32 {
	t := math32.Mod(h, 1)
	if t < 0 {
		t += 1
	}
	v := math32.Abs(t*6-3) - 1
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
