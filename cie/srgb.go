// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the shared CIE colorimetry used by the packed color
// spaces: sRGB gamma companding, the sRGB to XYZ matrices under the D65
// illuminant, and the CIE L*a*b* compression functions.
package cie

import "github.com/chewxy/math32"

// SRGBToLinearComp converts a gamma-corrected sRGB component to linear space.
func SRGBToLinearComp(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math32.Pow((c+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear component to gamma-corrected sRGB.
func SRGBFromLinearComp(c float32) float32 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math32.Pow(c, 1.0/2.4) - 0.055
}

// SRGBToLinear converts gamma-corrected sRGB to linear values.
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	return SRGBToLinearComp(r), SRGBToLinearComp(g), SRGBToLinearComp(b)
}

// SRGBFromLinear converts linear values to gamma-corrected sRGB.
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	return SRGBFromLinearComp(rl), SRGBFromLinearComp(gl), SRGBFromLinearComp(bl)
}

// Clamp01 clamps a component to the 0-1 range, saturating rather than
// wrapping.
func Clamp01(c float32) float32 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
