// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// SRGBLinToXYZ converts linear sRGB to XYZ under D65, with Y in 0-1. The
// matrix is carried at full precision; the common four-decimal truncation
// drifts the Z row by more than a float32 step.
func SRGBLinToXYZ(rl, gl, bl float32) (x, y, z float32) {
	x = 0.41233895*rl + 0.35762064*gl + 0.18051042*bl
	y = 0.2126*rl + 0.7152*gl + 0.0722*bl
	z = 0.01932141*rl + 0.11916382*gl + 0.95034478*bl
	return
}

// XYZToSRGBLin converts XYZ (Y in 0-1, D65) to linear sRGB. Out-of-gamut
// XYZ yields components outside 0-1; callers clamp as needed.
func XYZToSRGBLin(x, y, z float32) (rl, gl, bl float32) {
	rl = 3.2406*x + -1.5372*y + -0.4986*z
	gl = -0.9689*x + 1.8758*y + 0.0415*z
	bl = 0.0557*x + -0.2040*y + 1.0570*z
	return
}

// SRGBToXYZ converts gamma-corrected sRGB to XYZ under D65, with Y in 0-1.
func SRGBToXYZ(r, g, b float32) (x, y, z float32) {
	rl, gl, bl := SRGBToLinear(r, g, b)
	return SRGBLinToXYZ(rl, gl, bl)
}

// XYZToSRGB converts XYZ (Y in 0-1, D65) back to gamma-corrected sRGB.
func XYZToSRGB(x, y, z float32) (r, g, b float32) {
	return SRGBFromLinear(XYZToSRGBLin(x, y, z))
}
