// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "github.com/chewxy/math32"

// D65 reference white.
const (
	WhiteX = 0.95047
	WhiteY = 1.0
	WhiteZ = 1.08883
)

// CIE L*a*b* companding constants: epsilon = (6/29)^3, kappa = (29/3)^3.
const (
	labEps   = 0.008856
	labKappa = 903.3
)

// LABCompress applies the L*a*b* cube-root compression to a
// white-point-normalized tristimulus value.
func LABCompress(t float32) float32 {
	if t > labEps {
		return math32.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress inverts [LABCompress].
func LABUncompress(ft float32) float32 {
	t3 := ft * ft * ft
	if t3 > labEps {
		return t3
	}
	return (116*ft - 16) / labKappa
}

// XYZToLAB converts XYZ (Y in 0-1, D65) to L*a*b*, with L* in 0-100.
func XYZToLAB(x, y, z float32) (l, a, b float32) {
	fx := LABCompress(x / WhiteX)
	fy := LABCompress(y / WhiteY)
	fz := LABCompress(z / WhiteZ)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts L*a*b* (L* in 0-100) to XYZ with Y in 0-1, D65.
func LABToXYZ(l, a, b float32) (x, y, z float32) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteX
	y = LABUncompress(fy) * WhiteY
	z = LABUncompress(fz) * WhiteZ
	return
}

// LToY converts an L* value (0-100) to a Y value in 0-100.
func LToY(l float32) float32 {
	return 100 * LABUncompress((l+16)/116)
}

// YToL converts a Y value in 0-100 to L* (0-100).
func YToL(y float32) float32 {
	return 116*LABCompress(y/100) - 16
}
