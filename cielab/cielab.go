// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cielab implements the packed CIE L*a*b* color space under the
// D65 illuminant. L* is rescaled from 0-100 to the 0-1 channel range and
// the a* and b* axes from roughly -128 to 128 into the signed chroma
// encoding, so one chroma step is one unit of a* or b*.
package cielab

import (
	"image/color"

	"github.com/chromapack/chromapack/cie"
	"github.com/chromapack/chromapack/gamut"
	"github.com/chromapack/chromapack/hsl"
	"github.com/chromapack/chromapack/packed"
)

// chromaScale maps the usable a*/b* range onto the signed byte encoding.
const chromaScale = 127.5

// FromSRGB converts gamma-corrected sRGB to rescaled L*a*b*: L* divided
// by 100, a* and b* divided by 127.5.
func FromSRGB(r, g, b float32) (lt, a, bb float32) {
	x, y, z := cie.SRGBToXYZ(r, g, b)
	l, aa, bv := cie.XYZToLAB(x, y, z)
	return l / 100, aa / chromaScale, bv / chromaScale
}

// ToSRGB converts rescaled L*a*b* back to gamma-corrected sRGB, without
// clamping.
func ToSRGB(lt, a, bb float32) (r, g, b float32) {
	x, y, z := cie.LABToXYZ(lt*100, a*chromaScale, bb*chromaScale)
	return cie.XYZToSRGB(x, y, z)
}

// toLinear converts rescaled L*a*b* to linear-light RGB, the last stop
// before the sRGB companding curve. The gamut check runs here so its
// tolerance is not amplified by the steep dark end of the curve.
func toLinear(lt, a, bb float32) (rl, gl, bl float32) {
	x, y, z := cie.LABToXYZ(lt*100, a*chromaScale, bb*chromaScale)
	return cie.XYZToSRGBLin(x, y, z)
}

// gamutTol is the in-gamut slack this space's quantization needs in linear
// light, from a sweep of encoded boundary colors (worst shift 0.046).
const gamutTol = 0.07

var limiter = gamut.Limiter{Inv: toLinear, Tol: gamutTol}

// FromRGBA packs the given non-premultiplied sRGB components (0-1).
func FromRGBA(r, g, b, a float32) packed.Color {
	lt, aa, bb := FromSRGB(r, g, b)
	return gamut.PackFit(ToSRGB, r, g, b, lt, aa, bb, a)
}

// FromRGBA8888 packs an 0xRRGGBBAA integer color.
func FromRGBA8888(u uint32) packed.Color {
	return FromRGBA(float32(u>>24&0xFF)/255, float32(u>>16&0xFF)/255,
		float32(u>>8&0xFF)/255, float32(u&0xFF)/255)
}

// FromColor packs a standard [color.Color], undoing the alpha
// premultiplication of the RGBA interchange form.
func FromColor(cl color.Color) packed.Color {
	r, g, b, a := cl.RGBA()
	if a == 0 {
		return FromRGBA(0, 0, 0, 0)
	}
	fa := float32(a) / 65535
	return FromRGBA(float32(r)/65535/fa, float32(g)/65535/fa, float32(b)/65535/fa, fa)
}

// FromHSL packs a color given as hue, saturation and lightness (all 0-1).
func FromHSL(h, s, l, a float32) packed.Color {
	r, g, b := hsl.ToRGB(h, s, l)
	return FromRGBA(cie.Clamp01(r), cie.Clamp01(g), cie.Clamp01(b), a)
}

// ToRGBA8888 reconstructs the packed color as an 0xRRGGBBAA integer,
// saturating each channel to 0-255.
func ToRGBA8888(c packed.Color) uint32 {
	r, g, b := ToSRGB(c.Channel1(), c.Channel2(), c.Channel3())
	return uint32(cie.Clamp01(r)*255+0.5)<<24 | uint32(cie.Clamp01(g)*255+0.5)<<16 |
		uint32(cie.Clamp01(b)*255+0.5)<<8 | uint32(c.Alpha()*255+0.5)
}

// AsRGBA returns a standard [color.RGBA], premultiplying by alpha.
func AsRGBA(c packed.Color) color.RGBA {
	r, g, b := ToSRGB(c.Channel1(), c.Channel2(), c.Channel3())
	a := c.Alpha()
	return color.RGBA{
		uint8(cie.Clamp01(r)*a*255 + 0.5),
		uint8(cie.Clamp01(g)*a*255 + 0.5),
		uint8(cie.Clamp01(b)*a*255 + 0.5),
		uint8(a*255 + 0.5),
	}
}

// LStar returns L* rescaled to 0-1.
func LStar(c packed.Color) float32 { return c.Channel1() }

// AStar returns a* rescaled to -1 to 1 (one unit is 127.5 of a*).
func AStar(c packed.Color) float32 { return c.Channel2() }

// BStar returns b* rescaled to -1 to 1.
func BStar(c packed.Color) float32 { return c.Channel3() }

// Limit packs the given rescaled L*a*b* triple and opacity, desaturating
// toward mid-gray as needed so the result reconstructs to valid sRGB.
func Limit(lt, a, bb, alpha float32) packed.Color {
	return limiter.Limit(lt, a, bb, alpha)
}

// InGamut reports whether the packed color reconstructs to sRGB inside
// the unit cube, within the slack the byte encoding needs.
func InGamut(c packed.Color) bool {
	return limiter.InGamut(c)
}

// ToGamut returns the color unchanged if it is in gamut, and otherwise a
// desaturated in-gamut replacement with the same alpha.
func ToGamut(c packed.Color) packed.Color {
	return limiter.ToGamut(c)
}

// HSL returns hue, saturation and lightness (0-1) of the reconstructed,
// clamped sRGB color.
func HSL(c packed.Color) (h, s, l float32) {
	r, g, b := ToSRGB(c.Channel1(), c.Channel2(), c.Channel3())
	return hsl.FromRGB(cie.Clamp01(r), cie.Clamp01(g), cie.Clamp01(b))
}

// Hue returns the derived hue in 0-1.
func Hue(c packed.Color) float32 { h, _, _ := HSL(c); return h }

// Saturation returns the derived saturation in 0-1.
func Saturation(c packed.Color) float32 { _, s, _ := HSL(c); return s }

// Lightness returns the derived lightness in 0-1.
func Lightness(c packed.Color) float32 { _, _, l := HSL(c); return l }

// Space adapts this package to the shared colorspace interface.
type Space struct{}

func (Space) Name() string                             { return "cielab" }
func (Space) FromRGBA8888(u uint32) packed.Color       { return FromRGBA8888(u) }
func (Space) ToRGBA8888(c packed.Color) uint32         { return ToRGBA8888(c) }
func (Space) FromRGBA(r, g, b, a float32) packed.Color { return FromRGBA(r, g, b, a) }
func (Space) ToGamut(c packed.Color) packed.Color      { return ToGamut(c) }
func (Space) InGamut(c packed.Color) bool              { return InGamut(c) }
