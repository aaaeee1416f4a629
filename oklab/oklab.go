// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklab implements the packed Oklab color space, using Ottosson's
// published matrices: sRGB is linearized, projected onto an LMS-like
// basis, cube-root companded, and mixed into a lightness channel and two
// opponent axes. The a and b axes span roughly -0.5 to 0.5 in Oklab
// proper, so they are doubled before the signed chroma encoding to use
// the full byte range.
package oklab

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/chromapack/chromapack/cie"
	"github.com/chromapack/chromapack/gamut"
	"github.com/chromapack/chromapack/hsl"
	"github.com/chromapack/chromapack/packed"
)

// FromSRGB converts gamma-corrected sRGB to Oklab, with the a and b axes
// doubled into the -1 to 1 chroma convention.
func FromSRGB(r, g, b float32) (lt, a, bb float32) {
	rl, gl, bl := cie.SRGBToLinear(r, g, b)
	l := 0.4122214708*rl + 0.5363325363*gl + 0.0514459929*bl
	m := 0.2119034982*rl + 0.6806995451*gl + 0.1073969566*bl
	s := 0.0883024619*rl + 0.2817188376*gl + 0.6299787005*bl
	l = math32.Cbrt(l)
	m = math32.Cbrt(m)
	s = math32.Cbrt(s)
	lt = 0.2104542553*l + 0.7936177850*m - 0.0040720468*s
	a = (1.9779984951*l - 2.4285922050*m + 0.4505937099*s) * 2
	bb = (0.0259040371*l + 0.7827717662*m - 0.8086757660*s) * 2
	return
}

// toLinear converts doubled-axis Oklab to linear-light RGB, the last stop
// before the sRGB companding curve. The gamut check runs here so its
// tolerance is not amplified by the steep dark end of the curve.
func toLinear(lt, a, bb float32) (rl, gl, bl float32) {
	aa := a * 0.5
	bh := bb * 0.5
	l := lt + 0.3963377774*aa + 0.2158037573*bh
	m := lt - 0.1055613458*aa - 0.0638541728*bh
	s := lt - 0.0894841775*aa - 1.2914855480*bh
	l = l * l * l
	m = m * m * m
	s = s * s * s
	rl = 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	gl = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return
}

// ToSRGB converts doubled-axis Oklab back to gamma-corrected sRGB,
// without clamping.
func ToSRGB(lt, a, bb float32) (r, g, b float32) {
	return cie.SRGBFromLinear(toLinear(lt, a, bb))
}

// gamutTol is the in-gamut slack this space's quantization needs in linear
// light, from a sweep of encoded boundary colors (worst shift 0.056).
const gamutTol = 0.08

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

// ChannelL returns the Oklab lightness in 0-1.
func ChannelL(c packed.Color) float32 { return c.Channel1() }

// ChannelA returns the doubled green-red axis as a signed value in
// -1 to 1.
func ChannelA(c packed.Color) float32 { return c.Channel2() }

// ChannelB returns the doubled blue-yellow axis as a signed value in
// -1 to 1.
func ChannelB(c packed.Color) float32 { return c.Channel3() }

// Limit packs the given Oklab triple and opacity, desaturating toward
// mid-gray as needed so the result reconstructs to valid sRGB.
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

func (Space) Name() string                             { return "oklab" }
func (Space) FromRGBA8888(u uint32) packed.Color       { return FromRGBA8888(u) }
func (Space) ToRGBA8888(c packed.Color) uint32         { return ToRGBA8888(c) }
func (Space) FromRGBA(r, g, b, a float32) packed.Color { return FromRGBA(r, g, b, a) }
func (Space) ToGamut(c packed.Color) packed.Color      { return ToGamut(c) }
func (Space) InGamut(c packed.Color) bool              { return InGamut(c) }
