// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ipt implements the packed IPT color space: intensity plus two
// chromatic axes (protan and tritan), computed from gamma-corrected sRGB
// through an LMS cone intermediate. This variant applies no companding,
// trading colorimetric accuracy for speed; see the ipthq package for the
// companded version.
package ipt

import (
	"image/color"

	"github.com/chromapack/chromapack/cie"
	"github.com/chromapack/chromapack/gamut"
	"github.com/chromapack/chromapack/hsl"
	"github.com/chromapack/chromapack/packed"
)

// FromSRGB converts gamma-corrected sRGB to IPT. Intensity is in 0-1 for
// in-gamut input; protan and tritan are signed, roughly -1 to 1.
func FromSRGB(r, g, b float32) (i, p, t float32) {
	l := 0.313921*r + 0.639468*g + 0.0465970*b
	m := 0.151693*r + 0.748209*g + 0.1000044*b
	s := 0.017753*r + 0.109468*g + 0.872969*b
	i = 0.4*l + 0.4*m + 0.2*s
	p = 4.455*l - 4.851*m + 0.396*s
	t = 0.8056*l + 0.3572*m - 1.1628*s
	return
}

// ToSRGB converts IPT back to gamma-corrected sRGB. No clamping is done:
// out-of-gamut input yields components outside 0-1.
func ToSRGB(i, p, t float32) (r, g, b float32) {
	l := i + 0.0975689305*p + 0.205226433*t
	m := i - 0.113876485*p + 0.133217158*t
	s := i + 0.0326151099*p - 0.676887183*t
	r = 5.43262148*l - 4.67906812*m + 0.246037989*s
	g = -1.10517436*l + 2.31118426*m - 0.205769947*s
	b = 0.0281062642*l - 0.194661233*m + 1.16631554*s
	return
}

// gamutTol is the in-gamut slack this space's quantization needs, from a
// sweep of encoded boundary colors (worst reconstruction shift 0.021).
const gamutTol = 0.03

var limiter = gamut.Limiter{Inv: ToSRGB, Tol: gamutTol}

// FromRGBA packs the given non-premultiplied sRGB components (0-1).
func FromRGBA(r, g, b, a float32) packed.Color {
	i, p, t := FromSRGB(r, g, b)
	return gamut.PackFit(ToSRGB, r, g, b, i, p, t, a)
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

// Intensity returns the lightness-like I channel in 0-1.
func Intensity(c packed.Color) float32 { return c.Channel1() }

// Protan returns the red-green P axis as a signed value in -1 to 1.
func Protan(c packed.Color) float32 { return c.Channel2() }

// Tritan returns the yellow-blue T axis as a signed value in -1 to 1.
func Tritan(c packed.Color) float32 { return c.Channel3() }

// Limit packs the given IPT triple and opacity, desaturating toward
// mid-gray as needed so the result reconstructs to valid sRGB.
func Limit(i, p, t, a float32) packed.Color {
	return limiter.Limit(i, p, t, a)
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

func (Space) Name() string                             { return "ipt" }
func (Space) FromRGBA8888(u uint32) packed.Color       { return FromRGBA8888(u) }
func (Space) ToRGBA8888(c packed.Color) uint32         { return ToRGBA8888(c) }
func (Space) FromRGBA(r, g, b, a float32) packed.Color { return FromRGBA(r, g, b, a) }
func (Space) ToGamut(c packed.Color) packed.Color      { return ToGamut(c) }
func (Space) InGamut(c packed.Color) bool              { return InGamut(c) }
