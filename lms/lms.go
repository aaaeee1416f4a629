// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lms implements the packed LMS color space: raw long, medium and
// short cone responses computed directly from gamma-corrected sRGB. Unlike
// the other packed spaces, the M and S channels are not chromatic
// differences; they are cone responses rescaled into the signed chroma
// encoding. That makes the space poor for tinting but useful as a
// building block and for cone-level analysis.
package lms

import (
	"image/color"

	"github.com/chromapack/chromapack/cie"
	"github.com/chromapack/chromapack/gamut"
	"github.com/chromapack/chromapack/hsl"
	"github.com/chromapack/chromapack/packed"
)

// FromSRGB converts gamma-corrected sRGB to cone responses. L is in 0-1;
// M and S come back rescaled to the signed -1 to 1 convention of the
// chroma channels.
func FromSRGB(r, g, b float32) (l, m, s float32) {
	l = 0.313921*r + 0.639468*g + 0.0465970*b
	m = 0.151693*r + 0.748209*g + 0.1000044*b
	s = 0.017753*r + 0.109468*g + 0.872969*b
	return l, m*2 - 1, s*2 - 1
}

// ToSRGB converts signed-encoded cone responses back to gamma-corrected
// sRGB, without clamping.
func ToSRGB(l, m, s float32) (r, g, b float32) {
	mm := m*0.5 + 0.5
	ss := s*0.5 + 0.5
	r = 5.43262148*l - 4.67906812*mm + 0.246037989*ss
	g = -1.10517436*l + 2.31118426*mm - 0.205769947*ss
	b = 0.0281062642*l - 0.194661233*mm + 1.16631554*ss
	return
}

// gamutTol is the in-gamut slack this space's quantization needs, from a
// sweep of encoded boundary colors (worst reconstruction shift 0.056).
const gamutTol = 0.08

var limiter = gamut.Limiter{Inv: ToSRGB, Tol: gamutTol}

// FromRGBA packs the given non-premultiplied sRGB components (0-1).
func FromRGBA(r, g, b, a float32) packed.Color {
	l, m, s := FromSRGB(r, g, b)
	return gamut.PackFit(ToSRGB, r, g, b, l, m, s, a)
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

// ChannelL returns the long-wavelength cone response in 0-1.
func ChannelL(c packed.Color) float32 { return c.Channel1() }

// ChannelM returns the medium-wavelength cone response in the signed
// -1 to 1 encoding.
func ChannelM(c packed.Color) float32 { return c.Channel2() }

// ChannelS returns the short-wavelength cone response in the signed
// -1 to 1 encoding.
func ChannelS(c packed.Color) float32 { return c.Channel3() }

// Limit packs the given cone triple and opacity, desaturating toward
// mid-gray as needed so the result reconstructs to valid sRGB.
func Limit(l, m, s, a float32) packed.Color {
	return limiter.Limit(l, m, s, a)
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

func (Space) Name() string                             { return "lms" }
func (Space) FromRGBA8888(u uint32) packed.Color       { return FromRGBA8888(u) }
func (Space) ToRGBA8888(c packed.Color) uint32         { return ToRGBA8888(c) }
func (Space) FromRGBA(r, g, b, a float32) packed.Color { return FromRGBA(r, g, b, a) }
func (Space) ToGamut(c packed.Color) packed.Color      { return ToGamut(c) }
func (Space) InGamut(c packed.Color) bool              { return InGamut(c) }
