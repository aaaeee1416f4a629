// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package packed implements the 32-bit packed color format shared by all of
// the perceptual color spaces: four 8-bit fields holding a lightness-like
// channel, two chroma channels, and a 7-bit alpha. The packed word can be
// reinterpreted as a float32 for upload into GPU vertex buffers; internally
// it is always a uint32.
package packed

import "math"

// Color is a packed 4-channel color. Byte 0 holds channel 1 (lightness-like,
// 0-1 unsigned), bytes 1 and 2 hold the chroma channels (signed, centered at
// 127.5), and byte 3 holds alpha with its lowest bit always clear, so the
// bit pattern can never form a float32 NaN when reinterpreted.
type Color uint32

// TweakReset is the neutral tweak color: 50% on every channel. Multiplying
// or offsetting by it leaves a rendered color unchanged.
const TweakReset Color = 0x7E7F7F7F

// alphaMask clears the low bit of the alpha byte, keeping reinterpreted
// floats out of NaN space.
const alphaMask = 0xFE000000

// Pack quantizes four 0-1 channel values to the 8-bit grid by truncation and
// packs them. This is the canonical constructor: it reproduces the historical
// palette encoding bit for bit, including the truncating int casts, so
// callers must pre-clamp inputs to [0,1] themselves. Values already on the
// 8-bit grid survive a Pack/extract round trip exactly.
func Pack(c1, c2, c3, a float32) Color {
	return Color((uint32(int32(a*255))<<24)&alphaMask |
		(uint32(int32(c3*255))&0xFF)<<16 |
		(uint32(int32(c2*255))&0xFF)<<8 |
		uint32(int32(c1*255))&0xFF)
}

// PackRounded is like [Pack] but quantizes to the nearest 8-bit step instead
// of truncating. The colorimetric transforms use it so that sRGB primaries
// and already-packed colors survive their round trips; Pack remains the
// bit-parity path for palette data.
func PackRounded(c1, c2, c3, a float32) Color {
	return Color((uint32(int32(a*255+0.5))<<24)&alphaMask |
		(uint32(int32(c3*255+0.5))&0xFF)<<16 |
		(uint32(int32(c2*255+0.5))&0xFF)<<8 |
		uint32(int32(c1*255+0.5))&0xFF)
}

// Bits returns the raw packed word.
func (c Color) Bits() uint32 { return uint32(c) }

// Float reinterprets the packed word as a float32 for the rendering
// boundary. The alpha low bit is masked so the result is never NaN.
func (c Color) Float() float32 {
	return math.Float32frombits(uint32(c) &^ 0x01000000)
}

// FromFloat recovers a packed color from its float32 reinterpretation.
func FromFloat(f float32) Color {
	return Color(math.Float32bits(f))
}

// Byte returns the i-th 8-bit field (0 = channel 1 .. 3 = alpha).
func (c Color) Byte(i int) uint8 {
	return uint8(c >> (uint(i) * 8))
}

// Channel1 returns the lightness-like channel in 0-1.
func (c Color) Channel1() float32 {
	return float32(c&0xFF) / 255
}

// Channel2 returns the first chroma channel as a signed value in -1 to 1,
// using the center-at-127.5 convention.
func (c Color) Channel2() float32 {
	return (float32(c>>8&0xFF) - 127.5) / 127.5
}

// Channel3 returns the second chroma channel as a signed value in -1 to 1.
func (c Color) Channel3() float32 {
	return (float32(c>>16&0xFF) - 127.5) / 127.5
}

// Alpha returns the opacity in 0-1, from the 7 effective alpha bits.
func (c Color) Alpha() float32 {
	return float32(c>>24&0xFE) / 254
}

// Nudge moves the byte of the given channel (0-2) toward 255 when amount is
// positive, or toward 0 when negative, by the given fraction of the distance.
// This edits the encoded field directly without a colorimetric round trip,
// so the result can leave the space's gamut; run it through the gamut
// limiter afterwards if that matters.
func Nudge(c Color, channel int, amount float32) Color {
	shift := uint(channel) * 8
	b := int32(c >> shift & 0xFF)
	if amount >= 0 {
		b += int32(float32(255-b) * amount)
	} else {
		b = int32(float32(b) * (1 + amount))
	}
	return c&^(0xFF<<shift) | Color(b&0xFF)<<shift
}

// Lighten moves channel 1 toward full lightness by amount (0-1).
func Lighten(c Color, amount float32) Color { return Nudge(c, 0, amount) }

// Darken moves channel 1 toward zero by amount (0-1).
func Darken(c Color, amount float32) Color { return Nudge(c, 0, -amount) }

// Warm moves the first chroma channel toward its positive extreme.
func Warm(c Color, amount float32) Color { return Nudge(c, 1, amount) }

// Cool moves the first chroma channel toward its negative extreme.
func Cool(c Color, amount float32) Color { return Nudge(c, 1, -amount) }

// Sharpen moves the second chroma channel toward its positive extreme.
func Sharpen(c Color, amount float32) Color { return Nudge(c, 2, amount) }

// Soften moves the second chroma channel toward its negative extreme.
func Soften(c Color, amount float32) Color { return Nudge(c, 2, -amount) }
