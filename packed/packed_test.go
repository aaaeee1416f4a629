// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package packed

import (
	"testing"

	"github.com/chromapack/chromapack/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestPackRoundTrip(t *testing.T) {
	// every value on the 8-bit grid must survive pack and extraction exactly
	for k := 0; k <= 255; k++ {
		v := float32(k) / 255
		c := Pack(v, v, v, 1)
		assert.Equal(t, uint8(k), c.Byte(0), "channel 1 byte %d", k)
		assert.Equal(t, uint8(k), c.Byte(1), "channel 2 byte %d", k)
		assert.Equal(t, uint8(k), c.Byte(2), "channel 3 byte %d", k)
		assert.Equal(t, v, c.Channel1(), "channel 1 value %d", k)
	}
	for k := 0; k <= 254; k += 2 {
		a := float32(k) / 254
		c := Pack(0, 0, 0, a)
		assert.Equal(t, uint8(k), c.Byte(3), "alpha byte %d", k)
		assert.Equal(t, a, c.Alpha(), "alpha value %d", k)
	}
}

func TestPackTruncates(t *testing.T) {
	// the canonical constructor truncates; 0.999 of a step stays below it
	c := Pack(0.4999, 0.4999, 0.4999, 1)
	assert.Equal(t, uint8(127), c.Byte(0))
	c = PackRounded(0.4999, 0.4999, 0.4999, 1)
	assert.Equal(t, uint8(127), c.Byte(0))
	c = PackRounded(0.4999+1.0/510, 0, 0, 1)
	assert.Equal(t, uint8(128), c.Byte(0))
}

func TestSignedChannels(t *testing.T) {
	c := Pack(0, 1, 0, 1)
	tolassert.Equal(t, 1, c.Channel2())
	c = Pack(0, 0, 0, 1)
	tolassert.Equal(t, -1, c.Channel3())
	// center byte 127 sits just below zero, 128 just above
	c = Color(0x00808000)
	tolassert.EqualTol(t, 1.0/255, c.Channel3(), 1e-3)
	tolassert.EqualTol(t, 1.0/255, c.Channel2(), 1e-3)
	// rounded re-encode of a decoded signed channel recovers the byte
	for k := 0; k <= 255; k++ {
		d := (float32(k) - 127.5) / 127.5
		c := PackRounded(0, d*0.5+0.5, d*0.5+0.5, 1)
		assert.Equal(t, uint8(k), c.Byte(1), "byte %d", k)
	}
}

func TestAlphaMasked(t *testing.T) {
	c := Pack(0.5, 0.5, 0.5, 1)
	assert.Equal(t, uint8(0xFE), c.Byte(3))
	assert.Equal(t, uint32(0), c.Bits()&0x01000000)
}

func TestTweakReset(t *testing.T) {
	assert.Equal(t, TweakReset, Pack(0.5, 0.5, 0.5, 0.5))
}

func TestFloatInterop(t *testing.T) {
	c := Pack(0.2, 0.7, 0.9, 0.8)
	assert.Equal(t, c, FromFloat(c.Float()))
	// the reinterpreted float can never be NaN, whatever the bits
	for _, bits := range []uint32{0x7FFFFFFF, 0xFFFFFFFF, 0x7F800001} {
		f := Color(bits).Float()
		assert.False(t, f != f, "bits %08X produced NaN", bits)
	}
}

func TestNudgeEndpoints(t *testing.T) {
	c := Pack(100.0/255, 100.0/255, 100.0/255, 1)
	assert.Equal(t, c, Lighten(c, 0))
	assert.Equal(t, uint8(255), Lighten(c, 1).Byte(0))
	assert.Equal(t, uint8(0), Darken(c, 1).Byte(0))
	assert.Equal(t, c, Darken(c, 0))
	// other fields are untouched
	assert.Equal(t, c.Byte(1), Lighten(c, 1).Byte(1))
	assert.Equal(t, c.Byte(3), Darken(c, 1).Byte(3))

	assert.Equal(t, uint8(255), Warm(c, 1).Byte(1))
	assert.Equal(t, uint8(0), Cool(c, 1).Byte(1))
	assert.Equal(t, uint8(255), Sharpen(c, 1).Byte(2))
	assert.Equal(t, uint8(0), Soften(c, 1).Byte(2))
}

func TestNudgeMonotonic(t *testing.T) {
	c := Pack(0.25, 0.5, 0.5, 1)
	prev := c.Byte(0)
	for _, amt := range []float32{0.1, 0.3, 0.6, 0.9} {
		b := Lighten(c, amt).Byte(0)
		assert.GreaterOrEqual(t, b, prev, "amount %g", amt)
		prev = b
	}
}
