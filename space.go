// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chromapack ties the packed perceptual color spaces together
// behind one interface, so callers can convert, pack and gamut-repair
// colors without committing to a particular space at compile time. The
// per-space packages remain the primary API; this package is the glue for
// tools that select a space by name.
package chromapack

import (
	"fmt"
	"sort"

	"github.com/chromapack/chromapack/cielab"
	"github.com/chromapack/chromapack/ipt"
	"github.com/chromapack/chromapack/ipthq"
	"github.com/chromapack/chromapack/lms"
	"github.com/chromapack/chromapack/oklab"
	"github.com/chromapack/chromapack/packed"
	"github.com/chromapack/chromapack/ycwcm"
)

// Space is the capability set every packed color space provides. All
// implementations are stateless value types, safe for concurrent use.
type Space interface {
	// Name returns the lowercase identifier of the space.
	Name() string

	// FromRGBA8888 packs an 0xRRGGBBAA integer color.
	FromRGBA8888(u uint32) packed.Color

	// ToRGBA8888 reconstructs the packed color as an 0xRRGGBBAA integer,
	// saturating each channel.
	ToRGBA8888(c packed.Color) uint32

	// FromRGBA packs non-premultiplied float components in 0-1.
	FromRGBA(r, g, b, a float32) packed.Color

	// ToGamut returns the color unchanged if in gamut, or a desaturated
	// in-gamut replacement.
	ToGamut(c packed.Color) packed.Color

	// InGamut reports whether the color reconstructs to valid sRGB.
	InGamut(c packed.Color) bool
}

var spaces = map[string]Space{
	"ipt":    ipt.Space{},
	"ipthq":  ipthq.Space{},
	"oklab":  oklab.Space{},
	"cielab": cielab.Space{},
	"ycwcm":  ycwcm.Space{},
	"lms":    lms.Space{},
}

// Lookup returns the space with the given name, or an error naming the
// valid choices.
func Lookup(name string) (Space, error) {
	if s, ok := spaces[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("chromapack: unknown color space %q (have %v)", name, Names())
}

// All returns every registered space, sorted by name.
func All() []Space {
	out := make([]Space, 0, len(spaces))
	for _, s := range spaces {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Names returns the sorted names of every registered space.
func Names() []string {
	out := make([]string, 0, len(spaces))
	for n := range spaces {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
