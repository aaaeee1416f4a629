// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Chromapack is a small command line front end for the packed perceptual
// color spaces: it converts RGBA8888 hex colors to and from their packed
// form and renders gamut-repaired ramps between colors.
package main

import (
	"os"

	"github.com/chromapack/chromapack/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
