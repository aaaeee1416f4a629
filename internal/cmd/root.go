// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the chromapack command line tool.
package cmd

import (
	"strings"

	"github.com/chromapack/chromapack"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chromapack",
	Short: "convert colors through the packed perceptual color spaces",
	Long: `Chromapack converts RGBA8888 hex colors to and from the 32-bit packed
perceptual encoding, in any of the supported color spaces: ` +
		strings.Join(chromapack.Names(), ", ") + `.`,
	SilenceUsage: true,
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return rootCmd.Execute()
}
