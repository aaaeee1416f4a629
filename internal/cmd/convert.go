// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chromapack/chromapack"
	"github.com/spf13/cobra"
)

var convertSpace string

var convertCmd = &cobra.Command{
	Use:   "convert [flags] RRGGBBAA...",
	Short: "pack hex colors and print their reconstruction",
	Long: `Convert packs each RRGGBB[AA] hex color and prints the packed word and
the reconstructed RGBA8888 value. Without --space it reports every space.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spaces := chromapack.All()
		if convertSpace != "" {
			sp, err := chromapack.Lookup(convertSpace)
			if err != nil {
				return err
			}
			spaces = []chromapack.Space{sp}
		}
		for _, arg := range args {
			u, err := parseRGBA(arg)
			if err != nil {
				return err
			}
			for _, sp := range spaces {
				p := sp.FromRGBA8888(u)
				fmt.Fprintf(cmd.OutOrStdout(), "%08X  %-6s  packed %08X  back %08X\n",
					u, sp.Name(), p.Bits(), sp.ToRGBA8888(p))
			}
		}
		return nil
	},
}

// parseRGBA reads an RRGGBBAA hex color; a six-digit form gets full alpha.
func parseRGBA(s string) (uint32, error) {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 6:
		s += "FF"
	case 8:
	default:
		return 0, fmt.Errorf("bad color %q: want RRGGBB or RRGGBBAA hex", s)
	}
	u, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad color %q: %w", s, err)
	}
	return uint32(u), nil
}

func init() {
	convertCmd.Flags().StringVarP(&convertSpace, "space", "s", "", "report only this color space")
	rootCmd.AddCommand(convertCmd)
}
