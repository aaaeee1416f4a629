// Copyright (c) 2025, Chromapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/chromapack/chromapack"
	"github.com/chromapack/chromapack/packed"
	"github.com/spf13/cobra"
)

var (
	swatchSpace string
	swatchSteps int
)

var swatchCmd = &cobra.Command{
	Use:   "swatch [flags] FROM TO",
	Short: "print a gamut-repaired ramp between two colors",
	Long: `Swatch interpolates between two RRGGBB[AA] hex colors inside the chosen
perceptual space and prints each step as an RGBA8888 hex color. Steps that
leave the sRGB gamut are desaturated back into range.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sp, err := chromapack.Lookup(swatchSpace)
		if err != nil {
			return err
		}
		if swatchSteps < 2 {
			return fmt.Errorf("need at least 2 steps, have %d", swatchSteps)
		}
		from, err := parseRGBA(args[0])
		if err != nil {
			return err
		}
		to, err := parseRGBA(args[1])
		if err != nil {
			return err
		}
		a := sp.FromRGBA8888(from)
		b := sp.FromRGBA8888(to)
		for i := 0; i < swatchSteps; i++ {
			t := float32(i) / float32(swatchSteps-1)
			c := sp.ToGamut(lerp(a, b, t))
			fmt.Fprintf(cmd.OutOrStdout(), "%08X\n", sp.ToRGBA8888(c))
		}
		return nil
	},
}

// lerp interpolates two packed colors channel-wise in their own space.
func lerp(a, b packed.Color, t float32) packed.Color {
	mix := func(x, y float32) float32 { return x + (y-x)*t }
	return packed.PackRounded(
		mix(a.Channel1(), b.Channel1()),
		mix(a.Channel2(), b.Channel2())*0.5+0.5,
		mix(a.Channel3(), b.Channel3())*0.5+0.5,
		mix(a.Alpha(), b.Alpha()),
	)
}

func init() {
	swatchCmd.Flags().StringVarP(&swatchSpace, "space", "s", "oklab", "color space to interpolate in")
	swatchCmd.Flags().IntVarP(&swatchSteps, "steps", "n", 8, "number of ramp entries")
	rootCmd.AddCommand(swatchCmd)
}
