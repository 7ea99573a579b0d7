package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/noctilu/hashlife/internal/render"
	"github.com/noctilu/hashlife/universe"
)

func newRenderCmd(c *cfg) *cobra.Command {
	var generations uint64
	var zoom uint8
	var pad int64

	cmd := &cobra.Command{
		Use:   "render <pattern> <out.png>",
		Short: "Step a pattern and rasterize its bounding box to a PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := loadPattern(args[0], c.v.GetString("rule"), c.log)
			if err != nil {
				return err
			}

			if err := u.Step(generations); err != nil {
				return err
			}

			lo, hi, ok := u.BoundingBox()
			if !ok {
				lo, hi = universe.Position{X: -pad, Y: -pad}, universe.Position{X: pad, Y: pad}
			} else {
				lo = universe.Position{X: lo.X - pad, Y: lo.Y - pad}
				hi = universe.Position{X: hi.X + pad, Y: hi.Y + pad}
			}

			out, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer out.Close()

			c.log.Info().Str("out", args[1]).Int64("width", hi.X-lo.X+1).Int64("height", hi.Y-lo.Y+1).Msg("rendering")
			return render.SavePNG(out, u, lo, hi, zoom)
		},
	}
	cmd.Flags().Uint64Var(&generations, "generations", 0, "number of generations to advance before rendering")
	cmd.Flags().Uint8Var(&zoom, "zoom", 0, "downsampling power of two: each pixel covers 2^zoom cells per side")
	cmd.Flags().Int64Var(&pad, "pad", 0, "cells of padding to add around the bounding box")
	return cmd
}
