// Package render draws a Universe's live cells to a grayscale PNG:
// one pixel per zoom-factor-sized block of cells, sampled through
// Universe.ContainsAliveCells rather than walking every individual
// cell, white for empty blocks and black for any block containing a
// live cell.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/noctilu/hashlife/universe"
)

// SavePNG renders the rectangle [lo, hi] of u to w as a grayscale PNG.
// zoom is a power-of-two downsampling factor: each output pixel covers
// a 2^zoom x 2^zoom block of cells, and is painted black if any cell
// in that block is alive.
func SavePNG(w io.Writer, u *universe.Universe, lo, hi universe.Position, zoom uint8) error {
	if lo.X > hi.X || lo.Y > hi.Y {
		return fmt.Errorf("render: SavePNG: lo must be <= hi")
	}

	zoomFactor := int64(1) << zoom
	width := ceilDiv(hi.X-lo.X+1, zoomFactor)
	height := ceilDiv(hi.Y-lo.Y+1, zoomFactor)

	img := image.NewGray(image.Rect(0, 0, int(width), int(height)))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	for imgY := int64(0); imgY < height; imgY++ {
		for imgX := int64(0); imgX < width; imgX++ {
			blockLo := universe.Position{
				X: lo.X + imgX*zoomFactor,
				Y: lo.Y + imgY*zoomFactor,
			}
			blockHi := universe.Position{
				X: min64(blockLo.X+zoomFactor-1, hi.X),
				Y: min64(blockLo.Y+zoomFactor-1, hi.Y),
			}
			if u.ContainsAliveCells(blockLo, blockHi) {
				img.SetGray(int(imgX), int(imgY), color.Gray{Y: 0})
			}
		}
	}

	return png.Encode(w, img)
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
