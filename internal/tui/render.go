package tui

import (
	"strings"

	"github.com/noctilu/hashlife/universe"
)

// brailleOffsets maps a 2x4 grid of on/off bits (a..h, row-major) to
// the Unicode braille codepoint whose raised dots match it.
var brailleOffsets = [8]uint8{0x01, 0x08, 0x02, 0x10, 0x04, 0x20, 0x40, 0x80}

func brailleRune(a, b, c, d, e, f, g, h bool) rune {
	bits := [8]bool{a, b, c, d, e, f, g, h}
	var pattern uint8
	for i, set := range bits {
		if set {
			pattern |= brailleOffsets[i]
		}
	}
	return rune(0x2800 + int(pattern))
}

// renderViewport draws a width x height grid of braille cells, each
// covering a 2x4 block of universe cells scaled by zoomFactor, with
// one ContainsAliveCells sample per sub-dot.
func renderViewport(u *universe.Universe, centerX, centerY, zoomFactor int64, width, height int) string {
	if height < 0 {
		height = 0
	}
	zoomMinusOne := zoomFactor - 1
	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			xOffset := 2*(int64(x)-int64(width)/2)*zoomFactor + centerX
			yOffset := 4*(int64(y)-int64(height)/2)*zoomFactor + centerY

			dot := func(dx, dy int64) bool {
				lo := universe.Position{X: xOffset + dx*zoomFactor, Y: yOffset + dy*zoomFactor}
				hi := universe.Position{X: lo.X + zoomMinusOne, Y: lo.Y + zoomMinusOne}
				return u.ContainsAliveCells(lo, hi)
			}
			b.WriteRune(brailleRune(
				dot(0, 0), dot(1, 0),
				dot(0, 1), dot(1, 1),
				dot(0, 2), dot(1, 2),
				dot(0, 3), dot(1, 3),
			))
		}
		if y < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
