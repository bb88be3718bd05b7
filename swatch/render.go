// Package swatch draws lists of colors as images and writes them to disk.
package swatch

import (
	"image"
	"time"

	"github.com/kettek/apng"
	"github.com/kovidgoyal/okcolor"
)

const (
	DefaultCellWidth  = 64
	DefaultCellHeight = 64
)

// Render draws the colors as a horizontal strip of cellWidth x cellHeight
// cells. Non-positive sizes use the defaults. Colors are gamut mapped to
// sRGB.
func Render(colors []okcolor.Color, cellWidth, cellHeight int) *image.NRGBA {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	if cellHeight <= 0 {
		cellHeight = DefaultCellHeight
	}
	ans := image.NewNRGBA(image.Rect(0, 0, cellWidth*len(colors), cellHeight))
	if len(colors) == 0 {
		return ans
	}
	row := make([]uint8, 4*cellWidth*len(colors))
	for i, c := range colors {
		n := c.NRGBA()
		cell := row[4*cellWidth*i : 4*cellWidth*(i+1)]
		for range cellWidth {
			cell[0], cell[1], cell[2], cell[3] = n.R, n.G, n.B, n.A
			cell = cell[4:]
		}
	}
	for y := range cellHeight {
		copy(ans.Pix[y*ans.Stride:], row)
	}
	return ans
}

// Animate renders each list of colors as one frame of an animation that
// loops forever, showing every frame for delay.
func Animate(frames [][]okcolor.Color, cellWidth, cellHeight int, delay time.Duration) apng.APNG {
	ans := apng.APNG{Frames: make([]apng.Frame, 0, len(frames))}
	ms := uint16(min(max(0, delay.Milliseconds()), 0xffff))
	for _, colors := range frames {
		ans.Frames = append(ans.Frames, apng.Frame{
			Image:            Render(colors, cellWidth, cellHeight),
			DelayNumerator:   ms,
			DelayDenominator: 1000,
			DisposeOp:        apng.DISPOSE_OP_NONE,
			BlendOp:          apng.BLEND_OP_SOURCE,
		})
	}
	return ans
}

// HueSweep returns numFrames copies of colors, each rotated in Oklch hue by
// a further 360/numFrames degrees, for use with Animate.
func HueSweep(colors []okcolor.Color, numFrames int) [][]okcolor.Color {
	if numFrames < 1 {
		return nil
	}
	ans := make([][]okcolor.Color, numFrames)
	step := 360 / float64(numFrames)
	for i := range ans {
		adj := okcolor.Adjustment{Mode: okcolor.Relative, Hue: okcolor.Set(step * float64(i))}
		ans[i] = make([]okcolor.Color, len(colors))
		for j, c := range colors {
			ans[i][j] = okcolor.Adjust(c, adj)
		}
	}
	return ans
}
