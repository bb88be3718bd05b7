// Package convert applies okcolor operations to every pixel of an image.
package convert

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/kovidgoyal/go-parallel"
	"github.com/kovidgoyal/okcolor"
)

// Transform changes the color of a single pixel. It receives sRGB colors
// with straight alpha and may return a color in any space.
type Transform func(okcolor.Color) okcolor.Color

func from8(r, g, b, a uint8) okcolor.Color {
	return okcolor.RGBA(float64(r)/0xff, float64(g)/0xff, float64(b)/0xff, float64(a)/0xff)
}

func from16(r, g, b, a uint16) okcolor.Color {
	return okcolor.RGBA(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff, float64(a)/0xffff)
}

func premultiply8(r, a uint8) uint8 {
	return uint8((uint16(r)*uint16(a) + 0x7f) / 0xff)
}

func unpremultiply8(r, a uint8) uint8 {
	return uint8(min(0xff, (uint16(r)*0xff+uint16(a)/2)/uint16(a)))
}

func premultiply16(r, a uint16) uint16 {
	return uint16((uint32(r)*uint32(a) + 0x7fff) / 0xffff)
}

func unpremultiply16(r, a uint16) uint16 {
	return uint16(min(0xffff, (uint32(r)*0xffff+uint32(a)/2)/uint32(a)))
}

func get16(s []uint8) uint16 { return uint16(s[0])<<8 | uint16(s[1]) }

func put16(s []uint8, v uint16) {
	s[0] = uint8(v >> 8)
	s[1] = uint8(v)
}

func put_nrgba64(s []uint8, n color.NRGBA64) {
	put16(s[0:2], n.R)
	put16(s[2:4], n.G)
	put16(s[4:6], n.B)
	put16(s[6:8], n.A)
}

// Apply runs tr on every pixel of image_any. The result may be the original
// image modified in place, or a new image when the original cannot hold
// arbitrary colors (grayscale images) or is not of a supported type.
func Apply(image_any image.Image, tr Transform) (ans image.Image, err error) {
	b := image_any.Bounds()
	width, height := b.Dx(), b.Dy()
	ans = image_any
	if width <= 0 || height <= 0 {
		return
	}
	var f func(start, limit int)
	switch img := image_any.(type) {
	case *image.NRGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[4*width-1]
				for range width {
					s := row[0:4:4]
					n := tr(from8(s[0], s[1], s[2], s[3])).NRGBA()
					s[0], s[1], s[2], s[3] = n.R, n.G, n.B, n.A
					row = row[4:]
				}
			}
		}
	case *image.NRGBA64:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[8*width-1]
				for range width {
					s := row[0:8:8]
					put_nrgba64(s, tr(from16(get16(s[0:2]), get16(s[2:4]), get16(s[4:6]), get16(s[6:8]))).NRGBA64())
					row = row[8:]
				}
			}
		}
	case *image.RGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[4*width-1]
				for range width {
					s := row[0:4:4]
					var c okcolor.Color
					if a := s[3]; a != 0 {
						c = from8(unpremultiply8(s[0], a), unpremultiply8(s[1], a), unpremultiply8(s[2], a), a)
					} else {
						c = from8(0, 0, 0, 0)
					}
					n := tr(c).NRGBA()
					s[0], s[1], s[2], s[3] = premultiply8(n.R, n.A), premultiply8(n.G, n.A), premultiply8(n.B, n.A), n.A
					row = row[4:]
				}
			}
		}
	case *image.RGBA64:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[8*width-1]
				for range width {
					s := row[0:8:8]
					var c okcolor.Color
					if a := get16(s[6:8]); a != 0 {
						c = from16(unpremultiply16(get16(s[0:2]), a), unpremultiply16(get16(s[2:4]), a), unpremultiply16(get16(s[4:6]), a), a)
					} else {
						c = from16(0, 0, 0, 0)
					}
					n := tr(c).NRGBA64()
					n.R, n.G, n.B = premultiply16(n.R, n.A), premultiply16(n.G, n.A), premultiply16(n.B, n.A)
					put_nrgba64(s, n)
					row = row[8:]
				}
			}
		}
	case *image.Paletted:
		for i, c := range img.Palette {
			img.Palette[i] = tr(okcolor.FromStdColor(c)).NRGBA64()
		}
		return
	case *image.Gray:
		d := image.NewNRGBA(b)
		ans = d
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[width-1]
				drow := d.Pix[d.Stride*y:]
				_ = drow[4*width-1]
				for _, gray := range row[:width] {
					n := tr(from8(gray, gray, gray, 0xff)).NRGBA()
					drow[0], drow[1], drow[2], drow[3] = n.R, n.G, n.B, n.A
					drow = drow[4:]
				}
			}
		}
	case *image.Gray16:
		d := image.NewNRGBA64(b)
		ans = d
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[2*width-1]
				drow := d.Pix[d.Stride*y:]
				_ = drow[8*width-1]
				for range width {
					gray := get16(row[0:2])
					put_nrgba64(drow[0:8:8], tr(from16(gray, gray, gray, 0xffff)).NRGBA64())
					row = row[2:]
					drow = drow[8:]
				}
			}
		}
	case draw.Image:
		f = func(start, limit int) {
			for y := b.Min.Y + start; y < b.Min.Y+limit; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					img.Set(x, y, tr(okcolor.FromStdColor(img.At(x, y))).NRGBA64())
				}
			}
		}
	default:
		d := image.NewNRGBA64(b)
		ans = d
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := d.Pix[d.Stride*y:]
				for x := range width {
					c := okcolor.FromStdColor(image_any.At(x+b.Min.X, y+b.Min.Y))
					put_nrgba64(row[8*x:8*x+8], tr(c).NRGBA64())
				}
			}
		}
	}
	if err = parallel.Run_in_parallel_over_range(0, f, 0, height); err != nil {
		err = fmt.Errorf("failed to convert image of type %T: %w", image_any, err)
	}
	return
}

// AdjustImage applies adj to every pixel, see okcolor.Adjust.
func AdjustImage(img image.Image, adj okcolor.Adjustment) (image.Image, error) {
	if adj.IsZero() {
		return img, nil
	}
	return Apply(img, func(c okcolor.Color) okcolor.Color { return okcolor.Adjust(c, adj) })
}

// MixImage tints every pixel by mixing it with the specified color, see
// okcolor.Mix. The alpha of each pixel is preserved.
func MixImage(img image.Image, with okcolor.Color, weight float64, space okcolor.Space) (image.Image, error) {
	// validate the arguments once rather than per pixel
	if _, err := okcolor.Mix(with, with, weight, space); err != nil {
		return nil, err
	}
	return Apply(img, func(c okcolor.Color) okcolor.Color {
		ans, _ := okcolor.Mix(c, with.WithAlpha(c.Alpha), weight, space)
		return ans
	})
}

// GrayscaleImage removes all chroma from every pixel, keeping its Oklab
// lightness.
func GrayscaleImage(img image.Image) (image.Image, error) {
	return Apply(img, func(c okcolor.Color) okcolor.Color {
		lab := c.To(okcolor.Oklab)
		lab.V[1], lab.V[2] = 0, 0
		return lab
	})
}
