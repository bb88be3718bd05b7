package swatch

import (
	"bytes"
	"image"

	"github.com/kovidgoyal/go-parallel"
	"github.com/rwcarlsen/goexif/exif"
	exif_tiff "github.com/rwcarlsen/goexif/tiff"
)

// orientation is an EXIF flag that specifies the transformation
// that should be applied to image to display it correctly.
type orientation int

const (
	orientationUnspecified = 0
	orientationNormal      = 1
	orientationFlipH       = 2
	orientationRotate180   = 3
	orientationFlipV       = 4
	orientationTranspose   = 5
	orientationRotate270   = 6
	orientationTransverse  = 7
	orientationRotate90    = 8
)

// read_orientation returns the EXIF orientation stored in data, or
// orientationUnspecified when data has no usable EXIF block.
func read_orientation(data []byte) orientation {
	exif_data, err := exif.Decode(bytes.NewReader(data))
	if err != nil || exif_data == nil {
		return orientationUnspecified
	}
	orient, err := exif_data.Get(exif.Orientation)
	if err == nil && orient != nil && orient.Format() == exif_tiff.IntVal {
		if x, err := orient.Int(0); err == nil && x > 0 && x < 9 {
			return orientation(x)
		}
	}
	return orientationUnspecified
}

// fixOrientation applies a transform to img corresponding to the given orientation flag.
func fixOrientation(img image.Image, o orientation) (image.Image, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dw, dh := w, h
	var src func(x, y int) (int, int)
	switch o {
	case orientationFlipH:
		src = func(x, y int) (int, int) { return w - 1 - x, y }
	case orientationFlipV:
		src = func(x, y int) (int, int) { return x, h - 1 - y }
	case orientationRotate180:
		src = func(x, y int) (int, int) { return w - 1 - x, h - 1 - y }
	case orientationRotate90:
		dw, dh = h, w
		src = func(x, y int) (int, int) { return w - 1 - y, x }
	case orientationRotate270:
		dw, dh = h, w
		src = func(x, y int) (int, int) { return y, h - 1 - x }
	case orientationTranspose:
		dw, dh = h, w
		src = func(x, y int) (int, int) { return y, x }
	case orientationTransverse:
		dw, dh = h, w
		src = func(x, y int) (int, int) { return w - 1 - y, h - 1 - x }
	default:
		return img, nil
	}
	if w <= 0 || h <= 0 {
		return img, nil
	}
	d := image.NewNRGBA64(image.Rect(0, 0, dw, dh))
	err := parallel.Run_in_parallel_over_range(0, func(start, limit int) {
		for y := start; y < limit; y++ {
			for x := range dw {
				sx, sy := src(x, y)
				d.Set(x, y, img.At(b.Min.X+sx, b.Min.Y+sy))
			}
		}
	}, 0, dh)
	if err != nil {
		return nil, err
	}
	return d, nil
}
