package swatch

import (
	"errors"
	"path/filepath"
	"strings"
)

// Format is an image file format.
type Format int

// Image file formats.
const (
	UNKNOWN Format = iota
	PNG
	APNG
	JPEG
	GIF
	TIFF
	BMP
)

var FormatExts = map[string]Format{
	"png":  PNG,
	"apng": APNG,
	"jpg":  JPEG,
	"jpeg": JPEG,
	"gif":  GIF,
	"tif":  TIFF,
	"tiff": TIFF,
	"bmp":  BMP,
}

var formatNames = map[Format]string{
	PNG:  "PNG",
	APNG: "APNG",
	JPEG: "JPEG",
	GIF:  "GIF",
	TIFF: "TIFF",
	BMP:  "BMP",
}

func (f Format) String() string {
	return formatNames[f]
}

// ErrUnsupportedFormat means the given image format is not supported.
var ErrUnsupportedFormat = errors.New("swatch: unsupported image format")

// FormatFromExtension parses image format from filename extension:
// "png", "apng", "jpg" (or "jpeg"), "gif", "tif" (or "tiff") and "bmp" are
// supported.
func FormatFromExtension(ext string) (Format, error) {
	if f, ok := FormatExts[strings.ToLower(strings.TrimPrefix(ext, "."))]; ok {
		return f, nil
	}
	return UNKNOWN, ErrUnsupportedFormat
}

// FormatFromFilename parses image format from the extension of filename.
func FormatFromFilename(filename string) (Format, error) {
	return FormatFromExtension(filepath.Ext(filename))
}
