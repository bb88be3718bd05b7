package okcolor

import (
	"errors"
)

var (
	ErrInvalidDimension   = errors.New("okcolor: a color must have 3 or 4 channels")
	ErrInvalidChannelType = errors.New("okcolor: color channels must be finite numbers")
	ErrUnknownColorSpace  = errors.New("okcolor: unknown color space")
)
