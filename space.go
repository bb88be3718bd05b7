package okcolor

import (
	"fmt"
	"strings"
)

// Space identifies how the three channels of a Color are to be interpreted.
type Space int

const (
	SRGB Space = iota
	LinearRGB
	XYZ
	LMS
	Oklab
	Oklch
	HSL
	HWB
	Lab
	LCh
	Luv
	DisplayP3
	numSpaces
)

var spaceNames = [numSpaces]string{
	SRGB:      "srgb",
	LinearRGB: "srgb-linear",
	XYZ:       "xyz-d65",
	LMS:       "lms",
	Oklab:     "oklab",
	Oklch:     "oklch",
	HSL:       "hsl",
	HWB:       "hwb",
	Lab:       "lab",
	LCh:       "lch",
	Luv:       "luv",
	DisplayP3: "display-p3",
}

var spaceAliases = map[string]Space{
	"rgb":        SRGB,
	"linearrgb":  LinearRGB,
	"linear-rgb": LinearRGB,
	"rgb-linear": LinearRGB,
	"linear":     LinearRGB,
	"xyz":        XYZ,
	"p3":         DisplayP3,
}

func (s Space) Valid() bool { return s >= 0 && s < numSpaces }

func (s Space) String() string {
	if s.Valid() {
		return spaceNames[s]
	}
	return fmt.Sprintf("Space(%d)", int(s))
}

// Polar reports whether the last channel of the space is a hue angle in
// degrees. For HSL and HWB it is the first channel.
func (s Space) Polar() bool {
	switch s {
	case Oklch, LCh, HSL, HWB:
		return true
	}
	return false
}

type family int

// Spaces in the same family convert into each other through a common hub:
// Oklab, gamma encoded sRGB, linear sRGB and XYZ respectively.
const (
	perceptualFamily family = iota
	encodedFamily
	linearFamily
	cieFamily
)

func (s Space) family() family {
	switch s {
	case Oklab, Oklch, LMS:
		return perceptualFamily
	case SRGB, HSL, HWB:
		return encodedFamily
	case LinearRGB:
		return linearFamily
	}
	return cieFamily
}

// ParseSpace returns the Space named by q. Matching is case insensitive and
// accepts a few common aliases.
func ParseSpace(q string) (Space, error) {
	key := strings.ToLower(strings.TrimSpace(q))
	for i, name := range spaceNames {
		if name == key {
			return Space(i), nil
		}
	}
	if s, ok := spaceAliases[key]; ok {
		return s, nil
	}
	return SRGB, fmt.Errorf("%w: %#v", ErrUnknownColorSpace, q)
}

func (s Space) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColorSpace, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Space) UnmarshalText(text []byte) (err error) {
	*s, err = ParseSpace(string(text))
	return
}
