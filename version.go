/*
Package okcolor converts colors between device spaces (sRGB, linear RGB,
Display P3), the CIE spaces (XYZ, Lab, LCh, Luv) and the perceptual Oklab and
Oklch spaces, and mixes and adjusts colors in those spaces.

Every conversion that ends in sRGB from a wider space maps the color back into
the sRGB gamut, keeping hue constant and giving up as little lightness and
chroma as possible. All functions are pure and safe for concurrent use.
*/
package okcolor

import "fmt"

type VersionInfo struct {
	Major, Minor, Patch uint
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v VersionInfo) Equal(o VersionInfo) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v VersionInfo) After(o VersionInfo) bool {
	switch {
	case v.Major != o.Major:
		return v.Major > o.Major
	case v.Minor != o.Minor:
		return v.Minor > o.Minor
	}
	return v.Patch > o.Patch
}

func (v VersionInfo) Before(o VersionInfo) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = VersionInfo{1, 0, 0}
