package okcolor

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, err := New(Oklch, 0.5, 0.1, 30)
	require.NoError(t, err)
	assert.Equal(t, [4]float64{0.5, 0.1, 30, 1}, c.Tuple())
	assert.Equal(t, Oklch, c.Space)

	c, err = New(SRGB, 1.5, -0.5, 0.5, 2)
	require.NoError(t, err)
	assert.Equal(t, [4]float64{1, 0, 0.5, 1}, c.Tuple())

	c, err = New(HSL, 400, 1.2, -1, 0.5)
	require.NoError(t, err)
	assert.Equal(t, [4]float64{400, 1, 0, 0.5}, c.Tuple())

	c, err = New(Oklab, 1.2, -0.5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, [4]float64{1.2, -0.5, 0.5, 1}, c.Tuple(), "unbounded channels are not clamped")

	for _, tc := range []struct {
		space    Space
		channels []float64
		err      error
	}{
		{SRGB, []float64{1, 0}, ErrInvalidDimension},
		{SRGB, []float64{1, 0, 0, 1, 1}, ErrInvalidDimension},
		{SRGB, nil, ErrInvalidDimension},
		{Oklab, []float64{math.NaN(), 0, 0}, ErrInvalidChannelType},
		{Oklab, []float64{0, math.Inf(-1), 0}, ErrInvalidChannelType},
		{Oklab, []float64{0, 0, 0, math.Inf(1)}, ErrInvalidChannelType},
		{Space(99), []float64{0, 0, 0}, ErrUnknownColorSpace},
	} {
		_, err := New(tc.space, tc.channels...)
		require.Truef(t, errors.Is(err, tc.err), "New(%v, %v) returned: %v", tc.space, tc.channels, err)
	}
}

func TestParseSpace(t *testing.T) {
	for i := range numSpaces {
		s, err := ParseSpace(Space(i).String())
		require.NoError(t, err)
		require.Equal(t, Space(i), s)
	}
	for q, expected := range map[string]Space{
		"sRGB": SRGB, "rgb": SRGB, " OKLCH ": Oklch, "linearRGB": LinearRGB, "linear-rgb": LinearRGB,
		"rgb-linear": LinearRGB, "xyz": XYZ, "p3": DisplayP3, "display-p3": DisplayP3,
	} {
		s, err := ParseSpace(q)
		require.NoError(t, err, q)
		assert.Equal(t, expected, s, q)
	}
	_, err := ParseSpace("cmyk")
	assert.ErrorIs(t, err, ErrUnknownColorSpace)
	assert.Equal(t, "Space(42)", Space(42).String())

	var s Space
	require.NoError(t, s.UnmarshalText([]byte("oklab")))
	assert.Equal(t, Oklab, s)
	b, err := Oklch.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "oklch", string(b))
	_, err = Space(-1).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownColorSpace)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "srgb(1 0 0.5)", RGB(1, 0, 0.5).String())
	assert.Equal(t, "srgb(1 0 0 / 0.5)", RGBA(1, 0, 0, 0.5).String())
	assert.Equal(t, "oklch(0.628 0.258 29.234)", OklchColor(0.627955, 0.257683, 29.233885).Format(3))
	assert.Equal(t, "oklab(0 0 0)", OklabColor(0, math.Copysign(0, -1), -1e-9).String())
	assert.Equal(t, "lab(54 81 70)", Of(Lab, 54.29, 80.8, 69.89).Format(0))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff0000", RGB(1, 0, 0).Hex())
	assert.Equal(t, "#ff000080", RGBA(1, 0, 0, 0.5).Hex())
	assert.Equal(t, "#ffffff", RGB(1.2, 1, 1).Hex(), "out of range channels are clamped")
	assert.Equal(t, uint32(0xff8000), RGB(1, 0.5, 0).HexNumber())

	c, err := FromHexNumber(0x336699)
	require.NoError(t, err)
	assert.Equal(t, "#336699", c.Hex())
	assert.Equal(t, uint32(0x336699), c.HexNumber())
	assert.InDelta(t, 0x33/255., c.V[0], 1e-12)
	_, err = FromHexNumber(0x1000000)
	assert.ErrorIs(t, err, ErrInvalidChannelType)
}

func TestStdColorInterop(t *testing.T) {
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, RGB(1, 0, 0).NRGBA())
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, color.NRGBAModel.Convert(RGB(1, 0, 0)))
	assert.Equal(t, color.NRGBA{0, 0, 0, 0}, color.NRGBAModel.Convert(RGBA(1, 0, 0, 0)))
	// out of gamut colors are mapped before quantizing
	assert.Equal(t, "#00be58", OklchColor(0.7, 0.4, 150).Hex())

	c := FromStdColor(color.NRGBA{255, 0, 0, 128})
	assert.Equal(t, SRGB, c.Space)
	assert.InDelta(t, 1, c.V[0], 1e-12)
	assert.InDelta(t, 128./255, c.Alpha, 1e-12)
	c = FromStdColor(color.RGBA{128, 0, 0, 128})
	assert.InDelta(t, 1, c.V[0], 1e-12, "premultiplied colors are converted")
	ok := OklchColor(0.5, 0.1, 20)
	assert.Equal(t, ok, FromStdColor(ok))
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "1.0.0", Version.String())
	assert.True(t, Version.After(VersionInfo{0, 9, 9}))
	assert.True(t, Version.Before(VersionInfo{1, 0, 1}))
	assert.True(t, Version.Equal(VersionInfo{1, 0, 0}))
	assert.False(t, Version.After(Version))
}
