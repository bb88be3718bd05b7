package okcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch(t *testing.T) {
	colors := make([]Color, 0, 1000)
	for i := range 1000 {
		x := float64(i) / 999
		colors = append(colors, OklchColor(x, 0.4*x, float64(i)))
	}
	converted, err := ConvertAll(colors, Oklab)
	require.NoError(t, err)
	require.Len(t, converted, len(colors))
	for i, c := range converted {
		require.Equal(t, colors[i].To(Oklab), c)
	}

	mapped, err := MapAll(colors)
	require.NoError(t, err)
	for i, c := range mapped {
		require.Equal(t, colors[i].To(SRGB), c)
	}

	adj := Adjustment{Mode: Relative, Hue: Set(90), Alpha: Set(-0.5)}
	adjusted, err := AdjustAll(colors, adj)
	require.NoError(t, err)
	for i, c := range adjusted {
		require.Equal(t, Adjust(colors[i], adj), c)
		require.Equal(t, 0.5, c.Alpha)
	}

	_, err = ConvertAll(colors, Space(-1))
	assert.ErrorIs(t, err, ErrUnknownColorSpace)

	empty, err := MapAll(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
