package okcolor

import (
	"fmt"

	"github.com/kovidgoyal/go-parallel"
)

func run(colors []Color, f func(Color) Color) (ans []Color, err error) {
	ans = make([]Color, len(colors))
	if len(colors) == 0 {
		return
	}
	if err = parallel.Run_in_parallel_over_range(0, func(start, limit int) {
		for i := start; i < limit; i++ {
			ans[i] = f(colors[i])
		}
	}, 0, len(colors)); err != nil {
		return nil, err
	}
	return
}

// ConvertAll converts every color to the specified space, in parallel.
func ConvertAll(colors []Color, to Space) ([]Color, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColorSpace, int(to))
	}
	return run(colors, func(c Color) Color { return c.To(to) })
}

// MapAll converts every color to gamut mapped sRGB, in parallel.
func MapAll(colors []Color) ([]Color, error) {
	return ConvertAll(colors, SRGB)
}

// AdjustAll applies adj to every color, in parallel.
func AdjustAll(colors []Color, adj Adjustment) ([]Color, error) {
	return run(colors, func(c Color) Color { return Adjust(c, adj) })
}
