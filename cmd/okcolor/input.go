package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kovidgoyal/okcolor"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// parseColor accepts #rgb, #rrggbb and #rrggbbaa hex colors, 0xrrggbb
// numbers, SVG color names and space:c0,c1,c2[,alpha] tuples.
func parseColor(text string) (okcolor.Color, error) {
	q := strings.TrimSpace(text)
	lq := strings.ToLower(q)
	switch {
	case strings.HasPrefix(q, "#"):
		return parseHex(lq)
	case strings.HasPrefix(lq, "0x"):
		n, err := strconv.ParseUint(lq[2:], 16, 32)
		if err != nil {
			return okcolor.Color{}, fmt.Errorf("invalid hex number %#v: %w", text, err)
		}
		return okcolor.FromHexNumber(uint32(n))
	case strings.Contains(q, ":"):
		return parseTuple(q)
	}
	if c, ok := colornames.Map[lq]; ok {
		return okcolor.FromStdColor(c), nil
	}
	return okcolor.Color{}, fmt.Errorf("unknown color: %#v", text)
}

func parseHex(q string) (okcolor.Color, error) {
	alpha := 1.0
	switch len(q) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(q[7:], 16, 8)
		if err != nil {
			return okcolor.Color{}, fmt.Errorf("invalid alpha in hex color %#v: %w", q, err)
		}
		alpha = float64(a) / 255
		q = q[:7]
	default:
		return okcolor.Color{}, fmt.Errorf("invalid hex color %#v: must have 3, 6 or 8 digits", q)
	}
	c, err := colorful.Hex(q)
	if err != nil {
		return okcolor.Color{}, fmt.Errorf("invalid hex color %#v: %w", q, err)
	}
	return okcolor.New(okcolor.SRGB, c.R, c.G, c.B, alpha)
}

func parseTuple(q string) (okcolor.Color, error) {
	name, values, _ := strings.Cut(q, ":")
	space, err := okcolor.ParseSpace(name)
	if err != nil {
		return okcolor.Color{}, err
	}
	fields := strings.FieldsFunc(values, func(r rune) bool { return r == ',' || r == ' ' || r == '/' })
	channels := make([]float64, len(fields))
	for i, f := range fields {
		if channels[i], err = strconv.ParseFloat(f, 64); err != nil {
			return okcolor.Color{}, fmt.Errorf("%w: %#v in %#v", okcolor.ErrInvalidChannelType, f, q)
		}
	}
	return okcolor.New(space, channels...)
}

func parseColors(args []string) ([]okcolor.Color, error) {
	ans := make([]okcolor.Color, len(args))
	for i, a := range args {
		c, err := parseColor(a)
		if err != nil {
			return nil, err
		}
		ans[i] = c
	}
	return ans, nil
}
