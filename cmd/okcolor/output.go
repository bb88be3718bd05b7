package main

import (
	"fmt"
	"io"

	"github.com/kovidgoyal/okcolor"
	"github.com/muesli/termenv"
)

type printer struct {
	w         io.Writer
	term      *termenv.Output
	color     bool
	precision int
}

func newPrinter(w io.Writer, color bool, precision int) *printer {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &printer{w: w, term: termenv.NewOutput(w, opts...), color: color, precision: precision}
}

// swatch returns a block of the color's background for the terminal.
func (p *printer) swatch(c okcolor.Color) string {
	if !p.color {
		return ""
	}
	hex := c.Hex()[:7]
	return p.term.String("    ").Background(p.term.Color(hex)).String() + " "
}

func (p *printer) color_line(c okcolor.Color, extra ...string) {
	fmt.Fprint(p.w, p.swatch(c), c.Hex())
	for _, x := range extra {
		fmt.Fprint(p.w, "  ", x)
	}
	fmt.Fprintln(p.w)
}

func (p *printer) format(c okcolor.Color) string {
	return c.Format(p.precision)
}

func (p *printer) println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

func (p *printer) printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}
