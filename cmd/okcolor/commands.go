package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/kovidgoyal/okcolor"
	"github.com/kovidgoyal/okcolor/convert"
	"github.com/kovidgoyal/okcolor/gamut"
	"github.com/kovidgoyal/okcolor/swatch"
	"github.com/spf13/cobra"
)

func (a *app) parseSpace(cmd *cobra.Command, flag string) (okcolor.Space, error) {
	if !cmd.Flags().Changed(flag) {
		return a.cfg.MixSpace, nil
	}
	q, _ := cmd.Flags().GetString(flag)
	return okcolor.ParseSpace(q)
}

func (a *app) convertCommand() *cobra.Command {
	var targets []string
	cmd := &cobra.Command{
		Use:   "convert color...",
		Short: "Print colors in other color spaces",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := parseColors(args)
			if err != nil {
				return err
			}
			spaces := make([]okcolor.Space, len(targets))
			for i, t := range targets {
				if spaces[i], err = okcolor.ParseSpace(t); err != nil {
					return err
				}
			}
			for i, c := range colors {
				a.out.color_line(c, args[i])
				converted := make([]okcolor.Color, len(spaces))
				for j, s := range spaces {
					converted[j] = c.To(s)
				}
				for _, x := range converted {
					a.out.println("  " + a.out.format(x))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&targets, "to", []string{"srgb", "oklab", "oklch"}, "the color spaces to convert to")
	return cmd
}

func (a *app) mixCommand() *cobra.Command {
	var weight float64
	cmd := &cobra.Command{
		Use:   "mix color1 color2",
		Short: "Mix two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := parseColors(args)
			if err != nil {
				return err
			}
			space, err := a.parseSpace(cmd, "space")
			if err != nil {
				return err
			}
			a.logger.Debug("mixing", "a", colors[0], "b", colors[1], "weight", weight, "space", space)
			ans, err := okcolor.Mix(colors[0], colors[1], weight, space)
			if err != nil {
				return err
			}
			a.out.color_line(ans, a.out.format(ans.To(okcolor.Oklch)))
			return nil
		},
	}
	cmd.Flags().Float64VarP(&weight, "weight", "w", 0.5, "the fraction of the second color in the mix")
	cmd.Flags().StringP("space", "s", "", "the color space to mix in, defaults to the configured mix space")
	return cmd
}

type adjustFlags struct {
	lightness, chroma, hue, alpha float64
	relative                      bool
}

func (f *adjustFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Float64VarP(&f.lightness, "lightness", "l", 0, "Oklch lightness")
	fs.Float64VarP(&f.chroma, "chroma", "c", 0, "Oklch chroma")
	fs.Float64Var(&f.hue, "hue", 0, "Oklch hue in degrees")
	fs.Float64VarP(&f.alpha, "alpha", "a", 0, "alpha")
	fs.BoolVarP(&f.relative, "relative", "r", false, "add the values to the current channels rather than replacing them")
}

func (f *adjustFlags) adjustment(cmd *cobra.Command) (ans okcolor.Adjustment) {
	if f.relative {
		ans.Mode = okcolor.Relative
	}
	set := func(name string, v float64) *float64 {
		if cmd.Flags().Changed(name) {
			return okcolor.Set(v)
		}
		return nil
	}
	ans.Lightness = set("lightness", f.lightness)
	ans.Chroma = set("chroma", f.chroma)
	ans.Hue = set("hue", f.hue)
	ans.Alpha = set("alpha", f.alpha)
	return
}

func (a *app) adjustCommand() *cobra.Command {
	var flags adjustFlags
	cmd := &cobra.Command{
		Use:   "adjust color...",
		Short: "Change the lightness, chroma, hue or alpha of colors in Oklch",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := parseColors(args)
			if err != nil {
				return err
			}
			adj := flags.adjustment(cmd)
			if adj.IsZero() {
				a.logger.Warn("no adjustments specified")
			}
			adjusted, err := okcolor.AdjustAll(colors, adj)
			if err != nil {
				return err
			}
			for _, c := range adjusted {
				a.out.color_line(c, a.out.format(c.To(okcolor.Oklch)))
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) contrastCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast color1 color2",
		Short: "Print the WCAG contrast ratio between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := parseColors(args)
			if err != nil {
				return err
			}
			for _, c := range colors {
				a.out.color_line(c, okcolor.LightOrDark(c).String(), fmt.Sprintf("luminance: %.4f", okcolor.Luminance(c)))
			}
			a.out.println(okcolor.ContrastRatio(colors[0], colors[1]))
			return nil
		},
	}
}

func (a *app) saveSwatch(colors []okcolor.Color, path string) error {
	img := swatch.Render(colors, a.cfg.Swatch.CellWidth, a.cfg.Swatch.CellHeight)
	if err := swatch.Save(img, path); err != nil {
		return err
	}
	a.logger.Info("saved swatch", "path", path, "colors", len(colors))
	return nil
}

func (a *app) scaleCommand() *cobra.Command {
	var steps int
	var out string
	cmd := &cobra.Command{
		Use:   "scale color1 color2",
		Short: "Print evenly spaced mixes from the first color to the second",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := parseColors(args)
			if err != nil {
				return err
			}
			space, err := a.parseSpace(cmd, "space")
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("steps") {
				steps = a.cfg.Steps
			}
			scale, err := okcolor.Scale(colors[0], colors[1], steps, space)
			if err != nil {
				return err
			}
			for _, c := range scale {
				a.out.color_line(c)
			}
			if out != "" {
				return a.saveSwatch(scale, out)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 5, "the number of colors in the scale")
	cmd.Flags().StringP("space", "s", "", "the color space to interpolate in, defaults to the configured mix space")
	cmd.Flags().StringVarP(&out, "out", "o", "", "also save the scale as an image to this file")
	return cmd
}

func (a *app) chromaTableCommand() *cobra.Command {
	var lstep, hstep float64
	cmd := &cobra.Command{
		Use:   "chroma-table",
		Short: "Print the maximum sRGB chroma for a grid of Oklch lightness and hue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lstep <= 0 || lstep >= 1 || hstep <= 0 || hstep > 360 {
				return fmt.Errorf("invalid step sizes: lightness: %v hue: %v", lstep, hstep)
			}
			var hues []float64
			for h := 0.0; h < 360; h += hstep {
				hues = append(hues, h)
			}
			header := strings.Builder{}
			header.WriteString("    L")
			for _, h := range hues {
				fmt.Fprintf(&header, " %6.0f", h)
			}
			a.out.println(header.String())
			for i := 1; float64(i)*lstep < 1; i++ {
				L := float64(i) * lstep
				a.out.printf("%5.2f", L)
				for _, h := range hues {
					a.out.printf(" %6.4f", gamut.MaxChroma(L, h))
				}
				a.out.println()
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&lstep, "step", 0.1, "the lightness step")
	cmd.Flags().Float64Var(&hstep, "hue-step", 30, "the hue step in degrees")
	return cmd
}

func (a *app) swatchCommand() *cobra.Command {
	var out string
	var frames int
	var delay time.Duration
	cmd := &cobra.Command{
		Use:   "swatch color...",
		Short: "Save colors as an image, optionally animated through all hues",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := parseColors(args)
			if err != nil {
				return err
			}
			if frames < 2 {
				return a.saveSwatch(colors, out)
			}
			anim := swatch.Animate(swatch.HueSweep(colors, frames), a.cfg.Swatch.CellWidth, a.cfg.Swatch.CellHeight, delay)
			if err = swatch.SaveAnimation(anim, out); err != nil {
				return err
			}
			a.logger.Info("saved animation", "path", out, "frames", frames)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "the file to save the image to")
	cmd.Flags().IntVar(&frames, "animate-hue", 0, "save an animation with this many frames rotating the hue")
	cmd.Flags().DurationVar(&delay, "delay", 50*time.Millisecond, "the delay between animation frames")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (a *app) imageCommand() *cobra.Command {
	var flags adjustFlags
	var mix string
	var weight float64
	var grayscale bool
	cmd := &cobra.Command{
		Use:   "image input output",
		Short: "Adjust, tint or desaturate every pixel of an image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := swatch.Open(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			if adj := flags.adjustment(cmd); !adj.IsZero() {
				if img, err = convert.AdjustImage(img, adj); err != nil {
					return err
				}
			}
			if mix != "" {
				with, err := parseColor(mix)
				if err != nil {
					return err
				}
				space, err := a.parseSpace(cmd, "space")
				if err != nil {
					return err
				}
				if img, err = convert.MixImage(img, with, weight, space); err != nil {
					return err
				}
			}
			if grayscale {
				if img, err = convert.GrayscaleImage(img); err != nil {
					return err
				}
			}
			a.logger.Debug("processed image", "type", fmt.Sprintf("%T", img), "size", img.Bounds().Size(), "took", time.Since(start))
			return swatch.Save(img, args[1])
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&mix, "mix", "m", "", "tint the image by mixing every pixel with this color")
	cmd.Flags().Float64VarP(&weight, "weight", "w", 0.2, "the fraction of the tint color in the mix")
	cmd.Flags().StringP("space", "s", "", "the color space to mix in, defaults to the configured mix space")
	cmd.Flags().BoolVar(&grayscale, "grayscale", false, "remove all chroma from the image")
	return cmd
}
