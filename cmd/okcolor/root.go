package main

import (
	"log/slog"

	"github.com/kovidgoyal/okcolor"
	"github.com/spf13/cobra"
)

type app struct {
	cfg    Config
	logger *slog.Logger
	out    *printer

	configPath                  string
	verbose, veryVerbose, quiet bool
	noColor                     bool
	precision                   int
}

func (a *app) setup(cmd *cobra.Command) (err error) {
	a.logger = newLogger(cmd.ErrOrStderr(), levelFromFlags(a.veryVerbose, a.verbose, a.quiet))
	path, explicit := a.configPath, a.configPath != ""
	if !explicit {
		path = defaultConfigPath()
	}
	if a.cfg, err = loadConfig(path, explicit); err != nil {
		return err
	}
	a.logger.Debug("loaded config", "path", path, "mix_space", a.cfg.MixSpace, "steps", a.cfg.Steps)
	if cmd.Flags().Changed("precision") {
		a.cfg.Precision = a.precision
		if err = a.cfg.validate(); err != nil {
			return err
		}
	}
	if a.noColor {
		a.cfg.NoColor = true
	}
	a.out = newPrinter(cmd.OutOrStdout(), !a.cfg.NoColor, a.cfg.Precision)
	return nil
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "okcolor",
		Short:         "Convert, mix and adjust colors in perceptual color spaces",
		Version:       okcolor.Version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to the TOML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log informational messages")
	pf.BoolVar(&a.veryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "log only errors")
	pf.BoolVar(&a.noColor, "no-color", false, "do not draw color swatches in the terminal")
	pf.IntVar(&a.precision, "precision", 6, "number of decimal places when printing channels")

	root.AddCommand(
		a.convertCommand(),
		a.mixCommand(),
		a.adjustCommand(),
		a.contrastCommand(),
		a.scaleCommand(),
		a.chromaTableCommand(),
		a.swatchCommand(),
		a.imageCommand(),
	)
	return root
}
