package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kovidgoyal/okcolor"
	"github.com/kovidgoyal/okcolor/swatch"
	"github.com/pelletier/go-toml/v2"
)

type SwatchConfig struct {
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
}

// Config holds the defaults that command line flags fall back to.
type Config struct {
	MixSpace  okcolor.Space `toml:"mix_space"`
	Steps     int           `toml:"steps"`
	Precision int           `toml:"precision"`
	NoColor   bool          `toml:"no_color"`
	Swatch    SwatchConfig  `toml:"swatch"`
}

func defaultConfig() Config {
	return Config{
		MixSpace:  okcolor.Oklab,
		Steps:     5,
		Precision: 6,
		Swatch:    SwatchConfig{CellWidth: swatch.DefaultCellWidth, CellHeight: swatch.DefaultCellHeight},
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "okcolor", "okcolor.toml")
}

func (c *Config) validate() error {
	if !c.MixSpace.Valid() {
		return fmt.Errorf("%w: %d", okcolor.ErrUnknownColorSpace, int(c.MixSpace))
	}
	if c.Steps < 1 {
		return fmt.Errorf("steps must be at least 1, not %d", c.Steps)
	}
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("precision must be between 0 and 17, not %d", c.Precision)
	}
	return nil
}

// parseConfig overlays the TOML in data onto the defaults.
func parseConfig(data []byte) (Config, error) {
	ans := defaultConfig()
	if err := toml.Unmarshal(data, &ans); err != nil {
		return ans, err
	}
	return ans, ans.validate()
}

// loadConfig reads the config file at path. A missing file is not an error
// unless the path was explicitly requested.
func loadConfig(path string, explicit bool) (Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return defaultConfig(), err
	}
	ans, err := parseConfig(data)
	if err != nil {
		return ans, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return ans, nil
}
