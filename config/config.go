// Package config loads the display settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gioui.org/layout"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/Miuzarte/FpsDisplay/fps"
)

const EnvPrefix = "FPSDISPLAY_"

type Config struct {
	SampleSize int     `yaml:"sample_size" env:"SAMPLE_SIZE"`
	TextSize   float32 `yaml:"text_size" env:"TEXT_SIZE"`
	Position   string  `yaml:"position" env:"POSITION"`
	Padding    float32 `yaml:"padding" env:"PADDING"`

	ShowCPU     bool          `yaml:"show_cpu" env:"SHOW_CPU"`
	CPUInterval time.Duration `yaml:"cpu_interval" env:"CPU_INTERVAL"`

	WindowTitle string `yaml:"window_title" env:"WINDOW_TITLE"`
	Width       int    `yaml:"width" env:"WIDTH"`
	Height      int    `yaml:"height" env:"HEIGHT"`

	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
}

func Default() *Config {
	return &Config{
		SampleSize:  fps.DefaultSampleSize,
		TextSize:    24,
		Position:    "NE",
		Padding:     4,
		ShowCPU:     true,
		CPUInterval: time.Second,
		WindowTitle: "FpsDisplay",
		Width:       1280,
		Height:      720,
		LogLevel:    "info",
	}
}

var directions = map[string]layout.Direction{
	"NW":     layout.NW,
	"N":      layout.N,
	"NE":     layout.NE,
	"E":      layout.E,
	"SE":     layout.SE,
	"S":      layout.S,
	"SW":     layout.SW,
	"W":      layout.W,
	"CENTER": layout.Center,
}

// Direction maps Position to the corner the readout is anchored to.
func (c *Config) Direction() (layout.Direction, error) {
	d, ok := directions[strings.ToUpper(strings.TrimSpace(c.Position))]
	if !ok {
		return 0, fmt.Errorf("unknown position %q", c.Position)
	}
	return d, nil
}

func (c *Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(c.LogLevel))
}

// Validate resets out of range values to their defaults.
// Position and LogLevel cannot be guessed and are reported instead.
func (c *Config) Validate() error {
	def := Default()
	if c.SampleSize <= 0 {
		c.SampleSize = def.SampleSize
	}
	if c.TextSize <= 0 {
		c.TextSize = def.TextSize
	}
	if c.Padding < 0 {
		c.Padding = def.Padding
	}
	if c.CPUInterval < 100*time.Millisecond {
		c.CPUInterval = def.CPUInterval
	}
	if c.Width <= 0 || c.Height <= 0 {
		c.Width, c.Height = def.Width, def.Height
	}
	if c.WindowTitle == "" {
		c.WindowTitle = def.WindowTitle
	}

	var errs []error
	if _, err := c.Direction(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level: %w", err))
	}
	return errors.Join(errs...)
}

// Load reads path over the defaults, a missing file is not an error,
// then applies FPSDISPLAY_* environment variables.
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(b, c); err != nil {
				return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
			}
		}
	}

	err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
