// Package config loads boxshuffle settings from a TOML file.
//
// The default location is $XDG_CONFIG_HOME/boxshuffle/config.toml, falling
// back to ~/.config/boxshuffle/config.toml. A missing default file is not an
// error: [Load] returns [Default]. Keys left out of a file keep their
// default value.
//
//	count = 5
//	min_height = 40
//	max_height = 80
//	seed = 0            # 0 seeds from the clock
//	max_attempts = 100
//	handle_radius = 10.0
//	width_ratio = 0.66
//
//	[display]
//	max_width = 1280
//	max_height = 720
//
//	[stroke]
//	color = "#ff0000"
//	width = 2.0
//	fill = false
package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/boxshuffle/pkg/coords"
	apperr "github.com/matzehuels/boxshuffle/pkg/errors"
	"github.com/matzehuels/boxshuffle/pkg/geom"
	"github.com/matzehuels/boxshuffle/pkg/interact"
	"github.com/matzehuels/boxshuffle/pkg/layout"
	"github.com/matzehuels/boxshuffle/pkg/render"
	"github.com/matzehuels/boxshuffle/pkg/session"
)

const (
	appName  = "boxshuffle"
	fileName = "config.toml"
)

// Config holds every tunable setting.
type Config struct {
	Count        int     `toml:"count"`
	MinHeight    int     `toml:"min_height"`
	MaxHeight    int     `toml:"max_height"`
	Seed         uint64  `toml:"seed"`
	MaxAttempts  int     `toml:"max_attempts"`
	HandleRadius float64 `toml:"handle_radius"`
	WidthRatio   float64 `toml:"width_ratio"`
	Display      Display `toml:"display"`
	Stroke       Stroke  `toml:"stroke"`
}

// Display is the box the source image is fitted into for editing.
type Display struct {
	MaxWidth  int `toml:"max_width"`
	MaxHeight int `toml:"max_height"`
}

// Stroke is how rectangles are drawn.
type Stroke struct {
	Color string  `toml:"color"`
	Width float64 `toml:"width"`
	Fill  bool    `toml:"fill"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Count:        session.DefaultCount,
		MinHeight:    session.DefaultMinHeight,
		MaxHeight:    session.DefaultMaxHeight,
		MaxAttempts:  layout.DefaultMaxAttempts,
		HandleRadius: interact.DefaultHandleRadius,
		WidthRatio:   layout.DefaultWidthRatio,
		Display: Display{
			MaxWidth:  int(coords.DefaultMaxDisplay.Width),
			MaxHeight: int(coords.DefaultMaxDisplay.Height),
		},
		Stroke: Stroke{
			Color: render.DefaultColor,
			Width: render.DefaultStrokeWidth,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config at path. An empty path means [DefaultPath], in which
// case a missing file yields [Default]. An explicitly named file must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "config not found: %s", path)
		}
		return Config{}, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "open config %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode parses TOML from r on top of [Default] and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, apperr.New(apperr.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return apperr.Wrap(apperr.ErrCodeInternal, err, "encode config")
	}
	return nil
}

// Validate rejects values the engine cannot work with. Inverted bounds are
// allowed; see [layout.Bounds.Normalize].
func (c Config) Validate() error {
	switch {
	case c.Count < 0:
		return invalid("count must not be negative, got %d", c.Count)
	case c.MinHeight <= 0:
		return invalid("min_height must be positive, got %d", c.MinHeight)
	case c.MaxHeight <= 0:
		return invalid("max_height must be positive, got %d", c.MaxHeight)
	case c.MaxAttempts <= 0:
		return invalid("max_attempts must be positive, got %d", c.MaxAttempts)
	case c.HandleRadius <= 0:
		return invalid("handle_radius must be positive, got %g", c.HandleRadius)
	case c.WidthRatio <= 0:
		return invalid("width_ratio must be positive, got %g", c.WidthRatio)
	case c.Display.MaxWidth <= 0 || c.Display.MaxHeight <= 0:
		return invalid("display box must be positive, got %dx%d", c.Display.MaxWidth, c.Display.MaxHeight)
	}
	return c.Style().Validate()
}

func invalid(format string, args ...any) error {
	return apperr.New(apperr.ErrCodeInvalidConfig, format, args...)
}

// Bounds returns the configured size bounds.
func (c Config) Bounds() layout.Bounds {
	return layout.Bounds{MinHeight: c.MinHeight, MaxHeight: c.MaxHeight}
}

// MaxDisplay returns the display box as an extent.
func (c Config) MaxDisplay() geom.Extent {
	return geom.Extent{Width: float64(c.Display.MaxWidth), Height: float64(c.Display.MaxHeight)}
}

// Style returns the configured drawing style.
func (c Config) Style() render.Style {
	return render.Style{Color: c.Stroke.Color, Width: c.Stroke.Width, Fill: c.Stroke.Fill}
}

// GeneratorOptions returns the layout options for this configuration.
func (c Config) GeneratorOptions() []layout.Option {
	opts := []layout.Option{
		layout.WithMaxAttempts(c.MaxAttempts),
		layout.WithWidthRatio(c.WidthRatio),
	}
	if c.Seed != 0 {
		opts = append(opts, layout.WithSeed(c.Seed))
	}
	return opts
}

// NewSession builds a session wired with this configuration.
func (c Config) NewSession() *session.Session {
	return session.New(
		session.WithCount(c.Count),
		session.WithBounds(c.Bounds()),
		session.WithMaxDisplay(c.MaxDisplay()),
		session.WithGenerator(layout.New(c.GeneratorOptions()...)),
		session.WithMachine(interact.NewMachine(interact.WithHandleRadius(c.HandleRadius))),
	)
}
