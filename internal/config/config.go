// Package config turns viper settings into a validated, typed Config.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matjam/dvdlogo/internal/types"
	"github.com/spf13/viper"
)

// Config is the resolved configuration of one run.
type Config struct {
	Title         string           `mapstructure:"title"`
	WindowWidth   int              `mapstructure:"window_width"`
	WindowHeight  int              `mapstructure:"window_height"`
	Logo          string           `mapstructure:"logo"`
	LogoWidth     int              `mapstructure:"logo_width"`
	LogoHeight    int              `mapstructure:"logo_height"`
	VelocityX     int              `mapstructure:"velocity_x"`
	VelocityY     int              `mapstructure:"velocity_y"`
	FrameRate     int              `mapstructure:"frame_rate"`
	Pacing        types.PacingMode `mapstructure:"pacing"`
	ColorOnBounce bool             `mapstructure:"color_on_bounce"`
	TintFade      float64          `mapstructure:"tint_fade"`
	Easing        types.EasingMode `mapstructure:"easing"`
	Background    string           `mapstructure:"background"`
	Backend       types.Backend    `mapstructure:"backend"`
	Seed          uint64           `mapstructure:"seed"`
	Ticks         uint64           `mapstructure:"ticks"`
	ControlSocket bool             `mapstructure:"control_socket"`
	Socket        string           `mapstructure:"socket"`
	LogFile       string           `mapstructure:"log_file"`
	Debug         bool             `mapstructure:"debug"`
}

// SetDefaults registers the default for every key. The defaults are the
// classic screensaver: an 800x600 window titled DVD, resources/logo.png
// moving 10px per tick on both axes at 60 ticks per second over white.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("title", "DVD")
	v.SetDefault("window_width", 800)
	v.SetDefault("window_height", 600)
	v.SetDefault("logo", "resources/logo.png")
	v.SetDefault("logo_width", 0)
	v.SetDefault("logo_height", 0)
	v.SetDefault("velocity_x", 10)
	v.SetDefault("velocity_y", 10)
	v.SetDefault("frame_rate", 60)
	v.SetDefault("pacing", string(types.PacingFixed))
	v.SetDefault("color_on_bounce", false)
	v.SetDefault("tint_fade", 0.0)
	v.SetDefault("easing", string(types.EasingLinear))
	v.SetDefault("background", "#ffffff")
	v.SetDefault("backend", string(types.BackendGLFW))
	v.SetDefault("seed", 0)
	v.SetDefault("ticks", 0)
	v.SetDefault("control_socket", false)
	v.SetDefault("socket", DefaultSocketPath())
	v.SetDefault("log_file", "")
	v.SetDefault("debug", false)
}

// DefaultSocketPath is the control socket in $XDG_RUNTIME_DIR, or in the
// temporary directory when that is not set.
func DefaultSocketPath() string {
	sockDir := os.Getenv("XDG_RUNTIME_DIR")
	if sockDir == "" {
		sockDir = os.TempDir()
	}
	return filepath.Join(sockDir, "dvdlogo.sock")
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var errs []error

	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight))
	}
	if c.LogoWidth < 0 || c.LogoHeight < 0 {
		errs = append(errs, fmt.Errorf("logo size %dx%d must not be negative", c.LogoWidth, c.LogoHeight))
	}
	if c.LogoWidth > c.WindowWidth || c.LogoHeight > c.WindowHeight {
		errs = append(errs, fmt.Errorf("logo size %dx%d does not fit in window %dx%d",
			c.LogoWidth, c.LogoHeight, c.WindowWidth, c.WindowHeight))
	}
	if c.Logo == "" {
		errs = append(errs, errors.New("logo path is empty"))
	}
	if c.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame_rate %d must be positive", c.FrameRate))
	}
	if c.TintFade < 0 {
		errs = append(errs, fmt.Errorf("tint_fade %v must not be negative", c.TintFade))
	}

	switch c.Pacing {
	case types.PacingFixed, types.PacingLimit, types.PacingNone:
	default:
		errs = append(errs, fmt.Errorf("unknown pacing %q", c.Pacing))
	}

	switch c.Easing {
	case types.EasingLinear, types.EasingEaseIn, types.EasingEaseOut, types.EasingEaseInOut:
	default:
		errs = append(errs, fmt.Errorf("unknown easing %q", c.Easing))
	}

	switch c.Backend {
	case types.BackendGLFW, types.BackendSDL:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}

	if _, err := c.BackgroundColor(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// BackgroundColor parses the hex background colour.
func (c Config) BackgroundColor() (color.RGBA, error) {
	col, err := colorful.Hex(c.Background)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid background %q: %w", c.Background, err)
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
