// Package config provides YAML-based configuration loading for the
// rasterizer and its front-ends.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-raster/internal/core"
	"github.com/vovakirdan/tui-raster/internal/draw"
	"github.com/vovakirdan/tui-raster/internal/raster"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains the full application configuration.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Request    RequestConfig    `yaml:"request"`
	Algorithms AlgorithmsConfig `yaml:"algorithms"`
	Render     RenderConfig     `yaml:"render"`
	Storage    StorageConfig    `yaml:"storage"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
}

// GridConfig defines the grid the application starts with.
type GridConfig struct {
	Size int `yaml:"size"`
}

// RequestConfig defines the initial contents of the request form.
type RequestConfig struct {
	Mode   string `yaml:"mode"`
	X0     int    `yaml:"x0"`
	Y0     int    `yaml:"y0"`
	X1     int    `yaml:"x1"`
	Y1     int    `yaml:"y1"`
	Radius int    `yaml:"radius"`
}

// AlgorithmsConfig tunes the floating-point rasterizers.
type AlgorithmsConfig struct {
	LinearOversample int `yaml:"linear_oversample"`
	DDAOversample    int `yaml:"dda_oversample"`
}

// RenderConfig controls how grids are drawn.
type RenderConfig struct {
	Theme      string `yaml:"theme"`       // "default", "neon", "pastel" or "mono"
	CellPixels int    `yaml:"cell_pixels"` // Side of one cell in PNG snapshots
	Marked     string `yaml:"marked"`      // Glyph for a marked cell
	Empty      string `yaml:"empty"`       // Glyph for an unmarked cell
}

// StorageConfig locates the history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig configures the SSH front-end.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig sets the log level ("debug", "info", "warn", "error").
type LogConfig struct {
	Level string `yaml:"level"`
}

// Themes lists the accepted render.theme values.
func Themes() []string {
	return []string{"default", "neon", "pastel", "mono"}
}

// Options returns the rasterizer options described by the config.
func (c Config) Options() raster.Options {
	return raster.Options{
		LinearOversample: c.Algorithms.LinearOversample,
		DDAOversample:    c.Algorithms.DDAOversample,
	}
}

// InitialRequest returns the request described by the grid and request
// sections. It is not validated.
func (c Config) InitialRequest() draw.Request {
	mode, err := draw.ParseMode(c.Request.Mode)
	if err != nil {
		mode = draw.ModeAll
	}
	return draw.Request{
		Mode:     mode,
		GridSize: c.Grid.Size,
		From:     core.P(c.Request.X0, c.Request.Y0),
		To:       core.P(c.Request.X1, c.Request.Y1),
		Radius:   c.Request.Radius,
	}
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeoutMinutes) * time.Minute
}

// Validate checks the config for values the application cannot run with.
func (c Config) Validate() error {
	if c.Grid.Size <= 0 || c.Grid.Size > draw.MaxGridSize {
		return fmt.Errorf("%w: grid.size must be in [1, %d], got %d", ErrInvalidConfig, draw.MaxGridSize, c.Grid.Size)
	}
	if c.Algorithms.LinearOversample <= 0 || c.Algorithms.DDAOversample <= 0 {
		return fmt.Errorf("%w: oversampling factors must be positive", ErrInvalidConfig)
	}
	if _, err := draw.ParseMode(c.Request.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.InitialRequest().Validate(); err != nil {
		return fmt.Errorf("%w: request: %v", ErrInvalidConfig, err)
	}

	known := false
	for _, t := range Themes() {
		if c.Render.Theme == t {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, c.Render.Theme)
	}
	if c.Render.CellPixels <= 0 {
		return fmt.Errorf("%w: render.cell_pixels must be positive", ErrInvalidConfig)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("%w: server.idle_timeout_minutes must not be negative", ErrInvalidConfig)
	}
	return nil
}
