// Package voronoi renders a discrete Voronoi diagram: every pixel takes the
// colour of its nearest seed and each seed is marked with a small disk.
package voronoi

import (
	"fmt"
	"math"

	"github.com/jmylchreest/voronoi/internal/colour"
)

// Default rendering parameters.
const (
	DefaultWidth        = 1080
	DefaultHeight       = 720
	DefaultSeedCount    = 10
	DefaultMarkerRadius = 5
	DefaultMarkerColor  = colour.White
	DefaultBackground   = colour.Black

	// MinDimension leaves room for a non-zero coordinate on each axis.
	MinDimension = 2
	// MaxDimension keeps every coordinate representable as int16.
	MaxDimension = math.MaxInt16
)

// Config holds the parameters of one render.
type Config struct {
	Width        int
	Height       int
	SeedCount    int
	MarkerRadius int
	MarkerColor  colour.Color
	Background   colour.Color
}

// DefaultConfig returns the stock 1080x720, ten seed configuration.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		SeedCount:    DefaultSeedCount,
		MarkerRadius: DefaultMarkerRadius,
		MarkerColor:  DefaultMarkerColor,
		Background:   DefaultBackground,
	}
}

// Validate checks that the configuration can be rendered.
func (c Config) Validate() error {
	if c.Width < MinDimension || c.Width > MaxDimension {
		return fmt.Errorf("width %d out of range [%d, %d]", c.Width, MinDimension, MaxDimension)
	}
	if c.Height < MinDimension || c.Height > MaxDimension {
		return fmt.Errorf("height %d out of range [%d, %d]", c.Height, MinDimension, MaxDimension)
	}
	if c.SeedCount < 1 {
		return fmt.Errorf("seed count must be at least 1, got %d", c.SeedCount)
	}
	if c.MarkerRadius < 0 {
		return fmt.Errorf("marker radius cannot be negative, got %d", c.MarkerRadius)
	}
	return nil
}
