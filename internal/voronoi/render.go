package voronoi

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/voronoi/internal/raster"
	"github.com/jmylchreest/voronoi/internal/seed"
)

// Result is a finished diagram and the seeds it was built from.
type Result struct {
	Buffer *raster.Buffer
	Seeds  seed.Set
}

// Render runs the whole pipeline: fill the background, place seeds, derive
// their colours, classify every pixel, then overlay the seed markers.
// A nil logger discards output.
func Render(cfg Config, src seed.Source, logger hclog.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	buf := raster.New(cfg.Width, cfg.Height)
	buf.Fill(cfg.Background)

	set := seed.Generate(src, cfg.SeedCount, cfg.Width, cfg.Height)
	set.DeriveColors()
	logger.Debug("seeds generated", "count", len(set))
	for i, s := range set {
		logger.Debug("seed", "index", i, "x", s.X, "y", s.Y, "colour", s.Color.String())
	}

	return renderSeeds(cfg, buf, set, logger)
}

// RenderSet renders a diagram for an explicit seed set. Seed colours are
// derived from their coordinates and cfg.SeedCount is ignored.
func RenderSet(cfg Config, set seed.Set, logger hclog.Logger) (*Result, error) {
	if len(set) == 0 {
		return nil, ErrNoSeeds
	}
	cfg.SeedCount = len(set)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	buf := raster.New(cfg.Width, cfg.Height)
	buf.Fill(cfg.Background)
	set.DeriveColors()

	return renderSeeds(cfg, buf, set, logger)
}

func renderSeeds(cfg Config, buf *raster.Buffer, set seed.Set, logger hclog.Logger) (*Result, error) {
	start := time.Now()
	if err := Classify(buf, set); err != nil {
		return nil, err
	}
	logger.Debug("pixels classified", "width", buf.Width, "height", buf.Height, "seeds", len(set), "elapsed", time.Since(start))

	RenderMarkers(buf, set, cfg.MarkerRadius, cfg.MarkerColor)
	logger.Debug("seed markers drawn", "radius", cfg.MarkerRadius)

	return &Result{Buffer: buf, Seeds: set}, nil
}
