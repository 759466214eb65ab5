package cli

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/voronoi/internal/colour"
	"github.com/jmylchreest/voronoi/internal/ppm"
	"github.com/jmylchreest/voronoi/internal/seed"
	"github.com/jmylchreest/voronoi/internal/voronoi"
)

// DefaultOutputPath is where the image is written when --output is not given.
const DefaultOutputPath = "output.ppm"

// renderOptions holds the root command flags.
type renderOptions struct {
	output       string
	width        int
	height       int
	seedCount    int
	markerRadius int
	markerColour colour.Color
	background   colour.Color
	seedMode     seed.Mode
	seedValue    int64
	points       []string
	preview      bool
	verbose      bool
}

func defaultRenderOptions() *renderOptions {
	cfg := voronoi.DefaultConfig()
	return &renderOptions{
		output:       DefaultOutputPath,
		width:        cfg.Width,
		height:       cfg.Height,
		seedCount:    cfg.SeedCount,
		markerRadius: cfg.MarkerRadius,
		markerColour: cfg.MarkerColor,
		background:   cfg.Background,
		seedMode:     seed.ModeRandom,
	}
}

func (o *renderOptions) registerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&o.output, "output", "o", o.output, "output file (.xz or .gz suffix compresses)")
	flags.IntVar(&o.width, "width", o.width, "image width in pixels")
	flags.IntVar(&o.height, "height", o.height, "image height in pixels")
	flags.IntVarP(&o.seedCount, "seeds", "n", o.seedCount, "number of random seeds")
	flags.IntVar(&o.markerRadius, "marker-radius", o.markerRadius, "radius of the seed markers (0 disables them)")
	flags.Var(newColourValue(o.markerColour, &o.markerColour), "marker-colour", "seed marker colour (#rrggbb)")
	flags.Var(newColourValue(o.background, &o.background), "background", "background colour (#rrggbb)")
	flags.Var(newSeedModeValue(o.seedMode, &o.seedMode), "seed-mode", "random source initialisation (random, manual)")
	flags.Int64Var(&o.seedValue, "seed-value", 0, "random source seed (implies --seed-mode manual)")
	flags.StringArrayVar(&o.points, "point", nil, "explicit seed as x,y (repeatable, replaces random seeds)")
	flags.BoolVar(&o.preview, "preview", false, "show the diagram and its seeds in the terminal")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "enable verbose output")
}

func (o *renderOptions) config() voronoi.Config {
	return voronoi.Config{
		Width:        o.width,
		Height:       o.height,
		SeedCount:    o.seedCount,
		MarkerRadius: o.markerRadius,
		MarkerColor:  o.markerColour,
		Background:   o.background,
	}
}

// seedConfig resolves the seed flags. Giving --seed-value alone selects
// manual mode; combining it with an explicit random mode is an error.
func (o *renderOptions) seedConfig(cmd *cobra.Command) (seed.Config, error) {
	flags := cmd.Flags()
	cfg := seed.Config{Mode: o.seedMode}
	if !flags.Changed("seed-value") {
		return cfg, nil
	}

	if !flags.Changed("seed-mode") {
		cfg.Mode = seed.ModeManual
	}
	if cfg.Mode == seed.ModeRandom {
		return cfg, fmt.Errorf("--seed-value cannot be used with --seed-mode %s", seed.ModeRandom)
	}
	value := o.seedValue
	cfg.Value = &value
	return cfg, nil
}

// runRender executes the render pipeline and writes the image.
func runRender(cmd *cobra.Command, o *renderOptions) error {
	logger := newLogger(o.verbose, cmd.ErrOrStderr())
	start := time.Now()

	cfg := o.config()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	res, err := o.render(cmd, cfg, logger)
	if err != nil {
		return err
	}

	if err := ppm.WriteFile(o.output, res.Buffer); err != nil {
		return err
	}
	logger.Debug("image written", "path", o.output, "elapsed", time.Since(start))

	out := cmd.OutOrStdout()
	if o.verbose {
		printSummary(out, o.output, res)
	}
	if o.preview {
		if err := showPreview(out, res.Buffer); err != nil {
			return fmt.Errorf("failed to show preview: %w", err)
		}
		printSeeds(out, res.Seeds)
	}
	return nil
}

func (o *renderOptions) render(cmd *cobra.Command, cfg voronoi.Config, logger hclog.Logger) (*voronoi.Result, error) {
	if len(o.points) > 0 {
		set, err := parsePoints(o.points, cfg.Width, cfg.Height)
		if err != nil {
			return nil, err
		}
		logger.Debug("using explicit seeds", "count", len(set))
		return voronoi.RenderSet(cfg, set, logger)
	}

	seedCfg, err := o.seedConfig(cmd)
	if err != nil {
		return nil, err
	}
	src, value, err := seed.FromConfig(seedCfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("random source ready", "mode", seedCfg.Mode, "seed", value)
	return voronoi.Render(cfg, src, logger)
}
