package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/voronoi/internal/colour"
	"github.com/jmylchreest/voronoi/internal/raster"
	"github.com/jmylchreest/voronoi/internal/seed"
)

var (
	_ pflag.Value = (*colourValue)(nil)
	_ pflag.Value = (*seedModeValue)(nil)
)

// colourValue is a flag holding a colour written as #rrggbb.
type colourValue colour.Color

func newColourValue(val colour.Color, p *colour.Color) *colourValue {
	*p = val
	return (*colourValue)(p)
}

func (c *colourValue) Set(s string) error {
	parsed, err := colour.ParseHex(s)
	if err != nil {
		return err
	}
	*c = colourValue(parsed)
	return nil
}

func (c *colourValue) String() string {
	return colour.Color(*c).RGB().Hex()
}

func (c *colourValue) Type() string {
	return "colour"
}

// seedModeValue is a flag restricted to the known seed modes.
type seedModeValue seed.Mode

func newSeedModeValue(val seed.Mode, p *seed.Mode) *seedModeValue {
	*p = val
	return (*seedModeValue)(p)
}

func (m *seedModeValue) Set(s string) error {
	mode, err := seed.ParseMode(s)
	if err != nil {
		return err
	}
	*m = seedModeValue(mode)
	return nil
}

func (m *seedModeValue) String() string {
	return string(*m)
}

func (m *seedModeValue) Type() string {
	return "mode"
}

// parsePoints converts "x,y" strings into seeds. Coordinates must lie
// strictly inside the image on both axes.
func parsePoints(values []string, width, height int) (seed.Set, error) {
	set := make(seed.Set, 0, len(values))
	for _, v := range values {
		xs, ys, ok := strings.Cut(v, ",")
		if !ok {
			return nil, fmt.Errorf("invalid point %q: expected x,y", v)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", v, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", v, err)
		}
		if x <= 0 || x >= width || y <= 0 || y >= height {
			return nil, fmt.Errorf("invalid point %q: must lie within (0,%d)x(0,%d)", v, width, height)
		}
		set = append(set, seed.Seed{Point: raster.Point{X: int16(x), Y: int16(y)}}) // #nosec G115 -- bounded by validated dimensions
	}
	return set, nil
}
