package voronoi

import (
	"errors"

	"github.com/jmylchreest/voronoi/internal/colour"
	"github.com/jmylchreest/voronoi/internal/raster"
	"github.com/jmylchreest/voronoi/internal/seed"
)

// ErrNoSeeds is returned when classification is asked to run without seeds.
var ErrNoSeeds = errors.New("voronoi: seed set is empty")

// Nearest returns the index of the seed closest to (x, y) by squared distance.
// On a tie the lowest index wins. The set must not be empty.
func Nearest(set seed.Set, x, y int) int {
	best := 0
	bestDist := raster.SqrDist(x, y, int(set[0].X), int(set[0].Y))
	for j := 1; j < len(set); j++ {
		if d := raster.SqrDist(x, y, int(set[j].X), int(set[j].Y)); d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}

// Classify overwrites every pixel of buf with the colour of its nearest seed.
// Seed colours must already be derived.
func Classify(buf *raster.Buffer, set seed.Set) error {
	if len(set) == 0 {
		return ErrNoSeeds
	}

	for y := 0; y < buf.Height; y++ {
		row := buf.Row(y)
		for x := range row {
			row[x] = set[Nearest(set, x, y)].Color
		}
	}
	return nil
}

// RenderMarkers draws a filled disk of the given radius and colour on every
// seed. It runs after Classify so the markers stay visible.
func RenderMarkers(buf *raster.Buffer, set seed.Set, radius int, c colour.Color) {
	for _, s := range set {
		buf.FillCircle(s.Point, radius, c)
	}
}
