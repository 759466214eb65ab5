package seed

import (
	"fmt"
	"math"

	"github.com/jmylchreest/voronoi/internal/colour"
	"github.com/jmylchreest/voronoi/internal/raster"
)

// Seed is a site of the diagram and the colour of its region.
type Seed struct {
	raster.Point
	Color colour.Color
}

// Set is an ordered collection of seeds. Order matters: on equal distances
// the seed with the lowest index owns the pixel.
type Set []Seed

// Generate places count seeds uniformly in [1, width) x [1, height).
// Coordinates are drawn from [0, dim) and a draw of 0 is redrawn, which keeps
// every generated point valid for PointToColor. Colours are left unset; call
// DeriveColors.
func Generate(src Source, count, width, height int) Set {
	set := make(Set, count)
	for i := range set {
		set[i].X = int16(nonZero(src, width))  // #nosec G115 -- dimensions are validated to fit int16
		set[i].Y = int16(nonZero(src, height)) // #nosec G115 -- dimensions are validated to fit int16
	}
	return set
}

// nonZero draws from [0, n) until the result is not 0. n must be at least 2.
func nonZero(src Source, n int) int {
	for {
		if v := src.Intn(n); v != 0 {
			return v
		}
	}
}

// PointToColor packs p into a colour: x fills the high 16 bits, y the low 16.
// Both coordinates must be in (0, 65535); anything else means the point was
// produced outside the seed domain and the call panics.
// The alpha byte of the result holds x's high byte and is not meaningful:
// only the red, green and blue channels of a seed colour are ever written.
func PointToColor(p raster.Point) colour.Color {
	if p.X <= 0 || int(p.X) >= math.MaxUint16 {
		panic(fmt.Sprintf("seed: x coordinate %d outside (0, %d)", p.X, math.MaxUint16))
	}
	if p.Y <= 0 || int(p.Y) >= math.MaxUint16 {
		panic(fmt.Sprintf("seed: y coordinate %d outside (0, %d)", p.Y, math.MaxUint16))
	}
	return colour.Color(0xFFFF0000&(uint32(p.X)<<16) | 0x0000FFFF&uint32(p.Y))
}

// DeriveColors sets each seed's colour from its coordinates.
func (s Set) DeriveColors() {
	for i := range s {
		s[i].Color = PointToColor(s[i].Point)
	}
}
