package raster

import "github.com/jmylchreest/voronoi/internal/colour"

// SqrDist returns the squared euclidean distance between two coordinates.
func SqrDist(x1, y1, x2, y2 int) int {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// FillCircle paints every pixel strictly closer than radius to center.
// Pixels on the boundary and everything outside the buffer are left untouched.
func (b *Buffer) FillCircle(center Point, radius int, c colour.Color) {
	if radius <= 0 {
		return
	}

	cx, cy := int(center.X), int(center.Y)

	// Scan window, clamped to the buffer on both sides.
	x0 := max(cx-radius, 0)
	y0 := max(cy-radius, 0)
	x1 := min(cx+radius, b.Width-1)
	y1 := min(cy+radius, b.Height-1)

	radiusSq := radius * radius
	for y := y0; y <= y1; y++ {
		row := b.Row(y)
		for x := x0; x <= x1; x++ {
			if SqrDist(x, y, cx, cy) < radiusSq {
				row[x] = c
			}
		}
	}
}
