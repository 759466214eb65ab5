package raster

import (
	"testing"

	"github.com/jmylchreest/voronoi/internal/colour"
)

func TestSqrDist(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           int
	}{
		{name: "same point", x1: 3, y1: 4, x2: 3, y2: 4, want: 0},
		{name: "3-4-5", x1: 0, y1: 0, x2: 3, y2: 4, want: 25},
		{name: "negative direction", x1: 10, y1: 10, x2: 7, y2: 6, want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SqrDist(tt.x1, tt.y1, tt.x2, tt.y2); got != tt.want {
				t.Errorf("SqrDist() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFillCircleContainment(t *testing.T) {
	tests := []struct {
		name   string
		center Point
		radius int
	}{
		{name: "interior", center: Point{X: 20, Y: 15}, radius: 5},
		{name: "near origin", center: Point{X: 2, Y: 1}, radius: 5},
		{name: "near right and bottom edge", center: Point{X: 38, Y: 29}, radius: 5},
		{name: "on the last pixel", center: Point{X: 39, Y: 29}, radius: 7},
		{name: "radius one", center: Point{X: 10, Y: 10}, radius: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(40, 30)
			b.Fill(colour.Black)
			b.FillCircle(tt.center, tt.radius, colour.White)

			cx, cy := int(tt.center.X), int(tt.center.Y)
			for y := 0; y < b.Height; y++ {
				for x := 0; x < b.Width; x++ {
					want := colour.Black
					if SqrDist(x, y, cx, cy) < tt.radius*tt.radius {
						want = colour.White
					}
					if got := b.Pixel(x, y); got != want {
						t.Fatalf("Pixel(%d, %d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestFillCircleBoundaryExcluded(t *testing.T) {
	b := New(20, 20)
	b.Fill(colour.Black)
	b.FillCircle(Point{X: 10, Y: 10}, 5, colour.White)

	for _, p := range [][2]int{{15, 10}, {5, 10}, {10, 15}, {10, 5}, {13, 14}} {
		if got := b.Pixel(p[0], p[1]); got != colour.Black {
			t.Errorf("boundary Pixel(%d, %d) = %v, want %v", p[0], p[1], got, colour.Black)
		}
	}
	if got := b.Pixel(14, 10); got != colour.White {
		t.Errorf("Pixel(14, 10) = %v, want %v", got, colour.White)
	}
}

func TestFillCircleOutsideBuffer(t *testing.T) {
	b := New(10, 10)
	b.Fill(colour.Black)

	// Entirely beyond the right/bottom edge: nothing drawn, no panic.
	b.FillCircle(Point{X: 100, Y: 100}, 5, colour.White)
	b.FillCircle(Point{X: 5, Y: 5}, 0, colour.White)
	b.FillCircle(Point{X: 5, Y: 5}, -3, colour.White)

	for i, c := range b.Pixels {
		if c != colour.Black {
			t.Fatalf("Pixels[%d] = %v, want %v", i, c, colour.Black)
		}
	}
}
