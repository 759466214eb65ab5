package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/jmylchreest/voronoi/internal/colour"
)

func TestNew(t *testing.T) {
	b := New(4, 3)
	if b.Width != 4 || b.Height != 3 {
		t.Fatalf("New(4, 3) dimensions = %dx%d, want 4x3", b.Width, b.Height)
	}
	if len(b.Pixels) != 12 {
		t.Errorf("len(Pixels) = %d, want 12", len(b.Pixels))
	}
}

func TestFill(t *testing.T) {
	b := New(7, 5)
	b.Fill(colour.Green)

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if got := b.Pixel(x, y); got != colour.Green {
				t.Fatalf("Pixel(%d, %d) = %v, want %v", x, y, got, colour.Green)
			}
		}
	}

	once := append([]colour.Color(nil), b.Pixels...)
	b.Fill(colour.Green)
	for i := range once {
		if b.Pixels[i] != once[i] {
			t.Fatalf("second Fill changed pixel %d: %v != %v", i, b.Pixels[i], once[i])
		}
	}
}

func TestSetPixelRowMajor(t *testing.T) {
	b := New(3, 2)
	b.SetPixel(2, 1, colour.Red)

	if got := b.Pixels[1*3+2]; got != colour.Red {
		t.Errorf("Pixels[5] = %v, want %v", got, colour.Red)
	}
	if got := b.Row(1)[2]; got != colour.Red {
		t.Errorf("Row(1)[2] = %v, want %v", got, colour.Red)
	}
}

func TestImageInterface(t *testing.T) {
	b := New(2, 2)
	b.Fill(colour.Blue)

	var img image.Image = b
	if got := img.Bounds(); got != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v, want (0,0)-(2,2)", got)
	}

	want := color.RGBA{B: 0xFF, A: 0xFF}
	if got := img.At(1, 1); got != want {
		t.Errorf("At(1, 1) = %v, want %v", got, want)
	}
	if got := img.At(5, 5); got != (color.RGBA{}) {
		t.Errorf("At(5, 5) = %v, want zero colour", got)
	}
}
