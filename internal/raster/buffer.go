// Package raster provides the in-memory pixel buffer and the primitives that
// draw into it.
package raster

import (
	"image"
	"image/color"

	"github.com/jmylchreest/voronoi/internal/colour"
)

// Point is a pixel coordinate.
type Point struct {
	X, Y int16
}

// Buffer is a fixed-size grid of packed colours stored row-major, top row first.
type Buffer struct {
	Width  int
	Height int
	Pixels []colour.Color
}

// New makes a zeroed buffer of the given dimensions.
func New(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pixels: make([]colour.Color, width*height),
	}
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c colour.Color) {
	for i := range b.Pixels {
		b.Pixels[i] = c
	}
}

// Pixel returns the colour at (x, y). The coordinate must be inside the buffer.
func (b *Buffer) Pixel(x, y int) colour.Color {
	return b.Pixels[y*b.Width+x]
}

// SetPixel sets the colour at (x, y). The coordinate must be inside the buffer.
func (b *Buffer) SetPixel(x, y int, c colour.Color) {
	b.Pixels[y*b.Width+x] = c
}

// Row returns the pixels of row y, sharing storage with the buffer.
func (b *Buffer) Row(y int) []colour.Color {
	return b.Pixels[y*b.Width : (y+1)*b.Width]
}

// Contains reports whether (x, y) lies inside the buffer.
func (b *Buffer) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements image.Image. Alpha is reported as opaque.
func (b *Buffer) At(x, y int) color.Color {
	if !b.Contains(x, y) {
		return color.RGBA{}
	}
	return b.Pixel(x, y).RGBA()
}
