// Package preview prints images to a truecolour terminal.
package preview

import (
	"bufio"
	"fmt"
	"image"
	"io"

	xdraw "golang.org/x/image/draw"

	"github.com/jmylchreest/voronoi/internal/colour"
)

// DefaultColumns is used when the terminal width is unknown.
const DefaultColumns = 80

// Scale resizes img to fit within columns pixels horizontally, preserving the
// aspect ratio. The result always has an even height so it maps onto whole
// half-block cells. Images narrower than columns are not enlarged.
func Scale(img image.Image, columns int) *image.RGBA {
	if columns <= 0 {
		columns = DefaultColumns
	}

	src := img.Bounds()
	width := min(columns, src.Dx())
	height := max(src.Dy()*width/max(src.Dx(), 1), 1)
	if height%2 != 0 {
		height++
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, src, xdraw.Src, nil)
	return dst
}

// Write renders img at most columns cells wide. Each cell shows two pixels
// stacked vertically: the upper one as foreground, the lower as background.
func Write(w io.Writer, img image.Image, columns int) error {
	scaled := Scale(img, columns)
	bounds := scaled.Bounds()
	bw := bufio.NewWriter(w)

	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := colour.ToRGB(scaled.RGBAAt(x, y))
			bottom := colour.ToRGB(scaled.RGBAAt(x, y+1))
			if _, err := bw.WriteString(colour.HalfBlock(top, bottom)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, colour.Reset()); err != nil {
			return err
		}
	}

	return bw.Flush()
}
