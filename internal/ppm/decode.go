package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/jmylchreest/voronoi/internal/colour"
	"github.com/jmylchreest/voronoi/internal/compression"
	"github.com/jmylchreest/voronoi/internal/raster"
)

// ErrFormat indicates the input is not a P6 image this package can decode.
var ErrFormat = errors.New("ppm: invalid format")

const (
	// maxDimension bounds decoded images to what the renderer can produce.
	maxDimension = math.MaxInt16
	// initialPixelCap is the most pixels reserved before any data is read.
	initialPixelCap = 1 << 16
)

// Decode reads a P6 image with a maximum channel value of 255.
// Header comments are skipped.
func Decode(r io.Reader) (*raster.Buffer, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, fmt.Errorf("%w: magic %q, want %q", ErrFormat, magic, Magic)
	}

	var header [3]int
	for i, name := range []string{"width", "height", "maxval"} {
		tok, err := readToken(br)
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q is not a number", ErrFormat, name, tok)
		}
		header[i] = v
	}

	width, height, maxval := header[0], header[1], header[2]
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return nil, fmt.Errorf("%w: unsupported dimensions %dx%d", ErrFormat, width, height)
	}
	if maxval != MaxValue {
		return nil, fmt.Errorf("%w: maxval %d, want %d", ErrFormat, maxval, MaxValue)
	}

	// readToken consumed the single whitespace byte ending the header.
	// Pixels grow with the data actually read so a lying header cannot force
	// a large allocation up front.
	pixels := make([]colour.Color, 0, min(width*height, initialPixelCap))
	row := make([]byte, width*3)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, fmt.Errorf("%w: pixel data truncated at row %d: %v", ErrFormat, y, err)
		}
		for x := 0; x < width; x++ {
			pixels = append(pixels, colour.FromRGB(row[3*x], row[3*x+1], row[3*x+2]))
		}
	}

	return &raster.Buffer{Width: width, Height: height, Pixels: pixels}, nil
}

// ReadFile decodes the image at path, decompressing ".xz" and ".gz" files.
func ReadFile(path string) (*raster.Buffer, error) {
	f, err := os.Open(path) // #nosec G304 -- user-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer f.Close()

	r, err := compression.NewReader(f, compression.Detect(path))
	if err != nil {
		return nil, err
	}

	buf, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return buf, nil
}

// readToken returns the next whitespace-delimited header token, skipping
// comments, and consumes the single whitespace byte that terminates it.
func readToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w: header truncated", ErrFormat)
			}
			return "", err
		}

		switch {
		case b == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("%w: header truncated", ErrFormat)
			}
		case isSpace(b):
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
