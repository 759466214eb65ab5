// Package ppm reads and writes the binary portable pixmap (P6) format.
package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jmylchreest/voronoi/internal/compression"
	"github.com/jmylchreest/voronoi/internal/raster"
)

const (
	// Magic is the format tag of binary RGB pixmaps.
	Magic = "P6"
	// MaxValue is the largest channel value written.
	MaxValue = 255
)

// WriteError reports that an image could not be written to Path.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("Cannot write into file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// newWriteError keeps only the system-level reason of a path error so the
// path is not repeated in the message.
func newWriteError(path string, err error) *WriteError {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &WriteError{Path: path, Err: err}
}

// Encode writes buf as a P6 image: the ASCII header followed by one RGB
// triple per pixel, row-major from the top-left corner. Alpha is dropped.
func Encode(w io.Writer, buf *raster.Buffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s\n%d %d %d\n", Magic, buf.Width, buf.Height, MaxValue); err != nil {
		return err
	}

	row := make([]byte, buf.Width*3)
	for y := 0; y < buf.Height; y++ {
		for x, c := range buf.Row(y) {
			row[3*x] = c.R()
			row[3*x+1] = c.G()
			row[3*x+2] = c.B()
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile creates or truncates path and encodes buf into it. A path ending
// in ".xz" or ".gz" is compressed accordingly. Any failure is returned as a
// *WriteError. A partially written regular file is removed; devices, pipes
// and other special files are left in place.
func WriteFile(path string, buf *raster.Buffer) error {
	f, err := os.Create(path) // #nosec G304 -- output path chosen by the user
	if err != nil {
		return newWriteError(path, err)
	}
	return writeAndClose(f, path, buf)
}

// writeAndClose encodes buf into f and closes it, removing path on failure
// when f is a regular file.
func writeAndClose(f *os.File, path string, buf *raster.Buffer) error {
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return newWriteError(path, err)
	}
	regular := info.Mode().IsRegular()

	if err := writeTo(f, path, buf); err != nil {
		_ = f.Close()
		discardPartial(path, regular)
		return newWriteError(path, err)
	}

	if err := f.Close(); err != nil {
		discardPartial(path, regular)
		return newWriteError(path, err)
	}
	return nil
}

func discardPartial(path string, regular bool) {
	if regular {
		_ = os.Remove(path)
	}
}

func writeTo(f *os.File, path string, buf *raster.Buffer) error {
	zw, err := compression.NewWriter(f, compression.Detect(path))
	if err != nil {
		return err
	}
	if err := Encode(zw, buf); err != nil {
		return err
	}
	return zw.Close()
}
