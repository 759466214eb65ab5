// Package compression wraps image streams in a compressor chosen by file
// extension.
package compression

import (
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// Format identifies a stream compression format.
type Format string

const (
	// FormatNone leaves the stream untouched.
	FormatNone Format = ""
	// FormatXz is xz (LZMA2), selected by a ".xz" suffix.
	FormatXz Format = "xz"
	// FormatGzip is gzip, selected by a ".gz" suffix.
	FormatGzip Format = "gzip"
)

// Detect returns the compression format implied by path's extension.
func Detect(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		return FormatXz
	case ".gz":
		return FormatGzip
	default:
		return FormatNone
	}
}

// NewWriter wraps w in the compressor for format. Closing the returned writer
// flushes the compressor but does not close w.
func NewWriter(w io.Writer, format Format) (io.WriteCloser, error) {
	switch format {
	case FormatNone:
		return nopWriteCloser{w}, nil
	case FormatXz:
		xzw, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return xzw, nil
	case FormatGzip:
		return gzip.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported compression format: %s", format)
	}
}

// NewReader wraps r in the decompressor for format.
func NewReader(r io.Reader, format Format) (io.Reader, error) {
	switch format {
	case FormatNone:
		return r, nil
	case FormatXz:
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return xzr, nil
	case FormatGzip:
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzr, nil
	default:
		return nil, fmt.Errorf("unsupported compression format: %s", format)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
