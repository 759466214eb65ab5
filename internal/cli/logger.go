package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger returns a debug logger writing to w when verbose is set and a
// silent logger otherwise.
func newLogger(verbose bool, w io.Writer) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "voronoi",
			Output: w,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "voronoi",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}
