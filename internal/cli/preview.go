package cli

import (
	"fmt"
	"image"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/voronoi/internal/colour"
	"github.com/jmylchreest/voronoi/internal/ppm"
	"github.com/jmylchreest/voronoi/internal/preview"
	"github.com/jmylchreest/voronoi/internal/seed"
	"github.com/jmylchreest/voronoi/internal/voronoi"
)

var (
	// Console colours
	green = color.New(color.FgGreen, color.Bold)
	cyan  = color.New(color.FgCyan, color.Bold)
)

// newPreviewCmd represents the preview command
func newPreviewCmd() *cobra.Command {
	var columns int

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Show a PPM image in the terminal",
		Long: `Show a binary PPM (P6) image, optionally xz or gzip compressed, downscaled to
the terminal width using truecolour half-block characters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := ppm.ReadFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if columns <= 0 {
				columns = terminalColumns(out)
			}
			return preview.Write(out, buf, columns)
		},
	}

	cmd.Flags().IntVar(&columns, "columns", 0, "preview width in characters (default: terminal width)")
	return cmd
}

// showPreview writes img sized to the terminal behind w.
func showPreview(w io.Writer, img image.Image) error {
	return preview.Write(w, img, terminalColumns(w))
}

// terminalColumns returns the width of the terminal behind w, or the preview
// default when w is not a terminal.
func terminalColumns(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return preview.DefaultColumns
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return preview.DefaultColumns
	}
	return width
}

// printSummary reports what was written.
func printSummary(w io.Writer, path string, res *voronoi.Result) {
	green.Fprintf(w, "✓ Wrote %s ", path)
	fmt.Fprintf(w, "(%dx%d, %d seeds)\n", res.Buffer.Width, res.Buffer.Height, len(res.Seeds))
}

// printSeeds lists the seeds with a swatch of their region colour.
func printSeeds(w io.Writer, set seed.Set) {
	table := NewTable([]string{"Seed", "X", "Y", "Packed", "Colour"})
	for i, s := range set {
		table.AddRow([]string{
			strconv.Itoa(i),
			strconv.Itoa(int(s.X)),
			strconv.Itoa(int(s.Y)),
			s.Color.String(),
			s.Color.RGB().Hex(),
		})
	}

	lines := table.Lines()
	fmt.Fprintln(w)
	cyan.Fprintln(w, lines[0])
	fmt.Fprintln(w, lines[1])
	for i, line := range lines[2:] {
		fmt.Fprintf(w, "%s  %s\n", line, colour.ColourPreview(set[i].Color.RGB(), 4))
	}
}
