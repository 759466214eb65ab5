// Package cli provides the command-line interface for voronoi.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/voronoi/internal/version"
)

// NewRootCmd builds the command tree. The root command renders a diagram;
// with no flags it writes a 1080x720, ten seed image to output.ppm.
func NewRootCmd() *cobra.Command {
	opts := defaultRenderOptions()

	rootCmd := &cobra.Command{
		Use:   "voronoi",
		Short: "Render a discrete Voronoi diagram to a PPM image",
		Long: `voronoi scatters random seed points over a pixel grid, colours every pixel
after its nearest seed by squared euclidean distance, marks each seed with a
small disk and writes the result as a binary PPM (P6) image.

Examples:
  # Default 1080x720 diagram with 10 random seeds written to output.ppm
  voronoi

  # Reproducible diagram with a preview in the terminal
  voronoi --seed-value 42 --preview

  # Explicit seeds, compressed output
  voronoi --point 100,100 --point 400,300 -o diagram.ppm.xz`,
		Version:       version.Short(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	opts.registerFlags(rootCmd)

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newPreviewCmd())

	return rootCmd
}

// Run executes the command line and returns the process exit status.
// Failures are reported as a single "Error: ..." line on stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newVersionCmd represents the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
