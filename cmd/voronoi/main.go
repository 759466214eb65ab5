// voronoi - discrete Voronoi diagram renderer
//
// voronoi scatters seed points over a fixed pixel grid, paints every pixel
// with the colour of its nearest seed and writes the result as a PPM image.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/voronoi/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
