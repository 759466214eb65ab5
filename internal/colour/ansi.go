package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8

	// upperHalfBlock paints the top half of a cell in the foreground colour.
	upperHalfBlock = "▀"
)

// Foreground returns the truecolour escape sequence selecting c as foreground.
func Foreground(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}

// Background returns the truecolour escape sequence selecting c as background.
func Background(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

// Reset returns the escape sequence that clears colour attributes.
func Reset() string {
	return ansiReset
}

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return Background(c) + strings.Repeat(" ", width) + ansiReset
}

// HalfBlock returns one terminal cell showing two vertically stacked pixels.
func HalfBlock(top, bottom RGB) string {
	return Foreground(top) + Background(bottom) + upperHalfBlock
}
