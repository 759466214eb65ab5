// Package colour provides the packed pixel colour used by the renderer along
// with hex and ANSI helpers for presenting colours on a terminal.
package colour

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a packed 32-bit pixel. In memory order the channels are red,
// green, blue, alpha, which makes the numeric layout 0xAABBGGRR.
type Color uint32

// Fixed colours used by the renderer.
const (
	Red   Color = 0xFF0000FF
	Green Color = 0xFF00FF00
	Blue  Color = 0xFFFF0000
	Black Color = 0xFF000000
	White Color = 0xFFFFFFFF
)

// FromRGB packs an opaque colour from its 8-bit channels.
func FromRGB(r, g, b uint8) Color {
	return 0xFF000000 | Color(b)<<16 | Color(g)<<8 | Color(r)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 16) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// RGB drops the alpha channel.
func (c Color) RGB() RGB {
	return RGB{R: c.R(), G: c.G(), B: c.B()}
}

// RGBA converts the colour to an opaque color.RGBA. Alpha is ignored because
// the output format has no alpha channel.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xFF}
}

// String returns the packed value in hex, e.g. "0xff0000ff".
func (c Color) String() string {
	return fmt.Sprintf("0x%08x", uint32(c))
}

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ParseHex parses "#rrggbb" or "rrggbb" into an opaque Color.
func ParseHex(hex string) (Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("invalid hex colour %q: expected 6 hex digits", hex)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}

	return FromRGB(r, g, b), nil
}
