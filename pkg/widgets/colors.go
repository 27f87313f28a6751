package widgets

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor parses "#RRGGBB" (opaque) or "#AARRGGBB" strings as used
// in the preference store. Eight digit values are ARGB.
func ParseHexColor(s string) (color.Color, error) {
	s = strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	switch len(s) {
	case 6:
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
	case 8:
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(v >> 24)}, nil
	default:
		return nil, fmt.Errorf("invalid color %q: want 6 or 8 hex digits", s)
	}
}

// HexString formats c as "#AARRGGBB", the inverse of ParseHexColor.
func HexString(c color.Color) string {
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X%02X", uint8(a>>8), uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
