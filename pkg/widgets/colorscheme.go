package widgets

import "image/color"

// ColorScheme defines the type of color scale to use
type ColorScheme int

const (
	TraditionalScale ColorScheme = iota // Green to Red
	BlueYellowScale                     // Colorblind-friendly scale
)

// SpeedColors returns the low, medium and high fills for the scheme.
func (c ColorScheme) SpeedColors() (low, medium, high color.Color) {
	switch c {
	case BlueYellowScale:
		return color.RGBA{0x00, 0x6D, 0xDB, 0xFF},
			color.RGBA{0x92, 0x4F, 0xDB, 0xFF},
			color.RGBA{0xFF, 0xB6, 0x00, 0xFF}
	default:
		return color.RGBA{0x00, 0xFF, 0x00, 0xFF},
			color.RGBA{0xFF, 0xFF, 0x00, 0xFF},
			color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	}
}
