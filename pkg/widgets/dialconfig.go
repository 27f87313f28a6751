package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"

	"github.com/Tarek-Bohdima/CustomFanController/pkg/fanspeed"
)

// DialConfig carries the construction time settings for a fan dial.
// The three colors are read once when the widget is built and never
// change afterwards; a nil color falls back to transparent.
type DialConfig struct {
	LowColor    color.Color
	MediumColor color.Color
	HighColor   color.Color
	MinSize     fyne.Size
	OnChanged   func(fanspeed.Speed)
}

// SpeedColor returns the configured fill for speed. Off always maps to
// nil so the widget can substitute its fixed neutral color.
func (c *DialConfig) SpeedColor(speed fanspeed.Speed) color.Color {
	switch speed {
	case fanspeed.Low:
		return c.LowColor
	case fanspeed.Medium:
		return c.MediumColor
	case fanspeed.High:
		return c.HighColor
	default:
		return nil
	}
}
