package fanspeed

import (
	"fyne.io/fyne/v2/lang"
)

// Speed is one of the four fan speed settings. The zero value is Off.
type Speed int

const (
	Off Speed = iota
	Low
	Medium
	High
)

// NumSpeeds is the number of defined speed settings.
const NumSpeeds = 4

// Next returns the setting after s, wrapping High back around to Off.
func (s Speed) Next() Speed {
	return (s + 1) % NumSpeeds
}

func (s Speed) String() string {
	switch s {
	case Off:
		return "OFF"
	case Low:
		return "LOW"
	case Medium:
		return "MEDIUM"
	case High:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// LabelKey returns the translation key for s.
func (s Speed) LabelKey() string {
	switch s {
	case Off:
		return "fan.off"
	case Low:
		return "fan.low"
	case Medium:
		return "fan.medium"
	case High:
		return "fan.high"
	default:
		return "fan.unknown"
	}
}

// Label resolves the display string for s through the app translations,
// falling back to the builtin name when no translation is loaded.
func Label(s Speed) string {
	return lang.X(s.LabelKey(), s.String())
}
