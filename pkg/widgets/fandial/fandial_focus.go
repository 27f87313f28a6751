package fandial

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

var _ fyne.Tappable = (*Dial)(nil)
var _ fyne.Focusable = (*Dial)(nil)

func (d *Dial) Tapped(_ *fyne.PointEvent) {
	if a := fyne.CurrentApp(); a != nil {
		if c := a.Driver().CanvasForObject(d); c != nil {
			c.Focus(d)
		}
	}
	d.applySpeed(d.speed.Next())
}

func (d *Dial) TappedSecondary(_ *fyne.PointEvent) {
}

func (d *Dial) FocusGained() {
	d.focused = true
}

func (d *Dial) FocusLost() {
	d.focused = false
}

func (d *Dial) Focused() bool {
	return d.focused
}

func (d *Dial) TypedRune(_ rune) {
}

func (d *Dial) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeySpace, fyne.KeyEnter, fyne.KeyReturn:
		d.applySpeed(d.speed.Next())
	}
}

func (d *Dial) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}
