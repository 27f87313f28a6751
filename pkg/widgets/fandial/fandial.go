package fandial

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/colornames"

	"github.com/Tarek-Bohdima/CustomFanController/pkg/common"
	"github.com/Tarek-Bohdima/CustomFanController/pkg/debug"
	"github.com/Tarek-Bohdima/CustomFanController/pkg/fanspeed"
	"github.com/Tarek-Bohdima/CustomFanController/pkg/widgets"
)

const (
	// fraction of the widget's smaller dimension used for the dial face
	radiusScale = 0.8
	// indicator dot sits inside the rim, labels outside it
	indicatorOffset = -35
	labelOffset     = 30

	labelTextSize = 18
)

// Dial is a circular fan speed selector. Tapping it (or pressing
// space/enter while focused) advances the speed one step, wrapping from
// HIGH back to OFF.
type Dial struct {
	widget.BaseWidget

	cfg *widgets.DialConfig

	speed       fanspeed.Speed
	description string

	face      *canvas.Circle
	indicator *canvas.Circle
	labels    [fanspeed.NumSpeeds]*canvas.Text

	size    fyne.Size
	minsize fyne.Size
	radius  float32

	focused bool
}

func New(cfg *widgets.DialConfig) *Dial {
	d := &Dial{
		cfg:     cfg,
		minsize: fyne.NewSize(100, 100),
	}
	d.ExtendBaseWidget(d)

	if cfg.MinSize.Width > 0 && cfg.MinSize.Height > 0 {
		d.minsize = cfg.MinSize
	}

	d.face = &canvas.Circle{FillColor: d.fillColor(), StrokeColor: color.RGBA{0x80, 0x80, 0x80, 0xFF}, StrokeWidth: 3}
	d.indicator = &canvas.Circle{FillColor: colornames.Black}

	for s := fanspeed.Off; s < fanspeed.NumSpeeds; s++ {
		txt := &canvas.Text{Text: fanspeed.Label(s), Color: color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}, TextSize: labelTextSize}
		txt.TextStyle.Monospace = true
		txt.TextStyle.Bold = true
		txt.Alignment = fyne.TextAlignCenter
		d.labels[s] = txt
	}

	d.description = fanspeed.Label(d.speed)

	return d
}

func (d *Dial) GetConfig() *widgets.DialConfig { return d.cfg }

// Speed returns the currently selected fan speed.
func (d *Dial) Speed() fanspeed.Speed { return d.speed }

// Description returns the resolved label of the current speed, suitable
// for screen reader style announcements.
func (d *Dial) Description() string { return d.description }

// SetSpeed selects speed directly, bypassing the cyclic transition.
func (d *Dial) SetSpeed(speed fanspeed.Speed) {
	if speed < fanspeed.Off || speed >= fanspeed.NumSpeeds {
		return
	}
	if speed == d.speed {
		return
	}
	d.applySpeed(speed)
}

// PositionFor places speed's marker on a circle of the given radius
// centered in a width x height area. OFF sits in the lower left and each
// following speed is another eighth turn clockwise.
func PositionFor(speed fanspeed.Speed, radius float64, width, height float32) fyne.Position {
	sin, cos := math.Sincos(common.Pi98 + float64(speed)*common.PiFourth)
	return fyne.NewPos(
		float32(radius*cos)+width*common.OneHalf,
		float32(radius*sin)+height*common.OneHalf,
	)
}

func (d *Dial) applySpeed(speed fanspeed.Speed) {
	d.speed = speed
	d.description = fanspeed.Label(speed)
	d.face.FillColor = d.fillColor()
	d.moveIndicator()

	debug.Log("fan speed " + d.description)
	if f := d.cfg.OnChanged; f != nil {
		f(speed)
	}

	canvas.Refresh(d.face)
	canvas.Refresh(d.indicator)
}

func (d *Dial) fillColor() color.Color {
	if c := d.cfg.SpeedColor(d.speed); c != nil {
		return c
	}
	if d.speed == fanspeed.Off {
		return colornames.Gray
	}
	return color.Transparent
}

func (d *Dial) moveIndicator() {
	dot := d.radius * common.OneTwelfth
	pos := PositionFor(d.speed, float64(d.radius)+indicatorOffset, d.size.Width, d.size.Height)
	d.indicator.Move(pos.SubtractXY(dot, dot))
	d.indicator.Resize(fyne.NewSize(dot*2, dot*2))
}

func (d *Dial) layoutLabels() {
	for s := fanspeed.Off; s < fanspeed.NumSpeeds; s++ {
		txt := d.labels[s]
		txt.Text = fanspeed.Label(s)
		ts := fyne.MeasureText(txt.Text, txt.TextSize, txt.TextStyle)
		pos := PositionFor(s, float64(d.radius)+labelOffset, d.size.Width, d.size.Height)
		txt.Move(pos.SubtractXY(ts.Width*common.OneHalf, ts.Height*common.OneHalf))
		txt.Resize(ts)
	}
}

func (d *Dial) CreateRenderer() fyne.WidgetRenderer { return &DialRenderer{Dial: d} }

type DialRenderer struct {
	*Dial
	objects []fyne.CanvasObject
}

func (r *DialRenderer) Layout(space fyne.Size) {
	if r.size == space {
		return
	}
	r.size = space

	r.radius = fyne.Min(space.Width, space.Height) * common.OneHalf * radiusScale
	middle := fyne.NewPos(space.Width*common.OneHalf, space.Height*common.OneHalf)

	r.face.Move(middle.SubtractXY(r.radius, r.radius))
	r.face.Resize(fyne.NewSize(r.radius*2, r.radius*2))

	r.moveIndicator()
	r.layoutLabels()

	// Batch refresh at end of layout
	for _, o := range r.Objects() {
		canvas.Refresh(o)
	}
}

func (r *DialRenderer) MinSize() fyne.Size { return r.minsize }

func (r *DialRenderer) Refresh() {
	r.face.FillColor = r.fillColor()
	r.moveIndicator()
	r.layoutLabels()
	for _, o := range r.Objects() {
		canvas.Refresh(o)
	}
}

func (r *DialRenderer) Destroy() {}

func (r *DialRenderer) Objects() []fyne.CanvasObject {
	// Build once
	if r.objects == nil {
		objs := make([]fyne.CanvasObject, 0, fanspeed.NumSpeeds+2)
		objs = append(objs, r.face, r.indicator)
		for _, txt := range r.labels {
			objs = append(objs, txt)
		}
		r.objects = objs
	}
	return r.objects
}
