package main

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/lusingander/colorpicker"
	"github.com/skratchdot/open-golang/open"

	"github.com/Tarek-Bohdima/CustomFanController/pkg/debug"
	"github.com/Tarek-Bohdima/CustomFanController/pkg/fanspeed"
	"github.com/Tarek-Bohdima/CustomFanController/pkg/widgets"
	"github.com/Tarek-Bohdima/CustomFanController/pkg/widgets/fandial"
)

const projectURL = "https://github.com/Tarek-Bohdima/CustomFanController"

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	defer debug.Close()

	a := app.NewWithID("com.tarekbohdima.customfancontroller")
	a.Settings().SetTheme(&dialTheme{})

	w := a.NewWindow("Fan Controller")

	status := widget.NewLabel("Fan: " + fanspeed.Label(fanspeed.Off))
	status.Alignment = fyne.TextAlignCenter

	cfg := configFromPreferences(a.Preferences())
	cfg.MinSize = fyne.NewSize(300, 300)
	cfg.OnChanged = func(s fanspeed.Speed) {
		status.SetText("Fan: " + fanspeed.Label(s))
	}

	dial := fandial.New(cfg)

	w.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Settings", func() {
				showSettings(w, a.Preferences())
			}),
			fyne.NewMenuItem("About", func() {
				showAbout(w)
			}),
		),
	))

	w.SetContent(container.NewBorder(nil, status, nil, nil, dial))
	w.Resize(fyne.NewSize(420, 480))
	w.ShowAndRun()
}

// configFromPreferences reads the three speed colors stored by the
// settings popup, seeding unset keys from the traditional scale. Broken
// values fall back to transparent rather than failing.
func configFromPreferences(prefs fyne.Preferences) *widgets.DialConfig {
	low, medium, high := widgets.TraditionalScale.SpeedColors()
	return &widgets.DialConfig{
		LowColor:    prefColor(prefs, "lowColor", low),
		MediumColor: prefColor(prefs, "mediumColor", medium),
		HighColor:   prefColor(prefs, "highColor", high),
	}
}

func prefColor(prefs fyne.Preferences, key string, fallback color.Color) color.Color {
	s := prefs.String(key)
	if s == "" {
		return fallback
	}
	c, err := widgets.ParseHexColor(s)
	if err != nil {
		log.Printf("ignoring %s: %v", key, err)
		return color.Transparent
	}
	return c
}

func showSettings(w fyne.Window, prefs fyne.Preferences) {
	form := container.NewVBox()
	for _, row := range []struct {
		name, key string
	}{
		{"Low", "lowColor"},
		{"Medium", "mediumColor"},
		{"High", "highColor"},
	} {
		key := row.key
		picker := colorpicker.New(160, colorpicker.StyleHueCircle)
		picker.SetOnChanged(func(c color.Color) {
			prefs.SetString(key, widgets.HexString(c))
		})
		form.Add(widget.NewLabel(row.name + " speed color"))
		form.Add(picker)
	}
	form.Add(widget.NewLabel("Colors are applied the next time the app starts"))

	var modal *widget.PopUp
	modal = widget.NewModalPopUp(container.NewVBox(
		form,
		widget.NewButton("Close", func() {
			modal.Hide()
		}),
	), w.Canvas())
	modal.Show()
}

func showAbout(w fyne.Window) {
	link := widget.NewButton("Project page", func() {
		if err := open.Run(projectURL); err != nil {
			log.Printf("failed to open project page: %v", err)
		}
	})
	dialog.ShowCustom("About", "Close", container.NewVBox(
		widget.NewLabel("Fan speed dial demo"),
		link,
	), w)
}

type dialTheme struct{}

func (m dialTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return color.RGBA{R: 23, G: 23, B: 24, A: 0xff}
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (m dialTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m dialTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m dialTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameSeparatorThickness {
		return 0
	}
	return theme.DefaultTheme().Size(name)
}
