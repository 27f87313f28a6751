package widgets_test

import (
	"image/color"
	"testing"

	"github.com/Tarek-Bohdima/CustomFanController/pkg/widgets"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string // description of this test case
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{name: "opaque green", in: "#00FF00", want: color.RGBA{0x00, 0xFF, 0x00, 0xFF}},
		{name: "argb red", in: "#FFFF0000", want: color.RGBA{0xFF, 0x00, 0x00, 0xFF}},
		{name: "argb translucent", in: "#80FFFF00", want: color.RGBA{0xFF, 0xFF, 0x00, 0x80}},
		{name: "no hash prefix", in: "00FF00", want: color.RGBA{0x00, 0xFF, 0x00, 0xFF}},
		{name: "too short", in: "#FFF", wantErr: true},
		{name: "not hex", in: "#GGGGGG", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotErr := widgets.ParseHexColor(tt.in)
			if gotErr != nil {
				if !tt.wantErr {
					t.Errorf("ParseHexColor() failed: %v", gotErr)
				}
				return
			}
			if tt.wantErr {
				t.Fatal("ParseHexColor() succeeded unexpectedly")
			}
			if got != tt.want {
				t.Errorf("ParseHexColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHexStringRoundTrip(t *testing.T) {
	in := color.RGBA{0x12, 0x34, 0x56, 0xFF}
	s := widgets.HexString(in)
	if s != "#FF123456" {
		t.Errorf("HexString() = %q, want %q", s, "#FF123456")
	}
	got, err := widgets.ParseHexColor(s)
	if err != nil {
		t.Fatalf("ParseHexColor() failed: %v", err)
	}
	if got != in {
		t.Errorf("round trip = %v, want %v", got, in)
	}
}

func TestSpeedColors(t *testing.T) {
	low, medium, high := widgets.TraditionalScale.SpeedColors()
	want := []color.Color{
		color.RGBA{0x00, 0xFF, 0x00, 0xFF},
		color.RGBA{0xFF, 0xFF, 0x00, 0xFF},
		color.RGBA{0xFF, 0x00, 0x00, 0xFF},
	}
	for i, got := range []color.Color{low, medium, high} {
		if got != want[i] {
			t.Errorf("TraditionalScale color %d = %v, want %v", i, got, want[i])
		}
	}

	blow, bmed, bhigh := widgets.BlueYellowScale.SpeedColors()
	for i, got := range []color.Color{blow, bmed, bhigh} {
		if got == want[i] {
			t.Errorf("BlueYellowScale color %d should differ from TraditionalScale", i)
		}
	}
}
