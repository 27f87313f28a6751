package fanspeed_test

import (
	"testing"

	"github.com/Tarek-Bohdima/CustomFanController/pkg/fanspeed"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name string // description of this test case
		in   fanspeed.Speed
		want fanspeed.Speed
	}{
		{name: "off to low", in: fanspeed.Off, want: fanspeed.Low},
		{name: "low to medium", in: fanspeed.Low, want: fanspeed.Medium},
		{name: "medium to high", in: fanspeed.Medium, want: fanspeed.High},
		{name: "high wraps to off", in: fanspeed.High, want: fanspeed.Off},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Next(); got != tt.want {
				t.Errorf("Next() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextCycleLength(t *testing.T) {
	for s := fanspeed.Off; s <= fanspeed.High; s++ {
		if got := s.Next().Next().Next().Next(); got != s {
			t.Errorf("four transitions from %v = %v, want %v", s, got, s)
		}
	}
}

func TestNextNoFixedPoint(t *testing.T) {
	for s := fanspeed.Off; s <= fanspeed.High; s++ {
		if s.Next() == s {
			t.Errorf("Next(%v) must not return %v", s, s)
		}
	}
}

func TestTransitionSequence(t *testing.T) {
	want := []fanspeed.Speed{fanspeed.Low, fanspeed.Medium, fanspeed.High, fanspeed.Off}
	s := fanspeed.Off
	for i, w := range want {
		s = s.Next()
		if s != w {
			t.Errorf("transition %d = %v, want %v", i+1, s, w)
		}
	}
}

func TestLabelKey(t *testing.T) {
	tests := []struct {
		name string
		in   fanspeed.Speed
		want string
	}{
		{name: "off", in: fanspeed.Off, want: "fan.off"},
		{name: "low", in: fanspeed.Low, want: "fan.low"},
		{name: "medium", in: fanspeed.Medium, want: "fan.medium"},
		{name: "high", in: fanspeed.High, want: "fan.high"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.LabelKey(); got != tt.want {
				t.Errorf("LabelKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabelFallback(t *testing.T) {
	// No translations are loaded in tests so the builtin names come back.
	tests := []struct {
		name string
		in   fanspeed.Speed
		want string
	}{
		{name: "off", in: fanspeed.Off, want: "OFF"},
		{name: "low", in: fanspeed.Low, want: "LOW"},
		{name: "medium", in: fanspeed.Medium, want: "MEDIUM"},
		{name: "high", in: fanspeed.High, want: "HIGH"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fanspeed.Label(tt.in); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}
