package common

import "math"

const (
	Pi98       = math.Pi / 8 * 9 // dial start angle, lower left
	PiFourth   = math.Pi / 4
	OneHalf    = 1.0 / 2.0  // 0.5
	OneFourth  = 1.0 / 4.0  // 0.25
	OneTwelfth = 1.0 / 12.0 // 0.08333333333333333
)
