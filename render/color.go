package render

import (
	"image/color"
	"math"
)

// MaxElevationNorm is the upper end of the normalized elevation scale. It
// spans two color segments of 255 steps each: green to yellow, then yellow
// to red.
const MaxElevationNorm = 2 * 255

// ElevationColor maps a normalized elevation in [0, MaxElevationNorm] onto
// the green, yellow, red gradient. Values outside the range are clamped.
func ElevationColor(elevNorm float64) color.NRGBA {
	if elevNorm <= 255 {
		return color.NRGBA{R: channel(elevNorm), G: 255, B: 0, A: 255}
	}

	return color.NRGBA{R: 255, G: channel(MaxElevationNorm - elevNorm), B: 0, A: 255}
}

func channel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
