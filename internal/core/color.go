package core

import (
	"image/color"
	"math"

	"github.com/aykevl/ledsgo"
)

// Common panel colours.
var (
	Black = color.RGBA{A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red   = color.RGBA{R: 255, A: 255}
)

// Hue returns the fully saturated, full brightness colour at angle deg on the
// colour wheel. Angles wrap, so 360 is red again.
func Hue(deg float64) color.RGBA {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	h := uint16(deg / 360 * 65536)
	c := ledsgo.Color{H: h, S: 0xff, V: 0xff}.Spectrum()
	c.A = 255
	return c
}

// Gray returns an opaque grey of level v.
func Gray(v uint8) color.RGBA {
	return color.RGBA{R: v, G: v, B: v, A: 255}
}
