// Public domain.

package refract

import (
	"github.com/soniakeys/unit"
)

// AnglesFromDeg converts a slice of angles in degrees to unit.Angle.
func AnglesFromDeg(d []float64) []unit.Angle {
	a := make([]unit.Angle, len(d))
	for i, d1 := range d {
		a[i] = unit.AngleFromDeg(d1)
	}
	return a
}

// SinS returns the sine of each angle, in order.
func SinS(a []unit.Angle) []float64 {
	s := make([]float64, len(a))
	for i, a1 := range a {
		s[i] = a1.Sin()
	}
	return s
}

// SinDeg returns the sine of each angle given in degrees.
// Degrees are converted to radians first, then the sine taken.
func SinDeg(d []float64) []float64 {
	return SinS(AnglesFromDeg(d))
}
