// Public domain.

package refract

import (
	"github.com/soniakeys/unit"
)

// Measurement is a single observation of a ray through a prism face.
// Both angles are measured from the normal.
type Measurement struct {
	Incidence  unit.Angle
	Refraction unit.Angle
}

// Measurements is an ordered sequence of observations.
type Measurements []Measurement

// degrees, ordered by increasing incidence
var (
	prismFIncidence  = [...]float64{0, 10, 15, 20, 25, 30, 35, 40, 45}
	prismFRefraction = [...]float64{0, 14, 22, 29.5, 38, 47.5, 58, 72.5, 86.5}
)

// PrismF returns the measurements of prism experiment F.
//
// A new slice is returned on each call.
func PrismF() Measurements {
	m := make(Measurements, len(prismFIncidence))
	for i := range m {
		m[i] = Measurement{
			Incidence:  unit.AngleFromDeg(prismFIncidence[i]),
			Refraction: unit.AngleFromDeg(prismFRefraction[i]),
		}
	}
	return m
}

// Incidence returns the angles of incidence, in order.
func (m Measurements) Incidence() []unit.Angle {
	a := make([]unit.Angle, len(m))
	for i, m1 := range m {
		a[i] = m1.Incidence
	}
	return a
}

// Refraction returns the angles of refraction, in order.
func (m Measurements) Refraction() []unit.Angle {
	a := make([]unit.Angle, len(m))
	for i, m1 := range m {
		a[i] = m1.Refraction
	}
	return a
}

// Sines returns sin(incidence) and sin(refraction) for each measurement.
func (m Measurements) Sines() (sinI, sinR []float64) {
	return SinS(m.Incidence()), SinS(m.Refraction())
}

// Fit fits sin(refraction) on sin(incidence).
func (m Measurements) Fit() *LineFit {
	return New(m.Sines())
}
