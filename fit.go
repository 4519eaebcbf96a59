// Public domain.

// Package refract fits measured angles of incidence and refraction to
// Snell's law and reports the refractive index of the medium.
//
// Angles are transformed to sines and a straight line is fit by ordinary
// least squares.  The slope of the line is the refractive index.
package refract

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// LineFit represents a least squares straight line fit of y on x.
// It can be queried for statistics on the fit and used to generate
// values on the fitted line.
type LineFit struct {
	// observations, copied so the fit is not affected by later changes
	// to the caller's slices
	x, y []float64
	// fitted values, aligned to x
	pred []float64
	// fit solution parameters
	slope, intercept float64
	r2               float64
}

// New does the least squares fit.
//
// Args:
//   x  -- independent values, sin(incidence) for a prism experiment
//   y  -- dependent values, sin(refraction)
//
// New returns nil if there are fewer than two observations or if x and y
// differ in length.  If all x are equal the fit is degenerate and the
// parameters are NaN.
func New(x, y []float64) *LineFit {
	nObs := len(x)
	if nObs < 2 || len(y) != nObs {
		return nil
	}
	lf := &LineFit{
		x: append([]float64{}, x...),
		y: append([]float64{}, y...),
	}
	// stat gives y = alpha + beta*x
	alpha, beta := stat.LinearRegression(lf.x, lf.y, nil, false)
	lf.slope = beta
	lf.intercept = alpha
	lf.r2 = stat.RSquared(lf.x, lf.y, nil, alpha, beta)

	lf.pred = make([]float64, nObs)
	for i, x1 := range lf.x {
		lf.pred[i] = lf.Predict(x1)
	}
	return lf
}

// Slope returns the slope of the fitted line.
func (lf *LineFit) Slope() float64 { return lf.slope }

// Intercept returns the y intercept of the fitted line.
func (lf *LineFit) Intercept() float64 { return lf.intercept }

// RSquared returns the coefficient of determination, 1 - SSres/SStot.
func (lf *LineFit) RSquared() float64 { return lf.r2 }

// Len returns the number of observations in the fit.
func (lf *LineFit) Len() int { return len(lf.x) }

// Index returns the refractive index, which is just the slope.
//
// Snell's law relates the angles by sin(r) = n sin(i) when the ray is
// measured leaving the denser medium, so the slope of sin(r) on sin(i)
// is n.
func (lf *LineFit) Index() float64 { return lf.slope }

// Predict returns the value of the fitted line at x.
func (lf *LineFit) Predict(x float64) float64 {
	return lf.slope*x + lf.intercept
}

// Predicted returns fitted values for the observations, in order.
func (lf *LineFit) Predicted() []float64 {
	return append([]float64{}, lf.pred...)
}

// Res computes and returns residuals, observed minus fitted.
func (lf *LineFit) Res() []float64 {
	res := make([]float64, len(lf.y))
	floats.SubTo(res, lf.y, lf.pred)
	return res
}

// RmsRes returns rms of residuals and the residuals themselves.
//
// Note:  The rms is over n, not n-2.  It describes the scatter of this
// data about the line, not an estimate of the population variance.
func (lf *LineFit) RmsRes() (float64, []float64) {
	res := lf.Res()
	return math.Sqrt(floats.Dot(res, res) / float64(len(res))), res
}

// Rms returns just the rms, as documented at RmsRes.
func (lf *LineFit) Rms() float64 {
	rms, _ := lf.RmsRes()
	return rms
}

// Equation formats the fitted line as "y = 1.4583x - 0.0020".
func (lf *LineFit) Equation() string {
	sign := '+'
	b := lf.intercept
	if math.Signbit(b) {
		sign = '-'
		b = -b
	}
	return fmt.Sprintf("y = %.4fx %c %.4f", lf.slope, sign, b)
}

// Summary returns the text used to annotate a plot of the fit:
// refractive index, equation, and R², one per line.
func (lf *LineFit) Summary() string {
	return fmt.Sprintf("n = %.4f\n%s\nR² = %.4f",
		lf.Index(), lf.Equation(), lf.r2)
}
