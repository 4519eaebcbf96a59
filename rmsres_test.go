// Public domain.

package refract_test

import (
	"fmt"
	"math"

	"github.com/soniakeys/refract"
)

func ExampleLineFit_RmsRes() {
	sinI, sinR := refract.PrismF().Sines()
	f := refract.New(sinI, sinR)

	// show observed and fitted values
	fmt.Println("  sin i   sin r  fitted")
	for i, p := range f.Predicted() {
		fmt.Printf("%7.4f %7.4f %7.4f\n", sinI[i], sinR[i], p)
	}

	// Get both RMS and residuals
	rms, res := f.RmsRes()

	fmt.Println("\nresiduals:")
	for _, r := range res {
		fmt.Printf("%7.4f\n", r)
	}
	fmt.Printf("\nrms: %.4f\n", rms)

	// compute RMS by hand to illustrate formula
	var ss float64
	for _, r := range res {
		ss += r * r
	}
	fmt.Printf("rms: %.4f\n", math.Sqrt(ss/float64(len(res))))
	// Output:
	//   sin i   sin r  fitted
	//  0.0000  0.0000 -0.0020
	//  0.1736  0.2419  0.2512
	//  0.2588  0.3746  0.3754
	//  0.3420  0.4924  0.4968
	//  0.4226  0.6157  0.6143
	//  0.5000  0.7373  0.7271
	//  0.5736  0.8480  0.8344
	//  0.6428  0.9537  0.9354
	//  0.7071  0.9981  1.0292
	//
	// residuals:
	//  0.0020
	// -0.0093
	// -0.0008
	// -0.0043
	//  0.0014
	//  0.0101
	//  0.0136
	//  0.0183
	// -0.0310
	//
	// rms: 0.0137
	// rms: 0.0137
}
