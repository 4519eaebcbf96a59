// Public domain.

// Prisma fits the prism experiment F measurements to Snell's law, prints
// the refractive index and writes an annotated plot of the fit.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	sexa "github.com/soniakeys/sexagesimal"
	"gonum.org/v1/plot/vg"

	"github.com/soniakeys/refract"
	"github.com/soniakeys/refract/chart"
	"github.com/soniakeys/refract/internal/log"
)

func main() {
	var (
		out    = flag.String("out", "grafico_experimento_f_prisma.png", "output image; format from extension")
		show   = flag.Bool("show", true, "open the image after writing it")
		debug  = flag.Bool("debug", false, "development logging")
		width  = flag.Float64("width", 8, "figure width, inches")
		height = flag.Float64("height", 6, "figure height, inches")
	)
	flag.Parse()

	if err := log.Init(*debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(*out, *show, vg.Length(*width)*vg.Inch, vg.Length(*height)*vg.Inch); err != nil {
		log.Errorw("prisma failed", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(out string, show bool, width, height vg.Length) error {
	m := refract.PrismF()
	sinI, sinR := m.Sines()
	f := refract.New(sinI, sinR)
	log.Debugw("fit", "n", f.Len(), "slope", f.Slope(),
		"intercept", f.Intercept(), "r2", f.RSquared(), "rms", f.Rms())

	printTable(os.Stdout, m, sinI, sinR)
	fmt.Println()
	fmt.Println(f.Summary())
	fmt.Printf("rms residual = %.4f\n", f.Rms())

	opts := chart.DefaultOptions()
	opts.Width, opts.Height = width, height
	p, err := chart.Render(sinI, sinR, f, opts)
	if err != nil {
		return err
	}
	if err := chart.Save(p, opts, out); err != nil {
		return err
	}
	log.Infow("plot written", "path", out, "index", f.Index())

	if show {
		if err := chart.Open(context.Background(), out); err != nil {
			log.Warnw("could not display plot", "error", err)
		}
	}
	return nil
}

// printTable writes the measurements with angles in sexagesimal degrees.
// Columns are right aligned to the widest formatted angle.
func printTable(w io.Writer, m refract.Measurements, sinI, sinR []float64) {
	inc := make([]string, len(m))
	ref := make([]string, len(m))
	width := len("refraction")
	for i, m1 := range m {
		inc[i] = fmt.Sprintf("%2.1s", sexa.FmtAngle(m1.Incidence))
		ref[i] = fmt.Sprintf("%2.1s", sexa.FmtAngle(m1.Refraction))
		for _, s := range []string{inc[i], ref[i]} {
			if n := utf8.RuneCountInString(s); n > width {
				width = n
			}
		}
	}
	fmt.Fprintf(w, "%*s  %*s  %6s  %6s\n", width, "incidence", width, "refraction", "sin i", "sin r")
	for i := range m {
		fmt.Fprintf(w, "%*s  %*s  %6.4f  %6.4f\n", width, inc[i], width, ref[i], sinI[i], sinR[i])
	}
}
