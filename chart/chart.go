// Public domain.

// Package chart renders a straight line fit as an annotated scatter plot.
package chart

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os/exec"
	"runtime"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/soniakeys/refract"
)

// Options control labelling and size of the figure.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Data   string // legend entry for the observations
	Line   string // legend entry for the fitted line
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns labels for the prism experiment.
func DefaultOptions() Options {
	return Options{
		Title:  "Experiment F: prism refraction",
		XLabel: "sin(i)",
		YLabel: "sin(r)",
		Data:   "measured",
		Line:   "least squares fit",
		Width:  8 * vg.Inch,
		Height: 6 * vg.Inch,
	}
}

var (
	dataColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	lineColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// Render builds a plot of observations x, y with the fitted line f.
//
// The plot has a grid, a legend, and the text of f.Summary in the upper
// left.  Both axes start at zero.
func Render(x, y []float64, f *refract.LineFit, opts Options) (*plot.Plot, error) {
	if f == nil {
		return nil, errors.New("chart: nil fit")
	}
	if len(x) != len(y) || len(x) != f.Len() {
		return nil, fmt.Errorf("chart: %d x, %d y for a fit of %d",
			len(x), len(y), f.Len())
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())

	obs := make(plotter.XYs, len(x))
	fit := make(plotter.XYs, len(x))
	pred := f.Predicted()
	for i := range x {
		obs[i].X, obs[i].Y = x[i], y[i]
		fit[i].X, fit[i].Y = x[i], pred[i]
	}

	s, err := plotter.NewScatter(obs)
	if err != nil {
		return nil, fmt.Errorf("chart: scatter: %w", err)
	}
	s.GlyphStyle.Color = dataColor
	s.GlyphStyle.Radius = vg.Points(3)
	s.Shape = draw.CircleGlyph{}

	l, err := plotter.NewLine(fit)
	if err != nil {
		return nil, fmt.Errorf("chart: line: %w", err)
	}
	l.LineStyle.Color = lineColor
	l.LineStyle.Width = vg.Points(1.5)

	// annotation anchored at the top left of the data
	top := floats.Max(y)
	if m := floats.Max(pred); m > top {
		top = m
	}
	ann, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: 0, Y: top}},
		Labels: []string{f.Summary()},
	})
	if err != nil {
		return nil, fmt.Errorf("chart: annotation: %w", err)
	}
	ann.TextStyle[0].YAlign = text.YTop
	ann.Offset = vg.Point{X: vg.Points(6), Y: vg.Points(-6)}

	p.Add(s, l, ann)
	p.Legend.Add(opts.Data, s)
	p.Legend.Add(opts.Line, l)

	p.X.Min = 0
	p.Y.Min = 0
	return p, nil
}

// Save writes p to path, replacing any existing file.
// The image format is taken from the file extension.
func Save(p *plot.Plot, opts Options, path string) error {
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}
	return nil
}

// WriteTo writes p to w in the named format, "png", "svg", "pdf" and so on.
func WriteTo(p *plot.Plot, opts Options, w io.Writer, format string) error {
	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return fmt.Errorf("chart: %s writer: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("chart: write %s: %w", format, err)
	}
	return nil
}

// Open asks the desktop to display the file at path.
// It returns once the viewer is started.
func Open(ctx context.Context, path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", path)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("chart: open %s: %w", path, err)
	}
	return cmd.Process.Release()
}
