// Package render draws co-mention charts and assembles reports. It is
// purely presentational: selection and counting happen in the comention
// package, and everything here hands off to gonum/plot or gofpdf.
package render

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// ErrNothingToPlot is returned when the selection to render is empty.
// Callers surface it as a diagnostic instead of writing an empty chart.
var ErrNothingToPlot = errors.New("nothing to plot")

// Options control chart rendering.
type Options struct {
	TopN       int     // pairs/subjects shown in bar charts
	TopEdges   int     // strongest edges drawn in the network
	Width      float64 // canvas width, inches
	Height     float64 // canvas height, inches
	LayoutK    float64 // repulsion constant of the force-directed layout
	LayoutSeed uint64  // seed for reproducible layouts
}

// DefaultOptions returns the rendering defaults.
func DefaultOptions() Options {
	return Options{
		TopN:       20,
		TopEdges:   100,
		Width:      10,
		Height:     4,
		LayoutK:    0.2,
		LayoutSeed: 42,
	}
}

// save writes the plot at the configured canvas size. The output format
// follows the file extension.
func save(p *plot.Plot, opts Options, path string) error {
	w := vg.Length(opts.Width) * vg.Inch
	h := vg.Length(opts.Height) * vg.Inch
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	return nil
}
