package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gprel/comention/internal/comention"
)

var barColor = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// TopPairsChart renders the top-n co-mention pairs as a bar chart,
// sorted descending by count. Returns ErrNothingToPlot when the
// aggregate is empty.
func TopPairsChart(counts comention.PairCount, opts Options, path string) error {
	top := counts.TopN(opts.TopN)
	if len(top) == 0 {
		return ErrNothingToPlot
	}

	values := make(plotter.Values, len(top))
	labels := make([]string, len(top))
	for i, pw := range top {
		values[i] = float64(pw.Count)
		labels[i] = pw.Pair.String()
	}

	p := newBarPlot(fmt.Sprintf("Top %d Country Co-Mention Pairs", len(top)), "Country pair")
	if err := addBars(p, values, labels); err != nil {
		return err
	}
	return save(p, opts, path)
}

// SubjectChart renders a subject-area breakdown for one country pair.
// Returns ErrNothingToPlot when no record matched the pair.
func SubjectChart(counts comention.SubjectCount, pair comention.Pair, opts Options, path string) error {
	top := counts.TopSubjects(opts.TopN)
	if len(top) == 0 {
		return ErrNothingToPlot
	}

	values := make(plotter.Values, len(top))
	labels := make([]string, len(top))
	for i, sw := range top {
		values[i] = float64(sw.Count)
		labels[i] = sw.Subject
	}

	title := fmt.Sprintf("Records mentioning both %s & %s by Subject", pair.A, pair.B)
	p := newBarPlot(title, "Subject area")
	if err := addBars(p, values, labels); err != nil {
		return err
	}
	return save(p, opts, path)
}

// newBarPlot builds a bar chart canvas with rotated category labels.
func newBarPlot(title, xLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Records mentioning both"
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	return p
}

func addBars(p *plot.Plot, values plotter.Values, labels []string) error {
	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return fmt.Errorf("building bar chart: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalX(labels...)
	return nil
}
