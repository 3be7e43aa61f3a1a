package render

import (
	"fmt"
	"image/color"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gprel/comention/internal/comention"
)

const maxEdgeWidthPoints = 6.0

var (
	nodeColor = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xcc}
	edgeColor = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0x99}
)

// NetworkChart draws the strongest co-mention edges as a force-directed
// graph. Node positions come from a seeded Eades layout so repeated
// runs produce the same picture; edge width is proportional to the
// co-mention count, normalized by the maximum count in the drawn
// subset.
func NetworkChart(counts comention.PairCount, opts Options, path string) error {
	top := counts.TopN(opts.TopEdges)
	if len(top) == 0 {
		return ErrNothingToPlot
	}

	g := simple.NewWeightedUndirectedGraph(0, 0)
	ids := make(map[string]int64)
	codes := make(map[int64]string)

	node := func(code string) simple.Node {
		if id, ok := ids[code]; ok {
			return simple.Node(id)
		}
		n := g.NewNode()
		g.AddNode(n)
		ids[code] = n.ID()
		codes[n.ID()] = code
		return simple.Node(n.ID())
	}

	// maxWeight defaults to 1 so an edgeless graph cannot divide by zero.
	maxWeight := 1.0
	for _, pw := range top {
		if float64(pw.Count) > maxWeight {
			maxWeight = float64(pw.Count)
		}
		g.SetWeightedEdge(g.NewWeightedEdge(node(pw.Pair.A), node(pw.Pair.B), float64(pw.Count)))
	}

	eades := layout.EadesR2{
		Repulsion: opts.LayoutK,
		Rate:      0.05,
		Updates:   100,
		Theta:     0.1,
		Src:       rand.NewSource(opts.LayoutSeed),
	}
	optimizer := layout.NewOptimizerR2(g, eades.Update)
	for optimizer.Update() {
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Network of Top %d Country Co-Mentions", len(top))
	p.HideAxes()

	edges := g.WeightedEdges()
	for edges.Next() {
		e := edges.WeightedEdge()
		from := optimizer.LayoutNodeR2(e.From().ID()).Coord2
		to := optimizer.LayoutNodeR2(e.To().ID()).Coord2

		line, err := plotter.NewLine(plotter.XYs{
			{X: from.X, Y: from.Y},
			{X: to.X, Y: to.Y},
		})
		if err != nil {
			return fmt.Errorf("building edge line: %w", err)
		}
		line.LineStyle.Width = vg.Points(e.Weight() / maxWeight * maxEdgeWidthPoints)
		line.LineStyle.Color = edgeColor
		p.Add(line)
	}

	points := make(plotter.XYs, 0, len(ids))
	labels := make([]string, 0, len(ids))
	nodes := g.Nodes()
	for nodes.Next() {
		n := nodes.Node()
		coord := optimizer.LayoutNodeR2(n.ID()).Coord2
		points = append(points, plotter.XY{X: coord.X, Y: coord.Y})
		labels = append(labels, codes[n.ID()])
	}

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return fmt.Errorf("building node scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(5)
	scatter.GlyphStyle.Color = nodeColor

	nodeLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: labels})
	if err != nil {
		return fmt.Errorf("building node labels: %w", err)
	}

	p.Add(scatter, nodeLabels)
	return save(p, opts, path)
}
