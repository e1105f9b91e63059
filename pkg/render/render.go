package render

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/hepworks/fitstack/pkg/errors"
	"github.com/hepworks/fitstack/pkg/visualize"
)

const (
	figureWidth  = 6 * vg.Inch
	figureHeight = 4 * vg.Inch
)

// Gonum renders figures with gonum/plot. The zero value is ready to use.
type Gonum struct{}

var _ visualize.Renderer = (*Gonum)(nil)

// New returns a gonum-backed renderer.
func New() *Gonum {
	return &Gonum{}
}

// DataMC draws the simulated samples stacked on top of each other with the
// data points and their uncertainties overlaid.
func (g *Gonum) DataMC(fig *visualize.DataMCFigure, path string) error {
	p := plot.New()
	p.Title.Text = fig.Label
	p.X.Label.Text = fig.Variable
	p.Y.Label.Text = "events"

	var previous *plotter.BarChart
	for i, s := range fig.MC {
		bars, err := plotter.NewBarChart(plotter.Values(s.Hist.Yields), vg.Points(20))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, "cannot build sample bars", err)
		}
		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = 0.5
		if previous != nil {
			bars.StackOn(previous)
		}
		previous = bars
		p.Add(bars)
		p.Legend.Add(s.Label, bars)
	}

	points := make(plotter.XYs, len(fig.DataYields))
	xErrors := make(plotter.XErrors, len(fig.DataYields))
	yErrors := make(plotter.YErrors, len(fig.DataYields))
	for i := range points {
		// bar charts place bins at ordinal positions
		points[i].X = float64(i)
		points[i].Y = fig.DataYields[i]
		yErrors[i].Low = fig.DataStdev[i]
		yErrors[i].High = fig.DataStdev[i]
	}
	errPoints := plotutil.ErrorPoints{XYs: points, XErrors: xErrors, YErrors: yErrors}
	scatter, err := plotter.NewScatter(errPoints)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "cannot build data points", err)
	}
	yerr, err := plotter.NewYErrorBars(errPoints)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "cannot build data error bars", err)
	}
	p.Add(scatter, yerr)
	p.Legend.Add(fig.DataLabel, scatter)

	p.NominalX(binLabels(fig.Edges)...)
	p.Legend.Top = true

	return save(p, path)
}

// Templates draws the nominal template and its variations as step lines.
func (g *Gonum) Templates(fig *visualize.TemplateFigure, path string) error {
	p := plot.New()
	p.Title.Text = fig.Label
	p.X.Label.Text = fig.Variable
	p.Y.Label.Text = "events"

	nominal, err := plotter.NewLine(stepLine(fig.Edges, fig.Nominal.Yields))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "cannot build nominal line", err)
	}
	nominal.LineStyle.Width = vg.Points(1.5)
	p.Add(nominal)
	p.Legend.Add("Nominal", nominal)

	for i, v := range fig.Variations {
		line, err := plotter.NewLine(stepLine(fig.Edges, v.Hist.Yields))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, "cannot build variation line", err)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i + 1)
		p.Add(line)
		p.Legend.Add(v.Label, line)
	}

	p.Legend.Top = true

	return save(p, path)
}

// CorrelationMatrix draws the matrix as a heatmap with a diverging palette
// fixed to the [-1, 1] correlation range.
func (g *Gonum) CorrelationMatrix(fig *visualize.CorrelationFigure, path string) error {
	colors := moreland.SmoothBlueRed()
	colors.SetMin(-1)
	colors.SetMax(1)

	heatmap := plotter.NewHeatMap(correlationGrid{fig}, colors.Palette(256))
	heatmap.Min = -1
	heatmap.Max = 1

	p := plot.New()
	p.Title.Text = "Correlation matrix"
	p.Add(heatmap)
	p.NominalX(fig.Labels...)
	p.NominalY(fig.Labels...)

	return save(p, path)
}

// correlationGrid adapts a CorrelationFigure to the plotter.GridXYZ
// interface. Row 0 is drawn at the bottom, so Z flips the row index to keep
// the first parameter in the top row as label order suggests.
type correlationGrid struct {
	fig *visualize.CorrelationFigure
}

func (g correlationGrid) Dims() (int, int) { return len(g.fig.Labels), len(g.fig.Labels) }
func (g correlationGrid) X(c int) float64  { return float64(c) }
func (g correlationGrid) Y(r int) float64  { return float64(r) }
func (g correlationGrid) Z(c, r int) float64 {
	return g.fig.Matrix[len(g.fig.Labels)-1-r][c]
}

// stepLine turns bin edges and yields into the outline of a histogram.
func stepLine(edges, yields []float64) plotter.XYs {
	xys := make(plotter.XYs, 0, 2*len(yields)+2)
	xys = append(xys, plotter.XY{X: edges[0], Y: 0})
	for i, y := range yields {
		xys = append(xys, plotter.XY{X: edges[i], Y: y}, plotter.XY{X: edges[i+1], Y: y})
	}
	xys = append(xys, plotter.XY{X: edges[len(edges)-1], Y: 0})
	return xys
}

func binLabels(edges []float64) []string {
	labels := make([]string, len(edges)-1)
	for i := range labels {
		labels[i] = fmt.Sprintf("%g-%g", edges[i], edges[i+1])
	}
	return labels
}

func save(p *plot.Plot, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInternal,
				fmt.Sprintf("cannot create figure folder %q", dir), err)
		}
	}
	if err := p.Save(figureWidth, figureHeight, path); err != nil {
		return errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("cannot save figure %q", path), err)
	}
	return nil
}
