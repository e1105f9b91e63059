package histogram

import (
	"fmt"
	"math"

	"go-hep.org/x/hep/hbook"
	"gonum.org/v1/gonum/floats"

	"github.com/hepworks/fitstack/pkg/errors"
)

// Histogram is a binned distribution with per-bin yields and standard
// deviations. Edges holds one more entry than Yields and Stdev.
type Histogram struct {
	Yields []float64 `json:"yields" yaml:"yields"`
	Stdev  []float64 `json:"stdev" yaml:"stdev"`
	Edges  []float64 `json:"edges" yaml:"edges"`
}

// New creates a validated Histogram.
func New(edges, yields, stdev []float64) (*Histogram, error) {
	h := &Histogram{Yields: yields, Stdev: stdev, Edges: edges}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// Validate checks the length and ordering invariants.
func (h *Histogram) Validate() error {
	if len(h.Yields) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "histogram has no bins")
	}
	if len(h.Stdev) != len(h.Yields) {
		return errors.New(errors.ErrCodeInvalidInput,
			fmt.Sprintf("histogram stdev length %d does not match %d bins", len(h.Stdev), len(h.Yields)))
	}
	if len(h.Edges) != len(h.Yields)+1 {
		return errors.New(errors.ErrCodeInvalidInput,
			fmt.Sprintf("histogram needs %d edges for %d bins, got %d", len(h.Yields)+1, len(h.Yields), len(h.Edges)))
	}
	for i := 1; i < len(h.Edges); i++ {
		if h.Edges[i] <= h.Edges[i-1] {
			return errors.New(errors.ErrCodeInvalidInput, "histogram edges are not strictly increasing")
		}
	}
	return nil
}

// Bins returns the number of bins.
func (h *Histogram) Bins() int {
	return len(h.Yields)
}

// BinCenters returns the midpoints of all bins.
func (h *Histogram) BinCenters() []float64 {
	centers := make([]float64, h.Bins())
	for i := range centers {
		centers[i] = 0.5 * (h.Edges[i] + h.Edges[i+1])
	}
	return centers
}

// BinWidths returns the widths of all bins.
func (h *Histogram) BinWidths() []float64 {
	widths := make([]float64, h.Bins())
	for i := range widths {
		widths[i] = h.Edges[i+1] - h.Edges[i]
	}
	return widths
}

// Sum returns the total yield.
func (h *Histogram) Sum() float64 {
	return floats.Sum(h.Yields)
}

// SameBinning reports whether two histograms share bin edges within a small
// tolerance.
func (h *Histogram) SameBinning(other *Histogram) bool {
	if len(h.Edges) != len(other.Edges) {
		return false
	}
	return floats.EqualApprox(h.Edges, other.Edges, 1e-9)
}

// FromH1D converts an hbook 1D histogram into a Histogram, taking the bin
// sum of weights as yield and the square root of the sum of squared weights
// as standard deviation. Overflow and underflow are dropped.
func FromH1D(h1 *hbook.H1D) (*Histogram, error) {
	if h1 == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nil hbook histogram")
	}

	bins := h1.Binning.Bins
	if len(bins) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "hbook histogram has no bins")
	}

	yields := make([]float64, len(bins))
	stdev := make([]float64, len(bins))
	edges := make([]float64, 0, len(bins)+1)
	for i := range bins {
		b := &bins[i]
		yields[i] = b.SumW()
		stdev[i] = math.Sqrt(b.SumW2())
		edges = append(edges, b.XMin())
	}
	edges = append(edges, bins[len(bins)-1].XMax())

	return New(edges, yields, stdev)
}

// StackUncertainty combines the per-bin standard deviations of a stack of
// histograms in quadrature. All histograms must share the bin count.
func StackUncertainty(hists []*Histogram) ([]float64, error) {
	if len(hists) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no histograms to stack")
	}

	bins := hists[0].Bins()
	total := make([]float64, bins)
	for _, h := range hists {
		if h.Bins() != bins {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				fmt.Sprintf("histogram bin count %d does not match stack bin count %d", h.Bins(), bins))
		}
		for i, s := range h.Stdev {
			total[i] += s * s
		}
	}
	for i := range total {
		total[i] = math.Sqrt(total[i])
	}
	return total, nil
}
