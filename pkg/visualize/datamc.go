package visualize

import (
	"fmt"
	"math"

	"github.com/hepworks/fitstack/pkg/errors"
	"github.com/hepworks/fitstack/pkg/histogram"
)

// SampleHistogram is one sample's contribution to a figure.
type SampleHistogram struct {
	IsData   bool                 `json:"isData" yaml:"isData"`
	Label    string               `json:"label" yaml:"label"`
	Variable string               `json:"variable" yaml:"variable"`
	Hist     *histogram.Histogram `json:"hist" yaml:"hist"`
}

// DataMCFigure holds everything a renderer needs for a data/MC comparison:
// the MC stack in configuration order, the summed model expectation with its
// quadrature uncertainty, the data points with Poisson uncertainties, and
// the data/model ratio panel arrays.
type DataMCFigure struct {
	Label    string
	Variable string
	Edges    []float64

	MC         []SampleHistogram
	TotalYield []float64
	TotalUnc   []float64

	DataLabel  string
	DataYields []float64
	DataStdev  []float64

	Ratio    []float64
	RatioUnc []float64
}

// DataMC splits samples into data and simulation, checks binning
// consistency, and computes the derived stack quantities. Exactly one data
// sample and at least one MC sample are required. The figure label is
// typically the region's display label.
func DataMC(label string, samples []SampleHistogram) (*DataMCFigure, error) {
	fig := &DataMCFigure{Label: label}

	var data *SampleHistogram
	for i := range samples {
		s := &samples[i]
		if s.Hist == nil {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidInput,
				"sample histogram is missing", map[string]any{"label": s.Label})
		}
		if err := s.Hist.Validate(); err != nil {
			return nil, err
		}
		if s.IsData {
			if data != nil {
				return nil, errors.New(errors.ErrCodeInvalidInput, "more than one data sample in figure")
			}
			data = s
			continue
		}
		fig.MC = append(fig.MC, *s)
	}
	if data == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no data sample in figure")
	}
	if len(fig.MC) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no simulated samples in figure")
	}

	reference := fig.MC[0].Hist
	for _, s := range samples {
		if !reference.SameBinning(s.Hist) {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidInput,
				"sample binning does not match the rest of the figure",
				map[string]any{"label": s.Label})
		}
	}

	fig.Variable = samples[0].Variable
	fig.Edges = reference.Edges
	fig.DataLabel = data.Label
	fig.DataYields = data.Hist.Yields

	// data uncertainties follow counting statistics
	fig.DataStdev = make([]float64, len(data.Hist.Yields))
	for i, y := range data.Hist.Yields {
		fig.DataStdev[i] = math.Sqrt(y)
	}

	fig.TotalYield = make([]float64, reference.Bins())
	stack := make([]*histogram.Histogram, 0, len(fig.MC))
	for _, s := range fig.MC {
		stack = append(stack, s.Hist)
		for i, y := range s.Hist.Yields {
			fig.TotalYield[i] += y
		}
	}

	unc, err := histogram.StackUncertainty(stack)
	if err != nil {
		return nil, err
	}
	fig.TotalUnc = unc

	fig.Ratio = make([]float64, len(fig.TotalYield))
	fig.RatioUnc = make([]float64, len(fig.TotalYield))
	for i, total := range fig.TotalYield {
		fig.Ratio[i] = fig.DataYields[i] / total
		fig.RatioUnc[i] = fig.DataStdev[i] / total
	}

	return fig, nil
}

// Sum returns the total expected model yield, used in summary logs.
func (f *DataMCFigure) Sum() float64 {
	var total float64
	for _, y := range f.TotalYield {
		total += y
	}
	return total
}

// String implements fmt.Stringer for log output.
func (f *DataMCFigure) String() string {
	return fmt.Sprintf("data/MC figure %q: %d samples, %d bins", f.Label, len(f.MC)+1, len(f.TotalYield))
}
