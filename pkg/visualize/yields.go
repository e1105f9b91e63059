package visualize

import (
	"fmt"

	"github.com/hepworks/fitstack/pkg/errors"
)

// YieldRow is one line of a yield table.
type YieldRow struct {
	Sample  string    `json:"sample" yaml:"sample"`
	Yields  []float64 `json:"yields" yaml:"yields"`
	Total   float64   `json:"total" yaml:"total"`
	IsData  bool      `json:"isData,omitempty" yaml:"isData,omitempty"`
	IsTotal bool      `json:"isTotal,omitempty" yaml:"isTotal,omitempty"`
}

// YieldTableData summarizes per-sample yields in one region: one row per MC
// sample, a total model row with its quadrature uncertainty, and the data
// row last.
type YieldTableData struct {
	Region   string     `json:"region" yaml:"region"`
	Variable string     `json:"variable,omitempty" yaml:"variable,omitempty"`
	Edges    []float64  `json:"edges" yaml:"edges"`
	Rows     []YieldRow `json:"rows" yaml:"rows"`
	TotalUnc []float64  `json:"totalUnc" yaml:"totalUnc"`
}

// YieldTable builds the yield summary from the same sample histograms a
// data/MC figure consumes.
func YieldTable(region string, samples []SampleHistogram) (*YieldTableData, error) {
	fig, err := DataMC(region, samples)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput,
			fmt.Sprintf("cannot build yield table for region %q", region), err)
	}

	table := &YieldTableData{
		Region:   region,
		Variable: fig.Variable,
		Edges:    fig.Edges,
		TotalUnc: fig.TotalUnc,
	}

	for _, s := range fig.MC {
		table.Rows = append(table.Rows, YieldRow{
			Sample: s.Label,
			Yields: s.Hist.Yields,
			Total:  s.Hist.Sum(),
		})
	}

	var modelTotal float64
	for _, y := range fig.TotalYield {
		modelTotal += y
	}
	table.Rows = append(table.Rows, YieldRow{
		Sample:  "Total model",
		Yields:  fig.TotalYield,
		Total:   modelTotal,
		IsTotal: true,
	})

	var dataTotal float64
	for _, y := range fig.DataYields {
		dataTotal += y
	}
	table.Rows = append(table.Rows, YieldRow{
		Sample: fig.DataLabel,
		Yields: fig.DataYields,
		Total:  dataTotal,
		IsData: true,
	})

	return table, nil
}
