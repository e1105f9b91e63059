package visualize

import (
	"github.com/hepworks/fitstack/pkg/errors"
	"github.com/hepworks/fitstack/pkg/histogram"
)

// TemplateVariation is one varied template alongside its ratio to nominal.
type TemplateVariation struct {
	Label string
	Hist  *histogram.Histogram
	Ratio []float64
}

// TemplateFigure compares a nominal template with its systematic
// variations, before and after post-processing.
type TemplateFigure struct {
	Label      string
	Variable   string
	Edges      []float64
	Nominal    *histogram.Histogram
	Variations []TemplateVariation
}

// Templates assembles a template comparison figure. Any of the four
// variation histograms may be nil and is then left out; at least one must
// be present. All provided histograms must share the nominal binning.
func Templates(label, variable string, nominal, upOrig, downOrig, upMod, downMod *histogram.Histogram) (*TemplateFigure, error) {
	if nominal == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nominal template is missing")
	}
	if err := nominal.Validate(); err != nil {
		return nil, err
	}

	fig := &TemplateFigure{
		Label:    label,
		Variable: variable,
		Edges:    nominal.Edges,
		Nominal:  nominal,
	}

	candidates := []struct {
		label string
		hist  *histogram.Histogram
	}{
		{"Up (original)", upOrig},
		{"Down (original)", downOrig},
		{"Up (modified)", upMod},
		{"Down (modified)", downMod},
	}
	for _, c := range candidates {
		if c.hist == nil {
			continue
		}
		if err := c.hist.Validate(); err != nil {
			return nil, err
		}
		if !nominal.SameBinning(c.hist) {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidInput,
				"variation binning does not match nominal",
				map[string]any{"variation": c.label})
		}

		ratio := make([]float64, len(c.hist.Yields))
		for i, y := range c.hist.Yields {
			ratio[i] = y / nominal.Yields[i]
		}
		fig.Variations = append(fig.Variations, TemplateVariation{
			Label: c.label,
			Hist:  c.hist,
			Ratio: ratio,
		})
	}

	if len(fig.Variations) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no variation templates to compare")
	}

	return fig, nil
}
