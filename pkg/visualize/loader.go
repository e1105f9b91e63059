package visualize

import (
	"path/filepath"

	"github.com/hepworks/fitstack/pkg/config"
	"github.com/hepworks/fitstack/pkg/errors"
	"github.com/hepworks/fitstack/pkg/histogram"
	"github.com/hepworks/fitstack/pkg/serializer"
)

// HistogramLoader retrieves the stored template histogram for one
// combination. Systematic and template are "Nominal" for the baseline.
type HistogramLoader func(region, sample, systematic, template string) (*histogram.Histogram, error)

// FileLoader reads histograms from a folder of JSON files keyed by the
// canonical template name.
func FileLoader(folder string) HistogramLoader {
	return func(region, sample, systematic, template string) (*histogram.Histogram, error) {
		path := filepath.Join(folder, histogram.Name(region, sample, systematic, template)+".json")
		h, err := serializer.FromFile[histogram.Histogram](path)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeNotFound,
				"cannot load template histogram", err,
				map[string]any{"path": path})
		}
		if err := h.Validate(); err != nil {
			return nil, err
		}
		return h, nil
	}
}

// CollectDataMC loads the nominal histogram of every configured sample in
// one region and assembles the data/MC figure from them.
func CollectDataMC(cfg *config.Config, region *config.Region, load HistogramLoader) (*DataMCFigure, error) {
	samples := make([]SampleHistogram, 0, len(cfg.Samples))
	for i := range cfg.Samples {
		sample := &cfg.Samples[i]
		h, err := load(region.Name, sample.Name, "Nominal", "Nominal")
		if err != nil {
			return nil, err
		}
		samples = append(samples, SampleHistogram{
			IsData:   sample.Data,
			Label:    displayLabel(sample.Name, sample.Label),
			Variable: region.Variable,
			Hist:     h,
		})
	}
	return DataMC(region.DisplayLabel(), samples)
}
