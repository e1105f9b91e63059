package route

import (
	"log/slog"
	"time"

	"github.com/hepworks/fitstack/pkg/config"
)

// MatchFunc resolves an override processor for one combination, commonly
// backed by Router.FindTemplateBuilderMatch. A nil Processor with nil error
// means no override exists and the default applies.
type MatchFunc func(region, sample, systematic string, template Template) (*Processor, error)

// ApplyToAllTemplates walks every template combination the configuration
// implies and invokes a processor for each. Per (region, sample) pair the
// nominal template is visited first, followed by the Up and Down variations
// of every systematic that applies to the sample. A systematic applies
// unless its Samples restriction excludes the sample; every systematic
// type, Normalization included, derives exactly the Up and Down pair.
//
// When matchFn is non-nil it is consulted for every combination and a
// returned override replaces the default for that combination only. Errors
// from matchFn or from any processor abort the walk unmodified.
//
// The visit order is deterministic and follows the configuration's own
// ordering of regions, samples, and systematics.
func ApplyToAllTemplates(cfg *config.Config, defaultProc ProcessorFunc, matchFn MatchFunc) error {
	start := time.Now()
	defer func() {
		enumerationDuration.Observe(time.Since(start).Seconds())
	}()

	nominal := &config.Systematic{Name: string(TemplateNominal)}

	for ri := range cfg.Regions {
		region := &cfg.Regions[ri]
		for si := range cfg.Samples {
			sample := &cfg.Samples[si]

			type combination struct {
				systematic *config.Systematic
				template   Template
			}
			combinations := []combination{{nominal, TemplateNominal}}
			for yi := range cfg.Systematics {
				systematic := &cfg.Systematics[yi]
				if !systematic.AppliesTo(sample.Name) {
					continue
				}
				// every systematic type derives the Up/Down pair
				combinations = append(combinations,
					combination{systematic, TemplateUp},
					combination{systematic, TemplateDown},
				)
			}

			for _, comb := range combinations {
				proc := defaultProc
				if matchFn != nil {
					override, err := matchFn(region.Name, sample.Name, comb.systematic.Name, comb.template)
					if err != nil {
						return err
					}
					if override != nil {
						slog.Debug("applying override",
							"name", override.Name,
							"region", region.Name,
							"sample", sample.Name,
							"systematic", comb.systematic.Name,
							"template", comb.template,
						)
						proc = override.Run
					}
				}

				if err := proc(region, sample, comb.systematic, comb.template); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
