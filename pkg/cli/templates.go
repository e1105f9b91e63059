package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hepworks/fitstack/pkg/config"
	"github.com/hepworks/fitstack/pkg/histogram"
	"github.com/hepworks/fitstack/pkg/route"
)

// templateEntry is one enumerated combination.
type templateEntry struct {
	Region     string `json:"region" yaml:"region"`
	Sample     string `json:"sample" yaml:"sample"`
	Systematic string `json:"systematic" yaml:"systematic"`
	Template   string `json:"template" yaml:"template"`
	Histogram  string `json:"histogram" yaml:"histogram"`
}

func templatesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "templates",
		EnableShellCompletion: true,
		Usage:                 "List every template combination the configuration implies",
		Description: `Walks the configuration the same way a fit build does: per region and
sample the nominal template first, then the Up and Down variations of every
applicable systematic. The histogram column shows the canonical name under
which the template is stored.`,
		Flags: []cli.Flag{
			configFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			var entries []templateEntry
			collect := func(region *config.Region, sample *config.Sample, systematic *config.Systematic, template route.Template) error {
				entries = append(entries, templateEntry{
					Region:     region.Name,
					Sample:     sample.Name,
					Systematic: systematic.Name,
					Template:   string(template),
					Histogram:  histogram.Name(region.Name, sample.Name, systematic.Name, string(template)),
				})
				return nil
			}
			if err := route.ApplyToAllTemplates(cfg, collect, nil); err != nil {
				return err
			}

			return serialize(ctx, cmd, entries)
		},
	}
}
