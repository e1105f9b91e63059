package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hepworks/fitstack/pkg/visualize"
)

func yieldsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "yields",
		EnableShellCompletion: true,
		Usage:                 "Emit per-region yield tables from stored template histograms",
		Flags: []cli.Flag{
			configFlag,
			histogramsFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			folder, err := histogramFolder(cmd, cfg)
			if err != nil {
				return err
			}

			load := visualize.FileLoader(folder)

			tables := make([]*visualize.YieldTableData, 0, len(cfg.Regions))
			for i := range cfg.Regions {
				region := &cfg.Regions[i]

				samples := make([]visualize.SampleHistogram, 0, len(cfg.Samples))
				for j := range cfg.Samples {
					sample := &cfg.Samples[j]
					h, err := load(region.Name, sample.Name, "Nominal", "Nominal")
					if err != nil {
						return err
					}
					samples = append(samples, visualize.SampleHistogram{
						IsData:   sample.Data,
						Label:    sample.Name,
						Variable: region.Variable,
						Hist:     h,
					})
				}

				table, err := visualize.YieldTable(region.Name, samples)
				if err != nil {
					return fmt.Errorf("failed to build yield table for region %q: %w", region.Name, err)
				}
				tables = append(tables, table)
			}

			return serialize(ctx, cmd, tables)
		},
	}
}
