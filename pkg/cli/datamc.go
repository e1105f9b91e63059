package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/hepworks/fitstack/pkg/render"
	"github.com/hepworks/fitstack/pkg/visualize"
)

func dataMCCmd() *cli.Command {
	return &cli.Command{
		Name:                  "datamc",
		EnableShellCompletion: true,
		Usage:                 "Render data/MC comparison figures for every region",
		Flags: []cli.Flag{
			configFlag,
			histogramsFlag,
			&cli.StringFlag{
				Name:  "figures",
				Value: "figures",
				Usage: "Folder receiving the rendered figures",
			},
			&cli.IntFlag{
				Name:  "workers",
				Value: 4,
				Usage: "Number of figures rendered concurrently",
			},
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
			renderer := render.New()
			figuresDir := cmd.String("figures")

			jobs := make([]render.Job, 0, len(cfg.Regions))
			for i := range cfg.Regions {
				region := &cfg.Regions[i]
				fig, err := visualize.CollectDataMC(cfg, region, load)
				if err != nil {
					return fmt.Errorf("failed to assemble figure for region %q: %w", region.Name, err)
				}
				slog.Info("assembled figure", "figure", fig.String(), "modelYield", fig.Sum())

				path := filepath.Join(figuresDir, region.Name+".png")
				jobs = append(jobs, render.Job{Name: region.Name, Run: func() error {
					return renderer.DataMC(fig, path)
				}})
			}

			if err := render.Batch(ctx, int(cmd.Int("workers")), jobs); err != nil {
				return err
			}
			slog.Info("figures rendered", "count", len(jobs), "folder", figuresDir)
			return nil
		},
	}
}
