package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"
)

// configSummary is the validate command's report.
type configSummary struct {
	Measurement string   `json:"measurement" yaml:"measurement"`
	POI         string   `json:"poi,omitempty" yaml:"poi,omitempty"`
	Regions     []string `json:"regions" yaml:"regions"`
	Samples     []string `json:"samples" yaml:"samples"`
	DataSample  string   `json:"dataSample,omitempty" yaml:"dataSample,omitempty"`
	NormFactors []string `json:"normFactors,omitempty" yaml:"normFactors,omitempty"`
	Systematics []string `json:"systematics,omitempty" yaml:"systematics,omitempty"`
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate a fit configuration and report its content",
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

			summary := configSummary{
				Measurement: cfg.General.Measurement,
				POI:         cfg.General.POI,
			}
			for _, r := range cfg.Regions {
				summary.Regions = append(summary.Regions, r.Name)
			}
			for _, s := range cfg.Samples {
				summary.Samples = append(summary.Samples, s.Name)
			}
			if data := cfg.DataSample(); data != nil {
				summary.DataSample = data.Name
			}
			for _, n := range cfg.NormFactors {
				summary.NormFactors = append(summary.NormFactors, n.Name)
			}
			for _, s := range cfg.Systematics {
				summary.Systematics = append(summary.Systematics, s.Name)
			}

			slog.Info("configuration is valid",
				"regions", len(summary.Regions),
				"samples", len(summary.Samples),
				"systematics", len(summary.Systematics))

			return serialize(ctx, cmd, summary)
		},
	}
}
