package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/hepworks/fitstack/pkg/config"
	"github.com/hepworks/fitstack/pkg/logging"
	"github.com/hepworks/fitstack/pkg/serializer"
)

const (
	name           = "fitstack"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	configFlag = &cli.StringFlag{
		Name:     "config",
		Aliases:  []string{"c"},
		Usage:    "Path to the fit configuration file (YAML)",
		Required: true,
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", serializer.SupportedFormats()),
	}
	histogramsFlag = &cli.StringFlag{
		Name:  "histograms",
		Usage: "Folder holding stored template histograms (overrides General.HistogramFolder)",
	}
)

// New assembles the root command with all subcommands.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Visualization and template routing for binned-fit analyses",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) error {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Info("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"runID", uuid.NewString())
			return nil
		},
		Commands: []*cli.Command{
			validateCmd(),
			templatesCmd(),
			dataMCCmd(),
			yieldsCmd(),
		},
	}
}

// Execute runs the root command. It is called by main.main().
func Execute(ctx context.Context) {
	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %s)",
			format, serializer.SupportedFormats())
	}
	return format, nil
}

// loadConfig reads and validates the fit configuration named by --config.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load fit configuration from %q: %w", path, err)
	}
	return cfg, nil
}

// histogramFolder resolves the template histogram folder, preferring the
// --histograms flag over the configuration's General block.
func histogramFolder(cmd *cli.Command, cfg *config.Config) (string, error) {
	if folder := cmd.String("histograms"); folder != "" {
		return folder, nil
	}
	if cfg.General.HistogramFolder != "" {
		return cfg.General.HistogramFolder, nil
	}
	return "", fmt.Errorf("no histogram folder: set --histograms or General.HistogramFolder")
}

// serialize writes v to the --output target in the --format encoding.
func serialize(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, v)
}
