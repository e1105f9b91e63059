package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hepworks/fitstack/pkg/errors"
)

// Parse unmarshals a YAML configuration and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, "failed to unmarshal fit configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads and validates a YAML configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, fmt.Sprintf("failed to read fit configuration %q", path), err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded fit configuration",
		"path", path,
		"measurement", cfg.General.Measurement,
		"regions", len(cfg.Regions),
		"samples", len(cfg.Samples),
		"systematics", len(cfg.Systematics),
	)

	return cfg, nil
}

// Validate checks internal consistency: unique names per collection, sane
// binning, at most one data sample, and applicability restrictions that
// refer to known samples.
func (c *Config) Validate() error {
	if len(c.Regions) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "configuration defines no regions")
	}
	if len(c.Samples) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "configuration defines no samples")
	}

	if err := uniqueNames("region", regionNames(c.Regions)); err != nil {
		return err
	}
	if err := uniqueNames("sample", sampleNames(c.Samples)); err != nil {
		return err
	}
	if err := uniqueNames("systematic", systematicNames(c.Systematics)); err != nil {
		return err
	}

	for i := range c.Regions {
		if err := validateBinning(&c.Regions[i]); err != nil {
			return err
		}
	}

	dataSamples := 0
	for _, s := range c.Samples {
		if s.Data {
			dataSamples++
		}
	}
	if dataSamples > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "configuration defines more than one data sample")
	}

	for _, syst := range c.Systematics {
		for _, name := range syst.Samples {
			if c.Sample(name) == nil {
				return errors.NewWithContext(errors.ErrCodeInvalidInput,
					fmt.Sprintf("systematic %q restricts to unknown sample %q", syst.Name, name),
					map[string]any{"systematic": syst.Name, "sample": name})
			}
		}
	}

	for _, nf := range c.NormFactors {
		for _, name := range nf.Samples {
			if c.Sample(name) == nil {
				return errors.NewWithContext(errors.ErrCodeInvalidInput,
					fmt.Sprintf("norm factor %q applies to unknown sample %q", nf.Name, name),
					map[string]any{"normfactor": nf.Name, "sample": name})
			}
		}
		if len(nf.Bounds) != 0 && len(nf.Bounds) != 2 {
			return errors.New(errors.ErrCodeInvalidInput,
				fmt.Sprintf("norm factor %q bounds must hold exactly two values", nf.Name))
		}
		if len(nf.Bounds) == 2 && nf.Bounds[0] >= nf.Bounds[1] {
			return errors.New(errors.ErrCodeInvalidInput,
				fmt.Sprintf("norm factor %q bounds are not increasing", nf.Name))
		}
	}

	return nil
}

func validateBinning(r *Region) error {
	if len(r.Binning) == 0 {
		return nil
	}
	if len(r.Binning) < 2 {
		return errors.New(errors.ErrCodeInvalidInput,
			fmt.Sprintf("region %q binning needs at least two edges", r.Name))
	}
	for i := 1; i < len(r.Binning); i++ {
		if r.Binning[i] <= r.Binning[i-1] {
			return errors.New(errors.ErrCodeInvalidInput,
				fmt.Sprintf("region %q binning edges are not strictly increasing", r.Name))
		}
	}
	return nil
}

func uniqueNames(kind string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("%s with empty name", kind))
		}
		if _, ok := seen[name]; ok {
			return errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("duplicate %s name %q", kind, name))
		}
		seen[name] = struct{}{}
	}
	return nil
}

func regionNames(regions []Region) []string {
	names := make([]string, len(regions))
	for i, r := range regions {
		names[i] = r.Name
	}
	return names
}

func sampleNames(samples []Sample) []string {
	names := make([]string, len(samples))
	for i, s := range samples {
		names[i] = s.Name
	}
	return names
}

func systematicNames(systematics []Systematic) []string {
	names := make([]string, len(systematics))
	for i, s := range systematics {
		names[i] = s.Name
	}
	return names
}
