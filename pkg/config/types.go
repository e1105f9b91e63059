package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Systematic type constants. The taxonomy is open: unknown types are
// accepted and treated like NormPlusShape during template enumeration.
const (
	SystematicNormalization = "Normalization"
	SystematicNormPlusShape = "NormPlusShape"
)

// StringList is a list of names that unmarshals from either a single YAML
// scalar or a sequence, so restrictions can be written as
//
//	Samples: signal
//
// or
//
//	Samples: [signal, background]
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*l = StringList{single}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*l = StringList(many)
		return nil
	default:
		return fmt.Errorf("expected scalar or sequence, got yaml kind %d", value.Kind)
	}
}

// Contains reports whether name is in the list.
func (l StringList) Contains(name string) bool {
	for _, entry := range l {
		if entry == name {
			return true
		}
	}
	return false
}

// General holds analysis-wide settings.
type General struct {
	Measurement     string `json:"Measurement" yaml:"Measurement"`
	POI             string `json:"POI,omitempty" yaml:"POI,omitempty"`
	HistogramFolder string `json:"HistogramFolder,omitempty" yaml:"HistogramFolder,omitempty"`
	InputPath       string `json:"InputPath,omitempty" yaml:"InputPath,omitempty"`
}

// Region describes one phase-space category with its own histograms.
type Region struct {
	Name     string    `json:"Name" yaml:"Name"`
	Variable string    `json:"Variable,omitempty" yaml:"Variable,omitempty"`
	Binning  []float64 `json:"Binning,omitempty" yaml:"Binning,omitempty"`
	Filter   string    `json:"Filter,omitempty" yaml:"Filter,omitempty"`
	Label    string    `json:"Label,omitempty" yaml:"Label,omitempty"`
}

// DisplayLabel returns the label shown on figures, falling back to the
// region name.
func (r *Region) DisplayLabel() string {
	if r.Label != "" {
		return r.Label
	}
	return r.Name
}

// Sample describes a data or simulated process contributing events.
type Sample struct {
	Name   string `json:"Name" yaml:"Name"`
	Label  string `json:"Label,omitempty" yaml:"Label,omitempty"`
	Data   bool   `json:"Data,omitempty" yaml:"Data,omitempty"`
	Tree   string `json:"Tree,omitempty" yaml:"Tree,omitempty"`
	Weight string `json:"Weight,omitempty" yaml:"Weight,omitempty"`
}

// NormFactor describes a free normalization parameter of the fit model.
type NormFactor struct {
	Name    string     `json:"Name" yaml:"Name"`
	Samples StringList `json:"Samples,omitempty" yaml:"Samples,omitempty"`
	Nominal float64    `json:"Nominal,omitempty" yaml:"Nominal,omitempty"`
	Bounds  []float64  `json:"Bounds,omitempty" yaml:"Bounds,omitempty"`
}

// TemplateSetting configures one varied template of a systematic.
type TemplateSetting struct {
	Normalization *float64 `json:"Normalization,omitempty" yaml:"Normalization,omitempty"`
	Symmetrize    bool     `json:"Symmetrize,omitempty" yaml:"Symmetrize,omitempty"`
}

// Systematic describes a source of uncertainty inducing up/down template
// variations. An empty Samples list means the systematic applies to every
// sample.
type Systematic struct {
	Name    string           `json:"Name" yaml:"Name"`
	Type    string           `json:"Type" yaml:"Type"`
	Samples StringList       `json:"Samples,omitempty" yaml:"Samples,omitempty"`
	Up      *TemplateSetting `json:"Up,omitempty" yaml:"Up,omitempty"`
	Down    *TemplateSetting `json:"Down,omitempty" yaml:"Down,omitempty"`
}

// AppliesTo reports whether the systematic applies to the named sample. A
// systematic applies unless it declares a Samples restriction that excludes
// the sample.
func (s *Systematic) AppliesTo(sampleName string) bool {
	if len(s.Samples) == 0 {
		return true
	}
	return s.Samples.Contains(sampleName)
}

// Config is the full declarative fit configuration. The order of Regions,
// Samples, and Systematics is significant: template enumeration follows it.
type Config struct {
	General     General      `json:"General" yaml:"General"`
	Regions     []Region     `json:"Regions" yaml:"Regions"`
	Samples     []Sample     `json:"Samples" yaml:"Samples"`
	NormFactors []NormFactor `json:"NormFactors,omitempty" yaml:"NormFactors,omitempty"`
	Systematics []Systematic `json:"Systematics,omitempty" yaml:"Systematics,omitempty"`
}

// Region returns the region with the given name, or nil.
func (c *Config) Region(name string) *Region {
	for i := range c.Regions {
		if c.Regions[i].Name == name {
			return &c.Regions[i]
		}
	}
	return nil
}

// Sample returns the sample with the given name, or nil.
func (c *Config) Sample(name string) *Sample {
	for i := range c.Samples {
		if c.Samples[i].Name == name {
			return &c.Samples[i]
		}
	}
	return nil
}

// DataSample returns the data sample, or nil if the configuration holds
// simulation only.
func (c *Config) DataSample() *Sample {
	for i := range c.Samples {
		if c.Samples[i].Data {
			return &c.Samples[i]
		}
	}
	return nil
}

// MCSamples returns all non-data samples in configuration order.
func (c *Config) MCSamples() []Sample {
	mc := make([]Sample, 0, len(c.Samples))
	for _, s := range c.Samples {
		if !s.Data {
			mc = append(mc, s)
		}
	}
	return mc
}
