package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hepworks/fitstack/pkg/errors"
)

const exampleConfig = `
General:
  Measurement: minimal_example
  POI: Signal_norm
  HistogramFolder: histograms/
Regions:
  - Name: signal_region
    Variable: jet_pt
    Binning: [200, 300, 400, 500]
    Label: Signal region
Samples:
  - Name: data
    Data: true
  - Name: signal
    Label: Signal
  - Name: background
NormFactors:
  - Name: Signal_norm
    Samples: signal
    Nominal: 1.0
    Bounds: [0, 10]
Systematics:
  - Name: luminosity
    Type: Normalization
  - Name: modeling
    Type: NormPlusShape
    Samples: background
  - Name: weight_based
    Type: NormPlusShape
    Samples: [signal, background]
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(exampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "minimal_example", cfg.General.Measurement)
	require.Len(t, cfg.Regions, 1)
	assert.Equal(t, []float64{200, 300, 400, 500}, cfg.Regions[0].Binning)
	assert.Equal(t, "Signal region", cfg.Regions[0].DisplayLabel())

	require.Len(t, cfg.Samples, 3)
	assert.True(t, cfg.Samples[0].Data)

	// scalar restriction becomes a one-element list
	require.Len(t, cfg.Systematics, 3)
	assert.Equal(t, StringList{"background"}, cfg.Systematics[1].Samples)
	assert.Equal(t, StringList{"signal", "background"}, cfg.Systematics[2].Samples)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("Regions: [unclosed"))
	require.Error(t, err)

	var serr *errors.StructuredError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, errors.ErrCodeInvalidInput, serr.Code)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(exampleConfig), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "signal_region", cfg.Regions[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSystematicAppliesTo(t *testing.T) {
	unrestricted := Systematic{Name: "luminosity", Type: SystematicNormalization}
	assert.True(t, unrestricted.AppliesTo("signal"))
	assert.True(t, unrestricted.AppliesTo("background"))

	restricted := Systematic{Name: "modeling", Samples: StringList{"background"}}
	assert.True(t, restricted.AppliesTo("background"))
	assert.False(t, restricted.AppliesTo("signal"))
}

func TestConfigAccessors(t *testing.T) {
	cfg, err := Parse([]byte(exampleConfig))
	require.NoError(t, err)

	require.NotNil(t, cfg.Region("signal_region"))
	assert.Nil(t, cfg.Region("unknown"))

	require.NotNil(t, cfg.Sample("signal"))
	assert.Nil(t, cfg.Sample("unknown"))

	data := cfg.DataSample()
	require.NotNil(t, data)
	assert.Equal(t, "data", data.Name)

	mc := cfg.MCSamples()
	require.Len(t, mc, 2)
	assert.Equal(t, "signal", mc[0].Name)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Parse([]byte(exampleConfig))
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "no regions",
			mutate:  func(c *Config) { c.Regions = nil },
			wantErr: "no regions",
		},
		{
			name:    "no samples",
			mutate:  func(c *Config) { c.Samples = nil },
			wantErr: "no samples",
		},
		{
			name:    "duplicate sample names",
			mutate:  func(c *Config) { c.Samples[2].Name = "signal" },
			wantErr: `duplicate sample name "signal"`,
		},
		{
			name:    "single binning edge",
			mutate:  func(c *Config) { c.Regions[0].Binning = []float64{200} },
			wantErr: "at least two edges",
		},
		{
			name:    "non-increasing binning",
			mutate:  func(c *Config) { c.Regions[0].Binning = []float64{200, 200, 300} },
			wantErr: "not strictly increasing",
		},
		{
			name:    "two data samples",
			mutate:  func(c *Config) { c.Samples[1].Data = true },
			wantErr: "more than one data sample",
		},
		{
			name:    "unknown systematic restriction",
			mutate:  func(c *Config) { c.Systematics[1].Samples = StringList{"ghost"} },
			wantErr: `unknown sample "ghost"`,
		},
		{
			name:    "norm factor bad bounds",
			mutate:  func(c *Config) { c.NormFactors[0].Bounds = []float64{10, 0} },
			wantErr: "not increasing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
