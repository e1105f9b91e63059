package route

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hepworks/fitstack/pkg/config"
	"github.com/hepworks/fitstack/pkg/errors"
	"github.com/hepworks/fitstack/pkg/histogram"
)

// captureLogs routes the default logger into a buffer for the duration of
// one test so log-side behavior can be asserted.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func constantBuilder(yield float64) TemplateBuilder {
	return func(_ *config.Region, _ *config.Sample, _ *config.Systematic, _ Template) (*histogram.Histogram, error) {
		return &histogram.Histogram{
			Yields: []float64{yield},
			Stdev:  []float64{0},
			Edges:  []float64{0, 1},
		}, nil
	}
}

func TestNewRouterEmpty(t *testing.T) {
	r := NewRouter()
	assert.Empty(t, r.TemplateBuilders())
	assert.Nil(t, r.TemplateBuilderWrapper)
}

func TestRegisterTemplateBuilderDefaults(t *testing.T) {
	r := NewRouter()
	r.RegisterTemplateBuilder("my_builder", constantBuilder(1))

	specs := r.TemplateBuilders()
	require.Len(t, specs, 1)
	assert.Equal(t, "my_builder", specs[0].Name)
	assert.Equal(t, Wildcard, specs[0].Region)
	assert.Equal(t, Wildcard, specs[0].Sample)
	assert.Equal(t, Wildcard, specs[0].Systematic)
	assert.Equal(t, Wildcard, specs[0].Template)
	require.NotNil(t, specs[0].Build)

	h, err := specs[0].Build(nil, nil, nil, TemplateNominal)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, h.Yields)
}

func TestRegisterTemplateBuilderOptions(t *testing.T) {
	r := NewRouter()
	r.RegisterTemplateBuilder("restricted", constantBuilder(1),
		WithRegion("Signal*"), WithSample("ttbar"), WithSystematic("JES"), WithTemplate("Up"))

	specs := r.TemplateBuilders()
	require.Len(t, specs, 1)
	assert.Equal(t, "Signal*", specs[0].Region)
	assert.Equal(t, "ttbar", specs[0].Sample)
	assert.Equal(t, "JES", specs[0].Systematic)
	assert.Equal(t, "Up", specs[0].Template)
}

func TestFindMatchNone(t *testing.T) {
	r := NewRouter()
	r.RegisterTemplateBuilder("signal_only", constantBuilder(1), WithSample("signal"))

	spec, err := r.TemplateBuilders().FindMatch("SR", "background", "Nominal", TemplateNominal)
	require.NoError(t, err)
	assert.Nil(t, spec)
}

func TestFindMatchSingle(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)

	r := NewRouter()
	r.RegisterTemplateBuilder("signal_only", constantBuilder(1), WithSample("signal"))
	r.RegisterTemplateBuilder("background_only", constantBuilder(2), WithSample("background"))

	spec, err := r.TemplateBuilders().FindMatch("SR", "signal", "Nominal", TemplateNominal)
	require.NoError(t, err)
	require.NotNil(t, spec)
	assert.Equal(t, "signal_only", spec.Name)
	assert.Empty(t, buf.String())
}

func TestFindMatchAmbiguousFirstWins(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)

	r := NewRouter()
	r.RegisterTemplateBuilder("first", constantBuilder(1))
	r.RegisterTemplateBuilder("second", constantBuilder(2))

	spec, err := r.TemplateBuilders().FindMatch("SR", "signal", "Nominal", TemplateNominal)
	require.NoError(t, err)
	require.NotNil(t, spec)
	assert.Equal(t, "first", spec.Name)
	assert.Contains(t, buf.String(), "found 2 matches, continuing with the first one (first)")
}

func TestFindMatchMalformedPattern(t *testing.T) {
	r := NewRouter()
	r.RegisterTemplateBuilder("broken", constantBuilder(1), WithRegion("[a-"))

	spec, err := r.TemplateBuilders().FindMatch("SR", "signal", "Nominal", TemplateNominal)
	assert.Nil(t, spec)
	require.Error(t, err)

	var serr *errors.StructuredError
	require.True(t, stderrors.As(err, &serr))
	assert.Equal(t, errors.ErrCodeMalformedPattern, serr.Code)
}

func TestFindTemplateBuilderMatchNoWrapper(t *testing.T) {
	r := NewRouter()
	r.RegisterTemplateBuilder("my_builder", constantBuilder(1))

	proc, err := r.FindTemplateBuilderMatch("SR", "signal", "Nominal", TemplateNominal)
	assert.Nil(t, proc)
	require.Error(t, err)

	var serr *errors.StructuredError
	require.True(t, stderrors.As(err, &serr))
	assert.Equal(t, errors.ErrCodeInvalidConfiguration, serr.Code)
	assert.Contains(t, serr.Message, "no template builder wrapper defined")

	// configuring a wrapper makes the same lookup succeed
	r.TemplateBuilderWrapper = func(name string, build TemplateBuilder) ProcessorFunc {
		return func(_ *config.Region, _ *config.Sample, _ *config.Systematic, _ Template) error { return nil }
	}
	proc, err = r.FindTemplateBuilderMatch("SR", "signal", "Nominal", TemplateNominal)
	require.NoError(t, err)
	require.NotNil(t, proc)
	assert.Equal(t, "my_builder", proc.Name)
}

func TestFindTemplateBuilderMatchNoMatch(t *testing.T) {
	wrapperCalls := 0
	r := NewRouter()
	r.TemplateBuilderWrapper = func(name string, build TemplateBuilder) ProcessorFunc {
		wrapperCalls++
		return func(_ *config.Region, _ *config.Sample, _ *config.Systematic, _ Template) error { return nil }
	}
	r.RegisterTemplateBuilder("signal_only", constantBuilder(1), WithSample("signal"))

	proc, err := r.FindTemplateBuilderMatch("SR", "background", "Nominal", TemplateNominal)
	require.NoError(t, err)
	assert.Nil(t, proc)
	assert.Zero(t, wrapperCalls, "wrapper must not run when nothing matched")
}

func TestFindTemplateBuilderMatchWraps(t *testing.T) {
	var built *histogram.Histogram
	r := NewRouter()
	r.TemplateBuilderWrapper = func(name string, build TemplateBuilder) ProcessorFunc {
		return func(region *config.Region, sample *config.Sample, systematic *config.Systematic, template Template) error {
			h, err := build(region, sample, systematic, template)
			if err != nil {
				return err
			}
			built = h
			return nil
		}
	}
	r.RegisterTemplateBuilder("my_builder", constantBuilder(7))

	proc, err := r.FindTemplateBuilderMatch("SR", "signal", "Nominal", TemplateNominal)
	require.NoError(t, err)
	require.NotNil(t, proc)
	assert.Equal(t, "my_builder", proc.Name)

	require.NoError(t, proc.Run(&config.Region{Name: "SR"}, &config.Sample{Name: "signal"}, &config.Systematic{Name: "Nominal"}, TemplateNominal))
	require.NotNil(t, built)
	assert.Equal(t, []float64{7}, built.Yields)
}
