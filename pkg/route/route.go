package route

import (
	"fmt"
	"log/slog"

	"github.com/hepworks/fitstack/pkg/config"
	"github.com/hepworks/fitstack/pkg/errors"
	"github.com/hepworks/fitstack/pkg/histogram"
)

// Template identifies one template variation of a distribution.
type Template string

const (
	// TemplateNominal is the unvaried baseline template, enumerated once
	// per (region, sample) pair.
	TemplateNominal Template = "Nominal"
	// TemplateUp is the upward systematic variation.
	TemplateUp Template = "Up"
	// TemplateDown is the downward systematic variation.
	TemplateDown Template = "Down"
)

// TemplateBuilder produces the histogram for one (region, sample,
// systematic, template) combination.
type TemplateBuilder func(region *config.Region, sample *config.Sample, systematic *config.Systematic, template Template) (*histogram.Histogram, error)

// ProcessorFunc consumes one (region, sample, systematic, template)
// combination during enumeration.
type ProcessorFunc func(region *config.Region, sample *config.Sample, systematic *config.Systematic, template Template) error

// WrapperFunc adapts a raw template builder into the processor shape the
// enumeration expects, e.g. by storing the built histogram. The builder's
// identifying name is passed through for diagnostics.
type WrapperFunc func(name string, build TemplateBuilder) ProcessorFunc

// Processor is a wrapped callback retrieved from a lookup, keeping the
// original builder's identifying name so diagnostics stay traceable.
type Processor struct {
	Name string
	Run  ProcessorFunc
}

// Specification binds match patterns to a registered template builder.
// Empty qualifiers are normalized to the wildcard during registration.
type Specification struct {
	Region     string
	Sample     string
	Systematic string
	Template   string
	Name       string
	Build      TemplateBuilder
}

func (s *Specification) matches(region, sample, systematic, template string) (bool, error) {
	pairs := [...][2]string{
		{s.Region, region},
		{s.Sample, sample},
		{s.Systematic, systematic},
		{s.Template, template},
	}
	for _, p := range pairs {
		ok, err := Matches(p[0], p[1])
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// Registry is an ordered collection of specifications. Insertion order is
// the tie-break when multiple specifications match.
type Registry []Specification

// FindMatch scans the registry in insertion order and returns the first
// specification whose four patterns all match the concrete arguments. A nil
// result with nil error means no specification matched and the caller
// should fall back to its default. When several specifications match, the
// first registered one is returned and the ambiguity is logged.
func (r Registry) FindMatch(region, sample, systematic string, template Template) (*Specification, error) {
	lookupsTotal.Inc()

	var found []*Specification
	for i := range r {
		ok, err := r[i].matches(region, sample, systematic, string(template))
		if err != nil {
			return nil, err
		}
		if ok {
			found = append(found, &r[i])
		}
	}

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		slog.Debug("found a name match", "name", found[0].Name,
			"region", region, "sample", sample, "systematic", systematic, "template", template)
	default:
		ambiguousMatchesTotal.Inc()
		slog.Warn(fmt.Sprintf("found %d matches, continuing with the first one (%s)", len(found), found[0].Name),
			"region", region, "sample", sample, "systematic", systematic, "template", template)
	}
	return found[0], nil
}

// ProcessorKind tags a registry of processors. Only template builders exist
// today; the tag keeps room for further kinds without dynamic lookup.
type ProcessorKind string

// KindTemplateBuilder identifies the template builder registry.
const KindTemplateBuilder ProcessorKind = "template-builder"

// MatchOption qualifies a registration with a non-wildcard pattern.
type MatchOption func(*Specification)

// WithRegion restricts a registration to regions matching the pattern.
func WithRegion(pattern string) MatchOption {
	return func(s *Specification) { s.Region = pattern }
}

// WithSample restricts a registration to samples matching the pattern.
func WithSample(pattern string) MatchOption {
	return func(s *Specification) { s.Sample = pattern }
}

// WithSystematic restricts a registration to systematics matching the pattern.
func WithSystematic(pattern string) MatchOption {
	return func(s *Specification) { s.Systematic = pattern }
}

// WithTemplate restricts a registration to template variations matching the
// pattern, e.g. "Up".
func WithTemplate(pattern string) MatchOption {
	return func(s *Specification) { s.Template = pattern }
}

// Router owns one registry per processor kind plus the wrapper applied to
// template builders retrieved via lookup. A Router is constructed once per
// fit build, mutated only through registration calls during setup, and
// read-only while templates are enumerated.
type Router struct {
	registries map[ProcessorKind]Registry

	// TemplateBuilderWrapper adapts raw builders during lookup. It must be
	// set before FindTemplateBuilderMatch is called.
	TemplateBuilderWrapper WrapperFunc
}

// NewRouter creates a Router with an empty template builder registry and no
// wrapper.
func NewRouter() *Router {
	return &Router{
		registries: map[ProcessorKind]Registry{
			KindTemplateBuilder: {},
		},
	}
}

// TemplateBuilders returns the template builder registry in registration
// order.
func (r *Router) TemplateBuilders() Registry {
	return r.registries[KindTemplateBuilder]
}

// RegisterTemplateBuilder appends a specification for the named builder.
// Qualifiers left unset default to the wildcard, so an unqualified
// registration matches everything. The builder itself is stored unmodified
// and stays directly callable.
func (r *Router) RegisterTemplateBuilder(name string, build TemplateBuilder, opts ...MatchOption) {
	r.register(KindTemplateBuilder, name, build, opts...)
}

func (r *Router) register(kind ProcessorKind, name string, build TemplateBuilder, opts ...MatchOption) {
	spec := Specification{
		Region:     Wildcard,
		Sample:     Wildcard,
		Systematic: Wildcard,
		Template:   Wildcard,
		Name:       name,
		Build:      build,
	}
	for _, opt := range opts {
		opt(&spec)
	}
	r.registries[kind] = append(r.registries[kind], spec)

	slog.Debug("registered processor",
		"kind", string(kind),
		"name", spec.Name,
		"region", spec.Region,
		"sample", spec.Sample,
		"systematic", spec.Systematic,
		"template", spec.Template,
	)
}

// FindTemplateBuilderMatch looks up the template builder registered for the
// given combination and returns it wrapped with the configured wrapper,
// preserving the builder's identifying name. It returns nil without
// invoking the wrapper when nothing matches. Calling it before a wrapper is
// configured is a usage error reported immediately.
func (r *Router) FindTemplateBuilderMatch(region, sample, systematic string, template Template) (*Processor, error) {
	if r.TemplateBuilderWrapper == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "no template builder wrapper defined")
	}

	spec, err := r.registries[KindTemplateBuilder].FindMatch(region, sample, systematic, template)
	if err != nil || spec == nil {
		return nil, err
	}

	return &Processor{
		Name: spec.Name,
		Run:  r.TemplateBuilderWrapper(spec.Name, spec.Build),
	}, nil
}
