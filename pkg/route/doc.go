// Package route dispatches template-processing callbacks during a fit
// configuration build.
//
// A Router holds ordered registries of processor specifications, one per
// processor kind. Each specification binds glob patterns for the region,
// sample, systematic, and template names to a callback. During template
// enumeration the router is asked, for every concrete combination, which
// registered callback (if any) overrides the default behavior.
//
// Registration happens during analysis setup:
//
//	router := route.NewRouter()
//	router.RegisterTemplateBuilder("ttbar_powheg", buildTtbar,
//	    route.WithSample("ttbar"),
//	    route.WithSystematic("generator"),
//	)
//
// Omitted qualifiers default to the wildcard "*", which matches anything.
// When several specifications match the same combination, the first
// registered one wins; the ambiguity is reported, not raised, so
// registration order is semantically meaningful.
//
// ApplyToAllTemplates walks every (region, sample, systematic, template)
// combination a configuration implies, in configuration order, and invokes
// either a matched override or the supplied default callback. The walk is
// strictly sequential: some callbacks have ordering-sensitive side effects.
package route
