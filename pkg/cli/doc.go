// Package cli implements the command-line interface of the fitstack tool.
//
// # Commands
//
// validate - Check a fit configuration:
//
//	fitstack validate --config config.yaml [--output FILE] [--format json|yaml|table]
//
// Loads the declarative fit configuration, validates it, and prints a
// summary of regions, samples, and systematics.
//
// templates - Enumerate template combinations:
//
//	fitstack templates --config config.yaml [--output FILE] [--format json|yaml|table]
//
// Walks every (region, sample, systematic, template) combination the
// configuration implies, in enumeration order, and emits the list.
//
// datamc - Render data/MC comparison figures:
//
//	fitstack datamc --config config.yaml --histograms DIR --figures DIR
//
// Loads stored nominal template histograms for every region and renders a
// stacked data/MC figure per region.
//
// yields - Emit per-region yield tables:
//
//	fitstack yields --config config.yaml --histograms DIR [--format table]
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: json, yaml, table (default: json)
package cli
