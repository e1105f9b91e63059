// Package serializer provides utilities for reading and writing structured
// fit data (configurations, template histograms, enumeration listings,
// yield tables) in various formats.
//
// The package supports three output formats:
//   - JSON: machine-readable structured data with proper indentation
//   - YAML: human-readable configuration format
//   - Table: human-readable tabular output with flattened keys
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	defer writer.Close()
//	if err := writer.Serialize(ctx, data); err != nil {
//	    log.Fatal(err)
//	}
//
// Reading is format-detected from file extensions:
//
//	hist, err := serializer.FromFile[histogram.Histogram]("SR_ttbar.yaml")
//
// File writers create missing parent directories; table format is
// write-only.
package serializer
