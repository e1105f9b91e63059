package histogram

import "strings"

// nominalTemplate is the template label that is elided from stored names.
const nominalTemplate = "Nominal"

// Name builds the canonical identifier under which a template histogram is
// stored. Parts are joined with underscores, spaces are replaced by dashes,
// and the nominal systematic/template labels are elided:
//
//	Name("signal_region", "ttbar", "modeling", "Up") == "signal_region_ttbar_modeling_Up"
//	Name("signal_region", "ttbar", "Nominal", "Nominal") == "signal_region_ttbar"
func Name(region, sample, systematic, template string) string {
	parts := []string{region, sample}
	if systematic != "" && systematic != nominalTemplate {
		parts = append(parts, systematic)
	}
	if template != "" && template != nominalTemplate {
		parts = append(parts, template)
	}
	return strings.ReplaceAll(strings.Join(parts, "_"), " ", "-")
}
