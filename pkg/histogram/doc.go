// Package histogram provides the binned histogram value type exchanged
// between template builders, the routing layer, and the visualization code.
//
// A Histogram carries per-bin yields, per-bin standard deviations, and the
// bin edges. It round-trips through YAML/JSON for on-disk template storage
// and bridges from go-hep hbook histograms, which template builders
// typically fill.
package histogram
