// Package visualize assembles figure and table data from template
// histograms: data/MC comparisons with stacked totals and ratio panels,
// systematic template comparisons, pruned correlation matrices, and yield
// tables. It prepares the numbers only; drawing is delegated to a Renderer
// implementation.
package visualize
