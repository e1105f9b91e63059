// Package render draws assembled figures to image files with gonum/plot.
// It implements the visualize.Renderer interface: stacked data/MC
// comparisons, template variation overlays, and correlation heatmaps.
// Output format follows the file extension (png, pdf, svg), and parent
// directories are created as needed.
package render
