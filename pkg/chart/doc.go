// Package chart composes a scatter-plot layout from a dataset.
//
// Build maps data coordinates onto a pixel canvas, measures label boxes with
// an approximate char-width text model, runs the label solver to push
// overlapping labels apart, and returns a serializable Layout: markers, label
// boxes, connectors, ticks and titles. Sinks under chart/sink turn a Layout
// into SVG, PNG, PDF or JSON.
//
// The y axis switches to a discrete "Tier N" scale when the data holds at
// most ten distinct integral y values, with one viridis ramp color per tier.
// Continuous data keeps numeric ticks and a single marker color.
package chart
