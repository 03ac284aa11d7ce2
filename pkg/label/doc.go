// Package label places text annotations next to fixed data points so that
// no two labels, and no label and point marker, visually overlap.
//
// # Overview
//
// The solver receives a set of anchors (fixed data-space coordinates), the
// rendered dimensions of each label, and a repulsion configuration. It returns
// one positioned box per anchor plus connector segments for labels that ended
// up far from the point they describe.
//
// Placement uses an iterative force-directed relaxation: every overlapping
// pair of boxes (and every box overlapping a foreign point's exclusion zone)
// contributes a repulsive force proportional to the overlap depth. Forces are
// summed per label and applied as a bounded displacement each round until the
// layout converges or the iteration budget runs out.
//
// # Guarantees
//
//   - The solver always terminates within Config.MaxIterations and never
//     returns an error; a non-convergent layout is returned best-effort.
//   - Output is deterministic for a fixed input and configuration. Anchors
//     sharing identical coordinates are separated with an index-derived
//     jitter, not a random source.
//   - A layout that is already overlap-free is returned unchanged.
//
// # Usage
//
//	anchors := []label.Anchor{{ID: "a", X: 100, Y: 100}, {ID: "b", X: 104, Y: 101}}
//	sizes := []label.Size{{Width: 60, Height: 14}, {Width: 72, Height: 14}}
//	result := label.Solve(anchors, sizes, label.DefaultConfig())
//	for _, box := range result.Boxes {
//	    // box.X, box.Y is the label center in the same space as the anchors
//	}
package label
