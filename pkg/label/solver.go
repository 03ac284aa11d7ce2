package label

import "math"

// =============================================================================
// Configuration
// =============================================================================

// Default repulsion parameters. These match the tuning the tool shipped with
// and satisfy the convergence properties exercised by the test suite; they
// were chosen empirically, not derived.
const (
	DefaultExpandPoints  = 1.5
	DefaultExpandText    = 1.2
	DefaultForcePoints   = 0.5
	DefaultForceText     = 0.5
	DefaultPointRadius   = 5.0
	DefaultMaxIterations = 500
	DefaultMaxStep       = 10.0

	// convergeTol is the total-displacement threshold below which a round is
	// considered converged.
	convergeTol = 1e-2

	// minDimension replaces zero or negative label dimensions. Malformed
	// sizes are clamped, never rejected.
	minDimension = 1e-6

	// goldenAngle separates coincident centers deterministically: pair i is
	// pushed apart along direction i*goldenAngle.
	goldenAngle = 2.399963229728653
)

// Config controls the force-directed relaxation.
type Config struct {
	// ExpandText inflates label boxes during box-box overlap tests.
	ExpandText float64
	// ExpandPoints inflates point exclusion zones during box-point tests.
	ExpandPoints float64
	// ForceText scales the repulsion between overlapping label boxes.
	ForceText float64
	// ForcePoints scales the repulsion between a label box and a foreign
	// point's exclusion zone. A label never repels from its own anchor.
	ForcePoints float64
	// PointRadius is the marker radius, in the same units as the anchors.
	PointRadius float64
	// MaxIterations bounds the relaxation. Zero means no relaxation: boxes
	// stay centered on their anchors.
	MaxIterations int
	// MaxStep bounds the per-iteration displacement of a single box.
	MaxStep float64
	// ConnectorMinDist is the anchor-to-center distance beyond which a
	// connector segment is recorded. Zero selects an automatic threshold of
	// half the box diagonal.
	ConnectorMinDist float64
	// Bounds, when valid, keeps solved boxes inside the canvas.
	Bounds Bounds
}

// DefaultConfig returns the standard repulsion configuration.
func DefaultConfig() Config {
	return Config{
		ExpandText:    DefaultExpandText,
		ExpandPoints:  DefaultExpandPoints,
		ForceText:     DefaultForceText,
		ForcePoints:   DefaultForcePoints,
		PointRadius:   DefaultPointRadius,
		MaxIterations: DefaultMaxIterations,
		MaxStep:       DefaultMaxStep,
	}
}

// sanitize clamps nonsensical values so the solver always has a workable
// configuration. MaxIterations is left alone: zero is a meaningful request
// for the initial layout.
func (c *Config) sanitize() {
	if c.ExpandText <= 0 {
		c.ExpandText = DefaultExpandText
	}
	if c.ExpandPoints <= 0 {
		c.ExpandPoints = DefaultExpandPoints
	}
	if c.ForceText <= 0 {
		c.ForceText = DefaultForceText
	}
	if c.ForcePoints <= 0 {
		c.ForcePoints = DefaultForcePoints
	}
	if c.PointRadius < 0 {
		c.PointRadius = DefaultPointRadius
	}
	if c.MaxStep <= 0 {
		c.MaxStep = DefaultMaxStep
	}
	if c.MaxIterations < 0 {
		c.MaxIterations = 0
	}
}

// =============================================================================
// Result
// =============================================================================

// Result holds the solved layout.
type Result struct {
	// Boxes contains exactly one entry per input anchor, in input order.
	Boxes []Box
	// Connectors links displaced labels back to their anchors.
	Connectors []Connector
	// Iterations is the number of relaxation rounds actually run.
	Iterations int
	// Converged reports whether the layout settled before the budget ran out.
	Converged bool
}

// =============================================================================
// Solver
// =============================================================================

// Solve positions one label box per anchor, minimizing pairwise overlap.
// sizes[i] is the rendered dimension of anchors[i]'s label; missing or
// degenerate sizes are clamped to a minimum epsilon. Solve never fails: if
// the iteration budget is exhausted the best-effort layout is returned with
// Converged set to false.
func Solve(anchors []Anchor, sizes []Size, cfg Config) Result {
	cfg.sanitize()

	n := len(anchors)
	if n == 0 {
		return Result{Converged: true}
	}

	boxes := initialBoxes(anchors, sizes)
	if n == 1 || cfg.MaxIterations == 0 {
		return Result{
			Boxes:      boxes,
			Connectors: connectors(anchors, boxes, cfg),
			Converged:  n == 1,
		}
	}

	return relax(anchors, boxes, cfg)
}

// Relax resumes the relaxation from an existing set of boxes instead of the
// anchor-centered initial placement. Running Relax on a solved, overlap-free
// layout produces no further displacement. boxes must hold one entry per
// anchor; dimensions are clamped the same way Solve clamps them.
func Relax(anchors []Anchor, boxes []Box, cfg Config) Result {
	cfg.sanitize()

	if len(anchors) == 0 {
		return Result{Converged: true}
	}

	work := make([]Box, len(anchors))
	for i, a := range anchors {
		var b Box
		if i < len(boxes) {
			b = boxes[i]
		} else {
			b = Box{X: a.X, Y: a.Y}
		}
		b.AnchorID = a.ID
		b.Width = math.Max(b.Width, minDimension)
		b.Height = math.Max(b.Height, minDimension)
		work[i] = b
	}

	if len(anchors) == 1 || cfg.MaxIterations == 0 {
		return Result{
			Boxes:      work,
			Connectors: connectors(anchors, work, cfg),
			Converged:  len(anchors) == 1,
		}
	}

	return relax(anchors, work, cfg)
}

// relax runs the bounded force loop over boxes, mutating them in place.
func relax(anchors []Anchor, boxes []Box, cfg Config) Result {
	forces := make([]force, len(boxes))
	iterations := 0
	converged := false

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		iterations = iter + 1
		for i := range forces {
			forces[i] = force{}
		}

		accumulateTextForces(boxes, forces, cfg)
		accumulatePointForces(boxes, anchors, forces, cfg)

		total := applyForces(boxes, forces, cfg)
		if total < convergeTol {
			converged = true
			break
		}
	}

	return Result{
		Boxes:      boxes,
		Connectors: connectors(anchors, boxes, cfg),
		Iterations: iterations,
		Converged:  converged,
	}
}

// force is a transient per-label displacement accumulator.
type force struct {
	x, y float64
}

// initialBoxes centers every label on its anchor and clamps degenerate
// dimensions.
func initialBoxes(anchors []Anchor, sizes []Size) []Box {
	boxes := make([]Box, len(anchors))
	for i, a := range anchors {
		var s Size
		if i < len(sizes) {
			s = sizes[i]
		}
		boxes[i] = Box{
			AnchorID: a.ID,
			X:        a.X,
			Y:        a.Y,
			Width:    math.Max(s.Width, minDimension),
			Height:   math.Max(s.Height, minDimension),
		}
	}
	return boxes
}

// accumulateTextForces adds box-box repulsion. Each overlapping pair pushes
// both boxes apart along the axis of least overlap, half the depth each,
// scaled by ForceText. Boxes are inflated by ExpandText for the test so that
// labels keep a visual margin.
func accumulateTextForces(boxes []Box, forces []force, cfg Config) {
	for i := 0; i < len(boxes); i++ {
		bi := boxes[i].inflate(cfg.ExpandText)
		for j := i + 1; j < len(boxes); j++ {
			bj := boxes[j].inflate(cfg.ExpandText)
			fx, fy := separation(bi, bj, pairJitter(i, j))
			forces[i].x -= fx * cfg.ForceText
			forces[i].y -= fy * cfg.ForceText
			forces[j].x += fx * cfg.ForceText
			forces[j].y += fy * cfg.ForceText
		}
	}
}

// accumulatePointForces adds point-box repulsion. A box overlapping a foreign
// anchor's exclusion zone is pushed away from that anchor. A label is never
// repelled by its own anchor, so an isolated label stays centered on its
// point.
func accumulatePointForces(boxes []Box, anchors []Anchor, forces []force, cfg Config) {
	r := cfg.PointRadius * cfg.ExpandPoints
	if r <= 0 {
		return
	}
	for i := range boxes {
		for j, a := range anchors {
			if i == j {
				continue
			}
			zone := Box{X: a.X, Y: a.Y, Width: 2 * r, Height: 2 * r}
			fx, fy := separation(boxes[i], zone, pairJitter(i, j))
			forces[i].x -= fx * cfg.ForcePoints
			forces[i].y -= fy * cfg.ForcePoints
		}
	}
}

// separation returns the displacement that moves box a away from box b along
// the axis of least overlap, pointing from a toward b. Zero when the boxes
// are disjoint. When the centers coincide exactly the direction is
// undefined; jitterAngle breaks the tie deterministically.
func separation(a, b Box, jitterAngle float64) (float64, float64) {
	overlapX := math.Min(a.Right(), b.Right()) - math.Max(a.Left(), b.Left())
	overlapY := math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Top(), b.Top())
	if overlapX <= 0 || overlapY <= 0 {
		return 0, 0
	}

	dx := b.X - a.X
	dy := b.Y - a.Y
	if dx == 0 && dy == 0 {
		dx = math.Cos(jitterAngle)
		dy = math.Sin(jitterAngle)
		// Coincident centers: push along the jitter direction with the
		// smaller overlap as magnitude.
		depth := math.Min(overlapX, overlapY)
		return dx * depth / 2, dy * depth / 2
	}

	if overlapX < overlapY {
		return math.Copysign(overlapX/2, dx), 0
	}
	return 0, math.Copysign(overlapY/2, dy)
}

// pairJitter derives a stable tie-breaking angle for the pair (i, j).
func pairJitter(i, j int) float64 {
	return float64(i*31+j) * goldenAngle
}

// applyForces displaces every box by its accumulated force, clamped to
// MaxStep, and returns the total displacement magnitude for convergence
// detection.
func applyForces(boxes []Box, forces []force, cfg Config) float64 {
	total := 0.0
	for i := range boxes {
		fx, fy := forces[i].x, forces[i].y
		mag := math.Hypot(fx, fy)
		if mag == 0 {
			continue
		}
		if mag > cfg.MaxStep {
			fx *= cfg.MaxStep / mag
			fy *= cfg.MaxStep / mag
			mag = cfg.MaxStep
		}
		boxes[i].X += fx
		boxes[i].Y += fy
		clampToBounds(&boxes[i], cfg.Bounds)
		total += mag
	}
	return total
}

// clampToBounds keeps a box inside the canvas extent, when one is set.
func clampToBounds(b *Box, r Bounds) {
	if !r.Valid() {
		return
	}
	if b.Left() < r.MinX {
		b.X = r.MinX + b.Width/2
	}
	if b.Right() > r.MaxX {
		b.X = r.MaxX - b.Width/2
	}
	if b.Top() < r.MinY {
		b.Y = r.MinY + b.Height/2
	}
	if b.Bottom() > r.MaxY {
		b.Y = r.MaxY - b.Height/2
	}
}

// =============================================================================
// Connectors
// =============================================================================

// connectors records a segment from each anchor to the nearest edge point of
// its label box, for every label displaced beyond the connector threshold.
func connectors(anchors []Anchor, boxes []Box, cfg Config) []Connector {
	var out []Connector
	for i, a := range anchors {
		b := boxes[i]
		threshold := cfg.ConnectorMinDist
		if threshold <= 0 {
			threshold = math.Hypot(b.Width, b.Height) / 2
		}
		if math.Hypot(b.X-a.X, b.Y-a.Y) <= threshold {
			continue
		}
		if b.Contains(a.X, a.Y) {
			continue
		}
		ex, ey := edgePoint(b, a.X, a.Y)
		out = append(out, Connector{
			AnchorID: a.ID,
			X1:       a.X, Y1: a.Y,
			X2: ex, Y2: ey,
		})
	}
	return out
}

// edgePoint returns the intersection of the segment from the box center to
// (x, y) with the box boundary, i.e. the point the connector attaches to.
func edgePoint(b Box, x, y float64) (float64, float64) {
	dx := x - b.X
	dy := y - b.Y
	if dx == 0 && dy == 0 {
		return b.X, b.Y
	}

	t := math.Inf(1)
	if dx != 0 {
		t = (b.Width / 2) / math.Abs(dx)
	}
	if dy != 0 {
		ty := (b.Height / 2) / math.Abs(dy)
		if ty < t {
			t = ty
		}
	}
	if t > 1 {
		t = 1
	}
	return b.X + dx*t, b.Y + dy*t
}
