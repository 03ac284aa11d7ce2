package label

import "math"

// =============================================================================
// Anchor and Box
// =============================================================================

// Anchor is a fixed data location that a label annotates. Anchors never move
// during solving.
type Anchor struct {
	ID string
	X  float64
	Y  float64
}

// Size holds the rendered dimensions of a label's text, computed externally
// from text metrics.
type Size struct {
	Width  float64
	Height float64
}

// Box is a positioned label. X and Y are the center of the axis-aligned
// bounding box.
type Box struct {
	AnchorID string  `json:"anchor_id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// Left returns the minimum x coordinate of the box.
func (b Box) Left() float64 { return b.X - b.Width/2 }

// Right returns the maximum x coordinate of the box.
func (b Box) Right() float64 { return b.X + b.Width/2 }

// Top returns the minimum y coordinate of the box.
func (b Box) Top() float64 { return b.Y - b.Height/2 }

// Bottom returns the maximum y coordinate of the box.
func (b Box) Bottom() float64 { return b.Y + b.Height/2 }

// Overlaps reports whether two boxes intersect with positive area.
func (b Box) Overlaps(o Box) bool {
	return b.Left() < o.Right() && o.Left() < b.Right() &&
		b.Top() < o.Bottom() && o.Top() < b.Bottom()
}

// OverlapArea returns the intersection area of two boxes, zero if disjoint.
func (b Box) OverlapArea(o Box) float64 {
	w := math.Min(b.Right(), o.Right()) - math.Max(b.Left(), o.Left())
	h := math.Min(b.Bottom(), o.Bottom()) - math.Max(b.Top(), o.Top())
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// inflate returns a copy of the box scaled about its center by factor.
func (b Box) inflate(factor float64) Box {
	b.Width *= factor
	b.Height *= factor
	return b
}

// Contains reports whether the point (x, y) lies inside the box.
func (b Box) Contains(x, y float64) bool {
	return x >= b.Left() && x <= b.Right() && y >= b.Top() && y <= b.Bottom()
}

// =============================================================================
// Connector
// =============================================================================

// Connector is a line segment from an anchor to the edge of its displaced
// label box. Renderers typically draw these as thin arrows.
type Connector struct {
	AnchorID string  `json:"anchor_id"`
	X1       float64 `json:"x1"`
	Y1       float64 `json:"y1"`
	X2       float64 `json:"x2"`
	Y2       float64 `json:"y2"`
}

// =============================================================================
// Bounds
// =============================================================================

// Bounds is an optional canvas extent that solved boxes are kept inside.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Valid reports whether the bounds describe a non-empty area.
func (r Bounds) Valid() bool { return r.MaxX > r.MinX && r.MaxY > r.MinY }
