package chart

import (
	"fmt"
	"math"
)

// DefaultMarkerColor is used when the y axis is continuous.
const DefaultMarkerColor = "#4682b4" // steelblue

// viridisStops samples the viridis colormap at even intervals. Tier colors
// interpolate between neighboring stops.
var viridisStops = [][3]float64{
	{68, 1, 84},
	{72, 40, 120},
	{62, 74, 137},
	{49, 104, 142},
	{38, 130, 142},
	{31, 158, 137},
	{53, 183, 121},
	{109, 205, 89},
	{180, 222, 44},
	{253, 231, 37},
}

// viridis maps t in [0, 1] to a hex color along the viridis ramp.
func viridis(t float64) string {
	t = math.Max(0, math.Min(1, t))
	pos := t * float64(len(viridisStops)-1)
	i := int(pos)
	if i >= len(viridisStops)-1 {
		i = len(viridisStops) - 2
	}
	frac := pos - float64(i)

	a, b := viridisStops[i], viridisStops[i+1]
	r := a[0] + (b[0]-a[0])*frac
	g := a[1] + (b[1]-a[1])*frac
	bl := a[2] + (b[2]-a[2])*frac
	return fmt.Sprintf("#%02x%02x%02x", int(math.Round(r)), int(math.Round(g)), int(math.Round(bl)))
}

// tierColors assigns one viridis color per tier, low tiers dark, high tiers
// bright. A single tier gets the middle of the ramp.
func tierColors(tiers []float64) map[float64]string {
	colors := make(map[float64]string, len(tiers))
	if len(tiers) == 1 {
		colors[tiers[0]] = viridis(0.5)
		return colors
	}
	for i, v := range tiers {
		colors[v] = viridis(float64(i) / float64(len(tiers)-1))
	}
	return colors
}
