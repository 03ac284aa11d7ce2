package chart

import (
	"fmt"
	"math"
	"strconv"
)

// targetTickCount is the tick density niceTicks aims for. The actual count
// varies with how the range divides into round steps.
const targetTickCount = 6

// Tick is one axis mark: the data value, its pixel position along the axis,
// and the rendered text.
type Tick struct {
	Value float64 `json:"value"`
	Pixel float64 `json:"pixel"`
	Text  string  `json:"text"`
}

// niceTicks places ticks at round values (1, 2 or 5 times a power of ten)
// covering the scale's domain.
func niceTicks(s Scale) []Tick {
	step := niceStep(s.DomainMax - s.DomainMin)
	first := math.Ceil(s.DomainMin/step) * step

	var ticks []Tick
	for v := first; v <= s.DomainMax+step*1e-9; v += step {
		// Snap near-zero values produced by float stepping.
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		ticks = append(ticks, Tick{
			Value: v,
			Pixel: s.Pixel(v),
			Text:  formatTick(v, step),
		})
	}
	return ticks
}

// niceStep picks the round step closest to span/targetTickCount.
func niceStep(span float64) float64 {
	raw := span / targetTickCount
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch {
	case raw/mag >= 5:
		return 5 * mag
	case raw/mag >= 2:
		return 2 * mag
	default:
		return mag
	}
}

// formatTick renders a tick value with just enough decimals for the step.
func formatTick(v, step float64) string {
	if step >= 1 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	decimals := int(math.Ceil(-math.Log10(step)))
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// tierTicks places one tick per discrete tier, rendered as "Tier N".
func tierTicks(s Scale, tiers []float64) []Tick {
	ticks := make([]Tick, len(tiers))
	for i, v := range tiers {
		ticks[i] = Tick{
			Value: v,
			Pixel: s.Pixel(v),
			Text:  fmt.Sprintf("Tier %d", int64(v)),
		}
	}
	return ticks
}
