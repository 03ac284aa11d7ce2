package chart

// domainPadding widens the data range on both sides so markers near the
// extremes keep clear of the plot frame.
const domainPadding = 0.05

// Scale is a linear mapping from a data interval to a pixel interval.
// Inverted pixel ranges (y axes) are expressed by pixelMax < pixelMin.
type Scale struct {
	DomainMin float64 `json:"domain_min"`
	DomainMax float64 `json:"domain_max"`
	PixelMin  float64 `json:"pixel_min"`
	PixelMax  float64 `json:"pixel_max"`
}

// NewScale builds a scale over the padded data range. A degenerate range
// (single value) is widened by one unit on each side so the mapping stays
// well defined.
func NewScale(dataMin, dataMax, pixelMin, pixelMax float64) Scale {
	if dataMin == dataMax {
		dataMin--
		dataMax++
	}
	pad := (dataMax - dataMin) * domainPadding
	return Scale{
		DomainMin: dataMin - pad,
		DomainMax: dataMax + pad,
		PixelMin:  pixelMin,
		PixelMax:  pixelMax,
	}
}

// Pixel maps a data value to pixel space.
func (s Scale) Pixel(v float64) float64 {
	t := (v - s.DomainMin) / (s.DomainMax - s.DomainMin)
	return s.PixelMin + t*(s.PixelMax-s.PixelMin)
}

// Value maps a pixel position back to data space.
func (s Scale) Value(px float64) float64 {
	t := (px - s.PixelMin) / (s.PixelMax - s.PixelMin)
	return s.DomainMin + t*(s.DomainMax-s.DomainMin)
}
