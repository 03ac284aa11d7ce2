package chart

import (
	"unicode/utf8"

	"github.com/labelplot/labelplot/pkg/label"
)

// Approximate text metrics. Real glyph widths vary per font, but a flat
// char-width model sized against common sans-serif fonts is close enough to
// reserve label space without a font rasterizer.
const (
	labelFontSize  = 12.0
	fontCharWidth  = 0.6  // width of one glyph as a fraction of font size
	labelPaddingX  = 5.0  // horizontal box padding on each side
	labelPaddingY  = 3.0  // vertical box padding on each side
	minLabelWidth  = 12.0 // empty labels still get a visible box
	labelMaxLength = 40   // longer labels are truncated with an ellipsis
)

// measureLabel returns the box size reserved for a label string.
func measureLabel(text string) label.Size {
	n := utf8.RuneCountInString(truncateLabel(text))
	if n == 0 {
		n = 1
	}
	w := float64(n)*labelFontSize*fontCharWidth + 2*labelPaddingX
	if w < minLabelWidth {
		w = minLabelWidth
	}
	return label.Size{
		Width:  w,
		Height: labelFontSize + 2*labelPaddingY,
	}
}

// truncateLabel caps label text so one pathological row cannot dominate the
// layout. It counts and cuts on runes, never mid-character.
func truncateLabel(text string) string {
	runes := []rune(text)
	if len(runes) <= labelMaxLength {
		return text
	}
	return string(runes[:labelMaxLength-2]) + ".."
}
