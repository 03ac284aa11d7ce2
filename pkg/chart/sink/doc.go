// Package sink renders a composed chart layout to output formats.
//
// Supported formats:
//   - SVG: hand-built vector output, the source format for everything else
//   - PNG: raster output at a configurable scale (requires rsvg-convert)
//   - PDF: print-ready output (requires rsvg-convert)
//   - JSON: the layout document itself, for caching and re-rendering
//
// PNG and PDF shell out to rsvg-convert from librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
package sink
