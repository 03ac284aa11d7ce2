// Package dataset loads tabular point data from JSON or CSV sources.
//
// # Input Formats
//
// JSON documents carry optional chart metadata alongside the points:
//
//	{
//	  "title": "Model Speed vs Quality",
//	  "xlabel": "Response Time (ms)",
//	  "ylabel": "Quality Tier",
//	  "points": [
//	    {"x": 556, "y": 4, "label": "llama-4-scout"},
//	    {"x": 666, "y": 5, "label": "gpt-4o-mini"}
//	  ]
//	}
//
// Documents are validated against an embedded JSON Schema before decoding,
// so malformed input fails with a precise location instead of a zero-value
// chart.
//
// CSV files are mapped through column-name heuristics: a column containing
// "label" or "name" becomes the label, "x"/"speed"/"time" becomes the x
// axis, and "y"/"quality"/"tier" becomes the y axis, all matched
// case-insensitively. When no header matches, columns 0, 1 and 2 are used
// in that order. Axis labels default to the matched header names.
//
// # Format Detection
//
// Load picks the reader from the file extension (.json/.csv) and falls back
// to content sniffing for anything else: input that parses as JSON is JSON,
// everything else is treated as CSV. LoadReader applies the same sniffing
// to streams (stdin).
package dataset
