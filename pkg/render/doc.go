// Package render groups the output side of paperbox.
//
// # Overview
//
// A [layout.Layout] is a list of cut and fold segments on a page. Rendering
// draws each segment with the stroke its kind maps to:
//
//   - [sink]: Output formats (PDF, SVG, PNG, JSON) and atomic file writes
//   - [styles]: Stroke width, gray level and dash pattern per segment kind
//
// Cuts are solid and folds are dashed by default, so the two stay
// distinguishable when printed in black and white.
//
//	l, err := layout.Generate(d, layout.DefaultConfig())
//	err = sink.Write("box.pdf", sink.FormatPDF, l, sink.WithStyles(styles.Default()))
//
// [layout.Layout]: github.com/matzehuels/paperbox/pkg/layout
// [sink]: github.com/matzehuels/paperbox/pkg/render/sink
// [styles]: github.com/matzehuels/paperbox/pkg/render/styles
package render
