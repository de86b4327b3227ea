// Package sink renders a box net [layout.Layout] into a printable page.
//
// # Overview
//
// A "sink" turns the segments of a layout into a single page in one output
// format:
//
//   - PDF: print-ready vector page (seehuhn.de/go/pdf)
//   - SVG: vector page for browsers and plotters
//   - PNG: raster preview (github.com/fogleman/gg)
//   - JSON: segment export for external tools
//
// Every segment is drawn exactly once with the [styles.Stroke] its kind maps
// to; by default cuts are solid black and folds are dashed grey. The page is
// exactly PageWidth × PageHeight points as computed by [layout.Generate].
//
// # Writing files
//
// [Write] is the entry point used by the pipeline:
//
//	err := sink.Write("box.pdf", sink.FormatPDF, l, sink.WithStyles(styles.Default()))
//
// Output is first written to a temporary file next to the destination and
// then renamed into place, so a failed run never leaves a truncated file.
// Failures are reported as OUTPUT_WRITE errors.
//
// The byte renderers [RenderSVG], [RenderPNG] and [RenderJSON] are exported
// for callers that want the data in memory. They are deterministic: the same
// layout always yields the same bytes.
//
// [layout.Layout]: github.com/matzehuels/paperbox/pkg/layout.Layout
// [layout.Generate]: github.com/matzehuels/paperbox/pkg/layout.Generate
// [styles.Stroke]: github.com/matzehuels/paperbox/pkg/render/styles.Stroke
package sink
