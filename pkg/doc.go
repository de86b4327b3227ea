// Package pkg provides the libraries behind the paperbox command.
//
// # Overview
//
// Paperbox turns three box dimensions into the flat net of a lidless box,
// drawn as cut and fold lines on a printable page. The pkg directory is
// organized by stage:
//
//  1. [layout] - Net geometry (segments, page size, placement on paper)
//  2. [render] - Output formats and stroke styles
//  3. [pipeline] - Orchestration (validate → generate → render → write)
//  4. [errors] - Error codes shared by every stage
//  5. [observability] - Hooks around pipeline stages
//
// # Architecture
//
//	width, height, depth
//	         ↓
//	    [layout] package (net segments placed on a page)
//	         ↓
//	    [render/sink] package (PDF/SVG/PNG/JSON)
//	         ↓
//	    output file (written atomically)
//
// # Quick Start
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.Width, opts.Height, opts.Depth = 100, 50, 30
//	opts.Output = "box.pdf"
//	result, err := runner.Execute(ctx, opts)
//
// Or run the stages by hand:
//
//	l, err := layout.Generate(layout.Dimensions{Width: 100, Height: 50, Depth: 30}, layout.DefaultConfig())
//	svg := sink.RenderSVG(l)
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/paperbox/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/paperbox/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/paperbox/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/paperbox/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/paperbox/pkg/observability
package pkg
