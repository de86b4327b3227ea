// Package pipeline runs the generate → render pipeline for a box net.
//
// The CLI and tests share this package so that defaults, validation and
// error codes are defined once.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.Width, opts.Height, opts.Depth = 100, 50, 30
//	opts.Output = "box.pdf"
//	result, err := runner.Execute(ctx, opts)
//
// Stages can also be run on their own:
//
//	l, err := runner.GenerateLayout(ctx, opts)
//	size, err := runner.Render(ctx, l, opts)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/paperbox/pkg/errors"
	"github.com/matzehuels/paperbox/pkg/layout"
	"github.com/matzehuels/paperbox/pkg/render/sink"
	"github.com/matzehuels/paperbox/pkg/render/styles"
)

// DefaultOutputName is the file written when no output path is given. The
// extension follows the selected format.
const DefaultOutputName = "paper_box"

// Options contains all configuration for one pipeline run.
type Options struct {
	// Box dimensions, in millimetres
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`

	// Layout options
	Margin      float64 `json:"margin"`
	TabFraction float64 `json:"tab_fraction"`
	TabCreases  bool    `json:"tab_creases,omitempty"`
	Paper       string  `json:"paper,omitempty"`

	// Render options
	Format   string     `json:"format,omitempty"`
	Output   string     `json:"output,omitempty"`
	Styles   styles.Set `json:"styles"`
	PNGScale float64    `json:"png_scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// DefaultOptions returns options with every tunable set to its default and
// the dimensions left at zero.
func DefaultOptions() Options {
	return Options{
		Margin:      layout.DefaultMargin,
		TabFraction: layout.DefaultTabFraction,
		Styles:      styles.Default(),
		PNGScale:    sink.DefaultPNGScale,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Layout layout.Layout
	Format sink.Format
	Path   string
	Size   int64
	Stats  Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Cuts       int
	Folds      int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// ValidateAndSetDefaults checks every field and fills in the format and
// output path. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.Dimensions().Validate(); err != nil {
		return err
	}
	if _, err := o.LayoutConfig(); err != nil {
		return err
	}
	if err := o.SetRenderDefaults(); err != nil {
		return err
	}
	if err := o.Styles.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetRenderDefaults resolves the output format and path.
//
// An explicit Format wins. Otherwise the extension of Output decides, and
// failing that [sink.DefaultFormat] is used. An empty Output becomes
// DefaultOutputName plus the format's extension.
func (o *Options) SetRenderDefaults() error {
	var format sink.Format
	switch {
	case o.Format != "":
		f, err := sink.ParseFormat(o.Format)
		if err != nil {
			return err
		}
		format = f
	default:
		if f, ok := sink.FormatFromPath(o.Output); ok {
			format = f
		} else {
			format = sink.DefaultFormat
		}
	}
	o.Format = string(format)

	if strings.TrimSpace(o.Output) == "" {
		o.Output = DefaultOutputName + "." + o.Format
	}
	if err := errs.ValidateOutputPath(o.Output); err != nil {
		return err
	}

	if o.PNGScale == 0 {
		o.PNGScale = sink.DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// Dimensions returns the box dimensions.
func (o *Options) Dimensions() layout.Dimensions {
	return layout.Dimensions{Width: o.Width, Height: o.Height, Depth: o.Depth}
}

// LayoutConfig builds and validates the generator configuration.
func (o *Options) LayoutConfig() (layout.Config, error) {
	paper, err := layout.ParsePaper(o.Paper)
	if err != nil {
		return layout.Config{}, err
	}
	cfg := layout.Config{
		Margin:        o.Margin,
		TabFraction:   o.TabFraction,
		TabCreases:    o.TabCreases,
		PointsPerUnit: layout.PointsPerMillimetre,
		Paper:         paper,
	}
	if err := cfg.Validate(); err != nil {
		return layout.Config{}, err
	}
	return cfg, nil
}

// SinkOptions returns the rendering options for the sink package.
func (o *Options) SinkOptions() []sink.Option {
	return []sink.Option{
		sink.WithStyles(o.Styles),
		sink.WithScale(o.PNGScale),
	}
}
