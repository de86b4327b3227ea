package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/paperbox/pkg/errors"
	"github.com/matzehuels/paperbox/pkg/layout"
	"github.com/matzehuels/paperbox/pkg/observability"
	"github.com/matzehuels/paperbox/pkg/render/sink"
)

// Runner executes pipeline stages. It holds no per-run state, so one Runner
// can serve any number of sequential runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs generate → render for opts and returns what was written.
// No file is created unless generation succeeds.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{Format: sink.Format(opts.Format), Path: opts.Output}

	layoutStart := time.Now()
	l, err := r.GenerateLayout(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Cuts = l.Count(layout.Cut)
	result.Stats.Folds = l.Count(layout.Fold)

	opts.Logger.Info("computed net",
		"cuts", result.Stats.Cuts,
		"folds", result.Stats.Folds,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	size, err := r.Render(ctx, l, opts)
	if err != nil {
		return nil, err
	}
	result.Size = size
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered page",
		"format", opts.Format,
		"path", opts.Output,
		"bytes", size,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateLayout validates the layout options and computes the net.
func (r *Runner) GenerateLayout(ctx context.Context, opts Options) (layout.Layout, error) {
	r.applyLogger(&opts)
	cfg, err := opts.LayoutConfig()
	if err != nil {
		return layout.Layout{}, err
	}
	d := opts.Dimensions()

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, d.Width, d.Height, d.Depth)
	start := time.Now()

	l, err := layout.Generate(d, cfg)
	hooks.OnLayoutComplete(ctx, len(l.Segments), time.Since(start), err)
	if err != nil {
		return layout.Layout{}, err
	}

	opts.Logger.Debug("net placed",
		"page_width", l.PageWidth,
		"page_height", l.PageHeight,
		"paper", cfg.Paper.Name,
		"tab_depth", cfg.TabFraction*d.Depth)
	if l.Overlaps() {
		opts.Logger.Debug("depth exceeds half of width or height, flaps may overlap",
			"width", d.Width, "height", d.Height, "depth", d.Depth)
	}
	return l, nil
}

// Render writes l to opts.Output and returns the size of the written file.
// A cancelled context stops the run before the destination is touched.
func (r *Runner) Render(ctx context.Context, l layout.Layout, opts Options) (int64, error) {
	r.applyLogger(&opts)
	if err := opts.SetRenderDefaults(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	format := sink.Format(opts.Format)
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format, opts.Output)
	start := time.Now()

	err := sink.Write(opts.Output, format, l, opts.SinkOptions()...)
	var size int64
	if err == nil {
		info, statErr := os.Stat(opts.Output)
		if statErr != nil {
			err = errs.Wrap(errs.ErrCodeOutputWrite, statErr, "stat %s", opts.Output)
		} else {
			size = info.Size()
		}
	}
	hooks.OnRenderComplete(ctx, opts.Format, opts.Output, size, time.Since(start), err)
	if err != nil {
		return 0, err
	}
	return size, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
