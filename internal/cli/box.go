package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	errs "github.com/matzehuels/paperbox/pkg/errors"
	"github.com/matzehuels/paperbox/pkg/layout"
	"github.com/matzehuels/paperbox/pkg/pipeline"
)

// boxOpts holds the command-line flags for the box command.
type boxOpts struct {
	output     string  // output file path
	format     string  // pdf, svg, png, json
	margin     float64 // margin around the net in mm
	tab        float64 // tab depth as a fraction of box depth
	tabCreases bool    // emit flap-to-tab creases
	paper      string  // "", a4, letter
	config     string  // TOML config file
	verbose    bool
	quiet      bool
}

// boxCommand creates the one and only paperbox command.
func (c *CLI) boxCommand() *cobra.Command {
	defaults := pipeline.DefaultOptions()
	opts := boxOpts{
		margin: defaults.Margin,
		tab:    defaults.TabFraction,
	}

	cmd := &cobra.Command{
		Use:   appName + " <width> <height> <depth>",
		Short: "Draw the cut and fold lines of a paper box",
		Long: `Paperbox draws the flat net of a lidless rectangular paper box.

Width, height and depth are outer box dimensions in millimetres. Solid lines
are cuts, dashed lines are folds. Glue the tabs to the inside of the
neighbouring flaps.`,
		Example: `  paperbox 100 50 30
  paperbox 100 50 30 -o box.svg
  paperbox 60 60 60 --paper a4 --tab 0.25 --tab-creases`,
		Args:          dimensionArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LogInfo
			switch {
			case opts.verbose:
				level = LogDebug
			case opts.quiet:
				level = LogWarn
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBox(cmd, args, &opts)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", `output file (default "paper_box.<format>")`)
	f.StringVarP(&opts.format, "format", "f", "", "output format: pdf, svg, png, json (default: from extension, else pdf)")
	f.Float64Var(&opts.margin, "margin", opts.margin, "margin around the net in mm")
	f.Float64Var(&opts.tab, "tab", opts.tab, "tab depth as a fraction of box depth")
	f.BoolVar(&opts.tabCreases, "tab-creases", false, "draw flap-to-tab creases as fold lines")
	f.StringVar(&opts.paper, "paper", "", "fixed paper size: a4, letter (default: fit to net)")
	f.StringVar(&opts.config, "config", "", "TOML configuration file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress the summary")

	return cmd
}

// dimensionArgs rejects anything but three positive numbers.
func dimensionArgs(cmd *cobra.Command, args []string) error {
	_, err := parseDimensions(args)
	return err
}

func parseDimensions(args []string) (layout.Dimensions, error) {
	if len(args) != 3 {
		return layout.Dimensions{}, errs.New(errs.ErrCodeInvalidDimension,
			"expected 3 arguments (width height depth), got %d", len(args))
	}
	var vals [3]float64
	for i, name := range []string{"width", "height", "depth"} {
		v, err := errs.ParseDimension(name, args[i])
		if err != nil {
			return layout.Dimensions{}, err
		}
		vals[i] = v
	}
	return layout.Dimensions{Width: vals[0], Height: vals[1], Depth: vals[2]}, nil
}

// negativeDimension reports a bare negative number among args as an invalid
// dimension. pflag would otherwise read "-30" as a shorthand flag. Values
// of flags that take an argument, as in "--margin -5", are skipped.
func negativeDimension(fs *pflag.FlagSet, args []string) error {
	var positional []string
	found := false
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(a) < 2 || a[0] != '-' {
			positional = append(positional, a)
			continue
		}
		if _, err := strconv.ParseFloat(a, 64); err == nil {
			positional = append(positional, a)
			found = true
			continue
		}
		if takesValue(fs, a) {
			i++
		}
	}
	if !found {
		return nil
	}
	_, err := parseDimensions(positional)
	return err
}

// takesValue reports whether arg is a flag whose value is the next argument.
func takesValue(fs *pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	var f *pflag.Flag
	switch {
	case strings.HasPrefix(arg, "--"):
		f = fs.Lookup(arg[2:])
	case len(arg) == 2:
		f = fs.ShorthandLookup(arg[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}

func (c *CLI) runBox(cmd *cobra.Command, args []string, flags *boxOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	d, err := parseDimensions(args)
	if err != nil {
		return err
	}

	opts := pipeline.DefaultOptions()
	opts.Width, opts.Height, opts.Depth = d.Width, d.Height, d.Depth
	if flags.config != "" {
		if err := loadConfig(flags.config, &opts); err != nil {
			return err
		}
		logger.Debug("loaded config", "path", flags.config)
	}
	applyFlags(cmd.Flags(), flags, &opts)
	opts.Logger = logger

	prog := newProgress(logger)
	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("Wrote " + result.Path)

	if !flags.quiet {
		printSummary(c.Stdout, result)
	}
	return nil
}

// applyFlags copies explicitly set flags over opts, so flags beat the
// config file and the config file beats the defaults.
func applyFlags(fs *pflag.FlagSet, flags *boxOpts, opts *pipeline.Options) {
	if fs.Changed("output") {
		opts.Output = flags.output
	}
	if fs.Changed("format") {
		opts.Format = flags.format
	}
	if fs.Changed("margin") {
		opts.Margin = flags.margin
	}
	if fs.Changed("tab") {
		opts.TabFraction = flags.tab
	}
	if fs.Changed("tab-creases") {
		opts.TabCreases = flags.tabCreases
	}
	if fs.Changed("paper") {
		opts.Paper = flags.paper
	}
}

func printSummary(w io.Writer, r *pipeline.Result) {
	l := r.Layout
	d := l.Dimensions
	printSuccess(w, "Box %s × %s × %s mm", mm(d.Width), mm(d.Height), mm(d.Depth))
	printKeyValue(w, "net", fmt.Sprintf("%s × %s mm",
		mm(l.Net.Width/layout.PointsPerMillimetre), mm(l.Net.Height/layout.PointsPerMillimetre)))
	printKeyValue(w, "page", fmt.Sprintf("%s × %s pt", pt(l.PageWidth), pt(l.PageHeight)))
	printCounts(w, r.Stats.Cuts, r.Stats.Folds)
	printFile(w, r.Path)
	if l.Overlaps() {
		printWarning(w, "depth exceeds half of width or height, flaps may overlap")
	}
}

// mm formats a length with at most two decimals, e.g. "160" or "12.5".
func mm(v float64) string { return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64) }

func pt(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }
