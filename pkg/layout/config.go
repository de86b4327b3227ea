package layout

import (
	"math"
	"strings"

	errs "github.com/matzehuels/paperbox/pkg/errors"
)

const (
	// PointsPerMillimetre converts millimetres to PDF points (1/72 inch).
	PointsPerMillimetre = 72 / 25.4

	// DefaultMargin is the blank border around the net, in millimetres.
	DefaultMargin = 10.0

	// DefaultTabFraction is the tab depth relative to the box depth.
	DefaultTabFraction = 0.3

	// MaxTabFraction is exclusive: at 0.5 the tapered tab collapses to a
	// triangle.
	MaxTabFraction = 0.5
)

// Paper is a fixed sheet size in points. The zero value means the page is
// sized to fit the net.
type Paper struct {
	Name          string
	Width, Height float64
}

// Standard portrait sheets.
var (
	PaperA4     = Paper{Name: "a4", Width: 595.276, Height: 841.89}
	PaperLetter = Paper{Name: "letter", Width: 612, Height: 792}
)

// Fixed reports whether p names a real sheet.
func (p Paper) Fixed() bool { return p.Width > 0 && p.Height > 0 }

// Landscape returns p rotated by 90 degrees.
func (p Paper) Landscape() Paper {
	return Paper{Name: p.Name, Width: p.Height, Height: p.Width}
}

// ParsePaper looks up a paper size by name. The empty string and "fit"
// select a page sized to the net.
func ParsePaper(name string) (Paper, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fit":
		return Paper{}, nil
	case PaperA4.Name:
		return PaperA4, nil
	case PaperLetter.Name:
		return PaperLetter, nil
	}
	return Paper{}, errs.New(errs.ErrCodeInvalidConfig, "unknown paper size %q (must be 'a4' or 'letter')", name)
}

// Config holds the tunable parameters of the net.
type Config struct {
	// Margin is the blank border around the net, in units.
	Margin float64
	// TabFraction sets the tab depth as a fraction of the box depth.
	TabFraction float64
	// TabCreases adds a fold line where each tab meets its flap.
	TabCreases bool
	// PointsPerUnit scales input units to page points.
	PointsPerUnit float64
	// Paper fixes the page size. Zero means fit to the net.
	Paper Paper
}

// DefaultConfig returns the configuration for millimetre input on a page
// that fits the net.
func DefaultConfig() Config {
	return Config{
		Margin:        DefaultMargin,
		TabFraction:   DefaultTabFraction,
		PointsPerUnit: PointsPerMillimetre,
	}
}

// Validate checks that every field is in range.
func (c Config) Validate() error {
	if math.IsNaN(c.Margin) || math.IsInf(c.Margin, 0) || c.Margin < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "margin must be a non-negative number, got %g", c.Margin)
	}
	if !(c.TabFraction > 0 && c.TabFraction < MaxTabFraction) {
		return errs.New(errs.ErrCodeInvalidConfig, "tab fraction must be in (0, %g), got %g", MaxTabFraction, c.TabFraction)
	}
	if math.IsInf(c.PointsPerUnit, 0) || !(c.PointsPerUnit > 0) {
		return errs.New(errs.ErrCodeInvalidConfig, "points per unit must be positive, got %g", c.PointsPerUnit)
	}
	if c.Paper != (Paper{}) && !c.Paper.Fixed() {
		return errs.New(errs.ErrCodeInvalidConfig, "paper %q has no size", c.Paper.Name)
	}
	return nil
}

// Dimensions are the outer measurements of the box, in units.
type Dimensions struct {
	Width, Height, Depth float64
}

// Validate checks that all three dimensions are finite and positive.
func (d Dimensions) Validate() error {
	if err := errs.ValidateDimension("width", d.Width); err != nil {
		return err
	}
	if err := errs.ValidateDimension("height", d.Height); err != nil {
		return err
	}
	return errs.ValidateDimension("depth", d.Depth)
}
