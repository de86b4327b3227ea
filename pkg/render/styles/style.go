// Package styles defines how each kind of net segment is stroked.
//
// A [Set] maps [layout.Kind] to a [Stroke]. Every sink draws a segment with
// exactly the stroke its kind maps to, so cut and fold lines stay
// distinguishable on paper, on screen and in exported data.
package styles

import (
	"fmt"
	"math"
	"slices"

	errs "github.com/matzehuels/paperbox/pkg/errors"
	"github.com/matzehuels/paperbox/pkg/layout"
)

// Stroke describes a line style. Lengths are in points.
type Stroke struct {
	Width float64   `toml:"width" json:"width"`
	Gray  float64   `toml:"gray" json:"gray"` // 0 is black, 1 is white
	Dash  []float64 `toml:"dash" json:"dash,omitempty"`
}

// Equal reports whether s and o draw the same line.
func (s Stroke) Equal(o Stroke) bool {
	return s.Width == o.Width && s.Gray == o.Gray && slices.Equal(s.Dash, o.Dash)
}

// Dashed reports whether the stroke has a dash pattern.
func (s Stroke) Dashed() bool { return len(s.Dash) > 0 }

// Validate checks the stroke is drawable.
func (s Stroke) Validate() error {
	if math.IsNaN(s.Width) || math.IsInf(s.Width, 0) || s.Width <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "stroke width must be positive, got %g", s.Width)
	}
	if !(s.Gray >= 0 && s.Gray <= 1) {
		return errs.New(errs.ErrCodeInvalidConfig, "stroke gray must be in [0, 1], got %g", s.Gray)
	}
	total := 0.0
	for _, d := range s.Dash {
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return errs.New(errs.ErrCodeInvalidConfig, "dash lengths must be non-negative, got %v", s.Dash)
		}
		total += d
	}
	if len(s.Dash) > 0 && total == 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "dash pattern %v has zero length", s.Dash)
	}
	return nil
}

// Set holds one stroke per segment kind.
type Set struct {
	Cut  Stroke `toml:"cut" json:"cut"`
	Fold Stroke `toml:"fold" json:"fold"`
}

// Default returns solid black cut lines and dashed grey fold lines.
func Default() Set {
	return Set{
		Cut:  Stroke{Width: 0.8, Gray: 0},
		Fold: Stroke{Width: 0.5, Gray: 0.45, Dash: []float64{4, 3}},
	}
}

// For returns the stroke used for segments of kind k.
func (s Set) For(k layout.Kind) Stroke {
	switch k {
	case layout.Fold:
		return s.Fold
	default:
		return s.Cut
	}
}

// Validate checks both strokes and that cuts and folds can be told apart.
func (s Set) Validate() error {
	if err := s.Cut.Validate(); err != nil {
		return fmt.Errorf("cut: %w", err)
	}
	if err := s.Fold.Validate(); err != nil {
		return fmt.Errorf("fold: %w", err)
	}
	if s.Cut.Equal(s.Fold) {
		return errs.New(errs.ErrCodeInvalidConfig, "cut and fold strokes are identical")
	}
	return nil
}
