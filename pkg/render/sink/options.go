package sink

import (
	"path/filepath"
	"strings"

	errs "github.com/matzehuels/paperbox/pkg/errors"
	"github.com/matzehuels/paperbox/pkg/render/styles"
)

// Format names an output format.
type Format string

// Supported output formats.
const (
	FormatPDF  Format = "pdf"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJSON Format = "json"
)

// DefaultFormat is used when neither a flag nor the file extension selects
// a format.
const DefaultFormat = FormatPDF

// ValidFormats is the set of supported output formats.
var ValidFormats = map[Format]bool{
	FormatPDF:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !ValidFormats[f] {
		return "", errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: pdf, svg, png, json)", s)
	}
	return f, nil
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, bool) {
	f := Format(strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")))
	return f, ValidFormats[f]
}

// DefaultPNGScale renders two pixels per point.
const DefaultPNGScale = 2.0

// Option configures rendering.
type Option func(*renderer)

type renderer struct {
	styles styles.Set
	scale  float64
}

// WithStyles sets the stroke used for each segment kind.
func WithStyles(s styles.Set) Option { return func(r *renderer) { r.styles = s } }

// WithScale sets the PNG resolution in pixels per point.
func WithScale(s float64) Option { return func(r *renderer) { r.scale = s } }

func newRenderer(opts ...Option) renderer {
	r := renderer{styles: styles.Default(), scale: DefaultPNGScale}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
