package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	errs "github.com/matzehuels/paperbox/pkg/errors"
	"github.com/matzehuels/paperbox/pkg/layout"
)

// maxPNGSide caps the raster size so a huge box cannot exhaust memory.
const maxPNGSide = 16384

// RenderPNG rasterizes the layout on a white background.
// The image is PageWidth × PageHeight points times the scale set by
// [WithScale] (default [DefaultPNGScale]).
func RenderPNG(l layout.Layout, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	if !(r.scale > 0) || math.IsInf(r.scale, 0) {
		return nil, errs.New(errs.ErrCodeInvalidConfig, "png scale must be positive, got %g", r.scale)
	}

	w := int(math.Ceil(l.PageWidth * r.scale))
	h := int(math.Ceil(l.PageHeight * r.scale))
	if w <= 0 || h <= 0 || w > maxPNGSide || h > maxPNGSide {
		return nil, errs.New(errs.ErrCodeLayoutTooLarge, "png of %d x %d pixels exceeds %d pixels per side", w, h, maxPNGSide)
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetLineCapRound()

	// gg's y axis points down.
	px := func(p layout.Point) (float64, float64) {
		return p.X * r.scale, (l.PageHeight - p.Y) * r.scale
	}

	for _, s := range l.Segments {
		st := r.styles.For(s.Kind)
		dc.SetRGB(st.Gray, st.Gray, st.Gray)
		dc.SetLineWidth(st.Width * r.scale)
		if st.Dashed() {
			dash := make([]float64, len(st.Dash))
			for i, d := range st.Dash {
				dash[i] = d * r.scale
			}
			dc.SetDash(dash...)
		} else {
			dc.SetDash()
		}
		x1, y1 := px(s.From)
		x2, y2 := px(s.To)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}
