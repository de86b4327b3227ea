package sink

import (
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"github.com/matzehuels/paperbox/pkg/layout"
	"github.com/matzehuels/paperbox/pkg/render/styles"
)

// pdfVersion is the version written to the file header. No ID is emitted
// below PDF 2.0, so equal layouts give byte-identical files.
const pdfVersion = pdf.V1_7

// writePDF draws the layout onto a single PDF page and saves it at path.
// PDF user space already has its origin at the lower-left corner, so
// segment coordinates are used unchanged.
func writePDF(path string, l layout.Layout, r renderer) error {
	paper := &pdf.Rectangle{URx: l.PageWidth, URy: l.PageHeight}
	page, err := document.CreateSinglePage(path, paper, pdfVersion, nil)
	if err != nil {
		return err
	}
	page.SetLineCap(graphics.LineCapRound)

	var current *styles.Stroke
	for _, s := range l.Segments {
		st := r.styles.For(s.Kind)
		if current == nil || !current.Equal(st) {
			page.SetLineWidth(st.Width)
			page.SetStrokeColor(color.DeviceGray.New(st.Gray))
			page.SetLineDash(st.Dash, 0)
			current = &st
		}
		page.MoveTo(s.From.X, s.From.Y)
		page.LineTo(s.To.X, s.To.Y)
		page.Stroke()
	}

	return page.Close()
}
