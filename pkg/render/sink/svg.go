package sink

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/paperbox/pkg/layout"
	"github.com/matzehuels/paperbox/pkg/render/styles"
)

// RenderSVG renders the layout as a standalone SVG document sized in points.
// SVG's y axis points down, so page coordinates are flipped.
func RenderSVG(l layout.Layout, opts ...Option) []byte {
	r := newRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%spt" height="%spt">`+"\n",
		num(l.PageWidth), num(l.PageHeight), num(l.PageWidth), num(l.PageHeight))
	fmt.Fprintf(&buf, "  <title>box net %s x %s x %s</title>\n",
		num(l.Dimensions.Width), num(l.Dimensions.Height), num(l.Dimensions.Depth))
	buf.WriteString(`  <rect width="100%" height="100%" fill="#ffffff"/>` + "\n")

	for _, s := range l.Segments {
		renderSVGLine(&buf, l.PageHeight, s, r.styles.For(s.Kind))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderSVGLine(buf *bytes.Buffer, pageHeight float64, s layout.Segment, st styles.Stroke) {
	fmt.Fprintf(buf, `  <line class="%s" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="round"`,
		s.Kind, num(s.From.X), num(pageHeight-s.From.Y), num(s.To.X), num(pageHeight-s.To.Y),
		grayHex(st.Gray), num(st.Width))
	if st.Dashed() {
		dash := make([]string, len(st.Dash))
		for i, d := range st.Dash {
			dash[i] = num(d)
		}
		fmt.Fprintf(buf, ` stroke-dasharray="%s"`, strings.Join(dash, " "))
	}
	buf.WriteString("/>\n")
}

// num formats a coordinate with at most three decimals and no trailing zeros.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func grayHex(g float64) string {
	v := uint8(math.Round(g * 255))
	return fmt.Sprintf("#%02x%02x%02x", v, v, v)
}
