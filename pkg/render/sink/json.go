package sink

import (
	"encoding/json"

	"github.com/matzehuels/paperbox/pkg/layout"
	"github.com/matzehuels/paperbox/pkg/render/styles"
)

type jsonOutput struct {
	Unit       string         `json:"unit"`
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	Margin     float64        `json:"margin"`
	Dimensions jsonDimensions `json:"dimensions"`
	Net        jsonBox        `json:"net"`
	Styles     styles.Set     `json:"styles"`
	Counts     map[string]int `json:"counts"`
	Segments   []jsonSegment  `json:"segments"`
}

type jsonDimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

type jsonBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonSegment struct {
	Kind string  `json:"kind"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	X2   float64 `json:"x2"`
	Y2   float64 `json:"y2"`
}

// RenderJSON exports the layout as pretty-printed JSON.
//
// Page, net and segment coordinates are in points with the origin at the
// lower-left page corner; dimensions are in the input unit. Segments keep
// the generator's order. The stroke styles are included so consumers can
// reproduce the printed page.
func RenderJSON(l layout.Layout, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)

	out := jsonOutput{
		Unit:   "pt",
		Width:  l.PageWidth,
		Height: l.PageHeight,
		Margin: l.Margin,
		Dimensions: jsonDimensions{
			Width:  l.Dimensions.Width,
			Height: l.Dimensions.Height,
			Depth:  l.Dimensions.Depth,
		},
		Net:    jsonBox{X: l.Net.X, Y: l.Net.Y, Width: l.Net.Width, Height: l.Net.Height},
		Styles: r.styles,
		Counts: map[string]int{
			layout.Cut.String():  l.Count(layout.Cut),
			layout.Fold.String(): l.Count(layout.Fold),
		},
		Segments: make([]jsonSegment, len(l.Segments)),
	}
	for i, s := range l.Segments {
		out.Segments[i] = jsonSegment{
			Kind: s.Kind.String(),
			X1:   s.From.X, Y1: s.From.Y,
			X2: s.To.X, Y2: s.To.Y,
		}
	}

	return json.MarshalIndent(out, "", "  ")
}
