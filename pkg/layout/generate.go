package layout

import (
	errs "github.com/matzehuels/paperbox/pkg/errors"
)

// fitEpsilon absorbs rounding when comparing page sizes in points.
const fitEpsilon = 1e-6

// Layout is a box net placed on a page.
type Layout struct {
	Dimensions Dimensions

	// PageWidth and PageHeight are the page size in points.
	PageWidth, PageHeight float64

	// Margin is the requested border in points. On fixed paper the net is
	// centred, so the actual border may be larger.
	Margin float64

	// Net is the bounding box of the net on the page.
	Net BBox

	Segments []Segment
}

// Page returns the page rectangle.
func (l Layout) Page() BBox {
	return BBox{Width: l.PageWidth, Height: l.PageHeight}
}

// Bounds returns the bounding box of all segment endpoints.
func (l Layout) Bounds() BBox { return boundsOf(l.Segments) }

// Count returns the number of segments of kind k.
func (l Layout) Count(k Kind) int {
	n := 0
	for _, s := range l.Segments {
		if s.Kind == k {
			n++
		}
	}
	return n
}

// Overlaps reports whether depth exceeds half of width or height, in which
// case flaps may collide. The net is still generated.
func (l Layout) Overlaps() bool {
	d := l.Dimensions
	return d.Depth > d.Width/2 || d.Depth > d.Height/2
}

// Generate computes the net for d.
//
// It returns an INVALID_DIMENSION error if any dimension is not a finite
// positive number, INVALID_CONFIG if cfg is out of range, and
// LAYOUT_TOO_LARGE if cfg.Paper is fixed and the net plus margins does not
// fit it in either orientation. Generate is pure: equal inputs give equal
// layouts.
func Generate(d Dimensions, cfg Config) (Layout, error) {
	if err := d.Validate(); err != nil {
		return Layout{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Layout{}, err
	}

	ppu := cfg.PointsPerUnit
	netW := (d.Width + 2*d.Depth) * ppu
	netH := (d.Height + 2*d.Depth) * ppu
	margin := cfg.Margin * ppu

	pageW, pageH := netW+2*margin, netH+2*margin
	offset := Point{X: margin, Y: margin}

	if cfg.Paper.Fixed() {
		paper, ok := fitPaper(cfg.Paper, pageW, pageH)
		if !ok {
			return Layout{}, errs.New(errs.ErrCodeLayoutTooLarge,
				"net of %.1f x %.1f mm with %.1f mm margin does not fit %s paper",
				d.Width+2*d.Depth, d.Height+2*d.Depth, cfg.Margin, cfg.Paper.Name)
		}
		pageW, pageH = paper.Width, paper.Height
		offset = Point{X: (pageW - netW) / 2, Y: (pageH - netH) / 2}
	}

	// Net-local coordinates put the base at the origin, so the lower-left
	// corner of the net sits at (-depth, -depth).
	origin := Point{X: d.Depth, Y: d.Depth}
	local := netSegments(d, cfg)
	segs := make([]Segment, len(local))
	for i, s := range local {
		segs[i] = Segment{
			From: s.From.add(origin).scale(ppu).add(offset),
			To:   s.To.add(origin).scale(ppu).add(offset),
			Kind: s.Kind,
		}
	}

	return Layout{
		Dimensions: d,
		PageWidth:  pageW,
		PageHeight: pageH,
		Margin:     margin,
		Net:        BBox{X: offset.X, Y: offset.Y, Width: netW, Height: netH},
		Segments:   segs,
	}, nil
}

// fitPaper returns p in portrait or landscape, whichever holds a w × h page.
func fitPaper(p Paper, w, h float64) (Paper, bool) {
	for _, c := range []Paper{p, p.Landscape()} {
		if w <= c.Width+fitEpsilon && h <= c.Height+fitEpsilon {
			return c, true
		}
	}
	return Paper{}, false
}

// netSegments builds the net in net-local units with the base spanning
// (0,0)-(W,H).
func netSegments(d Dimensions, cfg Config) []Segment {
	w, h, dp := d.Width, d.Height, d.Depth
	t := cfg.TabFraction * dp

	outline := []Point{
		// bottom flap
		{0, -dp}, {w, -dp}, {w, 0},
		// right flap, lower tab
		{w + t, -t}, {w + dp - t, -t}, {w + dp, 0},
		// right flap, upper tab
		{w + dp, h}, {w + dp - t, h + t}, {w + t, h + t}, {w, h},
		// top flap
		{w, h + dp}, {0, h + dp}, {0, h},
		// left flap, upper tab
		{-t, h + t}, {-dp + t, h + t}, {-dp, h},
		// left flap, lower tab
		{-dp, 0}, {-dp + t, -t}, {-t, -t}, {0, 0},
		{0, -dp},
	}

	segs := make([]Segment, 0, len(outline)+7)
	for i := 1; i < len(outline); i++ {
		segs = append(segs, Segment{From: outline[i-1], To: outline[i], Kind: Cut})
	}

	fold := func(a, b Point) {
		segs = append(segs, Segment{From: a, To: b, Kind: Fold})
	}
	fold(Point{0, 0}, Point{w, 0})
	fold(Point{w, 0}, Point{w, h})
	fold(Point{w, h}, Point{0, h})
	fold(Point{0, h}, Point{0, 0})

	if cfg.TabCreases {
		fold(Point{w, 0}, Point{w + dp, 0})
		fold(Point{w + dp, h}, Point{w, h})
		fold(Point{0, h}, Point{-dp, h})
		fold(Point{-dp, 0}, Point{0, 0})
	}
	return segs
}
