package layout

import (
	"fmt"
	"math"
)

// Kind tells whether a segment is cut or creased.
type Kind int

const (
	Cut Kind = iota
	Fold
)

// String returns "cut" or "fold".
func (k Kind) String() string {
	switch k {
	case Cut:
		return "cut"
	case Fold:
		return "fold"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind is the inverse of [Kind.String].
func ParseKind(s string) (Kind, error) {
	switch s {
	case "cut":
		return Cut, nil
	case "fold":
		return Fold, nil
	}
	return 0, fmt.Errorf("unknown segment kind %q", s)
}

// Point is a 2-D position.
type Point struct {
	X, Y float64
}

func (p Point) add(q Point) Point        { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) scale(s float64) Point    { return Point{p.X * s, p.Y * s} }
func (p Point) Distance(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Segment is a directed line from From to To.
type Segment struct {
	From, To Point
	Kind     Kind
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 { return s.From.Distance(s.To) }

// BBox is an axis-aligned rectangle. Y grows upwards.
type BBox struct {
	X, Y          float64 // lower-left corner
	Width, Height float64
}

func (b BBox) Left() float64   { return b.X }
func (b BBox) Right() float64  { return b.X + b.Width }
func (b BBox) Bottom() float64 { return b.Y }
func (b BBox) Top() float64    { return b.Y + b.Height }

// Contains reports whether p lies inside b or on its border, allowing for
// floating point noise of eps.
func (b BBox) Contains(p Point, eps float64) bool {
	return p.X >= b.Left()-eps && p.X <= b.Right()+eps &&
		p.Y >= b.Bottom()-eps && p.Y <= b.Top()+eps
}

// boundsOf returns the smallest box containing every segment endpoint.
func boundsOf(segs []Segment) BBox {
	if len(segs) == 0 {
		return BBox{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range segs {
		for _, p := range [2]Point{s.From, s.To} {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	return BBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
