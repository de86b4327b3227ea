// Package layout computes the flat cut/fold net of a rectangular box.
//
// # Overview
//
// [Generate] maps three dimensions (width, height, depth) to a [Layout]: an
// ordered list of [Segment] values placed on a page. Each segment is either a
// [Cut] (sever the sheet) or a [Fold] (crease it).
//
// The net consists of:
//
//   - a base rectangle of width × height
//   - four side flaps of height depth, one folded up from each base edge
//   - four closure tabs, one at each end of the left and right flaps
//
// Tabs are trapezoids of depth TabFraction × depth with 45° tapered sides, so
// they meet the neighbouring flap only at the shared corner. When the box is
// assembled the tabs fold inward and are glued behind the top and bottom
// flaps.
//
//	       ┌──────────┐
//	       │   top    │
//	 ╱‾‾‾╲ ├╌╌╌╌╌╌╌╌╌╌┤ ╱‾‾‾╲
//	┌─────┐│          │┌─────┐
//	│left ╎   base    ╎right│
//	└─────┘│          │└─────┘
//	 ╲___╱ ├╌╌╌╌╌╌╌╌╌╌┤ ╲___╱
//	       │  bottom  │
//	       └──────────┘
//
// # Segment order
//
// Segments are emitted in a fixed order so that repeated runs produce
// identical output:
//
//  1. The cut outline, counter-clockwise from the lower-left corner of the
//     bottom flap (20 segments).
//  2. The four base-to-flap folds: bottom, right, top, left.
//  3. With [Config.TabCreases], the four flap-to-tab folds.
//
// # Coordinates
//
// All coordinates in a [Layout] are PDF points with the origin at the lower
// left corner of the page and the y axis pointing up. The net is offset by
// the configured margin (or centred on a fixed [Paper]) and scaled by
// [Config.PointsPerUnit].
//
// # Limitations
//
// If depth exceeds half of width or height, neighbouring flaps overlap when
// the net is laid flat. Generate does not prevent this; [Layout.Overlaps]
// reports it.
package layout
