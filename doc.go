// Package notch draws the scalloped or zigzag border of a torn-ticket
// ("coupon") panel.
//
// # Overview
//
// Each of the four edges of a rectangular panel can carry a run of notches:
// half-circle scallops (StyleCircle), inward triangles (StyleTriangle), or
// nothing (StyleNone). For every draw pass the decorator solves how many
// notches fit along each edge, centres the run, and issues one filled shape
// per notch to a Sink supplied by the host.
//
// # Quick Start
//
//	d := notch.NewDecorator(
//	    notch.WithVerticalStyle(notch.StyleCircle),
//	    notch.WithHorizontalStyle(notch.StyleTriangle),
//	    notch.WithColor(gg.White),
//	)
//	d.SetExtent(320, 120)
//	d.Draw(sink)
//
// The backend/raster and backend/svg packages provide ready-made sinks that
// render with gogpu/gg and produce SVG documents respectively.
//
// # Geometry
//
// Along an edge of length L with radius r and interval g:
//
//	count  = trunc((L - g) / (2r + g))
//	offset = trunc((L - (2r*count + (count+1)*g)) / 2)
//
// Triangle edges use g = 0. Horizontal circle notches are whole circles
// centred on the edge line; vertical circle notches are 180° arcs that bulge
// into the panel. Corner notches of adjacent edges are not reconciled and may
// overlap.
//
// # Coordinate System
//
// Origin at the top-left corner of the panel, x to the right, y down, angles
// in degrees measured clockwise from the positive x axis.
//
// # Errors
//
// Drawing never fails. Degenerate input (non-positive radius, negative or
// non-finite extents, a circle edge without a positive interval) simply
// produces no notches.
package notch
