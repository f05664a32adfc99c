package notch

import "github.com/gogpu/gg"

// emitter issues the primitives of one edge for a solved layout.
type emitter func(s Sink, l Layout, cfg Config, ext Extent)

type edgeStyle struct {
	edge  Edge
	style Style
}

// emitters maps every decorated (edge, style) pair to its emitter.
// StyleNone has no entry.
var emitters = map[edgeStyle]emitter{
	{EdgeLeft, StyleCircle}:     emitLeftCircles,
	{EdgeRight, StyleCircle}:    emitRightCircles,
	{EdgeTop, StyleCircle}:      emitTopCircles,
	{EdgeBottom, StyleCircle}:   emitBottomCircles,
	{EdgeLeft, StyleTriangle}:   emitLeftTriangles,
	{EdgeRight, StyleTriangle}:  emitRightTriangles,
	{EdgeTop, StyleTriangle}:    emitTopTriangles,
	{EdgeBottom, StyleTriangle}: emitBottomTriangles,
}

func lookupEmitter(e Edge, s Style) (emitter, bool) {
	fn, ok := emitters[edgeStyle{e, s}]
	return fn, ok
}

// Horizontal edges draw whole circles centred on the edge line. Only the half
// inside the panel reads as a notch; the other half falls outside the panel
// and is clipped by the host or blends with the container background.

func emitTopCircles(s Sink, l Layout, cfg Config, _ Extent) {
	horizontalCircles(s, l, cfg, 0)
}

func emitBottomCircles(s Sink, l Layout, cfg Config, ext Extent) {
	horizontalCircles(s, l, cfg, ext.Height)
}

func horizontalCircles(s Sink, l Layout, cfg Config, y float64) {
	r, gap := cfg.Radius, cfg.Interval
	x := l.Offset + gap + r
	for i := 0; i < l.Count; i++ {
		s.FillCircle(x, y, r)
		x += 2*r + gap
	}
}

func emitTopTriangles(s Sink, l Layout, cfg Config, _ Extent) {
	horizontalTriangles(s, l, cfg.Radius, 0, cfg.Radius)
}

func emitBottomTriangles(s Sink, l Layout, cfg Config, ext Extent) {
	horizontalTriangles(s, l, cfg.Radius, ext.Height, -cfg.Radius)
}

// horizontalTriangles emits triangles whose base lies on y and whose apex is
// displaced by depth toward the panel interior.
func horizontalTriangles(s Sink, l Layout, r, y, depth float64) {
	for i := 0; i < l.Count; i++ {
		x := l.Offset + float64(i)*2*r
		s.FillPolygon([]gg.Point{
			gg.Pt(x, y),
			gg.Pt(x+r, y+depth),
			gg.Pt(x+2*r, y),
		})
	}
}

// Vertical edges draw half-circle arcs bulging into the panel.

func emitLeftCircles(s Sink, l Layout, cfg Config, _ Extent) {
	verticalArcs(s, l, cfg, 0, -90)
}

func emitRightCircles(s Sink, l Layout, cfg Config, ext Extent) {
	verticalArcs(s, l, cfg, ext.Width, 90)
}

func verticalArcs(s Sink, l Layout, cfg Config, x, start float64) {
	r, gap := cfg.Radius, cfg.Interval
	for i := 0; i < l.Count; i++ {
		top := l.Offset + gap*float64(i+1) + float64(i)*2*r
		s.FillArc(Rect{
			Left:   x - r,
			Top:    top,
			Right:  x + r,
			Bottom: top + 2*r,
		}, start, 180)
	}
}

func emitLeftTriangles(s Sink, l Layout, cfg Config, _ Extent) {
	verticalTriangles(s, l, cfg.Radius, 0, cfg.Radius)
}

func emitRightTriangles(s Sink, l Layout, cfg Config, ext Extent) {
	verticalTriangles(s, l, cfg.Radius, ext.Width, -cfg.Radius)
}

func verticalTriangles(s Sink, l Layout, r, x, depth float64) {
	for i := 0; i < l.Count; i++ {
		y := l.Offset + float64(i)*2*r
		s.FillPolygon([]gg.Point{
			gg.Pt(x, y),
			gg.Pt(x+depth, y+r),
			gg.Pt(x, y+2*r),
		})
	}
}
