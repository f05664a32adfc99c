package notch

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Sink receives the filled shapes produced by a draw pass. It is the only
// capability the decorator needs from a host rendering surface.
//
// Angles are in degrees, measured clockwise from the positive x axis in the
// y-down coordinate system; an arc is filled between its curve and the chord
// joining its endpoints.
type Sink interface {
	SetFillColor(c color.Color)
	FillCircle(cx, cy, r float64)
	FillArc(box Rect, startDeg, sweepDeg float64)
	FillPolygon(pts []gg.Point)
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal size of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical size of r.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the midpoint of r.
func (r Rect) Center() gg.Point {
	return gg.Pt((r.Left+r.Right)/2, (r.Top+r.Bottom)/2)
}

// Primitive is a single notch shape. Concrete types are Circle, Arc and
// Polygon.
type Primitive interface {
	isPrimitive()

	// Replay issues the primitive to s.
	Replay(s Sink)
}

// Circle is a filled full circle.
type Circle struct {
	Center gg.Point
	Radius float64
}

// Arc is a filled circular arc inscribed in Box, closed by its chord.
type Arc struct {
	Box        Rect
	StartAngle float64
	SweepAngle float64
}

// Polygon is a filled closed polygon.
type Polygon struct {
	Points []gg.Point
}

func (Circle) isPrimitive()  {}
func (Arc) isPrimitive()     {}
func (Polygon) isPrimitive() {}

// Replay implements Primitive.
func (c Circle) Replay(s Sink) { s.FillCircle(c.Center.X, c.Center.Y, c.Radius) }

// Replay implements Primitive.
func (a Arc) Replay(s Sink) { s.FillArc(a.Box, a.StartAngle, a.SweepAngle) }

// Replay implements Primitive.
func (p Polygon) Replay(s Sink) { s.FillPolygon(p.Points) }

// Recorder is a Sink that keeps every primitive it receives. It is used to
// inspect a draw pass and to replay it onto another sink later.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	fill       color.Color
	primitives []Primitive
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// SetFillColor implements Sink.
func (r *Recorder) SetFillColor(c color.Color) { r.fill = c }

// FillCircle implements Sink.
func (r *Recorder) FillCircle(cx, cy, radius float64) {
	r.primitives = append(r.primitives, Circle{Center: gg.Pt(cx, cy), Radius: radius})
}

// FillArc implements Sink.
func (r *Recorder) FillArc(box Rect, startDeg, sweepDeg float64) {
	r.primitives = append(r.primitives, Arc{Box: box, StartAngle: startDeg, SweepAngle: sweepDeg})
}

// FillPolygon implements Sink. The points are copied.
func (r *Recorder) FillPolygon(pts []gg.Point) {
	cp := make([]gg.Point, len(pts))
	copy(cp, pts)
	r.primitives = append(r.primitives, Polygon{Points: cp})
}

// FillColor returns the last fill colour set, or nil.
func (r *Recorder) FillColor() color.Color { return r.fill }

// Primitives returns the recorded primitives in emission order. The slice
// stays valid after Reset; further recording never writes into it.
func (r *Recorder) Primitives() []Primitive { return r.primitives }

// Len returns the number of recorded primitives.
func (r *Recorder) Len() int { return len(r.primitives) }

// Reset discards all recorded primitives. Slices returned by Primitives
// before the call are left untouched.
func (r *Recorder) Reset() {
	r.fill = nil
	r.primitives = nil
}

// Replay issues the recorded fill colour and primitives to s.
func (r *Recorder) Replay(s Sink) {
	if r.fill != nil {
		s.SetFillColor(r.fill)
	}
	for _, p := range r.primitives {
		p.Replay(s)
	}
}
