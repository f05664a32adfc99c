package notch

import "math"

// MaxCount caps the number of notches on one edge. Drawing is linear in the
// count, so an absurd extent must not turn into billions of primitives.
const MaxCount = 1 << 16

// Layout is the solved notch run along one edge: how many notches fit and
// the distance from the edge's starting corner to the beginning of the run.
//
// Offset is always a whole number; it is truncated the same way as Count so
// that output is pixel-identical across hosts.
type Layout struct {
	Count  int
	Offset float64
}

// Empty reports whether the layout places no notches.
func (l Layout) Empty() bool {
	return l.Count == 0
}

// Solve computes how many notches of diameter 2*radius fit along extent when
// each notch is preceded by an interval gap and one extra gap closes the run:
//
//	count  = trunc((extent - interval) / (2*radius + interval))
//	offset = trunc((extent - (2*radius*count + (count+1)*interval)) / 2)
//
// Triangle edges pass interval = 0 so notches pack edge to edge.
//
// The solver never fails. Non-finite or negative inputs, a non-positive
// radius, an extent shorter than one gap, or a zero pitch all yield an
// empty Layout. Counts above MaxCount are clamped to MaxCount and the
// clamped run is centred with the same offset formula.
func Solve(extent, radius, interval float64) Layout {
	if !isFinite(extent) || !isFinite(radius) || !isFinite(interval) {
		return Layout{}
	}
	if extent <= 0 || radius <= 0 || interval < 0 || extent < interval {
		return Layout{}
	}

	pitch := 2*radius + interval
	if pitch <= 0 {
		return Layout{}
	}

	n := math.Trunc((extent - interval) / pitch)
	if n <= 0 || !isFinite(n) {
		return Layout{}
	}
	count := MaxCount
	if n < MaxCount {
		count = int(n)
	}

	used := 2*radius*float64(count) + float64(count+1)*interval
	offset := math.Trunc((extent - used) / 2)
	if offset < 0 {
		offset = 0
	}
	return Layout{Count: count, Offset: offset}
}

// solveEdge solves the layout for edge e of a panel with extent ext under cfg.
// Circle edges pack with the configured interval; a non-positive interval is
// malformed configuration and yields no notches. Triangle edges force the
// interval to zero.
func solveEdge(cfg Config, ext Extent, e Edge) Layout {
	length := ext.Width
	if e.Vertical() {
		length = ext.Height
	}
	switch cfg.Style(e) {
	case StyleCircle:
		if !(cfg.Interval > 0) {
			return Layout{}
		}
		return Solve(length, cfg.Radius, cfg.Interval)
	case StyleTriangle:
		return Solve(length, cfg.Radius, 0)
	}
	return Layout{}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
