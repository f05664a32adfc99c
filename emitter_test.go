package notch

import (
	"reflect"
	"testing"

	"github.com/gogpu/gg"
)

func emit(t *testing.T, e Edge, s Style, cfg Config, ext Extent) []Primitive {
	t.Helper()
	fn, ok := lookupEmitter(e, s)
	if !ok {
		t.Fatalf("no emitter for (%v, %v)", e, s)
	}
	cfg.setStyle(e, s)
	rec := NewRecorder()
	fn(rec, solveEdge(cfg, ext, e), cfg, ext)
	return rec.Primitives()
}

func TestEmitterTableCoversDecoratedPairs(t *testing.T) {
	for _, e := range Edges {
		for _, s := range []Style{StyleCircle, StyleTriangle} {
			if _, ok := lookupEmitter(e, s); !ok {
				t.Errorf("missing emitter for (%v, %v)", e, s)
			}
		}
		if _, ok := lookupEmitter(e, StyleNone); ok {
			t.Errorf("unexpected emitter for (%v, none)", e)
		}
	}
	if len(emitters) != 8 {
		t.Errorf("len(emitters) = %d, want 8", len(emitters))
	}
}

func TestEmitHorizontalCircles(t *testing.T) {
	cfg := DefaultConfig()
	ext := Extent{Width: 104, Height: 40}

	tests := []struct {
		edge Edge
		y    float64
	}{
		{EdgeTop, 0},
		{EdgeBottom, 40},
	}
	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			got := emit(t, tt.edge, StyleCircle, cfg, ext)
			want := []Primitive{
				Circle{Center: gg.Pt(24, tt.y), Radius: 10},
				Circle{Center: gg.Pt(52, tt.y), Radius: 10},
				Circle{Center: gg.Pt(80, tt.y), Radius: 10},
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("primitives = %+v, want %+v", got, want)
			}
		})
	}
}

func TestEmitHorizontalTriangles(t *testing.T) {
	cfg := DefaultConfig()
	ext := Extent{Width: 104, Height: 30}

	top := emit(t, EdgeTop, StyleTriangle, cfg, ext)
	if len(top) != 5 {
		t.Fatalf("top triangles = %d, want 5", len(top))
	}
	wantFirst := Polygon{Points: []gg.Point{gg.Pt(2, 0), gg.Pt(12, 10), gg.Pt(22, 0)}}
	if !reflect.DeepEqual(top[0], wantFirst) {
		t.Errorf("top[0] = %+v, want %+v", top[0], wantFirst)
	}
	for i, p := range top {
		apex := p.(Polygon).Points[0].X
		if want := 2 + 20*float64(i); apex != want {
			t.Errorf("top[%d] starts at x=%v, want %v", i, apex, want)
		}
	}

	bottom := emit(t, EdgeBottom, StyleTriangle, cfg, ext)
	wantFirst = Polygon{Points: []gg.Point{gg.Pt(2, 30), gg.Pt(12, 20), gg.Pt(22, 30)}}
	if !reflect.DeepEqual(bottom[0], wantFirst) {
		t.Errorf("bottom[0] = %+v, want %+v", bottom[0], wantFirst)
	}
}

func TestEmitVerticalArcs(t *testing.T) {
	cfg := DefaultConfig()
	ext := Extent{Width: 50, Height: 104}

	left := emit(t, EdgeLeft, StyleCircle, cfg, ext)
	wantLeft := []Primitive{
		Arc{Box: Rect{Left: -10, Top: 14, Right: 10, Bottom: 34}, StartAngle: -90, SweepAngle: 180},
		Arc{Box: Rect{Left: -10, Top: 42, Right: 10, Bottom: 62}, StartAngle: -90, SweepAngle: 180},
		Arc{Box: Rect{Left: -10, Top: 70, Right: 10, Bottom: 90}, StartAngle: -90, SweepAngle: 180},
	}
	if !reflect.DeepEqual(left, wantLeft) {
		t.Errorf("left = %+v, want %+v", left, wantLeft)
	}

	right := emit(t, EdgeRight, StyleCircle, cfg, ext)
	wantRight := Arc{Box: Rect{Left: 40, Top: 14, Right: 60, Bottom: 34}, StartAngle: 90, SweepAngle: 180}
	if len(right) != 3 || !reflect.DeepEqual(right[0], wantRight) {
		t.Errorf("right = %+v, want 3 arcs starting with %+v", right, wantRight)
	}
}

func TestEmitVerticalTriangles(t *testing.T) {
	cfg := DefaultConfig()
	ext := Extent{Width: 50, Height: 104}

	left := emit(t, EdgeLeft, StyleTriangle, cfg, ext)
	want := Polygon{Points: []gg.Point{gg.Pt(0, 2), gg.Pt(10, 12), gg.Pt(0, 22)}}
	if len(left) != 5 || !reflect.DeepEqual(left[0], want) {
		t.Errorf("left = %+v, want 5 triangles starting with %+v", left, want)
	}

	right := emit(t, EdgeRight, StyleTriangle, cfg, ext)
	want = Polygon{Points: []gg.Point{gg.Pt(50, 82), gg.Pt(40, 92), gg.Pt(50, 102)}}
	if len(right) != 5 || !reflect.DeepEqual(right[4], want) {
		t.Errorf("right = %+v, want 5 triangles ending with %+v", right, want)
	}
}

// Horizontal circle notches are whole circles straddling the edge while
// vertical ones are half arcs. The asymmetry is deliberate and pinned here.
func TestCircleShapeDiffersByAxis(t *testing.T) {
	cfg := DefaultConfig()
	ext := Extent{Width: 104, Height: 104}

	for _, e := range []Edge{EdgeTop, EdgeBottom} {
		for _, p := range emit(t, e, StyleCircle, cfg, ext) {
			if _, ok := p.(Circle); !ok {
				t.Errorf("%v edge emitted %T, want Circle", e, p)
			}
		}
	}
	for _, e := range []Edge{EdgeLeft, EdgeRight} {
		for _, p := range emit(t, e, StyleCircle, cfg, ext) {
			a, ok := p.(Arc)
			if !ok {
				t.Fatalf("%v edge emitted %T, want Arc", e, p)
			}
			if a.SweepAngle != 180 {
				t.Errorf("%v arc sweep = %v, want 180", e, a.SweepAngle)
			}
		}
	}
}

func TestEmitEmptyLayout(t *testing.T) {
	cfg := DefaultConfig()
	ext := Extent{Width: 5, Height: 5}
	for key := range emitters {
		if got := emit(t, key.edge, key.style, cfg, ext); len(got) != 0 {
			t.Errorf("(%v, %v) on 5x5 panel emitted %d primitives, want 0",
				key.edge, key.style, len(got))
		}
	}
}
