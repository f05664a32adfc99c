package notch

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Radius != 10 {
		t.Errorf("Radius = %v, want 10", cfg.Radius)
	}
	if cfg.Interval != 8 {
		t.Errorf("Interval = %v, want 8", cfg.Interval)
	}
	if cfg.Color != gg.White {
		t.Errorf("Color = %+v, want white", cfg.Color)
	}
	for _, e := range Edges {
		if s := cfg.Style(e); s != StyleNone {
			t.Errorf("Style(%v) = %v, want none", e, s)
		}
	}
	if cfg.Decorated() {
		t.Error("default config should not be decorated")
	}
}

func TestOptions(t *testing.T) {
	cfg := NewConfig(
		WithVerticalStyle(StyleCircle),
		WithHorizontalStyle(StyleTriangle),
		WithStyle(EdgeBottom, StyleNone),
		WithRadius(4),
		WithInterval(2),
		WithColor(gg.Hex("#00ff00")),
		nil,
	)

	want := map[Edge]Style{
		EdgeLeft:   StyleCircle,
		EdgeRight:  StyleCircle,
		EdgeTop:    StyleTriangle,
		EdgeBottom: StyleNone,
	}
	for e, s := range want {
		if got := cfg.Style(e); got != s {
			t.Errorf("Style(%v) = %v, want %v", e, got, s)
		}
	}
	if cfg.Radius != 4 || cfg.Interval != 2 {
		t.Errorf("Radius, Interval = %v, %v, want 4, 2", cfg.Radius, cfg.Interval)
	}
	if cfg.Color != gg.Green {
		t.Errorf("Color = %+v, want green", cfg.Color)
	}
	if !cfg.Decorated() {
		t.Error("Decorated() = false, want true")
	}
}

func TestWithStyleRejectsUndefined(t *testing.T) {
	cfg := NewConfig(WithStyles(Style(5), StyleCircle, Style(-1), StyleTriangle))
	if cfg.Left != StyleNone || cfg.Top != StyleNone {
		t.Errorf("undefined styles kept: left=%v top=%v", cfg.Left, cfg.Top)
	}
	if cfg.Right != StyleCircle || cfg.Bottom != StyleTriangle {
		t.Errorf("valid styles lost: right=%v bottom=%v", cfg.Right, cfg.Bottom)
	}
}
