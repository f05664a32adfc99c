package svg

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/notch"
	"github.com/gogpu/notch/backend"
	"github.com/gogpu/notch/backend/raster"
)

func renderDoc(t *testing.T, b backend.Backend, opts ...notch.Option) {
	t.Helper()
	d := notch.NewDecorator(opts...)
	d.SetExtent(104, 104)
	if err := backend.Render(b, d, gg.Red.Color()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
}

func TestBackendRegistration(t *testing.T) {
	b, err := backend.NewBackend(backend.NameSVG)
	if err != nil {
		t.Fatalf("NewBackend(svg) error = %v", err)
	}
	if _, ok := b.(*Backend); !ok {
		t.Fatalf("backend is %T, not *svg.Backend", b)
	}
}

func TestStyle(t *testing.T) {
	tests := []struct {
		in   color.Color
		want string
	}{
		{color.White, "fill:#ffffff"},
		{gg.Hex("#e94e3c").Color(), "fill:#e94e3c"},
		{color.NRGBA{R: 0, G: 0, B: 0xff, A: 0}, "fill:#0000ff;fill-opacity:0"},
		{color.NRGBA{R: 0xff, G: 0, B: 0, A: 0x33}, "fill:#ff0000;fill-opacity:0.2"},
	}
	for _, tt := range tests {
		if got := Style(tt.in); got != tt.want {
			t.Errorf("Style(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := map[float64]string{
		0:                     "0",
		-0.0000000000001:      "0",
		6.123233995736766e-16: "0",
		24:                    "24",
		2.5:                   "2.5",
		-10:                   "-10",
		33.9999999999999:      "34",
	}
	for in, want := range tests {
		if got := formatFloat(in); got != want {
			t.Errorf("formatFloat(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestBackendPaths(t *testing.T) {
	b := NewBackend()
	renderDoc(t, b,
		notch.WithStyle(notch.EdgeTop, notch.StyleCircle),
		notch.WithStyle(notch.EdgeLeft, notch.StyleCircle),
		notch.WithStyle(notch.EdgeBottom, notch.StyleTriangle),
		notch.WithStyle(notch.EdgeRight, notch.StyleTriangle),
	)
	doc := string(b.Bytes())

	want := []string{
		`d="M 14 0 A 10 10 0 0 1 34 0 A 10 10 0 0 1 14 0 Z"`, // first top circle
		`d="M 0 14 A 10 10 0 0 1 0 34 Z"`,                    // first left arc
		`d="M 2 104 L 12 94 L 22 104 Z"`,                     // first bottom triangle
		`d="M 104 2 L 94 12 L 104 22 Z"`,                     // first right triangle
		`style="fill:#ff0000"`,                               // panel body
		`style="fill:#ffffff"`,                               // notches
		"</svg>",
	}
	for _, w := range want {
		if !strings.Contains(doc, w) {
			t.Errorf("document missing %s", w)
		}
	}
	if got := strings.Count(doc, "<path"); got != 3+3+5+5 {
		t.Errorf("path count = %d, want 16", got)
	}
}

func TestBackendLifecycle(t *testing.T) {
	b := NewBackend()
	if err := b.End(); !errors.Is(err, backend.ErrNotBegun) {
		t.Errorf("End before Begin = %v, want ErrNotBegun", err)
	}
	if _, err := b.WriteTo(&bytes.Buffer{}); !errors.Is(err, backend.ErrNotBegun) {
		t.Errorf("WriteTo before Begin = %v, want ErrNotBegun", err)
	}
	if err := b.Begin(-1, 5); !errors.Is(err, backend.ErrInvalidSize) {
		t.Errorf("Begin(-1, 5) = %v, want ErrInvalidSize", err)
	}
	if _, err := b.Image(); err == nil {
		t.Error("Image() before End should fail")
	}

	if err := b.Begin(20, 10); err != nil {
		t.Fatal(err)
	}
	if err := b.End(); err != nil {
		t.Fatal(err)
	}
	if err := b.End(); err != nil {
		t.Errorf("second End = %v, want nil", err)
	}
	if got := strings.Count(string(b.Bytes()), "</svg>"); got != 1 {
		t.Errorf("closing tags = %d, want 1", got)
	}

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil || n != int64(buf.Len()) {
		t.Errorf("WriteTo = %d, %v; buffer holds %d", n, err, buf.Len())
	}

	// Begin starts a fresh document.
	if err := b.Begin(30, 30); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b.Bytes()), "</svg>") {
		t.Error("Begin did not reset the document")
	}
}

func TestRasterizeInvalid(t *testing.T) {
	if _, err := Rasterize(strings.NewReader("<svg/>"), 0, 10); err == nil {
		t.Error("Rasterize with zero width should fail")
	}
}

// The SVG and raster backends must agree on where notches are.
func TestRasterizeMatchesRasterBackend(t *testing.T) {
	opts := []notch.Option{
		notch.WithVerticalStyle(notch.StyleCircle),
		notch.WithHorizontalStyle(notch.StyleTriangle),
	}

	sb := NewBackend()
	renderDoc(t, sb, opts...)
	fromSVG, err := sb.Image()
	if err != nil {
		t.Fatalf("Image() error = %v", err)
	}

	rb := raster.NewBackend()
	renderDoc(t, rb, opts...)
	fromRaster := rb.Image()

	samples := []image.Point{
		{3, 24}, {3, 38}, {100, 52}, {100, 66}, // arcs and gaps
		{12, 2}, {22, 2}, {52, 101}, {42, 101}, // triangles and gaps
		{52, 52}, // body
	}
	for _, p := range samples {
		if a, b := isNotch(fromSVG, p), isNotch(fromRaster, p); a != b {
			t.Errorf("pixel %v: svg notch=%v, raster notch=%v", p, a, b)
		}
	}
}

func isNotch(img image.Image, p image.Point) bool {
	_, g, _, _ := img.At(p.X, p.Y).RGBA()
	return g>>8 > 128
}
