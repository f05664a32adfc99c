// Package svg provides a backend that writes decorated panels as SVG
// documents using github.com/ajstarks/svgo.
//
// Notches become filled <path> elements with full floating-point
// precision. Rasterize turns a document back into pixels, which is how the
// output is checked against the raster backend.
//
// # Example
//
//	import _ "github.com/gogpu/notch/backend/svg"
//
//	b, _ := backend.NewBackend("svg")
//	_ = backend.Render(b, decorator, gg.White.Color())
//	_ = backend.SaveToFile(b, "coupon.svg")
package svg

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"
	"github.com/gogpu/gg"
	"github.com/gogpu/notch"
	"github.com/gogpu/notch/backend"
)

func init() {
	backend.Register(backend.NameSVG, func() backend.Backend {
		return NewBackend()
	})
}

// Backend writes notches as SVG path elements.
type Backend struct {
	buf    bytes.Buffer
	canvas *svgo.SVG
	width  int
	height int
	fill   string
	ended  bool
}

var _ backend.Backend = (*Backend)(nil)

// NewBackend creates a new SVG backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Name implements backend.Backend.
func (b *Backend) Name() string { return backend.NameSVG }

// Begin starts a new document of the given size.
func (b *Backend) Begin(width, height int) error {
	if err := backend.CheckSize(width, height); err != nil {
		return err
	}
	b.buf.Reset()
	b.canvas = svgo.New(&b.buf)
	b.width, b.height = width, height
	b.fill = Style(notch.DefaultColor.Color())
	b.ended = false
	b.canvas.Startview(width, height, 0, 0, width, height)
	return nil
}

// End closes the document.
func (b *Backend) End() error {
	if b.canvas == nil {
		return backend.ErrNotBegun
	}
	if !b.ended {
		b.canvas.End()
		b.ended = true
	}
	return nil
}

// FillBackground emits a rectangle covering the whole document.
func (b *Backend) FillBackground(c color.Color) {
	if b.canvas == nil {
		return
	}
	b.canvas.Rect(0, 0, b.width, b.height, Style(c))
}

// SetFillColor implements notch.Sink.
func (b *Backend) SetFillColor(c color.Color) {
	b.fill = Style(c)
}

// FillCircle implements notch.Sink. The circle is written as two half arcs
// so that fractional centres and radii survive.
func (b *Backend) FillCircle(cx, cy, r float64) {
	if b.canvas == nil {
		return
	}
	var d pathData
	d.moveTo(gg.Pt(cx-r, cy))
	d.arcTo(r, false, gg.Pt(cx+r, cy))
	d.arcTo(r, false, gg.Pt(cx-r, cy))
	d.close()
	b.canvas.Path(d.String(), b.fill)
}

// FillArc implements notch.Sink.
func (b *Backend) FillArc(box notch.Rect, startDeg, sweepDeg float64) {
	if b.canvas == nil {
		return
	}
	r := box.Width() / 2
	from, to := backend.ArcEndpoints(box.Center(), r, startDeg, sweepDeg)
	var d pathData
	d.moveTo(from)
	d.arcTo(r, sweepDeg > 180, to)
	d.close()
	b.canvas.Path(d.String(), b.fill)
}

// FillPolygon implements notch.Sink.
func (b *Backend) FillPolygon(pts []gg.Point) {
	if b.canvas == nil || len(pts) < 3 {
		return
	}
	var d pathData
	d.moveTo(pts[0])
	for _, p := range pts[1:] {
		d.lineTo(p)
	}
	d.close()
	b.canvas.Path(d.String(), b.fill)
}

// WriteTo writes the document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.canvas == nil {
		return 0, backend.ErrNotBegun
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// Bytes returns the document written so far.
func (b *Backend) Bytes() []byte {
	return b.buf.Bytes()
}

// Style returns the SVG fill declaration for c, e.g. "fill:#ff0000" or
// "fill:#ff0000;fill-opacity:0.5" for translucent colours.
func Style(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s := fmt.Sprintf("fill:#%02x%02x%02x", n.R, n.G, n.B)
	if n.A != 0xff {
		s += ";fill-opacity:" + formatFloat(float64(n.A)/255)
	}
	return s
}

// pathData builds an SVG path "d" attribute.
type pathData struct {
	sb strings.Builder
}

func (p *pathData) moveTo(pt gg.Point) {
	p.cmd("M", pt.X, pt.Y)
}

func (p *pathData) lineTo(pt gg.Point) {
	p.cmd("L", pt.X, pt.Y)
}

// arcTo draws a clockwise circular arc of radius r to pt.
func (p *pathData) arcTo(r float64, large bool, pt gg.Point) {
	largeFlag := 0.0
	if large {
		largeFlag = 1
	}
	p.cmd("A", r, r, 0, largeFlag, 1, pt.X, pt.Y)
}

func (p *pathData) close() {
	p.sb.WriteString(" Z")
}

func (p *pathData) cmd(name string, args ...float64) {
	if p.sb.Len() > 0 {
		p.sb.WriteByte(' ')
	}
	p.sb.WriteString(name)
	for _, a := range args {
		p.sb.WriteByte(' ')
		p.sb.WriteString(formatFloat(a))
	}
}

func (p *pathData) String() string {
	return p.sb.String()
}

// formatFloat prints v with the shortest exact representation, snapping
// values within 1e-9 of an integer to that integer.
func formatFloat(v float64) string {
	if r := math.Round(v); math.Abs(v-r) < 1e-9 {
		v = r
	}
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
