// Package raster provides a PNG backend that renders notches with gogpu/gg.
//
// Every primitive is filled with the software rasterizer of gg.Context,
// which anti-aliases curved and diagonal edges.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/notch/backend/raster"
//
//	b, _ := backend.NewBackend("raster")
//	_ = backend.Render(b, decorator, gg.Hex("#e94e3c").Color())
//	_ = backend.SaveToFile(b, "coupon.png")
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/notch"
	"github.com/gogpu/notch/backend"
)

func init() {
	backend.Register(backend.NameRaster, func() backend.Backend {
		return NewBackend()
	})
}

// Backend renders notches to a pixel image using gg.Context.
type Backend struct {
	ctx    *gg.Context
	width  int
	height int
	err    error
}

var _ backend.Backend = (*Backend)(nil)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Name implements backend.Backend.
func (b *Backend) Name() string { return backend.NameRaster }

// Begin allocates a transparent surface of the given size.
func (b *Backend) Begin(width, height int) error {
	if err := backend.CheckSize(width, height); err != nil {
		return err
	}
	if b.ctx != nil {
		_ = b.ctx.Close()
	}
	b.width = width
	b.height = height
	b.err = nil
	b.ctx = gg.NewContext(width, height)
	b.ctx.SetColor(notch.DefaultColor.Color())
	return nil
}

// End finalizes the rendering and returns the first fill error.
func (b *Backend) End() error {
	if b.ctx == nil {
		return backend.ErrNotBegun
	}
	return b.err
}

// FillBackground paints the whole surface.
func (b *Backend) FillBackground(c color.Color) {
	if b.ctx == nil {
		return
	}
	b.ctx.ClearWithColor(gg.FromColor(c))
}

// SetFillColor implements notch.Sink.
func (b *Backend) SetFillColor(c color.Color) {
	if b.ctx == nil {
		return
	}
	b.ctx.SetColor(c)
}

// FillCircle implements notch.Sink.
func (b *Backend) FillCircle(cx, cy, r float64) {
	if b.ctx == nil {
		return
	}
	b.ctx.DrawCircle(cx, cy, r)
	b.fill()
}

// FillArc implements notch.Sink. The arc is inscribed in the box width;
// the chord between its endpoints closes the filled region.
func (b *Backend) FillArc(box notch.Rect, startDeg, sweepDeg float64) {
	if b.ctx == nil {
		return
	}
	c := box.Center()
	a1, a2 := backend.ArcRadians(startDeg, sweepDeg)
	b.ctx.ClearPath()
	b.ctx.DrawArc(c.X, c.Y, box.Width()/2, a1, a2)
	b.ctx.ClosePath()
	b.fill()
}

// FillPolygon implements notch.Sink.
func (b *Backend) FillPolygon(pts []gg.Point) {
	if b.ctx == nil || len(pts) < 3 {
		return
	}
	b.ctx.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		b.ctx.LineTo(p.X, p.Y)
	}
	b.ctx.ClosePath()
	b.fill()
}

func (b *Backend) fill() {
	if err := b.ctx.Fill(); err != nil && b.err == nil {
		b.err = err
	}
}

// WriteTo writes the rendered image as PNG to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.ctx == nil {
		return 0, backend.ErrNotBegun
	}
	cw, count := backend.CountingWriter(w)
	err := png.Encode(cw, b.ctx.Image())
	return count(), err
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Image()
}

// Width returns the surface width.
func (b *Backend) Width() int { return b.width }

// Height returns the surface height.
func (b *Backend) Height() int { return b.height }
