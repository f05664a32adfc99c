package backend

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/notch"
)

// Common backend errors.
var (
	// ErrNotBegun is returned when output is requested before Begin.
	ErrNotBegun = errors.New("backend: Begin not called")

	// ErrInvalidSize is returned by Begin for non-positive dimensions.
	ErrInvalidSize = errors.New("backend: invalid surface size")
)

// Backend is an output surface for decorated panels.
type Backend interface {
	notch.Sink

	// Name returns the registered backend identifier ("raster", "svg").
	Name() string

	// Begin prepares a surface of the given size in pixels.
	// It must be called before any drawing.
	Begin(width, height int) error

	// FillBackground paints the whole surface with c. Hosts use it to draw
	// the panel body before the notches are cut into it.
	FillBackground(c color.Color)

	// End finalizes the output. It reports the first drawing error, if any.
	End() error

	// WriteTo writes the finalized output. It should only be called after End.
	WriteTo(w io.Writer) (int64, error)
}

// Render draws one decorated panel onto b: the surface is sized from the
// decorator extent (rounded up to whole pixels), filled with body, and
// decorated.
func Render(b Backend, d *notch.Decorator, body color.Color) error {
	ext := d.Extent()
	w, h := int(math.Ceil(ext.Width)), int(math.Ceil(ext.Height))
	if err := b.Begin(w, h); err != nil {
		return fmt.Errorf("backend %s: begin: %w", b.Name(), err)
	}
	if body != nil {
		b.FillBackground(body)
	}
	d.Draw(b)
	if err := b.End(); err != nil {
		return fmt.Errorf("backend %s: end: %w", b.Name(), err)
	}
	notch.Logger().Info("backend: panel rendered",
		"backend", b.Name(), "width", w, "height", h)
	return nil
}

// SaveToFile writes the finalized output of b to path.
func SaveToFile(b Backend, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("backend %s: %w", b.Name(), err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	n, err := b.WriteTo(f)
	if err != nil {
		return fmt.Errorf("backend %s: write %s: %w", b.Name(), path, err)
	}
	notch.Logger().Info("backend: output saved", "path", path, "bytes", n)
	return nil
}

// CheckSize validates surface dimensions for Begin implementations.
func CheckSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return nil
}

// ArcRadians converts a sink arc (degrees, clockwise in y-down space) into
// the start and end angles in radians expected by gg.Context.DrawArc.
func ArcRadians(startDeg, sweepDeg float64) (a1, a2 float64) {
	const toRad = math.Pi / 180
	return startDeg * toRad, (startDeg + sweepDeg) * toRad
}

// ArcEndpoints returns the points where an arc of radius r around c starts
// and ends.
func ArcEndpoints(c gg.Point, r, startDeg, sweepDeg float64) (from, to gg.Point) {
	a1, a2 := ArcRadians(startDeg, sweepDeg)
	from = gg.Pt(c.X+r*math.Cos(a1), c.Y+r*math.Sin(a1))
	to = gg.Pt(c.X+r*math.Cos(a2), c.Y+r*math.Sin(a2))
	return from, to
}

// countingWriter counts bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// CountingWriter wraps w so that WriteTo implementations built on encoders
// that return only an error can report the byte count.
func CountingWriter(w io.Writer) (io.Writer, func() int64) {
	cw := &countingWriter{w: w}
	return cw, func() int64 { return cw.n }
}
