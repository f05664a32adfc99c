package svg

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

var errNotEnded = errors.New("document not finalized")

// Rasterize parses an SVG document from r and renders it into a new
// width x height image, scaling the view box to fit.
func Rasterize(r io.Reader, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("svg: invalid raster size %dx%d", width, height)
	}
	icon, err := oksvg.ReadIconStream(r, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("svg: parse: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// Image rasterizes the finalized document of b at its own size.
func (b *Backend) Image() (*image.RGBA, error) {
	if b.canvas == nil || !b.ended {
		return nil, fmt.Errorf("svg: %w", errNotEnded)
	}
	return Rasterize(bytes.NewReader(b.buf.Bytes()), b.width, b.height)
}
