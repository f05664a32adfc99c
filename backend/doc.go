// Package backend provides the output surfaces a notch.Decorator can draw on.
//
// A Backend is a notch.Sink with a lifecycle: Begin sizes the surface,
// FillBackground paints the panel body, the decorator issues its notches,
// End finalizes the output and WriteTo streams it.
//
// # Backend Registration
//
// Backends register themselves from init(), following the database/sql
// driver pattern:
//
//	import _ "github.com/gogpu/notch/backend/raster" // "raster": PNG via gogpu/gg
//	import _ "github.com/gogpu/notch/backend/svg"    // "svg": SVG document
//
// # Backend Selection
//
//	b, err := backend.NewBackend("svg")
//
//	// Or the best available one (raster, then svg).
//	b := backend.Default()
//
// # Rendering
//
//	d := notch.NewDecorator(notch.WithVerticalStyle(notch.StyleCircle))
//	d.SetExtent(320, 120)
//	if err := backend.Render(b, d, gg.Hex("#e94e3c")); err != nil {
//		log.Fatal(err)
//	}
//	_, err = b.WriteTo(w)
package backend
