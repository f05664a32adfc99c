package main

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/notch"
	"github.com/gogpu/notch/backend"
	"github.com/gogpu/notch/backend/svg"
	"github.com/spf13/cobra"
)

// Output formats accepted by --format.
const (
	formatPNG    = "png"
	formatSVG    = "svg"
	formatSVGPNG = "svg-png" // SVG rendered, then rasterized
)

func newRenderCmd() *cobra.Command {
	var (
		flags  panelFlags
		output string
		format string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a decorated panel to PNG or SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			if format == "" {
				format = formatFromOutput(output)
			}

			var buf bytes.Buffer
			if err := renderPanel(&buf, p, format); err != nil {
				return err
			}
			if output == "-" {
				_, err = buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			ext := p.decorator.Extent()
			fmt.Fprintf(cmd.ErrOrStderr(), "Panel saved to %s (%gx%g, %s)\n", output, ext.Width, ext.Height, format)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "coupon.png", `output file, "-" for stdout`)
	cmd.Flags().StringVarP(&format, "format", "f", "", "png, svg or svg-png (default from the output extension)")
	return cmd
}

func formatFromOutput(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return formatSVG
	}
	return formatPNG
}

// renderPanel writes the panel p to w in the requested format.
func renderPanel(w io.Writer, p *panel, format string) error {
	name := backend.NameRaster
	switch format {
	case formatPNG:
	case formatSVG, formatSVGPNG:
		name = backend.NameSVG
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatPNG, formatSVG, formatSVGPNG)
	}

	b, err := backend.NewBackend(name)
	if err != nil {
		return err
	}
	if err := backend.Render(b, p.decorator, p.body.Color()); err != nil {
		return err
	}

	if format != formatSVGPNG {
		_, err = b.WriteTo(w)
		return err
	}

	sb, ok := b.(*svg.Backend)
	if !ok {
		return fmt.Errorf("backend %s is %T, not an SVG backend", name, b)
	}
	img, err := sb.Image()
	if err != nil {
		return err
	}
	notch.Logger().Debug("notchdemo: svg rasterized", "bounds", img.Bounds().String())
	return png.Encode(w, img)
}
