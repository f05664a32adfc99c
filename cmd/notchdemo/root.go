package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/notch"
	"github.com/gogpu/notch/backend"
	"github.com/gogpu/notch/config"
	"github.com/spf13/cobra"

	_ "github.com/gogpu/notch/backend/raster"
	_ "github.com/gogpu/notch/backend/svg"
)

// panelFlags holds the flags shared by render and layout.
type panelFlags struct {
	configPath string
	width      float64
	height     float64
	radius     float64
	interval   float64
	left       string
	right      string
	top        string
	bottom     string
	color      string
	panelColor string
	verbose    bool
}

// panel is a fully resolved panel: decorator plus body colour.
type panel struct {
	decorator *notch.Decorator
	body      gg.RGBA
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "notchdemo",
		Short:         "Render coupon panels with scalloped or zigzag edges",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd(), newLayoutCmd(), newBackendsCmd(), newVersionCmd())
	return root
}

func (f *panelFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML or TOML configuration file")
	fl.Float64Var(&f.width, "width", 320, "panel width in pixels")
	fl.Float64Var(&f.height, "height", 120, "panel height in pixels")
	fl.Float64VarP(&f.radius, "radius", "r", notch.DefaultRadius, "notch radius")
	fl.Float64VarP(&f.interval, "interval", "i", notch.DefaultInterval, "gap between circle notches")
	fl.StringVar(&f.left, "left", "none", "left edge style (none, circle, triangle)")
	fl.StringVar(&f.right, "right", "none", "right edge style")
	fl.StringVar(&f.top, "top", "none", "top edge style")
	fl.StringVar(&f.bottom, "bottom", "none", "bottom edge style")
	fl.StringVar(&f.color, "color", "white", "notch colour, normally the container background")
	fl.StringVar(&f.panelColor, "panel-color", "#e94e3c", "panel body colour")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log solved layouts to stderr")
}

// resolve builds the panel from defaults, then the config file, then the
// flags that were set explicitly on the command line.
func (f *panelFlags) resolve(cmd *cobra.Command) (*panel, error) {
	if f.verbose {
		notch.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	changed := cmd.Flags().Changed
	var opts []notch.Option
	width, height := f.width, f.height
	body, err := config.ParseColor(f.panelColor)
	if err != nil {
		return nil, fmt.Errorf("--panel-color: %w", err)
	}

	if f.configPath != "" {
		file, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		fileOpts, err := file.Options()
		if err != nil {
			return nil, err
		}
		opts = append(opts, fileOpts...)

		w, h, ok, err := file.PanelSize()
		if err != nil {
			return nil, err
		}
		if ok {
			if !changed("width") {
				width = w
			}
			if !changed("height") {
				height = h
			}
		}
		c, ok, err := file.PanelColor()
		if err != nil {
			return nil, err
		}
		if ok && !changed("panel-color") {
			body = c
		}
	}

	// Without a config file every flag applies; otherwise only explicit ones.
	apply := func(name string) bool { return f.configPath == "" || changed(name) }

	styles := []struct {
		flag  string
		edge  notch.Edge
		value string
	}{
		{"left", notch.EdgeLeft, f.left},
		{"right", notch.EdgeRight, f.right},
		{"top", notch.EdgeTop, f.top},
		{"bottom", notch.EdgeBottom, f.bottom},
	}
	for _, s := range styles {
		if !apply(s.flag) {
			continue
		}
		style, err := notch.ParseStyle(s.value)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", s.flag, err)
		}
		opts = append(opts, notch.WithStyle(s.edge, style))
	}
	if apply("radius") {
		opts = append(opts, notch.WithRadius(f.radius))
	}
	if apply("interval") {
		opts = append(opts, notch.WithInterval(f.interval))
	}
	if apply("color") {
		c, err := config.ParseColor(f.color)
		if err != nil {
			return nil, fmt.Errorf("--color: %w", err)
		}
		opts = append(opts, notch.WithColor(c))
	}

	d := notch.NewDecorator(opts...)
	d.SetExtent(width, height)
	return &panel{decorator: d, body: body}, nil
}

func newLayoutCmd() *cobra.Command {
	var flags panelFlags
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the solved notch layout of every edge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			cfg := p.decorator.Config()
			ext := p.decorator.Extent()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "panel %gx%g radius %g interval %g\n", ext.Width, ext.Height, cfg.Radius, cfg.Interval)
			layouts := p.decorator.Layouts()
			for _, e := range notch.Edges {
				l := layouts[e]
				fmt.Fprintf(out, "%-6s %-8s count=%d offset=%g\n", e, cfg.Style(e), l.Count, l.Offset)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the registered output backends",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(backend.Backends(), "\n"))
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of notchdemo",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "notchdemo version %s\n", version)
		},
	}
}
