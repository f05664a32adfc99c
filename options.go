package notch

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Default notch parameters.
const (
	DefaultRadius   = 10.0
	DefaultInterval = 8.0
)

// DefaultColor is the notch fill colour when none is configured. It should
// match the background of the container holding the panel.
var DefaultColor = gg.White

// Option configures a Decorator during creation.
//
// Example:
//
//	d := notch.NewDecorator(
//	    notch.WithVerticalStyle(notch.StyleCircle),
//	    notch.WithRadius(6),
//	    notch.WithColor(gg.Hex("#f2f2f2")),
//	)
type Option func(*Config)

// Config is the immutable configuration of a Decorator: one style per edge
// plus the notch parameters shared by all edges.
type Config struct {
	Left, Right, Top, Bottom Style

	// Radius is the notch half-size.
	Radius float64
	// Interval is the gap between circle notches. Triangles ignore it.
	Interval float64
	// Color fills every notch.
	Color gg.RGBA
}

// DefaultConfig returns a configuration with no decorated edges,
// radius 10, interval 8 and a white fill.
func DefaultConfig() Config {
	return Config{
		Radius:   DefaultRadius,
		Interval: DefaultInterval,
		Color:    DefaultColor,
	}
}

// NewConfig applies opts to DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Style returns the style configured for e.
func (c Config) Style(e Edge) Style {
	switch e {
	case EdgeLeft:
		return c.Left
	case EdgeRight:
		return c.Right
	case EdgeTop:
		return c.Top
	case EdgeBottom:
		return c.Bottom
	}
	return StyleNone
}

func (c *Config) setStyle(e Edge, s Style) {
	if !s.Valid() {
		s = StyleNone
	}
	switch e {
	case EdgeLeft:
		c.Left = s
	case EdgeRight:
		c.Right = s
	case EdgeTop:
		c.Top = s
	case EdgeBottom:
		c.Bottom = s
	}
}

// Decorated reports whether at least one edge has a style other than StyleNone.
func (c Config) Decorated() bool {
	for _, e := range Edges {
		if c.Style(e) != StyleNone {
			return true
		}
	}
	return false
}

// WithStyle sets the style of a single edge. Undefined styles fall back
// to StyleNone.
func WithStyle(e Edge, s Style) Option {
	return func(c *Config) {
		c.setStyle(e, s)
	}
}

// WithStyles sets all four edge styles at once.
func WithStyles(left, right, top, bottom Style) Option {
	return func(c *Config) {
		c.setStyle(EdgeLeft, left)
		c.setStyle(EdgeRight, right)
		c.setStyle(EdgeTop, top)
		c.setStyle(EdgeBottom, bottom)
	}
}

// WithVerticalStyle sets the style of the left and right edges.
func WithVerticalStyle(s Style) Option {
	return func(c *Config) {
		c.setStyle(EdgeLeft, s)
		c.setStyle(EdgeRight, s)
	}
}

// WithHorizontalStyle sets the style of the top and bottom edges.
func WithHorizontalStyle(s Style) Option {
	return func(c *Config) {
		c.setStyle(EdgeTop, s)
		c.setStyle(EdgeBottom, s)
	}
}

// WithRadius sets the notch radius.
func WithRadius(r float64) Option {
	return func(c *Config) {
		c.Radius = r
	}
}

// WithInterval sets the gap between circle notches.
func WithInterval(i float64) Option {
	return func(c *Config) {
		c.Interval = i
	}
}

// WithColor sets the notch fill colour.
func WithColor(col gg.RGBA) Option {
	return func(c *Config) {
		c.Color = col
	}
}

// WithStdColor sets the notch fill colour from a standard library colour.
func WithStdColor(col color.Color) Option {
	return func(c *Config) {
		c.Color = gg.FromColor(col)
	}
}
