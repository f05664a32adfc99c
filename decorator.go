package notch

import "log/slog"

// Extent is the current size of the decorated panel.
type Extent struct {
	Width, Height float64
}

// Decorator draws notches along the edges of a rectangular panel.
//
// Every draw pass is a pure function of the current extent and the immutable
// configuration: layouts are solved again on each call and nothing else is
// carried between calls. The host updates the extent through SetExtent and
// must not do so while a draw pass is running.
//
// A Decorator is not safe for concurrent use.
type Decorator struct {
	cfg    Config
	extent Extent
}

// NewDecorator creates a decorator from functional options applied over
// DefaultConfig. The extent starts at zero, so nothing is drawn until the
// host reports a size with SetExtent.
func NewDecorator(opts ...Option) *Decorator {
	return NewDecoratorFromConfig(NewConfig(opts...))
}

// NewDecoratorFromConfig creates a decorator for an explicit configuration.
func NewDecoratorFromConfig(cfg Config) *Decorator {
	warnDegenerate(cfg)
	return &Decorator{cfg: cfg}
}

// warnDegenerate reports configuration that silently draws nothing.
func warnDegenerate(cfg Config) {
	if !cfg.Decorated() {
		return
	}
	log := Logger()
	if !(cfg.Radius > 0) {
		log.Warn("notch: non-positive radius, edges will not be decorated",
			slog.Float64("radius", cfg.Radius))
		return
	}
	for _, e := range Edges {
		if cfg.Style(e) == StyleCircle && !(cfg.Interval > 0) {
			log.Warn("notch: non-positive interval, circle edge will not be decorated",
				slog.String("edge", e.String()),
				slog.Float64("interval", cfg.Interval))
		}
	}
}

// Config returns the decorator configuration.
func (d *Decorator) Config() Config {
	return d.cfg
}

// SetExtent records a new panel size. It is the host's size-change
// notification.
func (d *Decorator) SetExtent(width, height float64) {
	d.extent = Extent{Width: width, Height: height}
}

// Extent returns the panel size last reported with SetExtent.
func (d *Decorator) Extent() Extent {
	return d.extent
}

// Layout solves the notch layout of edge e for the current extent.
func (d *Decorator) Layout(e Edge) Layout {
	return solveEdge(d.cfg, d.extent, e)
}

// Layouts solves all four edges, indexed by Edge.
func (d *Decorator) Layouts() [len(Edges)]Layout {
	var out [len(Edges)]Layout
	for _, e := range Edges {
		out[e] = d.Layout(e)
	}
	return out
}

// Draw runs one draw pass onto s.
func (d *Decorator) Draw(s Sink) {
	Decorate(s, d.cfg, d.extent)
}

// DrawEdge runs the draw pass of a single edge onto s. The fill colour is
// set before any primitive is issued.
func (d *Decorator) DrawEdge(s Sink, e Edge) {
	fn, ok := lookupEmitter(e, d.cfg.Style(e))
	if !ok {
		return
	}
	l := solveEdge(d.cfg, d.extent, e)
	if l.Empty() {
		return
	}
	s.SetFillColor(d.cfg.Color.Color())
	fn(s, l, d.cfg, d.extent)
}

// Primitives returns the primitives of one draw pass in emission order.
func (d *Decorator) Primitives() []Primitive {
	rec := NewRecorder()
	d.Draw(rec)
	return rec.Primitives()
}

// Decorate draws the notches of all four edges of a panel with extent ext
// onto s. Edges are processed independently in the order left, right, top,
// bottom; notches of adjacent edges may overlap at the corners.
func Decorate(s Sink, cfg Config, ext Extent) {
	if !cfg.Decorated() {
		return
	}
	log := Logger()
	colorSet := false
	for _, e := range Edges {
		style := cfg.Style(e)
		fn, ok := lookupEmitter(e, style)
		if !ok {
			continue
		}
		l := solveEdge(cfg, ext, e)
		log.Debug("notch: edge solved",
			slog.String("edge", e.String()),
			slog.String("style", style.String()),
			slog.Int("count", l.Count),
			slog.Float64("offset", l.Offset))
		if l.Empty() {
			continue
		}
		if !colorSet {
			s.SetFillColor(cfg.Color.Color())
			colorSet = true
		}
		fn(s, l, cfg, ext)
	}
}
