// Package config loads notch decorator settings from YAML or TOML files.
//
// Keys follow the panel attribute names:
//
//	vertical_style_left: circle     # 0/none, 1/circle (scallop), 2/triangle (zigzag)
//	vertical_style_right: 1
//	horizontal_style_top: none
//	horizontal_style_bottom: zigzag
//	color_parent_bg: "#f5f5f5"      # hex or CSS colour name
//	interval: 8
//	radius: 10
//
//	panel:                          # optional, used by hosts such as notchdemo
//	  width: 320
//	  height: 120
//	  color: tomato
//
// Missing keys keep the notch defaults. Geometric values are not validated
// here: the decorator already turns degenerate geometry into "no notches".
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/notch"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Errors reported while decoding configuration.
var (
	// ErrUnknownFormat is returned for file extensions other than
	// .yaml, .yml and .toml.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrBadColor is returned for colours that are neither hex nor a known name.
	ErrBadColor = errors.New("config: invalid colour")

	// ErrBadNumber is returned for non-numeric lengths.
	ErrBadNumber = errors.New("config: invalid number")
)

// Format is a configuration file syntax.
type Format int

const (
	// FormatYAML decodes with gopkg.in/yaml.v3.
	FormatYAML Format = iota
	// FormatTOML decodes with github.com/pelletier/go-toml/v2.
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// File is the decoded configuration. Values are kept as decoded so that
// styles may be written either as numbers or names, and lengths as
// integers or floats, in both formats.
type File struct {
	VerticalStyleLeft     any    `yaml:"vertical_style_left" toml:"vertical_style_left"`
	VerticalStyleRight    any    `yaml:"vertical_style_right" toml:"vertical_style_right"`
	HorizontalStyleTop    any    `yaml:"horizontal_style_top" toml:"horizontal_style_top"`
	HorizontalStyleBottom any    `yaml:"horizontal_style_bottom" toml:"horizontal_style_bottom"`
	ColorParentBG         string `yaml:"color_parent_bg" toml:"color_parent_bg"`
	Interval              any    `yaml:"interval" toml:"interval"`
	Radius                any    `yaml:"radius" toml:"radius"`

	Panel Panel `yaml:"panel" toml:"panel"`
}

// Panel describes the host panel for tools that render a complete coupon.
type Panel struct {
	Width  any    `yaml:"width" toml:"width"`
	Height any    `yaml:"height" toml:"height"`
	Color  string `yaml:"color" toml:"color"`
}

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	f, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	notch.Logger().Debug("config: loaded", "path", path, "format", format.String())
	return f, nil
}

// Decode reads a configuration in the given format from r.
func Decode(r io.Reader, format Format) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var f File
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %v: %w", format, err)
	}
	return &f, nil
}

// Options converts the file into decorator options. Keys that are absent
// produce no option, so the notch defaults apply.
func (f *File) Options() ([]notch.Option, error) {
	var opts []notch.Option

	styles := []struct {
		key  string
		edge notch.Edge
		val  any
	}{
		{"vertical_style_left", notch.EdgeLeft, f.VerticalStyleLeft},
		{"vertical_style_right", notch.EdgeRight, f.VerticalStyleRight},
		{"horizontal_style_top", notch.EdgeTop, f.HorizontalStyleTop},
		{"horizontal_style_bottom", notch.EdgeBottom, f.HorizontalStyleBottom},
	}
	for _, s := range styles {
		if s.val == nil {
			continue
		}
		style, err := styleValue(s.val)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", s.key, err)
		}
		opts = append(opts, notch.WithStyle(s.edge, style))
	}

	if f.ColorParentBG != "" {
		c, err := ParseColor(f.ColorParentBG)
		if err != nil {
			return nil, fmt.Errorf("config: color_parent_bg: %w", err)
		}
		opts = append(opts, notch.WithColor(c))
	}

	if f.Interval != nil {
		v, err := number(f.Interval)
		if err != nil {
			return nil, fmt.Errorf("config: interval: %w", err)
		}
		opts = append(opts, notch.WithInterval(v))
	}
	if f.Radius != nil {
		v, err := number(f.Radius)
		if err != nil {
			return nil, fmt.Errorf("config: radius: %w", err)
		}
		opts = append(opts, notch.WithRadius(v))
	}
	return opts, nil
}

// PanelSize returns the configured panel size; ok is false when either
// dimension is missing.
func (f *File) PanelSize() (width, height float64, ok bool, err error) {
	if f.Panel.Width == nil || f.Panel.Height == nil {
		return 0, 0, false, nil
	}
	if width, err = number(f.Panel.Width); err != nil {
		return 0, 0, false, fmt.Errorf("config: panel.width: %w", err)
	}
	if height, err = number(f.Panel.Height); err != nil {
		return 0, 0, false, fmt.Errorf("config: panel.height: %w", err)
	}
	return width, height, true, nil
}

// PanelColor returns the configured panel body colour, if any.
func (f *File) PanelColor() (c gg.RGBA, ok bool, err error) {
	if f.Panel.Color == "" {
		return gg.RGBA{}, false, nil
	}
	c, err = ParseColor(f.Panel.Color)
	if err != nil {
		return gg.RGBA{}, false, fmt.Errorf("config: panel.color: %w", err)
	}
	return c, true, nil
}

// ParseColor accepts "#rgb", "#rgba", "#rrggbb", "#rrggbbaa", "transparent"
// and CSS colour names such as "white" or "whitesmoke". Hex colours must be
// quoted in YAML, where '#' starts a comment.
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		return gg.Hex(hex), nil
	}
	name := strings.ToLower(s)
	if name == "transparent" {
		return gg.Transparent, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return gg.FromColor(c), nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
}

// styleValue converts a decoded style (integer or name) into a notch.Style.
func styleValue(v any) (notch.Style, error) {
	switch x := v.(type) {
	case string:
		return notch.ParseStyle(x)
	case int:
		return notch.StyleFromInt(x)
	case int64:
		return notch.StyleFromInt(int(x))
	case uint64:
		return notch.StyleFromInt(int(x))
	case float64:
		if x != math.Trunc(x) {
			return notch.StyleNone, fmt.Errorf("%w: %v", notch.ErrUnknownStyle, x)
		}
		return notch.StyleFromInt(int(x))
	}
	return notch.StyleNone, fmt.Errorf("%w: %v", notch.ErrUnknownStyle, v)
}

// number converts a decoded length into a float64.
func number(v any) (float64, error) {
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case float64:
		return x, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadNumber, x)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrBadNumber, v)
}
