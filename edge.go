package notch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Edge identifies one side of the decorated panel.
type Edge int

const (
	// EdgeLeft is the vertical edge at x = 0.
	EdgeLeft Edge = iota
	// EdgeRight is the vertical edge at x = width.
	EdgeRight
	// EdgeTop is the horizontal edge at y = 0.
	EdgeTop
	// EdgeBottom is the horizontal edge at y = height.
	EdgeBottom
)

// Edges lists all edges in draw order.
var Edges = [...]Edge{EdgeLeft, EdgeRight, EdgeTop, EdgeBottom}

// String returns the lower-case edge name.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return "Edge(" + strconv.Itoa(int(e)) + ")"
	}
}

// Vertical reports whether the edge runs along the panel height.
func (e Edge) Vertical() bool {
	return e == EdgeLeft || e == EdgeRight
}

// Style selects the notch shape drawn along an edge.
// The numeric values match the attribute encoding 0=none, 1=circle, 2=triangle.
type Style int

const (
	// StyleNone draws nothing on the edge.
	StyleNone Style = iota
	// StyleCircle draws scallops: full circles on horizontal edges,
	// half-circle arcs on vertical edges.
	StyleCircle
	// StyleTriangle draws a zigzag of inward-pointing triangles.
	StyleTriangle
)

// ErrUnknownStyle is returned by ParseStyle for unrecognised input.
var ErrUnknownStyle = errors.New("notch: unknown edge style")

// String returns the lower-case style name.
func (s Style) String() string {
	switch s {
	case StyleNone:
		return "none"
	case StyleCircle:
		return "circle"
	case StyleTriangle:
		return "triangle"
	default:
		return "Style(" + strconv.Itoa(int(s)) + ")"
	}
}

// Valid reports whether s is one of the defined styles.
func (s Style) Valid() bool {
	return s >= StyleNone && s <= StyleTriangle
}

// ParseStyle parses a style name ("none", "circle", "triangle", matched
// case-insensitively) or its numeric attribute value ("0", "1", "2").
// "scallop" and "zigzag" are accepted as aliases of circle and triangle,
// and an empty string means none.
func ParseStyle(s string) (Style, error) {
	key := cases.Fold().String(strings.TrimSpace(s))
	switch key {
	case "none", "":
		return StyleNone, nil
	case "circle", "scallop":
		return StyleCircle, nil
	case "triangle", "zigzag":
		return StyleTriangle, nil
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return StyleNone, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}
	return StyleFromInt(n)
}

// StyleFromInt converts the numeric attribute encoding into a Style.
func StyleFromInt(n int) (Style, error) {
	s := Style(n)
	if !s.Valid() {
		return StyleNone, fmt.Errorf("%w: %d", ErrUnknownStyle, n)
	}
	return s, nil
}
