// Package turtle implements a recording turtle-graphics cursor.
//
// A Turtle moves over a Drawing whose origin is the canvas centre with y
// pointing up. Everything the turtle traces with the pen down, or inside a
// BeginFill/EndFill pair, is recorded as a Shape that exporters can replay.
package turtle

import (
	"image/color"
	"math"
)

// Default canvas size in world units.
const (
	DefaultWidth  = 400
	DefaultHeight = 400
)

// Point is a position in world coordinates.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// ShapeKind distinguishes recorded outlines.
type ShapeKind int

const (
	ShapePolygon ShapeKind = iota
	ShapeCircle
)

func (k ShapeKind) String() string {
	switch k {
	case ShapePolygon:
		return "polygon"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Circle is a full circle outline.
type Circle struct {
	Center Point
	Radius float64
}

// Shape is one recorded outline with its paint.
type Shape struct {
	Kind ShapeKind

	// Points and Closed describe a ShapePolygon.
	Points []Point
	Closed bool

	// Circle describes a ShapeCircle.
	Circle Circle

	Fill   color.Color // nil when unfilled
	Stroke color.Color // nil when the pen was up while tracing
	Width  float64
}

// Filled reports whether the shape has a fill paint.
func (s Shape) Filled() bool {
	return s.Fill != nil
}

// Stroked reports whether the shape outline is drawn.
func (s Shape) Stroked() bool {
	return s.Stroke != nil && s.Width > 0
}

// Drawing is the accumulated output of a turtle.
type Drawing struct {
	Width      float64
	Height     float64
	Background color.Color
	Shapes     []Shape
}

// NewDrawing returns an empty white drawing of the given size.
func NewDrawing(width, height float64) *Drawing {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Drawing{
		Width:      width,
		Height:     height,
		Background: color.White,
	}
}

// Add appends a shape.
func (d *Drawing) Add(s Shape) {
	d.Shapes = append(d.Shapes, s)
}

// Reset removes every shape, keeping size and background.
func (d *Drawing) Reset() {
	d.Shapes = nil
}

// Circles returns the circle shapes in drawing order.
func (d *Drawing) Circles() []Circle {
	var out []Circle
	for _, s := range d.Shapes {
		if s.Kind == ShapeCircle {
			out = append(out, s.Circle)
		}
	}
	return out
}
