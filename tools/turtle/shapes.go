package turtle

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

var (
	ErrNegativeRadius = errors.New("turtle: negative radius")
	ErrNegativeSize   = errors.New("turtle: negative size")
	ErrTooFewSides    = errors.New("turtle: a polygon needs at least 3 sides")
)

// DrawCircle traces a filled circle of radius centred on the origin. The
// cursor starts at the bottom of the circle, (0, -radius), heading east.
func DrawCircle(t *Turtle, radius float64, fill color.Color) error {
	return DrawCircleFrom(t, 0, -radius, radius, fill)
}

// DrawCircleFrom traces a filled circle whose bottom point is (x, y).
func DrawCircleFrom(t *Turtle, x, y, radius float64, fill color.Color) error {
	if radius < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeRadius, radius)
	}
	t.PenUp()
	t.GoTo(x, y)
	t.SetHeading(0)
	t.PenDown()
	t.SetFillColor(fill)
	t.BeginFill()
	t.Circle(radius)
	t.EndFill()
	return nil
}

// PolygonSide returns the edge length of a regular polygon with the given
// number of sides and circumradius.
func PolygonSide(sides int, circumradius float64) float64 {
	return 2 * circumradius * math.Sin(math.Pi/float64(sides))
}

// DrawRegularPolygon traces a filled regular polygon centred on the origin.
// The first vertex lies at rotation degrees from the positive x axis and the
// outline runs clockwise back to it.
func DrawRegularPolygon(t *Turtle, sides int, circumradius float64, fill color.Color, rotation float64) error {
	if sides < 3 {
		return fmt.Errorf("%w: got %d", ErrTooFewSides, sides)
	}
	if circumradius < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeRadius, circumradius)
	}
	n := float64(sides)
	side := PolygonSide(sides, circumradius)

	t.PenUp()
	t.GoTo(0, 0)
	t.SetHeading(rotation)
	t.Forward(circumradius)
	t.Right(90 + 180/n)

	t.SetFillColor(fill)
	t.BeginFill()
	t.PenDown()
	for range sides {
		t.Forward(side)
		t.Right(360 / n)
	}
	t.EndFill()
	return nil
}

// DrawCenteredSquare traces a filled square of edge size centred on the
// origin and rotated by angle degrees.
func DrawCenteredSquare(t *Turtle, size, angle float64, fill color.Color) error {
	if size < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeSize, size)
	}
	t.PenUp()
	t.GoTo(0, 0)
	t.SetHeading(angle)
	t.Forward(-size / 2)
	t.Right(90)
	t.Forward(size / 2)
	t.Left(90)

	t.SetFillColor(fill)
	t.BeginFill()
	t.PenDown()
	for range 4 {
		t.Forward(size)
		t.Left(90)
	}
	t.EndFill()
	return nil
}

// DrawEdgePolygon traces a filled regular polygon with the given edge length
// whose first vertex is (x, y). The first edge heads east and the outline
// runs counter-clockwise.
func DrawEdgePolygon(t *Turtle, x, y float64, sides int, edge float64, fill color.Color) error {
	if sides < 3 {
		return fmt.Errorf("%w: got %d", ErrTooFewSides, sides)
	}
	if edge < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeSize, edge)
	}
	t.PenUp()
	t.GoTo(x, y)
	t.SetHeading(0)

	t.SetFillColor(fill)
	t.BeginFill()
	t.PenDown()
	for range sides {
		t.Forward(edge)
		t.Left(360 / float64(sides))
	}
	t.EndFill()
	return nil
}
