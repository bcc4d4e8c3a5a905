package figures

import (
	"math/rand/v2"

	"figure-studio/tools/turtle"
)

// Edge length shared by the drifting figures.
const driftEdge = 50

func movingHexagons(t *turtle.Turtle, _ *rand.Rand) error {
	outlined(t)
	for count := range 10 {
		x := Drift(0, 5, count)
		if err := turtle.DrawEdgePolygon(t, x, -5, 6, driftEdge, red); err != nil {
			return err
		}
	}
	return nil
}

func movingTriangles(t *turtle.Turtle, _ *rand.Rand) error {
	outlined(t)
	for count := range 11 {
		x := Drift(-50, 10, count)
		y := Drift(25, -5, count)
		if err := turtle.DrawEdgePolygon(t, x, y, 3, driftEdge, red); err != nil {
			return err
		}
	}
	return nil
}

func zigzagVertical(t *turtle.Turtle, _ *rand.Rand) error {
	outlined(t)
	if err := turtle.DrawCircleFrom(t, 0, 0, 50, yellow); err != nil {
		return err
	}
	for count := range 11 {
		x := Zigzag(count, 5)
		y := Alternate(count, -2*float64(count), -3*float64(count))
		if err := turtle.DrawEdgePolygon(t, x, y, 3, driftEdge, green); err != nil {
			return err
		}
	}
	return nil
}

func zigzagHorizontal(t *turtle.Turtle, _ *rand.Rand) error {
	outlined(t)
	for count := range 10 {
		if err := turtle.DrawEdgePolygon(t, Zigzag(count, 5), 0, 3, driftEdge, green); err != nil {
			return err
		}
	}
	return nil
}
