package figures

import (
	"math/rand/v2"

	"figure-studio/tools/turtle"
)

func nestedShapes(t *turtle.Turtle, _ *rand.Rand) error {
	const radius = 150
	if err := turtle.DrawCircle(t, radius, red); err != nil {
		return err
	}
	if err := turtle.DrawRegularPolygon(t, 6, radius, yellow, 90); err != nil {
		return err
	}
	if err := turtle.DrawRegularPolygon(t, 4, radius, green, 45); err != nil {
		return err
	}
	return turtle.DrawRegularPolygon(t, 3, radius, blue, 90)
}

func nestedSquares(t *turtle.Turtle, _ *rand.Rand) error {
	outlined(t)
	for _, size := range LinearDecay(150, 10, 15) {
		if err := turtle.DrawCenteredSquare(t, size, 0, red); err != nil {
			return err
		}
	}
	return nil
}

func shrinkingHexagons(t *turtle.Turtle, _ *rand.Rand) error {
	for _, size := range GeometricDecay(125, 0.9, 15) {
		if err := turtle.DrawRegularPolygon(t, 6, size, yellow, 0); err != nil {
			return err
		}
	}
	return nil
}

func shrinkingTriangles(t *turtle.Turtle, _ *rand.Rand) error {
	for _, size := range GeometricDecay(120, 0.5, 6) {
		if err := turtle.DrawRegularPolygon(t, 3, size, green, 90); err != nil {
			return err
		}
	}
	return nil
}

func shrinkingCircles(t *turtle.Turtle, _ *rand.Rand) error {
	for _, size := range LinearDecay(125, 5, 25) {
		if err := turtle.DrawCircle(t, size, blue); err != nil {
			return err
		}
	}
	return nil
}
