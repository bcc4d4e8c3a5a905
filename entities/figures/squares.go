package figures

import (
	"image/color"
	"math/rand/v2"

	"figure-studio/tools/turtle"
)

// ColorStep picks the next fill from the current one and the angle the next
// square will be drawn at.
type ColorStep func(current color.Color, angle float64) color.Color

// alternate flips to b after a and back to a after anything else.
func alternate(a, b color.Color) ColorStep {
	return func(current color.Color, _ float64) color.Color {
		if turtle.SameColor(current, a) {
			return b
		}
		return a
	}
}

// byAngle picks above once the angle exceeds limit.
func byAngle(limit float64, above, below color.Color) ColorStep {
	return func(_ color.Color, angle float64) color.Color {
		if angle > limit {
			return above
		}
		return below
	}
}

func rotatingSquares(initial color.Color, next ColorStep) DrawFunc {
	return func(t *turtle.Turtle, _ *rand.Rand) error {
		const n = 10
		outlined(t)
		sizes := LinearDecay(120, 10, n)
		angles := AngularSweep(30, 30, n+1)
		fill := initial
		for i, size := range sizes {
			if err := turtle.DrawCenteredSquare(t, size, angles[i], fill); err != nil {
				return err
			}
			fill = next(fill, angles[i+1])
		}
		return nil
	}
}

func countSpiral(t *turtle.Turtle, _ *rand.Rand) error {
	const n = 30
	outlined(t)
	sizes := LinearDecay(145, 5, n)
	angles := AngularSweep(5, 5, n)
	for i, size := range sizes {
		if err := turtle.DrawCenteredSquare(t, size, angles[i], blue); err != nil {
			return err
		}
	}
	return nil
}

func dividedSquares(t *turtle.Turtle, _ *rand.Rand) error {
	const n = 10
	outlined(t)
	sizes := DividedDecay(150, n)
	angles := AngularSweep(5, 5, n)
	for i, size := range sizes {
		if err := turtle.DrawCenteredSquare(t, size, angles[i], green); err != nil {
			return err
		}
	}
	return nil
}

func everyNthSquare(nth int) DrawFunc {
	return func(t *turtle.Turtle, _ *rand.Rand) error {
		outlined(t)
		for i, size := range LinearDecay(115, 10, 12) {
			count := i + 1
			fill := Switch[color.Color](count, nth, white, green)
			angle := Switch(count, nth, 0.0, 45.0)
			if err := turtle.DrawCenteredSquare(t, size, angle, fill); err != nil {
				return err
			}
		}
		return nil
	}
}

func everyNthHexagon(nth int) DrawFunc {
	return func(t *turtle.Turtle, _ *rand.Rand) error {
		outlined(t)
		for i, size := range LinearDecay(115, 10, 12) {
			fill := Switch[color.Color](i+1, nth, white, green)
			if err := turtle.DrawRegularPolygon(t, 6, size, fill, 0); err != nil {
				return err
			}
		}
		return nil
	}
}
