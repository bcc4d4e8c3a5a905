package figures

import (
	"math/rand/v2"

	"figure-studio/tools/turtle"
)

func redRampCircles(t *turtle.Turtle, _ *rand.Rand) error {
	outlined(t)
	for count, size := range LinearDecay(120, 20, 5) {
		fill := turtle.RGB(ChannelRamp(0, 50, count), 50, 50)
		if err := turtle.DrawCircle(t, size, fill); err != nil {
			return err
		}
	}
	return nil
}

func rgbRampCircles(t *turtle.Turtle, _ *rand.Rand) error {
	outlined(t)
	for count, size := range LinearDecay(120, 20, 5) {
		fill := turtle.RGB(
			ChannelRamp(0, 50, count),
			ChannelRamp(30, 30, count),
			ChannelRamp(160, -40, count),
		)
		if err := turtle.DrawCircle(t, size, fill); err != nil {
			return err
		}
	}
	return nil
}

func randomCircles(t *turtle.Turtle, rng *rand.Rand) error {
	outlined(t)
	for range 30 {
		x := RandomInt(rng, -75, 75)
		y := RandomInt(rng, -75, 75)
		size := RandomInt(rng, 0, 100)
		fill := RandomColor(rng, [2]int{0, 250}, [2]int{0, 250}, [2]int{0, 250})
		if err := turtle.DrawCircleFrom(t, float64(x), float64(y), float64(size), fill); err != nil {
			return err
		}
	}
	return nil
}

func randomConcentric(t *turtle.Turtle, rng *rand.Rand) error {
	outlined(t)
	for _, size := range LinearDecay(120, 20, 5) {
		fill := RandomColor(rng, [2]int{150, 250}, [2]int{0, 250}, [2]int{0, 250})
		if err := turtle.DrawCircle(t, size, fill); err != nil {
			return err
		}
	}
	return nil
}
