// Package figures holds the catalogue of procedural figures. Each figure
// draws onto a turtle; exporting and resetting is left to the caller.
package figures

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
	"sort"

	"figure-studio/tools/turtle"
)

// ErrUnknownFigure is returned by Select for numbers outside the catalogue.
var ErrUnknownFigure = errors.New("unknown figure")

// DrawFunc renders a figure. rng is the only source of randomness a figure
// may use.
type DrawFunc func(t *turtle.Turtle, rng *rand.Rand) error

// Figure is one entry of the catalogue.
type Figure struct {
	Number int
	Name   string
	Title  string
	Draw   DrawFunc
}

// ID returns the figure's output stem, e.g. "figure5".
func (f Figure) ID() string {
	return fmt.Sprintf("figure%d", f.Number)
}

// FileName returns the output file name for the given extension.
func (f Figure) FileName(ext string) string {
	return f.ID() + "." + ext
}

// Options tweak the catalogue.
type Options struct {
	// InitialColor is the starting fill of the alternating squares figure.
	// Defaults to white.
	InitialColor color.Color
}

var (
	black  = turtle.MustNamed("black")
	white  = turtle.MustNamed("white")
	red    = turtle.MustNamed("red")
	green  = turtle.MustNamed("green")
	blue   = turtle.MustNamed("blue")
	yellow = turtle.MustNamed("yellow")
)

// Catalogue returns every figure in output order.
func Catalogue(opts Options) []Figure {
	initial := opts.InitialColor
	if initial == nil {
		initial = white
	}
	return []Figure{
		{1, "nested-shapes", "Nested circle, hexagon, square and triangle", nestedShapes},
		{2, "nested-squares", "Nested red squares", nestedSquares},
		{3, "shrinking-hexagons", "Hexagons shrinking by 10%", shrinkingHexagons},
		{4, "shrinking-triangles", "Triangles halving in size", shrinkingTriangles},
		{5, "shrinking-circles", "Circles shrinking by 5", shrinkingCircles},

		{6, "red-white-squares", "Rotating squares, red and white", rotatingSquares(red, alternate(red, white))},
		{7, "blue-white-squares", "Rotating squares, blue and white", rotatingSquares(blue, alternate(blue, white))},
		{8, "white-blue-squares", "Rotating squares, white and blue", rotatingSquares(white, alternate(white, blue))},
		{9, "angle-colored-squares", "Rotating squares colored by angle", rotatingSquares(white, byAngle(90, red, white))},
		{10, "alternating-squares", "Rotating squares from a chosen color", rotatingSquares(initial, alternate(white, blue))},

		{11, "count-spiral", "Square spiral shrinking with the count", countSpiral},
		{12, "divided-squares", "Squares sized by base over count", dividedSquares},

		{13, "every-fifth", "Every fifth square green and rotated", everyNthSquare(5)},
		{14, "every-third", "Every third square green and rotated", everyNthSquare(3)},
		{15, "every-third-hexagon", "Every third hexagon green", everyNthHexagon(3)},
		{16, "even-odd-hexagons", "Even hexagons green", everyNthHexagon(2)},

		{17, "moving-hexagons", "Hexagons drifting right", movingHexagons},
		{18, "moving-triangles", "Triangles drifting right and down", movingTriangles},
		{19, "zigzag-vertical", "Sun with zigzagging triangles", zigzagVertical},
		{20, "zigzag-horizontal", "Triangles zigzagging left and right", zigzagHorizontal},

		{21, "red-ramp-circles", "Concentric circles with a red ramp", redRampCircles},
		{22, "rgb-ramp-circles", "Concentric circles with red, green and blue ramps", rgbRampCircles},
		{23, "random-circles", "Circles at random places, sizes and colors", randomCircles},
		{24, "random-concentric", "Concentric circles with random colors", randomConcentric},
	}
}

// Select returns the figures with the given numbers, in catalogue order.
// An empty selection returns the whole catalogue.
func Select(catalogue []Figure, numbers []int) ([]Figure, error) {
	if len(numbers) == 0 {
		return catalogue, nil
	}
	byNumber := make(map[int]Figure, len(catalogue))
	for _, f := range catalogue {
		byNumber[f.Number] = f
	}

	seen := make(map[int]bool, len(numbers))
	var out []Figure
	for _, n := range numbers {
		f, ok := byNumber[n]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownFigure, n)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

// outlined sets the thin black border most figures use.
func outlined(t *turtle.Turtle) {
	t.SetWidth(1)
	t.SetPenColor(black)
}
