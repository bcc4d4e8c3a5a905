package turtle

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b Point, tol float64) bool {
	return a.Distance(b) <= tol
}

func TestForwardAndTurns(t *testing.T) {
	tt := New(nil)
	tt.PenUp()

	tt.Forward(10)
	tt.Left(90)
	tt.Forward(10)
	tt.Right(180)
	tt.Backward(5)

	if got, want := tt.Position(), (Point{10, 15}); !near(got, want, eps) {
		t.Errorf("position = %v, want %v", got, want)
	}
	if got := tt.Heading(); math.Abs(got-270) > eps {
		t.Errorf("heading = %v, want 270", got)
	}
}

func TestHeadingNormalization(t *testing.T) {
	tests := []struct {
		set  float64
		want float64
	}{
		{0, 0},
		{360, 0},
		{-90, 270},
		{450, 90},
		{-720, 0},
	}
	tt := New(nil)
	for _, tc := range tests {
		tt.SetHeading(tc.set)
		if got := tt.Heading(); math.Abs(got-tc.want) > eps {
			t.Errorf("SetHeading(%v): heading = %v, want %v", tc.set, got, tc.want)
		}
	}
}

func TestPenUpMovesDoNotRecord(t *testing.T) {
	tt := New(nil)
	tt.PenUp()
	tt.GoTo(50, 50)
	tt.Forward(20)
	tt.Circle(10)

	if n := len(tt.Drawing().Shapes); n != 0 {
		t.Fatalf("recorded %d shapes with the pen up", n)
	}
}

func TestStrokeOnlyOutline(t *testing.T) {
	tt := New(nil)
	tt.SetPenColor(color.Black)
	tt.Forward(10)
	tt.Left(90)
	tt.Forward(10)
	tt.PenUp()

	shapes := tt.Drawing().Shapes
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(shapes))
	}
	s := shapes[0]
	if s.Kind != ShapePolygon || s.Filled() || !s.Stroked() {
		t.Errorf("unexpected shape %+v", s)
	}
	if s.Closed {
		t.Error("open polyline reported as closed")
	}
	if len(s.Points) != 3 {
		t.Errorf("got %d points, want 3", len(s.Points))
	}
}

func TestFillWithPenUpHasNoStroke(t *testing.T) {
	tt := New(nil)
	tt.PenUp()
	tt.BeginFill()
	for range 3 {
		tt.Forward(10)
		tt.Left(120)
	}
	tt.EndFill()

	shapes := tt.Drawing().Shapes
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(shapes))
	}
	if shapes[0].Stroked() {
		t.Error("fill traced with the pen up should not be stroked")
	}
	if !shapes[0].Filled() || !shapes[0].Closed {
		t.Errorf("expected a closed filled triangle, got %+v", shapes[0])
	}
}

func TestCircleCentre(t *testing.T) {
	tests := []struct {
		name    string
		heading float64
		radius  float64
		want    Point
	}{
		{"east", 0, 10, Point{0, 10}},
		{"north", 90, 10, Point{-10, 0}},
		{"clockwise", 0, -10, Point{0, -10}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tt := New(nil)
			tt.SetHeading(tc.heading)
			tt.BeginFill()
			tt.Circle(tc.radius)
			tt.EndFill()

			circles := tt.Drawing().Circles()
			if len(circles) != 1 {
				t.Fatalf("got %d circles, want 1", len(circles))
			}
			if !near(circles[0].Center, tc.want, eps) {
				t.Errorf("centre = %v, want %v", circles[0].Center, tc.want)
			}
			if circles[0].Radius != math.Abs(tc.radius) {
				t.Errorf("radius = %v, want %v", circles[0].Radius, math.Abs(tc.radius))
			}
			if !near(tt.Position(), Point{}, eps) {
				t.Errorf("circle moved the cursor to %v", tt.Position())
			}
		})
	}
}

func TestCircleThenLineFlattens(t *testing.T) {
	tt := New(nil)
	tt.BeginFill()
	tt.Circle(10)
	tt.Forward(5)
	tt.EndFill()

	shapes := tt.Drawing().Shapes
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(shapes))
	}
	s := shapes[0]
	if s.Kind != ShapePolygon {
		t.Fatalf("kind = %v, want polygon", s.Kind)
	}
	if len(s.Points) != circleSteps+2 {
		t.Errorf("got %d points, want %d", len(s.Points), circleSteps+2)
	}
	for _, p := range s.Points[:circleSteps+1] {
		if d := p.Distance(Point{0, 10}); math.Abs(d-10) > 1e-9 {
			t.Fatalf("flattened point %v is %v from the centre", p, d)
		}
	}
}

func TestReset(t *testing.T) {
	tt := New(nil)
	tt.SetWidth(3)
	tt.SetFillColor(color.White)
	tt.GoTo(10, 10)
	tt.Left(45)
	tt.PenUp()
	tt.Reset()

	if len(tt.Drawing().Shapes) != 0 {
		t.Error("Reset kept shapes")
	}
	if tt.Position() != (Point{}) || tt.Heading() != 0 {
		t.Errorf("Reset left cursor at %v heading %v", tt.Position(), tt.Heading())
	}
	if !tt.IsDown() || tt.Width() != 1 || !SameColor(tt.FillColor(), color.Black) {
		t.Error("Reset did not restore pen state")
	}
}

func TestRegularPolygonCloses(t *testing.T) {
	for sides := 3; sides <= 12; sides++ {
		for _, radius := range []float64{0.5, 1, 37.5, 125, 1000} {
			for _, rotation := range []float64{0, 45, 90, 217} {
				name := fmt.Sprintf("n%d_r%g_rot%g", sides, radius, rotation)
				t.Run(name, func(t *testing.T) {
					tt := New(nil)
					if err := DrawRegularPolygon(tt, sides, radius, color.White, rotation); err != nil {
						t.Fatal(err)
					}
					shapes := tt.Drawing().Shapes
					if len(shapes) != 1 {
						t.Fatalf("got %d shapes, want 1", len(shapes))
					}
					pts := shapes[0].Points
					if len(pts) != sides+1 {
						t.Fatalf("got %d points, want %d", len(pts), sides+1)
					}
					tol := 1e-9 * math.Max(radius, 1)
					if !near(tt.Position(), pts[0], tol) {
						t.Errorf("cursor ended at %v, started at %v", tt.Position(), pts[0])
					}
					for i, p := range pts {
						if d := p.Distance(Point{}); math.Abs(d-radius) > tol {
							t.Errorf("vertex %d at distance %v, want %v", i, d, radius)
						}
					}
					sin, cos := math.Sincos(rotation * math.Pi / 180)
					if want := (Point{radius * cos, radius * sin}); !near(pts[0], want, tol) {
						t.Errorf("first vertex %v, want %v", pts[0], want)
					}
				})
			}
		}
	}
}

func TestPolygonSide(t *testing.T) {
	if got := PolygonSide(6, 10); math.Abs(got-10) > 1e-12 {
		t.Errorf("hexagon side = %v, want 10", got)
	}
	if got := PolygonSide(4, 1); math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("square side = %v, want sqrt(2)", got)
	}
}

func TestDrawCircle(t *testing.T) {
	tt := New(nil)
	red := MustNamed("red")
	if err := DrawCircle(tt, 50, red); err != nil {
		t.Fatal(err)
	}
	shapes := tt.Drawing().Shapes
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(shapes))
	}
	s := shapes[0]
	if s.Kind != ShapeCircle || s.Circle.Center != (Point{}) || s.Circle.Radius != 50 {
		t.Errorf("unexpected circle %+v", s.Circle)
	}
	if !SameColor(s.Fill, red) || !s.Stroked() {
		t.Errorf("circle should be filled red and stroked, got %+v", s)
	}
}

func TestPrimitiveValidation(t *testing.T) {
	tt := New(nil)
	tests := []struct {
		name string
		draw func() error
		want error
	}{
		{"negative circle", func() error { return DrawCircle(tt, -1, color.White) }, ErrNegativeRadius},
		{"two sides", func() error { return DrawRegularPolygon(tt, 2, 10, color.White, 0) }, ErrTooFewSides},
		{"negative polygon", func() error { return DrawRegularPolygon(tt, 5, -3, color.White, 0) }, ErrNegativeRadius},
		{"negative square", func() error { return DrawCenteredSquare(tt, -1, 0, color.White) }, ErrNegativeSize},
		{"edge polygon sides", func() error { return DrawEdgePolygon(tt, 0, 0, 1, 10, color.White) }, ErrTooFewSides},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.draw(); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
	if n := len(tt.Drawing().Shapes); n != 0 {
		t.Errorf("rejected primitives recorded %d shapes", n)
	}
}

func TestCenteredSquare(t *testing.T) {
	for _, angle := range []float64{0, 30, 45, 120} {
		tt := New(nil)
		if err := DrawCenteredSquare(tt, 100, angle, color.White); err != nil {
			t.Fatal(err)
		}
		pts := tt.Drawing().Shapes[0].Points
		var cx, cy float64
		for _, p := range pts[:4] {
			cx += p.X / 4
			cy += p.Y / 4
			if d := p.Distance(Point{}); math.Abs(d-50*math.Sqrt2) > 1e-9 {
				t.Errorf("angle %v: corner %v at distance %v", angle, p, d)
			}
		}
		if !near(Point{cx, cy}, Point{}, 1e-9) {
			t.Errorf("angle %v: square centred at (%v, %v)", angle, cx, cy)
		}
	}
}

func TestEdgePolygonStartsAtVertex(t *testing.T) {
	tt := New(nil)
	if err := DrawEdgePolygon(tt, 15, -5, 6, 50, color.White); err != nil {
		t.Fatal(err)
	}
	pts := tt.Drawing().Shapes[0].Points
	if pts[0] != (Point{15, -5}) {
		t.Errorf("first vertex %v, want (15, -5)", pts[0])
	}
	if !near(pts[1], Point{65, -5}, 1e-9) {
		t.Errorf("second vertex %v, want (65, -5)", pts[1])
	}
	if !near(pts[len(pts)-1], pts[0], 1e-9) {
		t.Errorf("outline does not close: %v", pts[len(pts)-1])
	}
}

func TestSeparateShapesNotJoined(t *testing.T) {
	tt := New(nil)
	if err := DrawRegularPolygon(tt, 6, 100, color.White, 0); err != nil {
		t.Fatal(err)
	}
	if err := DrawCircle(tt, 40, color.White); err != nil {
		t.Fatal(err)
	}
	if err := DrawCenteredSquare(tt, 30, 10, color.White); err != nil {
		t.Fatal(err)
	}
	if n := len(tt.Drawing().Shapes); n != 3 {
		t.Errorf("got %d shapes, want 3", n)
	}
}

func TestNamed(t *testing.T) {
	c, err := Named(" Red ")
	if err != nil {
		t.Fatal(err)
	}
	if c != RGB(255, 0, 0) {
		t.Errorf("red = %v", c)
	}
	if _, err := Named("not-a-color"); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("err = %v, want ErrUnknownColor", err)
	}
	r, g, b := RGB8(RGB(1, 2, 3))
	if r != 1 || g != 2 || b != 3 {
		t.Errorf("RGB8 = %d %d %d", r, g, b)
	}
}
