package turtle

import (
	"image/color"
	"math"
)

// circleSteps is the number of segments used when a circle has to be
// flattened into a longer outline.
const circleSteps = 72

// Turtle is a drawing cursor recording into a Drawing.
//
// Headings are in degrees, 0 points east and positive angles turn
// counter-clockwise. A Turtle is not safe for concurrent use.
type Turtle struct {
	pos       Point
	heading   float64
	penDown   bool
	penColor  color.Color
	fillColor color.Color
	width     float64

	// current open outline
	filling bool
	stroked bool
	path    []Point
	circle  *Circle

	drawing *Drawing
}

// New returns a turtle at the origin of d, heading east with the pen down.
func New(d *Drawing) *Turtle {
	if d == nil {
		d = NewDrawing(DefaultWidth, DefaultHeight)
	}
	t := &Turtle{drawing: d}
	t.Reset()
	return t
}

// Reset clears the drawing and restores the initial cursor state.
func (t *Turtle) Reset() {
	t.drawing.Reset()
	t.pos = Point{}
	t.heading = 0
	t.penDown = true
	t.penColor = color.Black
	t.fillColor = color.Black
	t.width = 1
	t.filling = false
	t.stroked = false
	t.path = nil
	t.circle = nil
}

// Drawing returns the drawing the turtle records into.
func (t *Turtle) Drawing() *Drawing { return t.drawing }

// Position returns the cursor position.
func (t *Turtle) Position() Point { return t.pos }

// Heading returns the cursor heading in degrees within [0, 360).
func (t *Turtle) Heading() float64 { return t.heading }

// IsDown reports whether the pen is down.
func (t *Turtle) IsDown() bool { return t.penDown }

// Filling reports whether a fill is in progress.
func (t *Turtle) Filling() bool { return t.filling }

func (t *Turtle) PenColor() color.Color  { return t.penColor }
func (t *Turtle) FillColor() color.Color { return t.fillColor }
func (t *Turtle) Width() float64         { return t.width }

func (t *Turtle) SetPenColor(c color.Color)  { t.penColor = c }
func (t *Turtle) SetFillColor(c color.Color) { t.fillColor = c }

// SetWidth sets the stroke width. Negative widths are clamped to zero.
func (t *Turtle) SetWidth(w float64) {
	t.width = math.Max(w, 0)
}

// PenUp lifts the pen. Outside a fill this ends the current outline.
func (t *Turtle) PenUp() {
	t.penDown = false
	if !t.filling {
		t.flush()
	}
}

// PenDown lowers the pen.
func (t *Turtle) PenDown() {
	t.penDown = true
}

// SetHeading points the turtle at angle degrees.
func (t *Turtle) SetHeading(angle float64) {
	t.heading = normalize(angle)
}

// Left turns counter-clockwise by angle degrees.
func (t *Turtle) Left(angle float64) {
	t.heading = normalize(t.heading + angle)
}

// Right turns clockwise by angle degrees.
func (t *Turtle) Right(angle float64) {
	t.heading = normalize(t.heading - angle)
}

// Forward moves distance units along the heading.
func (t *Turtle) Forward(distance float64) {
	sin, cos := math.Sincos(radians(t.heading))
	t.moveTo(Point{t.pos.X + distance*cos, t.pos.Y + distance*sin})
}

// Backward moves distance units against the heading.
func (t *Turtle) Backward(distance float64) {
	t.Forward(-distance)
}

// GoTo moves to (x, y) without changing the heading.
func (t *Turtle) GoTo(x, y float64) {
	t.moveTo(Point{x, y})
}

// Circle traces a full circle of the given radius. The centre lies radius
// units to the left of the turtle; a negative radius puts it on the right.
// Position and heading are unchanged afterwards.
func (t *Turtle) Circle(radius float64) {
	if !t.penDown && !t.filling {
		return
	}
	sin, cos := math.Sincos(radians(t.heading))
	c := Circle{
		Center: Point{t.pos.X - radius*sin, t.pos.Y + radius*cos},
		Radius: math.Abs(radius),
	}
	if t.penDown {
		t.stroked = true
	}

	t.begin()
	if len(t.path) == 1 && t.circle == nil {
		t.circle = &c
		return
	}
	t.flatten()
	t.path = append(t.path, circlePoints(c, t.pos, radius < 0)...)
}

// BeginFill starts collecting a filled outline at the current position.
func (t *Turtle) BeginFill() {
	t.flush()
	t.filling = true
	t.begin()
}

// EndFill closes the outline collected since BeginFill and records it
// filled with the current fill color.
func (t *Turtle) EndFill() {
	if !t.filling {
		return
	}
	t.filling = false

	switch {
	case t.circle != nil:
		t.emit(t.fillColor, true)
	case len(t.path) >= 3:
		t.emit(t.fillColor, true)
	case t.stroked && len(t.path) == 2:
		t.emit(nil, false)
	}
	t.clear()
}

func (t *Turtle) moveTo(p Point) {
	if t.penDown || t.filling {
		t.begin()
		t.flatten()
		t.path = append(t.path, p)
		if t.penDown {
			t.stroked = true
		}
	}
	t.pos = p
}

func (t *Turtle) begin() {
	if t.path == nil {
		t.path = []Point{t.pos}
	}
}

// flatten turns a pending circle into outline points so that further
// segments can be appended to it.
func (t *Turtle) flatten() {
	if t.circle == nil {
		return
	}
	start := t.path[0]
	t.path = append(t.path[:1], circlePoints(*t.circle, start, false)...)
	t.circle = nil
}

// flush records the open stroke-only outline, if any.
func (t *Turtle) flush() {
	if t.stroked && (t.circle != nil || len(t.path) >= 2) {
		t.emit(nil, false)
	}
	t.clear()
}

func (t *Turtle) clear() {
	t.path = nil
	t.circle = nil
	t.stroked = false
}

func (t *Turtle) emit(fill color.Color, closed bool) {
	s := Shape{Fill: fill, Width: t.width}
	if t.stroked {
		s.Stroke = t.penColor
	}
	if t.circle != nil {
		s.Kind = ShapeCircle
		s.Circle = *t.circle
	} else {
		s.Kind = ShapePolygon
		s.Points = append([]Point(nil), t.path...)
		s.Closed = closed || closes(t.path)
	}
	t.drawing.Add(s)
}

// circlePoints returns the points of a full turn around c starting just
// after start and ending on start.
func circlePoints(c Circle, start Point, clockwise bool) []Point {
	if c.Radius == 0 {
		return []Point{start}
	}
	a0 := math.Atan2(start.Y-c.Center.Y, start.X-c.Center.X)
	dir := 1.0
	if clockwise {
		dir = -1
	}
	pts := make([]Point, 0, circleSteps)
	for i := 1; i < circleSteps; i++ {
		sin, cos := math.Sincos(a0 + dir*2*math.Pi*float64(i)/circleSteps)
		pts = append(pts, Point{c.Center.X + c.Radius*cos, c.Center.Y + c.Radius*sin})
	}
	return append(pts, start)
}

func closes(path []Point) bool {
	return len(path) > 2 && path[0].Distance(path[len(path)-1]) < 1e-9
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
