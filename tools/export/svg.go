package export

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"figure-studio/tools/turtle"
)

// svgUnits is the number of SVG user units per world unit. svgo takes
// integer coordinates, so shapes are drawn scaled up inside a group that
// scales back down.
const svgUnits = 100

// SVG writes a standalone SVG document.
type SVG struct{}

func (SVG) Format() string { return "svg" }

func (SVG) Export(w io.Writer, d *turtle.Drawing, title string) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	width, height := int(math.Ceil(d.Width)), int(math.Ceil(d.Height))
	canvas.Start(width, height)
	if title != "" {
		canvas.Title(title)
	}
	if d.Background != nil {
		canvas.Rect(0, 0, width, height, "fill:"+svgColor(d.Background))
	}
	// world coordinates have y up and the origin in the middle
	canvas.Gtransform(fmt.Sprintf("translate(%s,%s) scale(%s,%s)",
		num(d.Width/2), num(d.Height/2), num(1.0/svgUnits), num(-1.0/svgUnits)))

	for _, s := range d.Shapes {
		if !s.Filled() && !s.Stroked() {
			continue
		}
		style := svgStyle(s)
		switch s.Kind {
		case turtle.ShapeCircle:
			c := s.Circle
			canvas.Circle(units(c.Center.X), units(c.Center.Y), units(c.Radius), style)
		default:
			xs := make([]int, len(s.Points))
			ys := make([]int, len(s.Points))
			for i, p := range s.Points {
				xs[i], ys[i] = units(p.X), units(p.Y)
			}
			if s.Closed || s.Filled() {
				canvas.Polygon(xs, ys, style)
			} else {
				canvas.Polyline(xs, ys, style)
			}
		}
	}

	canvas.Gend()
	canvas.End()
	return ew.err
}

func units(v float64) int {
	return int(math.Round(v * svgUnits))
}

func svgStyle(s turtle.Shape) string {
	fill := "none"
	if s.Filled() {
		fill = svgColor(s.Fill)
	}
	if !s.Stroked() {
		return fmt.Sprintf("fill:%s;stroke:none", fill)
	}
	return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%s;stroke-linejoin:round",
		fill, svgColor(s.Stroke), num(s.Width*svgUnits))
}

func svgColor(c color.Color) string {
	r, g, b := turtle.RGB8(c)
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}
