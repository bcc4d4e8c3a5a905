package export

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"figure-studio/tools/turtle"
)

// EPS writes Encapsulated PostScript. The bounding box is the canvas, so a
// rasterizer run with -dEPSCrop crops to exactly the drawing area.
type EPS struct{}

func (EPS) Format() string { return "eps" }

func (EPS) Export(w io.Writer, d *turtle.Drawing, title string) error {
	bw := bufio.NewWriter(w)
	p := func(format string, args ...any) {
		fmt.Fprintf(bw, format, args...)
	}

	width, height := int(math.Ceil(d.Width)), int(math.Ceil(d.Height))
	p("%%!PS-Adobe-3.0 EPSF-3.0\n")
	p("%%%%Creator: figure-studio\n")
	p("%%%%Title: %s\n", psComment(title))
	p("%%%%BoundingBox: 0 0 %d %d\n", width, height)
	p("%%%%HiResBoundingBox: 0 0 %s %s\n", num(d.Width), num(d.Height))
	p("%%%%Pages: 1\n")
	p("%%%%EndComments\n")
	p("gsave\n")
	if d.Background != nil {
		p("%s setrgbcolor 0 0 %s %s rectfill\n", psColor(d.Background), num(d.Width), num(d.Height))
	}
	p("%s %s translate\n", num(d.Width/2), num(d.Height/2))
	p("1 setlinejoin 1 setlinecap\n")

	for _, s := range d.Shapes {
		if !s.Filled() && !s.Stroked() {
			continue
		}
		p("newpath\n")
		switch s.Kind {
		case turtle.ShapeCircle:
			c := s.Circle
			p("%s %s moveto\n", num(c.Center.X+c.Radius), num(c.Center.Y))
			p("%s %s %s 0 360 arc closepath\n", num(c.Center.X), num(c.Center.Y), num(c.Radius))
		default:
			if len(s.Points) == 0 {
				continue
			}
			p("%s %s moveto\n", num(s.Points[0].X), num(s.Points[0].Y))
			for _, pt := range s.Points[1:] {
				p("%s %s lineto\n", num(pt.X), num(pt.Y))
			}
			if s.Closed || s.Filled() {
				p("closepath\n")
			}
		}
		if s.Filled() {
			p("gsave %s setrgbcolor fill grestore\n", psColor(s.Fill))
		}
		if s.Stroked() {
			p("%s setlinewidth %s setrgbcolor stroke\n", num(s.Width), psColor(s.Stroke))
		}
	}

	p("grestore\n")
	p("showpage\n")
	p("%%%%EOF\n")
	return bw.Flush()
}

func psColor(c color.Color) string {
	r, g, b := turtle.RGB8(c)
	return fmt.Sprintf("%s %s %s", num(float64(r)/255), num(float64(g)/255), num(float64(b)/255))
}

// psComment keeps a DSC comment on one line.
func psComment(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
