package export

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"

	"figure-studio/tools/turtle"
)

// PNG rasterizes a drawing in process with gg. It needs no external tool,
// which makes it the fallback when Ghostscript is unavailable.
type PNG struct {
	// Scale is the number of pixels per world unit. Zero means 1.
	Scale float64
}

func (PNG) Format() string { return "png" }

func (p PNG) Export(w io.Writer, d *turtle.Drawing, _ string) error {
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	width := int(math.Ceil(d.Width * scale))
	height := int(math.Ceil(d.Height * scale))

	dc := gg.NewContext(width, height)
	defer dc.Close()

	if d.Background != nil {
		dc.SetColor(d.Background)
		dc.DrawRectangle(0, 0, float64(width), float64(height))
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}

	// gg has y down and the origin in the top-left corner
	px := func(pt turtle.Point) (float64, float64) {
		return (pt.X + d.Width/2) * scale, (d.Height/2 - pt.Y) * scale
	}

	for i, s := range d.Shapes {
		if !s.Filled() && !s.Stroked() {
			continue
		}
		switch s.Kind {
		case turtle.ShapeCircle:
			x, y := px(s.Circle.Center)
			dc.DrawCircle(x, y, s.Circle.Radius*scale)
		default:
			if len(s.Points) == 0 {
				continue
			}
			dc.MoveTo(px(s.Points[0]))
			for _, pt := range s.Points[1:] {
				dc.LineTo(px(pt))
			}
			if s.Closed || s.Filled() {
				dc.ClosePath()
			}
		}

		if s.Filled() {
			dc.SetColor(s.Fill)
			if err := dc.FillPreserve(); err != nil {
				return fmt.Errorf("shape %d fill: %w", i, err)
			}
		}
		if s.Stroked() {
			dc.SetColor(s.Stroke)
			dc.SetLineWidth(s.Width * scale)
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("shape %d stroke: %w", i, err)
			}
		}
		dc.ClearPath()
	}

	return dc.EncodePNG(w)
}
