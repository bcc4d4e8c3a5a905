package turtle

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned by Named for names outside the SVG 1.1 set.
var ErrUnknownColor = errors.New("turtle: unknown color name")

// Named resolves an SVG 1.1 color keyword such as "red" or "lightblue".
func Named(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return c, nil
}

// MustNamed is like Named but panics on unknown names.
func MustNamed(name string) color.RGBA {
	c, err := Named(name)
	if err != nil {
		panic(err)
	}
	return c
}

// RGB returns an opaque color from 8-bit channels.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// SameColor reports whether a and b resolve to the same RGBA value.
func SameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// RGB8 returns the 8-bit red, green and blue channels of c.
func RGB8(c color.Color) (r, g, b uint8) {
	cr, cg, cb, _ := c.RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8)
}
