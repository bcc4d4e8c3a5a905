package figures

import (
	"image/color"
	"math"
	"math/rand/v2"

	"figure-studio/tools/turtle"
)

// GeometricDecay returns n sizes starting at start, each ratio times the
// previous one.
func GeometricDecay(start, ratio float64, n int) []float64 {
	out := make([]float64, n)
	size := start
	for i := range out {
		out[i] = size
		size *= ratio
	}
	return out
}

// LinearDecay returns n sizes starting at start, each step smaller than the
// previous one.
func LinearDecay(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start - float64(i)*step
	}
	return out
}

// DividedDecay returns base/1, base/2, ..., base/n.
func DividedDecay(base float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = base / float64(i+1)
	}
	return out
}

// AngularSweep returns n rotations starting at start and advancing by step.
func AngularSweep(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// EveryNth reports whether the 1-indexed iteration i is a multiple of n.
func EveryNth(i, n int) bool {
	return n > 0 && i%n == 0
}

// Switch returns alt on every nth iteration (1-indexed) and base otherwise.
func Switch[T any](i, n int, base, alt T) T {
	if EveryNth(i, n) {
		return alt
	}
	return base
}

// Alternate returns even for even i and odd for odd i.
func Alternate[T any](i int, even, odd T) T {
	if i%2 == 0 {
		return even
	}
	return odd
}

// Drift returns the offset start + i*step.
func Drift(start, step float64, i int) float64 {
	return start + float64(i)*step
}

// Zigzag returns i*step for even i and -i*step for odd i.
func Zigzag(i int, step float64) float64 {
	d := float64(i) * step
	return Alternate(i, d, -d)
}

// ChannelRamp returns the color channel start + i*step clamped to 0..255.
func ChannelRamp(start, step, i int) uint8 {
	v := start + i*step
	return uint8(max(0, min(255, v)))
}

// RandomInt returns a uniform integer in the inclusive range [lo, hi].
func RandomInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// RandomColor draws each channel uniformly from its inclusive range.
func RandomColor(rng *rand.Rand, r, g, b [2]int) color.RGBA {
	return turtle.RGB(
		uint8(RandomInt(rng, r[0], r[1])),
		uint8(RandomInt(rng, g[0], g[1])),
		uint8(RandomInt(rng, b[0], b[1])),
	)
}

// Decreasing reports whether every element is strictly smaller than the
// one before it.
func Decreasing(seq []float64) bool {
	for i := 1; i < len(seq); i++ {
		if !(seq[i] < seq[i-1]) || math.IsNaN(seq[i]) {
			return false
		}
	}
	return true
}
