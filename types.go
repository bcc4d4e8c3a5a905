package main

import (
	"io"
	"time"

	"figure-studio/tools/rasterizer"
)

// StudioConfig holds configuration for the studio.
type StudioConfig struct {
	OutputDir      string
	Format         string  // eps, svg or png
	Figures        []int   // figure numbers to render; empty renders all
	Seed           uint64  // seed for the randomized figures
	InitialColor   string  // starting fill of the alternating squares figure
	Width          float64 // canvas size in world units
	Height         float64
	Rasterize      bool // convert every exported EPS to PNG afterwards
	RasterizerPath string
	DPI            int
	EnableLogging  bool
	VerboseLogging bool
	LogOutput      io.Writer // defaults to stdout
}

// FigureResult is the outcome of rendering one figure.
type FigureResult struct {
	Number   int
	Name     string
	Path     string
	Shapes   int
	Duration time.Duration
	Err      error
}

// OK reports whether the figure was drawn and exported.
func (r FigureResult) OK() bool {
	return r.Err == nil
}

// Report is the outcome of a batch run.
type Report struct {
	Seed       uint64
	Figures    []FigureResult
	Conversion *rasterizer.BatchResult // nil unless rasterizing
	Duration   time.Duration
}

// Failed returns the figures that could not be rendered.
func (r *Report) Failed() []FigureResult {
	var out []FigureResult
	for _, f := range r.Figures {
		if !f.OK() {
			out = append(out, f)
		}
	}
	return out
}
