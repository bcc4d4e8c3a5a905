package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"figure-studio/entities/figures"
	"figure-studio/tools/export"
	"figure-studio/tools/logger"
	"figure-studio/tools/rasterizer"
	"figure-studio/tools/turtle"
)

// Studio orchestrates rendering of the figure catalogue
type Studio struct {
	config     StudioConfig
	figures    []figures.Figure
	exporter   export.Exporter
	turtle     *turtle.Turtle
	rasterizer *rasterizer.Rasterizer
	log        *logger.Logger
}

// NewStudio creates a new figure studio
func NewStudio(config StudioConfig) (*Studio, error) {
	// Set defaults
	if config.OutputDir == "" {
		config.OutputDir = defaultOutputDir
	}
	if config.Format == "" {
		config.Format = defaultFormat
	}
	if config.DPI == 0 {
		config.DPI = rasterizer.DefaultDPI
	}
	if config.Width == 0 {
		config.Width = turtle.DefaultWidth
	}
	if config.Height == 0 {
		config.Height = turtle.DefaultHeight
	}

	// Validate
	exporter, err := export.New(config.Format)
	if err != nil {
		return nil, err
	}
	if config.DPI < 0 {
		return nil, fmt.Errorf("dpi must be positive, got %d", config.DPI)
	}
	if config.Width < 0 || config.Height < 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %gx%g", config.Width, config.Height)
	}
	if config.Rasterize && exporter.Format() != "eps" {
		return nil, fmt.Errorf("rasterizing needs eps output, got %s", exporter.Format())
	}

	var initial color.Color
	if config.InitialColor != "" {
		c, err := turtle.Named(config.InitialColor)
		if err != nil {
			return nil, err
		}
		initial = c
	}
	selected, err := figures.Select(figures.Catalogue(figures.Options{InitialColor: initial}), config.Figures)
	if err != nil {
		return nil, err
	}

	// Create output directory
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	// Initialize logger
	out := config.LogOutput
	if out == nil {
		out = os.Stdout
	}
	if !config.EnableLogging {
		out = io.Discard
	}
	logLevel := logger.LevelInfo
	if config.VerboseLogging {
		logLevel = logger.LevelDebug
	}
	log := logger.New(out, logLevel, "studio")

	s := &Studio{
		config:   config,
		figures:  selected,
		exporter: exporter,
		turtle:   turtle.New(turtle.NewDrawing(config.Width, config.Height)),
		log:      log,
	}

	if config.Rasterize {
		r, err := rasterizer.New(config.RasterizerPath, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create rasterizer: %w", err)
		}
		s.rasterizer = r
	}
	return s, nil
}

// Figures returns the figures this studio renders, in order.
func (s *Studio) Figures() []figures.Figure {
	return s.figures
}

// Generate renders every selected figure. A failing figure is recorded in
// the report and the run moves on; the error is non-nil only when ctx is
// cancelled.
func (s *Studio) Generate(ctx context.Context) (*Report, error) {
	startTime := time.Now()
	report := &Report{Seed: s.config.Seed}
	defer func() { report.Duration = time.Since(startTime) }()

	s.log.Info("═══════════════════════════════════════════════════════════════")
	s.log.Info("Rendering %d figures", len(s.figures))
	s.log.Info("Output: %s (%s), seed %d", s.config.OutputDir, s.exporter.Format(), s.config.Seed)
	s.log.Info("═══════════════════════════════════════════════════════════════")

	s.log.Info("")
	s.log.Info("PHASE 1: Drawing")
	s.log.Info("─────────────────────────────────────────────────────────────────")

	for i, fig := range s.figures {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		s.log.Debug("[%d/%d] %s: %s", i+1, len(s.figures), fig.ID(), fig.Title)
		report.Figures = append(report.Figures, s.RenderFigure(fig))
	}

	if s.rasterizer != nil {
		s.log.Info("")
		s.log.Info("PHASE 2: Rasterizing")
		s.log.Info("─────────────────────────────────────────────────────────────────")

		report.Conversion = &rasterizer.BatchResult{
			InputDir:  s.config.OutputDir,
			OutputDir: s.config.OutputDir,
		}
		for _, fig := range report.Figures {
			if !fig.OK() {
				continue
			}
			if err := ctx.Err(); err != nil {
				return report, err
			}
			result, _ := s.rasterizer.Convert(ctx, fig.Path, "", s.config.DPI)
			report.Conversion.Results = append(report.Conversion.Results, result)
		}
	}

	// Summary
	failed := report.Failed()
	s.log.Info("")
	s.log.Info("═══════════════════════════════════════════════════════════════")
	s.log.Info("Generation Complete")
	s.log.Info("Figures: %d ok, %d failed", len(report.Figures)-len(failed), len(failed))
	for _, f := range failed {
		s.log.Error("  figure%d (%s): %v", f.Number, f.Name, f.Err)
	}
	if report.Conversion != nil {
		s.log.Info("Rasterized: %d/%d", report.Conversion.Converted(), len(report.Conversion.Results))
	}
	s.log.Info("Total time: %v", time.Since(startTime).Round(time.Millisecond))
	s.log.Info("═══════════════════════════════════════════════════════════════")

	return report, nil
}

// RenderFigure draws one figure on a freshly reset turtle and exports it.
// The turtle is reset again afterwards so no state leaks to the next figure.
func (s *Studio) RenderFigure(fig figures.Figure) (result FigureResult) {
	start := time.Now()
	result = FigureResult{Number: fig.Number, Name: fig.Name}
	defer func() { result.Duration = time.Since(start) }()

	s.turtle.Reset()
	defer s.turtle.Reset()

	rng := rand.New(rand.NewPCG(s.config.Seed, uint64(fig.Number)))
	if err := draw(fig, s.turtle, rng); err != nil {
		result.Err = fmt.Errorf("draw %s: %w", fig.ID(), err)
		s.log.Figure(fig.ID(), "", 0, result.Err)
		return result
	}

	path := filepath.Join(s.config.OutputDir, fig.FileName(s.exporter.Format()))
	drawing := s.turtle.Drawing()
	if err := export.WriteFile(s.exporter, path, drawing, fig.ID()); err != nil {
		result.Err = err
		s.log.Figure(fig.ID(), "", 0, result.Err)
		return result
	}

	result.Path = path
	result.Shapes = len(drawing.Shapes)
	s.log.Figure(fig.ID(), path, result.Shapes, nil)
	return result
}

// errFigurePanic wraps a panic raised while drawing a figure.
var errFigurePanic = errors.New("figure panicked")

func draw(fig figures.Figure, t *turtle.Turtle, rng *rand.Rand) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errFigurePanic, r)
		}
	}()
	return fig.Draw(t, rng)
}
