package main

const (
	defaultOutputDir = "./output"
	defaultFormat    = "eps"

	envRasterizer = "FIGURES_GS"
	envSeed       = "FIGURES_SEED"
)

const usageText = `Figure Studio - procedural turtle figures

Usage:
  figure-studio [options]                 render the figure catalogue
  figure-studio -list                     list the catalogue
  figure-studio -convert FILE [-o OUT]    rasterize one EPS file
  figure-studio -convert-dir DIR [-o DIR] rasterize every EPS file in DIR

Options:
`

const usageFooter = `
Examples:
  figure-studio -output ./figures
  figure-studio -only 1,5,21-24 -format svg
  figure-studio -seed 42 -rasterize -dpi 150
  figure-studio -convert-dir ./figures -o ./png

Environment:
  FIGURES_GS   - Ghostscript executable (alternative to -gs flag)
  FIGURES_SEED - seed for the randomized figures (alternative to -seed flag)

Output Structure:
  One file per figure, named by catalogue number:
    output/
      figure1.eps
      figure2.eps
      ...
      figure24.eps
`
