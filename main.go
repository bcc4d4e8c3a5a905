package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"figure-studio/entities/figures"
	"figure-studio/tools/logger"
	"figure-studio/tools/rasterizer"
)

func main() {
	// CLI flags
	outputDir := flag.String("output", defaultOutputDir, "Output directory for generated figures")
	format := flag.String("format", defaultFormat, "Output format: eps, svg or png")
	only := flag.String("only", "", "Comma separated figure numbers or ranges to render (e.g. 1,5,21-24)")
	seed := flag.Uint64("seed", 0, "Seed for the randomized figures (0 picks one from the clock)")
	initialColor := flag.String("initial-color", "white", "Starting color of the alternating squares figure")
	rasterize := flag.Bool("rasterize", false, "Convert every exported EPS file to PNG with Ghostscript")
	gsPath := flag.String("gs", "", "Ghostscript executable (or set FIGURES_GS env)")
	dpi := flag.Int("dpi", rasterizer.DefaultDPI, "Raster resolution")
	list := flag.Bool("list", false, "List the figure catalogue and exit")
	convert := flag.String("convert", "", "Rasterize a single EPS file and exit")
	convertDir := flag.String("convert-dir", "", "Rasterize every EPS file in a directory and exit")
	convertOut := flag.String("o", "", "Output file (-convert) or directory (-convert-dir)")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		flag.PrintDefaults()
		fmt.Fprint(os.Stderr, usageFooter)
	}

	flag.Parse()

	if *list {
		printCatalogue(os.Stdout)
		return
	}

	// Get rasterizer path
	gs := *gsPath
	if gs == "" {
		gs = os.Getenv(envRasterizer)
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted, shutting down...")
		cancel()
	}()

	logLevel := logger.LevelInfo
	if *verbose {
		logLevel = logger.LevelDebug
	}
	log := logger.New(os.Stdout, logLevel, "")

	if *convert != "" || *convertDir != "" {
		if err := runConversion(ctx, log, gs, *convert, *convertDir, *convertOut, *dpi); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	numbers, err := parseFigureNumbers(*only)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	seedValue, err := resolveSeed(*seed, os.Getenv(envSeed), time.Now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create config
	config := StudioConfig{
		OutputDir:      *outputDir,
		Format:         *format,
		Figures:        numbers,
		Seed:           seedValue,
		InitialColor:   *initialColor,
		Rasterize:      *rasterize,
		RasterizerPath: gs,
		DPI:            *dpi,
		EnableLogging:  true,
		VerboseLogging: *verbose,
	}

	// Create studio
	studio, err := NewStudio(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating studio: %v\n", err)
		os.Exit(1)
	}

	// Generate!
	report, err := studio.Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating figures: %v\n", err)
		os.Exit(1)
	}

	failed := len(report.Failed())
	if report.Conversion != nil {
		failed += len(report.Conversion.Failed())
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "\n%d step(s) failed\n", failed)
		os.Exit(1)
	}
	fmt.Printf("\n%d figures written to %s\n", len(report.Figures), *outputDir)
}

func runConversion(ctx context.Context, log *logger.Logger, gs, file, dir, out string, dpi int) error {
	r, err := rasterizer.New(gs, log)
	if err != nil {
		return err
	}

	if file != "" {
		_, err := r.Convert(ctx, file, out, dpi)
		return err
	}

	batch, err := r.ConvertDir(ctx, dir, out, dpi)
	if err != nil {
		return err
	}
	if failed := batch.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d conversions failed", len(failed), len(batch.Results))
	}
	return nil
}

// parseFigureNumbers parses "1,5,21-24" into figure numbers.
func parseFigureNumbers(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		first, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("invalid figure number %q", part)
		}
		last := first
		if isRange {
			if last, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil || last < first {
				return nil, fmt.Errorf("invalid figure range %q", part)
			}
		}
		for n := first; n <= last; n++ {
			out = append(out, n)
		}
	}
	return out, nil
}

// resolveSeed picks the flag value, then the environment, then the clock.
func resolveSeed(flagValue uint64, env string, now func() time.Time) (uint64, error) {
	if flagValue != 0 {
		return flagValue, nil
	}
	if env != "" {
		v, err := strconv.ParseUint(strings.TrimSpace(env), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", envSeed, env, err)
		}
		return v, nil
	}
	return uint64(now().UnixNano()), nil
}

func printCatalogue(w io.Writer) {
	for _, f := range figures.Catalogue(figures.Options{}) {
		fmt.Fprintf(w, "%2d  %-22s %s\n", f.Number, f.Name, f.Title)
	}
}
