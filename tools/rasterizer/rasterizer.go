package rasterizer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"figure-studio/tools/logger"
)

const (
	// DefaultExecutable is the Ghostscript binary looked up in PATH.
	DefaultExecutable = "gs"
	// DefaultDPI is the output resolution used when none is given.
	DefaultDPI = 300
	// Device is the Ghostscript output device (24-bit RGB PNG).
	Device = "png16m"

	inputExt  = ".eps"
	outputExt = ".png"
)

// ErrInputNotFound is returned when the vector input does not exist.
var ErrInputNotFound = errors.New("input file does not exist")

// ToolError reports a non-zero exit of the rasterizer.
type ToolError struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ToolError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("rasterizer exited with code %d: %v", e.ExitCode, e.Err)
	}
	return fmt.Sprintf("rasterizer exited with code %d: %s", e.ExitCode, msg)
}

func (e *ToolError) Unwrap() error { return e.Err }

// Result holds the outcome of one conversion
type Result struct {
	Success    bool
	InputPath  string
	OutputPath string
	Errors     []string
	Warnings   []string
	Stdout     string
	Stderr     string
}

// BatchResult collects the per-file results of a directory conversion
type BatchResult struct {
	InputDir  string
	OutputDir string
	Results   []*Result
}

// Converted returns the number of successful conversions.
func (b *BatchResult) Converted() int {
	n := 0
	for _, r := range b.Results {
		if r.Success {
			n++
		}
	}
	return n
}

// Failed returns the results that did not succeed.
func (b *BatchResult) Failed() []*Result {
	var out []*Result
	for _, r := range b.Results {
		if !r.Success {
			out = append(out, r)
		}
	}
	return out
}

// Rasterizer wraps the external Ghostscript executable
type Rasterizer struct {
	executablePath string
	log            *logger.Logger
}

// New resolves the rasterizer executable. name may be a bare command looked
// up in PATH or a path to a binary; empty means DefaultExecutable.
func New(name string, log *logger.Logger) (*Rasterizer, error) {
	if name == "" {
		name = DefaultExecutable
	}
	if log == nil {
		log = logger.Default()
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("rasterizer not found: %w", err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve rasterizer path: %w", err)
	}

	return &Rasterizer{
		executablePath: absPath,
		log:            log.WithPrefix("rasterizer"),
	}, nil
}

// ExecutablePath returns the absolute path of the rasterizer binary
func (r *Rasterizer) ExecutablePath() string {
	return r.executablePath
}

// OutputPath returns the default raster path for a vector input: same
// directory and stem with a .png extension.
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + outputExt
}

// Args returns the command-line arguments for one conversion.
func Args(input, output string, dpi int) []string {
	return []string{
		"-dSAFER",
		"-dBATCH",
		"-dNOPAUSE",
		"-dEPSCrop",
		fmt.Sprintf("-r%d", dpi),
		"-sDEVICE=" + Device,
		"-sOutputFile=" + output,
		input,
	}
}

// Convert rasterizes one vector file. An empty output selects OutputPath
// and a non-positive dpi selects DefaultDPI.
//
// The returned Result is never nil. The error is non-nil exactly when the
// conversion did not succeed: ErrInputNotFound for a missing input and a
// *ToolError for a failing rasterizer.
func (r *Rasterizer) Convert(ctx context.Context, input, output string, dpi int) (*Result, error) {
	if output == "" {
		output = OutputPath(input)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	result := &Result{InputPath: input, OutputPath: output}

	if _, err := os.Stat(input); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = fmt.Errorf("%w: %s", ErrInputNotFound, input)
		}
		result.Errors = append(result.Errors, err.Error())
		r.log.Conversion(false, input, output, result.Errors)
		return result, err
	}
	if err := ctx.Err(); err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result, err
	}

	args := Args(input, output, dpi)
	r.log.Debug("running: %s %v", r.executablePath, args)

	cmd := exec.CommandContext(ctx, r.executablePath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	for _, line := range strings.Split(result.Stderr, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(strings.ToLower(line), "warning") {
			result.Warnings = append(result.Warnings, line)
		} else {
			result.Errors = append(result.Errors, line)
		}
	}

	if err != nil {
		toolErr := &ToolError{ExitCode: -1, Stderr: result.Stderr, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			toolErr.ExitCode = exitErr.ExitCode()
		}
		if len(result.Errors) == 0 {
			result.Errors = append(result.Errors, err.Error())
		}
		r.log.Conversion(false, input, output, result.Errors)
		return result, toolErr
	}

	for _, w := range result.Warnings {
		r.log.Warn("%s: %s", input, w)
	}
	result.Success = true
	r.log.Conversion(true, input, output, nil)
	return result, nil
}

// ConvertDir rasterizes every .eps file directly inside inputDir into
// outputDir (inputDir when empty). Files are converted one at a time in name
// order; a failing file is recorded and the batch moves on. The error is
// non-nil only when the directories cannot be used or ctx is cancelled.
func (r *Rasterizer) ConvertDir(ctx context.Context, inputDir, outputDir string, dpi int) (*BatchResult, error) {
	if outputDir == "" {
		outputDir = inputDir
	}
	batch := &BatchResult{InputDir: inputDir, OutputDir: outputDir}

	inputs, err := VectorFiles(inputDir)
	if err != nil {
		return batch, err
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return batch, fmt.Errorf("failed to create output directory: %w", err)
	}

	if len(inputs) == 0 {
		r.log.Warn("No EPS files found in %s", inputDir)
		return batch, nil
	}
	r.log.Info("Found %d EPS files to convert", len(inputs))

	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return batch, err
		}
		output := filepath.Join(outputDir, filepath.Base(OutputPath(input)))
		result, _ := r.Convert(ctx, input, output, dpi)
		batch.Results = append(batch.Results, result)
	}

	r.log.Info("Converted %d/%d files", batch.Converted(), len(batch.Results))
	return batch, nil
}

// VectorFiles lists the .eps files directly inside dir, sorted by name.
// The extension match ignores case.
func VectorFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), inputExt) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
