// Package export writes recorded turtle drawings to image files.
package export

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"figure-studio/tools/turtle"
)

// ErrUnknownFormat is returned by New for unsupported formats.
var ErrUnknownFormat = errors.New("unknown export format")

// Exporter encodes a drawing.
type Exporter interface {
	// Format returns the file extension written, without the dot.
	Format() string
	Export(w io.Writer, d *turtle.Drawing, title string) error
}

var exporters = map[string]Exporter{
	"eps": EPS{},
	"svg": SVG{},
	"png": PNG{Scale: 1},
}

// New returns the exporter for a format name ("eps", "svg" or "png").
func New(format string) (Exporter, error) {
	e, ok := exporters[strings.ToLower(strings.TrimPrefix(format, "."))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
	return e, nil
}

// Formats lists the supported format names.
func Formats() []string {
	out := make([]string, 0, len(exporters))
	for name := range exporters {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// WriteFile exports d to path, replacing any existing file.
func WriteFile(e Exporter, path string, d *turtle.Drawing, title string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := e.Export(f, d, title); err != nil {
		return fmt.Errorf("failed to export %s: %w", path, err)
	}
	return nil
}

// num formats a coordinate compactly with four decimals at most.
func num(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// errWriter remembers the first write error so writers that ignore errors
// can still be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
