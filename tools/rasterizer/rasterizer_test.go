package rasterizer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"figure-studio/tools/logger"
)

// fakeGS mimics Ghostscript: it writes a placeholder to -sOutputFile and
// fails for inputs whose name contains "fail".
const fakeGS = `#!/bin/sh
out=""
last=""
for a in "$@"; do
	case "$a" in
	-sOutputFile=*) out="${a#-sOutputFile=}" ;;
	esac
	last="$a"
done
if [ -n "$FAKE_GS_LOG" ]; then
	echo "$@" >> "$FAKE_GS_LOG"
fi
case "$last" in
*fail*)
	echo "Error: /undefined in bogus" >&2
	exit 1
	;;
esac
echo "GPL Ghostscript (fake)"
echo "Warning: substituting font" >&2
printf 'PNG' > "$out"
`

func newFake(t *testing.T) *Rasterizer {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake rasterizer is a shell script")
	}
	path := filepath.Join(t.TempDir(), "gs")
	if err := os.WriteFile(path, []byte(fakeGS), 0755); err != nil {
		t.Fatal(err)
	}
	r, err := New(path, logger.Discard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("%!PS-Adobe-3.0 EPSF-3.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestArgs(t *testing.T) {
	got := Args("in.eps", "out.png", 150)
	want := []string{"-dSAFER", "-dBATCH", "-dNOPAUSE", "-dEPSCrop", "-r150", "-sDEVICE=png16m", "-sOutputFile=out.png", "in.eps"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Args = %v, want %v", got, want)
	}
}

func TestOutputPath(t *testing.T) {
	tests := map[string]string{
		"figure1.eps":        "figure1.png",
		"dir/figure2.EPS":    "dir/figure2.png",
		"noext":              "noext.png",
		"a.b/figure3.ps.eps": "a.b/figure3.ps.png",
	}
	for in, want := range tests {
		if got := OutputPath(in); got != filepath.FromSlash(want) && got != want {
			t.Errorf("OutputPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewMissingExecutable(t *testing.T) {
	if _, err := New("definitely-not-a-rasterizer-4f1c", logger.Discard()); err == nil {
		t.Error("expected an error for a missing executable")
	}
}

func TestConvertMissingInput(t *testing.T) {
	r := newFake(t)
	missing := filepath.Join(t.TempDir(), "nope.eps")

	result, err := r.Convert(context.Background(), missing, "", 0)
	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("err = %v, want ErrInputNotFound", err)
	}
	if result == nil || result.Success {
		t.Fatalf("result = %+v, want a failed result", result)
	}
	if result.OutputPath != OutputPath(missing) {
		t.Errorf("output path = %q", result.OutputPath)
	}
}

func TestConvert(t *testing.T) {
	r := newFake(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "figure1.eps")
	touch(t, input)
	logPath := filepath.Join(t.TempDir(), "args.log")
	t.Setenv("FAKE_GS_LOG", logPath)

	result, err := r.Convert(context.Background(), input, "", 0)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !result.Success {
		t.Fatalf("result not successful: %+v", result)
	}
	want := filepath.Join(dir, "figure1.png")
	if result.OutputPath != want {
		t.Errorf("output = %q, want %q", result.OutputPath, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("output not written: %v", err)
	}
	if len(result.Warnings) != 1 || len(result.Errors) != 0 {
		t.Errorf("warnings = %v, errors = %v", result.Warnings, result.Errors)
	}

	logged, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, flag := range []string{"-dBATCH", "-dNOPAUSE", "-dEPSCrop", "-r300", "-sDEVICE=png16m"} {
		if !strings.Contains(string(logged), flag) {
			t.Errorf("rasterizer not called with %s: %s", flag, logged)
		}
	}
}

func TestConvertToolFailure(t *testing.T) {
	r := newFake(t)
	input := filepath.Join(t.TempDir(), "will_fail.eps")
	touch(t, input)

	result, err := r.Convert(context.Background(), input, "", 72)
	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("err = %v, want *ToolError", err)
	}
	if toolErr.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", toolErr.ExitCode)
	}
	if !strings.Contains(toolErr.Error(), "/undefined") {
		t.Errorf("error does not carry diagnostics: %v", toolErr)
	}
	if result.Success || len(result.Errors) == 0 {
		t.Errorf("result = %+v, want failure with errors", result)
	}
}

func TestConvertCancelled(t *testing.T) {
	r := newFake(t)
	input := filepath.Join(t.TempDir(), "figure1.eps")
	touch(t, input)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := r.Convert(ctx, input, "", 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if result.Success {
		t.Error("cancelled conversion reported success")
	}
}

func TestConvertDir(t *testing.T) {
	r := newFake(t)
	in := t.TempDir()
	for _, name := range []string{"figure1.eps", "figure2.eps", "figure3.EPS", "notes.txt"} {
		touch(t, filepath.Join(in, name))
	}
	if err := os.Mkdir(filepath.Join(in, "nested.eps"), 0755); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "png")

	batch, err := r.ConvertDir(context.Background(), in, out, 0)
	if err != nil {
		t.Fatalf("ConvertDir: %v", err)
	}
	if len(batch.Results) != 3 || batch.Converted() != 3 {
		t.Fatalf("converted %d of %d, want 3 of 3", batch.Converted(), len(batch.Results))
	}

	pngs, err := filepath.Glob(filepath.Join(out, "*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(pngs) != 3 {
		t.Errorf("got %d png files, want 3: %v", len(pngs), pngs)
	}
}

func TestConvertDirContinuesPastFailures(t *testing.T) {
	r := newFake(t)
	in := t.TempDir()
	for _, name := range []string{"a.eps", "b_fail.eps", "c.eps"} {
		touch(t, filepath.Join(in, name))
	}

	batch, err := r.ConvertDir(context.Background(), in, "", 0)
	if err != nil {
		t.Fatalf("ConvertDir: %v", err)
	}
	if batch.OutputDir != in {
		t.Errorf("output dir = %q, want the input dir", batch.OutputDir)
	}
	if batch.Converted() != 2 {
		t.Errorf("converted %d, want 2", batch.Converted())
	}
	failed := batch.Failed()
	if len(failed) != 1 || filepath.Base(failed[0].InputPath) != "b_fail.eps" {
		t.Errorf("failed = %+v", failed)
	}
	if _, err := os.Stat(filepath.Join(in, "c.png")); err != nil {
		t.Errorf("file after the failure was not converted: %v", err)
	}
}

func TestConvertDirEmpty(t *testing.T) {
	r := newFake(t)
	batch, err := r.ConvertDir(context.Background(), t.TempDir(), "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(batch.Results) != 0 {
		t.Errorf("got %d results for an empty directory", len(batch.Results))
	}
}

func TestConvertDirMissing(t *testing.T) {
	r := newFake(t)
	if _, err := r.ConvertDir(context.Background(), filepath.Join(t.TempDir(), "nope"), "", 0); err == nil {
		t.Error("expected an error for a missing input directory")
	}
}
