package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents logging severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger provides leveled logging for the figure studio
type Logger struct {
	mu       *sync.Mutex
	out      io.Writer
	minLevel Level
	prefix   string
	now      func() time.Time
}

// New creates a new logger
func New(out io.Writer, minLevel Level, prefix string) *Logger {
	if out == nil {
		out = os.Stdout
	}
	return &Logger{
		mu:       &sync.Mutex{},
		out:      out,
		minLevel: minLevel,
		prefix:   prefix,
		now:      time.Now,
	}
}

// Default returns a default logger to stdout
func Default() *Logger {
	return New(os.Stdout, LevelInfo, "")
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *Logger {
	return New(io.Discard, LevelError+1, "")
}

// WithPrefix creates a sub-logger with an additional prefix.
// Sub-loggers share the parent's writer lock so lines never interleave.
func (l *Logger) WithPrefix(prefix string) *Logger {
	newPrefix := prefix
	if l.prefix != "" {
		newPrefix = l.prefix + "/" + prefix
	}
	return &Logger{
		mu:       l.mu,
		out:      l.out,
		minLevel: l.minLevel,
		prefix:   newPrefix,
		now:      l.now,
	}
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.minLevel
}

func (l *Logger) log(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := l.now().Format("15:04:05.000")
	prefix := ""
	if l.prefix != "" {
		prefix = fmt.Sprintf("[%s] ", l.prefix)
	}

	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "%s %s %s%s\n", timestamp, level.String(), prefix, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Step logs a named step with timing
func (l *Logger) Step(name string) func() {
	start := l.now()
	l.Info("▶ Starting: %s", name)
	return func() {
		l.Info("✓ Completed: %s (took %v)", name, l.now().Sub(start).Round(time.Millisecond))
	}
}

// Figure logs the outcome of rendering one figure
func (l *Logger) Figure(name, path string, shapes int, err error) {
	if err != nil {
		l.Error("✗ %s failed: %v", name, err)
		return
	}
	l.Info("✓ %s: %d shapes → %s", name, shapes, path)
}

// Conversion logs the outcome of one raster conversion
func (l *Logger) Conversion(success bool, input, output string, errors []string) {
	if success {
		l.Info("✓ Converted %s → %s", input, output)
		return
	}
	l.Error("✗ Conversion failed: %s", input)
	for _, err := range errors {
		l.Error("  - %s", err)
	}
}
