// Package ui provides consistent styled output for the gizmoget CLI.
package ui

import (
	"fmt"
	"io"
	"os"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Writer prints styled messages, honoring color settings.
type Writer struct {
	out     io.Writer
	errOut  io.Writer
	noColor bool
}

// NewWriter creates a Writer on stdout/stderr. Color is disabled when
// noColor is true or the NO_COLOR env var is set.
func NewWriter(noColor bool) *Writer {
	return &Writer{
		out:     os.Stdout,
		errOut:  os.Stderr,
		noColor: noColor || os.Getenv("NO_COLOR") != "",
	}
}

// NewWriterWithOutputs creates a Writer with custom destinations, for tests.
func NewWriterWithOutputs(out, errOut io.Writer, noColor bool) *Writer {
	return &Writer{out: out, errOut: errOut, noColor: noColor}
}

// Successf prints a formatted message with a green checkmark prefix.
func (w *Writer) Successf(format string, args ...any) {
	w.line(w.out, colorGreen, "✓", format, args...)
}

// Infof prints a formatted informational message with a cyan prefix.
func (w *Writer) Infof(format string, args ...any) {
	w.line(w.out, colorCyan, "info:", format, args...)
}

// Warningf prints a formatted warning to stderr with a yellow prefix.
func (w *Writer) Warningf(format string, args ...any) {
	w.line(w.errOut, colorYellow, "warning:", format, args...)
}

// Errorf prints a formatted error to stderr with a red prefix.
func (w *Writer) Errorf(format string, args ...any) {
	w.line(w.errOut, colorRed, "error:", format, args...)
}

func (w *Writer) line(out io.Writer, color, prefix, format string, args ...any) {
	if !w.noColor {
		prefix = color + prefix + colorReset
	}

	// Best-effort output; nothing useful to do if the terminal is gone.
	_, _ = fmt.Fprintf(out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
