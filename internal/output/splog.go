// Package output provides console output helpers: the Splog logger, color
// styles, spinner feedback for long operations, and the optional rotated
// debug log file.
package output

import (
	"fmt"
	"io"
	"os"
)

// Splog provides structured console output
type Splog struct {
	writer io.Writer
}

// NewSplog creates a new splog instance
func NewSplog() *Splog {
	return &Splog{
		writer: os.Stdout,
	}
}

// NewSplogWithWriter creates a splog instance writing to the given writer
func NewSplogWithWriter(w io.Writer) *Splog {
	return &Splog{writer: w}
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, format+"\n", args...)
	debugf(format, args...)
}

// Ok writes a success message
func (s *Splog) Ok(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, ColorSuccess("✓ ")+format+"\n", args...)
	debugf(format, args...)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, ColorWarn("⚠ ")+format+"\n", args...)
	debugf("warn: "+format, args...)
}

// Error writes an error message
func (s *Splog) Error(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, ColorError("✗ ")+format+"\n", args...)
	debugf("error: "+format, args...)
}

// Tip writes a tip message
func (s *Splog) Tip(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, ColorDim("tip: ")+format+"\n", args...)
	debugf("tip: "+format, args...)
}

// Page writes pre-formatted output as-is
func (s *Splog) Page(content string) {
	fmt.Fprint(s.writer, content)
}

// Newline writes a newline
func (s *Splog) Newline() {
	fmt.Fprintln(s.writer)
}
