package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	stepStyle = lipgloss.NewStyle().Faint(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Steps prints the progress of a sequential pipeline as numbered lines.
type Steps struct {
	out   io.Writer
	total int
	n     int
}

// NewSteps creates a step printer for a pipeline with total stages.
func NewSteps(out io.Writer, total int) *Steps {
	return &Steps{out: out, total: total}
}

// Next advances to the next stage and prints its label.
func (s *Steps) Next(format string, args ...any) {
	s.n++
	prefix := stepStyle.Render(fmt.Sprintf("[%d/%d]", s.n, s.total))
	_, _ = fmt.Fprintf(s.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Log prints an informational message without advancing the stage counter.
func (s *Steps) Log(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format+"\n", args...)
}

// Warn prints a non-fatal warning.
func (s *Steps) Warn(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, "%s\n", warnStyle.Render("Warning: "+fmt.Sprintf(format, args...)))
}

// Error prints a fatal diagnostic.
func (s *Steps) Error(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, "%s\n", errStyle.Render("Error: "+fmt.Sprintf(format, args...)))
}
