// Package ui styles the few human-facing lines the tool prints around the report.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successColor = lipgloss.Color("42")  // Green
	errorColor   = lipgloss.Color("203") // Red
)

// Success prints the confirmation shown after the report was saved to path.
func Success(w io.Writer, path string) {
	r := lipgloss.NewRenderer(w)
	style := r.NewStyle().Foreground(successColor).Bold(true)
	fmt.Fprintln(w, style.Render(fmt.Sprintf("Success! Please return %s for analysis.", path)))
}

// Fatal prints a one-line diagnostic for an error that ends the run.
func Fatal(w io.Writer, err error) {
	r := lipgloss.NewRenderer(w)
	style := r.NewStyle().Foreground(errorColor)
	fmt.Fprintln(w, style.Render(err.Error()))
}
