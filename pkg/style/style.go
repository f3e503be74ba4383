// Package style defines the visual styling for packex's auxiliary output
// (the limits table and error rendering). The session transcript itself is
// plain text and never styled, so it stays byte-identical when piped.
package style

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Status types for auxiliary output
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusInfo    Status = "info"
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusSuccess:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	case StatusInfo:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// DisableColorIfPiped turns colors off when stdout is not a terminal
func DisableColorIfPiped() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		pterm.DisableColor()
	}
}

// RenderError formats an error for stderr display
func RenderError(err error) string {
	return StatusStyle(StatusError).Sprint("Error: ") + err.Error()
}
