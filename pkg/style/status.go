// Package style renders status lines for setup steps using pterm.
package style

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Status types for setup checks
type Status string

const (
	StatusPresent Status = "present" // Path or section exists
	StatusMissing Status = "missing" // Path does not exist yet
	StatusCreated Status = "created" // Created by this run
	StatusSkipped Status = "skipped" // Step skipped (e.g. not a git repo)
	StatusError   Status = "error"   // Step failed
)

// Glyphs for check output
const (
	GlyphCheck = "✓"
	GlyphCross = "✗"
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusPresent, StatusCreated:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusMissing:
		return pterm.NewStyle(pterm.FgYellow)
	case StatusError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// colorEnabled reports whether stdout is an interactive terminal
func colorEnabled() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// CheckLine renders a verification line for a path: a green checkmark
// when present, a yellow cross with a hint when missing.
func CheckLine(path string, exists bool) string {
	if exists {
		return renderLine(StatusPresent, GlyphCheck, path, "")
	}
	return renderLine(StatusMissing, GlyphCross, path, "(will be created)")
}

// StepLine renders a status line for a setup step
func StepLine(status Status, description string) string {
	glyph := GlyphCheck
	if status == StatusError || status == StatusMissing {
		glyph = GlyphCross
	}
	return renderLine(status, glyph, description, "")
}

func renderLine(status Status, glyph, text, note string) string {
	line := fmt.Sprintf("  %s %s", glyph, text)
	if note != "" {
		line = fmt.Sprintf("%s %s", line, note)
	}

	if !colorEnabled() {
		return line
	}
	return StatusStyle(status).Sprint(line)
}
