package ui

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/momorph/pathkit/pathfmt"
)

var (
	colorEnabled = DetectColor()

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	keyStyle     = lipgloss.NewStyle().Bold(true)
)

// DetectColor checks if color output should be enabled for stdout
func DetectColor() bool {
	// https://no-color.org/
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	fileInfo, err := os.Stdout.Stat()
	if err != nil || (fileInfo.Mode()&os.ModeCharDevice) == 0 {
		return false
	}
	return true
}

// SetColorEnabled turns styling on or off
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled reports whether styling is on
func ColorEnabled() bool {
	return colorEnabled
}

func render(style lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return style.Render(s)
}

// Success renders a success message
func Success(s string) string {
	return render(successStyle, s)
}

// Warn renders a warning message
func Warn(s string) string {
	return render(warnStyle, s)
}

// Dim renders secondary text
func Dim(s string) string {
	return render(dimStyle, s)
}

// Key renders a setting name or label
func Key(s string) string {
	return render(keyStyle, s)
}

// DisplayPath shortens a local path for display, keeping its root and last element.
// Paths that cannot be shortened at width are returned unchanged.
func DisplayPath(path string, width int) string {
	tr, err := pathfmt.NewTruncator(width, pathfmt.WithSeparator(filepath.Separator))
	if err != nil {
		return path
	}
	short, err := tr.Truncate(path)
	if err != nil {
		return path
	}
	return short
}
