// Package logging builds the CLI's diagnostic logger and the colour styles
// used for status lines and error text.
package logging

import (
	"io"

	"github.com/ChandlerVer5/vite-plugin-utools/internal/branding"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Color palette shared by status lines and error messages.
const (
	ColorSuccess = lipgloss.Color("#10B981")
	ColorWarning = lipgloss.Color("#F59E0B")
	ColorError   = lipgloss.Color("#EF4444")
	ColorMuted   = lipgloss.Color("#6B7280")
)

var (
	// SuccessStyle marks completed actions such as a written file.
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	// WarningStyle marks advisories that do not stop the build.
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)

	// ErrorStyle marks fatal build errors.
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	// BoldStyle emphasizes links and key names inside messages.
	BoldStyle = lipgloss.NewStyle().Bold(true)

	// MutedStyle is for paths and other supplementary detail.
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

// New returns a logger writing to w, prefixed with the CLI name.
// verbose lowers the level to debug.
func New(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
