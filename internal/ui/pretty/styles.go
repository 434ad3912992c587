// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains the styled renderers used by the CLI.
type Styles struct {
	// Diagnostic components.
	FilePath lipgloss.Style
	Location lipgloss.Style
	Code     lipgloss.Style
	Message  lipgloss.Style
	Evidence lipgloss.Style

	// Summary styles.
	Success lipgloss.Style
	Failure lipgloss.Style
	Dim     lipgloss.Style
}

// NewStyles creates styles depending on whether color is enabled.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			FilePath: plain,
			Location: plain,
			Code:     plain,
			Message:  plain,
			Evidence: plain,
			Success:  plain,
			Failure:  plain,
			Dim:      plain,
		}
	}

	return &Styles{
		FilePath: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Code:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Message:  lipgloss.NewStyle(),
		Evidence: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
