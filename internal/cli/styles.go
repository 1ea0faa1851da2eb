package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/gluefinance/parse-schema/internal/export"
)

// Color palette - keeping it minimal and accessible.
var (
	colorSuccess = lipgloss.Color("34")  // Green
	colorMuted   = lipgloss.Color("245") // Gray
)

var (
	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	detailStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// printSummary renders the post-export summary.
func printSummary(w io.Writer, outputDir string, result *export.Result) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("✓ Exported %d objects to %s/", result.Objects, outputDir)))
	fmt.Fprintln(w, detailStyle.Render(fmt.Sprintf("  %d names, %d types", result.Names, result.Types)))
	if result.Skipped > 0 {
		fmt.Fprintln(w, detailStyle.Render(fmt.Sprintf("  %d ownership statements skipped", result.Skipped)))
	}
}
