package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yorkei04/portfolio/internal/browser"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

func okLine(msg string) string {
	return styleSuccess.Render(iconSuccess) + " " + msg
}

func failLine(msg string) string {
	return styleError.Render(iconError) + " " + msg
}

// renderReport formats a check report for the terminal.
func renderReport(r browser.Report) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Checked "+r.URL) + "\n")
	for _, s := range r.Steps {
		if s.OK {
			b.WriteString("  " + okLine(s.Name) + "\n")
			continue
		}
		b.WriteString("  " + failLine(s.Name) + "\n")
		if s.Detail != "" {
			b.WriteString("    " + styleDim.Render(s.Detail) + "\n")
		}
	}
	failed := r.Failed()
	summary := fmt.Sprintf("%d/%d steps passed", len(r.Steps)-failed, len(r.Steps))
	if failed > 0 {
		b.WriteString(styleError.Render(summary) + "\n")
	} else {
		b.WriteString(styleSuccess.Render(summary) + "\n")
	}
	return b.String()
}
