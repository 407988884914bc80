package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"imgcrop/internal/pipeline"
)

type SummaryRow struct {
	Label string
	Value string
}

func RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
	}

	hline := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := []string{hline}

	for _, row := range rows {
		label := padRight(row.Label, labelWidth)
		value := padRight(row.Value, valueWidth)
		line := fmt.Sprintf("%s | %s", labelStyle.Render(label), valueStyle.Render(value))
		lines = append(lines, line)
	}

	lines = append(lines, hline)
	return strings.Join(lines, "\n")
}

// RenderFailureList formats per-file failures, one line per file, in the
// order the batch reported them.
func RenderFailureList(failures []pipeline.Failure) string {
	lines := make([]string, 0, len(failures)+1)
	lines = append(lines, failHeadStyle.Render("Failures:"))
	for _, failure := range failures {
		lines = append(lines, fmt.Sprintf("  %s %s %s",
			failDimStyle.Render("-"),
			failNameStyle.Render(failure.FileName),
			failDimStyle.Render(failure.Reason),
		))
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

var (
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	failHeadStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	failNameStyle = lipgloss.NewStyle().Foreground(ColorInk)
	failDimStyle  = lipgloss.NewStyle().Foreground(ColorDim)
)
