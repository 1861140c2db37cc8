package progress

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/classifiles/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

var (
	headingColor = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#f0f0f0"}
	countColor   = lipgloss.AdaptiveColor{Light: "#0b7a3e", Dark: "#5fd787"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6b6b6b", Dark: "#8a8a8a"}

	headingStyle = lipgloss.NewStyle().Foreground(headingColor).Bold(true)
	countStyle   = lipgloss.NewStyle().Foreground(countColor).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	rowStyle     = lipgloss.NewStyle().PaddingLeft(2)
)

// Summary renders the outcome of a run. With plain set no styling is
// applied, which is what non-terminal output gets.
func Summary(result *types.RunResult, plain bool) string {
	style := func(s lipgloss.Style, text string) string {
		if plain {
			return text
		}
		return s.Render(text)
	}
	row := func(text string) string {
		if plain {
			return "  " + text
		}
		return rowStyle.Render(text)
	}

	var lines []string
	lines = append(lines, style(headingStyle, fmt.Sprintf("%s %s -> %s", result.Verb, result.InputPath, result.OutputPath)))

	switch result.Verb {
	case "scan":
		lines = append(lines, row(fmt.Sprintf("%s files linked", style(countStyle, fmt.Sprint(result.Linked)))))
		for _, category := range result.Categories() {
			lines = append(lines, row(fmt.Sprintf("%s %s", style(mutedStyle, category), fmt.Sprint(result.ByCategory[category]))))
		}
	default:
		lines = append(lines,
			row(fmt.Sprintf("%s symlinks", style(countStyle, fmt.Sprint(result.Symlinks)))),
			row(fmt.Sprintf("%s directories", style(countStyle, fmt.Sprint(result.Directories)))),
		)
	}
	if result.Skipped > 0 {
		lines = append(lines, row(style(mutedStyle, fmt.Sprintf("%d entries skipped", result.Skipped))))
	}
	return strings.Join(lines, "\n")
}
