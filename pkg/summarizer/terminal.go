package summarizer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ade80"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af")).Width(10)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333355")).
			Padding(0, 1)
)

// TerminalFormatter renders a compact boxed Summary for the console.
type TerminalFormatter struct{}

// NewTerminalFormatter creates a new TerminalFormatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{}
}

// Format implements the Formatter interface.
func (f *TerminalFormatter) Format(s *Summary) string {
	lines := []string{
		titleStyle.Render("stitchshot"),
		line("source", fmt.Sprintf("%s, %d items, %s", s.Source.Kind, s.Source.ItemCount, formatPixels(s.Source.ContentHeight))),
		line("canvas", fmt.Sprintf("%dx%d, scale %.3f", s.Geometry.TargetWidth, s.Geometry.TargetHeight, s.Geometry.Scale)),
		line("output", fmt.Sprintf("%s (%s)", s.Output.Path, formatBytes(s.Output.FileSize))),
	}
	if s.Output.Pages > 0 {
		lines = append(lines, line("pages", fmt.Sprint(s.Output.Pages)))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func line(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

var _ Formatter = (*TerminalFormatter)(nil)
