package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/fintrack/internal/tui/theme"
)

// RenderStatusBar renders the bottom bar: key hints on the left, a
// transient message or the backend name on the right.
func RenderStatusBar(width int, message string, isError bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface).
		Width(width)
	msgStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	if isError {
		msgStyle = msgStyle.Foreground(t.Red)
	}

	left := " [a]dd  [d]elete  [h/l]month  [?]help  [q]uit"
	right := ""
	if message != "" {
		right = msgStyle.Render(message) + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
