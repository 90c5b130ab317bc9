package notifications

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/todoboard/internal/tui/state"
)

// Render renders a notification banner based on severity level
func Render(severity Severity, message string, width int) string {
	style := severity.style()

	headerText := style.icon + " " + style.title
	contentWidth := max(lipgloss.Width(headerText), min(lipgloss.Width(message), width))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(contentWidth).
		Render(headerText)

	messageContent := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(contentWidth).
		Render(message)

	content := lipgloss.JoinVertical(lipgloss.Left, header, messageContent)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.borderForeground)).
		Padding(0, 1).
		Render(content)
}

// RenderAlert renders a blocking failure alert. pending counts the alerts
// queued behind this one.
func RenderAlert(message string, pending int, width int) string {
	footer := "Enter: dismiss"
	if pending > 0 {
		footer = fmt.Sprintf("Enter: dismiss (%d more)", pending)
	}
	return Render(Error, message+"\n\n"+footer, width)
}

// RenderInline renders a compact inline notification for the title bar
func RenderInline(n state.Notification) string {
	style := severityFor(n.Level).style()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(style.icon + " " + n.Message)
}

func severityFor(level state.NotificationLevel) Severity {
	switch level {
	case state.LevelWarning:
		return Warning
	case state.LevelError:
		return Error
	default:
		return Info
	}
}
