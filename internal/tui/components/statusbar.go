package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps holds what the status bar shows
type StatusBarProps struct {
	Width   int
	Backend string
	Live    bool
	// Dragging shows a drop hint instead of the help hint
	Dragging bool
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "todoboard · {backend} · live|polling"
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	sync := "polling"
	if props.Live {
		sync = "live"
	}
	leftText := " todoboard · " + props.Backend + " · " + sync
	rightText := "press ? for help "
	if props.Dragging {
		rightText = "release to drop "
	}

	gapWidth := max(props.Width-lipgloss.Width(leftText)-lipgloss.Width(rightText), 1)
	line := leftText + strings.Repeat(" ", gapWidth) + rightText

	return StatusBarStyle.Render(line)
}
