// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
//
// Parameters:
//   - content: the rendered content to center
//   - screenWidth: the width of the screen
//   - screenHeight: the height of the screen
//
// Returns:
//   - A layer positioned at the center of the screen, or nil if content is empty
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x, y := CenterOffset(lipgloss.Width(content), lipgloss.Height(content), screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CenterOffset returns the top-left corner that centers a box of the given
// size on the screen, never negative
func CenterOffset(contentWidth, contentHeight, screenWidth, screenHeight int) (int, int) {
	x := (screenWidth - contentWidth) / 2
	y := (screenHeight - contentHeight) / 2
	return max(x, 0), max(y, 0)
}

// DialogWidth picks a dialog width for the screen, between minWidth and
// maxWidth and never wider than the screen
func DialogWidth(screenWidth, minWidth, maxWidth int) int {
	return min(max(screenWidth/2, minWidth), maxWidth, screenWidth)
}
