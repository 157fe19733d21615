package components

import (
	"charm.land/lipgloss/v2"

	"github.com/keedam/preloadquiz/internal/ui/theme"
)

// ContentWidth returns the inner width shared by every card on a screen so
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6 // frame border and padding
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Frame centers content inside a double border that fills width x height.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded border at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(content)
}

// Banner renders a full-width colored message line, used for feedback.
func Banner(text string, ok bool, cw int) string {
	color := theme.Error
	if ok {
		color = theme.Success
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(color).
		Render(text)
}
