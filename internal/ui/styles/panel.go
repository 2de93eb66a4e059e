package styles

import "github.com/charmbracelet/lipgloss"

// Frame is the rounded border around the player.
func Frame() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(T().Border).
		Padding(0, 1)
}

// PromptBox is the border around the go-to-time prompt.
func PromptBox() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(T().Primary).
		Padding(0, 1)
}
