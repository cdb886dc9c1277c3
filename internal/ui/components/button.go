package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// AnswerButton is one response choice shown under a revealed card.
type AnswerButton struct {
	Key   string
	Label string
	Hint  string
	Color color.Color
}

// View renders the button. Hint, when set, follows the label.
func (b AnswerButton) View() string {
	label := b.Label
	if b.Hint != "" {
		label += " · " + b.Hint
	}
	key := lipgloss.NewStyle().Foreground(theme.TextDim).Render("[" + b.Key + "] ")
	return theme.ButtonInactive.
		BorderForeground(b.Color).
		Render(key + lipgloss.NewStyle().Foreground(b.Color).Bold(true).Render(label))
}

// AnswerRow lays buttons out side by side.
func AnswerRow(buttons []AnswerButton) string {
	views := make([]string, 0, len(buttons))
	for _, b := range buttons {
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
