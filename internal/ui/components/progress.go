package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// ProgressBar shows how many of the session's cards are done.
type ProgressBar struct {
	Done  int
	Total int
	Width int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(done, total, width int) ProgressBar {
	return ProgressBar{Done: done, Total: total, Width: width}
}

// Percent returns the completed fraction in [0, 1].
func (p ProgressBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Done)/float64(p.Total), 0), 1)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d/%d", p.Done, p.Total))

	barWidth := max(p.Width-lipgloss.Width(counter), 4)
	filled := int(float64(barWidth) * p.Percent())

	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		counter
}
