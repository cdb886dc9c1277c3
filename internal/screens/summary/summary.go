package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/schedule"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/session"
	"github.com/abhisek/flashdeck/internal/ui/layout"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// SummaryScreen displays the result of a finished session.
type SummaryScreen struct {
	summary session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to decks"},
		{Key: "Esc", Description: "Back to decks"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

var responseColors = map[schedule.Response]lipgloss.Style{
	schedule.Easy:  lipgloss.NewStyle().Foreground(theme.Easy),
	schedule.Good:  lipgloss.NewStyle().Foreground(theme.Good),
	schedule.Hard:  lipgloss.NewStyle().Foreground(theme.Hard),
	schedule.Reset: lipgloss.NewStyle().Foreground(theme.Reset),
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	title := "Session complete!"
	if sum.Remaining > 0 {
		title = "Session ended"
	}
	b.WriteString(layout.Centered(theme.Title, width, title))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(layout.Centered(theme.Subtitle, width,
		fmt.Sprintf("%s mode · %d:%02d", sum.Mode, mins, secs)))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(theme.Body.Bold(true), width,
		fmt.Sprintf("%d cards answered", sum.Reviewed)))
	b.WriteString("\n\n")

	var parts []string
	for _, r := range schedule.Responses {
		parts = append(parts, responseColors[r].Render(fmt.Sprintf("%s %d", r, sum.Count(r))))
	}
	b.WriteString(layout.Centered(lipgloss.NewStyle(), width, strings.Join(parts, "   ")))
	b.WriteString("\n\n")

	var extra []string
	if sum.Skipped > 0 {
		extra = append(extra, fmt.Sprintf("%d skipped", sum.Skipped))
	}
	if sum.Edited > 0 {
		extra = append(extra, fmt.Sprintf("%d edited", sum.Edited))
	}
	if sum.Remaining > 0 {
		extra = append(extra, fmt.Sprintf("%d left for later", sum.Remaining))
	}
	if len(extra) > 0 {
		b.WriteString(layout.Centered(theme.Hint, width, strings.Join(extra, " · ")))
		b.WriteString("\n")
	}

	return b.String()
}
