package review

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/schedule"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/layout"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

var buttonColors = map[schedule.Response]color.Color{
	schedule.Easy:  theme.Easy,
	schedule.Good:  theme.Good,
	schedule.Hard:  theme.Hard,
	schedule.Reset: theme.Reset,
}

func (s *ReviewScreen) View(width, height int) string {
	if s.width == 0 {
		s.width = width
	}
	card := s.seq.Current()
	if card == nil {
		return layout.Centered(theme.Subtitle, width, "\n\nNothing left to review.")
	}
	if s.phase == phaseQuitConfirm {
		return renderQuitConfirm(width)
	}

	var b strings.Builder

	done := s.startRemaining - s.seq.Remaining()
	b.WriteString(components.NewProgressBar(done, s.startRemaining, width-4).View())
	b.WriteString("\n")
	if d := s.seq.CurrentDeck(); d != nil {
		b.WriteString(theme.Hint.Render("  " + d.TopicPath().String()))
	}
	b.WriteString("\n\n")

	if s.phase == phaseEditing {
		b.WriteString(theme.Body.Bold(true).Render("  Edit question"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(s.editor.View()))
		b.WriteString("\n")
		s.writeError(&b, width)
		return b.String()
	}

	cardWidth := min(width-4, 80)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Card.Width(cardWidth).Render(card.Front)))
	b.WriteString("\n")

	if s.phase == phaseAnswer {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Card.Width(cardWidth).BorderForeground(theme.Secondary).Render(card.Back)))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderButtons(width)))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString(layout.Centered(theme.Hint, width, "Press space to show the answer"))
		b.WriteString("\n")
	}

	s.writeError(&b, width)
	return b.String()
}

func (s *ReviewScreen) renderButtons(width int) string {
	card := s.seq.Current()
	compact := layout.IsCompactWidth(width)
	buttons := make([]components.AnswerButton, 0, len(answerKeys))
	for _, a := range answerKeys {
		btn := components.AnswerButton{
			Key:   a.key,
			Label: responseLabel(a.resp),
			Color: buttonColors[a.resp],
		}
		if s.showHints {
			if info, err := s.seq.DetermineCardSchedule(a.resp, card); err == nil {
				var days *float64
				if !info.IsNew() {
					days = &info.Interval
				}
				btn.Hint = schedule.TextInterval(days, compact)
			}
		}
		buttons = append(buttons, btn)
	}
	return components.AnswerRow(buttons)
}

func responseLabel(r schedule.Response) string {
	s := r.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

func (s *ReviewScreen) writeError(b *strings.Builder, width int) {
	if s.errMsg == "" {
		return
	}
	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.ErrorText, width, s.errMsg))
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(layout.Centered(theme.Body.Bold(true), width, "End session early?"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.Subtitle, width, "Answered cards are already saved."))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Success), width, "[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Primary), width, "[N] No, keep going"))
	return b.String()
}
