// Package review implements the card review screen.
package review

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/schedule"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/screens/summary"
	"github.com/abhisek/flashdeck/internal/session"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/layout"
)

type phase int

const (
	phaseQuestion phase = iota
	phaseAnswer
	phaseEditing
	phaseQuitConfirm
)

// answerKeys maps keys to responses, in button order.
var answerKeys = []struct {
	key  string
	resp schedule.Response
}{
	{"1", schedule.Reset},
	{"2", schedule.Hard},
	{"3", schedule.Good},
	{"4", schedule.Easy},
}

// ReviewScreen presents the cards of one deck until none are left.
type ReviewScreen struct {
	ctx       context.Context
	seq       *session.Sequencer
	path      deck.TopicPath
	showHints bool

	phase  phase
	editor components.Editor
	errMsg string

	startRemaining int
	width          int
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)
var _ screen.CountsProvider = (*ReviewScreen)(nil)

// New creates a review screen over the deck at path, which must already be
// the sequencer's current deck. showHints adds the next interval to each
// answer button.
func New(ctx context.Context, seq *session.Sequencer, path deck.TopicPath, showHints bool) *ReviewScreen {
	return &ReviewScreen{
		ctx:            ctx,
		seq:            seq,
		path:           path,
		showHints:      showHints && seq.Mode() == session.Review,
		startRemaining: seq.Remaining(),
	}
}

func (s *ReviewScreen) Init() tea.Cmd {
	s.seq.Start(s.ctx)
	if s.seq.State() == session.Empty {
		return s.finish()
	}
	return nil
}

func (s *ReviewScreen) Title() string {
	name := s.path.String()
	if s.path.IsEmpty() {
		name = session.RootDeckName
	}
	if s.seq.Mode() == session.Cram {
		return "Cram · " + name
	}
	return "Review · " + name
}

func (s *ReviewScreen) Counts() layout.Counts {
	st := s.seq.DeckStats(s.path)
	return layout.Counts{Due: st.Due, New: st.New}
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseAnswer:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "e", Description: "Edit"},
			{Key: "Esc", Description: "End"},
		}
	case phaseEditing:
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Show answer"},
		{Key: "s", Description: "Skip card"},
		{Key: "S", Description: "Skip question"},
		{Key: "e", Description: "Edit"},
		{Key: "Esc", Description: "End"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseEditing {
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ReviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseQuitConfirm:
		switch key {
		case "y", "Y":
			return s, s.finish()
		case "n", "N", "esc":
			s.phase = phaseQuestion
		}
		return s, nil

	case phaseEditing:
		switch key {
		case "esc":
			s.phase = phaseQuestion
			s.errMsg = ""
			return s, nil
		case "ctrl+s":
			return s.saveEdit()
		}
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)
		return s, cmd
	}

	switch key {
	case "esc", "q":
		s.phase = phaseQuitConfirm
		return s, nil
	case "e":
		return s.startEdit()
	}

	if s.phase == phaseQuestion {
		switch key {
		case "space", "enter":
			s.phase = phaseAnswer
			s.errMsg = ""
		case "s":
			return s, s.afterMutation(s.seq.SkipCurrentCard())
		case "S":
			return s, s.afterMutation(s.seq.SkipCurrentQuestion())
		}
		return s, nil
	}

	for _, a := range answerKeys {
		if key == a.key {
			return s, s.afterMutation(s.seq.ProcessReview(s.ctx, a.resp))
		}
	}
	return s, nil
}

// afterMutation resets the card view after the sequencer moved on and ends
// the session once no card is left.
func (s *ReviewScreen) afterMutation(err error) tea.Cmd {
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	s.phase = phaseQuestion
	if s.seq.State() == session.Empty {
		return s.finish()
	}
	return nil
}

func (s *ReviewScreen) startEdit() (screen.Screen, tea.Cmd) {
	card := s.seq.Current()
	if card == nil || card.Question() == nil {
		return s, nil
	}
	width := max(s.width-8, 40)
	s.editor = components.NewEditor(card.Question().Text, width, 8)
	s.phase = phaseEditing
	s.errMsg = ""
	return s, s.editor.Focus()
}

func (s *ReviewScreen) saveEdit() (screen.Screen, tea.Cmd) {
	err := s.seq.EditCurrentQuestionText(s.ctx, s.editor.Value())
	if errors.Is(err, session.ErrNotSingleQuestion) {
		s.errMsg = "The text must contain exactly one question."
		return s, nil
	}
	return s, s.afterMutation(err)
}

func (s *ReviewScreen) finish() tea.Cmd {
	sum := s.seq.Finish(s.ctx)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}
