package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/schedule"
	"github.com/abhisek/flashdeck/internal/session"
)

func testSummary() session.Summary {
	return session.Summary{
		Mode:     session.Review,
		Duration: 7*time.Minute + 5*time.Second,
		Reviewed: 12,
		Skipped:  1,
		Responses: map[schedule.Response]int{
			schedule.Easy: 4,
			schedule.Good: 6,
			schedule.Hard: 2,
		},
		Remaining: 3,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	for _, want := range []string{"12 cards answered", "7:05", "good 6", "1 skipped", "3 left for later"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
