package decks

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/iterator"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/schedule"
	"github.com/abhisek/flashdeck/internal/session"
	"github.com/abhisek/flashdeck/internal/store"
)

var testNow = time.Date(2023, 7, 1, 12, 0, 0, 0, time.UTC)

type nopWriter struct{}

func (nopWriter) Save(context.Context, string, schedule.Info) error      { return nil }
func (nopWriter) SaveQuestion(context.Context, store.QuestionData) error { return nil }

func newScreen(t *testing.T) *DeckListScreen {
	t.Helper()
	future := schedule.NewInfo(schedule.Day(testNow).AddDate(0, 0, 10), 10, 250, testNow)
	qs := []*deck.Question{
		deck.NewQuestion("1", "n.json", deck.TopicPath{"lang", "es"}, "", []deck.Face{{Front: "a", Back: "b"}}),
		deck.NewQuestion("2", "n.json", deck.TopicPath{"math"}, "", []deck.Face{{Front: "c", Back: "d"}}),
	}
	qs[1].Cards[0].Schedule = &future

	alg, _ := schedule.New(schedule.DefaultSettings(), func() time.Time { return testNow })
	seq, err := session.New(session.Options{
		Mode:      session.Review,
		Schedules: nopWriter{},
		Iterator:  iterator.New(iterator.Order{}, rand.New(rand.NewPCG(1, 1))),
		Algorithm: alg,
		Now:       func() time.Time { return testNow },
	})
	if err != nil {
		t.Fatal(err)
	}
	full := session.FullTree(qs)
	seq.SetDeckTree(full, session.WorkingTree(full, session.Review, testNow, nil))
	return New(context.Background(), seq, full, false)
}

func TestDeckList_Entries(t *testing.T) {
	s := newScreen(t)
	var labels []string
	for _, item := range s.menu.Items {
		labels = append(labels, strings.TrimSpace(item.Label))
	}
	want := []string{session.RootDeckName, "lang", "es", "math"}
	if strings.Join(labels, ",") != strings.Join(want, ",") {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestDeckList_Counts(t *testing.T) {
	s := newScreen(t)
	if got := s.Counts(); got.Due != 0 || got.New != 1 {
		t.Errorf("Counts = %+v", got)
	}
	view := s.View(80, 20)
	if !strings.Contains(view, "math") || !strings.Contains(view, "es") {
		t.Errorf("view missing decks:\n%s", view)
	}
}

func TestDeckList_OpenPushesReview(t *testing.T) {
	s := newScreen(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok || msg.Screen.Title() != "Review · lang" {
		t.Errorf("msg = %#v", msg)
	}
}

func TestDeckList_EmptyDeckShowsNotice(t *testing.T) {
	s := newScreen(t)
	s.menu.Selected = 3
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty deck should not open a review")
	}
	if !strings.Contains(s.View(80, 20), "Nothing to study") {
		t.Error("notice not shown")
	}
}

func TestDeckList_Quit(t *testing.T) {
	s := newScreen(t)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestDeckList_ResumeReportsFinishedDeck(t *testing.T) {
	s := newScreen(t)
	s.menu.Selected = 3 // math: its only card is scheduled in ten days
	s.Resume()
	if !strings.Contains(s.notice, "Deck finished") {
		t.Errorf("notice = %q", s.notice)
	}

	s.menu.Selected = 0
	s.Resume()
	if s.notice != "" {
		t.Errorf("notice = %q, want empty while cards remain", s.notice)
	}
}
