package session

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/flashdeck/internal/deck"
)

type memPostponements struct {
	days map[string]time.Time
}

func (m *memPostponements) Load(_ context.Context, day time.Time) ([]string, error) {
	var keys []string
	for k, d := range m.days {
		if d.Equal(day) {
			keys = append(keys, k)
		} else {
			delete(m.days, k)
		}
	}
	return keys, nil
}

func (m *memPostponements) Add(_ context.Context, day time.Time, key string) error {
	m.days[key] = day
	return nil
}

func (m *memPostponements) Clear(context.Context) error {
	clear(m.days)
	return nil
}

func TestPostponementList(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	repo := &memPostponements{days: map[string]time.Time{
		"notes.json#old": today.AddDate(0, 0, -1),
		"notes.json#q1":  today,
	}}

	list, err := LoadPostponements(ctx, repo, today)
	if err != nil {
		t.Fatal(err)
	}
	q1 := newQuestion("q1", "a", "one")
	q2 := newQuestion("q2", "a", "two")
	old := newQuestion("old", "a", "x")

	if !list.Contains(q1) || list.Contains(q2) || list.Contains(old) {
		t.Errorf("contains: q1=%v q2=%v old=%v", list.Contains(q1), list.Contains(q2), list.Contains(old))
	}

	if err := list.Add(ctx, q2); err != nil {
		t.Fatal(err)
	}
	if !list.Contains(q2) || !repo.days["notes.json#q2"].Equal(today) {
		t.Error("q2 not postponed")
	}
	if list.Len() != 2 {
		t.Errorf("len = %d, want 2", list.Len())
	}

	if err := list.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if list.Len() != 0 || len(repo.days) != 0 {
		t.Error("clear left entries")
	}
}

func TestNilPostponementList(t *testing.T) {
	var list *PostponementList
	if list.Contains(newQuestion("q", "a", "x")) || list.Len() != 0 {
		t.Error("nil list should be empty")
	}
}

func TestWorkingTreeDropsPostponed(t *testing.T) {
	q1 := newQuestion("q1", "a", "one", "two")
	q2 := newQuestion("q2", "a", "three")
	list, _ := LoadPostponements(context.Background(), nil, testNow)
	_ = list.Add(context.Background(), q1)

	full := FullTree([]*deck.Question{q1, q2})
	for _, mode := range []Mode{Review, Cram} {
		working := WorkingTree(full, mode, testNow, list)
		if got := working.CardCount(deck.AllCards, true); got != 1 {
			t.Errorf("%s: cards = %d, want 1", mode, got)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Review, Cram} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m, got, err)
		}
	}
	if _, err := ParseMode("drill"); err == nil {
		t.Error("expected error")
	}
}
