package session

import (
	"context"
	"time"

	"github.com/abhisek/flashdeck/internal/deck"
)

// PostponementStore persists postponed question keys per day.
type PostponementStore interface {
	Load(ctx context.Context, day time.Time) ([]string, error)
	Add(ctx context.Context, day time.Time, questionKey string) error
	Clear(ctx context.Context) error
}

// PostponementList holds the questions whose remaining cards are buried
// until tomorrow.
type PostponementList struct {
	repo PostponementStore
	day  time.Time
	keys map[string]struct{}
}

// LoadPostponements reads today's postponed questions. A nil repo gives an
// in-memory list.
func LoadPostponements(ctx context.Context, repo PostponementStore, day time.Time) (*PostponementList, error) {
	p := &PostponementList{repo: repo, day: day, keys: make(map[string]struct{})}
	if repo == nil {
		return p, nil
	}
	keys, err := repo.Load(ctx, day)
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		p.keys[k] = struct{}{}
	}
	return p, nil
}

// Contains reports whether q is postponed. It is safe to call on nil.
func (p *PostponementList) Contains(q *deck.Question) bool {
	if p == nil || q == nil {
		return false
	}
	_, ok := p.keys[q.Key()]
	return ok
}

// Add postpones q for the rest of the day.
func (p *PostponementList) Add(ctx context.Context, q *deck.Question) error {
	key := q.Key()
	if _, ok := p.keys[key]; ok {
		return nil
	}
	if p.repo != nil {
		if err := p.repo.Add(ctx, p.day, key); err != nil {
			return err
		}
	}
	p.keys[key] = struct{}{}
	return nil
}

// Clear removes every postponement.
func (p *PostponementList) Clear(ctx context.Context) error {
	if p.repo != nil {
		if err := p.repo.Clear(ctx); err != nil {
			return err
		}
	}
	clear(p.keys)
	return nil
}

// Len returns the number of postponed questions.
func (p *PostponementList) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}
