package session

import (
	"time"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/schedule"
)

// RootDeckName names the root of every deck tree.
const RootDeckName = "All decks"

// FullTree builds the sorted tree of every reviewable card in questions.
func FullTree(questions []*deck.Question) *deck.Deck {
	tree := deck.FilterReviewable(deck.Build(RootDeckName, questions))
	tree.SortChildrenByName()
	return tree
}

// WorkingTree returns the cards left to present today in mode.
func WorkingTree(full *deck.Deck, mode Mode, today time.Time, postponed *PostponementList) *deck.Deck {
	return deck.FilterRemaining(full, today, postponed.Contains, mode == Cram)
}

// BuildHistogram counts the scheduled cards of tree by due offset.
func BuildHistogram(tree *deck.Deck, today time.Time) *schedule.Histogram {
	var infos []schedule.Info
	tree.Walk(func(d *deck.Deck) bool {
		for _, c := range d.Cards(deck.DueCards) {
			if c.Schedule != nil {
				infos = append(infos, *c.Schedule)
			}
		}
		return true
	})
	return schedule.BuildHistogram(today, infos)
}
