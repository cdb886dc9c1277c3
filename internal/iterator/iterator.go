// Package iterator walks a deck tree one card at a time.
//
// The iterator never owns the tree: deletions and requeues are applied to the
// deck nodes it was given, and the position is recomputed from the tree after
// every mutation, so indices never go stale.
package iterator

import (
	"math/rand/v2"
	"time"

	"github.com/abhisek/flashdeck/internal/deck"
)

// State is the iterator's position state.
type State int

const (
	Idle State = iota
	AtCard
	Exhausted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AtCard:
		return "at-card"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// Iterator yields cards from a deck subtree in a configured order.
type Iterator struct {
	order Order
	rng   *rand.Rand

	active      *deck.Deck
	state       State
	current     *deck.Card
	currentDeck *deck.Deck

	// passed holds cards stepped over by Advance. They are not offered
	// again until the active deck is reset.
	passed map[*deck.Card]struct{}
}

// New creates an idle iterator. A nil rng is seeded from the clock.
func New(order Order, rng *rand.Rand) *Iterator {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Iterator{order: order, rng: rng, passed: make(map[*deck.Card]struct{})}
}

// Order returns the iteration order.
func (it *Iterator) Order() Order { return it.order }

// State returns the current state.
func (it *Iterator) State() State { return it.state }

// Current returns the card under the cursor, or nil when not AtCard.
func (it *Iterator) Current() *deck.Card {
	if it.state != AtCard {
		return nil
	}
	return it.current
}

// CurrentDeck returns the deck holding the current card.
func (it *Iterator) CurrentDeck() *deck.Deck {
	if it.state != AtCard {
		return nil
	}
	return it.currentDeck
}

// Active returns the subtree being iterated.
func (it *Iterator) Active() *deck.Deck { return it.active }

// SetActiveDeck restarts iteration over d and positions the cursor on the
// first card. It reports whether a card is available. A nil deck leaves the
// iterator exhausted.
func (it *Iterator) SetActiveDeck(d *deck.Deck) bool {
	it.active = d
	it.passed = make(map[*deck.Card]struct{})
	it.state = Idle
	return it.selectNext()
}

// Advance steps past the current card without removing it.
func (it *Iterator) Advance() bool {
	if it.state != AtCard {
		return false
	}
	it.passed[it.current] = struct{}{}
	return it.selectNext()
}

// DeleteCurrent removes the current card from its deck and moves on.
func (it *Iterator) DeleteCurrent() bool {
	if it.state != AtCard {
		return false
	}
	it.currentDeck.DeleteCard(it.current)
	return it.selectNext()
}

// DeleteCurrentQuestion removes the current card and all its siblings from
// the current deck and moves on.
func (it *Iterator) DeleteCurrentQuestion() bool {
	if it.state != AtCard {
		return false
	}
	if q := it.current.Question(); q != nil {
		it.currentDeck.DeleteAllCardsOfQuestion(q)
	} else {
		it.currentDeck.DeleteCard(it.current)
	}
	return it.selectNext()
}

// RequeueCurrentToEnd moves the current card to the end of its list so it
// comes up again later, then moves on. The next card may be the same one.
func (it *Iterator) RequeueCurrentToEnd() bool {
	if it.state != AtCard {
		return false
	}
	it.currentDeck.MoveCardToEnd(it.current)
	return it.selectNext()
}

// InsertCard adds c to the tree containing the active deck at its
// question's topic path. An exhausted iterator picks it up if it falls under
// the active deck.
func (it *Iterator) InsertCard(c *deck.Card) {
	if it.active == nil {
		return
	}
	var path deck.TopicPath
	if q := c.Question(); q != nil {
		path = q.TopicPath
	}
	it.active.Root().InsertCard(path, c)
	if it.state == Exhausted {
		it.selectNext()
	}
}

// Remaining counts the cards still to be offered under the active deck,
// including the current one.
func (it *Iterator) Remaining() int {
	if it.active == nil {
		return 0
	}
	n := 0
	it.active.Walk(func(d *deck.Deck) bool {
		n += len(it.eligible(d.Cards(deck.AllCards)))
		return true
	})
	return n
}

func (it *Iterator) selectNext() bool {
	var d *deck.Deck
	var c *deck.Card
	if it.active != nil {
		switch it.order.Deck {
		case RandomDeck:
			d, c = it.nextRandomDeck(it.active)
		case RandomDeckAndCard:
			d, c = it.nextRandomCard()
		default:
			d, c = it.nextSequential()
		}
	}

	if c == nil {
		it.state, it.current, it.currentDeck = Exhausted, nil, nil
		return false
	}
	it.state, it.current, it.currentDeck = AtCard, c, d
	return true
}

func (it *Iterator) nextSequential() (*deck.Deck, *deck.Card) {
	var foundDeck *deck.Deck
	var found *deck.Card
	it.active.Walk(func(d *deck.Deck) bool {
		if found != nil {
			return false
		}
		if c := it.pickInDeck(d); c != nil {
			foundDeck, found = d, c
			return false
		}
		return true
	})
	return foundDeck, found
}

func (it *Iterator) nextRandomDeck(d *deck.Deck) (*deck.Deck, *deck.Card) {
	for {
		own := len(it.eligible(d.Cards(deck.AllCards))) > 0
		var children []*deck.Deck
		for _, child := range d.Children() {
			if it.hasEligible(child) {
				children = append(children, child)
			}
		}

		n := len(children)
		if own {
			n++
		}
		if n == 0 {
			return nil, nil
		}

		k := it.rng.IntN(n)
		if own {
			if k == 0 {
				return d, it.pickInDeck(d)
			}
			k--
		}
		d = children[k]
	}
}

func (it *Iterator) nextRandomCard() (*deck.Deck, *deck.Card) {
	var decks []*deck.Deck
	var cards []*deck.Card
	it.active.Walk(func(d *deck.Deck) bool {
		for _, c := range it.eligible(d.Cards(deck.AllCards)) {
			decks = append(decks, d)
			cards = append(cards, c)
		}
		return true
	})
	if len(cards) == 0 {
		return nil, nil
	}

	k := it.rng.IntN(len(cards))
	d, c := decks[k], cards[k]
	if c.IsNew() {
		c = it.firstUnscheduledSibling(d, c)
	}
	return d, c
}

// pickInDeck chooses a card from d's own lists according to the card order.
func (it *Iterator) pickInDeck(d *deck.Deck) *deck.Card {
	lists := [2]deck.ListType{deck.DueCards, deck.NewCards}
	if it.order.Card.newFirst() {
		lists[0], lists[1] = lists[1], lists[0]
	}

	for _, t := range lists {
		cards := it.eligible(d.Cards(t))
		if len(cards) == 0 {
			continue
		}
		if !it.order.Card.random() {
			return cards[0]
		}
		c := cards[it.rng.IntN(len(cards))]
		if t == deck.NewCards {
			c = it.firstUnscheduledSibling(d, c)
		}
		return c
	}
	return nil
}

// firstUnscheduledSibling walks back from c over the run of its siblings
// directly before it and returns the earliest one still unscheduled, so
// siblings are presented in authored order.
func (it *Iterator) firstUnscheduledSibling(d *deck.Deck, c *deck.Card) *deck.Card {
	t, i := d.IndexOf(c)
	if i < 0 {
		return c
	}
	list := d.Cards(t)
	best := c
	for j := i - 1; j >= 0; j-- {
		s := list[j]
		if !s.IsSiblingOf(c) {
			break
		}
		if _, ok := it.passed[s]; !ok && s.IsNew() {
			best = s
		}
	}
	return best
}

func (it *Iterator) eligible(cards []*deck.Card) []*deck.Card {
	var out []*deck.Card
	for _, c := range cards {
		if _, ok := it.passed[c]; !ok {
			out = append(out, c)
		}
	}
	return out
}

func (it *Iterator) hasEligible(d *deck.Deck) bool {
	found := false
	d.Walk(func(n *deck.Deck) bool {
		if found {
			return false
		}
		found = len(it.eligible(n.Cards(deck.AllCards))) > 0
		return !found
	})
	return found
}
