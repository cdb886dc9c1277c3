package iterator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOrder is returned when an order name cannot be parsed.
var ErrUnknownOrder = errors.New("iterator: unknown order")

// DeckOrder controls how the iterator moves between decks.
type DeckOrder int

const (
	// SequentialOnceChildComplete finishes a deck, including its subdecks in
	// child order, before moving on to the next sibling deck.
	SequentialOnceChildComplete DeckOrder = iota

	// RandomDeck descends into a randomly chosen eligible subtree for every
	// card.
	RandomDeck

	// RandomDeckAndCard ignores deck grouping and picks uniformly among all
	// eligible cards.
	RandomDeckAndCard
)

// CardOrder controls how the iterator picks cards within a deck.
type CardOrder int

const (
	DueFirstSequential CardOrder = iota
	NewFirstSequential
	DueFirstRandom
	NewFirstRandom
)

// Order combines a deck order and a card order.
type Order struct {
	Deck DeckOrder
	Card CardOrder
}

var deckOrderNames = map[DeckOrder]string{
	SequentialOnceChildComplete: "PrevDeckComplete_Sequential",
	RandomDeck:                  "Random",
	RandomDeckAndCard:           "EveryCardRandomDeckAndCard",
}

var cardOrderNames = map[CardOrder]string{
	DueFirstSequential: "DueFirstSequential",
	NewFirstSequential: "NewFirstSequential",
	DueFirstRandom:     "DueFirstRandom",
	NewFirstRandom:     "NewFirstRandom",
}

func (o DeckOrder) String() string {
	if s, ok := deckOrderNames[o]; ok {
		return s
	}
	return fmt.Sprintf("DeckOrder(%d)", int(o))
}

func (o CardOrder) String() string {
	if s, ok := cardOrderNames[o]; ok {
		return s
	}
	return fmt.Sprintf("CardOrder(%d)", int(o))
}

func (o CardOrder) newFirst() bool {
	return o == NewFirstSequential || o == NewFirstRandom
}

func (o CardOrder) random() bool {
	return o == DueFirstRandom || o == NewFirstRandom
}

// ParseDeckOrder accepts a deck order name, case-insensitively.
func ParseDeckOrder(s string) (DeckOrder, error) {
	for o, name := range deckOrderNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: deck order %q", ErrUnknownOrder, s)
}

// ParseCardOrder accepts a card order name, case-insensitively.
func ParseCardOrder(s string) (CardOrder, error) {
	for o, name := range cardOrderNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: card order %q", ErrUnknownOrder, s)
}
