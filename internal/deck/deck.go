package deck

import (
	"slices"
	"strings"
)

// ListType selects one of a deck's local card lists.
type ListType int

const (
	NewCards ListType = iota
	DueCards
	AllCards
)

func (t ListType) String() string {
	switch t {
	case NewCards:
		return "new"
	case DueCards:
		return "due"
	case AllCards:
		return "all"
	}
	return "unknown"
}

// Deck is a node in the topic tree. Each deck holds its own new and
// scheduled cards and an ordered list of child decks.
type Deck struct {
	Name string

	parent   *Deck
	children []*Deck
	newCards []*Card
	dueCards []*Card
}

// New returns an empty root deck.
func New(name string) *Deck {
	return &Deck{Name: name}
}

// Parent returns the parent deck, or nil for the root.
func (d *Deck) Parent() *Deck { return d.parent }

// IsRoot reports whether d has no parent.
func (d *Deck) IsRoot() bool { return d.parent == nil }

// Children returns the child decks in order. The slice must not be modified.
func (d *Deck) Children() []*Deck { return d.children }

// Root walks up to the top of the tree.
func (d *Deck) Root() *Deck {
	for d.parent != nil {
		d = d.parent
	}
	return d
}

// TopicPath returns the names from the root (exclusive) down to d.
func (d *Deck) TopicPath() TopicPath {
	var p TopicPath
	for n := d; n.parent != nil; n = n.parent {
		p = append(p, n.Name)
	}
	slices.Reverse(p)
	return p
}

// Deck returns the descendant at path, or nil if it does not exist.
func (d *Deck) Deck(path TopicPath) *Deck {
	n := d
	for _, name := range path {
		n = n.child(name)
		if n == nil {
			return nil
		}
	}
	return n
}

// GetOrCreateDeck returns the descendant at path, creating missing decks.
// New children are appended in insertion order.
func (d *Deck) GetOrCreateDeck(path TopicPath) *Deck {
	n := d
	for _, name := range path {
		c := n.child(name)
		if c == nil {
			c = &Deck{Name: name, parent: n}
			n.children = append(n.children, c)
		}
		n = c
	}
	return n
}

func (d *Deck) child(name string) *Deck {
	for _, c := range d.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// InsertCard adds c to the deck at path, creating it if needed. The card
// goes to the new list or the scheduled list depending on its schedule.
func (d *Deck) InsertCard(path TopicPath, c *Card) {
	d.GetOrCreateDeck(path).AppendCard(c)
}

// AppendCard adds c to d's own lists.
func (d *Deck) AppendCard(c *Card) {
	if c.IsNew() {
		d.newCards = append(d.newCards, c)
	} else {
		d.dueCards = append(d.dueCards, c)
	}
}

// Cards returns d's own cards of the given list type. For AllCards a fresh
// slice of new followed by scheduled cards is returned; otherwise the
// slice is d's internal list and must not be modified.
func (d *Deck) Cards(t ListType) []*Card {
	switch t {
	case NewCards:
		return d.newCards
	case DueCards:
		return d.dueCards
	default:
		return slices.Concat(d.newCards, d.dueCards)
	}
}

func (d *Deck) list(t ListType) *[]*Card {
	if t == NewCards {
		return &d.newCards
	}
	return &d.dueCards
}

// CardCount counts cards of type t in d, and in every descendant when
// includeDescendants is set.
func (d *Deck) CardCount(t ListType, includeDescendants bool) int {
	n := 0
	switch t {
	case NewCards:
		n = len(d.newCards)
	case DueCards:
		n = len(d.dueCards)
	default:
		n = len(d.newCards) + len(d.dueCards)
	}
	if includeDescendants {
		for _, c := range d.children {
			n += c.CardCount(t, true)
		}
	}
	return n
}

// IndexOf returns the list and position of c among d's own cards.
func (d *Deck) IndexOf(c *Card) (ListType, int) {
	if i := slices.Index(d.newCards, c); i >= 0 {
		return NewCards, i
	}
	if i := slices.Index(d.dueCards, c); i >= 0 {
		return DueCards, i
	}
	return AllCards, -1
}

// DeleteCard removes c from d's own lists. It reports whether c was found.
func (d *Deck) DeleteCard(c *Card) bool {
	t, i := d.IndexOf(c)
	if i < 0 {
		return false
	}
	l := d.list(t)
	*l = slices.Delete(*l, i, i+1)
	return true
}

// MoveCardToEnd moves c to the tail of the list it is in. The list type is
// kept even when c's schedule no longer matches it, e.g. after a reset.
func (d *Deck) MoveCardToEnd(c *Card) bool {
	t, i := d.IndexOf(c)
	if i < 0 {
		return false
	}
	l := d.list(t)
	*l = append(slices.Delete(*l, i, i+1), c)
	return true
}

// DeleteAllCardsOfQuestion removes every card of q from d's own lists and
// returns how many were removed.
func (d *Deck) DeleteAllCardsOfQuestion(q *Question) int {
	n := 0
	for _, t := range []ListType{NewCards, DueCards} {
		l := d.list(t)
		before := len(*l)
		*l = slices.DeleteFunc(*l, func(c *Card) bool { return c.question == q })
		n += before - len(*l)
	}
	return n
}

// SortChildrenByName orders children by name, recursively.
func (d *Deck) SortChildrenByName() {
	slices.SortStableFunc(d.children, func(a, b *Deck) int {
		return strings.Compare(a.Name, b.Name)
	})
	for _, c := range d.children {
		c.SortChildrenByName()
	}
}

// Walk visits d and its descendants in pre-order. Returning false from fn
// skips the deck's children.
func (d *Deck) Walk(fn func(*Deck) bool) {
	if !fn(d) {
		return
	}
	for _, c := range d.children {
		c.Walk(fn)
	}
}

// Filter returns a structural copy of the tree rooted at d holding only the
// cards keep accepts. Cards are shared, lists are fresh. Decks left with no
// cards anywhere below them are dropped, except the copy of d itself.
func (d *Deck) Filter(keep func(*Card) bool) *Deck {
	out := &Deck{Name: d.Name}
	d.filterInto(out, keep)
	return out
}

func (d *Deck) filterInto(out *Deck, keep func(*Card) bool) {
	for _, c := range d.newCards {
		if keep(c) {
			out.newCards = append(out.newCards, c)
		}
	}
	for _, c := range d.dueCards {
		if keep(c) {
			out.dueCards = append(out.dueCards, c)
		}
	}
	for _, child := range d.children {
		cc := &Deck{Name: child.Name, parent: out}
		child.filterInto(cc, keep)
		if cc.CardCount(AllCards, true) > 0 {
			out.children = append(out.children, cc)
		}
	}
}

// Clone returns a structural copy holding every card.
func (d *Deck) Clone() *Deck {
	return d.Filter(func(*Card) bool { return true })
}

// Questions returns the distinct questions of every card under d in
// traversal order.
func (d *Deck) Questions() []*Question {
	seen := make(map[*Question]bool)
	var out []*Question
	d.Walk(func(n *Deck) bool {
		for _, c := range n.Cards(AllCards) {
			if q := c.question; q != nil && !seen[q] {
				seen[q] = true
				out = append(out, q)
			}
		}
		return true
	})
	return out
}
