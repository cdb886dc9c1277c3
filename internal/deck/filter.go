package deck

import "time"

// Build creates a tree rooted at a deck named name holding every card of
// questions, placed by each question's topic path.
func Build(name string, questions []*Question) *Deck {
	root := New(name)
	for _, q := range questions {
		for _, c := range q.Cards {
			root.InsertCard(q.TopicPath, c)
		}
	}
	return root
}

// FilterReviewable drops the cards of questions flagged EditLater.
func FilterReviewable(tree *Deck) *Deck {
	return tree.Filter(func(c *Card) bool {
		q := c.Question()
		return q == nil || !q.EditLater
	})
}

// FilterRemaining keeps the cards still to be reviewed today: new and due
// cards, or every card when includeAll is set. Cards of postponed questions
// are always dropped.
func FilterRemaining(tree *Deck, today time.Time, postponed func(*Question) bool, includeAll bool) *Deck {
	return tree.Filter(func(c *Card) bool {
		if postponed != nil && c.Question() != nil && postponed(c.Question()) {
			return false
		}
		return includeAll || c.IsNew() || c.Schedule.IsDue(today)
	})
}
