package deck

import "github.com/abhisek/flashdeck/internal/schedule"

// Card is one reviewable prompt of a Question.
type Card struct {
	// Key identifies the card in persistent storage.
	Key   string
	Index int
	Front string
	Back  string

	// Schedule is nil for a card that has never been reviewed.
	Schedule *schedule.Info

	question *Question
}

// Question returns the question that owns c.
func (c *Card) Question() *Question {
	return c.question
}

// IsNew reports whether c has never been scheduled.
func (c *Card) IsNew() bool {
	return c.Schedule == nil || c.Schedule.IsNew()
}

// IsSiblingOf reports whether c and o belong to the same question.
func (c *Card) IsSiblingOf(o *Card) bool {
	return c.question != nil && c.question == o.question
}

// Siblings returns the other cards of c's question.
func (c *Card) Siblings() []*Card {
	if c.question == nil {
		return nil
	}
	var out []*Card
	for _, s := range c.question.Cards {
		if s != c {
			out = append(out, s)
		}
	}
	return out
}

// Face is the front and back text of a card before it is attached to a
// question.
type Face struct {
	Front string
	Back  string
}
