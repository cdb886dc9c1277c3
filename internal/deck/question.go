package deck

import "fmt"

// Question is one authored item in a source document. It produces one or
// more sibling cards.
type Question struct {
	ID        string
	NotePath  string
	Text      string
	TopicPath TopicPath

	// EditLater marks a question the author flagged for rework. Its cards
	// are not reviewable.
	EditLater bool

	Cards []*Card
}

// ParsedQuestion is the output of a question parser: the question text and
// the faces of its cards.
type ParsedQuestion struct {
	Text  string
	Faces []Face
}

// NewQuestion builds a question and its cards from faces.
func NewQuestion(id, notePath string, topic TopicPath, text string, faces []Face) *Question {
	q := &Question{ID: id, NotePath: notePath, Text: text, TopicPath: topic}
	cards := make([]*Card, len(faces))
	for i, f := range faces {
		cards[i] = &Card{Front: f.Front, Back: f.Back}
	}
	q.SetCards(cards)
	return q
}

// Key identifies the question across sessions.
func (q *Question) Key() string {
	return q.NotePath + "#" + q.ID
}

// CardKey returns the storage key of the card at index.
func (q *Question) CardKey(index int) string {
	return fmt.Sprintf("%s/%d", q.Key(), index)
}

// SetCards attaches cards to q, assigning indexes and any missing keys.
func (q *Question) SetCards(cards []*Card) {
	for i, c := range cards {
		c.question = q
		c.Index = i
		if c.Key == "" {
			c.Key = q.CardKey(i)
		}
	}
	q.Cards = cards
}

// HasSchedule reports whether any card of q has been reviewed.
func (q *Question) HasSchedule() bool {
	for _, c := range q.Cards {
		if !c.IsNew() {
			return true
		}
	}
	return false
}

// Revise returns a copy of q with new text and cards built from faces.
// A card keeps the schedule of the old card at the same index when same
// reports the two as the same card.
func (q *Question) Revise(text string, faces []Face, same func(old *Card, f Face) bool) *Question {
	if same == nil {
		same = SameFace
	}
	next := &Question{
		ID:        q.ID,
		NotePath:  q.NotePath,
		Text:      text,
		TopicPath: q.TopicPath,
		EditLater: q.EditLater,
	}
	cards := make([]*Card, len(faces))
	for i, f := range faces {
		c := &Card{Front: f.Front, Back: f.Back}
		if i < len(q.Cards) && same(q.Cards[i], f) && q.Cards[i].Schedule != nil {
			info := *q.Cards[i].Schedule
			c.Schedule = &info
		}
		cards[i] = c
	}
	next.SetCards(cards)
	return next
}

// SameFace reports whether a card's text is unchanged.
func SameFace(old *Card, f Face) bool {
	return old.Front == f.Front && old.Back == f.Back
}
