// Package session drives a review session: it presents cards from a deck
// tree, applies answers through the scheduling algorithm and persists the
// results.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/iterator"
	"github.com/abhisek/flashdeck/internal/schedule"
	"github.com/abhisek/flashdeck/internal/store"
)

var (
	// ErrNoCurrentCard is returned by operations that need a card when the
	// session has none left.
	ErrNoCurrentCard = errors.New("session: no current card")

	// ErrNotSingleQuestion is returned when edited text does not parse to
	// exactly one question.
	ErrNotSingleQuestion = errors.New("session: text is not a single question")
)

// ScheduleWriter persists card schedules and edited questions.
type ScheduleWriter interface {
	Save(ctx context.Context, cardKey string, info schedule.Info) error
	SaveQuestion(ctx context.Context, q store.QuestionData) error
}

// EventRecorder appends review history.
type EventRecorder interface {
	AppendReviewEvent(ctx context.Context, data store.ReviewEventData) error
	AppendSessionEvent(ctx context.Context, data store.SessionEventData) error
}

// QuestionParser turns question text into cards.
type QuestionParser interface {
	ParseQuestions(text string) ([]deck.ParsedQuestion, error)
}

// EaseHint suggests a starting ease for the first schedule of a note.
type EaseHint func(notePath string) (int, bool)

// State is the externally visible state of a sequencer.
type State int

const (
	Empty State = iota
	HasCurrentCard
)

// Options configures a Sequencer. Iterator and Algorithm are required;
// Schedules is required in Review mode.
type Options struct {
	Mode      Mode
	Iterator  *iterator.Iterator
	Algorithm schedule.Algorithm
	Histogram *schedule.Histogram
	Schedules ScheduleWriter
	Events    EventRecorder
	Parser    QuestionParser
	Postponed *PostponementList

	// BurySiblings postpones a question once one of its cards is answered.
	BurySiblings bool

	EaseHint  EaseHint
	Now       func() time.Time
	Logger    *slog.Logger
	SessionID string
}

// Stats are the card counts shown for a deck.
type Stats struct {
	Due   int
	New   int
	Total int
}

// Sequencer is the state machine of one review session. It is not safe for
// concurrent use.
type Sequencer struct {
	mode      Mode
	it        *iterator.Iterator
	algo      schedule.Algorithm
	hist      *schedule.Histogram
	schedules ScheduleWriter
	events    EventRecorder
	parser    QuestionParser
	postponed *PostponementList
	bury      bool
	easeHint  EaseHint
	now       func() time.Time
	logger    *slog.Logger
	sessionID string

	full    *deck.Deck
	working *deck.Deck
	scope   deck.TopicPath
	started time.Time
	tally   tally
}

// New creates a sequencer. Call SetDeckTree before use.
func New(opts Options) (*Sequencer, error) {
	if opts.Iterator == nil {
		return nil, errors.New("session: iterator is required")
	}
	if opts.Algorithm == nil {
		return nil, errors.New("session: algorithm is required")
	}
	if opts.Mode == Review && opts.Schedules == nil {
		return nil, errors.New("session: review mode needs a schedule writer")
	}
	s := &Sequencer{
		mode:      opts.Mode,
		it:        opts.Iterator,
		algo:      opts.Algorithm,
		hist:      opts.Histogram,
		schedules: opts.Schedules,
		events:    opts.Events,
		parser:    opts.Parser,
		postponed: opts.Postponed,
		bury:      opts.BurySiblings,
		easeHint:  opts.EaseHint,
		now:       opts.Now,
		logger:    opts.Logger,
		sessionID: opts.SessionID,
	}
	if s.hist == nil {
		s.hist = schedule.NewHistogram(nil)
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.sessionID == "" {
		s.sessionID = uuid.NewString()
	}
	return s, nil
}

// Mode returns the session mode.
func (s *Sequencer) Mode() Mode { return s.mode }

// SessionID returns the identifier recorded with every event.
func (s *Sequencer) SessionID() string { return s.sessionID }

// Histogram returns the live due-date histogram.
func (s *Sequencer) Histogram() *schedule.Histogram { return s.hist }

// SetDeckTree installs the trees for the session. full is only used for
// total counts; working is traversed and mutated. Iteration starts at the
// root of working.
func (s *Sequencer) SetDeckTree(full, working *deck.Deck) {
	s.full, s.working = full, working
	s.scope = nil
	s.it.SetActiveDeck(working)
}

// SetCurrentDeck scopes the session to the subtree at path and reports
// whether it has a card to show.
func (s *Sequencer) SetCurrentDeck(path deck.TopicPath) bool {
	if s.working == nil {
		return false
	}
	s.scope = path
	return s.it.SetActiveDeck(s.working.Deck(path))
}

// State reports whether a card is waiting for an answer.
func (s *Sequencer) State() State {
	if s.it.Current() != nil {
		return HasCurrentCard
	}
	return Empty
}

// Current returns the card waiting for an answer, or nil.
func (s *Sequencer) Current() *deck.Card { return s.it.Current() }

// CurrentDeck returns the deck holding the current card, or nil.
func (s *Sequencer) CurrentDeck() *deck.Deck { return s.it.CurrentDeck() }

// Remaining counts the cards still to be shown in the current scope.
func (s *Sequencer) Remaining() int { return s.it.Remaining() }

// DetermineCardSchedule returns the schedule card would get for resp
// without changing any state.
func (s *Sequencer) DetermineCardSchedule(resp schedule.Response, card *deck.Card) (schedule.Info, error) {
	return s.compute(resp, card, s.hist.Clone())
}

func (s *Sequencer) compute(resp schedule.Response, card *deck.Card, hist *schedule.Histogram) (schedule.Info, error) {
	seed := 0
	if card.IsNew() && s.easeHint != nil {
		if q := card.Question(); q != nil {
			if ease, ok := s.easeHint(q.NotePath); ok {
				seed = ease
			}
		}
	}
	var current *schedule.Info
	if !card.IsNew() {
		current = card.Schedule
	}
	return s.algo.Compute(resp, current, hist, seed)
}

// ProcessReview applies resp to the current card and moves to the next one.
//
// In Review mode the new schedule is written before the tree changes, so a
// failed write leaves the card in place and returns the error. A Reset card
// is requeued; any other answer removes it for the session. In Cram mode
// nothing is persisted: Easy removes the card and other answers requeue it.
func (s *Sequencer) ProcessReview(ctx context.Context, resp schedule.Response) error {
	card := s.it.Current()
	if card == nil {
		return ErrNoCurrentCard
	}
	if !resp.IsValid() {
		return fmt.Errorf("%w: %d", schedule.ErrInvalidResponse, int(resp))
	}

	if s.mode == Cram {
		s.tally.answer(resp)
		s.logger.Debug("cram answer", "card", card.Key, "response", resp)
		if resp == schedule.Easy {
			s.it.DeleteCurrent()
		} else {
			s.it.RequeueCurrentToEnd()
		}
		return nil
	}

	hist := s.hist.Clone()
	next, err := s.compute(resp, card, hist)
	if err != nil {
		return err
	}
	if err := s.schedules.Save(ctx, card.Key, next); err != nil {
		s.logger.Error("saving schedule failed", "card", card.Key, "error", err)
		return fmt.Errorf("save schedule %s: %w", card.Key, err)
	}

	prev := card.Schedule
	if next.IsNew() {
		card.Schedule = nil
	} else {
		card.Schedule = &next
	}
	s.hist = hist
	s.tally.answer(resp)
	s.recordReview(ctx, card, resp, prev, next)
	s.logger.Debug("card reviewed", "card", card.Key, "response", resp, "schedule", next.Format())

	if resp == schedule.Reset {
		s.it.RequeueCurrentToEnd()
		return nil
	}
	if s.bury && len(card.Siblings()) > 0 && s.postponed != nil {
		if err := s.postponed.Add(ctx, card.Question()); err != nil {
			s.logger.Error("postponing question failed", "question", card.Question().Key(), "error", err)
		}
		s.it.DeleteCurrentQuestion()
		return nil
	}
	s.it.DeleteCurrent()
	return nil
}

func (s *Sequencer) recordReview(ctx context.Context, card *deck.Card, resp schedule.Response, prev *schedule.Info, next schedule.Info) {
	if s.events == nil {
		return
	}
	data := store.ReviewEventData{
		SessionID: s.sessionID,
		CardKey:   card.Key,
		Mode:      s.mode.String(),
		Response:  resp.String(),
		Interval:  next.IntervalDays(),
		Ease:      next.Ease,
	}
	if prev != nil {
		data.PrevInterval = prev.IntervalDays()
		data.PrevEase = prev.Ease
	}
	if !next.IsNew() {
		data.DueDate = next.DueDate.Format(schedule.DateLayout)
	}
	if err := s.events.AppendReviewEvent(ctx, data); err != nil {
		s.logger.Error("recording review failed", "card", card.Key, "error", err)
	}
}

// SkipCurrentCard removes the current card for this session without
// answering it.
func (s *Sequencer) SkipCurrentCard() error {
	if s.it.Current() == nil {
		return ErrNoCurrentCard
	}
	s.tally.skipped++
	s.it.DeleteCurrent()
	return nil
}

// SkipCurrentQuestion removes the current card and its siblings for this
// session.
func (s *Sequencer) SkipCurrentQuestion() error {
	if s.it.Current() == nil {
		return ErrNoCurrentCard
	}
	s.tally.skipped++
	s.it.DeleteCurrentQuestion()
	return nil
}

// EditCurrentQuestionText replaces the text of the current card's question.
// The question's cards are rebuilt from text; unchanged cards keep their
// schedules. The edit is stored before the trees change.
func (s *Sequencer) EditCurrentQuestionText(ctx context.Context, text string) error {
	card := s.it.Current()
	if card == nil {
		return ErrNoCurrentCard
	}
	if s.parser == nil {
		return errors.New("session: no question parser")
	}
	old := card.Question()
	if old == nil {
		return fmt.Errorf("card %s has no question", card.Key)
	}

	parsed, err := s.parser.ParseQuestions(text)
	if err != nil {
		return fmt.Errorf("parse question: %w", err)
	}
	if len(parsed) != 1 {
		return fmt.Errorf("%w: got %d", ErrNotSingleQuestion, len(parsed))
	}
	revised := old.Revise(parsed[0].Text, parsed[0].Faces, nil)

	if s.schedules != nil {
		data := store.QuestionData{Key: revised.Key(), Text: revised.Text}
		for _, c := range revised.Cards {
			data.Cards = append(data.Cards, store.CardScheduleData{Key: c.Key, Schedule: c.Schedule})
		}
		if err := s.schedules.SaveQuestion(ctx, data); err != nil {
			return fmt.Errorf("save question %s: %w", revised.Key(), err)
		}
	}

	if s.full != nil {
		if d := s.full.Deck(old.TopicPath); d != nil {
			d.DeleteAllCardsOfQuestion(old)
		}
		for _, c := range revised.Cards {
			s.full.InsertCard(revised.TopicPath, c)
		}
	}

	s.it.DeleteCurrentQuestion()
	today := schedule.Day(s.now())
	for _, c := range revised.Cards {
		if s.mode == Cram || c.IsNew() || c.Schedule.IsDue(today) {
			s.it.InsertCard(c)
		}
	}
	s.tally.edited++
	s.logger.Debug("question edited", "question", revised.Key(), "cards", len(revised.Cards))
	return nil
}

// DeckStats returns counts for the deck at path. Total comes from the full
// tree; due and new counts shrink as the session progresses.
func (s *Sequencer) DeckStats(path deck.TopicPath) Stats {
	var st Stats
	if s.full != nil {
		if d := s.full.Deck(path); d != nil {
			st.Total = d.CardCount(deck.AllCards, true)
		}
	}
	if s.working != nil {
		if d := s.working.Deck(path); d != nil {
			st.New = d.CardCount(deck.NewCards, true)
			st.Due = d.CardCount(deck.DueCards, true)
		}
	}
	return st
}

// Start records the beginning of the session.
func (s *Sequencer) Start(ctx context.Context) {
	s.started = s.now()
	s.appendSessionEvent(ctx, "start")
}

// Finish records the end of the session and returns its summary.
func (s *Sequencer) Finish(ctx context.Context) Summary {
	s.appendSessionEvent(ctx, "end")
	return s.Summary()
}

// Summary returns the answers given so far.
func (s *Sequencer) Summary() Summary {
	sum := Summary{
		Mode:      s.mode,
		Reviewed:  s.tally.reviewed,
		Skipped:   s.tally.skipped,
		Edited:    s.tally.edited,
		Responses: maps.Clone(s.tally.responses),
		Remaining: s.it.Remaining(),
	}
	if sum.Responses == nil {
		sum.Responses = make(map[schedule.Response]int)
	}
	if !s.started.IsZero() {
		sum.Duration = s.now().Sub(s.started)
	}
	return sum
}

func (s *Sequencer) appendSessionEvent(ctx context.Context, action string) {
	if s.events == nil {
		return
	}
	data := store.SessionEventData{
		SessionID:     s.sessionID,
		Action:        action,
		Mode:          s.mode.String(),
		Deck:          s.scope.String(),
		CardsReviewed: s.tally.reviewed,
	}
	if action == "end" && !s.started.IsZero() {
		data.DurationSecs = int(s.now().Sub(s.started).Seconds())
	}
	if err := s.events.AppendSessionEvent(ctx, data); err != nil {
		s.logger.Error("recording session event failed", "action", action, "error", err)
	}
}
