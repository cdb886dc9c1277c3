package store

import (
	"context"
	"time"

	"github.com/abhisek/flashdeck/internal/schedule"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// CardScheduleData is the persisted schedule of one card. A nil or new
// Schedule removes the stored row.
type CardScheduleData struct {
	Key      string
	Schedule *schedule.Info
}

// QuestionData is an edited question: its text and every card schedule.
type QuestionData struct {
	Key   string
	Text  string
	Cards []CardScheduleData
}

// ScheduleRepo persists card schedules and edited question text.
type ScheduleRepo interface {
	// Get returns the stored schedule for a card. The returned Info has no
	// delay; callers apply Info.AsOf.
	Get(ctx context.Context, cardKey string) (schedule.Info, bool, error)

	// All returns every stored schedule keyed by card key.
	All(ctx context.Context) (map[string]schedule.Info, error)

	// Save stores a card schedule. A new schedule deletes the row.
	Save(ctx context.Context, cardKey string, info schedule.Info) error

	// SaveQuestion atomically stores an edited question's text and the
	// schedules of its cards, dropping rows for cards it no longer has.
	SaveQuestion(ctx context.Context, q QuestionData) error

	// QuestionText returns the edited text of a question, if any.
	QuestionText(ctx context.Context, questionKey string) (string, bool, error)
}

// ReviewEventData captures one answered card.
type ReviewEventData struct {
	SessionID    string
	CardKey      string
	Mode         string
	Response     string
	PrevInterval int
	PrevEase     int
	Interval     int
	Ease         int
	DueDate      string
}

// ReviewEventRecord is a stored review event.
type ReviewEventRecord struct {
	ReviewEventData
	EventID   string
	Sequence  int64
	Timestamp time.Time
}

// SessionEventData captures the start or end of a review session.
type SessionEventData struct {
	SessionID     string
	Action        string // "start" or "end"
	Mode          string
	Deck          string
	CardsReviewed int
	DurationSecs  int
}

// SessionSummaryRecord holds the data for one completed session.
type SessionSummaryRecord struct {
	SessionID     string
	Timestamp     time.Time
	Mode          string
	Deck          string
	CardsReviewed int
	DurationSecs  int
}

// EventRepo provides append and query access to review history.
type EventRepo interface {
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error
	QueryReviewEvents(ctx context.Context, opts QueryOpts) ([]ReviewEventRecord, error)
	ResponseCounts(ctx context.Context, from time.Time) (map[string]int, error)

	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)
}

// PostponementRepo stores the questions whose siblings are buried for the
// day.
type PostponementRepo interface {
	// Load returns the question keys postponed on day. Entries from other
	// days are discarded.
	Load(ctx context.Context, day time.Time) ([]string, error)

	// Add postpones a question for day.
	Add(ctx context.Context, day time.Time, questionKey string) error

	// Clear removes every postponement.
	Clear(ctx context.Context) error
}
