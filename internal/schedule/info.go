package schedule

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the on-disk format of a due date.
const DateLayout = "2006-01-02"

// dummyDueDate marks a sibling that has never been reviewed when a question
// stores schedules for only some of its cards.
const dummyDueDate = "2000-01-01"

// Info is the scheduling state of one card. It is a value: algorithms return
// a new Info instead of changing the one they were given.
type Info struct {
	// DueDate is the local calendar day the card becomes due. The zero
	// value means the card has never been scheduled.
	DueDate time.Time

	// Interval is the current spacing in days. Always a whole number once
	// produced by an algorithm.
	Interval float64

	// Ease is the ease factor in percent. 0 under specified intervals.
	Ease int

	// Delay is how far past due the card was when it was observed.
	Delay time.Duration
}

// NewInfo builds a scheduled Info and derives Delay relative to today.
func NewInfo(due time.Time, interval float64, ease int, today time.Time) Info {
	return Info{
		DueDate:  Day(due),
		Interval: math.Round(interval),
		Ease:     ease,
	}.AsOf(today)
}

// AsOf returns a copy of i whose Delay is the time between the due date and
// today. Cards that are not yet due have zero delay.
func (i Info) AsOf(today time.Time) Info {
	i.Delay = 0
	if i.IsNew() {
		return i
	}
	if days := DaysBetween(i.DueDate, today); days > 0 {
		i.Delay = time.Duration(days) * 24 * time.Hour
	}
	return i
}

// IsNew reports whether the card has never been scheduled.
func (i Info) IsNew() bool {
	return i.DueDate.IsZero()
}

// IsDue reports whether a scheduled card is due on or before today.
func (i Info) IsDue(today time.Time) bool {
	if i.IsNew() {
		return false
	}
	return !i.DueDate.After(Day(today))
}

// IntervalDays returns the interval rounded to whole days.
func (i Info) IntervalDays() int {
	return int(math.Round(i.Interval))
}

// DueInDays returns the number of days from today until the due date.
// Negative values are overdue. New cards return 0.
func (i Info) DueInDays(today time.Time) int {
	if i.IsNew() {
		return 0
	}
	return DaysBetween(today, i.DueDate)
}

// Format renders i as "!YYYY-MM-DD,interval,ease". New cards use the
// placeholder date 2000-01-01.
func (i Info) Format() string {
	date := dummyDueDate
	if !i.IsNew() {
		date = i.DueDate.Format(DateLayout)
	}
	return fmt.Sprintf("!%s,%d,%d", date, i.IntervalDays(), i.Ease)
}

func (i Info) String() string {
	return i.Format()
}

// Parse reads a schedule written by Format. The leading "!" is optional.
// Delay is derived relative to today.
func Parse(s string, today time.Time) (Info, error) {
	fields := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "!"), ",")
	if len(fields) != 3 {
		return Info{}, fmt.Errorf("%w: %q: want 3 fields, got %d", ErrInvalidSchedule, s, len(fields))
	}
	for k := range fields {
		fields[k] = strings.TrimSpace(fields[k])
	}

	interval, err := strconv.Atoi(fields[1])
	if err != nil || interval < 0 {
		return Info{}, fmt.Errorf("%w: %q: bad interval", ErrInvalidSchedule, s)
	}
	ease, err := strconv.Atoi(fields[2])
	if err != nil || ease < 0 {
		return Info{}, fmt.Errorf("%w: %q: bad ease", ErrInvalidSchedule, s)
	}

	if fields[0] == dummyDueDate {
		return Info{Interval: float64(interval), Ease: ease}, nil
	}
	due, err := time.ParseInLocation(DateLayout, fields[0], today.Location())
	if err != nil {
		return Info{}, fmt.Errorf("%w: %q: bad date", ErrInvalidSchedule, s)
	}
	return NewInfo(due, float64(interval), ease, today), nil
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
