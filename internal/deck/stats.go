package deck

import (
	"time"

	"github.com/abhisek/flashdeck/internal/schedule"
)

// MatureInterval is the interval in days above which a card counts as mature.
const MatureInterval = 32

// Stats summarizes the schedules of every card in a tree.
type Stats struct {
	NewCount    int
	YoungCount  int
	MatureCount int
	DueToday    int

	// Intervals and Eases count scheduled cards by interval days and ease.
	Intervals map[int]int
	Eases     map[int]int

	// DueDates counts scheduled cards by due offset from today.
	DueDates *schedule.Histogram
}

// CalculateStats walks tree and aggregates card schedules.
func CalculateStats(tree *Deck, today time.Time) *Stats {
	st := &Stats{
		Intervals: make(map[int]int),
		Eases:     make(map[int]int),
		DueDates:  schedule.NewHistogram(nil),
	}
	tree.Walk(func(d *Deck) bool {
		for _, c := range d.Cards(AllCards) {
			st.add(c, today)
		}
		return true
	})
	return st
}

func (st *Stats) add(c *Card, today time.Time) {
	if c.IsNew() {
		st.NewCount++
		return
	}
	s := c.Schedule
	days := s.IntervalDays()
	if days > MatureInterval {
		st.MatureCount++
	} else {
		st.YoungCount++
	}
	if s.IsDue(today) {
		st.DueToday++
	}
	st.Intervals[days]++
	st.Eases[s.Ease]++
	st.DueDates.Increment(s.DueInDays(today))
}

// Total returns the number of cards counted.
func (st *Stats) Total() int {
	return st.NewCount + st.YoungCount + st.MatureCount
}
