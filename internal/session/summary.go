package session

import (
	"time"

	"github.com/abhisek/flashdeck/internal/schedule"
)

// Summary holds the data displayed when a session ends.
type Summary struct {
	Mode      Mode
	Duration  time.Duration
	Reviewed  int
	Skipped   int
	Edited    int
	Responses map[schedule.Response]int
	Remaining int
}

// Count returns how many answers were r.
func (s Summary) Count(r schedule.Response) int {
	return s.Responses[r]
}

type tally struct {
	reviewed  int
	skipped   int
	edited    int
	responses map[schedule.Response]int
}

func (t *tally) answer(r schedule.Response) {
	if t.responses == nil {
		t.responses = make(map[schedule.Response]int)
	}
	t.reviewed++
	t.responses[r]++
}
