package session

import (
	"fmt"
	"strings"
)

// Mode selects how answers are handled.
type Mode int

const (
	// Review computes and persists a new schedule for every answer.
	Review Mode = iota

	// Cram drills every card without touching stored schedules.
	Cram
)

func (m Mode) String() string {
	switch m {
	case Review:
		return "review"
	case Cram:
		return "cram"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "review" or "cram".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "review":
		return Review, nil
	case "cram":
		return Cram, nil
	}
	return 0, fmt.Errorf("unknown session mode %q", s)
}
