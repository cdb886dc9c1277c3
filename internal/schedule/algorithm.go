package schedule

import (
	"fmt"
	"time"
)

// Clock returns the current time. Algorithms only look at its calendar day.
type Clock func() time.Time

// Algorithm computes the next schedule for a card.
//
// A nil current schedule (or one that IsNew) is a card that has never been
// reviewed; seedEase, when positive, replaces the base ease for it. The
// histogram may be nil; when present, algorithms that balance load move the
// card between its buckets.
type Algorithm interface {
	Compute(resp Response, current *Info, hist *Histogram, seedEase int) (Info, error)
}

// New returns the algorithm selected by s.Kind.
func New(s Settings, clock Clock) (Algorithm, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = time.Now
	}
	switch s.Kind {
	case KindSpecifiedIntervals:
		return &SpecifiedIntervals{settings: s, clock: clock}, nil
	default:
		return &SM2{settings: s, clock: clock}, nil
	}
}

func checkResponse(resp Response) error {
	if !resp.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidResponse, int(resp))
	}
	return nil
}

func isNewCard(current *Info) bool {
	return current == nil || current.IsNew()
}
