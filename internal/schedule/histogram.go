package schedule

import (
	"maps"
	"slices"
	"time"
)

// Histogram counts scheduled cards per due day, keyed by the day offset from
// today (0 = today, negative = overdue). It is built once per session and
// updated as cards are rescheduled.
type Histogram struct {
	counts map[int]int
}

// NewHistogram returns a histogram seeded with counts. The map is copied.
func NewHistogram(counts map[int]int) *Histogram {
	h := &Histogram{counts: make(map[int]int, len(counts))}
	for day, n := range counts {
		if n > 0 {
			h.counts[day] = n
		}
	}
	return h
}

// BuildHistogram counts every scheduled Info by its due offset from today.
// New cards are ignored.
func BuildHistogram(today time.Time, schedules []Info) *Histogram {
	h := NewHistogram(nil)
	for _, s := range schedules {
		if s.IsNew() {
			continue
		}
		h.Increment(s.DueInDays(today))
	}
	return h
}

// Get returns the number of cards due in days.
func (h *Histogram) Get(days int) int {
	return h.counts[days]
}

// HasEntry reports whether any card is due in days.
func (h *Histogram) HasEntry(days int) bool {
	return h.counts[days] > 0
}

// Increment adds one card to the bucket for days.
func (h *Histogram) Increment(days int) {
	if h.counts == nil {
		h.counts = make(map[int]int)
	}
	h.counts[days]++
}

// Decrement removes one card from the bucket for days. Empty buckets are
// left untouched.
func (h *Histogram) Decrement(days int) {
	n := h.counts[days]
	switch {
	case n > 1:
		h.counts[days] = n - 1
	case n == 1:
		delete(h.counts, days)
	}
}

// Total returns the number of cards across all buckets.
func (h *Histogram) Total() int {
	total := 0
	for _, n := range h.counts {
		total += n
	}
	return total
}

// Counts returns a copy of the day → count map.
func (h *Histogram) Counts() map[int]int {
	return maps.Clone(h.counts)
}

// Days returns the offsets that have at least one card, ascending.
func (h *Histogram) Days() []int {
	return slices.Sorted(maps.Keys(h.counts))
}

// Clone returns an independent copy.
func (h *Histogram) Clone() *Histogram {
	return NewHistogram(h.counts)
}

// FindLeastUsed returns the least-loaded day within fuzz of target, visiting
// target, target-1, target+1, target-2, target+2 and so on. A later candidate
// only wins with a strictly lower count. Candidates outside [lo, hi] are
// skipped. If every candidate is out of range the target is returned.
func (h *Histogram) FindLeastUsed(target, fuzz, lo, hi int) int {
	best, bestCount := target, -1
	consider := func(day int) {
		if day < lo || day > hi {
			return
		}
		if n := h.counts[day]; bestCount < 0 || n < bestCount {
			best, bestCount = day, n
		}
	}

	consider(target)
	for step := 1; step <= fuzz; step++ {
		consider(target - step)
		consider(target + step)
	}
	return best
}
