package schedule

import (
	"math"
	"time"
)

// SM2 is the SM-2 variant: ease moves in steps of 20 with a floor of 130 and
// overdue time is partially credited to the new interval.
type SM2 struct {
	settings Settings
	clock    Clock
}

var _ Algorithm = (*SM2)(nil)

// Compute implements Algorithm.
func (a *SM2) Compute(resp Response, current *Info, hist *Histogram, seedEase int) (Info, error) {
	if err := checkResponse(resp); err != nil {
		return Info{}, err
	}
	if resp == Reset {
		return Info{Interval: InitialInterval, Ease: a.settings.BaseEase}, nil
	}

	today := Day(a.clock())

	if isNewCard(current) {
		ease := a.settings.BaseEase
		if seedEase > 0 {
			ease = seedEase
		}
		interval, ease := a.next(resp, InitialInterval, ease, 0)
		days := a.clamp(interval)
		if hist != nil {
			hist.Increment(days)
		}
		return Info{DueDate: today.AddDate(0, 0, days), Interval: float64(days), Ease: ease}, nil
	}

	interval, ease := a.next(resp, current.Interval, current.Ease, current.Delay)
	days := a.clamp(interval)

	if hist != nil {
		if a.settings.LoadBalance && days >= LoadBalanceThreshold {
			days = hist.FindLeastUsed(days, a.fuzz(days), 1, a.settings.MaximumInterval)
		}
		hist.Decrement(current.DueInDays(today))
		hist.Increment(days)
	}

	return Info{DueDate: today.AddDate(0, 0, days), Interval: float64(days), Ease: ease}, nil
}

// next applies the SM-2 arithmetic and returns the unrounded interval.
func (a *SM2) next(resp Response, interval float64, ease int, delay time.Duration) (float64, int) {
	delayDays := math.Max(0, math.Floor(delay.Hours()/24))

	switch resp {
	case Easy:
		ease += EaseStep
		interval = (interval + delayDays) * float64(ease) / 100 * a.settings.EasyBonus
	case Good:
		interval = (interval + delayDays/2) * float64(ease) / 100
	case Hard:
		ease -= EaseStep
		interval = math.Max(1, (interval+delayDays/4)*a.settings.LapseIntervalChange)
	}
	return interval, max(ease, MinEase)
}

func (a *SM2) clamp(interval float64) int {
	days := int(math.Round(interval))
	return min(max(days, 1), a.settings.MaximumInterval)
}

// fuzz is the half-width of the load-balancing window for interval.
func (a *SM2) fuzz(interval int) int {
	f := int(math.Floor(float64(interval) * a.settings.LoadBalanceFraction))
	return min(max(f, 1), a.settings.LoadBalanceMaxFuzz)
}
