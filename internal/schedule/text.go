package schedule

import (
	"math"
	"strconv"
)

// TextInterval renders an interval in days for display, switching to months
// and years as it grows. Mobile form is compact ("1.3m" instead of
// "1.3 month(s)"). A nil interval renders as "New".
func TextInterval(days *float64, mobile bool) string {
	if days == nil {
		return "New"
	}
	ivl := *days
	months := math.Round(ivl/3.04375) / 10
	years := math.Round(ivl/36.525) / 10

	switch {
	case months < 1:
		return unit(ivl, "d", " day(s)", mobile)
	case years < 1:
		return unit(months, "m", " month(s)", mobile)
	default:
		return unit(years, "y", " year(s)", mobile)
	}
}

func unit(v float64, short, long string, mobile bool) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if mobile {
		return s + short
	}
	return s + long
}
