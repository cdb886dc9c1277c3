package schedule

// SpecifiedIntervals schedules each response a fixed number of days out and
// does not track ease.
type SpecifiedIntervals struct {
	settings Settings
	clock    Clock
}

var _ Algorithm = (*SpecifiedIntervals)(nil)

// Compute implements Algorithm. The histogram and seed ease are ignored.
func (a *SpecifiedIntervals) Compute(resp Response, _ *Info, _ *Histogram, _ int) (Info, error) {
	if err := checkResponse(resp); err != nil {
		return Info{}, err
	}

	var days int
	switch resp {
	case Easy:
		days = a.settings.EasyInterval
	case Good:
		days = a.settings.GoodInterval
	case Hard:
		days = a.settings.HardInterval
	case Reset:
		return Info{Interval: InitialInterval}, nil
	}

	today := Day(a.clock())
	return Info{DueDate: today.AddDate(0, 0, days), Interval: float64(days)}, nil
}
