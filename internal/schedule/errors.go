package schedule

import "errors"

var (
	// ErrInvalidResponse is returned when a review response is not one of the
	// four known values.
	ErrInvalidResponse = errors.New("schedule: invalid response")

	// ErrInvalidSchedule is returned when a serialized schedule cannot be parsed.
	ErrInvalidSchedule = errors.New("schedule: invalid schedule")

	// ErrInvalidSettings is returned by Settings.Validate.
	ErrInvalidSettings = errors.New("schedule: invalid settings")
)
