package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestInfoFormat(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"scheduled", NewInfo(time.Date(2023, 9, 2, 0, 0, 0, 0, time.UTC), 4, 270, testNow), "!2023-09-02,4,270"},
		{"new", Info{Interval: 1, Ease: 250}, "!2000-01-01,1,250"},
		{"specified", NewInfo(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), 3, 0, testNow), "!2024-01-31,3,0"},
	}
	for _, tt := range tests {
		if got := tt.info.Format(); got != tt.want {
			t.Errorf("%s: Format() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("!2023-06-28,10,250", testNow)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.IntervalDays() != 10 || got.Ease != 250 {
		t.Errorf("got %v, want interval 10 ease 250", got)
	}
	if got.Delay != 3*24*time.Hour {
		t.Errorf("delay = %v, want 72h", got.Delay)
	}
	if got.DueInDays(testNow) != -3 {
		t.Errorf("DueInDays = %d, want -3", got.DueInDays(testNow))
	}
	if !got.IsDue(testNow) {
		t.Error("expected card to be due")
	}
}

func TestParseDummyDateIsNew(t *testing.T) {
	got, err := Parse("2000-01-01,1,250", testNow)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !got.IsNew() {
		t.Errorf("IsNew() = false for %v", got)
	}
	if got.IsDue(testNow) {
		t.Error("new card reported due")
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []string{"!2023-09-02,4,270", "!2000-01-01,1,250", "!2031-12-31,3000,130"} {
		info, err := Parse(s, testNow)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := info.Format(); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"!2023-09-02,4",
		"!2023-09-02,4,270,1",
		"!2023-13-02,4,270",
		"!2023-09-02,x,270",
		"!2023-09-02,4,-5",
	} {
		if _, err := Parse(s, testNow); !errors.Is(err, ErrInvalidSchedule) {
			t.Errorf("Parse(%q) err = %v, want ErrInvalidSchedule", s, err)
		}
	}
}

func TestIsDue(t *testing.T) {
	today := Day(testNow)
	tests := []struct {
		due  time.Time
		want bool
	}{
		{today.AddDate(0, 0, -1), true},
		{today, true},
		{today.AddDate(0, 0, 1), false},
	}
	for _, tt := range tests {
		info := NewInfo(tt.due, 5, 250, testNow)
		if got := info.IsDue(testNow); got != tt.want {
			t.Errorf("IsDue(due=%v) = %v, want %v", tt.due, got, tt.want)
		}
	}
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	a := time.Date(2023, 3, 11, 12, 0, 0, 0, loc)
	b := time.Date(2023, 3, 13, 0, 0, 0, 0, loc)
	if got := DaysBetween(a, b); got != 2 {
		t.Errorf("DaysBetween = %d, want 2", got)
	}
}
