package schedule

import "testing"

func TestTextInterval(t *testing.T) {
	tests := []struct {
		days       float64
		want       string
		wantMobile string
	}{
		{1, "1 day(s)", "1d"},
		{4, "4 day(s)", "4d"},
		{41, "1.3 month(s)", "1.3m"},
		{366, "1 year(s)", "1y"},
		{1000, "2.7 year(s)", "2.7y"},
	}
	for _, tt := range tests {
		days := tt.days
		if got := TextInterval(&days, false); got != tt.want {
			t.Errorf("TextInterval(%v) = %q, want %q", tt.days, got, tt.want)
		}
		if got := TextInterval(&days, true); got != tt.wantMobile {
			t.Errorf("TextInterval(%v, mobile) = %q, want %q", tt.days, got, tt.wantMobile)
		}
	}

	if got := TextInterval(nil, false); got != "New" {
		t.Errorf("TextInterval(nil) = %q, want New", got)
	}
}
