package domain

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "08:45", want: 8*60 + 45},
		{in: "23:59", want: 23*60 + 59},
		{in: " 06:15 ", want: 6*60 + 15},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "8am", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseTimeOfDay(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q) expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	if got := TimeOfDay(8*60 + 5).String(); got != "08:05" {
		t.Errorf("String() = %q, want %q", got, "08:05")
	}
}

func TestComputeDelayMinutes(t *testing.T) {
	tod := func(s string) *TimeOfDay {
		v, err := ParseTimeOfDay(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return &v
	}

	tests := []struct {
		name    string
		arrival *TimeOfDay
		shelf   *TimeOfDay
		want    *int
	}{
		{name: "same day", arrival: tod("08:00"), shelf: tod("08:45"), want: intp(45)},
		{name: "midnight wrap", arrival: tod("23:50"), shelf: tod("00:10"), want: intp(20)},
		{name: "zero delay", arrival: tod("10:00"), shelf: tod("10:00"), want: intp(0)},
		{name: "missing arrival", arrival: nil, shelf: tod("09:00"), want: nil},
		{name: "missing shelf stock", arrival: tod("09:00"), shelf: nil, want: nil},
	}

	for _, tc := range tests {
		got := ComputeDelayMinutes(tc.arrival, tc.shelf)
		if (got == nil) != (tc.want == nil) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
			continue
		}
		if got != nil {
			if *got != *tc.want {
				t.Errorf("%s: got %d, want %d", tc.name, *got, *tc.want)
			}
			if *got < 0 {
				t.Errorf("%s: delay must never be negative, got %d", tc.name, *got)
			}
		}
	}
}

func TestDeliveryWeekday(t *testing.T) {
	d := &Delivery{Date: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)}
	if got := d.Weekday(); got != "Monday" {
		t.Errorf("Weekday() = %q, want Monday", got)
	}
}

func intp(v int) *int { return &v }
