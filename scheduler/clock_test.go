package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/Shygul22/zenjourney.in-zenaura-main/domain"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		value  string
		hour   int
		minute int
	}{
		{"00:00", 0, 0},
		{"9:05", 9, 5},
		{"09:00", 9, 0},
		{"17:30", 17, 30},
		{"23:59", 23, 59},
	}

	for _, tc := range cases {
		h, m, err := ParseClock(tc.value)
		if err != nil {
			t.Fatalf("ParseClock(%q) failed: %v", tc.value, err)
		}
		if h != tc.hour || m != tc.minute {
			t.Errorf("ParseClock(%q) = %d:%d, want %d:%d", tc.value, h, m, tc.hour, tc.minute)
		}
	}
}

func TestParseClockRejectsMalformed(t *testing.T) {
	for _, value := range []string{"", "24:00", "12:60", "7", "7:5", "07:5", "noon", "-1:30", "12:30:00"} {
		if _, _, err := ParseClock(value); err == nil {
			t.Errorf("ParseClock(%q) accepted a malformed value", value)
		} else if !errors.Is(err, domain.ErrInvalidWorkdayConfig) {
			t.Errorf("ParseClock(%q) error is not ErrInvalidWorkdayConfig: %v", value, err)
		}
	}
}

func TestValidateWorkdayConfig(t *testing.T) {
	valid := domain.WorkdayConfig{StartTime: "09:00", EndTime: "17:00", BreakMinutes: 15}
	if err := ValidateWorkdayConfig(valid); err != nil {
		t.Fatalf("Valid config rejected: %v", err)
	}

	cases := []domain.WorkdayConfig{
		{StartTime: "18:00", EndTime: "09:00", BreakMinutes: 0},  // inverted
		{StartTime: "09:00", EndTime: "09:00", BreakMinutes: 0},  // empty window
		{StartTime: "09:00", EndTime: "17:00", BreakMinutes: -5}, // negative break
		{StartTime: "9am", EndTime: "17:00", BreakMinutes: 0},    // bad clock
	}
	for _, cfg := range cases {
		if err := ValidateWorkdayConfig(cfg); err == nil {
			t.Errorf("Config %+v accepted", cfg)
		} else if !errors.Is(err, domain.ErrInvalidWorkdayConfig) {
			t.Errorf("Config %+v error is not ErrInvalidWorkdayConfig: %v", cfg, err)
		}
	}
}

func TestResolveWindow(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("Failed to load location: %v", err)
	}
	ref := time.Date(2026, 8, 24, 3, 21, 45, 0, loc)

	window, err := ResolveWindow(domain.WorkdayConfig{StartTime: "09:00", EndTime: "17:30"}, ref)
	if err != nil {
		t.Fatalf("ResolveWindow failed: %v", err)
	}

	wantStart := time.Date(2026, 8, 24, 9, 0, 0, 0, loc)
	wantEnd := time.Date(2026, 8, 24, 17, 30, 0, 0, loc)
	if !window.Start.Equal(wantStart) {
		t.Errorf("Window start = %v, want %v", window.Start, wantStart)
	}
	if !window.End.Equal(wantEnd) {
		t.Errorf("Window end = %v, want %v", window.End, wantEnd)
	}
}
