package scheduler

import (
	"math"
	"testing"
	"time"

	"github.com/Shygul22/zenjourney.in-zenaura-main/domain"
)

func TestScoreAging(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	created := now.AddDate(0, 0, -10)

	// efficiency = 2/4 = 0.5, urgency = 1 + 10*0.1 = 2.0
	got := Score(2, 4, created, now)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Expected score 1.0 for 10-day-old task, got %v", got)
	}
}

func TestScoreFreshTask(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	got := Score(5, 2, now, now)
	if math.Abs(got-2.5) > 1e-9 {
		t.Errorf("Expected score 2.5 for fresh task, got %v", got)
	}
}

func TestScoreFutureCreatedAtClamped(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	created := now.Add(48 * time.Hour)

	// A createdAt in the future must not shrink the score below the
	// zero-age baseline.
	if got, want := Score(3, 3, created, now), Score(3, 3, now, now); got != want {
		t.Errorf("Expected future createdAt to clamp to %v, got %v", want, got)
	}
}

func TestScoreDegenerateInputs(t *testing.T) {
	now := time.Now()
	created := now.Add(-24 * time.Hour)

	cases := []struct {
		name     string
		priority int
		effort   float64
		created  time.Time
		now      time.Time
	}{
		{"zero priority", 0, 2, created, now},
		{"negative priority", -1, 2, created, now},
		{"zero effort", 3, 0, created, now},
		{"negative effort", 3, -0.5, created, now},
		{"NaN effort", 3, math.NaN(), created, now},
		{"Inf effort", 3, math.Inf(1), created, now},
		{"zero createdAt", 3, 2, time.Time{}, now},
		{"zero now", 3, 2, created, time.Time{}},
	}

	for _, tc := range cases {
		if got := Score(tc.priority, tc.effort, tc.created, tc.now); got != 0 {
			t.Errorf("%s: expected score 0, got %v", tc.name, got)
		}
	}
}

func TestScoreMonotonicity(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	created := now.AddDate(0, 0, -3)

	for p := 1; p < 5; p++ {
		if Score(p+1, 2, created, now) < Score(p, 2, created, now) {
			t.Errorf("Score decreased when priority rose from %d to %d", p, p+1)
		}
	}

	for _, pair := range [][2]float64{{0.5, 1}, {1, 2}, {2, 4}, {4, 8}} {
		if Score(3, pair[1], created, now) > Score(3, pair[0], created, now) {
			t.Errorf("Score increased when effort rose from %v to %v", pair[0], pair[1])
		}
	}

	prev := Score(2, 3, now, now)
	for days := 1; days <= 30; days++ {
		cur := Score(2, 3, now.AddDate(0, 0, -days), now)
		if cur <= prev {
			t.Errorf("Score did not strictly increase at age %d days: %v <= %v", days, cur, prev)
		}
		prev = cur
	}
}

func TestScoreNeverNegative(t *testing.T) {
	now := time.Now()
	for p := -2; p <= 6; p++ {
		for _, effort := range []float64{-1, 0, 0.05, 0.5, 8, 100} {
			if got := Score(p, effort, now.AddDate(0, 0, -400), now); got < 0 {
				t.Errorf("Score(%d, %v) went negative: %v", p, effort, got)
			}
		}
	}
}

func TestScoreTinyEffortClamped(t *testing.T) {
	now := time.Now()
	created := now

	// Effort below the clamp floor must not explode the quotient past
	// priority/0.1.
	if got, want := Score(5, 0.01, created, now), 50.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected clamped score %v, got %v", want, got)
	}
}

func TestScoreTaskMatchesScore(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	task := domain.Task{
		Priority:    4,
		EffortHours: 1.5,
		CreatedAt:   now.AddDate(0, 0, -7),
	}

	if got, want := ScoreTask(task, now), Score(4, 1.5, task.CreatedAt, now); got != want {
		t.Errorf("ScoreTask = %v, Score = %v", got, want)
	}
}
