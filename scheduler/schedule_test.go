package scheduler

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/Shygul22/zenjourney.in-zenaura-main/domain"
)

var testDay = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

func clockOn(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func planTask(id string, priority int, effort float64, score float64) domain.Task {
	return domain.Task{
		ID:            id,
		UserID:        "user-1",
		Title:         "task " + id,
		Priority:      priority,
		EffortHours:   effort,
		PriorityScore: score,
		CreatedAt:     testDay.AddDate(0, 0, -1),
	}
}

func TestScheduleDaySingleTaskExactFit(t *testing.T) {
	cfg := domain.WorkdayConfig{StartTime: "09:00", EndTime: "17:00", BreakMinutes: 15}
	tasks := []domain.Task{planTask("a", 3, 8, 1.0)}

	result, err := ScheduleDay(tasks, cfg, testDay)
	if err != nil {
		t.Fatalf("ScheduleDay failed: %v", err)
	}

	if len(result.Scheduled) != 1 || len(result.Unscheduled) != 0 {
		t.Fatalf("Expected 1 scheduled / 0 unscheduled, got %d / %d",
			len(result.Scheduled), len(result.Unscheduled))
	}
	if got, want := result.Scheduled[0].Start, clockOn(testDay, 9, 0); !got.Equal(want) {
		t.Errorf("Start = %v, want %v", got, want)
	}
	if got, want := result.Scheduled[0].End, clockOn(testDay, 17, 0); !got.Equal(want) {
		t.Errorf("End = %v, want %v", got, want)
	}
}

func TestScheduleDayFirstFitSkipsOversized(t *testing.T) {
	// 3-hour window. A (2h) fits, B (2h) does not, C (1h, lower priority)
	// still claims the remaining hour.
	cfg := domain.WorkdayConfig{StartTime: "09:00", EndTime: "12:00", BreakMinutes: 0}
	tasks := []domain.Task{
		planTask("a", 5, 2, 2.5),
		planTask("b", 4, 2, 2.0),
		planTask("c", 1, 1, 1.0),
	}

	result, err := ScheduleDay(tasks, cfg, testDay)
	if err != nil {
		t.Fatalf("ScheduleDay failed: %v", err)
	}

	if len(result.Scheduled) != 2 {
		t.Fatalf("Expected 2 scheduled tasks, got %d", len(result.Scheduled))
	}
	if result.Scheduled[0].Task.ID != "a" || result.Scheduled[1].Task.ID != "c" {
		t.Errorf("Expected scheduled order [a c], got [%s %s]",
			result.Scheduled[0].Task.ID, result.Scheduled[1].Task.ID)
	}
	if got, want := result.Scheduled[1].Start, clockOn(testDay, 11, 0); !got.Equal(want) {
		t.Errorf("c start = %v, want %v", got, want)
	}
	if got, want := result.Scheduled[1].End, clockOn(testDay, 12, 0); !got.Equal(want) {
		t.Errorf("c end = %v, want %v", got, want)
	}
	if len(result.Unscheduled) != 1 || result.Unscheduled[0].ID != "b" {
		t.Fatalf("Expected unscheduled [b], got %v", taskIDs(result.Unscheduled))
	}
}

func TestScheduleDayBreakInsertion(t *testing.T) {
	cfg := domain.WorkdayConfig{StartTime: "09:00", EndTime: "17:00", BreakMinutes: 15}
	tasks := []domain.Task{
		planTask("x", 3, 1, 3.0),
		planTask("y", 3, 1, 3.0),
	}

	result, err := ScheduleDay(tasks, cfg, testDay)
	if err != nil {
		t.Fatalf("ScheduleDay failed: %v", err)
	}
	if len(result.Scheduled) != 2 {
		t.Fatalf("Expected both tasks scheduled, got %d", len(result.Scheduled))
	}

	// Equal scores: input order preserved, no break before the first block.
	first, second := result.Scheduled[0], result.Scheduled[1]
	if first.Task.ID != "x" || second.Task.ID != "y" {
		t.Errorf("Tie-break lost input order: [%s %s]", first.Task.ID, second.Task.ID)
	}
	if !first.Start.Equal(clockOn(testDay, 9, 0)) || !first.End.Equal(clockOn(testDay, 10, 0)) {
		t.Errorf("First block %v–%v, want 09:00–10:00", first.Start, first.End)
	}
	if !second.Start.Equal(clockOn(testDay, 10, 15)) || !second.End.Equal(clockOn(testDay, 11, 15)) {
		t.Errorf("Second block %v–%v, want 10:15–11:15", second.Start, second.End)
	}
}

func TestScheduleDayInvalidConfigFatal(t *testing.T) {
	tasks := []domain.Task{planTask("a", 3, 1, 1.0)}

	_, err := ScheduleDay(tasks, domain.WorkdayConfig{StartTime: "18:00", EndTime: "09:00"}, testDay)
	if err == nil {
		t.Fatal("Expected inverted window to fail")
	}
	if !errors.Is(err, domain.ErrInvalidWorkdayConfig) {
		t.Errorf("Expected ErrInvalidWorkdayConfig, got %v", err)
	}
}

func TestScheduleDaySkipsInvalidTask(t *testing.T) {
	cfg := domain.WorkdayConfig{StartTime: "09:00", EndTime: "17:00", BreakMinutes: 0}
	bad := planTask("bad", 9, 1, 10.0) // priority out of range
	tasks := []domain.Task{bad, planTask("ok", 3, 2, 1.5)}

	result, err := ScheduleDay(tasks, cfg, testDay)
	if err != nil {
		t.Fatalf("A single invalid task must not fail the run: %v", err)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Task.ID != "bad" {
		t.Fatalf("Expected skipped [bad], got %+v", result.Skipped)
	}
	if result.Skipped[0].Reason == "" {
		t.Error("Expected a skip reason")
	}
	if len(result.Scheduled) != 1 || result.Scheduled[0].Task.ID != "ok" {
		t.Errorf("Expected the valid task to be scheduled, got %+v", result.Scheduled)
	}
}

func TestScheduleDayDropsCompleted(t *testing.T) {
	cfg := domain.WorkdayConfig{StartTime: "09:00", EndTime: "17:00", BreakMinutes: 0}
	done := planTask("done", 5, 1, 5.0)
	done.Completed = true
	tasks := []domain.Task{done, planTask("open", 2, 1, 2.0)}

	result, err := ScheduleDay(tasks, cfg, testDay)
	if err != nil {
		t.Fatalf("ScheduleDay failed: %v", err)
	}
	if len(result.Scheduled) != 1 || result.Scheduled[0].Task.ID != "open" {
		t.Errorf("Completed task leaked into the plan: %+v", result.Scheduled)
	}
	if len(result.Unscheduled) != 0 || len(result.Skipped) != 0 {
		t.Errorf("Completed task must be dropped silently, got unscheduled=%d skipped=%d",
			len(result.Unscheduled), len(result.Skipped))
	}
}

func TestScheduleDayPartitionAndIntervals(t *testing.T) {
	cfg := domain.WorkdayConfig{StartTime: "08:30", EndTime: "16:00", BreakMinutes: 10}
	tasks := []domain.Task{
		planTask("a", 5, 3, 4.2),
		planTask("b", 4, 2.5, 3.1),
		planTask("c", 2, 4, 1.7),
		planTask("d", 3, 1.5, 2.9),
		planTask("e", 1, 0.5, 0.4),
	}

	result, err := ScheduleDay(tasks, cfg, testDay)
	if err != nil {
		t.Fatalf("ScheduleDay failed: %v", err)
	}

	// Exact partition: every input task lands in exactly one bucket.
	seen := map[string]int{}
	for _, st := range result.Scheduled {
		seen[st.Task.ID]++
	}
	for _, task := range result.Unscheduled {
		seen[task.ID]++
	}
	if len(seen) != len(tasks) {
		t.Fatalf("Partition covers %d tasks, want %d", len(seen), len(tasks))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("Task %s appears %d times across the partition", id, n)
		}
	}

	// Intervals inside the window, non-overlapping, ascending starts,
	// non-increasing score order.
	for i, st := range result.Scheduled {
		if st.Start.Before(result.Window.Start) || st.End.After(result.Window.End) {
			t.Errorf("Block %s [%v, %v) escapes the window", st.Task.ID, st.Start, st.End)
		}
		if !st.End.After(st.Start) {
			t.Errorf("Block %s is empty or inverted", st.Task.ID)
		}
		if i == 0 {
			continue
		}
		prev := result.Scheduled[i-1]
		if st.Start.Before(prev.End) {
			t.Errorf("Blocks %s and %s overlap", prev.Task.ID, st.Task.ID)
		}
		if st.Task.PriorityScore > prev.Task.PriorityScore {
			t.Errorf("Scheduled order violates score ordering: %s after %s", st.Task.ID, prev.Task.ID)
		}
	}
}

func TestScheduleDayDeterministic(t *testing.T) {
	cfg := domain.WorkdayConfig{StartTime: "09:00", EndTime: "13:00", BreakMinutes: 5}
	tasks := []domain.Task{
		planTask("a", 4, 2, 2.0),
		planTask("b", 4, 2, 2.0),
		planTask("c", 3, 3, 1.0),
	}

	first, err := ScheduleDay(tasks, cfg, testDay)
	if err != nil {
		t.Fatalf("ScheduleDay failed: %v", err)
	}
	second, err := ScheduleDay(tasks, cfg, testDay)
	if err != nil {
		t.Fatalf("ScheduleDay failed on rerun: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Identical inputs produced different plans")
	}
}

func TestScheduleDayDoesNotMutateInput(t *testing.T) {
	cfg := domain.WorkdayConfig{StartTime: "09:00", EndTime: "17:00", BreakMinutes: 0}
	tasks := []domain.Task{
		planTask("a", 2, 1, 1.0),
		planTask("b", 5, 1, 5.0),
	}
	snapshot := append([]domain.Task(nil), tasks...)

	if _, err := ScheduleDay(tasks, cfg, testDay); err != nil {
		t.Fatalf("ScheduleDay failed: %v", err)
	}
	if !reflect.DeepEqual(tasks, snapshot) {
		t.Error("ScheduleDay reordered or mutated its input slice")
	}
}

func taskIDs(tasks []domain.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}
