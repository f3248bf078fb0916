package scheduler

import (
	"sort"
	"time"

	"github.com/Shygul22/zenjourney.in-zenaura-main/domain"
)

// ScheduledTask is a task with its assigned block inside the workday window.
type ScheduledTask struct {
	Task  domain.Task `json:"task"`
	Start time.Time   `json:"start"`
	End   time.Time   `json:"end"`
}

// SkippedTask is a task excluded from the run because it violated the
// planning contract (priority or effort out of range).
type SkippedTask struct {
	Task   domain.Task `json:"task"`
	Reason string      `json:"reason"`
}

// Result partitions the pending input of a planning run. Scheduled is ordered
// by start time ascending; Unscheduled preserves the score-sorted order of
// the tasks that did not fit; Skipped preserves input order.
type Result struct {
	Window      Window          `json:"window"`
	Scheduled   []ScheduledTask `json:"scheduled"`
	Unscheduled []domain.Task   `json:"unscheduled"`
	Skipped     []SkippedTask   `json:"skipped,omitempty"`
}

// ScheduleDay packs tasks into a single workday using greedy
// first-fit-by-priority: tasks are stably sorted by PriorityScore descending
// and placed at the cursor when they fit before the window end. A task that
// does not fit goes to Unscheduled without advancing the cursor, so a smaller
// lower-priority task can still claim the remaining space. The configured
// break separates consecutive blocks only; there is no break before the first
// block or after the last.
//
// Completed tasks are dropped, tasks failing ValidateForPlanning are skipped
// individually, and an invalid configuration fails the whole call with
// ErrInvalidWorkdayConfig. The computation is deterministic and
// side-effect-free: identical inputs produce identical results.
func ScheduleDay(tasks []domain.Task, cfg domain.WorkdayConfig, referenceDate time.Time) (*Result, error) {
	window, err := ResolveWindow(cfg, referenceDate)
	if err != nil {
		return nil, err
	}

	pending := make([]domain.Task, 0, len(tasks))
	var skipped []SkippedTask
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		if err := t.ValidateForPlanning(); err != nil {
			skipped = append(skipped, SkippedTask{Task: t, Reason: err.Error()})
			continue
		}
		pending = append(pending, t)
	}

	// Stable keeps input order on equal scores, which keeps the plan
	// deterministic without a secondary sort key.
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].PriorityScore > pending[j].PriorityScore
	})

	result := &Result{
		Window:      window,
		Scheduled:   make([]ScheduledTask, 0, len(pending)),
		Unscheduled: make([]domain.Task, 0),
		Skipped:     skipped,
	}

	cursor := window.Start
	for _, t := range pending {
		end := cursor.Add(t.EffortDuration())
		if end.After(window.End) {
			result.Unscheduled = append(result.Unscheduled, t)
			continue
		}
		result.Scheduled = append(result.Scheduled, ScheduledTask{Task: t, Start: cursor, End: end})
		cursor = end.Add(cfg.BreakDuration())
	}

	return result, nil
}
