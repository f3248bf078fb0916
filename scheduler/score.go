// Package scheduler implements the planning core: the priority scorer and the
// greedy single-day packer. Everything in this package is pure and
// storage-agnostic; persistence and transport live with the callers.
package scheduler

import (
	"math"
	"time"

	"github.com/Shygul22/zenjourney.in-zenaura-main/domain"
)

const (
	// agingRatePerDay grows a task's urgency by 10% per day of age so old
	// low-priority tasks are never starved.
	agingRatePerDay = 0.1

	// minEffortHours keeps the efficiency quotient bounded.
	minEffortHours = 0.1
)

// Score blends stated importance, inverse effort and age into a single
// ranking key:
//
//	score = priority / max(effort, 0.1) * (1 + daysSinceCreated * 0.1)
//
// The result is never negative. Degenerate inputs (non-positive priority or
// effort, NaN/Inf effort, zero timestamps) yield 0 rather than an error; the
// surrounding application treats an unscoreable task as lowest priority.
func Score(priority int, effortHours float64, createdAt, now time.Time) float64 {
	if priority <= 0 || createdAt.IsZero() || now.IsZero() {
		return 0
	}
	if effortHours <= 0 || math.IsNaN(effortHours) || math.IsInf(effortHours, 0) {
		return 0
	}

	days := now.Sub(createdAt).Hours() / 24
	if days < 0 {
		days = 0
	}

	efficiency := float64(priority) / math.Max(effortHours, minEffortHours)
	return efficiency * (1 + days*agingRatePerDay)
}

// ScoreTask computes the score for a task against the given reference time.
func ScoreTask(t domain.Task, now time.Time) float64 {
	return Score(t.Priority, t.EffortHours, t.CreatedAt, now)
}
