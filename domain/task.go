package domain

import "time"

// Priority and effort bounds enforced at the planning boundary.
const (
	MinPriority = 1
	MaxPriority = 5

	// MaxEffortHours is the product ceiling for a single task estimate.
	MaxEffortHours = 8.0
)

// Task represents a user-owned activity item as the planner sees it.
// PriorityScore is a cache maintained by the scorer; ScheduledStart and
// ScheduledEnd come from the most recent persisted planning run.
type Task struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Completed      bool       `json:"completed"`
	Priority       int        `json:"priority"`
	EffortHours    float64    `json:"effort_hours"`
	PriorityScore  float64    `json:"priority_score"`
	ScheduledStart *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time `json:"scheduled_end,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// EffortDuration converts the hour estimate into a wall-clock duration.
func (t *Task) EffortDuration() time.Duration {
	if t == nil || t.EffortHours <= 0 {
		return 0
	}
	return time.Duration(t.EffortHours * float64(time.Hour))
}

// ValidateForPlanning reports why a task cannot take part in a planning run.
// A nil return means the task is schedulable.
func (t *Task) ValidateForPlanning() error {
	if t == nil {
		return ErrInvalidPayload
	}
	if t.Priority < MinPriority || t.Priority > MaxPriority {
		return ErrInvalidTaskPriority
	}
	if t.EffortHours <= 0 || t.EffortHours > MaxEffortHours {
		return ErrInvalidTaskEffort
	}
	return nil
}
