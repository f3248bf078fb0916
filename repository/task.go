package repository

import (
	"context"
	"time"

	"github.com/Shygul22/zenjourney.in-zenaura-main/domain"
)

type TaskFilter struct {
	UserID    string
	Completed *bool
	Limit     int
	Offset    int
}

// ScheduleWrite carries a planned block back to storage after a persisted
// planning run.
type ScheduleWrite struct {
	TaskID string
	Start  time.Time
	End    time.Time
}

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error

	// UpdateScore refreshes the cached priority score of a single task.
	UpdateScore(ctx context.Context, id string, score float64) error
	// ListPendingUserIDs returns the distinct owners of open tasks, used by
	// the periodic score refresher.
	ListPendingUserIDs(ctx context.Context) ([]string, error)
	// SaveSchedule persists planned blocks and clears the window on the
	// user's remaining tasks.
	SaveSchedule(ctx context.Context, userID string, writes []ScheduleWrite) error
}
