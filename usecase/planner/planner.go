package planner

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Shygul22/zenjourney.in-zenaura-main/domain"
	"github.com/Shygul22/zenjourney.in-zenaura-main/repository"
	"github.com/Shygul22/zenjourney.in-zenaura-main/scheduler"
)

// Defaults applied when a user has not saved workday settings yet.
type Defaults struct {
	StartTime    string
	EndTime      string
	BreakMinutes int
}

type UseCase struct {
	tasks    repository.TaskRepository
	workdays repository.WorkdayRepository
	defaults Defaults
	logger   *zap.Logger
	now      func() time.Time
}

func New(tasks repository.TaskRepository, workdays repository.WorkdayRepository, defaults Defaults, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaults.StartTime == "" {
		defaults.StartTime = "09:00"
	}
	if defaults.EndTime == "" {
		defaults.EndTime = "17:00"
	}
	return &UseCase{
		tasks:    tasks,
		workdays: workdays,
		defaults: defaults,
		logger:   logger,
		now:      time.Now,
	}
}

// PlanDay loads the user's pending tasks and workday settings, refreshes
// the cached scores against the current time and runs the day packer.
// Nothing is persisted; PersistPlan does that on top of this.
func (uc *UseCase) PlanDay(ctx context.Context, userID string, referenceDate time.Time) (*scheduler.Result, error) {
	cfg, err := uc.workdayFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed := false
	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{UserID: userID, Completed: &completed})
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if referenceDate.IsZero() {
		referenceDate = now
	}
	for i := range tasks {
		tasks[i].PriorityScore = scheduler.ScoreTask(tasks[i], now)
	}

	return scheduler.ScheduleDay(tasks, *cfg, referenceDate)
}

// PersistPlan runs PlanDay and writes the accepted blocks back to storage so
// the schedule survives reloads. Unscheduled tasks get their window cleared.
func (uc *UseCase) PersistPlan(ctx context.Context, userID string, referenceDate time.Time) (*scheduler.Result, error) {
	result, err := uc.PlanDay(ctx, userID, referenceDate)
	if err != nil {
		return nil, err
	}

	writes := make([]repository.ScheduleWrite, 0, len(result.Scheduled))
	for _, st := range result.Scheduled {
		writes = append(writes, repository.ScheduleWrite{
			TaskID: st.Task.ID,
			Start:  st.Start,
			End:    st.End,
		})
	}

	if err := uc.tasks.SaveSchedule(ctx, userID, writes); err != nil {
		uc.logger.Error("failed to persist plan",
			zap.String("user_id", userID),
			zap.Int("blocks", len(writes)),
			zap.Error(err))
		return nil, err
	}

	uc.logger.Info("plan persisted",
		zap.String("user_id", userID),
		zap.Int("scheduled", len(result.Scheduled)),
		zap.Int("unscheduled", len(result.Unscheduled)))
	return result, nil
}

// RefreshScores recomputes and stores the priority score of every pending
// task for the user. Returns the number of tasks touched.
func (uc *UseCase) RefreshScores(ctx context.Context, userID string) (int, error) {
	completed := false
	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{UserID: userID, Completed: &completed})
	if err != nil {
		return 0, err
	}

	now := uc.now()
	var updated int
	for _, t := range tasks {
		score := scheduler.ScoreTask(t, now)
		if score == t.PriorityScore {
			continue
		}
		if err := uc.tasks.UpdateScore(ctx, t.ID, score); err != nil {
			uc.logger.Warn("score refresh failed for task",
				zap.String("task_id", t.ID),
				zap.Error(err))
			continue
		}
		updated++
	}
	return updated, nil
}

func (uc *UseCase) workdayFor(ctx context.Context, userID string) (*domain.WorkdayConfig, error) {
	cfg, err := uc.workdays.GetByUserID(ctx, userID)
	if err == nil {
		return cfg, nil
	}
	if domain.IsDomainError(err, domain.ErrCodeNotFound) {
		// Users who never opened settings still get a plan.
		return &domain.WorkdayConfig{
			UserID:       userID,
			StartTime:    uc.defaults.StartTime,
			EndTime:      uc.defaults.EndTime,
			BreakMinutes: uc.defaults.BreakMinutes,
		}, nil
	}
	return nil, err
}
