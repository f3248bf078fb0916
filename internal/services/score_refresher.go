package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Shygul22/zenjourney.in-zenaura-main/repository"
	plannerUC "github.com/Shygul22/zenjourney.in-zenaura-main/usecase/planner"
)

// ScoreRefresher periodically rewrites cached priority scores so the aging
// component keeps moving even when a user is idle. The score is a pure
// function of now, so without this the stored ordering goes stale.
type ScoreRefresher struct {
	tasks   repository.TaskRepository
	planner *plannerUC.UseCase
	monitor ConnectionHealth
	logger  *zap.Logger
	cron    *cron.Cron
}

func NewScoreRefresher(
	tasks repository.TaskRepository,
	planner *plannerUC.UseCase,
	monitor ConnectionHealth,
	interval time.Duration,
	logger *zap.Logger,
) *ScoreRefresher {
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sr := &ScoreRefresher{
		tasks:   tasks,
		planner: planner,
		monitor: monitor,
		logger:  logger,
		cron:    cron.New(),
	}

	schedule := fmt.Sprintf("@every %ds", int(interval.Seconds()))
	_, _ = sr.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		defer cancel()
		sr.RefreshAll(ctx)
	})

	return sr
}

func (sr *ScoreRefresher) Start() {
	if sr == nil || sr.cron == nil {
		return
	}
	sr.cron.Start()
	sr.logger.Info("score refresher started")
}

func (sr *ScoreRefresher) Stop(ctx context.Context) {
	if sr == nil || sr.cron == nil {
		return
	}
	stopCtx := sr.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	sr.logger.Info("score refresher stopped")
}

// RefreshAll walks every user with open tasks and recomputes their scores.
func (sr *ScoreRefresher) RefreshAll(ctx context.Context) {
	if sr.monitor != nil && !sr.monitor.IsOnline() {
		sr.logger.Debug("skipping score refresh (offline)")
		return
	}

	userIDs, err := sr.tasks.ListPendingUserIDs(ctx)
	if err != nil {
		sr.logger.Error("failed to list users for score refresh", zap.Error(err))
		return
	}

	var total int
	for _, userID := range userIDs {
		updated, err := sr.planner.RefreshScores(ctx, userID)
		if err != nil {
			sr.logger.Warn("score refresh failed for user",
				zap.String("user_id", userID),
				zap.Error(err))
			continue
		}
		total += updated
	}

	sr.logger.Info("score refresh pass complete",
		zap.Int("users", len(userIDs)),
		zap.Int("tasks_updated", total))
}
