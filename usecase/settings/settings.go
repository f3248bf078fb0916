package settings

import (
	"context"

	"go.uber.org/zap"

	"github.com/Shygul22/zenjourney.in-zenaura-main/domain"
	"github.com/Shygul22/zenjourney.in-zenaura-main/repository"
	"github.com/Shygul22/zenjourney.in-zenaura-main/scheduler"
	"github.com/Shygul22/zenjourney.in-zenaura-main/usecase"
)

type UseCase struct {
	workdays repository.WorkdayRepository
	buffer   usecase.OperationBuffer
	logger   *zap.Logger
}

func New(workdays repository.WorkdayRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		workdays: workdays,
		buffer:   buffer,
		logger:   logger,
	}
}

func (uc *UseCase) GetWorkday(ctx context.Context, userID string) (*domain.WorkdayConfig, error) {
	return uc.workdays.GetByUserID(ctx, userID)
}

// UpdateWorkday validates and stores the user's workday configuration.
// Invalid windows are rejected here so a planning run never sees them.
func (uc *UseCase) UpdateWorkday(ctx context.Context, cfg *domain.WorkdayConfig) (*domain.WorkdayConfig, error) {
	if cfg == nil || cfg.UserID == "" {
		return nil, domain.ErrInvalidPayload
	}
	if err := scheduler.ValidateWorkdayConfig(*cfg); err != nil {
		return nil, err
	}

	if err := uc.workdays.Upsert(ctx, cfg); err != nil {
		if uc.buffer != nil {
			if bufErr := uc.buffer.BufferWorkday(ctx, usecase.OperationUpdate, cfg); bufErr != nil {
				uc.logger.Error("failed to buffer workday update", zap.Error(bufErr))
				return nil, err
			}
			uc.logger.Warn("workday update buffered due to repository error", zap.Error(err))
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}
