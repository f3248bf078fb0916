package repository

import (
	"context"

	"github.com/Shygul22/zenjourney.in-zenaura-main/domain"
)

// WorkdayRepository stores one workday configuration per user.
type WorkdayRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.WorkdayConfig, error)
	Upsert(ctx context.Context, cfg *domain.WorkdayConfig) error
}
