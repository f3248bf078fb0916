package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shygul22/zenjourney.in-zenaura-main/domain"
	"github.com/Shygul22/zenjourney.in-zenaura-main/repository"
)

type workdayRepository struct {
	pool *pgxpool.Pool
}

// NewWorkdayRepository returns a Postgres-backed workday settings repository.
func NewWorkdayRepository(pool *pgxpool.Pool) repository.WorkdayRepository {
	return &workdayRepository{pool: pool}
}

func (r *workdayRepository) GetByUserID(ctx context.Context, userID string) (*domain.WorkdayConfig, error) {
	const query = `
	SELECT user_id, start_time, end_time, break_minutes, updated_at
	FROM workday_settings
	WHERE user_id = $1
	`
	row := r.pool.QueryRow(ctx, query, userID)

	var cfg domain.WorkdayConfig
	if err := row.Scan(&cfg.UserID, &cfg.StartTime, &cfg.EndTime, &cfg.BreakMinutes, &cfg.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWorkdayNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *workdayRepository) Upsert(ctx context.Context, cfg *domain.WorkdayConfig) error {
	if cfg == nil || cfg.UserID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO workday_settings (user_id, start_time, end_time, break_minutes, updated_at)
	VALUES ($1, $2, $3, $4, NOW())
	ON CONFLICT (user_id) DO UPDATE
	SET start_time = EXCLUDED.start_time,
		end_time = EXCLUDED.end_time,
		break_minutes = EXCLUDED.break_minutes,
		updated_at = NOW()
	RETURNING updated_at
	`
	return r.pool.QueryRow(ctx, query,
		cfg.UserID,
		cfg.StartTime,
		cfg.EndTime,
		cfg.BreakMinutes,
	).Scan(&cfg.UpdatedAt)
}
