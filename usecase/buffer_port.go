package usecase

import (
	"context"

	"github.com/Shygul22/zenjourney.in-zenaura-main/domain"
)

// Operation names shared with the offline buffer.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// OperationBuffer abstracts the offline write buffer so use cases stay
// storage-agnostic.
type OperationBuffer interface {
	BufferTask(ctx context.Context, operation string, task *domain.Task) error
	BufferWorkday(ctx context.Context, operation string, cfg *domain.WorkdayConfig) error
}
