package services

import (
	"context"
	"encoding/json"

	"github.com/Shygul22/zenjourney.in-zenaura-main/domain"
	"github.com/Shygul22/zenjourney.in-zenaura-main/internal/infrastructure/buffer"
	"github.com/Shygul22/zenjourney.in-zenaura-main/usecase"
)

type BufferBridge struct {
	processor *BufferProcessor
}

func NewBufferBridge(processor *BufferProcessor) *BufferBridge {
	return &BufferBridge{processor: processor}
}

func (b *BufferBridge) BufferTask(ctx context.Context, operation string, task *domain.Task) error {
	if b.processor == nil || task == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        task.ID,
		UserID:    task.UserID,
		Entity:    buffer.EntityTask,
		Operation: operation,
		Data:      payload,
		Priority:  4,
	}
	return b.processor.BufferOperation(ctx, item)
}

func (b *BufferBridge) BufferWorkday(ctx context.Context, operation string, cfg *domain.WorkdayConfig) error {
	if b.processor == nil || cfg == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	item := buffer.Item{
		UserID:    cfg.UserID,
		Entity:    buffer.EntityWorkday,
		Operation: operation,
		Data:      payload,
		Priority:  3,
	}
	return b.processor.BufferOperation(ctx, item)
}

var _ usecase.OperationBuffer = (*BufferBridge)(nil)
