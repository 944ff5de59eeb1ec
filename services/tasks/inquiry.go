package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"decorquote/models"

	"github.com/hibiken/asynq"
)

const TypeSendInquiry = "inquiry:send"

// NewInquiryTask builds the task for one prepared inquiry. Failures are reported
// to the customer once, so the task is never retried.
func NewInquiryTask(payload models.InquiryTaskPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendInquiry, b)
	opts := []asynq.Option{asynq.MaxRetry(0), asynq.Queue("default")}

	return task, opts, nil
}

// AsynqInquiryQueue enqueues inquiries on an asynq client.
type AsynqInquiryQueue struct {
	Client *asynq.Client
}

func (q *AsynqInquiryQueue) EnqueueInquiry(ctx context.Context, payload models.InquiryTaskPayload) error {
	task, opts, err := NewInquiryTask(payload)
	if err != nil {
		return fmt.Errorf("build inquiry task: %w", err)
	}
	if _, err := q.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue inquiry task: %w", err)
	}
	return nil
}
