package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"decorquote/config"
	"decorquote/models"
	"decorquote/services/booking"
	"decorquote/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt is the asynq connection for the inquiry queue.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitInquiryWorker runs the queued inquiry worker in the background and returns
// the server so the caller can shut it down.
func InitInquiryWorker(svc booking.BookingSessionService, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendInquiry, HandleInquiryTask(svc, logger))

	go func() {
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("inquiry worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("inquiry worker: max retry attempts reached")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandleInquiryTask delivers one queued inquiry. A failed delivery is already
// surfaced as a notice, so it is not returned to asynq as a task error.
func HandleInquiryTask(svc booking.BookingSessionService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.InquiryTaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid inquiry payload", zap.Error(err))
			return fmt.Errorf("invalid inquiry payload: %v: %w", err, asynq.SkipRetry)
		}

		res, err := svc.DeliverQueued(ctx, p)
		if err != nil {
			logger.Warn("queued inquiry not delivered", zap.String("sessionID", p.SessionID), zap.Error(err))
			return nil
		}
		logger.Info("queued inquiry processed", zap.String("sessionID", p.SessionID), zap.Bool("closed", res.Closed))
		return nil
	}
}
