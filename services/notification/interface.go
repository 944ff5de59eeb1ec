package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	sessionRepo "decorquote/database/repository/session"
	"decorquote/models"

	"go.uber.org/zap"
)

// NotificationService shows one-shot notices to the customer without blocking the flow.
type NotificationService interface {
	Notify(ctx context.Context, sessionID string, notice models.Notice) error
}

// NotifierFunc adapts a function to NotificationService.
type NotifierFunc func(ctx context.Context, sessionID string, notice models.Notice) error

func (f NotifierFunc) Notify(ctx context.Context, sessionID string, notice models.Notice) error {
	return f(ctx, sessionID, notice)
}

// SessionNoticeService parks the notice next to the session so the page can pick it up once.
type SessionNoticeService struct {
	Repo sessionRepo.SessionRepository
	TTL  time.Duration
}

func NewSessionNoticeService(repo sessionRepo.SessionRepository, ttl time.Duration) (*SessionNoticeService, error) {
	if repo == nil {
		return nil, fmt.Errorf("notification service initialization error: session repository is nil")
	}
	return &SessionNoticeService{Repo: repo, TTL: ttl}, nil
}

func (s *SessionNoticeService) Notify(ctx context.Context, sessionID string, notice models.Notice) error {
	if notice.CreatedAt.IsZero() {
		notice.CreatedAt = time.Now().UTC()
	}
	if err := s.Repo.PutNotice(ctx, sessionID, notice, s.TTL); err != nil {
		return fmt.Errorf("Notify: %w", err)
	}
	return nil
}

// LogNotifier records notices in the service log.
type LogNotifier struct {
	Logger *zap.Logger
}

func (l LogNotifier) Notify(_ context.Context, sessionID string, notice models.Notice) error {
	l.Logger.Info("booking notice",
		zap.String("sessionID", sessionID),
		zap.String("kind", string(notice.Kind)),
		zap.String("message", notice.Message),
	)
	return nil
}

// Multi fans a notice out to every service and joins their errors.
type Multi []NotificationService

func (m Multi) Notify(ctx context.Context, sessionID string, notice models.Notice) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, sessionID, notice); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
