package booking

import (
	"context"
	"time"

	sessionRepo "decorquote/database/repository/session"
	"decorquote/models"
	"decorquote/services/inquiry"
	"decorquote/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingSessionService drives one booking modal from open to close.
type BookingSessionService interface {
	OpenSession(ctx context.Context, selection models.Selection, addons []models.AddOn) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	GetSessionView(ctx context.Context, sessionID string) (*models.SessionView, error)
	CloseSession(ctx context.Context, sessionID string) error

	SetAddonQuantity(ctx context.Context, sessionID string, addonID, quantity int) (*models.BookingSession, error)
	ToggleAddon(ctx context.Context, sessionID string, addonID int) (*models.BookingSession, error)
	IncrementAddon(ctx context.Context, sessionID string, addonID int) (*models.BookingSession, error)
	DecrementAddon(ctx context.Context, sessionID string, addonID int) (*models.BookingSession, error)

	UpdateDetails(ctx context.Context, sessionID string, details models.UserDetails) (*models.BookingSession, error)
	Proceed(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Back(ctx context.Context, sessionID string) (*models.BookingSession, error)

	Submit(ctx context.Context, sessionID string) (*models.SubmitResult, error)
	DeliverQueued(ctx context.Context, payload models.InquiryTaskPayload) (*models.SubmitResult, error)
	PopNotice(ctx context.Context, sessionID string) (*models.Notice, error)

	DefaultCatalog() []models.AddOn
}

// InquiryQueue hands a prepared inquiry to a background worker.
type InquiryQueue interface {
	EnqueueInquiry(ctx context.Context, payload models.InquiryTaskPayload) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Repo            sessionRepo.SessionRepository
	Inquiry         inquiry.Sender
	NotificationSvc notification.NotificationService
	Logger          *zap.Logger

	// Queue, when set, makes Submit return right away and lets the worker send.
	Queue InquiryQueue

	DefaultAddons []models.AddOn
	SubmitLockTTL time.Duration

	// SubmitStaleAfter is how long a submission may stay unfinished before a
	// new submit is allowed to take it over.
	SubmitStaleAfter time.Duration

	now   func() time.Time
	newID func() string
}

// NewDefaultBookingSessionService wires the session service.
func NewDefaultBookingSessionService(
	repo sessionRepo.SessionRepository,
	sender inquiry.Sender,
	notifier notification.NotificationService,
	logger *zap.Logger,
) *DefaultBookingSessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingSessionService{
		Repo:             repo,
		Inquiry:          sender,
		NotificationSvc:  notifier,
		Logger:           logger,
		SubmitLockTTL:    45 * time.Second,
		SubmitStaleAfter: 10 * time.Minute,
		now:              func() time.Time { return time.Now().UTC() },
		newID:            func() string { return uuid.New().String() },
	}
}
