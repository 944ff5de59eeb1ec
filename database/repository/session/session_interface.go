package sessionRepo

import (
	"context"
	"errors"
	"time"

	"decorquote/models"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("booking session not found or expired")

// SessionRepository stores open booking sessions, their submit locks and pending notices.
type SessionRepository interface {
	// Create stores a new session.
	Create(ctx context.Context, session *models.BookingSession) error
	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*models.BookingSession, error)
	// Update applies fn to the stored session atomically and saves the result.
	// If fn returns an error nothing is written.
	Update(ctx context.Context, id string, fn func(*models.BookingSession) error) (*models.BookingSession, error)
	// Delete removes a session and its submit lock in one step and reports
	// whether the session still existed. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) (bool, error)
	// AcquireSubmitLock takes the per-session submit lock for owner; false means
	// another owner holds it.
	AcquireSubmitLock(ctx context.Context, id, owner string, ttl time.Duration) (bool, error)
	// ReleaseSubmitLock frees the submit lock if owner still holds it.
	ReleaseSubmitLock(ctx context.Context, id, owner string) error
	// PutNotice stores a one-shot notice for a session ID. It outlives the session.
	PutNotice(ctx context.Context, id string, notice models.Notice, ttl time.Duration) error
	// PopNotice returns and removes the pending notice, or nil when there is none.
	PopNotice(ctx context.Context, id string) (*models.Notice, error)
}
