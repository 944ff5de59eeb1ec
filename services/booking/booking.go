// File: booking/booking.go
package booking

import (
	"context"
	"errors"
	"fmt"

	sessionRepo "decorquote/database/repository/session"
	"decorquote/models"

	"go.uber.org/zap"
)

// OpenSession starts a fresh booking session for selection. Every open gets a new
// SessionID with empty selections and details, so nothing leaks between bookings.
// A nil addons slice falls back to the default catalog.
func (s *DefaultBookingSessionService) OpenSession(ctx context.Context, selection models.Selection, addons []models.AddOn) (*models.BookingSession, error) {
	if addons == nil {
		addons = s.DefaultCatalog()
	}
	if err := validateSelection(selection); err != nil {
		return nil, err
	}
	if err := validateCatalog(addons); err != nil {
		return nil, err
	}

	now := s.now()
	session := &models.BookingSession{
		SessionID:      s.newID(),
		Selection:      selection,
		Addons:         addons,
		SelectedAddons: models.SelectedAddons{},
		Step:           models.StepAddons,
		OpenedAt:       now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to open booking session: %w", err)
	}

	s.Logger.Debug("booking session opened",
		zap.String("sessionID", session.SessionID),
		zap.String("plan", selection.Plan.Name),
		zap.Int("catalogSize", len(addons)),
	)
	return session, nil
}

// GetSession returns the stored session.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Repo.Get(ctx, sessionID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return session, nil
}

// CloseSession discards the session. Closing twice is fine.
// A submission still in flight finds the session gone and drops its result.
func (s *DefaultBookingSessionService) CloseSession(ctx context.Context, sessionID string) error {
	if _, err := s.Repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to close booking session: %w", err)
	}
	s.Logger.Debug("booking session closed", zap.String("sessionID", sessionID))
	return nil
}

// DefaultCatalog returns a copy of the configured add-on catalog.
func (s *DefaultBookingSessionService) DefaultCatalog() []models.AddOn {
	out := make([]models.AddOn, len(s.DefaultAddons))
	copy(out, s.DefaultAddons)
	return out
}

// PopNotice returns the pending one-shot notice for a session, if any.
func (s *DefaultBookingSessionService) PopNotice(ctx context.Context, sessionID string) (*models.Notice, error) {
	n, err := s.Repo.PopNotice(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read notice: %w", err)
	}
	return n, nil
}

// update runs fn against the stored session as one atomic step and stamps UpdatedAt.
func (s *DefaultBookingSessionService) update(ctx context.Context, sessionID string, fn func(*models.BookingSession) error) (*models.BookingSession, error) {
	session, err := s.Repo.Update(ctx, sessionID, func(bs *models.BookingSession) error {
		if err := fn(bs); err != nil {
			return err
		}
		bs.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return nil, mapRepoError(err)
	}
	return session, nil
}

func mapRepoError(err error) error {
	if errors.Is(err, sessionRepo.ErrNotFound) {
		return ErrSessionNotFound
	}
	return err
}
