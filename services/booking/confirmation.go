package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"decorquote/models"

	"go.uber.org/zap"
)

// errSuperseded means the submission no longer owns the session: a newer
// submit took over after it went stale.
var errSuperseded = errors.New("submission superseded")

// Submit sends the booking inquiry. Only one submission per session may be in
// flight; a second call gets ErrSubmissionInFlight. On success the session is
// closed; on failure it is left as it was so the customer can retry.
// With a Queue configured the inquiry is handed to the worker and the result
// arrives later as a notice.
func (s *DefaultBookingSessionService) Submit(ctx context.Context, sessionID string) (*models.SubmitResult, error) {
	token, req, err := s.beginSubmit(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if s.Queue != nil {
		payload := models.InquiryTaskPayload{SessionID: sessionID, Token: token, Request: req}
		if err := s.Queue.EnqueueInquiry(ctx, payload); err != nil {
			return s.completeSubmit(ctx, sessionID, token, fmt.Errorf("enqueue inquiry: %w", err))
		}
		// From here on the Submitting flag holds the submission, not the lock.
		s.releaseLock(ctx, sessionID, token)
		s.Logger.Info("booking inquiry queued", zap.String("sessionID", sessionID))
		return &models.SubmitResult{SessionID: sessionID, Queued: true}, nil
	}

	// The call must end before the lock can expire.
	sendCtx, cancel := context.WithTimeout(ctx, s.SubmitLockTTL)
	defer cancel()
	return s.completeSubmit(ctx, sessionID, token, s.Inquiry.SendInquiry(sendCtx, req))
}

// DeliverQueued sends an inquiry prepared by Submit and completes the submission.
// A task whose submission was closed or superseded sends nothing.
func (s *DefaultBookingSessionService) DeliverQueued(ctx context.Context, payload models.InquiryTaskPayload) (*models.SubmitResult, error) {
	id := payload.SessionID

	// Claiming restarts the stale clock, so no takeover can overlap the call.
	_, err := s.update(ctx, id, func(bs *models.BookingSession) error {
		if !bs.Submitting || bs.SubmitToken != payload.Token {
			return errSuperseded
		}
		bs.SubmittingAt = s.now()
		return nil
	})
	if err != nil {
		return s.dropped(id, err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.SubmitLockTTL)
	defer cancel()
	return s.completeSubmit(ctx, id, payload.Token, s.Inquiry.SendInquiry(sendCtx, payload.Request))
}

// beginSubmit takes the submit lock, checks the session can be submitted and
// marks it as submitting under a fresh token.
func (s *DefaultBookingSessionService) beginSubmit(ctx context.Context, sessionID string) (string, models.InquiryRequest, error) {
	// A session that is gone should report not found rather than a lock result.
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return "", models.InquiryRequest{}, err
	}

	token := s.newID()
	locked, err := s.Repo.AcquireSubmitLock(ctx, sessionID, token, s.SubmitLockTTL)
	if err != nil {
		return "", models.InquiryRequest{}, err
	}
	if !locked {
		return "", models.InquiryRequest{}, ErrSubmissionInFlight
	}

	var req models.InquiryRequest
	_, err = s.update(ctx, sessionID, func(bs *models.BookingSession) error {
		if _, err := nextStep(bs.Step, ActionSubmit); err != nil {
			return err
		}
		if bs.Submitting {
			if !s.stale(bs) {
				return ErrSubmissionInFlight
			}
			s.Logger.Warn("taking over stale booking submission",
				zap.String("sessionID", sessionID), zap.Time("submittingAt", bs.SubmittingAt))
		}
		if !bs.Details.Complete() {
			return ErrDetailsIncomplete
		}
		bs.Submitting = true
		bs.SubmitToken = token
		bs.SubmittingAt = s.now()
		req = BuildInquiryRequest(bs)
		return nil
	})
	if err != nil {
		s.releaseLock(ctx, sessionID, token)
		return "", models.InquiryRequest{}, err
	}
	return token, req, nil
}

// stale reports whether the submission in flight was abandoned, e.g. its
// worker died or its task was lost.
func (s *DefaultBookingSessionService) stale(bs *models.BookingSession) bool {
	return s.SubmitStaleAfter > 0 && !s.now().Before(bs.SubmittingAt.Add(s.SubmitStaleAfter))
}

// completeSubmit applies the outcome of the inquiry call. If the session was
// closed while the call was pending the outcome is dropped.
func (s *DefaultBookingSessionService) completeSubmit(ctx context.Context, sessionID, token string, sendErr error) (*models.SubmitResult, error) {
	// The outcome must be recorded even if the caller went away meanwhile.
	ctx = context.WithoutCancel(ctx)
	defer s.releaseLock(ctx, sessionID, token)

	if sendErr == nil {
		existed, err := s.Repo.Delete(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to close booking session: %w", err)
		}
		if !existed {
			return s.dropped(sessionID, ErrSessionNotFound)
		}
		notice := s.notify(ctx, sessionID, models.NoticeSuccess, models.InquirySentMessage)
		s.Logger.Info("booking inquiry sent", zap.String("sessionID", sessionID))
		return &models.SubmitResult{SessionID: sessionID, Closed: true, Notice: notice}, nil
	}

	s.Logger.Warn("booking inquiry failed", zap.String("sessionID", sessionID), zap.Error(sendErr))
	_, err := s.update(ctx, sessionID, func(bs *models.BookingSession) error {
		if bs.SubmitToken != token {
			return errSuperseded
		}
		bs.Submitting = false
		bs.SubmitToken = ""
		bs.SubmittingAt = time.Time{}
		return nil
	})
	if err != nil {
		return s.dropped(sessionID, err)
	}
	notice := s.notify(ctx, sessionID, models.NoticeFailure, models.InquiryFailedMessage)
	return &models.SubmitResult{SessionID: sessionID, Notice: notice}, fmt.Errorf("%w: %v", ErrInquiryFailed, sendErr)
}

func (s *DefaultBookingSessionService) dropped(sessionID string, err error) (*models.SubmitResult, error) {
	switch {
	case errors.Is(mapRepoError(err), ErrSessionNotFound):
		s.Logger.Info("booking session closed during submission, result dropped", zap.String("sessionID", sessionID))
		return &models.SubmitResult{SessionID: sessionID, Closed: true}, nil
	case errors.Is(err, errSuperseded):
		s.Logger.Info("booking submission superseded, result dropped", zap.String("sessionID", sessionID))
		return &models.SubmitResult{SessionID: sessionID}, nil
	}
	return nil, err
}

func (s *DefaultBookingSessionService) notify(ctx context.Context, sessionID string, kind models.NoticeKind, msg string) *models.Notice {
	notice := models.Notice{Kind: kind, Message: msg, CreatedAt: s.now()}
	if s.NotificationSvc == nil {
		return &notice
	}
	if err := s.NotificationSvc.Notify(ctx, sessionID, notice); err != nil {
		s.Logger.Warn("failed to deliver booking notice", zap.String("sessionID", sessionID), zap.Error(err))
	}
	return &notice
}

func (s *DefaultBookingSessionService) releaseLock(ctx context.Context, sessionID, token string) {
	if err := s.Repo.ReleaseSubmitLock(ctx, sessionID, token); err != nil {
		s.Logger.Warn("failed to release submit lock", zap.String("sessionID", sessionID), zap.Error(err))
	}
}
