package booking

import (
	"context"

	"decorquote/models"
)

// addonAction runs op on an eligible add-on while the flow is on the add-ons step.
func (s *DefaultBookingSessionService) addonAction(ctx context.Context, sessionID string, addonID int, op func(*models.BookingSession, models.AddOn) error) (*models.BookingSession, error) {
	return s.update(ctx, sessionID, func(bs *models.BookingSession) error {
		if err := requireStep(bs, models.StepAddons, "changing add-ons"); err != nil {
			return err
		}
		addon, err := eligibleAddon(bs, addonID)
		if err != nil {
			return err
		}
		return op(bs, addon)
	})
}

// SetAddonQuantity sets an add-on quantity; zero or less removes it.
func (s *DefaultBookingSessionService) SetAddonQuantity(ctx context.Context, sessionID string, addonID, quantity int) (*models.BookingSession, error) {
	return s.addonAction(ctx, sessionID, addonID, func(bs *models.BookingSession, addon models.AddOn) error {
		return setAddonQuantity(bs, addon, quantity)
	})
}

func (s *DefaultBookingSessionService) ToggleAddon(ctx context.Context, sessionID string, addonID int) (*models.BookingSession, error) {
	return s.addonAction(ctx, sessionID, addonID, toggleAddon)
}

func (s *DefaultBookingSessionService) IncrementAddon(ctx context.Context, sessionID string, addonID int) (*models.BookingSession, error) {
	return s.addonAction(ctx, sessionID, addonID, incrementAddon)
}

func (s *DefaultBookingSessionService) DecrementAddon(ctx context.Context, sessionID string, addonID int) (*models.BookingSession, error) {
	return s.addonAction(ctx, sessionID, addonID, decrementAddon)
}

// UpdateDetails replaces the contact details. Completeness is checked on submit.
func (s *DefaultBookingSessionService) UpdateDetails(ctx context.Context, sessionID string, details models.UserDetails) (*models.BookingSession, error) {
	return s.update(ctx, sessionID, func(bs *models.BookingSession) error {
		if err := requireStep(bs, models.StepDetails, "editing details"); err != nil {
			return err
		}
		bs.Details = details
		return nil
	})
}

// Proceed moves from add-ons to details. An empty selection is fine.
func (s *DefaultBookingSessionService) Proceed(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.move(ctx, sessionID, ActionProceed)
}

// Back returns to add-ons keeping selections and details.
func (s *DefaultBookingSessionService) Back(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.move(ctx, sessionID, ActionBack)
}

func (s *DefaultBookingSessionService) move(ctx context.Context, sessionID string, action Action) (*models.BookingSession, error) {
	return s.update(ctx, sessionID, func(bs *models.BookingSession) error {
		next, err := nextStep(bs.Step, action)
		if err != nil {
			return err
		}
		bs.Step = next
		return nil
	})
}
