package booking

import (
	"context"

	"decorquote/models"
)

const (
	titleAddons  = "Customize Your Package"
	titleDetails = "Finalize Booking"
)

// BuildSessionView derives what the modal shows for a session: exactly one panel
// (add-ons or details) and the footer controls of the current step.
func BuildSessionView(bs *models.BookingSession) *models.SessionView {
	view := &models.SessionView{
		SessionID:        bs.SessionID,
		Step:             bs.Step,
		Subtitle:         bs.Selection.Decoration.Title + " • " + bs.Selection.Plan.Name,
		IncludedFeatures: append([]string(nil), bs.Selection.Plan.Features...),
		Details:          bs.Details,
		Actions:          footerActions(bs.Step),
		Submitting:       bs.Submitting,
	}

	if bs.Step == models.StepDetails {
		view.Title = titleDetails
		view.Summary = OrderSummary(bs.Selection, bs.Addons, bs.SelectedAddons)
		view.SubmitEnabled = !bs.Submitting
		return view
	}

	view.Title = titleAddons
	eligible := FilterAddons(bs.Addons, bs.Selection.Plan)
	view.AvailableAddons = make([]models.AddonView, 0, len(eligible))
	for _, a := range eligible {
		qty := bs.SelectedAddons.Quantity(a.ID)
		view.AvailableAddons = append(view.AvailableAddons, models.AddonView{
			AddOn:        a,
			Quantity:     qty,
			Selected:     qty > 0,
			CanDecrement: a.Type == models.AddOnQuantity && qty > 0,
		})
	}
	return view
}

// GetSessionView loads a session and builds its view.
func (s *DefaultBookingSessionService) GetSessionView(ctx context.Context, sessionID string) (*models.SessionView, error) {
	bs, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return BuildSessionView(bs), nil
}
