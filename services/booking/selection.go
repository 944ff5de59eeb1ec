package booking

import (
	"fmt"

	"decorquote/models"
)

// setAddonQuantity applies a new quantity: non-positive values remove the entry.
func setAddonQuantity(session *models.BookingSession, addon models.AddOn, value int) error {
	if addon.Type == models.AddOnCheckbox && value > 1 {
		return newBookingError(ErrInvalidQuantity, fmt.Sprintf("checkbox add-on %q accepts 0 or 1, got %d", addon.Name, value))
	}
	session.SelectedAddons = session.SelectedAddons.Set(addon.ID, value)
	return nil
}

// toggleAddon flips a checkbox add-on.
func toggleAddon(session *models.BookingSession, addon models.AddOn) error {
	if addon.Type != models.AddOnCheckbox {
		return ErrWrongAddonType
	}
	next := 1
	if session.SelectedAddons.Quantity(addon.ID) != 0 {
		next = 0
	}
	return setAddonQuantity(session, addon, next)
}

// incrementAddon adds one to a quantity add-on. There is no upper bound.
func incrementAddon(session *models.BookingSession, addon models.AddOn) error {
	if addon.Type != models.AddOnQuantity {
		return ErrWrongAddonType
	}
	return setAddonQuantity(session, addon, session.SelectedAddons.Quantity(addon.ID)+1)
}

// decrementAddon removes one from a quantity add-on.
// At zero the control is disabled, so nothing happens.
func decrementAddon(session *models.BookingSession, addon models.AddOn) error {
	if addon.Type != models.AddOnQuantity {
		return ErrWrongAddonType
	}
	current := session.SelectedAddons.Quantity(addon.ID)
	if current == 0 {
		return nil
	}
	return setAddonQuantity(session, addon, current-1)
}
