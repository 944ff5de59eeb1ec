package booking

import (
	"fmt"

	"decorquote/models"
)

func validateSelection(sel models.Selection) error {
	if sel.Decoration.Title == "" {
		return newBookingError(ErrInvalidSelection, "decoration.title is required")
	}
	if sel.Plan.Name == "" {
		return newBookingError(ErrInvalidSelection, "plan.name is required")
	}
	if !sel.Mode.Valid() {
		return newBookingError(ErrInvalidSelection, fmt.Sprintf("mode must be INDOOR or OUTDOOR, got %q", sel.Mode))
	}
	return nil
}

func validateCatalog(addons []models.AddOn) error {
	seen := make(map[int]bool, len(addons))
	for _, a := range addons {
		if seen[a.ID] {
			return newBookingError(ErrInvalidSelection, fmt.Sprintf("duplicate add-on id %d", a.ID))
		}
		seen[a.ID] = true
		if a.Name == "" {
			return newBookingError(ErrInvalidSelection, fmt.Sprintf("add-on %d has no name", a.ID))
		}
		if !a.Type.Valid() {
			return newBookingError(ErrInvalidSelection, fmt.Sprintf("add-on %d has unknown type %q", a.ID, a.Type))
		}
	}
	return nil
}
