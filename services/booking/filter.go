package booking

import (
	"strings"

	"decorquote/models"
)

// FilterAddons drops add-ons that look already included in the plan: an add-on is
// excluded when any plan feature contains its name, case-insensitively.
// Catalog order is kept.
func FilterAddons(catalog []models.AddOn, plan models.Plan) []models.AddOn {
	features := lowerAll(plan.Features)
	out := make([]models.AddOn, 0, len(catalog))
	for _, addon := range catalog {
		if includedInPlan(addon, features) {
			continue
		}
		out = append(out, addon)
	}
	return out
}

func includedInPlan(addon models.AddOn, lowerFeatures []string) bool {
	name := strings.ToLower(addon.Name)
	for _, f := range lowerFeatures {
		if strings.Contains(f, name) {
			return true
		}
	}
	return false
}

// eligibleAddon resolves id against the filtered catalog of a session.
func eligibleAddon(session *models.BookingSession, id int) (models.AddOn, error) {
	addon, ok := models.FindAddOn(session.Addons, id)
	if !ok {
		return models.AddOn{}, ErrAddonNotFound
	}
	if includedInPlan(addon, lowerAll(session.Selection.Plan.Features)) {
		return models.AddOn{}, ErrAddonNotEligible
	}
	return addon, nil
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
