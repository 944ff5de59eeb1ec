package booking

import (
	"fmt"
	"strings"

	"decorquote/models"
)

// OrderSummary lists the plan followed by each selected add-on in selection order.
// Selected IDs missing from the catalog are skipped.
func OrderSummary(selection models.Selection, catalog []models.AddOn, selected models.SelectedAddons) []models.SummaryLine {
	lines := make([]models.SummaryLine, 0, len(selected)+1)
	lines = append(lines, models.SummaryLine{Label: selection.Plan.Name, Price: selection.Plan.Price})

	for _, entry := range selected {
		addon, ok := models.FindAddOn(catalog, entry.AddonID)
		if !ok {
			continue
		}
		label := addon.Name
		if addon.Type == models.AddOnQuantity {
			label = fmt.Sprintf("%s x%d", addon.Name, entry.Quantity)
		}
		lines = append(lines, models.SummaryLine{Label: label, Price: addon.Price})
	}
	return lines
}

// addonSummary is the comma-joined add-on list used in the inquiry message.
func addonSummary(catalog []models.AddOn, selected models.SelectedAddons) string {
	parts := make([]string, 0, len(selected))
	for _, entry := range selected {
		addon, ok := models.FindAddOn(catalog, entry.AddonID)
		if !ok {
			continue
		}
		if addon.Type == models.AddOnQuantity {
			parts = append(parts, fmt.Sprintf("%s (x%d)", addon.Name, entry.Quantity))
			continue
		}
		parts = append(parts, addon.Name)
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}
