package booking

import (
	"fmt"
	"strings"

	"decorquote/models"
)

// FormatInquiryMessage renders the booking as the text body of an inquiry.
func FormatInquiryMessage(selection models.Selection, catalog []models.AddOn, selected models.SelectedAddons, details models.UserDetails) string {
	var b strings.Builder
	b.WriteString("New Booking Inquiry\n")
	fmt.Fprintf(&b, "Type: %s\n", selection.Mode)
	fmt.Fprintf(&b, "Decoration: %s\n", selection.Decoration.Title)
	fmt.Fprintf(&b, "Setup: %s\n", selection.SetupTitle())
	fmt.Fprintf(&b, "Plan: %s\n", selection.Plan.Name)
	fmt.Fprintf(&b, "Add-ons: %s\n", addonSummary(catalog, selected))
	b.WriteString("\nCustomer Details:\n")
	fmt.Fprintf(&b, "Name: %s\n", details.Name)
	fmt.Fprintf(&b, "Phone: %s\n", details.Phone)
	fmt.Fprintf(&b, "Date: %s", details.Date)
	return b.String()
}

// BuildInquiryRequest turns a session into the request handed to the inquiry API.
// The phone number doubles as the legacy email field.
func BuildInquiryRequest(session *models.BookingSession) models.InquiryRequest {
	return models.InquiryRequest{
		Name:         session.Details.Name,
		Email:        session.Details.Phone,
		ContactPhone: session.Details.Phone,
		Type:         models.InquiryTypeBooking,
		Message:      FormatInquiryMessage(session.Selection, session.Addons, session.SelectedAddons, session.Details),
	}
}
