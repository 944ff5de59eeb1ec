package models

// InquiryTypeBooking is the category label of every inquiry sent by the booking flow.
const InquiryTypeBooking = "Booking"

// InquiryRequest is the outbound message handed to the inquiry API.
// Email carries the phone number for APIs that only know the legacy shape;
// ContactPhone is the explicit field.
type InquiryRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	ContactPhone string `json:"contactPhone"`
	Type         string `json:"type"`
	Message      string `json:"message"`
}
