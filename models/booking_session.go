package models

import "time"

// Step is the panel the booking flow is currently on.
type Step string

const (
	StepAddons  Step = "addons"
	StepDetails Step = "details"
)

// UserDetails are the contact details entered on the details step.
type UserDetails struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Date  string `json:"date"`
}

// Complete reports whether every field is filled in.
func (d UserDetails) Complete() bool {
	return d.Name != "" && d.Phone != "" && d.Date != ""
}

// AddonQuantity is one chosen add-on.
type AddonQuantity struct {
	AddonID  int `json:"addonId"`
	Quantity int `json:"quantity"`
}

// SelectedAddons keeps chosen add-ons in insertion order.
// An ID is present only while its quantity is positive.
type SelectedAddons []AddonQuantity

// Quantity returns the chosen quantity, 0 when absent.
func (s SelectedAddons) Quantity(id int) int {
	for _, e := range s {
		if e.AddonID == id {
			return e.Quantity
		}
	}
	return 0
}

// Set stores qty for id. Non-positive quantities remove the entry.
// Updating an existing entry keeps its position.
func (s SelectedAddons) Set(id, qty int) SelectedAddons {
	if qty <= 0 {
		return s.Remove(id)
	}
	for i := range s {
		if s[i].AddonID == id {
			out := s.clone()
			out[i].Quantity = qty
			return out
		}
	}
	return append(s.clone(), AddonQuantity{AddonID: id, Quantity: qty})
}

// Remove drops id. Removing an absent id is a no-op.
func (s SelectedAddons) Remove(id int) SelectedAddons {
	out := make(SelectedAddons, 0, len(s))
	for _, e := range s {
		if e.AddonID != id {
			out = append(out, e)
		}
	}
	return out
}

func (s SelectedAddons) clone() SelectedAddons {
	out := make(SelectedAddons, len(s), len(s)+1)
	copy(out, s)
	return out
}

// BookingSession holds the state of one open booking modal.
type BookingSession struct {
	SessionID      string         `json:"sessionId"`
	Selection      Selection      `json:"selection"`
	Addons         []AddOn        `json:"addons"`
	SelectedAddons SelectedAddons `json:"selectedAddons"`
	Details        UserDetails    `json:"details"`
	Step           Step           `json:"step"`
	Submitting     bool           `json:"submitting"`
	// SubmitToken identifies the submission in flight; only it may complete.
	SubmitToken    string         `json:"submitToken,omitempty"`
	SubmittingAt   time.Time      `json:"submittingAt,omitempty"`
	OpenedAt       time.Time      `json:"openedAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
