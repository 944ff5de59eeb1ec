// models/booking_response.go
package models

// Footer actions.
const (
	ActionProceed = "proceed"
	ActionBack    = "back"
	ActionSubmit  = "submit"
)

// SummaryLine is one row of the order summary.
type SummaryLine struct {
	Label string `json:"label"`
	Price string `json:"price"`
}

// AddonView is an eligible add-on with its current state and enabled controls.
type AddonView struct {
	AddOn
	Quantity     int  `json:"quantity"`
	Selected     bool `json:"selected"`
	CanDecrement bool `json:"canDecrement"`
}

// SessionView is everything needed to render the booking modal.
type SessionView struct {
	SessionID        string        `json:"sessionId"`
	Step             Step          `json:"step"`
	Title            string        `json:"title"`
	Subtitle         string        `json:"subtitle"`
	IncludedFeatures []string      `json:"includedFeatures"`
	AvailableAddons  []AddonView   `json:"availableAddons,omitempty"`
	Summary          []SummaryLine `json:"summary,omitempty"`
	Details          UserDetails   `json:"details"`
	Actions          []string      `json:"actions"`
	Submitting       bool          `json:"submitting"`
	SubmitEnabled    bool          `json:"submitEnabled"`
}

// SubmitResult reports how a submit call ended.
type SubmitResult struct {
	SessionID string  `json:"sessionId"`
	Closed    bool    `json:"closed"`
	Queued    bool    `json:"queued,omitempty"`
	Notice    *Notice `json:"notice,omitempty"`
}
