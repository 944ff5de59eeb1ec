package models

// Mode is where the decoration is set up.
type Mode string

const (
	ModeIndoor  Mode = "INDOOR"
	ModeOutdoor Mode = "OUTDOOR"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == ModeIndoor || m == ModeOutdoor
}

// Service is the decoration the customer picked.
type Service struct {
	Title string `json:"title" mapstructure:"title"`
}

// SetupImage is the optional setup style picked for the decoration.
type SetupImage struct {
	Title string `json:"title" mapstructure:"title"`
}

// Plan is the base package. Price is a display string; no arithmetic is done on it.
type Plan struct {
	Name     string   `json:"name" mapstructure:"name"`
	Price    string   `json:"price" mapstructure:"price"`
	Features []string `json:"features" mapstructure:"features"`
}

// Selection is the upstream choice the booking flow customizes.
// It is fixed for the lifetime of a session.
type Selection struct {
	Decoration Service     `json:"decoration" mapstructure:"decoration"`
	Setup      *SetupImage `json:"setup,omitempty" mapstructure:"setup"`
	Plan       Plan        `json:"plan" mapstructure:"plan"`
	Mode       Mode        `json:"mode" mapstructure:"mode"`
}

// SetupTitle returns the setup title, or "General" when no setup was picked.
func (s Selection) SetupTitle() string {
	if s.Setup == nil || s.Setup.Title == "" {
		return "General"
	}
	return s.Setup.Title
}
