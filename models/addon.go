package models

// AddOnType tells how an add-on is chosen.
type AddOnType string

const (
	// AddOnCheckbox is either included or not.
	AddOnCheckbox AddOnType = "checkbox"
	// AddOnQuantity is a non-negative count.
	AddOnQuantity AddOnType = "quantity"
)

func (t AddOnType) Valid() bool {
	return t == AddOnCheckbox || t == AddOnQuantity
}

// AddOn is an optional extra attachable to a plan.
type AddOn struct {
	ID    int       `json:"id" mapstructure:"id"`
	Name  string    `json:"name" mapstructure:"name"`
	Price string    `json:"price" mapstructure:"price"`
	Type  AddOnType `json:"type" mapstructure:"type"`
}

// FindAddOn looks an add-on up by ID.
func FindAddOn(catalog []AddOn, id int) (AddOn, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return AddOn{}, false
}
