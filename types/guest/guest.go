package guest

import "fmt"

// GuestRequest creates or updates a guest
type GuestRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=255"`
	LastName  string `json:"last_name" validate:"required,min=1,max=255"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Country   string `json:"country" validate:"omitempty,max=100"`
	Notes     string `json:"notes" validate:"omitempty"`
}

func (g GuestRequest) Validate() error {
	if g.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if g.LastName == "" {
		return fmt.Errorf("last_name is required")
	}
	return nil
}
