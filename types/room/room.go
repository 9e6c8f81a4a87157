package room

import "fmt"

// RoomRequest creates or updates a room
type RoomRequest struct {
	Number      string `json:"number" validate:"required,min=1,max=20"`
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty"`
	Capacity    int    `json:"capacity" validate:"omitempty,min=1,max=20"`
	Floor       *int   `json:"floor" validate:"omitempty"`
	IsActive    *bool  `json:"is_active" validate:"omitempty"`
}

func (r RoomRequest) Validate() error {
	if r.Number == "" {
		return fmt.Errorf("number is required")
	}
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
