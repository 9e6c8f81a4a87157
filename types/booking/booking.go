package booking

import (
	"fmt"
	"time"
)

// Dates travel as YYYY-MM-DD strings; the stay interval is half-open.
const DateLayout = "2006-01-02"

// BookingCreateRequest represents the request payload for creating a booking
type BookingCreateRequest struct {
	RoomID    uint   `json:"room_id" validate:"required"`
	GuestID   uint   `json:"guest_id" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	PartySize int    `json:"party_size" validate:"omitempty,min=1"`
	Notes     string `json:"notes" validate:"omitempty"`
}

// BookingUpdateRequest carries an in-place edit of an upcoming booking
type BookingUpdateRequest struct {
	RoomID    uint   `json:"room_id" validate:"omitempty"`
	GuestID   uint   `json:"guest_id" validate:"omitempty"`
	StartDate string `json:"start_date" validate:"omitempty"`
	EndDate   string `json:"end_date" validate:"omitempty"`
	PartySize int    `json:"party_size" validate:"omitempty,min=1"`
	Notes     string `json:"notes" validate:"omitempty"`
}

// InquiryParseRequest carries the free text of a reservation inquiry
type InquiryParseRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

func (b BookingCreateRequest) Validate() error {
	if b.RoomID == 0 {
		return fmt.Errorf("room_id is required")
	}
	if b.GuestID == 0 {
		return fmt.Errorf("guest_id is required")
	}
	if b.StartDate == "" {
		return fmt.Errorf("start_date is required")
	}
	if b.EndDate == "" {
		return fmt.Errorf("end_date is required")
	}
	return nil
}

func (b InquiryParseRequest) Validate() error {
	if b.Text == "" {
		return fmt.Errorf("text is required")
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD value; empty input yields the zero time
// so the collect-all validator can report the missing date itself.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}
