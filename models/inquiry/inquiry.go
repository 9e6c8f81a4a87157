package inquiry

import (
	"time"
)

// InquiryRequest records one free-text reservation inquiry submitted for
// parsing, including the outcome, so drafts can be audited later.
type InquiryRequest struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	RequestID string `gorm:"type:varchar(64);not null;unique;index" json:"request_id"`

	SourceText string  `gorm:"type:text;not null" json:"source_text"`
	Status     string  `gorm:"type:varchar(20);not null" json:"status"` // processing, completed, failed
	ResultJSON *string `gorm:"type:text" json:"result_json,omitempty"`
	ErrorText  *string `gorm:"type:text" json:"error_text,omitempty"`

	ProcessingTimeMs int64   `gorm:"type:bigint" json:"processing_time_ms"`
	IPAddress        string  `gorm:"type:varchar(64)" json:"ip_address"`
	UserAgent        *string `gorm:"type:text" json:"user_agent,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// DraftBooking is the structured result extracted from an inquiry text.
type DraftBooking struct {
	GuestFirstName string `json:"guest_first_name"`
	GuestLastName  string `json:"guest_last_name"`
	GuestEmail     string `json:"guest_email"`
	GuestPhone     string `json:"guest_phone"`
	GuestCountry   string `json:"guest_country"`
	StartDate      string `json:"start_date"` // YYYY-MM-DD, empty if unclear
	EndDate        string `json:"end_date"`   // YYYY-MM-DD, empty if unclear
	PartySize      int    `json:"party_size"`
	RoomPreference string `json:"room_preference"`
	Notes          string `json:"notes"`
}
