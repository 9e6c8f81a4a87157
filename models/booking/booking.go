package booking

import (
	"time"

	"lodge-booking/models/guest"
	"lodge-booking/models/room"
)

// Booking represents a stay reservation for one room and one guest.
// StartDate and EndDate are calendar dates (midnight, no time component)
// forming the half-open stay interval [StartDate, EndDate). CheckInTime
// and CheckOutTime are the actual timestamps recorded by the lifecycle
// transitions and stay nil until the corresponding event happens.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ReferenceCode string `gorm:"type:varchar(64);not null;unique" json:"reference_code"`

	// Foreign key for room relationship
	RoomID uint      `gorm:"not null" json:"room_id"`
	Room   room.Room `gorm:"foreignKey:RoomID" json:"room"`

	// Foreign key for guest relationship
	GuestID uint        `gorm:"not null" json:"guest_id"`
	Guest   guest.Guest `gorm:"foreignKey:GuestID" json:"guest"`

	StartDate time.Time `gorm:"type:date" json:"start_date"`
	EndDate   time.Time `gorm:"type:date" json:"end_date"`

	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`

	Status BookingStatus `gorm:"size:20;not null;default:pending" json:"status"`

	PartySize int     `gorm:"type:int;default:1" json:"party_size"`
	Notes     *string `gorm:"type:text" json:"notes,omitempty"`

	CreatedBy string     `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedBy string     `gorm:"type:varchar(255)" json:"updated_by,omitempty"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// NumberOfNights derives the stay length in nights. It is 0 when either
// date is unset; it is never stored.
func (b Booking) NumberOfNights() int {
	if b.StartDate.IsZero() || b.EndDate.IsZero() {
		return 0
	}
	return DaysBetween(b.StartDate, b.EndDate)
}

// DateOnly strips the time-of-day component, normalizing to UTC midnight.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from a to b, negative when
// b is before a.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
