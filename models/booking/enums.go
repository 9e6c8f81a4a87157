package booking

// BookingStatus is the lifecycle state of a reservation
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// Helper methods for BookingStatus
func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusCheckedOut, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no further transition can leave this state
func (bs BookingStatus) IsTerminal() bool {
	return bs == BookingStatusCheckedOut || bs == BookingStatusCancelled
}

// IsUpcoming returns true while the stay has not begun
func (bs BookingStatus) IsUpcoming() bool {
	return bs == BookingStatusPending || bs == BookingStatusConfirmed
}

// CanBeEdited returns true if dates, room or guest may still change
func (bs BookingStatus) CanBeEdited() bool {
	return bs.IsUpcoming()
}

// CanBeCancelled returns true if the booking may still be cancelled
func (bs BookingStatus) CanBeCancelled() bool {
	return bs.IsUpcoming()
}

// GetAllBookingStatuses returns all valid booking statuses
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusCheckedIn,
		BookingStatusCheckedOut,
		BookingStatusCancelled,
	}
}
