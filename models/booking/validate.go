package booking

import (
	"time"
)

// Validation messages. Collected in rule order so the UI can show every
// violation at once; the wording is part of the API contract.
const (
	MsgStartDateRequired = "Start date is required"
	MsgEndDateRequired   = "End date is required"
	MsgEndBeforeStart    = "End date must be after start date"
	MsgStartInPast       = "Start date cannot be in the past"
	MsgRoomRequired      = "Room is required"
	MsgGuestRequired     = "Guest is required"
	MsgCheckOutBeforeIn  = "Check-out time must be after check-in time"
)

// Validate collects every rule violation on the booking, never stopping
// at the first. An empty result means the booking is valid. The reference
// time is used for the date-only "not in the past" check.
func (b Booking) Validate(ref time.Time) []string {
	var errs []string

	if b.StartDate.IsZero() {
		errs = append(errs, MsgStartDateRequired)
	}
	if b.EndDate.IsZero() {
		errs = append(errs, MsgEndDateRequired)
	}
	if !b.StartDate.IsZero() && !b.EndDate.IsZero() && !DateOnly(b.EndDate).After(DateOnly(b.StartDate)) {
		errs = append(errs, MsgEndBeforeStart)
	}
	if !b.StartDate.IsZero() && DateOnly(b.StartDate).Before(DateOnly(ref)) {
		errs = append(errs, MsgStartInPast)
	}
	if b.RoomID == 0 {
		errs = append(errs, MsgRoomRequired)
	}
	if b.GuestID == 0 {
		errs = append(errs, MsgGuestRequired)
	}
	if b.CheckInTime != nil && b.CheckOutTime != nil && !b.CheckOutTime.After(*b.CheckInTime) {
		errs = append(errs, MsgCheckOutBeforeIn)
	}

	return errs
}

// ValidateEdit applies only the date ordering and past-date rules against
// proposed new dates, for in-place edits that do not touch room or guest.
func ValidateEdit(newStart, newEnd, ref time.Time) []string {
	var errs []string

	if !newStart.IsZero() && !newEnd.IsZero() && !DateOnly(newEnd).After(DateOnly(newStart)) {
		errs = append(errs, MsgEndBeforeStart)
	}
	if !newStart.IsZero() && DateOnly(newStart).Before(DateOnly(ref)) {
		errs = append(errs, MsgStartInPast)
	}

	return errs
}
