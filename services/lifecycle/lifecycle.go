package lifecycle

import (
	"errors"
	"time"

	bookingModel "lodge-booking/models/booking"
)

// Guard errors. Each failed transition reports the precondition that was
// not met; callers match with errors.Is and surface the message as-is.
var (
	ErrNotPending        = errors.New("only a pending booking can be confirmed")
	ErrAlreadyCheckedIn  = errors.New("booking is already checked in")
	ErrAlreadyCheckedOut = errors.New("booking is already checked out")
	ErrCancelled         = errors.New("booking has been cancelled")
	ErrStayNotStarted    = errors.New("stay has not started yet")
	ErrNotCheckedIn      = errors.New("booking is not checked in")
	ErrNoCheckInTime     = errors.New("no check-in time has been recorded")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrUnknownStatus     = errors.New("booking status is not recognized")
)

// Confirm moves a pending booking to confirmed.
func Confirm(b *bookingModel.Booking) error {
	switch b.Status {
	case bookingModel.BookingStatusCancelled:
		return ErrCancelled
	case bookingModel.BookingStatusCheckedIn:
		return ErrAlreadyCheckedIn
	case bookingModel.BookingStatusCheckedOut:
		return ErrAlreadyCheckedOut
	case bookingModel.BookingStatusPending:
		b.Status = bookingModel.BookingStatusConfirmed
		return nil
	default:
		return ErrNotPending
	}
}

// CheckIn records the arrival. Allowed from pending or confirmed, once,
// and only when the stay's start date is on or before the reference day
// (date-only comparison).
func CheckIn(b *bookingModel.Booking, at time.Time) error {
	switch b.Status {
	case bookingModel.BookingStatusCancelled:
		return ErrCancelled
	case bookingModel.BookingStatusCheckedOut:
		return ErrAlreadyCheckedOut
	case bookingModel.BookingStatusCheckedIn:
		return ErrAlreadyCheckedIn
	case bookingModel.BookingStatusPending, bookingModel.BookingStatusConfirmed:
	default:
		return ErrUnknownStatus
	}
	if b.CheckInTime != nil {
		return ErrAlreadyCheckedIn
	}
	if bookingModel.DateOnly(b.StartDate).After(bookingModel.DateOnly(at)) {
		return ErrStayNotStarted
	}

	t := at
	b.CheckInTime = &t
	b.Status = bookingModel.BookingStatusCheckedIn
	return nil
}

// CheckOut records the departure. Allowed only from checked-in with a
// recorded check-in time and no check-out time yet.
func CheckOut(b *bookingModel.Booking, at time.Time) error {
	switch b.Status {
	case bookingModel.BookingStatusCancelled:
		return ErrCancelled
	case bookingModel.BookingStatusCheckedOut:
		return ErrAlreadyCheckedOut
	case bookingModel.BookingStatusCheckedIn:
	default:
		return ErrNotCheckedIn
	}
	if b.CheckInTime == nil {
		return ErrNoCheckInTime
	}
	if b.CheckOutTime != nil {
		return ErrAlreadyCheckedOut
	}

	t := at
	b.CheckOutTime = &t
	b.Status = bookingModel.BookingStatusCheckedOut
	return nil
}

// Cancel marks the booking cancelled. Allowed only before check-in;
// cancellation is a status change, never a delete.
func Cancel(b *bookingModel.Booking) error {
	switch b.Status {
	case bookingModel.BookingStatusCancelled:
		return ErrAlreadyCancelled
	case bookingModel.BookingStatusCheckedIn:
		return ErrAlreadyCheckedIn
	case bookingModel.BookingStatusCheckedOut:
		return ErrAlreadyCheckedOut
	case bookingModel.BookingStatusPending, bookingModel.BookingStatusConfirmed:
	default:
		return ErrUnknownStatus
	}
	b.Status = bookingModel.BookingStatusCancelled
	return nil
}

// CanEdit reports whether dates, room or guest may still change. Edits
// are allowed only while the booking is pending or confirmed.
func CanEdit(b *bookingModel.Booking) error {
	switch b.Status {
	case bookingModel.BookingStatusCancelled:
		return ErrCancelled
	case bookingModel.BookingStatusCheckedOut:
		return ErrAlreadyCheckedOut
	case bookingModel.BookingStatusCheckedIn:
		return ErrAlreadyCheckedIn
	case bookingModel.BookingStatusPending, bookingModel.BookingStatusConfirmed:
		return nil
	default:
		return ErrUnknownStatus
	}
}
