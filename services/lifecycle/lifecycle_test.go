package lifecycle

import (
	"errors"
	"testing"
	"time"

	bookingModel "lodge-booking/models/booking"
)

var (
	stayStart = time.Date(2025, time.December, 17, 0, 0, 0, 0, time.UTC)
	stayEnd   = time.Date(2025, time.December, 19, 0, 0, 0, 0, time.UTC)
	arrival   = time.Date(2025, time.December, 17, 15, 4, 0, 0, time.UTC)
	departure = time.Date(2025, time.December, 19, 10, 30, 0, 0, time.UTC)
)

func newBooking(status bookingModel.BookingStatus) *bookingModel.Booking {
	return &bookingModel.Booking{
		RoomID:    1,
		GuestID:   1,
		StartDate: stayStart,
		EndDate:   stayEnd,
		Status:    status,
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		status  bookingModel.BookingStatus
		wantErr error
	}{
		{bookingModel.BookingStatusPending, nil},
		{bookingModel.BookingStatusConfirmed, ErrNotPending},
		{bookingModel.BookingStatusCheckedIn, ErrAlreadyCheckedIn},
		{bookingModel.BookingStatusCheckedOut, ErrAlreadyCheckedOut},
		{bookingModel.BookingStatusCancelled, ErrCancelled},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			b := newBooking(tc.status)
			err := Confirm(b)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr == nil && b.Status != bookingModel.BookingStatusConfirmed {
				t.Fatalf("expected confirmed, got %s", b.Status)
			}
			if tc.wantErr != nil && b.Status != tc.status {
				t.Fatalf("failed transition must not change status, got %s", b.Status)
			}
		})
	}
}

func TestCheckIn(t *testing.T) {
	t.Run("from pending", func(t *testing.T) {
		b := newBooking(bookingModel.BookingStatusPending)
		if err := CheckIn(b, arrival); err != nil {
			t.Fatalf("expected check-in to succeed, got %v", err)
		}
		if b.Status != bookingModel.BookingStatusCheckedIn {
			t.Fatalf("expected checked_in, got %s", b.Status)
		}
		if b.CheckInTime == nil || !b.CheckInTime.Equal(arrival) {
			t.Fatalf("expected check-in time %v, got %v", arrival, b.CheckInTime)
		}
	})

	t.Run("from confirmed", func(t *testing.T) {
		b := newBooking(bookingModel.BookingStatusConfirmed)
		if err := CheckIn(b, arrival); err != nil {
			t.Fatalf("expected check-in to succeed, got %v", err)
		}
	})

	t.Run("before the stay starts", func(t *testing.T) {
		b := newBooking(bookingModel.BookingStatusConfirmed)
		early := stayStart.AddDate(0, 0, -1)
		if err := CheckIn(b, early); !errors.Is(err, ErrStayNotStarted) {
			t.Fatalf("expected ErrStayNotStarted, got %v", err)
		}
		if b.CheckInTime != nil {
			t.Fatal("failed check-in must not record a time")
		}
	})

	t.Run("any time on the start day counts", func(t *testing.T) {
		b := newBooking(bookingModel.BookingStatusConfirmed)
		midnight := time.Date(2025, time.December, 17, 0, 1, 0, 0, time.UTC)
		if err := CheckIn(b, midnight); err != nil {
			t.Fatalf("expected check-in to succeed, got %v", err)
		}
	})

	t.Run("twice", func(t *testing.T) {
		b := newBooking(bookingModel.BookingStatusConfirmed)
		if err := CheckIn(b, arrival); err != nil {
			t.Fatalf("first check-in failed: %v", err)
		}
		if err := CheckIn(b, arrival.Add(time.Hour)); !errors.Is(err, ErrAlreadyCheckedIn) {
			t.Fatalf("expected ErrAlreadyCheckedIn, got %v", err)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		b := newBooking(bookingModel.BookingStatusCancelled)
		if err := CheckIn(b, arrival); !errors.Is(err, ErrCancelled) {
			t.Fatalf("expected ErrCancelled, got %v", err)
		}
	})

	t.Run("checked out", func(t *testing.T) {
		b := newBooking(bookingModel.BookingStatusCheckedOut)
		if err := CheckIn(b, arrival); !errors.Is(err, ErrAlreadyCheckedOut) {
			t.Fatalf("expected ErrAlreadyCheckedOut, got %v", err)
		}
	})
}

func TestCheckOut(t *testing.T) {
	checkedIn := func() *bookingModel.Booking {
		b := newBooking(bookingModel.BookingStatusConfirmed)
		if err := CheckIn(b, arrival); err != nil {
			t.Fatalf("setup check-in failed: %v", err)
		}
		return b
	}

	t.Run("from checked in", func(t *testing.T) {
		b := checkedIn()
		if err := CheckOut(b, departure); err != nil {
			t.Fatalf("expected check-out to succeed, got %v", err)
		}
		if b.Status != bookingModel.BookingStatusCheckedOut {
			t.Fatalf("expected checked_out, got %s", b.Status)
		}
		if b.CheckOutTime == nil || !b.CheckOutTime.Equal(departure) {
			t.Fatalf("expected check-out time %v, got %v", departure, b.CheckOutTime)
		}
	})

	t.Run("without check-in", func(t *testing.T) {
		b := newBooking(bookingModel.BookingStatusConfirmed)
		if err := CheckOut(b, departure); !errors.Is(err, ErrNotCheckedIn) {
			t.Fatalf("expected ErrNotCheckedIn, got %v", err)
		}
	})

	t.Run("status checked in but no check-in time", func(t *testing.T) {
		b := newBooking(bookingModel.BookingStatusCheckedIn)
		if err := CheckOut(b, departure); !errors.Is(err, ErrNoCheckInTime) {
			t.Fatalf("expected ErrNoCheckInTime, got %v", err)
		}
	})

	t.Run("twice", func(t *testing.T) {
		b := checkedIn()
		if err := CheckOut(b, departure); err != nil {
			t.Fatalf("first check-out failed: %v", err)
		}
		if err := CheckOut(b, departure.Add(time.Hour)); !errors.Is(err, ErrAlreadyCheckedOut) {
			t.Fatalf("expected ErrAlreadyCheckedOut, got %v", err)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		b := newBooking(bookingModel.BookingStatusCancelled)
		if err := CheckOut(b, departure); !errors.Is(err, ErrCancelled) {
			t.Fatalf("expected ErrCancelled, got %v", err)
		}
	})
}

func TestCancel(t *testing.T) {
	tests := []struct {
		status  bookingModel.BookingStatus
		wantErr error
	}{
		{bookingModel.BookingStatusPending, nil},
		{bookingModel.BookingStatusConfirmed, nil},
		{bookingModel.BookingStatusCheckedIn, ErrAlreadyCheckedIn},
		{bookingModel.BookingStatusCheckedOut, ErrAlreadyCheckedOut},
		{bookingModel.BookingStatusCancelled, ErrAlreadyCancelled},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			b := newBooking(tc.status)
			err := Cancel(b)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr == nil && b.Status != bookingModel.BookingStatusCancelled {
				t.Fatalf("expected cancelled, got %s", b.Status)
			}
		})
	}
}

func TestFullLifecycle(t *testing.T) {
	b := newBooking(bookingModel.BookingStatusPending)

	if err := Confirm(b); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if err := CheckIn(b, arrival); err != nil {
		t.Fatalf("check-in failed: %v", err)
	}
	if err := CheckOut(b, departure); err != nil {
		t.Fatalf("check-out failed: %v", err)
	}

	if b.Status != bookingModel.BookingStatusCheckedOut {
		t.Fatalf("expected checked_out, got %s", b.Status)
	}
	if b.CheckInTime == nil || b.CheckOutTime == nil {
		t.Fatal("expected both stay timestamps to be recorded")
	}
	if !b.CheckOutTime.After(*b.CheckInTime) {
		t.Fatal("expected check-out after check-in")
	}
}

func TestCancelledIsTerminal(t *testing.T) {
	b := newBooking(bookingModel.BookingStatusPending)
	if err := Cancel(b); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	if err := Confirm(b); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled on confirm, got %v", err)
	}
	if err := CheckIn(b, arrival); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled on check-in, got %v", err)
	}
	if err := CheckOut(b, departure); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled on check-out, got %v", err)
	}
	if err := Cancel(b); !errors.Is(err, ErrAlreadyCancelled) {
		t.Fatalf("expected ErrAlreadyCancelled, got %v", err)
	}
	if b.Status != bookingModel.BookingStatusCancelled {
		t.Fatalf("expected status to stay cancelled, got %s", b.Status)
	}
}

func TestUnrecognizedStatusIsRejected(t *testing.T) {
	for _, status := range []bookingModel.BookingStatus{"", "bogus"} {
		t.Run(string(status), func(t *testing.T) {
			b := newBooking(status)
			if err := CheckIn(b, arrival); !errors.Is(err, ErrUnknownStatus) {
				t.Fatalf("expected ErrUnknownStatus on check-in, got %v", err)
			}
			if b.CheckInTime != nil {
				t.Fatal("rejected check-in must not record a time")
			}
			if err := Cancel(b); !errors.Is(err, ErrUnknownStatus) {
				t.Fatalf("expected ErrUnknownStatus on cancel, got %v", err)
			}
			if err := CanEdit(b); !errors.Is(err, ErrUnknownStatus) {
				t.Fatalf("expected ErrUnknownStatus on edit guard, got %v", err)
			}
			if b.Status != status {
				t.Fatalf("rejected transitions must not change status, got %s", b.Status)
			}
		})
	}
}

func TestCanEdit(t *testing.T) {
	tests := []struct {
		status  bookingModel.BookingStatus
		wantErr error
	}{
		{bookingModel.BookingStatusPending, nil},
		{bookingModel.BookingStatusConfirmed, nil},
		{bookingModel.BookingStatusCheckedIn, ErrAlreadyCheckedIn},
		{bookingModel.BookingStatusCheckedOut, ErrAlreadyCheckedOut},
		{bookingModel.BookingStatusCancelled, ErrCancelled},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			b := newBooking(tc.status)
			if err := CanEdit(b); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
