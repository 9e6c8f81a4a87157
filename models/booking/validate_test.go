package booking

import (
	"reflect"
	"testing"
	"time"
)

var refDate = time.Date(2025, time.December, 15, 10, 30, 0, 0, time.UTC)

func validBooking() Booking {
	return Booking{
		RoomID:    1,
		GuestID:   1,
		StartDate: time.Date(2025, time.December, 17, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.December, 19, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateOK(t *testing.T) {
	b := validBooking()
	if errs := b.Validate(refDate); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	var b Booking // everything missing
	got := b.Validate(refDate)
	want := []string{
		MsgStartDateRequired,
		MsgEndDateRequired,
		MsgRoomRequired,
		MsgGuestRequired,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestValidateRules(t *testing.T) {
	checkIn := time.Date(2025, time.December, 17, 14, 0, 0, 0, time.UTC)
	checkOutBefore := time.Date(2025, time.December, 17, 9, 0, 0, 0, time.UTC)
	checkOutEqual := checkIn

	tests := []struct {
		name   string
		mutate func(*Booking)
		want   []string
	}{
		{
			name: "end equals start",
			mutate: func(b *Booking) {
				b.EndDate = b.StartDate
			},
			want: []string{MsgEndBeforeStart},
		},
		{
			name: "end before start",
			mutate: func(b *Booking) {
				b.EndDate = b.StartDate.AddDate(0, 0, -1)
			},
			want: []string{MsgEndBeforeStart},
		},
		{
			name: "start in the past",
			mutate: func(b *Booking) {
				b.StartDate = refDate.AddDate(0, 0, -1)
				b.EndDate = refDate.AddDate(0, 0, 2)
			},
			want: []string{MsgStartInPast},
		},
		{
			name: "start on the reference day is allowed",
			mutate: func(b *Booking) {
				b.StartDate = time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC)
			},
			want: nil,
		},
		{
			name: "missing room",
			mutate: func(b *Booking) {
				b.RoomID = 0
			},
			want: []string{MsgRoomRequired},
		},
		{
			name: "missing guest",
			mutate: func(b *Booking) {
				b.GuestID = 0
			},
			want: []string{MsgGuestRequired},
		},
		{
			name: "check-out before check-in",
			mutate: func(b *Booking) {
				b.CheckInTime = &checkIn
				b.CheckOutTime = &checkOutBefore
			},
			want: []string{MsgCheckOutBeforeIn},
		},
		{
			name: "check-out equals check-in",
			mutate: func(b *Booking) {
				b.CheckInTime = &checkIn
				b.CheckOutTime = &checkOutEqual
			},
			want: []string{MsgCheckOutBeforeIn},
		},
		{
			name: "check-in alone is fine",
			mutate: func(b *Booking) {
				b.CheckInTime = &checkIn
			},
			want: nil,
		},
		{
			name: "multiple violations in rule order",
			mutate: func(b *Booking) {
				b.StartDate = refDate.AddDate(0, 0, -3)
				b.EndDate = b.StartDate
				b.GuestID = 0
			},
			want: []string{MsgEndBeforeStart, MsgStartInPast, MsgGuestRequired},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := validBooking()
			tc.mutate(&b)
			got := b.Validate(refDate)
			if len(tc.want) == 0 && len(got) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestValidateIgnoresTimeOfDay(t *testing.T) {
	// A start date later on the same calendar day as the reference time
	// must not count as "in the past".
	b := validBooking()
	b.StartDate = time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC)
	ref := time.Date(2025, time.December, 15, 23, 59, 0, 0, time.UTC)
	if errs := b.Validate(ref); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestValidateEdit(t *testing.T) {
	start := time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.December, 22, 0, 0, 0, 0, time.UTC)

	if errs := ValidateEdit(start, end, refDate); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}

	got := ValidateEdit(end, start, refDate)
	if !reflect.DeepEqual(got, []string{MsgEndBeforeStart}) {
		t.Fatalf("expected end-before-start violation, got %v", got)
	}

	got = ValidateEdit(refDate.AddDate(0, 0, -2), end, refDate)
	if !reflect.DeepEqual(got, []string{MsgStartInPast}) {
		t.Fatalf("expected past-start violation, got %v", got)
	}
}

func TestNumberOfNights(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "two nights",
			start: time.Date(2025, time.December, 17, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, time.December, 19, 0, 0, 0, 0, time.UTC),
			want:  2,
		},
		{
			name:  "one night",
			start: time.Date(2025, time.December, 17, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, time.December, 18, 0, 0, 0, 0, time.UTC),
			want:  1,
		},
		{
			name:  "across month boundary",
			start: time.Date(2025, time.November, 29, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, time.December, 2, 0, 0, 0, 0, time.UTC),
			want:  3,
		},
		{
			name: "unset dates",
			want: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Booking{StartDate: tc.start, EndDate: tc.end}
			if got := b.NumberOfNights(); got != tc.want {
				t.Fatalf("expected %d nights, got %d", tc.want, got)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, time.December, 17, 18, 45, 0, 0, time.UTC)
	b := time.Date(2025, time.December, 19, 2, 0, 0, 0, time.UTC)

	if got := DaysBetween(a, b); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := DaysBetween(b, a); got != -2 {
		t.Fatalf("expected -2, got %d", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestStatusHelpers(t *testing.T) {
	if BookingStatus("unknown").IsValid() {
		t.Fatal("expected unknown status to be invalid")
	}
	for _, s := range GetAllBookingStatuses() {
		if !s.IsValid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if !BookingStatusCheckedOut.IsTerminal() || !BookingStatusCancelled.IsTerminal() {
		t.Fatal("expected checked_out and cancelled to be terminal")
	}
	if BookingStatusConfirmed.IsTerminal() {
		t.Fatal("expected confirmed to be non-terminal")
	}
	if !BookingStatusPending.CanBeEdited() || !BookingStatusConfirmed.CanBeEdited() {
		t.Fatal("expected pending and confirmed to be editable")
	}
	if BookingStatusCheckedIn.CanBeCancelled() {
		t.Fatal("expected checked_in to not be cancellable")
	}
}
