package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/jinzhu/now"

	bookingModel "lodge-booking/models/booking"
	guestModel "lodge-booking/models/guest"
)

// ViewMode selects the calendar window size
type ViewMode string

const (
	ViewModeWeek  ViewMode = "week"
	ViewModeMonth ViewMode = "month"
	ViewModeYear  ViewMode = "year"
)

func (m ViewMode) IsValid() bool {
	switch m {
	case ViewModeWeek, ViewModeMonth, ViewModeYear:
		return true
	default:
		return false
	}
}

// Period is the visible window as inclusive calendar dates [Start, End].
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// PeriodFor computes the visible window around an anchor date: the week
// containing it, its calendar month, or its calendar year.
func PeriodFor(anchor time.Time, mode ViewMode) Period {
	n := now.With(bookingModel.DateOnly(anchor))
	switch mode {
	case ViewModeMonth:
		return Period{Start: n.BeginningOfMonth(), End: bookingModel.DateOnly(n.EndOfMonth())}
	case ViewModeYear:
		return Period{Start: n.BeginningOfYear(), End: bookingModel.DateOnly(n.EndOfYear())}
	default:
		start := n.BeginningOfWeek()
		return Period{Start: start, End: start.AddDate(0, 0, 6)}
	}
}

// Days returns the number of calendar days the window spans.
func (p Period) Days() int {
	return bookingModel.DaysBetween(p.Start, p.End) + 1
}

// Overlaps reports whether the booking's stay interval touches the
// window. The test is deliberately closed-interval even though the stay
// itself is half-open: a stay ending on the window's first day still owes
// a half-day bar under the midpoint drawing convention.
func (p Period) Overlaps(b bookingModel.Booking) bool {
	start := bookingModel.DateOnly(b.StartDate)
	end := bookingModel.DateOnly(b.EndDate)
	return !start.After(p.End) && !end.Before(p.Start)
}

// SortKey orders the visible bookings; the zero value keeps input order.
type SortKey string

const (
	SortNone         SortKey = ""
	SortByGuestName  SortKey = "guest_name"
	SortByGuestEmail SortKey = "guest_email"
	SortByGuestPhone SortKey = "guest_phone"
	SortByCountry    SortKey = "guest_country"
	SortByRoom       SortKey = "room"
	SortByStartDate  SortKey = "start_date"
	SortByEndDate    SortKey = "end_date"
)

// Filter narrows the visible set beyond the period overlap test.
type Filter struct {
	IncludeCancelled bool
	Search           string
	SortBy           SortKey
	Descending       bool
}

// Visible selects the bookings overlapping the period, applies the
// cancellation policy and free-text guest filter, and sorts the result.
// Input order is preserved unless a sort key is set; ties keep input
// order either way. The input slice is never mutated.
func Visible(bookings []bookingModel.Booking, p Period, f Filter) []bookingModel.Booking {
	q := strings.ToLower(strings.TrimSpace(f.Search))

	visible := make([]bookingModel.Booking, 0, len(bookings))
	for _, b := range bookings {
		if !p.Overlaps(b) {
			continue
		}
		if !f.IncludeCancelled && b.Status == bookingModel.BookingStatusCancelled {
			continue
		}
		if q != "" && !guestMatches(b.Guest, q) {
			continue
		}
		visible = append(visible, b)
	}

	sortBookings(visible, f.SortBy, f.Descending)
	return visible
}

func guestMatches(g guestModel.Guest, q string) bool {
	fields := []string{g.FullName(), strVal(g.Email), strVal(g.Phone), strVal(g.Country)}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func sortBookings(list []bookingModel.Booking, key SortKey, desc bool) {
	if key == SortNone {
		return
	}

	less := lessFunc(key)
	sort.SliceStable(list, func(i, j int) bool {
		if desc {
			return less(list[j], list[i])
		}
		return less(list[i], list[j])
	})
}

func lessFunc(key SortKey) func(a, b bookingModel.Booking) bool {
	switch key {
	case SortByGuestEmail:
		return func(a, b bookingModel.Booking) bool {
			return strings.ToLower(strVal(a.Guest.Email)) < strings.ToLower(strVal(b.Guest.Email))
		}
	case SortByGuestPhone:
		return func(a, b bookingModel.Booking) bool {
			return strVal(a.Guest.Phone) < strVal(b.Guest.Phone)
		}
	case SortByCountry:
		return func(a, b bookingModel.Booking) bool {
			return strings.ToLower(strVal(a.Guest.Country)) < strings.ToLower(strVal(b.Guest.Country))
		}
	case SortByRoom:
		return func(a, b bookingModel.Booking) bool {
			return strings.ToLower(a.Room.Label()) < strings.ToLower(b.Room.Label())
		}
	case SortByStartDate:
		return func(a, b bookingModel.Booking) bool {
			return a.StartDate.Before(b.StartDate)
		}
	case SortByEndDate:
		return func(a, b bookingModel.Booking) bool {
			return a.EndDate.Before(b.EndDate)
		}
	default:
		return func(a, b bookingModel.Booking) bool {
			return strings.ToLower(a.Guest.FullName()) < strings.ToLower(b.Guest.FullName())
		}
	}
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
