package schedule

import (
	"time"

	bookingModel "lodge-booking/models/booking"
)

// ViewState is the calendar consumer's current view: an anchor date, a
// view mode and the measured pixel width. It is recomputed whenever the
// anchor or mode changes and is never persisted.
type ViewState struct {
	Anchor  time.Time
	Mode    ViewMode
	WidthPx float64
}

// Period returns the visible window for the view state.
func (v ViewState) Period() Period {
	return PeriodFor(v.Anchor, v.Mode)
}

// BoxGeometry is the horizontal placement of one booking bar, in pixels.
type BoxGeometry struct {
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
}

// Layout converts a booking's stay interval into a left offset and width
// on a window of dayCount days rendered widthPx wide.
//
// A stay is drawn from the midpoint of its start day to the midpoint of
// its end day, so a one-night stay spans exactly one day-width. The
// offset formula always carries the +0.5 half day (clamped at the window
// edge); the width formula instead branches on whether the start is
// clipped, because a clipped bar runs from the window's left edge to the
// end date's midpoint while an unclipped bar is exactly the night count.
// Keep the two formulas as they are: unifying them re-introduces the
// off-by-half-day defects this function exists to centralize.
func Layout(b bookingModel.Booking, windowStart time.Time, widthPx float64, dayCount int) BoxGeometry {
	if dayCount <= 0 || widthPx <= 0 {
		// window not measured yet; clamp instead of faulting
		return BoxGeometry{}
	}
	dayWidth := widthPx / float64(dayCount)

	ws := bookingModel.DateOnly(windowStart)
	start := bookingModel.DateOnly(b.StartDate)
	end := bookingModel.DateOnly(b.EndDate)

	offsetDays := float64(bookingModel.DaysBetween(ws, start)) + 0.5
	if offsetDays < 0 {
		offsetDays = 0
	}
	left := offsetDays * dayWidth

	var width float64
	if start.Before(ws) {
		width = (float64(bookingModel.DaysBetween(ws, end)) + 0.5) * dayWidth
	} else {
		width = float64(bookingModel.DaysBetween(start, end)) * dayWidth
	}
	if width < 0 {
		width = 0
	}

	return BoxGeometry{Left: left, Width: width}
}
