package schedule

import (
	bookingModel "lodge-booking/models/booking"
	scheduleService "lodge-booking/services/schedule"
)

// OverviewEntry is one positioned booking bar on the calendar
type OverviewEntry struct {
	Booking  bookingModel.Booking        `json:"booking"`
	Nights   int                         `json:"nights"`
	Geometry scheduleService.BoxGeometry `json:"geometry"`
}

// OverviewResponse is the full calendar payload for one view state
type OverviewResponse struct {
	Mode     scheduleService.ViewMode `json:"mode"`
	Period   scheduleService.Period   `json:"period"`
	DayCount int                      `json:"day_count"`
	WidthPx  float64                  `json:"width_px"`
	Entries  []OverviewEntry          `json:"entries"`
}
