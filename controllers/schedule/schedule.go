package schedule

import (
	"time"

	"lodge-booking/logger"
	bookingModel "lodge-booking/models/booking"
	scheduleService "lodge-booking/services/schedule"
	"lodge-booking/types"
	bookingTypes "lodge-booking/types/booking"
	scheduleTypes "lodge-booking/types/schedule"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ScheduleController serves the calendar overview
type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

// Overview returns the bookings visible in the requested window, each
// with its computed bar geometry. Query parameters:
//
//	date              anchor date (YYYY-MM-DD, default today)
//	mode              week | month | year (default month)
//	width             available pixel width (0 while unmeasured)
//	q                 free-text guest filter
//	include_cancelled show cancelled bookings too
//	sort, desc        optional ordering
func (sc *ScheduleController) Overview(c *fiber.Ctx) error {
	anchor := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := bookingTypes.ParseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: err.Error(),
				Data:    nil,
			})
		}
		anchor = parsed
	}

	mode := scheduleService.ViewMode(c.Query("mode", string(scheduleService.ViewModeMonth)))
	if !mode.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "mode must be week, month or year",
			Data:    nil,
		})
	}

	sortKey := scheduleService.SortKey(c.Query("sort"))

	view := scheduleService.ViewState{
		Anchor:  anchor,
		Mode:    mode,
		WidthPx: c.QueryFloat("width", 0),
	}
	filter := scheduleService.Filter{
		IncludeCancelled: c.QueryBool("include_cancelled", false),
		Search:           c.Query("q"),
		SortBy:           sortKey,
		Descending:       c.QueryBool("desc", false),
	}

	var bookings []bookingModel.Booking
	if err := sc.DB.Preload("Room").Preload("Guest").Order("id").Find(&bookings).Error; err != nil {
		logger.Error("Failed to load bookings for overview", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	period := view.Period()
	visible := scheduleService.Visible(bookings, period, filter)

	entries := make([]scheduleTypes.OverviewEntry, 0, len(visible))
	for _, b := range visible {
		entries = append(entries, scheduleTypes.OverviewEntry{
			Booking:  b,
			Nights:   b.NumberOfNights(),
			Geometry: scheduleService.Layout(b, period.Start, view.WidthPx, period.Days()),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Overview computed successfully",
		Data: scheduleTypes.OverviewResponse{
			Mode:     mode,
			Period:   period,
			DayCount: period.Days(),
			WidthPx:  view.WidthPx,
			Entries:  entries,
		},
	})
}
