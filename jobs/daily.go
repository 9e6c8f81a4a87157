package jobs

import (
	"fmt"
	"time"

	"lodge-booking/logger"
	bookingModel "lodge-booking/models/booking"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartScheduler runs the recurring back-office jobs. Currently a single
// morning digest of expected arrivals and departures.
func StartScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 7 * * *", func() {
		DailyDigest(db, time.Now())
	})
	if err != nil {
		logger.Error("Failed to schedule daily digest", err)
		return c
	}

	c.Start()
	logger.Success("Job scheduler started")
	return c
}

// DailyDigest logs the bookings due to arrive and depart on the given
// day so the front desk starts with an overview.
func DailyDigest(db *gorm.DB, day time.Time) {
	today := bookingModel.DateOnly(day)

	var arrivals []bookingModel.Booking
	err := db.Preload("Room").Preload("Guest").
		Where("start_date = ? AND status IN ?", today,
			[]bookingModel.BookingStatus{bookingModel.BookingStatusPending, bookingModel.BookingStatusConfirmed}).
		Find(&arrivals).Error
	if err != nil {
		logger.Error("Daily digest: failed to load arrivals", err)
		return
	}

	var departures []bookingModel.Booking
	err = db.Preload("Room").Preload("Guest").
		Where("end_date = ? AND status = ?", today, bookingModel.BookingStatusCheckedIn).
		Find(&departures).Error
	if err != nil {
		logger.Error("Daily digest: failed to load departures", err)
		return
	}

	logger.Info(fmt.Sprintf("Daily digest for %s: %d arrivals, %d departures",
		today.Format("2006-01-02"), len(arrivals), len(departures)))

	for _, b := range arrivals {
		logger.Info(fmt.Sprintf("  arriving: %s → room %s (%s, %d nights)",
			b.Guest.FullName(), b.Room.Label(), b.ReferenceCode, b.NumberOfNights()))
	}
	for _, b := range departures {
		logger.Info(fmt.Sprintf("  departing: %s from room %s (%s)",
			b.Guest.FullName(), b.Room.Label(), b.ReferenceCode))
	}
}
