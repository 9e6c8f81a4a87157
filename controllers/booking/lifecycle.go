package booking

import (
	"errors"
	"fmt"
	"time"

	"lodge-booking/logger"
	bookingModel "lodge-booking/models/booking"
	"lodge-booking/services/booking_event"
	"lodge-booking/services/lifecycle"
	"lodge-booking/types"
	"lodge-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// canEdit wraps the lifecycle edit guard for the CRUD handlers.
func canEdit(b *bookingModel.Booking) error {
	return lifecycle.CanEdit(b)
}

// isGuardError reports whether err is a lifecycle guard violation rather
// than an infrastructure failure.
func isGuardError(err error) bool {
	guards := []error{
		lifecycle.ErrNotPending,
		lifecycle.ErrAlreadyCheckedIn,
		lifecycle.ErrAlreadyCheckedOut,
		lifecycle.ErrCancelled,
		lifecycle.ErrStayNotStarted,
		lifecycle.ErrNotCheckedIn,
		lifecycle.ErrNoCheckInTime,
		lifecycle.ErrAlreadyCancelled,
		lifecycle.ErrUnknownStatus,
	}
	for _, g := range guards {
		if errors.Is(err, g) {
			return true
		}
	}
	return false
}

// transition re-reads the booking, applies one lifecycle operation, saves
// the row and records the status event, all inside one transaction so
// concurrent attempts are serialized at the persistence boundary.
func (bc *BookingController) transition(c *fiber.Ctx, successMsg string, apply func(*bookingModel.Booking) error) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking ID",
			Data:    nil,
		})
	}

	actor := utils.ActorFromContext(c)
	var updated bookingModel.Booking

	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		var booking bookingModel.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			return err
		}

		from := booking.Status
		if err := apply(&booking); err != nil {
			return err
		}
		booking.UpdatedBy = actor

		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		if err := booking_event.RecordTransition(tx, &booking, from, actor); err != nil {
			return err
		}

		updated = booking
		return nil
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Booking not found",
				Data:    nil,
			})
		}
		if isGuardError(err) {
			return bc.sendResponseWithLog(c, fiber.StatusConflict, types.ApiResponse{
				Status:  fiber.StatusConflict,
				Message: err.Error(),
				Data:    nil,
			})
		}
		logger.Error("Failed to apply booking transition", err)
		return bc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update booking",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Booking %d is now %s", updated.ID, updated.Status))

	var reloaded bookingModel.Booking
	if err := bc.DB.Preload("Room").Preload("Guest").First(&reloaded, updated.ID).Error; err != nil {
		logger.Error("Failed to load booking after transition", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Booking updated but failed to retrieve complete data",
			Data:    nil,
		})
	}

	return bc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: successMsg,
		Data:    reloaded,
	})
}

// Confirm moves a pending booking to confirmed
func (bc *BookingController) Confirm(c *fiber.Ctx) error {
	return bc.transition(c, "Booking confirmed successfully", func(b *bookingModel.Booking) error {
		return lifecycle.Confirm(b)
	})
}

// CheckIn records the guest's arrival
func (bc *BookingController) CheckIn(c *fiber.Ctx) error {
	return bc.transition(c, "Guest checked in successfully", func(b *bookingModel.Booking) error {
		return lifecycle.CheckIn(b, time.Now())
	})
}

// CheckOut records the guest's departure
func (bc *BookingController) CheckOut(c *fiber.Ctx) error {
	return bc.transition(c, "Guest checked out successfully", func(b *bookingModel.Booking) error {
		return lifecycle.CheckOut(b, time.Now())
	})
}

// Cancel marks the booking cancelled; the row is kept
func (bc *BookingController) Cancel(c *fiber.Ctx) error {
	return bc.transition(c, "Booking cancelled successfully", func(b *bookingModel.Booking) error {
		return lifecycle.Cancel(b)
	})
}
