package booking

import (
	"errors"
	"fmt"
	"time"

	"lodge-booking/constants"
	"lodge-booking/logger"
	bookingModel "lodge-booking/models/booking"
	guestModel "lodge-booking/models/guest"
	roomModel "lodge-booking/models/room"
	"lodge-booking/services"
	"lodge-booking/types"
	bookingTypes "lodge-booking/types/booking"
	"lodge-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Referential errors raised inside write transactions. Sentinels keep a
// genuine DB failure while loading the reference from being mistaken for
// a missing row.
var (
	errRoomNotFound  = errors.New("room not found")
	errGuestNotFound = errors.New("guest not found")
)

// referenceNotFound maps a missing room/guest reference to its client
// message; other errors are left to the generic handling.
func referenceNotFound(err error) (string, bool) {
	switch {
	case errors.Is(err, errRoomNotFound):
		return errRoomNotFound.Error(), true
	case errors.Is(err, errGuestNotFound):
		return errGuestNotFound.Error(), true
	}
	return "", false
}

// BookingController handles booking-related HTTP requests
type BookingController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewBookingController creates a new booking controller
func NewBookingController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Helper function to log API requests and responses
func (bc *BookingController) logAPIRequest(c *fiber.Ctx) {
	logEntry := utils.CreateSanitizedLogEntry(c)
	bc.Logger.Log(logEntry)
}

// Helper function to send response and log in one call
func (bc *BookingController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	bc.logAPIRequest(c)
	return result
}

// Index lists bookings, newest stay first, optionally filtered by status
func (bc *BookingController) Index(c *fiber.Ctx) error {
	query := bc.DB.Preload("Room").Preload("Guest")

	if status := c.Query("status"); status != "" {
		st := bookingModel.BookingStatus(status)
		if !st.IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: fmt.Sprintf("Unknown status %q", status),
				Data:    nil,
			})
		}
		query = query.Where("status = ?", st)
	}

	var bookings []bookingModel.Booking
	if err := query.Order("start_date DESC").Find(&bookings).Error; err != nil {
		logger.Error("Failed to list bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings retrieved successfully",
		Data:    bookings,
	})
}

// Show returns a single booking by ID
func (bc *BookingController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking ID",
			Data:    nil,
		})
	}

	var booking bookingModel.Booking
	if err := bc.DB.Preload("Room").Preload("Guest").First(&booking, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Booking not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking retrieved successfully",
		Data:    booking,
	})
}

// Store creates a new booking in pending status
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	startDate, err := bookingTypes.ParseDate(req.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}
	endDate, err := bookingTypes.ParseDate(req.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	actor := utils.ActorFromContext(c)

	partySize := req.PartySize
	if partySize == 0 {
		partySize = 1
	}

	booking := bookingModel.Booking{
		ReferenceCode: utils.GenerateBookingReference(),
		RoomID:        req.RoomID,
		GuestID:       req.GuestID,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        bookingModel.BookingStatusPending,
		PartySize:     partySize,
		CreatedBy:     actor,
	}
	if req.Notes != "" {
		booking.Notes = &req.Notes
	}

	// Collect every rule violation so the UI can show them all at once
	if errs := booking.Validate(time.Now()); len(errs) > 0 {
		return bc.sendResponseWithLog(c, fiber.StatusUnprocessableEntity, types.ApiResponse{
			Status:  fiber.StatusUnprocessableEntity,
			Message: "Validation failed",
			Errors:  errs,
			Data:    nil,
		})
	}

	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		var room roomModel.Room
		if err := tx.First(&room, req.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errRoomNotFound
			}
			return err
		}
		var guest guestModel.Guest
		if err := tx.First(&guest, req.GuestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errGuestNotFound
			}
			return err
		}

		if err := tx.Create(&booking).Error; err != nil {
			logger.Error("Failed to create booking", err)
			return err
		}
		return nil
	})

	if err != nil {
		status := fiber.StatusInternalServerError
		msg := "Failed to save booking"
		if m, ok := referenceNotFound(err); ok {
			status = fiber.StatusNotFound
			msg = m
		} else {
			logger.Error("Failed to save booking", err)
		}
		return bc.sendResponseWithLog(c, status, types.ApiResponse{
			Status:  status,
			Message: msg,
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Booking created successfully with ID: %d", booking.ID))

	var createdBooking bookingModel.Booking
	if err := bc.DB.Preload("Room").Preload("Guest").First(&createdBooking, booking.ID).Error; err != nil {
		logger.Error("Failed to load created booking data", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Booking created but failed to retrieve complete data",
			Data:    nil,
		})
	}

	return bc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Data:    createdBooking,
	})
}

// Update edits dates, room or guest of an upcoming booking in place
func (bc *BookingController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking ID",
			Data:    nil,
		})
	}

	var req bookingTypes.BookingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	actor := utils.ActorFromContext(c)
	var updated bookingModel.Booking

	var guardErr error
	var validationErrs []string

	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		var booking bookingModel.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			return err
		}

		if err := canEdit(&booking); err != nil {
			guardErr = err
			return err
		}

		newStart := booking.StartDate
		newEnd := booking.EndDate
		if req.StartDate != "" {
			parsed, err := bookingTypes.ParseDate(req.StartDate)
			if err != nil {
				validationErrs = []string{err.Error()}
				return err
			}
			newStart = parsed
		}
		if req.EndDate != "" {
			parsed, err := bookingTypes.ParseDate(req.EndDate)
			if err != nil {
				validationErrs = []string{err.Error()}
				return err
			}
			newEnd = parsed
		}

		if errs := bookingModel.ValidateEdit(newStart, newEnd, time.Now()); len(errs) > 0 {
			validationErrs = errs
			return fmt.Errorf("validation failed")
		}

		booking.StartDate = newStart
		booking.EndDate = newEnd
		if req.RoomID != 0 {
			var room roomModel.Room
			if err := tx.First(&room, req.RoomID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errRoomNotFound
				}
				return err
			}
			booking.RoomID = req.RoomID
		}
		if req.GuestID != 0 {
			var guest guestModel.Guest
			if err := tx.First(&guest, req.GuestID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errGuestNotFound
				}
				return err
			}
			booking.GuestID = req.GuestID
		}
		if req.PartySize != 0 {
			booking.PartySize = req.PartySize
		}
		if req.Notes != "" {
			booking.Notes = &req.Notes
		}
		booking.UpdatedBy = actor

		if err := tx.Save(&booking).Error; err != nil {
			logger.Error("Failed to update booking", err)
			return err
		}

		updated = booking
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Booking not found",
				Data:    nil,
			})
		case guardErr != nil:
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Status:  fiber.StatusConflict,
				Message: guardErr.Error(),
				Data:    nil,
			})
		case len(validationErrs) > 0:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
				Status:  fiber.StatusUnprocessableEntity,
				Message: "Validation failed",
				Errors:  validationErrs,
				Data:    nil,
			})
		default:
			if msg, ok := referenceNotFound(err); ok {
				return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
					Status:  fiber.StatusNotFound,
					Message: msg,
					Data:    nil,
				})
			}
			logger.Error("Failed to update booking", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to update booking",
				Data:    nil,
			})
		}
	}

	logger.Success(fmt.Sprintf("Booking %d updated successfully", updated.ID))

	var reloaded bookingModel.Booking
	if err := bc.DB.Preload("Room").Preload("Guest").First(&reloaded, updated.ID).Error; err != nil {
		logger.Error("Failed to load updated booking data", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Booking updated but failed to retrieve complete data",
			Data:    nil,
		})
	}

	return bc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking updated successfully",
		Data:    reloaded,
	})
}

// Destroy removes a booking row entirely. Cancellation is the normal
// path; hard deletion is reserved for admins cleaning up mistakes.
func (bc *BookingController) Destroy(c *fiber.Ctx) error {
	permissionSvc := services.NewPermissionService()
	if !permissionSvc.CheckAnyPermission(c, constants.AdminPermissions...) {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Insufficient permissions",
			Data:    nil,
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking ID",
			Data:    nil,
		})
	}

	var booking bookingModel.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Booking not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	if err := bc.DB.Delete(&booking).Error; err != nil {
		logger.Error("Failed to delete booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete booking",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Booking %d deleted", booking.ID))

	return bc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking deleted successfully",
		Data:    nil,
	})
}
