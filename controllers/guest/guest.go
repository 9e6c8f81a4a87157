package guest

import (
	"fmt"

	"lodge-booking/logger"
	guestModel "lodge-booking/models/guest"
	"lodge-booking/types"
	guestTypes "lodge-booking/types/guest"
	"lodge-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GuestController handles guest CRUD
type GuestController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewGuestController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *GuestController {
	return &GuestController{DB: db, Logger: asyncLogger}
}

// Index lists guests, optionally narrowed by a free-text search over
// name, email, phone and country
func (gc *GuestController) Index(c *fiber.Ctx) error {
	query := gc.DB.Order("last_name, first_name")

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR country ILIKE ?",
			like, like, like, like, like,
		)
	}

	var guests []guestModel.Guest
	if err := query.Find(&guests).Error; err != nil {
		logger.Error("Failed to list guests", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Guests retrieved successfully",
		Data:    guests,
	})
}

// Show returns a single guest by ID
func (gc *GuestController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid guest ID",
			Data:    nil,
		})
	}

	var guest guestModel.Guest
	if err := gc.DB.First(&guest, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Guest not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find guest", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Guest retrieved successfully",
		Data:    guest,
	})
}

// Store creates a new guest
func (gc *GuestController) Store(c *fiber.Ctx) error {
	var req guestTypes.GuestRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Status:  fiber.StatusUnprocessableEntity,
			Message: "Validation failed",
			Errors:  errs,
			Data:    nil,
		})
	}

	guest := guestModel.Guest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if req.Email != "" {
		guest.Email = &req.Email
	}
	if req.Phone != "" {
		guest.Phone = &req.Phone
	}
	if req.Country != "" {
		guest.Country = &req.Country
	}
	if req.Notes != "" {
		guest.Notes = &req.Notes
	}

	if err := gc.DB.Create(&guest).Error; err != nil {
		logger.Error("Failed to create guest", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save guest",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Guest created successfully with ID: %d", guest.ID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Guest created successfully",
		Data:    guest,
	})
}

// Update edits an existing guest
func (gc *GuestController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid guest ID",
			Data:    nil,
		})
	}

	var guest guestModel.Guest
	if err := gc.DB.First(&guest, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Guest not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find guest", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	var req guestTypes.GuestRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Status:  fiber.StatusUnprocessableEntity,
			Message: "Validation failed",
			Errors:  errs,
			Data:    nil,
		})
	}

	guest.FirstName = req.FirstName
	guest.LastName = req.LastName
	if req.Email != "" {
		guest.Email = &req.Email
	}
	if req.Phone != "" {
		guest.Phone = &req.Phone
	}
	if req.Country != "" {
		guest.Country = &req.Country
	}
	if req.Notes != "" {
		guest.Notes = &req.Notes
	}

	if err := gc.DB.Save(&guest).Error; err != nil {
		logger.Error("Failed to update guest", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update guest",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Guest updated successfully",
		Data:    guest,
	})
}

// Destroy removes a guest; guests with bookings are protected by the
// database constraint
func (gc *GuestController) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid guest ID",
			Data:    nil,
		})
	}

	var guest guestModel.Guest
	if err := gc.DB.First(&guest, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Guest not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find guest", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	if err := gc.DB.Delete(&guest).Error; err != nil {
		logger.Error("Failed to delete guest", err)
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Guest cannot be deleted while bookings reference them",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Guest deleted successfully",
		Data:    nil,
	})
}
