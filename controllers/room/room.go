package room

import (
	"fmt"

	"lodge-booking/logger"
	roomModel "lodge-booking/models/room"
	"lodge-booking/types"
	roomTypes "lodge-booking/types/room"
	"lodge-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RoomController handles room CRUD
type RoomController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewRoomController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *RoomController {
	return &RoomController{DB: db, Logger: asyncLogger}
}

// Index lists all rooms ordered by number
func (rc *RoomController) Index(c *fiber.Ctx) error {
	var rooms []roomModel.Room
	if err := rc.DB.Order("number").Find(&rooms).Error; err != nil {
		logger.Error("Failed to list rooms", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Rooms retrieved successfully",
		Data:    rooms,
	})
}

// Show returns a single room by ID
func (rc *RoomController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid room ID",
			Data:    nil,
		})
	}

	var room roomModel.Room
	if err := rc.DB.First(&room, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Room not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find room", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Room retrieved successfully",
		Data:    room,
	})
}

// Store creates a new room
func (rc *RoomController) Store(c *fiber.Ctx) error {
	var req roomTypes.RoomRequest
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

	capacity := req.Capacity
	if capacity == 0 {
		capacity = 2
	}

	room := roomModel.Room{
		Number:   req.Number,
		Name:     req.Name,
		Capacity: capacity,
		Floor:    req.Floor,
		IsActive: true,
	}
	if req.Description != "" {
		room.Description = &req.Description
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}

	if err := rc.DB.Create(&room).Error; err != nil {
		logger.Error("Failed to create room", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save room",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Room created successfully with ID: %d", room.ID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Room created successfully",
		Data:    room,
	})
}

// Update edits an existing room
func (rc *RoomController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid room ID",
			Data:    nil,
		})
	}

	var room roomModel.Room
	if err := rc.DB.First(&room, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Room not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find room", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	var req roomTypes.RoomRequest
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

	room.Number = req.Number
	room.Name = req.Name
	if req.Description != "" {
		room.Description = &req.Description
	}
	if req.Capacity != 0 {
		room.Capacity = req.Capacity
	}
	if req.Floor != nil {
		room.Floor = req.Floor
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}

	if err := rc.DB.Save(&room).Error; err != nil {
		logger.Error("Failed to update room", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update room",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Room updated successfully",
		Data:    room,
	})
}

// Destroy removes a room; rooms with bookings are protected by the
// database constraint
func (rc *RoomController) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid room ID",
			Data:    nil,
		})
	}

	var room roomModel.Room
	if err := rc.DB.First(&room, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Room not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find room", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	if err := rc.DB.Delete(&room).Error; err != nil {
		logger.Error("Failed to delete room", err)
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Room cannot be deleted while bookings reference it",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Room deleted successfully",
		Data:    nil,
	})
}
