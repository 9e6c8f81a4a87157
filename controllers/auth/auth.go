package auth

import (
	"fmt"
	"os"
	"time"

	"lodge-booking/constants"
	"lodge-booking/logger"
	userModel "lodge-booking/models/user"
	"lodge-booking/types"
	"lodge-booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{db: db, loggerInstance: asyncLogger}
}

// Helper function to set secure cookies based on environment
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: false,
		Secure:   isProduction, // Only secure in production (HTTPS)
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

// Register creates a staff account. Only admins and managers may add
// staff; the role decides the granted permissions.
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req types.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Message: "Validation failed",
			Status:  fiber.StatusUnprocessableEntity,
			Errors:  errs,
		})
	}

	var existing userModel.User
	err := h.db.Where("username = ?", req.Username).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Message: "Username already taken",
			Status:  fiber.StatusConflict,
		})
	} else if err != gorm.ErrRecordNotFound {
		logger.Error("Database error while checking existing user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to create user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	role := req.Role
	if role == "" {
		role = "frontdesk"
	}
	permissions, ok := constants.RolePermissions[role]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: fmt.Sprintf("Unknown role %q", role),
			Status:  fiber.StatusBadRequest,
		})
	}

	user := userModel.User{
		Uuid:         uuid.NewString(),
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Permissions:  permissions,
	}
	if req.Email != "" {
		user.Email = &req.Email
	}

	if err := h.db.Create(&user).Error; err != nil {
		logger.Error("Failed to create user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to create user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Staff account created: %s (%s)", user.Username, role))

	result := c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "User registered successfully",
		Status:  fiber.StatusCreated,
		Data:    user,
	})
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	return result
}

// Login authenticates a staff account and issues a JWT
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req types.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	var user userModel.User
	if err := h.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		result := c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid username or password",
			Status:  fiber.StatusUnauthorized,
		})
		h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
		return result
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		result := c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid username or password",
			Status:  fiber.StatusUnauthorized,
		})
		h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
		return result
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to generate token",
			Status:  fiber.StatusInternalServerError,
		})
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := h.db.Save(&user).Error; err != nil {
		logger.Error("Failed to record last login", err)
	}

	h.setSecureCookie(c, "access_token", token, 24*60*60)

	logger.Success(fmt.Sprintf("User %s logged in", user.Username))

	result := c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   token,
		Data:    user,
	})
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	return result
}

// LogOut clears the access token cookie
func (h *AuthController) LogOut(c *fiber.Ctx) error {
	h.setSecureCookie(c, "access_token", "", -1)

	result := c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Logged out successfully",
		Status:  fiber.StatusOK,
	})
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	return result
}
