package routes

import (
	"lodge-booking/constants"
	"lodge-booking/controllers/auth"
	"lodge-booking/controllers/booking"
	"lodge-booking/controllers/guest"
	"lodge-booking/controllers/room"
	"lodge-booking/controllers/schedule"
	"lodge-booking/controllers/user"
	"lodge-booking/logger"
	"lodge-booking/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	authController := auth.NewAuthController(db, asyncLogger)
	bookingController := booking.NewBookingController(db, asyncLogger)
	roomController := room.NewRoomController(db, asyncLogger)
	guestController := guest.NewGuestController(db, asyncLogger)
	scheduleController := schedule.NewScheduleController(db)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "lodge-booking",
			"status":  "ok",
		})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/login", authController.Login)

	/*=============================================================================
	| Protected Routes
	===============================================================================*/
	authGroup := api.Group("/auth").Use(middleware.RequireAuthentication())
	authGroup.Post("/register", middleware.RequirePermissions(
		constants.AdminPermissions...,
	), authController.Register)
	authGroup.Get("/profile", user.GetUserInfo)
	authGroup.Post("/logout", authController.LogOut)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/bookings").Use(middleware.RequirePermissions(
		constants.BookingWritePermissions...,
	))

	bookingGroup.Get("/", bookingController.Index)
	bookingGroup.Get("/:id", bookingController.Show)
	bookingGroup.Post("/", bookingController.Store)
	bookingGroup.Put("/:id", bookingController.Update)
	bookingGroup.Delete("/:id", bookingController.Destroy)

	// Lifecycle transitions
	bookingGroup.Post("/:id/confirm", bookingController.Confirm)
	bookingGroup.Post("/:id/check-in", bookingController.CheckIn)
	bookingGroup.Post("/:id/check-out", bookingController.CheckOut)
	bookingGroup.Post("/:id/cancel", bookingController.Cancel)

	// Free-text inquiry parsing
	bookingGroup.Post("/parse-inquiry", bookingController.ParseInquiry)

	/*=============================================================================
	| Calendar Routes
	===============================================================================*/
	api.Get("/schedule/overview", middleware.RequirePermissions(
		constants.BookingWritePermissions...,
	), scheduleController.Overview)

	/*=============================================================================
	| Room Routes
	===============================================================================*/
	roomGroup := api.Group("/rooms").Use(middleware.RequirePermissions(
		constants.BookingWritePermissions...,
	))

	roomGroup.Get("/", roomController.Index)
	roomGroup.Get("/:id", roomController.Show)
	roomGroup.Post("/", middleware.RequirePermissions(constants.AdminPermissions...), roomController.Store)
	roomGroup.Put("/:id", middleware.RequirePermissions(constants.AdminPermissions...), roomController.Update)
	roomGroup.Delete("/:id", middleware.RequirePermissions(constants.AdminPermissions...), roomController.Destroy)

	/*=============================================================================
	| Guest Routes
	===============================================================================*/
	guestGroup := api.Group("/guests").Use(middleware.RequirePermissions(
		constants.BookingWritePermissions...,
	))

	guestGroup.Get("/", guestController.Index)
	guestGroup.Get("/:id", guestController.Show)
	guestGroup.Post("/", guestController.Store)
	guestGroup.Put("/:id", guestController.Update)
	guestGroup.Delete("/:id", guestController.Destroy)
}
