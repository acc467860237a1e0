package handler

import (
	"github.com/gofiber/fiber/v2"

	"celebrity-connect/internal/middleware"
	"celebrity-connect/internal/service"
)

// SetupRoutes registers the full HTTP surface on the given app.
func SetupRoutes(app *fiber.App, h *Handlers, authService service.AuthService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.RefreshToken)

	celebrities := v1.Group("/celebrities")
	celebrities.Get("/", h.Celebrity.List)
	celebrities.Get("/:id", h.Celebrity.Get)

	protected := v1.Group("", middleware.AuthRequired(authService))

	protected.Post("/auth/logout", h.Auth.Logout)

	users := protected.Group("/users")
	users.Get("/me", h.User.GetMe)
	users.Put("/profile", h.User.UpdateProfile)
	users.Post("/profile/image", h.User.UploadProfileImage)
	users.Delete("/delete-account", h.User.DeleteAccount)

	protectedCelebrities := protected.Group("/celebrities")
	protectedCelebrities.Post("/", h.Celebrity.Create)
	protectedCelebrities.Put("/:id", middleware.RequireAnyRole("celebrity", "admin"), h.Celebrity.Update)
	protectedCelebrities.Delete("/:id", middleware.RequireRole("admin"), h.Celebrity.Delete)

	appointments := protected.Group("/appointments")
	appointments.Get("/my-appointments", h.Appointment.ListMine)
	appointments.Post("/", h.Appointment.Book)
	appointments.Put("/:id", middleware.RequireRole("admin"), h.Appointment.UpdateStatus)

	messages := protected.Group("/messages")
	messages.Get("/", h.Message.List)
	messages.Post("/", h.Message.Send)
	messages.Put("/:id/read", h.Message.MarkRead)
	messages.Put("/conversation/:celebrityId/mark-read", h.Message.MarkConversationRead)

	notifications := protected.Group("/notifications")
	notifications.Get("/my-notifications", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Put("/:id/read", h.Notification.MarkAsRead)
	notifications.Put("/mark-all-read", h.Notification.MarkAllAsRead)

	admin := protected.Group("/admin", middleware.RequireRole("admin"))
	admin.Get("/stats", h.Admin.GetStats)
	admin.Get("/users", h.Admin.ListUsers)
	admin.Delete("/users/:id", h.Admin.DeleteUser)
	admin.Get("/appointments", h.Admin.ListAppointments)
	admin.Post("/messages/reply", h.Admin.ReplyAsCelebrity)
}
