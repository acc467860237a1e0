package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"celebrity-connect/internal/domain"
	"celebrity-connect/internal/middleware"
	"celebrity-connect/internal/pkg/validation"
	"celebrity-connect/internal/service"
)

type AdminHandler struct {
	userService        service.UserService
	appointmentService service.AppointmentService
	messageService     service.MessageService
	dashboardService   service.DashboardService
}

func NewAdminHandler(userService service.UserService, appointmentService service.AppointmentService, messageService service.MessageService, dashboardService service.DashboardService) *AdminHandler {
	return &AdminHandler{
		userService:        userService,
		appointmentService: appointmentService,
		messageService:     messageService,
		dashboardService:   dashboardService,
	}
}

func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetStats(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.userService.List(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	admin := middleware.GetCurrentUser(c)
	if admin == nil {
		return middleware.Unauthorized("User not found")
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	result, err := h.userService.DeleteByAdmin(c.Context(), admin, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return middleware.NotFound("User not found")
		case errors.Is(err, service.ErrCannotDeleteSelf):
			return middleware.Forbidden("Use account settings to delete your own account")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User deleted",
		"deleted": result,
	})
}

func (h *AdminHandler) ListAppointments(c *fiber.Ctx) error {
	var status *domain.AppointmentStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.AppointmentStatus(raw)
		if !s.IsValid() {
			return middleware.BadRequest("Status must be one of: pending, approved, rejected, completed")
		}
		status = &s
	}

	appointments, err := h.appointmentService.ListAll(c.Context(), status)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(appointments)
}

// ReplyAsCelebrity lets an administrator answer a fan on a celebrity's
// behalf; the reply threads into the fan's existing conversation.
func (h *AdminHandler) ReplyAsCelebrity(c *fiber.Ctx) error {
	var input domain.AdminReplyInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	message, err := h.messageService.ReplyAsCelebrity(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCelebrityNotFound):
			return middleware.NotFound("Celebrity not found")
		case errors.Is(err, service.ErrUserNotFound):
			return middleware.NotFound("Receiver not found")
		case errors.Is(err, service.ErrInvalidReference):
			return middleware.BadRequest("Message references a missing user or celebrity")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}
