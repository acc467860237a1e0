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

type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

func (h *AppointmentHandler) Book(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.BookAppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	appointment, err := h.appointmentService.Book(c.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCelebrityNotFound):
			return middleware.NotFound("Celebrity not found")
		case errors.Is(err, service.ErrCelebrityUnavailable):
			return middleware.Conflict("Celebrity is not available for booking")
		case errors.Is(err, service.ErrBookingTargetMissing):
			return middleware.BadRequest("Either celebrity_id or celebrity_name is required")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

func (h *AppointmentHandler) ListMine(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	appointments, err := h.appointmentService.ListForUser(c.Context(), user)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(appointments)
}

func (h *AppointmentHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid appointment ID")
	}

	var input domain.UpdateAppointmentStatusInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	appointment, err := h.appointmentService.SetStatus(c.Context(), id, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAppointmentNotFound):
			return middleware.NotFound("Appointment not found")
		case errors.Is(err, service.ErrInvalidStatus):
			return middleware.BadRequest("Status must be one of: pending, approved, rejected, completed")
		case errors.Is(err, service.ErrInvalidTransition):
			return middleware.Conflict("Appointment status cannot change from its current state")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(appointment)
}
