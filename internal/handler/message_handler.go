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

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) Send(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.SendMessageInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	message, err := h.messageService.Send(c.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCelebrityNotFound):
			return middleware.NotFound("Celebrity not found")
		case errors.Is(err, service.ErrInvalidReference):
			return middleware.BadRequest("Message references a missing user or celebrity")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

// List returns the role-scoped message view: celebrities get their flat
// inbox, everyone else gets conversation threads.
func (h *MessageHandler) List(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	if user.Role == string(domain.RoleCelebrity) {
		messages, err := h.messageService.ListInbox(c.Context(), user)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"messages": messages})
	}

	conversations, err := h.messageService.ListConversations(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"conversations": conversations})
}

func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid message ID")
	}

	if err := h.messageService.MarkRead(c.Context(), user, id); err != nil {
		switch {
		case errors.Is(err, service.ErrMessageNotFound):
			return middleware.NotFound("Message not found")
		case errors.Is(err, service.ErrNotOwner):
			return middleware.Forbidden("Only the receiver can mark a message as read")
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MessageHandler) MarkConversationRead(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	celebrityID, err := uuid.Parse(c.Params("celebrityId"))
	if err != nil {
		return middleware.BadRequest("Invalid celebrity ID")
	}

	updated, err := h.messageService.MarkConversationRead(c.Context(), userID, celebrityID)
	if err != nil {
		if errors.Is(err, service.ErrCelebrityNotFound) {
			return middleware.NotFound("Celebrity not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"marked_read": updated,
	})
}
