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

type CelebrityHandler struct {
	celebrityService service.CelebrityService
}

func NewCelebrityHandler(celebrityService service.CelebrityService) *CelebrityHandler {
	return &CelebrityHandler{celebrityService: celebrityService}
}

func (h *CelebrityHandler) List(c *fiber.Ctx) error {
	filter := domain.CelebrityFilter{
		Search:        c.Query("search"),
		Category:      c.Query("category"),
		AvailableOnly: c.Query("available") == "true",
	}

	celebrities, err := h.celebrityService.List(c.Context(), filter)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(celebrities)
}

func (h *CelebrityHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid celebrity ID")
	}

	celebrity, err := h.celebrityService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCelebrityNotFound) {
			return middleware.NotFound("Celebrity not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(celebrity)
}

func (h *CelebrityHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}
	if !user.IsAdmin() {
		return middleware.Forbidden("Celebrity profiles are created by administrators. Contact support to apply for a celebrity account.")
	}

	var input domain.CreateCelebrityInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	celebrity, err := h.celebrityService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrUsernameExists) || errors.Is(err, service.ErrEmailExists) {
			return middleware.Conflict(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(celebrity)
}

func (h *CelebrityHandler) Update(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid celebrity ID")
	}

	var input domain.UpdateCelebrityInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	celebrity, err := h.celebrityService.Update(c.Context(), user, id, input)
	if err != nil {
		if errors.Is(err, service.ErrCelebrityNotFound) {
			return middleware.NotFound("Celebrity not found")
		}
		if errors.Is(err, service.ErrNotOwner) {
			return middleware.Forbidden("You can only update your own celebrity profile")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(celebrity)
}

func (h *CelebrityHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid celebrity ID")
	}

	result, err := h.celebrityService.Delete(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCelebrityNotFound) {
			return middleware.NotFound("Celebrity not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Celebrity deleted",
		"deleted": result,
	})
}
