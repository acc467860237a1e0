package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"celebrity-connect/internal/domain"
	"celebrity-connect/internal/middleware"
	"celebrity-connect/internal/pkg/validation"
	"celebrity-connect/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	var input domain.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	updated, err := h.userService.UpdateProfile(c.Context(), user.ID, input)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			return middleware.Conflict("Email already registered")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

// UploadProfileImage accepts a multipart "image" file and stores it in the
// object store.
func (h *UserHandler) UploadProfileImage(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return middleware.BadRequest("Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Unable to read uploaded file")
	}
	defer file.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	updated, err := h.userService.SetProfileImage(c.Context(), user.ID, fileHeader.Size, mimeType, file)
	if err != nil {
		if errors.Is(err, service.ErrStorageUnavailable) {
			return middleware.NewError(fiber.StatusServiceUnavailable, "Media storage is not available")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *UserHandler) DeleteAccount(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	result, err := h.userService.DeleteAccount(c.Context(), user)
	if err != nil {
		if errors.Is(err, service.ErrAdminSelfDelete) {
			return middleware.Forbidden("Admin accounts cannot be self-deleted")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Account deleted",
		"deleted": result,
	})
}
