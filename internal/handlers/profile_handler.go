package handlers

import (
	"io"
	"log"

	"vitrine/internal/apperr"
	"vitrine/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles HTTP requests for profile and avatar management.
// All routes operate on the authenticated user ("me"); there is no path that
// acts on another user.
type ProfileHandler struct {
	profileService *services.ProfileService
	avatarService  *services.AvatarService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *services.ProfileService, avatarService *services.AvatarService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		avatarService:  avatarService,
	}
}

// RegisterRoutes registers the profile routes with the Fiber app. The caller
// is expected to wrap the router with the JWT middleware.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router) {
	me := router.Group("/users/me")
	me.Get("/", h.HandleGetProfile)
	me.Get("/checklist", h.HandleGetChecklist)
	me.Patch("/nome", h.HandleUpdateName)
	me.Patch("/telefone", h.HandleUpdatePhone)
	me.Patch("/localizacao", h.HandleUpdateLocation)
	me.Patch("/email", h.HandleUpdateEmail)
	me.Patch("/avatar", h.HandleUploadAvatar)
	me.Delete("/avatar", h.HandleRemoveAvatar)
}

// HandleGetProfile returns the authenticated user's projection.
func (h *ProfileHandler) HandleGetProfile(c *fiber.Ctx) error {
	userID := actingUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	user, err := h.profileService.GetProfile(userID)
	if err != nil {
		return h.respondServiceError(c, err, "Could not retrieve profile")
	}
	return c.JSON(fiber.Map{"user": user})
}

// HandleGetChecklist returns the derived profile-completeness checklist.
func (h *ProfileHandler) HandleGetChecklist(c *fiber.Ctx) error {
	userID := actingUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	items, err := h.profileService.GetChecklist(userID)
	if err != nil {
		return h.respondServiceError(c, err, "Could not derive checklist")
	}
	return c.JSON(fiber.Map{"checklist": items})
}

// UpdateNameRequest represents the request body for a name change.
type UpdateNameRequest struct {
	Nome string `json:"nome" validate:"required"`
}

// HandleUpdateName updates the authenticated user's display name.
func (h *ProfileHandler) HandleUpdateName(c *fiber.Ctx) error {
	userID := actingUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	var req UpdateNameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user, err := h.profileService.UpdateName(userID, req.Nome)
	if err != nil {
		return h.respondServiceError(c, err, "Could not update name")
	}
	return c.JSON(fiber.Map{"user": user})
}

// UpdatePhoneRequest represents the request body for a phone change.
type UpdatePhoneRequest struct {
	Telefone string `json:"telefone" validate:"required"`
}

// HandleUpdatePhone updates the authenticated user's phone number.
func (h *ProfileHandler) HandleUpdatePhone(c *fiber.Ctx) error {
	userID := actingUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	var req UpdatePhoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user, err := h.profileService.UpdatePhone(userID, req.Telefone)
	if err != nil {
		return h.respondServiceError(c, err, "Could not update phone")
	}
	return c.JSON(fiber.Map{"user": user})
}

// UpdateLocationRequest represents the request body for a location change.
type UpdateLocationRequest struct {
	Cidade string `json:"cidade" validate:"required"`
	Estado string `json:"estado" validate:"required"`
}

// HandleUpdateLocation updates the authenticated user's cidade/estado pair.
func (h *ProfileHandler) HandleUpdateLocation(c *fiber.Ctx) error {
	userID := actingUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	var req UpdateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user, err := h.profileService.UpdateLocation(userID, req.Cidade, req.Estado)
	if err != nil {
		return h.respondServiceError(c, err, "Could not update location")
	}
	return c.JSON(fiber.Map{"user": user})
}

// UpdateEmailRequest represents the request body for an email change. The
// current password must accompany the new address.
type UpdateEmailRequest struct {
	Email           string `json:"email" validate:"required"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
}

// HandleUpdateEmail updates the authenticated user's email after verifying
// the current password.
func (h *ProfileHandler) HandleUpdateEmail(c *fiber.Ctx) error {
	userID := actingUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	var req UpdateEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user, err := h.profileService.UpdateEmail(userID, req.Email, req.CurrentPassword)
	if err != nil {
		return h.respondServiceError(c, err, "Could not update email")
	}
	return c.JSON(fiber.Map{"user": user})
}

// HandleUploadAvatar receives a multipart file, validates it and replaces the
// authenticated user's avatar.
func (h *ProfileHandler) HandleUploadAvatar(c *fiber.Ctx) error {
	userID := actingUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondAppError(c, apperr.MissingFile("a file field named 'file' is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file for user %s: %v", userID, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not read uploaded file",
			"error":   err.Error(),
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Error reading uploaded file for user %s: %v", userID, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not read uploaded file",
			"error":   err.Error(),
		})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	user, err := h.avatarService.UploadAvatar(c.Context(), userID, data, contentType)
	if err != nil {
		return h.respondServiceError(c, err, "Could not upload avatar")
	}
	return c.JSON(fiber.Map{"user": user})
}

// HandleRemoveAvatar clears the authenticated user's avatar. Removing when no
// avatar exists is a harmless no-op.
func (h *ProfileHandler) HandleRemoveAvatar(c *fiber.Ctx) error {
	userID := actingUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	user, err := h.avatarService.RemoveAvatar(c.Context(), userID)
	if err != nil {
		return h.respondServiceError(c, err, "Could not remove avatar")
	}
	return c.JSON(fiber.Map{"user": user})
}

// respondServiceError maps service errors onto the response envelope.
func (h *ProfileHandler) respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	if appErr, ok := apperr.As(err); ok {
		return respondAppError(c, appErr)
	}
	log.Printf("Unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": fallback,
		"error":   err.Error(),
	})
}
