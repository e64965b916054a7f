package handlers

import (
	"vitrine/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// respondAppError translates a domain error into the JSON envelope used by
// every handler. Validation errors carry the offending field and reason so
// the client can attach the message to the right form input.
func respondAppError(c *fiber.Ctx, appErr *apperr.Error) error {
	if appErr.Kind == apperr.KindValidation {
		return c.Status(appErr.HTTPStatus()).JSON(fiber.Map{
			"message": "Validation failed",
			"errors": map[string]string{
				appErr.Field: appErr.Reason,
			},
			"error": appErr.Msg,
		})
	}
	return c.Status(appErr.HTTPStatus()).JSON(fiber.Map{
		"message": appErr.Msg,
		"error":   string(appErr.Kind),
	})
}

// actingUserID returns the authenticated user ID placed in the context by the
// JWT middleware, or an empty string when authentication did not run.
func actingUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}
