package handlers

import (
	"errors"
	"fmt"
	"log"

	"vitrine/internal/apperr"
	"vitrine/internal/models"
	"vitrine/internal/repositories"
	"vitrine/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OfferHandler handles HTTP requests for offer listings.
type OfferHandler struct {
	service  *services.OfferService
	validate *validator.Validate
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(service *services.OfferService) *OfferHandler {
	return &OfferHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the offer routes with the Fiber app.
func (h *OfferHandler) RegisterRoutes(router fiber.Router) {
	offerRoutes := router.Group("/offers")
	offerRoutes.Get("/", h.HandleGetOffers)
	offerRoutes.Get("/:id", h.HandleGetOfferByID)
	offerRoutes.Post("/", h.HandleCreateOffer)
	offerRoutes.Put("/:id", h.HandleUpdateOffer)
	offerRoutes.Delete("/:id", h.HandleDeleteOffer)
}

// HandleGetOffers retrieves all offers.
func (h *OfferHandler) HandleGetOffers(c *fiber.Ctx) error {
	offers, err := h.service.GetAllOffers()
	if err != nil {
		log.Printf("Error getting all offers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve offers",
			"error":   err.Error(),
		})
	}
	return c.JSON(offers)
}

// HandleGetOfferByID retrieves a single offer by its ID.
func (h *OfferHandler) HandleGetOfferByID(c *fiber.Ctx) error {
	offerID := c.Params("id")
	offer, err := h.service.GetOfferByID(offerID)
	if err != nil {
		log.Printf("Error getting offer by ID %s: %v", offerID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Offer with ID %s not found", offerID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve offer",
			"error":   err.Error(),
		})
	}
	return c.JSON(offer)
}

// HandleCreateOffer creates a new offer owned by the authenticated user.
func (h *OfferHandler) HandleCreateOffer(c *fiber.Ctx) error {
	userID := actingUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	var offer models.Offer
	if err := c.BodyParser(&offer); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(offer); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.service.CreateOffer(userID, &offer); err != nil {
		log.Printf("Error creating offer for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create offer",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(offer)
}

// HandleUpdateOffer updates an offer owned by the authenticated user.
func (h *OfferHandler) HandleUpdateOffer(c *fiber.Ctx) error {
	userID := actingUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	var offer models.Offer
	if err := c.BodyParser(&offer); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	offer.ID = c.Params("id")

	if err := h.service.UpdateOffer(userID, &offer); err != nil {
		return h.respondOfferError(c, err, "Could not update offer")
	}
	return c.JSON(offer)
}

// HandleDeleteOffer deletes an offer owned by the authenticated user.
func (h *OfferHandler) HandleDeleteOffer(c *fiber.Ctx) error {
	userID := actingUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	offerID := c.Params("id")
	if err := h.service.DeleteOffer(userID, offerID); err != nil {
		return h.respondOfferError(c, err, "Could not delete offer")
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Offer %s deleted", offerID),
	})
}

// respondOfferError maps offer service errors onto the response envelope.
func (h *OfferHandler) respondOfferError(c *fiber.Ctx, err error, fallback string) error {
	if appErr, ok := apperr.As(err); ok {
		return respondAppError(c, appErr)
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Offer not found",
		})
	}
	log.Printf("Unexpected offer error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": fallback,
		"error":   err.Error(),
	})
}
