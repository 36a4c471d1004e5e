package handlers

import (
	"bookswap/internal/enhance"
	"bookswap/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EnhanceHandler exposes the AI description helper. Upstream failures are
// invisible here: the service answers with its fallback text.
type EnhanceHandler struct {
	service  *enhance.Service
	validate *validation.Validator
	log      *zap.Logger
}

// NewEnhanceHandler creates an EnhanceHandler.
func NewEnhanceHandler(service *enhance.Service, validate *validation.Validator, log *zap.Logger) *EnhanceHandler {
	return &EnhanceHandler{service: service, validate: validate, log: log}
}

// RegisterRoutes mounts the description and insights routes on router.
func (h *EnhanceHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/enhance/description", h.HandleEnhanceDescription)
	router.Get("/insights", h.HandleGetInsights)
}

// EnhanceRequest is the draft to polish.
type EnhanceRequest struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author"`
	Description string `json:"description" validate:"required"`
}

// HandleEnhanceDescription returns a polished description, or the draft when the model is unavailable.
func (h *EnhanceHandler) HandleEnhanceDescription(c *fiber.Ctx) error {
	var req EnhanceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondError(c, h.log, err, "Validation failed")
	}

	text := h.service.EnhanceDescription(c.UserContext(), req.Title, req.Author, req.Description)
	return c.JSON(fiber.Map{
		"description": text,
		"enhanced":    text != req.Description,
	})
}

// InsightsQuery names the book to describe.
type InsightsQuery struct {
	Title  string `query:"title" validate:"required"`
	Author string `query:"author"`
}

// HandleGetInsights returns a short note about a book, empty when the model is unavailable.
func (h *EnhanceHandler) HandleGetInsights(c *fiber.Ctx) error {
	var q InsightsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid query",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(q); err != nil {
		return respondError(c, h.log, err, "Validation failed")
	}

	return c.JSON(fiber.Map{
		"insights": h.service.Insights(c.UserContext(), q.Title, q.Author),
	})
}
