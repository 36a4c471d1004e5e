package handlers

import (
	"errors"

	"bookswap/internal/errs"
	"bookswap/internal/filter"
	"bookswap/internal/geography"
	"bookswap/internal/middleware"
	"bookswap/internal/models"
	"bookswap/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ListingHandler handles HTTP requests for book listings.
type ListingHandler struct {
	service *services.ListingService
	view    *services.ListingsView
	log     *zap.Logger
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(service *services.ListingService, view *services.ListingsView, log *zap.Logger) *ListingHandler {
	return &ListingHandler{
		service: service,
		view:    view,
		log:     log,
	}
}

// RegisterRoutes registers the listing routes. Writes go through auth.
func (h *ListingHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	listingRoutes := router.Group("/listings")
	listingRoutes.Get("/", h.HandleGetListings)
	listingRoutes.Get("/:id", h.HandleGetListingByID)
	listingRoutes.Post("/", auth, h.HandleCreateListing)
	listingRoutes.Patch("/:id", auth, h.HandleUpdateListing)
	listingRoutes.Delete("/:id", auth, h.HandleDeleteListing)
}

// HandleGetListings returns listings newest first, narrowed by q, division, district and upazila.
func (h *ListingHandler) HandleGetListings(c *fiber.Ctx) error {
	var q filter.Query
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid query",
			"error":   err.Error(),
		})
	}

	listings, err := h.view.Query(c.UserContext(), q)
	if err != nil {
		return respondError(c, h.log, err, "Could not retrieve listings")
	}
	return c.JSON(listings)
}

// HandleGetListingByID retrieves a single listing by its ID.
func (h *ListingHandler) HandleGetListingByID(c *fiber.Ctx) error {
	listing, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, "Could not retrieve listing")
	}
	return c.JSON(listing)
}

// HandleCreateListing creates a listing owned by the authenticated user.
func (h *ListingHandler) HandleCreateListing(c *fiber.Ctx) error {
	var in models.NewListing
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, err)
	}
	in.SellerID = middleware.UserID(c)

	if err := checkLocation(in.Location); err != nil {
		return respondError(c, h.log, err, "Validation failed")
	}

	listing, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err, "Could not create listing")
	}
	return c.Status(fiber.StatusCreated).JSON(listing)
}

// HandleUpdateListing applies a partial update. Only the seller may update a listing.
func (h *ListingHandler) HandleUpdateListing(c *fiber.Ctx) error {
	id := c.Params("id")
	var patch models.ListingPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, err)
	}
	if patch.Location != nil {
		if err := checkLocation(*patch.Location); err != nil {
			return respondError(c, h.log, err, "Validation failed")
		}
	}

	if err := h.service.Authorize(c.UserContext(), middleware.UserID(c), id); err != nil {
		return respondError(c, h.log, err, "Could not update listing")
	}
	listing, err := h.service.Update(c.UserContext(), id, patch)
	if err != nil {
		return respondError(c, h.log, err, "Could not update listing")
	}
	return c.JSON(listing)
}

// HandleDeleteListing removes a listing. Deleting an unknown ID succeeds.
func (h *ListingHandler) HandleDeleteListing(c *fiber.Ctx) error {
	id := c.Params("id")
	err := h.service.Authorize(c.UserContext(), middleware.UserID(c), id)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return c.SendStatus(fiber.StatusNoContent)
	case err != nil:
		return respondError(c, h.log, err, "Could not delete listing")
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err, "Could not delete listing")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// checkLocation rejects a complete triple that is not a path in the reference
// tree. Missing parts are left to struct validation.
func checkLocation(loc models.LocationData) error {
	if loc.DivisionID == "" || loc.DistrictID == "" || loc.UpazilaID == "" {
		return nil
	}
	if !geography.IsPath(loc) {
		return errs.NewValidationError("location", "is not a known division, district and upazila")
	}
	return nil
}
