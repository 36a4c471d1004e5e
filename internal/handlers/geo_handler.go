package handlers

import (
	"bookswap/internal/geography"
	"bookswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GeoHandler serves the division > district > upazila reference tree.
type GeoHandler struct{}

// NewGeoHandler creates a GeoHandler.
func NewGeoHandler() *GeoHandler {
	return &GeoHandler{}
}

// RegisterRoutes mounts the /geo routes on router.
func (h *GeoHandler) RegisterRoutes(router fiber.Router) {
	geoRoutes := router.Group("/geo")
	geoRoutes.Get("/divisions", h.HandleGetDivisions)
	geoRoutes.Get("/divisions/:id/districts", h.HandleGetDistricts)
	geoRoutes.Get("/districts/:id/upazilas", h.HandleGetUpazilas)
	geoRoutes.Get("/options", h.HandleGetOptions)
}

// HandleGetDivisions lists every division.
func (h *GeoHandler) HandleGetDivisions(c *fiber.Ctx) error {
	return c.JSON(geography.Divisions())
}

// HandleGetDistricts lists the districts of a division.
func (h *GeoHandler) HandleGetDistricts(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := geography.DivisionByID(id); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Division " + id + " not found",
		})
	}
	return c.JSON(geography.Districts(id))
}

// HandleGetUpazilas lists the upazilas of a district.
func (h *GeoHandler) HandleGetUpazilas(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := geography.DistrictByID(id); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "District " + id + " not found",
		})
	}
	return c.JSON(geography.Upazilas(id))
}

// OptionsQuery is a partial cascading location choice.
type OptionsQuery struct {
	DivisionID string `query:"division"`
	DistrictID string `query:"district"`
	UpazilaID  string `query:"upazila"`
}

// OptionsResponse carries the choices for each level of a selection.
type OptionsResponse struct {
	Selection geography.Selection  `json:"selection"`
	Options   geography.Options    `json:"options"`
	Complete  bool                 `json:"complete"`
	Location  *models.LocationData `json:"location,omitempty"`
}

// HandleGetOptions resolves a cascading selection and returns what a form
// may offer next. A child given without its parent is dropped.
func (h *GeoHandler) HandleGetOptions(c *fiber.Ctx) error {
	var q OptionsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid query",
			"error":   err.Error(),
		})
	}

	var sel geography.Selection
	if q.DivisionID != "" {
		sel.SetDivision(q.DivisionID)
		if q.DistrictID != "" {
			sel.SetDistrict(q.DistrictID)
			if q.UpazilaID != "" {
				sel.SetUpazila(q.UpazilaID)
			}
		}
	}

	resp := OptionsResponse{Selection: sel, Options: sel.Options()}
	if sel.Complete() {
		loc := sel.Location()
		if !geography.IsPath(loc) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Upazila, district and division do not match",
			})
		}
		resp.Complete = true
		resp.Location = &loc
	}
	return c.JSON(resp)
}
