package handlers

import (
	"bookswap/internal/services"
	"bookswap/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles HTTP requests for login, logout and user profiles.
type AuthHandler struct {
	authService *services.AuthService
	listings    *services.ListingService
	validate    *validation.Validator
	log         *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, listings *services.ListingService, validate *validation.Validator, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		listings:    listings,
		validate:    validate,
		log:         log,
	}
}

// RegisterRoutes registers the authentication and user routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/logout", h.HandleLogout)
	authRoutes.Get("/me", h.HandleMe)

	userRoutes := router.Group("/users")
	userRoutes.Get("/:id", h.HandleGetUser)
	userRoutes.Get("/:id/listings", h.HandleGetUserListings)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email string `json:"email" validate:"required"`
}

// HandleLogin logs in by email, creating the account on first use, and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondError(c, h.log, err, "Validation failed")
	}

	user, err := h.authService.Login(c.UserContext(), req.Email)
	if err != nil {
		return respondError(c, h.log, err, "Login failed")
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		return respondError(c, h.log, err, "Could not issue token")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// HandleLogout clears the current session.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.UserContext()); err != nil {
		return respondError(c, h.log, err, "Logout failed")
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// HandleMe returns the user in the session slot; user is null when nobody is logged in.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	user, err := h.authService.CurrentUser(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, "Could not read session")
	}
	return c.JSON(fiber.Map{"user": user})
}

// HandleGetUser retrieves a user profile by UID.
func (h *AuthHandler) HandleGetUser(c *fiber.Ctx) error {
	user, err := h.authService.GetUserProfile(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, "Could not retrieve user")
	}
	return c.JSON(user)
}

// HandleGetUserListings retrieves a seller's listings in creation order.
func (h *AuthHandler) HandleGetUserListings(c *fiber.Ctx) error {
	listings, err := h.listings.ListBySeller(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, "Could not retrieve listings")
	}
	return c.JSON(listings)
}
