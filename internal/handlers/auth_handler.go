package handlers

import (
	"log"

	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles the token issuance endpoints.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the token routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	tokens := router.Group("/token")
	tokens.Post("/", h.HandleObtainPair)
	tokens.Post("/refresh", h.HandleRefresh)
	tokens.Post("/verify", h.HandleVerify)
}

// TokenRequest is the request body for obtaining a token pair.
type TokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleObtainPair authenticates by credentials and issues an
// access/refresh token pair.
func (h *AuthHandler) HandleObtainPair(c *fiber.Ctx) error {
	var req TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return structValidationError(c, err)
	}

	access, refresh, err := h.authService.ObtainTokenPair(req.Username, req.Password)
	if err != nil {
		log.Printf("Error during token obtain for user %s: %v", req.Username, err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"access":  access,
		"refresh": refresh,
	})
}

// RefreshRequest is the request body for refreshing an access token.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// HandleRefresh exchanges a refresh token for a new access token.
func (h *AuthHandler) HandleRefresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return structValidationError(c, err)
	}

	access, err := h.authService.RefreshAccessToken(req.Refresh)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid or expired refresh token",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"access": access,
	})
}

// VerifyRequest is the request body for verifying a token.
type VerifyRequest struct {
	Token string `json:"token" validate:"required"`
}

// HandleVerify checks a token's signature and expiry. A valid token gets
// an empty 200 body, an invalid one a 401.
func (h *AuthHandler) HandleVerify(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return structValidationError(c, err)
	}

	if _, err := h.authService.ValidateToken(req.Token); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid or expired token",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{})
}
