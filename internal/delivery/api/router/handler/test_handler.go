package handler

import (
	"marketplace/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware echoes the identity the auth middleware extracted from the token.
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{
		"message": "Authentication middleware test successful",
		"userID":  actor.UserID,
		"email":   actor.Email,
		"type":    actor.Type,
		"status":  "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.OK(c, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}
