package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	authContextKey = "auth"
	bearerPrefix   = "Bearer "
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer token and stores the caller identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrMissingAuthHeader
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return domainerrors.ErrInvalidAuthFormat
		}
		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)

		// Some clients send "Bearer token=<jwt>". A JWT never contains '='.
		if _, after, found := strings.Cut(tokenString, "="); found {
			tokenString = after
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Token rejected", slog.Any("error", err))

			return domainerrors.ErrInvalidToken
		}

		c.Set(authContextKey, entity.AuthenticatedContext{
			UserID: claims.UserID,
			Email:  claims.Email,
			Type:   claims.Type,
		})

		return next(c)
	}
}

// RequireUserType rejects callers whose type is not listed.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireUserType(types ...entity.UserType) echo.MiddlewareFunc {
	allowed := entity.UserTypes(types)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetAuthContext(c)
			if !ok || !allowed.Contains(actor.Type) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// GetAuthContext returns the identity stored by Authenticate.
func GetAuthContext(c echo.Context) (entity.AuthenticatedContext, bool) {
	actor, ok := c.Get(authContextKey).(entity.AuthenticatedContext)

	return actor, ok
}

// SetAuthContext stores an identity on the context. Handler tests use it in place of a token.
func SetAuthContext(c echo.Context, actor entity.AuthenticatedContext) {
	c.Set(authContextKey, actor)
}
