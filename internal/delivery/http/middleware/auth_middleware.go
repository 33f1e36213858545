// Package middleware contains echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	domainerrors "pricewatch/internal/domain/errors"
	"pricewatch/internal/domain/repository"
	"pricewatch/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContextKeyUserID is the echo.Context key under which Authenticate stores
// the authenticated user's id.
const ContextKeyUserID = "userID"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the Bearer access token and stores the subject's
// user id on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WithDetails("Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("Invalid or expired token")
		}

		if claims.UserID == "" {
			return domainerrors.ErrUnauthorized.WithDetails("User ID missing from token")
		}

		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}

// RequireAdmin checks the caller's role against the user row in the
// database, so a role change takes effect on the next request rather than
// at the token's expiry. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get(ContextKeyUserID).(string)
		if !ok || userID == "" {
			return domainerrors.ErrUnauthorized.WithDetails("User ID missing from context")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrForbidden
			}

			return errors.Wrap(err, "failed to load user for role check")
		}

		if !user.Role.IsAdmin() {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

// GetUserID returns the authenticated user's id stored by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	id, ok := c.Get(ContextKeyUserID).(string)

	return id, ok && id != ""
}
