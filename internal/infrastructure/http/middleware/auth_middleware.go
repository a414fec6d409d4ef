package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/orgmind/assessment-engine/internal/domain/entities"
	"github.com/orgmind/assessment-engine/internal/usecase/auth"
)

const (
	// UserContextKey is the Echo context key for the authenticated user
	UserContextKey = "user"
	// UserIDContextKey is the Echo context key for the authenticated user's ID
	UserIDContextKey = "user_id"
)

// EchoAuth returns an Echo middleware that validates the bearer token and
// sets "user" (*entities.User) and "user_id" (uuid.UUID) into Echo context
func EchoAuth(accessService *auth.AccessService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization token")
			}

			user, err := accessService.ValidateToken(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(UserContextKey, user)
			c.Set(UserIDContextKey, user.ID)

			return next(c)
		}
	}
}

// OrgAccess returns an Echo middleware that parses the :id route param and
// rejects callers without read access to that organization. Runs after
// EchoAuth.
func OrgAccess(accessService *auth.AccessService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserContextKey).(*entities.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}

			orgID, err := uuid.Parse(c.Param("id"))
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid organization id")
			}

			allowed, err := accessService.CanAccessOrganization(c.Request().Context(), user, orgID)
			if err != nil {
				return err
			}
			if !allowed {
				return echo.NewHTTPError(http.StatusForbidden, "You do not have access to this organization")
			}

			return next(c)
		}
	}
}

// GetUserFromContext retrieves the authenticated user from Echo context
func GetUserFromContext(c echo.Context) (*entities.User, bool) {
	user, ok := c.Get(UserContextKey).(*entities.User)
	return user, ok
}

func extractToken(c echo.Context) string {
	// Try Authorization header first
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	// Try cookie as fallback
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie.Value
	}

	return ""
}
