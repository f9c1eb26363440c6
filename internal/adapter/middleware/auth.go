package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"pawhome-backend/internal/auth"
	"pawhome-backend/internal/domain/apperr"
	"pawhome-backend/internal/domain/user"
)

// claimsKey is where Authenticate stores the verified claims on the echo
// context.
const claimsKey = "auth.claims"

func failAuth(c echo.Context, ae *apperr.Error) error {
	status := apperr.HTTPStatus(ae.Key)
	return c.JSON(status, map[string]any{
		"success": false,
		"status":  status,
		"message": ae.Message,
		"key":     string(ae.Key),
	})
}

// Authenticate verifies the bearer token and stashes its claims for the
// handlers downstream.
func Authenticate(tokens *auth.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return failAuth(c, apperr.New(apperr.Unauthorized))
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				return failAuth(c, apperr.New(apperr.Unauthorized))
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				ae, ok := err.(*apperr.Error)
				if !ok {
					ae = apperr.New(apperr.InvalidToken)
				}
				return failAuth(c, ae)
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// RequireRole gates a route to the given roles. Mount after Authenticate.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return failAuth(c, apperr.New(apperr.Unauthorized))
			}
			for _, r := range roles {
				if claims.Role == r {
					return next(c)
				}
			}
			return failAuth(c, apperr.New(apperr.Forbidden))
		}
	}
}

// ClaimsFrom returns the authenticated claims, or nil on unauthenticated
// routes.
func ClaimsFrom(c echo.Context) *auth.Claims {
	claims, _ := c.Get(claimsKey).(*auth.Claims)
	return claims
}
