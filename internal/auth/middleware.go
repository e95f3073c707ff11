package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "sweetshop/internal/errors"
	"sweetshop/internal/model"
)

// ClaimsFrom extracts the verified claims placed on the context by the JWT
// middleware. The second return is false when the route is not behind the
// middleware or the token carried an unexpected claims type.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	return claims, ok
}

// UserIDFrom returns the caller's user id from the verified claims.
func UserIDFrom(c echo.Context) (uuid.UUID, error) {
	claims, ok := ClaimsFrom(c)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Message: "user not authenticated",
			Code:    "UNAUTHENTICATED",
		})
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Message: "user not authenticated",
			Code:    "UNAUTHENTICATED",
		})
	}
	return id, nil
}

// RequireAdmin allows the request through only when the verified identity has
// the admin role. It must be layered after the JWT middleware.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := ClaimsFrom(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Message: "user not authenticated",
				Code:    "UNAUTHENTICATED",
			})
		}
		if claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Message: "admin access required",
				Code:    "FORBIDDEN",
			})
		}
		return next(c)
	}
}
