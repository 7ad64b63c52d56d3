package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lakehire/internal/auth"
	"lakehire/internal/model"
)

// CurrentClaims returns the JWT claims set by the auth middleware.
func CurrentClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// CurrentUserID returns the caller's user ID from the JWT claims.
func CurrentUserID(c echo.Context) (uuid.UUID, error) {
	claims, err := CurrentClaims(c)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return id, nil
}

// IsAdmin reports whether the caller is an admin.
func IsAdmin(c echo.Context) bool {
	claims, ok := c.Get("user").(*auth.Claims)
	return ok && claims != nil && claims.Role == model.RoleAdmin
}

// OptionalViewerID returns the caller's user ID when a valid token was
// presented, nil otherwise. Used on public routes that record view events.
func OptionalViewerID(c echo.Context) *uuid.UUID {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok || claims == nil {
		return nil
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil
	}
	return &id
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
