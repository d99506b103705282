// Package handler implements the HTTP endpoints. Handlers bundle their
// repositories and caches as struct fields; JWT validation has already
// happened in middleware, so each handler only resolves the token subject
// to a profile row before doing its work.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/skill-swap/internal/model"
	"github.com/iliyamo/skill-swap/internal/repository"
)

// getAuthID extracts the token subject stored by the JWT middleware.
func getAuthID(c echo.Context) (string, bool) {
	sub, ok := c.Get("auth_id").(string)
	return sub, ok && sub != ""
}

// resolveProfile maps the authenticated subject to its profile row. On
// failure the response has already been written and ok is false; callers
// should `return nil`. A valid token whose subject never onboarded gets
// 404, not 403, mirroring the identity-provider boundary.
func resolveProfile(c echo.Context, users *repository.UserRepo) (model.User, bool) {
	sub, ok := getAuthID(c)
	if !ok {
		_ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		return model.User{}, false
	}
	u, err := users.GetByAuthID(c.Request().Context(), sub)
	if err == repository.ErrUserNotFound {
		_ = c.JSON(http.StatusNotFound, echo.Map{"error": "User profile not found"})
		return model.User{}, false
	}
	if err != nil {
		_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		return model.User{}, false
	}
	return u, true
}
