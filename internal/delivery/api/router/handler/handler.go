// Package handler contains the echo handlers of the API.
package handler

import (
	"net/http"
	"strconv"

	"equiptrack/internal/delivery/api/middleware"
	"equiptrack/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// parseID reads a positive numeric path parameter.
func parseID(c echo.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}

// actorID returns the acting user's id, or writes a 401 when it is missing.
func actorID(c echo.Context) (uint, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return 0, response.Unauthorized(c, "MISSING_ACTOR", "X-User-Id header is required")
	}

	return userID, nil
}
