package handler

import (
	"net/http"

	"equiptrack/internal/delivery/api/response"
	"equiptrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the landing page summary
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(dashboardUC usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// Summary handles the actor's dashboard
func (h *DashboardHandler) Summary(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	summary, err := h.dashboardUC.Summary(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
