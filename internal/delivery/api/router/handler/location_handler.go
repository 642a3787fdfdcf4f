package handler

import (
	"log/slog"
	"net/http"

	"equiptrack/internal/delivery/api/response"
	"equiptrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler serves the building and room registry.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// AddBuildingRequest represents the request body for creating a building
type AddBuildingRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

// AddRoomRequest represents the request body for creating a room
type AddRoomRequest struct {
	Name       string `json:"name" validate:"required,max=120"`
	BuildingID uint   `json:"building_id" validate:"required"`
}

// AddBuilding handles creating a building
func (h *LocationHandler) AddBuilding(c echo.Context) error {
	var req AddBuildingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid building input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	building, err := h.locationUC.AddBuilding(c.Request().Context(), req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, building)
}

// ListBuildings handles listing buildings with their rooms
func (h *LocationHandler) ListBuildings(c echo.Context) error {
	buildings, err := h.locationUC.ListBuildings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, buildings)
}

// DeleteBuilding handles deleting an empty building
func (h *LocationHandler) DeleteBuilding(c echo.Context) error {
	buildingID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid building ID")
	}

	if err := h.locationUC.DeleteBuilding(c.Request().Context(), buildingID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// AddRoom handles creating a room inside a building
func (h *LocationHandler) AddRoom(c echo.Context) error {
	var req AddRoomRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	room, err := h.locationUC.AddRoom(c.Request().Context(), req.Name, req.BuildingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, room)
}

// DeleteRoom handles deleting a room that holds no equipment
func (h *LocationHandler) DeleteRoom(c echo.Context) error {
	roomID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid room ID")
	}

	if err := h.locationUC.DeleteRoom(c.Request().Context(), roomID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
