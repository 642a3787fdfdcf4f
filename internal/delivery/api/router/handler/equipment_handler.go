package handler

import (
	"context"
	"log/slog"
	"net/http"

	"equiptrack/internal/delivery/api/response"
	"equiptrack/internal/domain/entity"
	"equiptrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EquipmentHandlerParams holds dependencies for EquipmentHandler, injected by Fx.
type EquipmentHandlerParams struct {
	fx.In

	LedgerUC usecase.LedgerUsecase
	LabelUC  usecase.LabelUsecase
	Logger   *slog.Logger
}

// EquipmentHandler serves the equipment ledger
type EquipmentHandler struct {
	ledgerUC usecase.LedgerUsecase
	labelUC  usecase.LabelUsecase
	logger   *slog.Logger
}

// NewEquipmentHandler is the constructor for EquipmentHandler
func NewEquipmentHandler(params EquipmentHandlerParams) *EquipmentHandler {
	return &EquipmentHandler{
		ledgerUC: params.LedgerUC,
		labelUC:  params.LabelUC,
		logger:   params.Logger,
	}
}

// RegisterEquipmentRequest represents the request body for registering equipment
type RegisterEquipmentRequest struct {
	SerialNumber string `json:"serial_number" validate:"required,max=100"`
	DisplayName  string `json:"display_name" validate:"required,max=200"`
}

// CheckoutRequest represents the request body for sending equipment to a room
type CheckoutRequest struct {
	SerialNumber      string `json:"serial_number" validate:"required"`
	DestinationRoomID uint   `json:"destination_room_id" validate:"required"`
}

// SerialRequest identifies equipment by serial number
type SerialRequest struct {
	SerialNumber string `json:"serial_number" validate:"required"`
}

// RegisterEquipment handles registering equipment into stock
func (h *EquipmentHandler) RegisterEquipment(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	var req RegisterEquipmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid equipment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	equipment, err := h.ledgerUC.RegisterEquipment(c.Request().Context(), &usecase.RegisterEquipmentInput{
		SerialNumber: req.SerialNumber,
		DisplayName:  req.DisplayName,
	}, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, equipment)
}

// ListEquipment handles listing all equipment
func (h *EquipmentHandler) ListEquipment(c echo.Context) error {
	equipment, err := h.ledgerUC.ListEquipment(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, equipment)
}

// GetEquipment handles retrieving equipment with its labelled history
func (h *EquipmentHandler) GetEquipment(c echo.Context) error {
	equipmentID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid equipment ID")
	}

	details, err := h.ledgerUC.GetEquipment(c.Request().Context(), equipmentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, details)
}

// History handles retrieving raw checkpoints newest-first
func (h *EquipmentHandler) History(c echo.Context) error {
	equipmentID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid equipment ID")
	}

	checkpoints, err := h.ledgerUC.History(c.Request().Context(), equipmentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkpoints)
}

// Label handles rendering the equipment's QR label as PNG
func (h *EquipmentHandler) Label(c echo.Context) error {
	equipmentID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid equipment ID")
	}

	png, err := h.labelUC.EquipmentLabel(c.Request().Context(), equipmentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Checkout handles sending equipment toward a room
func (h *EquipmentHandler) Checkout(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	checkpoint, err := h.ledgerUC.Checkout(c.Request().Context(), req.SerialNumber, req.DestinationRoomID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkpoint)
}

// Checkin handles confirming arrival at the checkout destination
func (h *EquipmentHandler) Checkin(c echo.Context) error {
	return h.serialTransition(c, h.ledgerUC.Checkin)
}

// ReturnToStock handles moving equipment back to the stock room
func (h *EquipmentHandler) ReturnToStock(c echo.Context) error {
	return h.serialTransition(c, h.ledgerUC.ReturnToStock)
}

func (h *EquipmentHandler) serialTransition(c echo.Context, transition func(ctx context.Context, serial string, userID uint) (*entity.Checkpoint, error)) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	var req SerialRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid serial number input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	checkpoint, err := transition(c.Request().Context(), req.SerialNumber, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkpoint)
}
