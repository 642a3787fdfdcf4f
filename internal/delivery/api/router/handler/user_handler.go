package handler

import (
	"log/slog"
	"net/http"

	"equiptrack/internal/delivery/api/response"
	"equiptrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the user directory
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Username           string `json:"username" validate:"required,max=80"`
	Password           string `json:"password" validate:"required,min=6,max=72"`
	Email              string `json:"email" validate:"omitempty,email"`
	RegistrationNumber string `json:"registration_number" validate:"max=40"`
	IsAdmin            bool   `json:"is_admin"`
}

// CreateUser handles creating a user
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Username:           req.Username,
		Password:           req.Password,
		Email:              req.Email,
		RegistrationNumber: req.RegistrationNumber,
		IsAdmin:            req.IsAdmin,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// ListUsers handles listing users
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}
