package middleware

import (
	"log/slog"
	"strconv"
	"strings"

	"equiptrack/internal/delivery/api/response"
	deliverycontext "equiptrack/internal/delivery/context"
	"equiptrack/internal/domain/entity"
	domainerrors "equiptrack/internal/domain/errors"
	"equiptrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// HeaderXUserID names the acting user on every API request.
	HeaderXUserID = "X-User-Id"

	keyActor = "actor"
)

// ActorMiddleware resolves the acting user from the X-User-Id header.
type ActorMiddleware struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewActorMiddleware is the constructor for ActorMiddleware.
func NewActorMiddleware(userUC usecase.UserUsecase, logger *slog.Logger) *ActorMiddleware {
	return &ActorMiddleware{userUC: userUC, logger: logger}
}

// Identify requires X-User-Id to name an existing user and stores it on the context.
func (m *ActorMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := strings.TrimSpace(c.Request().Header.Get(HeaderXUserID))
		if raw == "" {
			return response.Unauthorized(c, "MISSING_ACTOR", "X-User-Id header is required")
		}

		userID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || userID == 0 {
			return response.Unauthorized(c, "INVALID_ACTOR", "X-User-Id must be a positive integer")
		}

		user, err := m.userUC.GetUser(c.Request().Context(), uint(userID))
		if err != nil {
			if errors.Is(err, domainerrors.ErrUserNotFound) {
				return response.Unauthorized(c, "UNKNOWN_ACTOR", "X-User-Id does not name a known user")
			}

			return errors.WithStack(err)
		}

		c.Set(keyActor, user)
		deliverycontext.SetActorID(c, user.ID)

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.Uint64("actor_id", uint64(user.ID))))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireAdmin rejects non-administrators. It must run after Identify.
func (m *ActorMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := GetActor(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_ACTOR", "X-User-Id header is required")
		}

		if !actor.IsAdmin {
			return response.Forbidden(c, "ADMIN_REQUIRED", "Administrator privileges are required")
		}

		return next(c)
	}
}

// GetActor returns the user resolved by Identify.
func GetActor(c echo.Context) (*entity.User, bool) {
	actor, ok := c.Get(keyActor).(*entity.User)

	return actor, ok && actor != nil
}

// GetUserID returns the id of the user resolved by Identify.
func GetUserID(c echo.Context) (uint, bool) {
	actor, ok := GetActor(c)
	if !ok {
		return 0, false
	}

	return actor.ID, true
}
