package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"equiptrack/config"
	deliverycontext "equiptrack/internal/delivery/context"
	"equiptrack/internal/domain/constants"
	"equiptrack/internal/domain/repository"
	"equiptrack/internal/domain/service"
	"equiptrack/internal/infra/pubsub"
	"equiptrack/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Outcome of reconciling one event with the checkpoint log.
const (
	OutcomeCurrent    = "current"
	OutcomeSuperseded = "superseded"
	OutcomeMismatch   = "mismatch"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// TransitionHandler consumes transition events pushed by the publisher and
// reconciles each one against the checkpoint log.
type TransitionHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	checkpointRepo repository.CheckpointRepository
}

// TransitionHandlerParams holds dependencies for the TransitionHandler
type TransitionHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	CheckpointRepo repository.CheckpointRepository
}

// NewTransitionHandler creates a new Pub/Sub push handler for transition events
func NewTransitionHandler(params TransitionHandlerParams) *TransitionHandler {
	verifyPushAuth := pubsub.NewSettings(params.Config.PubSub).Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop &&
		params.Config.Env.Env != constants.EnvLocal

	return &TransitionHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		checkpointRepo: params.CheckpointRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 503 asks the broker to redeliver; every other failure is acknowledged with 200
// or rejected with 400 so a poison message is not retried forever.
func (h *TransitionHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.TransitionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse transition event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if event.EquipmentID == 0 || event.CheckpointID == 0 {
		h.logger.Error("[Worker] Transition event without identifiers",
			slog.String("event_id", event.EventID),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing transition event",
		slog.String("event_id", event.EventID),
		slog.String("serial_number", event.SerialNumber),
		slog.String("status_before", event.StatusBefore),
		slog.String("status_after", event.StatusAfter),
	)

	outcome, err := h.reconcile(ctx, &event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to reconcile transition event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	level := slog.LevelInfo
	if outcome == OutcomeMismatch {
		level = slog.LevelWarn
	}
	reqLogger.Log(ctx, level, "[Worker] Transition event reconciled",
		slog.String("event_id", event.EventID),
		slog.Uint64("checkpoint_id", uint64(event.CheckpointID)),
		slog.String("outcome", outcome),
		slog.String("lag", util.FormatDuration(time.Since(event.OccurredAt))),
	)

	return c.NoContent(http.StatusOK)
}

// reconcile compares the event with the newest checkpoint of its equipment.
// A checkpoint log that has not caught up yet (read replica lag) is retryable.
func (h *TransitionHandler) reconcile(ctx context.Context, event *service.TransitionEvent) (string, error) {
	latest, err := h.checkpointRepo.FindLatestCheckpoint(ctx, event.EquipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrCheckpointNotFound) {
			return "", newRetryableError(errors.Wrapf(err, "equipment %d", event.EquipmentID))
		}

		return "", newRetryableError(errors.WithStack(err))
	}

	switch {
	case latest.ID < event.CheckpointID:
		return "", newRetryableError(errors.Errorf("checkpoint %d not visible yet, latest is %d", event.CheckpointID, latest.ID))
	case latest.ID > event.CheckpointID:
		return OutcomeSuperseded, nil
	case latest.StatusAfter.Kind.String() != event.StatusAfter:
		return OutcomeMismatch, nil
	default:
		return OutcomeCurrent, nil
	}
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *TransitionHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.TransitionEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
