package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"equiptrack/config"
	deliverycontext "equiptrack/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const healthPath = "/health"

// LoggerMiddleware writes one access log line per request. With debug off only
// server errors are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().URL.Path == healthPath {
			return next(c)
		}

		start := time.Now()
		err := next(c)

		status := c.Response().Status
		var he *echo.HTTPError
		if errors.As(err, &he) && !c.Response().Committed {
			status = he.Code
		}
		if m.debug || status >= http.StatusInternalServerError {
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if actorID, ok := deliverycontext.GetActorID(c); ok {
		fields = append(fields, slog.Uint64("actor_id", uint64(actorID)))
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
