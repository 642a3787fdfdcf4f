package pubsub

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"equiptrack/config"
	"equiptrack/internal/domain/constants"
	"equiptrack/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	ErrLocalEndpointRequired = errors.New("local endpoint is required for local provider")
	ErrLocalEndpointInvalid  = errors.New("local endpoint must be an absolute http(s) URL")
	ErrProjectIDRequired     = errors.New("project ID is required for google provider")
	ErrTopicIDRequired       = errors.New("topic ID is required for google provider")
	ErrUnknownProvider       = errors.New("unknown pubsub provider")
	ErrNegativeTimeout       = errors.New("publish timeout must not be negative")
)

// Settings is the publisher selection after normalization. An empty Provider
// disables publishing.
type Settings struct {
	Provider       string
	ProjectID      string
	TopicID        string
	LocalEndpoint  string
	PublishTimeout time.Duration
}

// NewSettings trims the configured values and lower-cases the provider. A nil
// config yields disabled settings.
func NewSettings(cfg *config.PubSubConfig) Settings {
	if cfg == nil {
		return Settings{}
	}

	return Settings{
		Provider:       strings.ToLower(strings.TrimSpace(cfg.Provider)),
		ProjectID:      strings.TrimSpace(cfg.ProjectID),
		TopicID:        strings.TrimSpace(cfg.TopicID),
		LocalEndpoint:  strings.TrimSpace(cfg.LocalEndpoint),
		PublishTimeout: cfg.PublishTimeout,
	}
}

// Enabled reports whether a provider is selected.
func (s Settings) Enabled() bool {
	return s.Provider != ""
}

// Validate checks the fields the selected provider needs.
func (s Settings) Validate() error {
	if s.PublishTimeout < 0 {
		return ErrNegativeTimeout
	}

	switch s.Provider {
	case "":
		return nil
	case constants.PubSubProviderLocal:
		if s.LocalEndpoint == "" {
			return ErrLocalEndpointRequired
		}
		u, err := url.Parse(s.LocalEndpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.Wrap(ErrLocalEndpointInvalid, s.LocalEndpoint)
		}
	case constants.PubSubProviderGoogle:
		if s.ProjectID == "" {
			return ErrProjectIDRequired
		}
		if s.TopicID == "" {
			return ErrTopicIDRequired
		}
	default:
		return errors.Wrap(ErrUnknownProvider, s.Provider)
	}

	return nil
}

type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishTransitionEvent(_ context.Context, event *service.TransitionEvent) error {
	p.logger.Debug("Transition event dropped, publishing disabled",
		slog.String("serial", event.SerialNumber),
		slog.Uint64("checkpoint_id", uint64(event.CheckpointID)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher builds the publisher selected by the pubsub section and closes
// it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	settings := NewSettings(params.Config.PubSub)
	if err := settings.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid pubsub configuration")
	}

	logger := params.Logger
	if !settings.Enabled() {
		logger.Info("PubSub not configured, transition events are not published")

		return &noopPublisher{logger: logger}, nil
	}

	publisher, err := openPublisher(params.Ctx, settings, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher", slog.String("provider", settings.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func openPublisher(ctx context.Context, settings Settings, logger *slog.Logger) (service.EventPublisher, error) {
	if settings.Provider == constants.PubSubProviderLocal {
		logger.Info("Publishing transition events over local HTTP push",
			slog.String("endpoint", settings.LocalEndpoint),
			slog.Duration("timeout", settings.PublishTimeout),
		)

		return NewLocalHTTPPublisher(settings.LocalEndpoint, settings.PublishTimeout, logger), nil
	}

	logger.Info("Publishing transition events to Google Pub/Sub",
		slog.String("project_id", settings.ProjectID),
		slog.String("topic_id", settings.TopicID),
	)

	return NewGooglePubSubPublisher(ctx, settings.ProjectID, settings.TopicID, logger)
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
