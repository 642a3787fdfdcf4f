package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"equiptrack/config"
	"equiptrack/internal/domain/constants"
	"equiptrack/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishTransitionEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, 0, testLogger())
	roomID := uint(7)
	event := &service.TransitionEvent{
		RequestID:    "req-1",
		EventID:      "evt-1",
		CheckpointID: 3,
		EquipmentID:  42,
		SerialNumber: "SN-001",
		StatusBefore: "In stock",
		StatusAfter:  "In transit",
		TargetRoomID: &roomID,
		ActorID:      1,
		OccurredAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishTransitionEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, constants.TransitionSubscription, received.Subscription)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "42", received.Message.Attributes["equipment_id"])
	assert.Equal(t, "SN-001", received.Message.Attributes["serial_number"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])
	assert.Equal(t, "equipment/SN-001", received.Message.Attributes["ordering_key"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.TransitionEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event.TargetRoomID, *decoded.TargetRoomID)
	assert.Equal(t, event.StatusAfter, decoded.StatusAfter)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, 0, testLogger())

	err := publisher.PublishTransitionEvent(context.Background(), &service.TransitionEvent{EventID: "evt-2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured", cfg: nil},
		{name: "empty provider", cfg: &config.PubSubConfig{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: "project ID is required"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
		{name: "local provider in mixed case", cfg: &config.PubSubConfig{Provider: " Local ", LocalEndpoint: "http://localhost:9999"}},
		{name: "local endpoint without scheme", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "localhost:9999"}, wantErr: "absolute http(s) URL"},
		{name: "negative timeout", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999", PublishTimeout: -time.Second}, wantErr: "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: testLogger(),
			})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  error
	}{
		{name: "disabled", settings: Settings{}},
		{name: "google", settings: Settings{Provider: constants.PubSubProviderGoogle, ProjectID: "p", TopicID: "t"}},
		{name: "google without topic", settings: Settings{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: ErrTopicIDRequired},
		{name: "google without project", settings: Settings{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: ErrProjectIDRequired},
		{name: "local over ftp", settings: Settings{Provider: constants.PubSubProviderLocal, LocalEndpoint: "ftp://host/push"}, wantErr: ErrLocalEndpointInvalid},
		{name: "unknown", settings: Settings{Provider: "kafka"}, wantErr: ErrUnknownProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewSettings(t *testing.T) {
	assert.False(t, NewSettings(nil).Enabled())

	settings := NewSettings(&config.PubSubConfig{
		Provider:       " GOOGLE ",
		ProjectID:      " equiptrack ",
		TopicID:        "transitions ",
		PublishTimeout: 5 * time.Second,
	})
	assert.True(t, settings.Enabled())
	assert.Equal(t, Settings{
		Provider:       constants.PubSubProviderGoogle,
		ProjectID:      "equiptrack",
		TopicID:        "transitions",
		PublishTimeout: 5 * time.Second,
	}, settings)
}
