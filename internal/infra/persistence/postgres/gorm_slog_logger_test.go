package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"equiptrack/config"
	deliverycontext "equiptrack/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		records = append(records, record)
	}

	return records
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name      string
		begin     time.Time
		err       error
		wantMsg   string
		wantLevel string
	}{
		{name: "record not found is silent", begin: time.Now(), err: gorm.ErrRecordNotFound},
		{name: "duplicate key is a warning", begin: time.Now(), err: gorm.ErrDuplicatedKey, wantMsg: "GORM query failed", wantLevel: "WARN"},
		{name: "other failures are errors", begin: time.Now(), err: errors.New("disk I/O error"), wantMsg: "GORM query failed", wantLevel: "ERROR"},
		{name: "slow query", begin: time.Now().Add(-time.Second), wantMsg: "GORM slow query", wantLevel: "WARN"},
		{name: "fast query is quiet outside debug", begin: time.Now()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			cfg := &config.Config{}
			cfg.Database.SlowQueryThreshold = 500 * time.Millisecond

			l := newGormSlogLogger(base, cfg)
			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			records := decodeRecords(t, &buf)
			if tt.wantMsg == "" {
				assert.Empty(t, records)

				return
			}
			require.Len(t, records, 1)
			assert.Equal(t, tt.wantMsg, records[0]["msg"])
			assert.Equal(t, tt.wantLevel, records[0]["level"])
			assert.Equal(t, "SELECT 1", records[0]["sql"])
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := deliverycontext.WithLogger(context.Background(), base.With(slog.String("request_id", "req-7")))

	l := newGormSlogLogger(slog.New(slog.DiscardHandler), &config.Config{})
	l.Trace(ctx, time.Now(), func() (string, int64) { return "UPDATE equipment", 0 }, errors.New("boom"))

	records := decodeRecords(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "req-7", records[0]["request_id"])
}
