package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"ledger": map[string]any{
			"defaultStockRoomId": 1,
		},
		"database": map[string]any{
			"autoMigrate":        false,
			"slowQueryThreshold": "200ms",
		},
		"worker": map[string]any{
			"port": 8090,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "LEDGER_DEFAULTSTOCKROOMID", want: "ledger.defaultStockRoomId"},
		{envKey: "DATABASE_AUTOMIGRATE", want: "database.autoMigrate"},
		{envKey: "DATABASE_SLOWQUERYTHRESHOLD", want: "database.slowQueryThreshold"},
		{envKey: "WORKER_PORT", want: "worker.port"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
