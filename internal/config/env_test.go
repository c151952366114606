// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.toml",

		"APP_VERSION":   "1.2.3",
		"APP_LOG_LEVEL": "warn",

		"SYNC_BACKEND":              "memory",
		"SYNC_WIRE_FORMAT":          "cbor",
		"SYNC_TOPIC_PREFIX":         "worlds",
		"SYNC_CONTROL_QOS":          "2",
		"SYNC_ENTITY_QOS":           "1",
		"SYNC_APP_QOS":              "0",
		"SYNC_SNAPSHOT_TIMEOUT":     "3s",
		"SYNC_CONNECT_TIMEOUT":      "5s",
		"SYNC_KEEP_ALIVE":           "1m",
		"SYNC_INSECURE_SKIP_VERIFY": "true",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DB_DSN": "/var/lib/worldsync/journal.db",

		"WORKERS_PRUNE_INTERVAL":    "10m",
		"WORKERS_JOURNAL_RETENTION": "24h",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.toml", cfg.ConfigFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "warn", cfg.App.LogLevel)

	assert.Equal(t, "memory", cfg.Sync.Backend)
	assert.Equal(t, "cbor", cfg.Sync.WireFormat)
	assert.Equal(t, "worlds", cfg.Sync.TopicPrefix)
	assert.Equal(t, 2, cfg.Sync.ControlQoS)
	assert.Equal(t, 1, cfg.Sync.EntityQoS)
	assert.Equal(t, 3*time.Second, cfg.Sync.SnapshotTimeout)
	assert.Equal(t, 5*time.Second, cfg.Sync.ConnectTimeout)
	assert.Equal(t, time.Minute, cfg.Sync.KeepAlive)
	assert.True(t, cfg.Sync.InsecureSkipVerify)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/var/lib/worldsync/journal.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Minute, cfg.Workers.PruneInterval)
	assert.Equal(t, 24*time.Hour, cfg.Workers.JournalRetention)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"SYNC_SNAPSHOT_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "", cfg.Sync.Backend)
}

func TestParseEnv_PrefixedWins(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SYNC_BACKEND":             "mqtt",
		"WORLDSYNC_SYNC_BACKEND":   "memory",
		"STORAGE_DB_DSN":           "/tmp/other.db",
		"WORLDSYNC_SERVER_ADDRESS": "0.0.0.0:9000",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "memory", cfg.Sync.Backend)
	assert.Equal(t, "/tmp/other.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
