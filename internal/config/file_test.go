package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseFile_JSON(t *testing.T) {
	p := writeConfigFile(t, "config.json", `{
		"app": {"version": "0.9.0"},
		"sync": {"backend": "memory", "wire_format": "cbor", "snapshot_timeout": "1500ms", "entity_qos": 2},
		"server": {"http_address": "localhost:8081", "request_timeout": "10s"},
		"storage": {"db": {"dsn": "journal.db"}},
		"workers": {"prune_interval": "30m", "journal_retention": 3600000000000}
	}`)

	cfg, err := parseFile(p)
	require.NoError(t, err)

	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "memory", cfg.Sync.Backend)
	assert.Equal(t, "cbor", cfg.Sync.WireFormat)
	assert.Equal(t, 1500*time.Millisecond, cfg.Sync.SnapshotTimeout)
	assert.Equal(t, 2, cfg.Sync.EntityQoS)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "journal.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 30*time.Minute, cfg.Workers.PruneInterval)
	assert.Equal(t, time.Hour, cfg.Workers.JournalRetention)
}

func TestParseFile_TOML(t *testing.T) {
	p := writeConfigFile(t, "config.toml", `
[sync]
backend = "mqtt"
topic_prefix = "worlds"
keep_alive = "45s"
insecure_skip_verify = true

[adapter]
http_address = "localhost:9999"
request_timeout = "3s"
`)

	cfg, err := parseFile(p)
	require.NoError(t, err)

	assert.Equal(t, "mqtt", cfg.Sync.Backend)
	assert.Equal(t, "worlds", cfg.Sync.TopicPrefix)
	assert.Equal(t, 45*time.Second, cfg.Sync.KeepAlive)
	assert.True(t, cfg.Sync.InsecureSkipVerify)
	assert.Equal(t, "localhost:9999", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name  string
		path  func(t *testing.T) string
		isErr error
	}{
		{
			name: "unsupported extension",
			path: func(t *testing.T) string { return writeConfigFile(t, "config.yaml", "a: 1") },
			isErr: ErrUnsupportedConfigFile,
		},
		{
			name: "missing json file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") },
		},
		{
			name: "malformed json",
			path: func(t *testing.T) string { return writeConfigFile(t, "bad.json", "{") },
		},
		{
			name: "bad duration in toml",
			path: func(t *testing.T) string {
				return writeConfigFile(t, "bad.toml", "[sync]\nsnapshot_timeout = \"later\"\n")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFile(tt.path(t))
			require.Error(t, err)
			assert.Nil(t, cfg)
			if tt.isErr != nil {
				assert.ErrorIs(t, err, tt.isErr)
			}
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
