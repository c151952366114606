package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
		{name: "ipv6 host", addr: NetAddress{Host: "::1", Port: 1883}, expected: "[::1]:1883"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "hostname", input: "broker.example.com:1883", want: NetAddress{Host: "broker.example.com", Port: 1883}},
		{name: "ip", input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non-numeric port", input: "localhost:abc", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port too large", input: "localhost:70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "0.0.0.0:9000",
		"-c", "/etc/worldsync.toml",
		"-d", "journal.db",
		"--log-level", "error",
		"--backend", "memory",
		"--wire-format", "cbor",
		"--topic-prefix", "worlds",
		"--snapshot-timeout", "4s",
		"--request-timeout", "20s",
		"--prune-interval", "5m",
		"--journal-retention", "48h",
	})
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "/etc/worldsync.toml", cfg.ConfigFilePath)
	assert.Equal(t, "journal.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "memory", cfg.Sync.Backend)
	assert.Equal(t, "cbor", cfg.Sync.WireFormat)
	assert.Equal(t, "worlds", cfg.Sync.TopicPrefix)
	assert.Equal(t, 4*time.Second, cfg.Sync.SnapshotTimeout)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Workers.PruneInterval)
	assert.Equal(t, 48*time.Hour, cfg.Workers.JournalRetention)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"--nope"})
	assert.Error(t, err)
}
