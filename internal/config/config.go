// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for worldsync.
// It aggregates all sub-configurations and is populated by merging values
// from command-line flags, environment variables, an optional JSON or TOML
// file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as version and log level.
	App App `envPrefix:"APP_"`

	// Sync holds the synchronization engine settings shared by every
	// synchronizer the manager creates.
	Sync Sync `envPrefix:"SYNC_"`

	// Storage holds the event journal settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the control API listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings syncctl uses to reach the control API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a .json or .toml config file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Sync configures the synchronization engine.
type Sync struct {
	// Backend selects the transport factory: "mqtt" dials real brokers,
	// "memory" keeps every synchronizer on one in-process broker.
	// Env: SYNC_BACKEND
	Backend string `env:"BACKEND"`

	// WireFormat is the payload encoding for outbound messages: "json" or
	// "cbor". Inbound payloads of either format are always accepted.
	// Env: SYNC_WIRE_FORMAT
	WireFormat string `env:"WIRE_FORMAT"`

	// TopicPrefix is prepended to every session topic (e.g. "worlds").
	// Env: SYNC_TOPIC_PREFIX
	TopicPrefix string `env:"TOPIC_PREFIX"`

	// ControlQoS is the QoS level for session control messages (min 1).
	// Env: SYNC_CONTROL_QOS
	ControlQoS int `env:"CONTROL_QOS"`

	// EntityQoS is the QoS level for entity-state messages (min 1).
	// Env: SYNC_ENTITY_QOS
	EntityQoS int `env:"ENTITY_QOS"`

	// AppQoS is the default QoS level for application messages.
	// Env: SYNC_APP_QOS
	AppQoS int `env:"APP_QOS"`

	// SnapshotTimeout bounds how long GetSessionState waits for a peer.
	// Env: SYNC_SNAPSHOT_TIMEOUT
	SnapshotTimeout time.Duration `env:"SNAPSHOT_TIMEOUT"`

	// ConnectTimeout bounds the broker handshake.
	// Env: SYNC_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// KeepAlive is the MQTT keep-alive interval.
	// Env: SYNC_KEEP_ALIVE
	KeepAlive time.Duration `env:"KEEP_ALIVE"`

	// ClientIDPrefix prefixes the broker-level MQTT client identifier.
	// Env: SYNC_CLIENT_ID_PREFIX
	ClientIDPrefix string `env:"CLIENT_ID_PREFIX"`

	// InsecureSkipVerify disables broker certificate verification.
	// Intended for development brokers with self-signed certificates.
	// Env: SYNC_INSECURE_SKIP_VERIFY
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY"`

	// WebSocketPath is the HTTP path of the broker's WebSocket endpoint.
	// Env: SYNC_WEBSOCKET_PATH
	WebSocketPath string `env:"WEBSOCKET_PATH"`
}

// Storage groups the configuration for persistence backends.
type Storage struct {
	// DB holds the journal database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite event journal.
type DB struct {
	// DSN is the SQLite database file path. An empty DSN disables the journal.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds the control API listener settings.
type Server struct {
	// HTTPAddress is the host:port the control API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single control API request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the control API client settings used by syncctl.
type Adapter struct {
	// HTTPAddress is the control API address syncctl talks to.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single control API call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// PruneInterval is how often the journal pruning job runs.
	// Env: WORKERS_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`

	// JournalRetention is the age after which journal records are pruned.
	// Env: WORKERS_JOURNAL_RETENTION
	JournalRetention time.Duration `env:"JOURNAL_RETENTION"`
}

// Defaults returns the built-in configuration used for every field no
// other source sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: "dev", LogLevel: "info"},
		Sync: Sync{
			Backend:         BackendMQTT,
			WireFormat:      WireFormatJSON,
			ControlQoS:      1,
			EntityQoS:       1,
			AppQoS:          0,
			SnapshotTimeout: 2 * time.Second,
			ConnectTimeout:  10 * time.Second,
			KeepAlive:       30 * time.Second,
			ClientIDPrefix:  "worldsync",
			WebSocketPath:   "/mqtt",
		},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
		Adapter: Adapter{HTTPAddress: "localhost:8080", RequestTimeout: 15 * time.Second},
		Workers: Workers{PruneInterval: time.Hour, JournalRetention: 7 * 24 * time.Hour},
	}
}

// Recognised values of Sync.Backend and Sync.WireFormat.
const (
	BackendMQTT   = "mqtt"
	BackendMemory = "memory"

	WireFormatJSON = "json"
	WireFormatCBOR = "cbor"
)

// GetServerConfig loads, merges, and validates the daemon configuration.
// Precedence, highest first:
//  1. Command-line flags (args)
//  2. Environment variables
//  3. Config file (path resolved from sources 1 and 2)
//  4. Defaults
func GetServerConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(args).
		withEnv().
		withFile().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
