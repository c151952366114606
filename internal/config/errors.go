package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidSyncConfigs indicates invalid engine settings (unknown
	// backend or wire format, QoS out of range, non-positive timeouts).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidServerConfigs indicates a missing control API address or
	// request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid syncctl settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background job settings
	// while the journal is enabled.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrUnsupportedConfigFile is returned for config files that are
	// neither .json nor .toml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
