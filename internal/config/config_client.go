package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by syncctl.
type ClientAdapter struct {
	// HTTPAddress is the control API address.
	HTTPAddress string
	// RequestTimeout is the default timeout for control API calls.
	RequestTimeout time.Duration
}

// ClientConfig is the syncctl configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// LogLevel is the zerolog level for syncctl diagnostics.
	LogLevel string
	// Adapter contains the control API address and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the syncctl view from environment
// variables, the optional config file and defaults. Command-line flags are
// owned by syncctl's subcommands and applied by the caller.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFile().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		LogLevel: cfg.App.LogLevel,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}
