// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// validate checks that the merged [StructuredConfig] satisfies the daemon's
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Sync.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN != "" && (cfg.Workers.PruneInterval <= 0 || cfg.Workers.JournalRetention <= 0) {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (s Sync) validate() error {
	if !slices.Contains([]string{BackendMQTT, BackendMemory}, s.Backend) {
		return fmt.Errorf("%w: backend %q", ErrInvalidSyncConfigs, s.Backend)
	}
	if !slices.Contains([]string{WireFormatJSON, WireFormatCBOR}, s.WireFormat) {
		return fmt.Errorf("%w: wire format %q", ErrInvalidSyncConfigs, s.WireFormat)
	}
	for name, qos := range map[string]int{"control": s.ControlQoS, "entity": s.EntityQoS, "app": s.AppQoS} {
		if qos < 0 || qos > 2 {
			return fmt.Errorf("%w: %s qos %d", ErrInvalidSyncConfigs, name, qos)
		}
	}
	if s.SnapshotTimeout <= 0 || s.ConnectTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidSyncConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
