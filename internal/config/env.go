// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces worldsync variables on hosts where the bare names
// (SERVER_ADDRESS, STORAGE_DB_DSN, ...) collide with other software.
const envPrefix = "WORLDSYNC_"

// parseEnv populates cfg from environment variables through the `env` and
// `envPrefix` tags of [StructuredConfig]. A variable carrying envPrefix
// wins over its bare counterpart.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	prefixed := &StructuredConfig{}
	if err := env.ParseWithOptions(prefixed, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("error getting %s env configs: %w", envPrefix, err)
	}

	if err := mergo.Merge(cfg, prefixed, mergo.WithOverride); err != nil {
		return fmt.Errorf("error merging env configs: %w", err)
	}
	return nil
}
