// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// backendEnv holds the variable names hosted-backend dashboards hand out.
// They are read only when the ADAPTER_ variables are unset.
type backendEnv struct {
	URL     string `env:"SUPABASE_URL"`
	AnonKey string `env:"SUPABASE_ANON_KEY"`
}

// parseEnv reads the ADAPTER_, APP_, STORAGE_ and WORKERS_ variables into a
// new config, falling back to SUPABASE_URL and SUPABASE_ANON_KEY for the
// backend address and key.
func parseEnv() (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	var backend backendEnv
	if err := env.Parse(&backend); err != nil {
		return nil, fmt.Errorf("error getting backend env configs: %w", err)
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = backend.URL
	}
	if cfg.Adapter.APIKey == "" {
		cfg.Adapter.APIKey = backend.AnonKey
	}

	return cfg, nil
}
