// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds store behaviour settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local snapshot cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the hosted backend connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings for the client stores.
type App struct {
	// OperationTimeout bounds every store operation, including all backend
	// calls it makes. A hung call turns into an error state on expiry.
	// Env: APP_OPERATION_TIMEOUT
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT"`

	// StreakWindowDays is how many past days are fetched to compute the
	// streak and the recent-days history.
	// Env: APP_STREAK_WINDOW_DAYS
	StreakWindowDays int `env:"STREAK_WINDOW_DAYS"`
}

// Storage groups the local persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the local SQLite settings.
type DB struct {
	// DSN is the SQLite database file holding the local snapshot.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the hosted backend settings.
type Adapter struct {
	// HTTPAddress is the backend base URL (e.g. "https://xyz.supabase.co").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// APIKey is the public (anon) key sent with every backend request.
	// Env: ADAPTER_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout bounds a single outbound HTTP request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job settings.
type Workers struct {
	// RefreshInterval is how often today's intake is reloaded from the
	// backend while a user is signed in.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Defaults returns the built-in configuration applied beneath every other
// source.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			OperationTimeout: 15 * time.Second,
			StreakWindowDays: 30,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN()},
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			RefreshInterval: 5 * time.Minute,
		},
	}
}

func defaultDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "water-keeper.db"
	}
	return dir + string(os.PathSeparator) + "go-water-keeper" + string(os.PathSeparator) + "water-keeper.db"
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. Later sources override non-zero fields of earlier ones.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
