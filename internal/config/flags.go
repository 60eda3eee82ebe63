// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-a backend base URL
//	-k backend public API key
//	-d local SQLite DSN
//	-c/-config json file path with configs
//	-request-timeout backend request timeout (e.g. "10s")
//	-operation-timeout store operation timeout (e.g. "15s")
//	-streak-window number of past days used for the streak
//	-refresh-interval refresh job interval (e.g. "5m")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-water-keeper", flag.ContinueOnError)

	var (
		address          string
		apiKey           string
		databaseDSN      string
		jsonConfigPath   string
		requestTimeout   time.Duration
		operationTimeout time.Duration
		streakWindow     int
		refreshInterval  time.Duration
	)

	fs.StringVar(&address, "a", "", "Backend base URL")
	fs.StringVar(&apiKey, "k", "", "Backend public API key")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Backend request timeout (e.g., 10s)")
	fs.DurationVar(&operationTimeout, "operation-timeout", 0, "Store operation timeout (e.g., 15s)")
	fs.IntVar(&streakWindow, "streak-window", 0, "Days of history used for the streak")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Refresh job interval (e.g., 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			OperationTimeout: operationTimeout,
			StreakWindowDays: streakWindow,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			APIKey:         apiKey,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
