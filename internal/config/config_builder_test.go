// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://first", APIKey: "key"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://second", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "key", cfg.Adapter.APIKey, "zero fields must not override")
}

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.App.OperationTimeout)
	assert.Equal(t, 30, cfg.App.StreakWindowDays)
	assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)
	assert.NotEmpty(t, cfg.Storage.DB.DSN)
}

func TestWithFlags_OverridesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-a", "https://example.supabase.co", "-k", "anon", "-streak-window", "60"}).
		build()
	require.NoError(t, err)
	assert.Equal(t, "https://example.supabase.co", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "anon", cfg.Adapter.APIKey)
	assert.Equal(t, 60, cfg.App.StreakWindowDays)
	assert.Equal(t, 15*time.Second, cfg.App.OperationTimeout)
}

func TestWithFlags_UnknownFlag(t *testing.T) {
	_, err := newConfigBuilder().withFlags([]string{"-unknown"}).build()
	require.Error(t, err)
}

func TestWithJSON_FromFlagPath(t *testing.T) {
	path := writeTempJSONConfig(t, `{"adapter":{"http_address":"https://json.example","request_timeout":"3s"}}`)

	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-a", "https://flag.example", "-c", path}).
		withJSON().
		build()
	require.NoError(t, err)
	assert.Equal(t, "https://json.example", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

func TestWithEnv(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "https://env.example")
	t.Setenv("ADAPTER_API_KEY", "env-key")
	t.Setenv("APP_OPERATION_TIMEOUT", "20s")
	t.Setenv("WORKERS_REFRESH_INTERVAL", "1m")

	cfg, err := newConfigBuilder().withDefaults().withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "env-key", cfg.Adapter.APIKey)
	assert.Equal(t, 20*time.Second, cfg.App.OperationTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
}

func TestWithEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_OPERATION_TIMEOUT", "soon")

	_, err := newConfigBuilder().withEnv().build()
	require.Error(t, err)
}

func TestWithEnv_BackendFallback(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://xyz.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon")

	cfg, err := newConfigBuilder().withDefaults().withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "https://xyz.supabase.co", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "anon", cfg.Adapter.APIKey)
}

func TestWithEnv_AdapterVariablesWin(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://xyz.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon")
	t.Setenv("ADAPTER_ADDRESS", "https://env.example")

	cfg, err := newConfigBuilder().withDefaults().withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "anon", cfg.Adapter.APIKey)
}
