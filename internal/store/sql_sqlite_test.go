// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqliteDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "/tmp/water.db", want: "file:/tmp/water.db?" + sqlitePragmas},
		{dsn: "water.db", want: "file:water.db?" + sqlitePragmas},
		{dsn: ":memory:", want: ":memory:"},
		{dsn: "file:water.db?mode=ro", want: "file:water.db?mode=ro"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.dsn))
		})
	}
}

func TestEnsureDBDir(t *testing.T) {
	root := t.TempDir()

	dir := filepath.Join(root, "nested", "cache")
	require.NoError(t, ensureDBDir(filepath.Join(dir, "water.db")))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	uriDir := filepath.Join(root, "uri")
	require.NoError(t, ensureDBDir("file:"+filepath.Join(uriDir, "water.db")+"?mode=rwc"))
	_, err = os.Stat(uriDir)
	require.NoError(t, err)

	assert.NoError(t, ensureDBDir(":memory:"))
	assert.NoError(t, ensureDBDir("water.db"))
}
