// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Snapshot keys.
const (
	// KeyIntakeSnapshot holds the intake store snapshot.
	KeyIntakeSnapshot = "water-storage"
	// KeyAuthSnapshot holds the persisted session.
	KeyAuthSnapshot = "auth-storage"
)

// SnapshotRepository is a small key/value store for locally persisted state.
// Values are opaque to the repository.
type SnapshotRepository interface {
	// Save stores value under key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error
	// Load returns the value stored under key or [ErrSnapshotNotFound].
	Load(ctx context.Context, key string) ([]byte, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
