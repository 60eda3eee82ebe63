// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-water-keeper/internal/logger"
)

const snapshotsTable = "snapshots"

// snapshotRepository is the SQLite-backed implementation of
// [SnapshotRepository].
type snapshotRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSnapshotRepository constructs a [SnapshotRepository] over db.
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	logger.Debug().Msg("creating snapshot repository")
	return &snapshotRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Save upserts the value stored under key.
func (r *snapshotRepository) Save(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert(snapshotsTable).
		Columns("key", "value", "updated_at").
		Values(key, string(value), r.now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.Save").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*snapshotRepository.Save").Str("key", key).Msg("error saving snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Load returns the value stored under key.
func (r *snapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("value").
		From(snapshotsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.Load").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrSnapshotNotFound
	case err != nil:
		log.Err(err).Str("func", "*snapshotRepository.Load").Str("key", key).Msg("error loading snapshot")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return []byte(value), nil
}

// Delete removes the value stored under key.
func (r *snapshotRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(snapshotsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*snapshotRepository.Delete").Str("key", key).Msg("error deleting snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
