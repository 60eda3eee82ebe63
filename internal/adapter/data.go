// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-water-keeper/models"
)

// newWaterEntry is the insert payload; id and created_at are left to the
// backend.
type newWaterEntry struct {
	UserID   string `json:"user_id"`
	AmountMl int    `json:"amount"`
	Date     string `json:"date"`
}

// GetSettings implements [DataAdapter].
func (h *httpServerAdapter) GetSettings(ctx context.Context, userID string) (models.UserSettings, error) {
	var rows []models.UserSettings
	table := models.UserSettings{}.TableName()

	if err := h.selectRows(ctx, table, []Filter{Eq("user_id", userID)}, Order{}, &rows); err != nil {
		return models.UserSettings{}, err
	}

	return firstRow(rows, table)
}

// InsertSettings implements [DataAdapter].
func (h *httpServerAdapter) InsertSettings(ctx context.Context, settings models.UserSettings) (models.UserSettings, error) {
	var rows []models.UserSettings
	table := settings.TableName()

	if err := h.insertRows(ctx, table, settings, &rows); err != nil {
		return models.UserSettings{}, err
	}

	return firstRow(rows, table)
}

// UpdateSettings implements [DataAdapter].
func (h *httpServerAdapter) UpdateSettings(ctx context.Context, userID string, patch models.SettingsPatch) (models.UserSettings, error) {
	var rows []models.UserSettings
	table := models.UserSettings{}.TableName()

	if err := h.updateRows(ctx, table, []Filter{Eq("user_id", userID)}, patch, &rows); err != nil {
		return models.UserSettings{}, err
	}

	return firstRow(rows, table)
}

// UpsertSettings implements [DataAdapter].
func (h *httpServerAdapter) UpsertSettings(ctx context.Context, settings models.UserSettings) (models.UserSettings, error) {
	var rows []models.UserSettings
	table := settings.TableName()

	if err := h.upsertRows(ctx, table, "user_id", settings, &rows); err != nil {
		return models.UserSettings{}, err
	}

	return firstRow(rows, table)
}

// InsertWaterEntry implements [DataAdapter].
func (h *httpServerAdapter) InsertWaterEntry(ctx context.Context, entry models.WaterEntry) (models.WaterEntry, error) {
	var rows []models.WaterEntry
	table := entry.TableName()

	body := newWaterEntry{UserID: entry.UserID, AmountMl: entry.AmountMl, Date: entry.Date}
	if err := h.insertRows(ctx, table, body, &rows); err != nil {
		return models.WaterEntry{}, err
	}

	return firstRow(rows, table)
}

// ListWaterEntries implements [DataAdapter].
func (h *httpServerAdapter) ListWaterEntries(ctx context.Context, userID string, query models.EntryQuery) ([]models.WaterEntry, error) {
	filters := []Filter{Eq("user_id", userID)}
	switch {
	case query.To == "" || query.To == query.From:
		filters = append(filters, Eq("date", query.From))
	default:
		filters = append(filters, Gte("date", query.From), Lte("date", query.To))
	}

	rows := []models.WaterEntry{}
	err := h.selectRows(ctx, models.WaterEntry{}.TableName(), filters, Order{Column: "created_at", Ascending: true}, &rows)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func firstRow[T any](rows []T, table string) (T, error) {
	if len(rows) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: no %s row", ErrNotFound, table)
	}
	return rows[0], nil
}
