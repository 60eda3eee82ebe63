// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-water-keeper/internal/adapter"
	"github.com/MKhiriev/go-water-keeper/models"
)

// writeSettings sends patch as a partial update, so columns the patch leaves
// unset keep whatever the backend holds. A missing row is created from the
// defaults with patch applied. Losing the insert race to another client
// falls back to patching the row that client created.
func writeSettings(ctx context.Context, data adapter.DataAdapter, identity models.Identity, patch models.SettingsPatch) (models.UserSettings, error) {
	_, err := data.GetSettings(ctx, identity.UserID)
	switch {
	case err == nil:
		return updateSettings(ctx, data, identity.UserID, patch)

	case errors.Is(err, adapter.ErrNotFound):
		row := patch.Apply(models.DefaultSettings(identity.UserID, identity.Metadata.WeightKg))
		stored, err := data.InsertSettings(ctx, row)
		if errors.Is(err, adapter.ErrConflict) {
			return updateSettings(ctx, data, identity.UserID, patch)
		}
		if err != nil {
			return models.UserSettings{}, fmt.Errorf("insert settings: %w", err)
		}
		return stored, nil

	default:
		return models.UserSettings{}, fmt.Errorf("get settings: %w", err)
	}
}

func updateSettings(ctx context.Context, data adapter.DataAdapter, userID string, patch models.SettingsPatch) (models.UserSettings, error) {
	stored, err := data.UpdateSettings(ctx, userID, patch)
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("update settings: %w", err)
	}
	return stored, nil
}
