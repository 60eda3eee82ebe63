// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/go-water-keeper/internal/utils"
	"github.com/MKhiriev/go-water-keeper/models"
)

const (
	FieldUserID    = "user_id"
	FieldDailyGoal = "daily_goal"
	FieldCompanion = "selected_pet"
	FieldCupVolume = "cup_volume"
	FieldWeight    = "weight"
	FieldAmount    = "amount"
	FieldDate      = "date"
	FieldEmail     = "email"
	FieldPassword  = "password"
	// FieldNotEmpty requires a patch to change at least one field.
	FieldNotEmpty = "not_empty"
)

type SettingsValidator struct{}

func NewSettingsValidator() Validator {
	return &SettingsValidator{}
}

func (v *SettingsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SettingsPatch:
		return v.validatePatch(ctx, value, fields...)
	case *models.SettingsPatch:
		return v.validatePatch(ctx, *value, fields...)

	case models.UserSettings:
		return v.validateSettings(ctx, value, fields...)
	case *models.UserSettings:
		return v.validateSettings(ctx, *value, fields...)

	case models.WaterEntry:
		return v.validateEntry(ctx, value, fields...)
	case *models.WaterEntry:
		return v.validateEntry(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.Registration:
		return v.validateRegistration(ctx, value, fields...)
	case *models.Registration:
		return v.validateRegistration(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validatePatch checks only the fields the patch sets. Naming a field the
// patch leaves unset is not an error.
func (v *SettingsValidator) validatePatch(_ context.Context, p models.SettingsPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDailyGoal, FieldCompanion, FieldCupVolume, FieldWeight}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldDailyGoal:
			if p.DailyGoalMl != nil {
				err = checkGoal(*p.DailyGoalMl)
			}
		case FieldCompanion:
			if p.SelectedCompanion != nil {
				err = checkCompanion(*p.SelectedCompanion)
			}
		case FieldCupVolume:
			if p.CupVolumeMl != nil {
				err = checkCupVolume(*p.CupVolumeMl)
			}
		case FieldWeight:
			if p.WeightKg != nil {
				err = checkWeight(*p.WeightKg)
			}
		case FieldNotEmpty:
			if p.IsEmpty() {
				err = ErrNoFieldsToUpdate
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *SettingsValidator) validateSettings(_ context.Context, s models.UserSettings, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldDailyGoal, FieldCompanion, FieldCupVolume, FieldWeight}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUserID:
			err = checkUserID(s.UserID)
		case FieldDailyGoal:
			err = checkGoal(s.DailyGoalMl)
		case FieldCompanion:
			err = checkCompanion(s.SelectedCompanion)
		case FieldCupVolume:
			err = checkCupVolume(s.CupVolumeMl)
		case FieldWeight:
			if s.WeightKg != nil {
				err = checkWeight(*s.WeightKg)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *SettingsValidator) validateEntry(_ context.Context, e models.WaterEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldAmount, FieldDate}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if err := checkUserID(e.UserID); err != nil {
				return err
			}
		case FieldAmount:
			if e.AmountMl <= 0 {
				return fmt.Errorf("%w: %d", ErrInvalidAmount, e.AmountMl)
			}
		case FieldDate:
			if _, err := time.Parse(models.DateLayout, e.Date); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidDate, e.Date)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SettingsValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(c.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SettingsValidator) validateRegistration(_ context.Context, r models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldWeight}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail, FieldPassword:
			if err := v.validateCredentials(r.Credentials, f); err != nil {
				return err
			}
		case FieldWeight:
			if r.WeightKg != nil {
				if err := checkWeight(*r.WeightKg); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkUserID(id string) error {
	if !utils.IsUUID(id) {
		return fmt.Errorf("%w: %q", ErrInvalidUserID, id)
	}
	return nil
}

func checkGoal(ml int) error {
	if ml < models.MinDailyGoalMl || ml > models.MaxDailyGoalMl {
		return fmt.Errorf("%w: %d", ErrGoalOutOfRange, ml)
	}
	return nil
}

func checkCompanion(c models.Companion) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCompanion, c)
	}
	return nil
}

func checkCupVolume(ml int) error {
	if ml <= 0 || ml > models.MaxDailyGoalMl {
		return fmt.Errorf("%w: %d", ErrInvalidCupVolume, ml)
	}
	return nil
}

func checkWeight(kg float64) error {
	if kg <= 0 || math.IsNaN(kg) || math.IsInf(kg, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, kg)
	}
	return nil
}
