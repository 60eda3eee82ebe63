// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-water-keeper/internal/adapter"
	"github.com/MKhiriev/go-water-keeper/internal/config"
	"github.com/MKhiriev/go-water-keeper/internal/logger"
	"github.com/MKhiriev/go-water-keeper/internal/mock"
	"github.com/MKhiriev/go-water-keeper/internal/store"
	"github.com/MKhiriev/go-water-keeper/models"
	"go.uber.org/mock/gomock"
)

const (
	testUserID = "0192a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b"
	today      = "2026-10-15"
)

var (
	testNow      = time.Date(2026, 10, 15, 12, 0, 0, 0, time.Local)
	testIdentity = models.Identity{UserID: testUserID, Email: "alice@example.com"}
	testAppCfg   = config.ClientApp{OperationTimeout: time.Second, StreakWindowDays: 30}
)

// fakeBackend keeps rows in memory and answers the DataAdapter mock like the
// real backend would.
type fakeBackend struct {
	mu       sync.Mutex
	settings map[string]models.UserSettings
	entries  []models.WaterEntry
	nextID   int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{settings: make(map[string]models.UserSettings)}
}

func (f *fakeBackend) install(data *mock.MockDataAdapter) {
	data.EXPECT().GetSettings(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, userID string) (models.UserSettings, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			s, ok := f.settings[userID]
			if !ok {
				return models.UserSettings{}, adapter.ErrNotFound
			}
			return s, nil
		}).AnyTimes()

	data.EXPECT().InsertSettings(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.UserSettings) (models.UserSettings, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if _, ok := f.settings[s.UserID]; ok {
				return models.UserSettings{}, adapter.ErrConflict
			}
			f.settings[s.UserID] = s
			return s, nil
		}).AnyTimes()

	data.EXPECT().UpdateSettings(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, userID string, p models.SettingsPatch) (models.UserSettings, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			s, ok := f.settings[userID]
			if !ok {
				return models.UserSettings{}, adapter.ErrNotFound
			}
			s = p.Apply(s)
			f.settings[userID] = s
			return s, nil
		}).AnyTimes()

	data.EXPECT().UpsertSettings(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.UserSettings) (models.UserSettings, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.settings[s.UserID] = s
			return s, nil
		}).AnyTimes()

	data.EXPECT().InsertWaterEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.WaterEntry) (models.WaterEntry, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.nextID++
			e.ID = fmt.Sprint(f.nextID)
			e.CreatedAt = testNow.Add(time.Duration(f.nextID) * time.Second)
			f.entries = append(f.entries, e)
			return e, nil
		}).AnyTimes()

	data.EXPECT().ListWaterEntries(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, userID string, q models.EntryQuery) ([]models.WaterEntry, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			to := q.To
			if to == "" {
				to = q.From
			}
			out := []models.WaterEntry{}
			for _, e := range f.entries {
				if e.UserID == userID && e.Date >= q.From && e.Date <= to {
					out = append(out, e)
				}
			}
			return out, nil
		}).AnyTimes()
}

func (f *fakeBackend) addEntry(date string, amount int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.entries = append(f.entries, models.WaterEntry{
		ID: fmt.Sprint(f.nextID), UserID: testUserID, AmountMl: amount, Date: date,
	})
}

func (f *fakeBackend) entryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

// memorySnapshots answers the SnapshotRepository mock from a map.
type memorySnapshots struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemorySnapshots() *memorySnapshots {
	return &memorySnapshots{data: make(map[string][]byte)}
}

func (m *memorySnapshots) install(repo *mock.MockSnapshotRepository) {
	repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string, value []byte) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.data[key] = value
			return nil
		}).AnyTimes()

	repo.EXPECT().Load(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string) ([]byte, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			v, ok := m.data[key]
			if !ok {
				return nil, store.ErrSnapshotNotFound
			}
			return v, nil
		}).AnyTimes()

	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.data, key)
			return nil
		}).AnyTimes()
}

func (m *memorySnapshots) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func newTestIntake(t *testing.T) (*intakeService, *mock.MockDataAdapter, *mock.MockSnapshotRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	data := mock.NewMockDataAdapter(ctrl)
	snaps := mock.NewMockSnapshotRepository(ctrl)

	svc := NewIntakeService(data, snaps, IntakeHooks{}, testAppCfg, logger.Nop()).(*intakeService)
	svc.now = func() time.Time { return testNow }
	return svc, data, snaps
}

// newFakeIntake returns an attached intake store over an in-memory backend.
func newFakeIntake(t *testing.T) (*intakeService, *fakeBackend, *memorySnapshots) {
	t.Helper()
	svc, data, snaps := newTestIntake(t)

	backend := newFakeBackend()
	backend.install(data)
	mem := newMemorySnapshots()
	mem.install(snaps)

	svc.Attach(testIdentity)
	return svc, backend, mem
}

func ptr[T any](v T) *T { return &v }
