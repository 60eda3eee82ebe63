// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-water-keeper/internal/adapter"
	"github.com/MKhiriev/go-water-keeper/internal/app"
	"github.com/MKhiriev/go-water-keeper/internal/config"
	"github.com/MKhiriev/go-water-keeper/internal/logger"
	"github.com/MKhiriev/go-water-keeper/internal/store"
	"github.com/MKhiriev/go-water-keeper/internal/utils"
	"github.com/MKhiriev/go-water-keeper/internal/validators"
	"github.com/MKhiriev/go-water-keeper/models"
)

// IntakeHooks are the callbacks through which the intake store reports back
// to the rest of the client. Any of them may be nil.
type IntakeHooks struct {
	// OnSettingsChanged receives every settings row the store saves or reads
	// back from the backend. It must not call into the intake store.
	OnSettingsChanged func(settings models.UserSettings)
}

type intakeService struct {
	adapter   adapter.DataAdapter
	snapshots store.SnapshotRepository
	validator validators.Validator
	hooks     IntakeHooks
	logger    *logger.Logger

	timeout    time.Duration
	windowDays int
	now        func() time.Time

	// queue serializes operations that read-modify-write remote state.
	queue sync.Mutex

	mu       sync.RWMutex
	identity models.Identity
	// epoch changes whenever the store is reset or re-attached, so results
	// of operations started before that are dropped.
	epoch uint64
	state IntakeState

	subs subscribers[IntakeState]
}

// intakeOp is the identity and epoch an operation was started with.
type intakeOp struct {
	identity models.Identity
	epoch    uint64
}

// NewIntakeService builds the intake store. snapshots may be nil, in which
// case nothing is persisted locally.
func NewIntakeService(
	data adapter.DataAdapter,
	snapshots store.SnapshotRepository,
	hooks IntakeHooks,
	cfg config.ClientApp,
	log *logger.Logger,
) IntakeService {
	return &intakeService{
		adapter:    data,
		snapshots:  snapshots,
		validator:  validators.NewSettingsValidator(),
		hooks:      hooks,
		logger:     log,
		timeout:    cfg.OperationTimeout,
		windowDays: cfg.StreakWindowDays,
		now:        time.Now,
		state:      defaultIntakeState(),
	}
}

func (s *intakeService) Attach(identity models.Identity) {
	s.mu.Lock()
	if s.identity.UserID != identity.UserID {
		s.epoch++
	}
	s.identity = identity
	s.mu.Unlock()
}

func (s *intakeService) Attached() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.identity.IsZero()
}

func (s *intakeService) ApplySettings(settings models.UserSettings) {
	s.update(func(st *IntakeState) { applySettings(st, settings) })
}

func applySettings(st *IntakeState, settings models.UserSettings) {
	st.DailyGoalMl = settings.DailyGoalMl
	if settings.SelectedCompanion.Valid() {
		st.SelectedCompanion = settings.SelectedCompanion
	}
	if settings.CupVolumeMl > 0 {
		st.CupVolumeMl = settings.CupVolumeMl
	}
	if settings.WeightKg != nil {
		w := *settings.WeightKg
		st.WeightKg = &w
	}
}

func (s *intakeService) Restore(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}

	raw, err := s.snapshots.Load(ctx, store.KeyIntakeSnapshot)
	if errors.Is(err, store.ErrSnapshotNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load intake snapshot: %w", err)
	}

	var snap models.Snapshot
	if err = json.Unmarshal(raw, &snap); err != nil {
		s.logger.Warn().Err(err).Str("func", "*intakeService.Restore").Msg("ignoring unreadable intake snapshot")
		return nil
	}

	today := utils.Day(s.now())
	history := make([]models.WaterEntry, 0, len(snap.History))
	for _, e := range snap.History {
		if e.Date == today {
			history = append(history, e)
		}
	}
	intake := snap.WaterIntake
	if len(history) != len(snap.History) {
		// the snapshot is from an earlier day
		intake = models.SumAmounts(history)
	}

	s.update(func(st *IntakeState) {
		st.DailyGoalMl = snap.DailyGoalMl
		st.WaterIntake = intake
		st.History = history
		if snap.SelectedCompanion.Valid() {
			st.SelectedCompanion = snap.SelectedCompanion
		}
		if snap.CupVolumeMl > 0 {
			st.CupVolumeMl = snap.CupVolumeMl
		}
	})
	return nil
}

func (s *intakeService) SetDailyGoal(ctx context.Context, ml int) error {
	if err := s.validator.Validate(ctx, models.SettingsPatch{DailyGoalMl: &ml}, validators.FieldDailyGoal); err != nil {
		return s.fail(err, app.MsgGoalOutOfRange)
	}

	return s.run(ctx, "SetDailyGoal", app.MsgSaveFailed, func(ctx context.Context, op intakeOp) error {
		stored, err := writeSettings(ctx, s.adapter, op.identity, models.SettingsPatch{DailyGoalMl: &ml})
		if err != nil {
			return err
		}
		s.adoptSettings(op, stored)

		return s.loadHistory(ctx, op)
	})
}

func (s *intakeService) AddWater(ctx context.Context, ml int) error {
	if err := s.validator.Validate(ctx, models.WaterEntry{AmountMl: ml}, validators.FieldAmount); err != nil {
		return s.fail(err, app.MsgInvalidAmount)
	}

	return s.run(ctx, "AddWater", app.MsgSaveFailed, func(ctx context.Context, op intakeOp) error {
		today := utils.Day(s.now())

		// the cap uses the stored goal, since local state may have been
		// reset by a failed reload
		goal := 0
		settings, err := s.adapter.GetSettings(ctx, op.identity.UserID)
		switch {
		case err == nil:
			goal = settings.DailyGoalMl
			s.adoptSettings(op, settings)
		case !errors.Is(err, adapter.ErrNotFound):
			return fmt.Errorf("load daily goal: %w", err)
		}

		entries, err := s.adapter.ListWaterEntries(ctx, op.identity.UserID, models.EntryQuery{From: today})
		if err != nil {
			return fmt.Errorf("list today's entries: %w", err)
		}

		total := models.SumAmounts(entries)
		if goal > 0 && total+ml > goal {
			return fmt.Errorf("%w: %d + %d > %d", ErrGoalAlreadyReached, total, ml, goal)
		}

		entry := models.WaterEntry{UserID: op.identity.UserID, AmountMl: ml, Date: today}
		if _, err = s.adapter.InsertWaterEntry(ctx, entry); err != nil {
			return fmt.Errorf("insert water entry: %w", err)
		}
		s.commit(op, func(st *IntakeState) { st.WaterIntake = total + ml })

		return s.loadHistory(ctx, op)
	})
}

func (s *intakeService) LoadHistory(ctx context.Context) error {
	return s.run(ctx, "LoadHistory", app.MsgLoadHistoryFailed, s.loadHistory)
}

// loadHistory must run inside the operation queue.
func (s *intakeService) loadHistory(ctx context.Context, op intakeOp) error {
	today := utils.Day(s.now())

	settings, err := s.adapter.GetSettings(ctx, op.identity.UserID)
	found := err == nil
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		s.resetLocal(op)
		return fmt.Errorf("load settings: %w", err)
	}

	entries, err := s.adapter.ListWaterEntries(ctx, op.identity.UserID, s.historyQuery(today))
	if err != nil {
		s.resetLocal(op)
		return fmt.Errorf("load water entries: %w", err)
	}

	todays, past := splitByDay(entries, today)
	committed := s.commit(op, func(st *IntakeState) {
		if found {
			applySettings(st, settings)
		}
		st.History = todays
		st.WaterIntake = models.SumAmounts(todays)
		st.PastDays = past
	})
	if committed {
		s.persist(ctx)
		if found {
			s.settingsChanged(settings)
		}
	}

	return nil
}

func (s *intakeService) historyQuery(today string) models.EntryQuery {
	if s.windowDays <= 0 {
		return models.EntryQuery{From: today}
	}
	return models.EntryQuery{From: utils.AddDays(today, -s.windowDays), To: today}
}

// splitByDay separates today's entries, kept in backend order, from the
// per-day totals of earlier days, newest first.
func splitByDay(entries []models.WaterEntry, today string) ([]models.WaterEntry, []models.DaySummary) {
	todays := make([]models.WaterEntry, 0, len(entries))
	byDay := make(map[string]*models.DaySummary)

	for _, e := range entries {
		if e.Date == today {
			todays = append(todays, e)
			continue
		}
		d, ok := byDay[e.Date]
		if !ok {
			d = &models.DaySummary{Date: e.Date}
			byDay[e.Date] = d
		}
		d.TotalMl += e.AmountMl
		d.Entries++
	}

	past := make([]models.DaySummary, 0, len(byDay))
	for _, d := range byDay {
		past = append(past, *d)
	}
	slices.SortFunc(past, func(a, b models.DaySummary) int {
		switch {
		case a.Date > b.Date:
			return -1
		case a.Date < b.Date:
			return 1
		}
		return 0
	})

	return todays, past
}

func (s *intakeService) SetSelectedCompanion(ctx context.Context, companion models.Companion) error {
	if err := s.validator.Validate(ctx, models.SettingsPatch{SelectedCompanion: &companion}, validators.FieldCompanion); err != nil {
		return s.fail(err, app.MsgUnknownCompanion)
	}

	return s.run(ctx, "SetSelectedCompanion", app.MsgSaveFailed, func(ctx context.Context, op intakeOp) error {
		stored, err := writeSettings(ctx, s.adapter, op.identity, models.SettingsPatch{SelectedCompanion: &companion})
		if err != nil {
			return err
		}
		s.adoptSettings(op, stored)

		return s.loadHistory(ctx, op)
	})
}

func (s *intakeService) SetCupVolume(ctx context.Context, ml int) error {
	if err := s.validator.Validate(ctx, models.SettingsPatch{CupVolumeMl: &ml}, validators.FieldCupVolume); err != nil {
		return s.fail(err, app.MsgInvalidCupVolume)
	}

	return s.run(ctx, "SetCupVolume", app.MsgSaveFailed, func(ctx context.Context, op intakeOp) error {
		stored, err := writeSettings(ctx, s.adapter, op.identity, models.SettingsPatch{CupVolumeMl: &ml})
		if err != nil {
			return err
		}
		s.adoptSettings(op, stored)

		return s.loadHistory(ctx, op)
	})
}

func (s *intakeService) SetWeight(ctx context.Context, kg float64) error {
	if err := s.validator.Validate(ctx, models.SettingsPatch{WeightKg: &kg}, validators.FieldWeight); err != nil {
		return s.fail(err, app.MsgInvalidWeight)
	}

	return s.run(ctx, "SetWeight", app.MsgSaveFailed, func(ctx context.Context, op intakeOp) error {
		patch := models.SettingsPatch{WeightKg: &kg}
		if s.State().DailyGoalMl == 0 {
			goal := models.ClampDailyGoal(models.RecommendedIntakeMl(&kg))
			patch.DailyGoalMl = &goal
		}

		stored, err := writeSettings(ctx, s.adapter, op.identity, patch)
		if err != nil {
			return err
		}
		s.adoptSettings(op, stored)

		return s.loadHistory(ctx, op)
	})
}

// adoptSettings applies a settings row the backend returned and passes it on.
func (s *intakeService) adoptSettings(op intakeOp, settings models.UserSettings) {
	if s.commit(op, func(st *IntakeState) { applySettings(st, settings) }) {
		s.settingsChanged(settings)
	}
}

func (s *intakeService) settingsChanged(settings models.UserSettings) {
	if s.hooks.OnSettingsChanged != nil {
		s.hooks.OnSettingsChanged(settings)
	}
}

func (s *intakeService) DailyProgress() float64 {
	st := s.State()
	return dailyProgress(st.WaterIntake, st.DailyGoalMl)
}

func dailyProgress(intake, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return min(100, float64(intake)/float64(goal)*100)
}

func (s *intakeService) Streak() int {
	return streak(utils.Day(s.now()), s.State())
}

func streak(today string, st IntakeState) int {
	days := make(map[string]bool, len(st.PastDays)+1)
	for _, e := range st.History {
		days[e.Date] = true
	}
	for _, d := range st.PastDays {
		if d.Entries > 0 {
			days[d.Date] = true
		}
	}

	n := 0
	for day := today; days[day]; day = utils.AddDays(day, -1) {
		n++
	}
	return n
}

func (s *intakeService) RecommendedIntake() int {
	return models.RecommendedIntakeMl(s.State().WeightKg)
}

func (s *intakeService) DaySummaries() []models.DaySummary {
	st := s.State()

	out := make([]models.DaySummary, 0, len(st.PastDays)+1)
	out = append(out, models.DaySummary{
		Date:    utils.Day(s.now()),
		TotalMl: st.WaterIntake,
		Entries: len(st.History),
		GoalMet: goalMet(st.WaterIntake, st.DailyGoalMl),
	})
	for _, d := range st.PastDays {
		d.GoalMet = goalMet(d.TotalMl, st.DailyGoalMl)
		out = append(out, d)
	}

	return out
}

func goalMet(total, goal int) bool {
	return goal > 0 && total >= goal
}

func (s *intakeService) CompanionMood() models.Mood {
	st := s.State()
	return models.MoodFor(dailyProgress(st.WaterIntake, st.DailyGoalMl), streak(utils.Day(s.now()), st))
}

func (s *intakeService) ResetState(ctx context.Context) error {
	s.mu.Lock()
	s.identity = models.Identity{}
	s.epoch++
	s.state = defaultIntakeState()
	cp := s.state.clone()
	s.mu.Unlock()
	s.subs.notify(cp)

	if s.snapshots == nil {
		return nil
	}
	if err := s.snapshots.Delete(ctx, store.KeyIntakeSnapshot); err != nil {
		s.logger.Err(err).Str("func", "*intakeService.ResetState").Msg("error purging intake snapshot")
		return fmt.Errorf("purge intake snapshot: %w", err)
	}
	return nil
}

func (s *intakeService) ClearError() {
	s.update(func(st *IntakeState) { st.Error = "" })
}

func (s *intakeService) State() IntakeState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

func (s *intakeService) Subscribe(fn func(IntakeState)) func() {
	return s.subs.add(fn)
}

// run executes fn inside the operation queue with IsLoading set, a timeout
// applied and failures recorded in the state.
func (s *intakeService) run(ctx context.Context, name, fallback string, fn func(context.Context, intakeOp) error) error {
	s.queue.Lock()
	defer s.queue.Unlock()

	s.mu.Lock()
	op := intakeOp{identity: s.identity, epoch: s.epoch}
	s.mu.Unlock()

	if op.identity.IsZero() {
		return s.fail(ErrAuthRequired, app.MsgAuthRequired)
	}

	s.commit(op, func(st *IntakeState) {
		st.IsLoading = true
		st.Error = ""
	})

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	opLog := &logger.Logger{Logger: s.logger.With().Str("op", name).Str("user_id", op.identity.UserID).Logger()}
	ctx = opLog.WithContext(ctx)

	err := mapAdapterError(fn(ctx, op))
	if err != nil && !errors.Is(err, ErrGoalAlreadyReached) {
		opLog.Err(err).Str("func", "*intakeService."+name).Msg("operation failed")
	}

	s.commit(op, func(st *IntakeState) {
		st.IsLoading = false
		if err != nil {
			st.Error = errorMessage(err, fallback)
		}
	})

	return err
}

// fail records err without running anything.
func (s *intakeService) fail(err error, fallback string) error {
	s.update(func(st *IntakeState) { st.Error = errorMessage(err, fallback) })
	return err
}

// resetLocal drops everything loaded for op's identity but keeps it attached
// so the load can be retried.
func (s *intakeService) resetLocal(op intakeOp) {
	s.commit(op, func(st *IntakeState) {
		loading := st.IsLoading
		*st = defaultIntakeState()
		st.IsLoading = loading
	})
}

func (s *intakeService) update(fn func(*IntakeState)) {
	s.mu.Lock()
	fn(&s.state)
	cp := s.state.clone()
	s.mu.Unlock()

	s.subs.notify(cp)
}

// commit applies fn only when the store was not reset since op started.
func (s *intakeService) commit(op intakeOp, fn func(*IntakeState)) bool {
	s.mu.Lock()
	if s.epoch != op.epoch {
		s.mu.Unlock()
		return false
	}
	fn(&s.state)
	cp := s.state.clone()
	s.mu.Unlock()

	s.subs.notify(cp)
	return true
}

func (s *intakeService) persist(ctx context.Context) {
	if s.snapshots == nil {
		return
	}

	raw, err := json.Marshal(s.State().snapshot())
	if err != nil {
		s.logger.Err(err).Str("func", "*intakeService.persist").Msg("error encoding intake snapshot")
		return
	}
	if err = s.snapshots.Save(ctx, store.KeyIntakeSnapshot, raw); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*intakeService.persist").Msg("error saving intake snapshot")
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
