// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-water-keeper/internal/adapter"
	"github.com/MKhiriev/go-water-keeper/internal/app"
	"github.com/MKhiriev/go-water-keeper/internal/config"
	"github.com/MKhiriev/go-water-keeper/internal/logger"
	"github.com/MKhiriev/go-water-keeper/internal/store"
	"github.com/MKhiriev/go-water-keeper/internal/validators"
	"github.com/MKhiriev/go-water-keeper/models"
)

// SessionHooks are the callbacks through which the session store drives the
// rest of the client. Any of them may be nil.
type SessionHooks struct {
	// OnAuthenticated runs after the settings load of a sign-in, whether it
	// succeeded or not.
	OnAuthenticated func(ctx context.Context, identity models.Identity) error

	// OnSettingsLoaded receives every settings row the store loads, creates
	// or saves.
	OnSettingsLoaded func(settings models.UserSettings)

	// OnSignedOut runs right after the local state is cleared on sign-out.
	OnSignedOut func(ctx context.Context) error
}

type sessionService struct {
	auth      adapter.AuthAdapter
	data      adapter.DataAdapter
	snapshots store.SnapshotRepository
	validator validators.Validator
	hooks     SessionHooks
	logger    *logger.Logger
	timeout   time.Duration

	signIns singleflight.Group
	queue   sync.Mutex
	// hookMu orders OnAuthenticated against OnSignedOut, so a sign-out
	// cannot slip between the epoch check and the hook of a sign-in.
	hookMu sync.Mutex

	mu    sync.RWMutex
	epoch uint64
	state SessionState

	subs subscribers[SessionState]
}

// NewSessionService builds the session store. snapshots may be nil, in which
// case the session is not persisted across restarts.
func NewSessionService(
	auth adapter.AuthAdapter,
	data adapter.DataAdapter,
	snapshots store.SnapshotRepository,
	hooks SessionHooks,
	cfg config.ClientApp,
	log *logger.Logger,
) SessionService {
	return &sessionService{
		auth:      auth,
		data:      data,
		snapshots: snapshots,
		validator: validators.NewSettingsValidator(),
		hooks:     hooks,
		logger:    log,
		timeout:   cfg.OperationTimeout,
		state:     SessionState{Phase: PhaseSignedOut},
	}
}

func (s *sessionService) SignIn(ctx context.Context, identity models.Identity) error {
	if identity.IsZero() || s.loaded(identity.UserID) {
		return nil
	}

	_, err, _ := s.signIns.Do(identity.UserID, func() (any, error) {
		if s.loaded(identity.UserID) {
			return nil, nil
		}
		// the shared load must outlive the caller that happened to start it
		return nil, s.signIn(context.WithoutCancel(ctx), identity)
	})
	return err
}

// loaded reports whether userID is signed in and past the settings load.
func (s *sessionService) loaded(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Identity.UserID == userID &&
		(s.state.Phase == PhaseReady || s.state.Phase == PhaseReadyWithError)
}

func (s *sessionService) signIn(ctx context.Context, identity models.Identity) error {
	s.queue.Lock()
	defer s.queue.Unlock()

	s.mu.Lock()
	s.epoch++
	epoch := s.epoch
	s.state = SessionState{Phase: PhaseSettingsLoading, Identity: identity, IsLoading: true}
	cp := s.state.clone()
	s.mu.Unlock()
	s.subs.notify(cp)

	opCtx, cancel := withTimeout(ctx, s.timeout)
	err := s.loadSettings(s.opContext(opCtx, "SignIn", identity), epoch, identity)
	cancel()

	s.authenticated(ctx, epoch, identity)

	return err
}

func (s *sessionService) authenticated(ctx context.Context, epoch uint64, identity models.Identity) {
	if s.hooks.OnAuthenticated == nil {
		return
	}

	s.hookMu.Lock()
	defer s.hookMu.Unlock()

	if !s.current(epoch) {
		return
	}
	if err := s.hooks.OnAuthenticated(ctx, identity); err != nil {
		s.logger.Err(err).Str("func", "*sessionService.signIn").Str("user_id", identity.UserID).Msg("post sign-in hook failed")
	}
}

func (s *sessionService) signedOut(ctx context.Context, op string) {
	if s.hooks.OnSignedOut == nil {
		return
	}

	s.hookMu.Lock()
	defer s.hookMu.Unlock()

	if err := s.hooks.OnSignedOut(ctx); err != nil {
		s.logger.Err(err).Str("func", "*sessionService."+op).Msg("sign-out hook failed")
	}
}

func (s *sessionService) LoadSettings(ctx context.Context) error {
	s.queue.Lock()
	defer s.queue.Unlock()

	s.mu.Lock()
	epoch := s.epoch
	identity := s.state.Identity
	s.mu.Unlock()

	if identity.IsZero() {
		return s.fail(epoch, ErrAuthRequired, app.MsgAuthRequired)
	}

	s.commit(epoch, func(st *SessionState) {
		st.IsLoading = true
		st.Error = ""
	})

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.loadSettings(s.opContext(ctx, "LoadSettings", identity), epoch, identity)
}

// loadSettings must run inside the operation queue. It always clears
// IsLoading.
func (s *sessionService) loadSettings(ctx context.Context, epoch uint64, identity models.Identity) error {
	settings, err := s.data.GetSettings(ctx, identity.UserID)
	if errors.Is(err, adapter.ErrNotFound) {
		settings, err = s.createSettings(ctx, identity)
	}

	if err != nil {
		err = mapAdapterError(err)
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.loadSettings").Msg("error loading settings")

		s.commit(epoch, func(st *SessionState) {
			st.Phase = PhaseReadyWithError
			st.Settings = nil
			st.IsLoading = false
			st.Error = errorMessage(err, app.MsgLoadSettingsFailed)
		})
		return err
	}

	committed := s.commit(epoch, func(st *SessionState) {
		st.Phase = PhaseReady
		st.Settings = &settings
		st.IsLoading = false
		st.Error = ""
	})
	if committed && s.hooks.OnSettingsLoaded != nil {
		s.hooks.OnSettingsLoaded(settings)
	}

	return nil
}

// createSettings inserts the default row. A concurrent insert by another
// client is resolved by reading the row it created.
func (s *sessionService) createSettings(ctx context.Context, identity models.Identity) (models.UserSettings, error) {
	stored, err := s.data.InsertSettings(ctx, models.DefaultSettings(identity.UserID, identity.Metadata.WeightKg))
	if errors.Is(err, adapter.ErrConflict) {
		return s.data.GetSettings(ctx, identity.UserID)
	}
	return stored, err
}

func (s *sessionService) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.epoch++
	epoch := s.epoch
	s.state = SessionState{Phase: PhaseSignedOut, IsLoading: true}
	cp := s.state.clone()
	s.mu.Unlock()
	s.subs.notify(cp)

	s.signedOut(ctx, "SignOut")
	s.deleteSession(ctx)

	opCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	err := s.auth.SignOut(opCtx)
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "*sessionService.SignOut").Msg("remote sign-out failed")
	}

	s.commit(epoch, func(st *SessionState) {
		st.IsLoading = false
		if err != nil {
			st.Error = app.MsgSignOutFailed
		}
	})

	return err
}

// clearLocal drops the session after the backend ended it.
func (s *sessionService) clearLocal(ctx context.Context) {
	s.mu.Lock()
	if s.state.Identity.IsZero() {
		s.mu.Unlock()
		return
	}
	s.epoch++
	s.state = SessionState{Phase: PhaseSignedOut, Error: app.MsgSessionExpired}
	cp := s.state.clone()
	s.mu.Unlock()
	s.subs.notify(cp)

	s.signedOut(ctx, "clearLocal")
	s.deleteSession(ctx)
}

func (s *sessionService) UpdateSettings(ctx context.Context, patch models.SettingsPatch) error {
	if err := s.validator.Validate(ctx, patch); err != nil {
		return s.fail(s.currentEpoch(), err, app.MsgSaveFailed)
	}
	if patch.IsEmpty() {
		return nil
	}

	s.queue.Lock()
	defer s.queue.Unlock()

	s.mu.Lock()
	epoch := s.epoch
	identity := s.state.Identity
	s.mu.Unlock()

	if identity.IsZero() {
		return s.fail(epoch, ErrAuthRequired, app.MsgAuthRequired)
	}

	s.commit(epoch, func(st *SessionState) {
		st.IsLoading = true
		st.Error = ""
	})

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	ctx = s.opContext(ctx, "UpdateSettings", identity)

	stored, err := writeSettings(ctx, s.data, identity, patch)
	if err != nil {
		err = mapAdapterError(err)
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.UpdateSettings").Msg("error saving settings")

		s.commit(epoch, func(st *SessionState) {
			st.IsLoading = false
			st.Error = errorMessage(err, app.MsgSaveFailed)
		})
		return err
	}

	committed := s.commit(epoch, func(st *SessionState) {
		st.Phase = PhaseReady
		st.Settings = &stored
		st.IsLoading = false
	})
	if committed && s.hooks.OnSettingsLoaded != nil {
		s.hooks.OnSettingsLoaded(stored)
	}

	return nil
}

func (s *sessionService) ApplySettings(settings models.UserSettings) {
	s.mu.Lock()
	if settings.UserID != s.state.Identity.UserID ||
		(s.state.Phase != PhaseReady && s.state.Phase != PhaseReadyWithError) {
		s.mu.Unlock()
		return
	}
	if s.state.Phase == PhaseReadyWithError {
		s.state.Phase = PhaseReady
		s.state.Error = ""
	}
	s.state.Settings = &settings
	cp := s.state.clone()
	s.mu.Unlock()

	s.subs.notify(cp)
}

func (s *sessionService) SignInWithPassword(ctx context.Context, creds models.Credentials) error {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := s.validator.Validate(ctx, creds); err != nil {
		return s.fail(s.currentEpoch(), fmt.Errorf("%w: %w", ErrInvalidInput, err), app.MsgSignInFailed)
	}

	epoch := s.beginAuth()

	opCtx, cancel := withTimeout(ctx, s.timeout)
	session, err := s.auth.SignIn(opCtx, creds)
	cancel()
	if err != nil {
		return s.failAuth(epoch, "SignInWithPassword", err, app.MsgSignInFailed)
	}

	s.saveSession(ctx, session)
	err = s.SignIn(ctx, session.User)
	s.finishLoading()
	return err
}

func (s *sessionService) SignUp(ctx context.Context, reg models.Registration) error {
	reg.Email = strings.TrimSpace(reg.Email)
	if err := s.validator.Validate(ctx, reg, validators.FieldEmail, validators.FieldPassword); err != nil {
		return s.fail(s.currentEpoch(), fmt.Errorf("%w: %w", ErrInvalidInput, err), app.MsgSignInFailed)
	}
	if err := s.validator.Validate(ctx, reg, validators.FieldWeight); err != nil {
		return s.fail(s.currentEpoch(), err, app.MsgInvalidWeight)
	}

	epoch := s.beginAuth()

	opCtx, cancel := withTimeout(ctx, s.timeout)
	session, err := s.auth.SignUp(opCtx, reg)
	cancel()
	if err != nil {
		return s.failAuth(epoch, "SignUp", err, app.MsgSignInFailed)
	}

	// the backend may omit profile fields from the returned user
	if session.User.Metadata.WeightKg == nil {
		session.User.Metadata.WeightKg = reg.WeightKg
	}
	if session.User.Metadata.Name == "" {
		session.User.Metadata.Name = reg.Name
	}

	s.saveSession(ctx, session)
	err = s.SignIn(ctx, session.User)
	s.finishLoading()
	return err
}

func (s *sessionService) beginAuth() uint64 {
	s.mu.Lock()
	epoch := s.epoch
	s.state.IsLoading = true
	s.state.Error = ""
	cp := s.state.clone()
	s.mu.Unlock()
	s.subs.notify(cp)

	return epoch
}

// finishLoading clears IsLoading once a sign-in that may have been
// coalesced with another one has returned.
func (s *sessionService) finishLoading() {
	s.mu.Lock()
	s.state.IsLoading = false
	cp := s.state.clone()
	s.mu.Unlock()
	s.subs.notify(cp)
}

func (s *sessionService) failAuth(epoch uint64, op string, err error, fallback string) error {
	err = mapAdapterError(err)
	s.logger.Err(err).Str("func", "*sessionService."+op).Msg("authentication failed")

	s.commit(epoch, func(st *SessionState) {
		st.IsLoading = false
		st.Error = errorMessage(err, fallback)
	})
	return err
}

func (s *sessionService) RestoreSession(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}

	raw, err := s.snapshots.Load(ctx, store.KeyAuthSnapshot)
	if errors.Is(err, store.ErrSnapshotNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load persisted session: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(raw, &session); err != nil || session.IsZero() {
		s.logger.Warn().Err(err).Str("func", "*sessionService.RestoreSession").Msg("dropping unreadable persisted session")
		s.deleteSession(ctx)
		return nil
	}

	s.auth.SetSession(session)

	opCtx, cancel := withTimeout(ctx, s.timeout)
	current, err := s.auth.Session(opCtx)
	cancel()
	if errors.Is(err, adapter.ErrNoSession) {
		s.deleteSession(ctx)
		return nil
	}
	if err != nil {
		return s.failAuth(s.currentEpoch(), "RestoreSession", err, app.MsgSignInFailed)
	}

	if current.AccessToken != session.AccessToken {
		s.saveSession(ctx, current)
	}
	return s.SignIn(ctx, current.User)
}

func (s *sessionService) WatchAuthChanges(ctx context.Context) func() {
	return s.auth.OnAuthStateChange(func(event models.AuthEvent, session *models.Session) {
		switch event {
		case models.AuthEventSignedIn:
			if session != nil {
				_ = s.SignIn(ctx, session.User)
			}
		case models.AuthEventTokenRefreshed:
			if session != nil {
				s.saveSession(ctx, *session)
			}
		case models.AuthEventSignedOut:
			s.clearLocal(ctx)
		}
	})
}

func (s *sessionService) Identity() models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Identity
}

func (s *sessionService) Settings() *models.UserSettings {
	return s.State().Settings
}

func (s *sessionService) ClearError() {
	s.mu.Lock()
	s.state.Error = ""
	cp := s.state.clone()
	s.mu.Unlock()
	s.subs.notify(cp)
}

func (s *sessionService) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

func (s *sessionService) Subscribe(fn func(SessionState)) func() {
	return s.subs.add(fn)
}

func (s *sessionService) saveSession(ctx context.Context, session models.Session) {
	if s.snapshots == nil {
		return
	}

	raw, err := json.Marshal(session)
	if err != nil {
		s.logger.Err(err).Str("func", "*sessionService.saveSession").Msg("error encoding session")
		return
	}
	if err = s.snapshots.Save(ctx, store.KeyAuthSnapshot, raw); err != nil {
		s.logger.Err(err).Str("func", "*sessionService.saveSession").Msg("error persisting session")
	}
}

func (s *sessionService) deleteSession(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Delete(ctx, store.KeyAuthSnapshot); err != nil {
		s.logger.Err(err).Str("func", "*sessionService.deleteSession").Msg("error purging persisted session")
	}
}

func (s *sessionService) opContext(ctx context.Context, op string, identity models.Identity) context.Context {
	l := &logger.Logger{Logger: s.logger.With().Str("op", op).Str("user_id", identity.UserID).Logger()}
	return l.WithContext(ctx)
}

func (s *sessionService) fail(epoch uint64, err error, fallback string) error {
	s.commit(epoch, func(st *SessionState) { st.Error = errorMessage(err, fallback) })
	return err
}

func (s *sessionService) current(epoch uint64) bool {
	return s.currentEpoch() == epoch
}

func (s *sessionService) currentEpoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// commit applies fn only when no sign-in or sign-out happened since epoch
// was read.
func (s *sessionService) commit(epoch uint64, fn func(*SessionState)) bool {
	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return false
	}
	fn(&s.state)
	cp := s.state.clone()
	s.mu.Unlock()

	s.subs.notify(cp)
	return true
}
