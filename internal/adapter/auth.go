// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-water-keeper/internal/utils"
	"github.com/MKhiriev/go-water-keeper/models"
)

// authResponse is the body of the token and sign-up endpoints. Sign-up
// returns a bare user object when email confirmation is pending, which is
// why the user fields are also accepted at the top level.
type authResponse struct {
	AccessToken  string          `json:"access_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int64           `json:"expires_in"`
	ExpiresAt    int64           `json:"expires_at"`
	RefreshToken string          `json:"refresh_token"`
	User         models.Identity `json:"user"`

	ID           string              `json:"id"`
	Email        string              `json:"email"`
	UserMetadata models.UserMetadata `json:"user_metadata"`
}

func (r authResponse) identity() models.Identity {
	if r.User.UserID != "" {
		return r.User
	}
	return models.Identity{UserID: r.ID, Email: r.Email, Metadata: r.UserMetadata}
}

func (r authResponse) toSession(now time.Time) (models.Session, error) {
	session := models.Session{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		TokenType:    r.TokenType,
		User:         r.identity(),
	}

	switch {
	case r.ExpiresAt > 0:
		session.ExpiresAt = time.Unix(r.ExpiresAt, 0)
	case r.ExpiresIn > 0:
		session.ExpiresAt = now.Add(time.Duration(r.ExpiresIn) * time.Second)
	}

	if session.AccessToken == "" {
		return session, nil
	}

	claims, err := utils.ParseAccessToken(session.AccessToken)
	if err != nil {
		return models.Session{}, err
	}
	if session.User.UserID == "" {
		session.User.UserID = claims.Subject
		session.User.Email = claims.Email
	}
	if session.User.UserID != claims.Subject {
		return models.Session{}, fmt.Errorf("%w: token subject does not match user", utils.ErrInvalidAccessToken)
	}
	if session.ExpiresAt.IsZero() {
		session.ExpiresAt = claims.ExpiresAt
	}

	return session, nil
}

type signUpRequest struct {
	Email    string              `json:"email"`
	Password string              `json:"password"`
	Data     models.UserMetadata `json:"data"`
}

// SignUp implements [AuthAdapter]. It POSTs to /auth/v1/signup with the
// profile fields as user metadata.
func (h *httpServerAdapter) SignUp(ctx context.Context, reg models.Registration) (models.Session, error) {
	var result authResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(signUpRequest{
			Email:    reg.Email,
			Password: reg.Password,
			Data:     models.UserMetadata{Name: reg.Name, BirthDate: reg.BirthDate, WeightKg: reg.WeightKg},
		}).
		SetResult(&result).
		Post(authPath + "/signup")
	if err != nil {
		return models.Session{}, fmt.Errorf("sign up request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	session, err := result.toSession(h.now())
	if err != nil {
		return models.Session{}, fmt.Errorf("sign up parse session: %w", err)
	}
	if session.IsZero() {
		return session, ErrSessionNotIssued
	}

	h.storeSession(session, models.AuthEventSignedIn)
	return session, nil
}

// SignIn implements [AuthAdapter]. It POSTs the credentials to
// /auth/v1/token?grant_type=password.
func (h *httpServerAdapter) SignIn(ctx context.Context, creds models.Credentials) (models.Session, error) {
	var result authResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", "password").
		SetBody(creds).
		SetResult(&result).
		Post(authPath + "/token")
	if err != nil {
		return models.Session{}, fmt.Errorf("sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	session, err := result.toSession(h.now())
	if err != nil {
		return models.Session{}, fmt.Errorf("sign in parse session: %w", err)
	}
	if session.IsZero() {
		return models.Session{}, fmt.Errorf("sign in: %w", ErrSessionNotIssued)
	}

	h.storeSession(session, models.AuthEventSignedIn)
	return session, nil
}

// SignOut implements [AuthAdapter]. The session is dropped locally before
// the backend is asked to revoke it.
func (h *httpServerAdapter) SignOut(ctx context.Context) error {
	h.mu.Lock()
	session := h.session
	h.session = models.Session{}
	h.mu.Unlock()

	if session.IsZero() {
		return nil
	}
	h.emit(models.AuthEventSignedOut, nil)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+session.AccessToken).
		Post(authPath + "/logout")
	if err != nil {
		return fmt.Errorf("sign out request: %w", err)
	}

	return mapHTTPError(resp)
}

// Session implements [AuthAdapter].
func (h *httpServerAdapter) Session(ctx context.Context) (models.Session, error) {
	h.mu.RLock()
	session := h.session
	h.mu.RUnlock()

	if session.IsZero() {
		return models.Session{}, ErrNoSession
	}
	if !session.Expired(h.now().Add(refreshSkew)) {
		return session, nil
	}
	if session.RefreshToken == "" {
		h.dropSession()
		return models.Session{}, ErrNoSession
	}

	refreshed, err := h.refresh(ctx, session.RefreshToken)
	if err != nil {
		// a rejected refresh token means the session is gone for good
		if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrUnauthorized) {
			h.dropSession()
			return models.Session{}, fmt.Errorf("%w: %v", ErrNoSession, err)
		}
		return models.Session{}, err
	}

	h.storeSession(refreshed, models.AuthEventTokenRefreshed)
	return refreshed, nil
}

func (h *httpServerAdapter) refresh(ctx context.Context, refreshToken string) (models.Session, error) {
	var result authResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", "refresh_token").
		SetBody(map[string]string{"refresh_token": refreshToken}).
		SetResult(&result).
		Post(authPath + "/token")
	if err != nil {
		return models.Session{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	session, err := result.toSession(h.now())
	if err != nil {
		return models.Session{}, fmt.Errorf("refresh parse session: %w", err)
	}
	return session, nil
}

// SetSession implements [AuthAdapter].
func (h *httpServerAdapter) SetSession(session models.Session) {
	h.mu.Lock()
	h.session = session
	h.mu.Unlock()
}

// OnAuthStateChange implements [AuthAdapter].
func (h *httpServerAdapter) OnAuthStateChange(fn func(models.AuthEvent, *models.Session)) func() {
	h.listenersMu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	h.listenersMu.Unlock()

	return func() {
		h.listenersMu.Lock()
		delete(h.listeners, id)
		h.listenersMu.Unlock()
	}
}

func (h *httpServerAdapter) storeSession(session models.Session, event models.AuthEvent) {
	h.mu.Lock()
	h.session = session
	h.mu.Unlock()

	h.emit(event, &session)
}

func (h *httpServerAdapter) dropSession() {
	h.mu.Lock()
	h.session = models.Session{}
	h.mu.Unlock()

	h.emit(models.AuthEventSignedOut, nil)
}

func (h *httpServerAdapter) emit(event models.AuthEvent, session *models.Session) {
	h.listenersMu.Lock()
	fns := make([]func(models.AuthEvent, *models.Session), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.listenersMu.Unlock()

	for _, fn := range fns {
		var s *models.Session
		if session != nil {
			cp := *session
			s = &cp
		}
		go fn(event, s)
	}

	h.logger.Debug().Str("event", string(event)).Msg("auth state changed")
}
