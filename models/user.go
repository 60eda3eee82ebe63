// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Identity is the authenticated user handle issued by the backend auth
// provider. The client never generates or mutates it.
type Identity struct {
	// UserID is the opaque backend-assigned identifier (a UUID string).
	UserID string `json:"id"`

	// Email is the login the identity was issued for.
	Email string `json:"email"`

	// Metadata holds the profile fields supplied at sign-up.
	Metadata UserMetadata `json:"user_metadata"`
}

// IsZero reports whether the identity is empty (signed out).
func (i Identity) IsZero() bool {
	return i.UserID == ""
}

// UserMetadata is the free-form profile attached to an identity at sign-up.
type UserMetadata struct {
	Name      string   `json:"name,omitempty"`
	BirthDate string   `json:"birth_date,omitempty"`
	WeightKg  *float64 `json:"weight,omitempty"`
}

// Credentials are the email/password pair used for password sign-in.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration carries everything needed to create a new account.
type Registration struct {
	Credentials
	Name      string
	BirthDate string
	WeightKg  *float64
}

// Session is an authenticated backend session.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         Identity  `json:"user"`
}

// IsZero reports whether s holds no token.
func (s Session) IsZero() bool {
	return s.AccessToken == ""
}

// Expired reports whether the access token is past its expiry at now.
// A session with an unknown expiry is treated as valid.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// AuthEvent names a session-change notification.
type AuthEvent string

const (
	AuthEventSignedIn       AuthEvent = "SIGNED_IN"
	AuthEventSignedOut      AuthEvent = "SIGNED_OUT"
	AuthEventTokenRefreshed AuthEvent = "TOKEN_REFRESHED"
)
