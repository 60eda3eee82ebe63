// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants.
//
// Backend* constants are the message bodies the hosted backend returns for
// well-known failures; the service layer matches them to sentinel errors.
// Msg* constants are the human-readable texts shown in the error field of
// the stores.
package app

// Messages returned by the hosted backend.
const (
	// BackendInvalidCredentials is returned on password sign-in with a wrong
	// email/password pair.
	BackendInvalidCredentials = "Invalid login credentials"

	// BackendUserAlreadyRegistered is returned on sign-up with an email that
	// already has an account.
	BackendUserAlreadyRegistered = "User already registered"

	// BackendEmailNotConfirmed is returned on sign-in before the sign-up
	// confirmation link was followed.
	BackendEmailNotConfirmed = "Email not confirmed"

	// BackendJWTExpired is returned by the row store when the bearer token
	// expired between refresh checks.
	BackendJWTExpired = "JWT expired"
)

// Messages surfaced through the stores' error field.
const (
	MsgAuthRequired           = "you need to sign in first"
	MsgGoalOutOfRange         = "daily goal must be between 500 and 5000 ml"
	MsgGoalAlreadyReached     = "daily goal already reached"
	MsgInvalidAmount          = "amount must be a positive number of ml"
	MsgInvalidCupVolume       = "cup volume must be a positive number of ml"
	MsgInvalidWeight          = "weight must be a positive number of kg"
	MsgUnknownCompanion       = "unknown companion"
	MsgInvalidCredentials     = "wrong email or password"
	MsgEmailTaken             = "an account with this email already exists"
	MsgEmailNotConfirmed      = "confirm your email, then sign in"
	MsgSessionExpired         = "your session expired, sign in again"
	MsgTimeout                = "the server took too long to answer"
	MsgBackendUnavailable     = "could not reach the server, try again"
	MsgLoadSettingsFailed     = "could not load your settings"
	MsgLoadHistoryFailed      = "could not load today's intake"
	MsgSaveFailed             = "could not save your changes"
	MsgSignOutFailed          = "signed out locally, but the server did not confirm"
	MsgSignInFailed           = "could not sign in, try again"
	MsgRegistrationIncomplete = "registration needs email confirmation before sign-in"
)
