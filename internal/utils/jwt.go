// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAccessToken is returned when an access token cannot be inspected.
var ErrInvalidAccessToken = errors.New("invalid access token")

// AccessTokenClaims are the claims the client reads from a backend-issued
// access token. The signature is never verified on the client; the backend
// does that on every request.
type AccessTokenClaims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// ParseAccessToken extracts the subject, email and expiry from an access
// token without verifying its signature. The subject must be a UUID.
func ParseAccessToken(tokenString string) (AccessTokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return AccessTokenClaims{}, fmt.Errorf("%w: %v", ErrInvalidAccessToken, err)
	}

	sub, err := claims.GetSubject()
	if err != nil || !IsUUID(sub) {
		return AccessTokenClaims{}, fmt.Errorf("%w: bad subject %q", ErrInvalidAccessToken, sub)
	}

	out := AccessTokenClaims{Subject: sub}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}

	return out, nil
}
