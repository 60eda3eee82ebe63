// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSubject = "5b0c1c7e-0c3e-4a57-9a43-9e0f7d8e2b11"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestParseAccessToken_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signToken(t, jwt.MapClaims{
		"sub":   testSubject,
		"email": "ana@example.com",
		"exp":   exp.Unix(),
	})

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, testSubject, claims.Subject)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.True(t, exp.Equal(claims.ExpiresAt))
}

func TestParseAccessToken_Errors(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed", token: "not-a-jwt"},
		{name: "non uuid subject", token: signToken(t, jwt.MapClaims{"sub": "42"})},
		{name: "missing subject", token: signToken(t, jwt.MapClaims{"email": "a@b.c"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAccessToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidAccessToken)
		})
	}
}

func TestNewTraceID(t *testing.T) {
	a, b := NewTraceID(), NewTraceID()
	assert.True(t, IsUUID(a))
	assert.NotEqual(t, a, b)
	assert.False(t, IsUUID("nope"))
}

func TestDays(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "2026-10-15", Day(now))
	assert.Equal(t, "2026-10-14", AddDays("2026-10-15", -1))
	assert.Equal(t, "2026-11-01", AddDays("2026-10-31", 1))
	assert.Equal(t, "2026-02-28", AddDays("2026-03-01", -1))
	assert.Equal(t, "garbage", AddDays("garbage", 3))
}

func TestNewHTTPClient(t *testing.T) {
	c := NewHTTPClient(3*time.Second, 2)
	require.NotNil(t, c)
	require.NotNil(t, c.Client)
	assert.Equal(t, 2, c.RetryCount)
	assert.NotSame(t, c.Client, NewHTTPClient(time.Second, 0).Client)
}
