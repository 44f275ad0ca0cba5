// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-asset-guard/internal/config"
	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(timeout time.Duration) *sessionService {
	return NewSessionService(config.App{SessionTimeout: timeout}, logger.Nop()).(*sessionService)
}

func claimsFor(username string, issuedAt time.Time) *models.Claims {
	claims := models.NewClaims(models.User{Username: username, Role: models.RoleViewer}, "asset-guard", issuedAt, time.Hour)
	return &claims
}

func TestSessionCreateAndResolve(t *testing.T) {
	svc := newTestSessionService(time.Hour)
	ctx := context.Background()
	claims := claimsFor("jsmith", time.Now())

	created, err := svc.Create(ctx, claims, "10.0.0.5", "curl/8.0")
	require.NoError(t, err)
	assert.Equal(t, claims.SessionKey(), created.ID)
	assert.NotEmpty(t, created.CSRFToken)
	assert.Equal(t, 1, svc.Count())

	resolved, err := svc.Resolve(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resolved.ID)
	assert.False(t, resolved.LastActivity.Before(created.LastActivity))
}

func TestSessionCreate_InvalidClaims(t *testing.T) {
	svc := newTestSessionService(time.Hour)

	_, err := svc.Create(context.Background(), nil, "", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSessionResolve_NotFound(t *testing.T) {
	svc := newTestSessionService(time.Hour)

	_, err := svc.Resolve(context.Background(), claimsFor("ghost", time.Now()))
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionResolve_Expired(t *testing.T) {
	svc := newTestSessionService(time.Millisecond)
	ctx := context.Background()
	claims := claimsFor("jsmith", time.Now())

	_, err := svc.Create(ctx, claims, "", "")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = svc.Resolve(ctx, claims)
	assert.ErrorIs(t, err, ErrSessionExpired)

	// expired sessions are removed on resolution
	assert.Equal(t, 0, svc.Count())
}

func TestSessionResolve_ActivityExtendsWindow(t *testing.T) {
	svc := newTestSessionService(50 * time.Millisecond)
	ctx := context.Background()
	claims := claimsFor("jsmith", time.Now())

	_, err := svc.Create(ctx, claims, "", "")
	require.NoError(t, err)

	// keep touching the session more often than the timeout
	for i := 0; i < 4; i++ {
		time.Sleep(20 * time.Millisecond)
		_, err = svc.Resolve(ctx, claims)
		require.NoError(t, err)
	}
}

func TestSessionCreate_CancelledContext(t *testing.T) {
	svc := newTestSessionService(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Create(ctx, claimsFor("jsmith", time.Now()), "10.0.0.5", "curl/8.0")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, svc.Count())
}

func TestSessionResolve_CancelledContextDoesNotRenew(t *testing.T) {
	svc := newTestSessionService(time.Hour)
	claims := claimsFor("jsmith", time.Now())

	created, err := svc.Create(context.Background(), claims, "", "")
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	time.Sleep(5 * time.Millisecond)

	resolved, err := svc.Resolve(cancelled, claims)
	require.NoError(t, err)
	assert.Equal(t, created.ExpiresAt, resolved.ExpiresAt)
	assert.Equal(t, created.LastActivity, resolved.LastActivity)

	// a live request still slides the window
	renewed, err := svc.Resolve(context.Background(), claims)
	require.NoError(t, err)
	assert.True(t, renewed.ExpiresAt.After(created.ExpiresAt))
}

func TestValidateCSRF(t *testing.T) {
	svc := newTestSessionService(time.Hour)
	ctx := context.Background()
	claims := claimsFor("jsmith", time.Now())

	created, err := svc.Create(ctx, claims, "", "")
	require.NoError(t, err)

	assert.NoError(t, svc.ValidateCSRF(created.ID, created.CSRFToken))

	var csrfErr *CSRFError
	err = svc.ValidateCSRF(created.ID, "forged")
	require.ErrorAs(t, err, &csrfErr)
	assert.Equal(t, "jsmith", csrfErr.Username)

	err = svc.ValidateCSRF(created.ID, "")
	assert.ErrorAs(t, err, &csrfErr)

	assert.ErrorIs(t, svc.ValidateCSRF("unknown-key", "anything"), ErrSessionNotFound)
}

func TestInvalidate(t *testing.T) {
	svc := newTestSessionService(time.Hour)
	ctx := context.Background()
	claims := claimsFor("jsmith", time.Now())

	created, err := svc.Create(ctx, claims, "", "")
	require.NoError(t, err)

	svc.Invalidate(created.ID)

	_, err = svc.Resolve(ctx, claims)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestInvalidateUser(t *testing.T) {
	svc := newTestSessionService(time.Hour)
	ctx := context.Background()

	now := time.Now()
	_, err := svc.Create(ctx, claimsFor("jsmith", now), "", "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, claimsFor("jsmith", now.Add(time.Second)), "", "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, claimsFor("other", now), "", "")
	require.NoError(t, err)

	dropped := svc.InvalidateUser("jsmith")

	assert.Equal(t, 2, dropped)
	assert.Equal(t, 1, svc.Count())
}

func TestSweep(t *testing.T) {
	svc := newTestSessionService(time.Hour)
	ctx := context.Background()

	_, err := svc.Create(ctx, claimsFor("jsmith", time.Now()), "", "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, claimsFor("other", time.Now()), "", "")
	require.NoError(t, err)

	// nothing has expired yet
	assert.Equal(t, 0, svc.Sweep(time.Now()))

	// everything is expired two hours from now
	dropped := svc.Sweep(time.Now().Add(2 * time.Hour))
	assert.Equal(t, 2, dropped)
	assert.Equal(t, 0, svc.Count())
}
