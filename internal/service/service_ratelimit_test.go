package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRateLimitService() *rateLimitService {
	return NewRateLimitService(logger.Nop()).(*rateLimitService)
}

func TestAllow_EnforcesRoleQuota(t *testing.T) {
	svc := newTestRateLimitService()

	quota := models.RoleViewer.RateQuota()
	for i := 0; i < quota; i++ {
		require.NoError(t, svc.Allow("10.0.0.5", models.RoleViewer))
	}

	err := svc.Allow("10.0.0.5", models.RoleViewer)

	var rateErr *RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, "10.0.0.5_viewer", rateErr.Key)
	assert.Greater(t, rateErr.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, rateErr.RetryAfter, rateWindow+time.Second)
}

func TestAllow_QuotasAreIndependentPerSource(t *testing.T) {
	svc := newTestRateLimitService()

	quota := models.RoleViewer.RateQuota()
	for i := 0; i < quota; i++ {
		require.NoError(t, svc.Allow("10.0.0.5", models.RoleViewer))
	}
	require.Error(t, svc.Allow("10.0.0.5", models.RoleViewer))

	assert.NoError(t, svc.Allow("10.0.0.6", models.RoleViewer))
}

func TestAllow_RoleIsPartOfTheKey(t *testing.T) {
	svc := newTestRateLimitService()

	quota := models.RoleViewer.RateQuota()
	for i := 0; i < quota; i++ {
		require.NoError(t, svc.Allow("10.0.0.5", models.RoleViewer))
	}
	require.Error(t, svc.Allow("10.0.0.5", models.RoleViewer))

	// a role change starts a fresh window for the same source
	assert.NoError(t, svc.Allow("10.0.0.5", models.RoleTechnician))
}

func TestAllow_AdminQuotaIsHigher(t *testing.T) {
	svc := newTestRateLimitService()

	viewerQuota := models.RoleViewer.RateQuota()
	for i := 0; i < viewerQuota; i++ {
		require.NoError(t, svc.Allow("10.0.0.5", models.RoleAdmin))
	}

	// the admin quota still has headroom where the viewer quota is spent
	assert.NoError(t, svc.Allow("10.0.0.5", models.RoleAdmin))
}

func TestAllow_UnknownRoleGetsDefaultQuota(t *testing.T) {
	svc := newTestRateLimitService()

	unknown := models.Role("contractor")
	quota := unknown.RateQuota()
	require.Less(t, quota, models.RoleViewer.RateQuota())

	for i := 0; i < quota; i++ {
		require.NoError(t, svc.Allow("10.0.0.5", unknown))
	}
	assert.Error(t, svc.Allow("10.0.0.5", unknown))
}

func TestAllowIP_LimitsBursts(t *testing.T) {
	svc := newTestRateLimitService()

	for i := 0; i < loginBurst; i++ {
		require.NoError(t, svc.AllowIP("10.0.0.5"))
	}

	err := svc.AllowIP("10.0.0.5")

	var rateErr *RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, "10.0.0.5", rateErr.Key)

	// other addresses are unaffected
	assert.NoError(t, svc.AllowIP("10.0.0.6"))
}

func TestSweep_DropsIdleState(t *testing.T) {
	svc := newTestRateLimitService()

	require.NoError(t, svc.Allow("10.0.0.5", models.RoleViewer))
	require.NoError(t, svc.AllowIP("10.0.0.5"))

	// nothing is idle yet
	assert.Equal(t, 0, svc.Sweep(time.Now()))

	removed := svc.Sweep(time.Now().Add(2 * rateWindow))
	assert.Equal(t, 2, removed)
}
